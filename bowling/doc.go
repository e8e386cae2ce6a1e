// Package bowling scores ten-pin bowling games.
//
// A Game records the pins knocked down by each roll and validates every roll
// as it arrives. Frames are never stored: they are recomputed from the roll
// history whenever a roll is validated or the game is scored.
//
// # Basic Usage
//
//	g := bowling.NewGame()
//	for _, pins := range []int{10, 7, 3, 9, 0} {
//	    if err := g.Roll(pins); err != nil {
//	        return err
//	    }
//	}
//	g.Score() // 48, frames 1-3 are scored
//
// Score may be called at any point. On an unfinished game it returns the sum
// of the leading frames whose bonus rolls are already known. FinalScore
// returns ErrIncompleteGame until the tenth frame is done.
//
// Roll errors are *RollError values wrapping one of the sentinel errors, so
// callers match them with errors.Is:
//
//	if errors.Is(err, bowling.ErrInvalidFrameTotal) {
//	    // discard the roll and ask again
//	}
//
// A Game is not safe for concurrent use.
package bowling
