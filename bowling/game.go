package bowling

// Game records the rolls of a single game.
type Game struct {
	rolls []int
}

// NewGame creates an empty game
func NewGame() *Game {
	return &Game{rolls: make([]int, 0, 21)}
}

// NewGameWithRolls creates a game and records rolls in order, stopping at the
// first rejected roll.
func NewGameWithRolls(rolls ...int) (*Game, error) {
	g := NewGame()
	for _, pins := range rolls {
		if err := g.Roll(pins); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Roll records the pins knocked down by the next roll. A rejected roll leaves
// the history unchanged. Rolls after the game is complete are accepted and
// ignored by Score; use IsComplete to stop rolling.
func (g *Game) Roll(pins int) error {
	spans := frameBoundaries(g.rolls)
	frame := currentFrame(spans)

	if err := g.validate(spans, pins); err != nil {
		return &RollError{Index: len(g.rolls), Frame: frame, Pins: pins, Err: err}
	}

	g.rolls = append(g.rolls, pins)
	return nil
}

func (g *Game) validate(spans []frameSpan, pins int) error {
	if pins < 0 || pins > MaxPins {
		return ErrInvalidPinCount
	}
	if len(spans) == 0 {
		return nil
	}

	// A complete last span starts a new frame, or follows a finished game.
	// Rolls past the tenth frame are kept but never scored.
	last := spans[len(spans)-1]
	if last.complete {
		return nil
	}

	// Only unfinished frames reach here: a lone non-strike roll in frames 1-9,
	// or one or two rolls into the tenth.
	first := g.rolls[last.start]
	switch {
	case last.rolls == 1 && first != MaxPins:
		if first+pins > MaxPins {
			return ErrInvalidFrameTotal
		}
	case last.rolls == 2 && first == MaxPins:
		// Tenth frame fill balls after a strike share a rack unless the first
		// fill ball is itself a strike.
		second := g.rolls[last.start+1]
		if second != MaxPins && second+pins > MaxPins {
			return ErrInvalidFrameTotal
		}
	}
	return nil
}

// Score returns the total of the leading frames that can be scored with the
// rolls recorded so far. On a complete game this is the final score.
func (g *Game) Score() int {
	score := 0
	for _, span := range frameBoundaries(g.rolls) {
		s, ok := scoreFrame(g.rolls, span)
		if !ok {
			break
		}
		score += s
	}
	return score
}

// FinalScore returns the score of a complete game, or ErrIncompleteGame.
func (g *Game) FinalScore() (int, error) {
	if !g.IsComplete() {
		return 0, ErrIncompleteGame
	}
	return g.Score(), nil
}

// IsComplete reports whether the tenth frame, fill balls included, is done.
func (g *Game) IsComplete() bool {
	spans := frameBoundaries(g.rolls)
	return len(spans) == MaxFrames && spans[MaxFrames-1].complete
}

// CurrentFrame returns the 1-based frame the next roll belongs to. It returns
// MaxFrames+1 once the game is complete.
func (g *Game) CurrentFrame() int {
	return currentFrame(frameBoundaries(g.rolls))
}

func currentFrame(spans []frameSpan) int {
	if len(spans) == 0 {
		return 1
	}
	if spans[len(spans)-1].complete {
		return len(spans) + 1
	}
	return len(spans)
}

// Rolls returns a copy of the roll history.
func (g *Game) Rolls() []int {
	out := make([]int, len(g.rolls))
	copy(out, g.rolls)
	return out
}

// Frames returns the scorecard for the frames started so far.
func (g *Game) Frames() []Frame {
	spans := frameBoundaries(g.rolls)
	frames := make([]Frame, 0, len(spans))

	total := 0
	scoring := true
	for i, span := range spans {
		f := Frame{
			Number: i + 1,
			Rolls:  append([]int(nil), g.rolls[span.start:span.start+span.rolls]...),
			Kind:   frameKind(g.rolls, span),
		}
		if scoring {
			if s, ok := scoreFrame(g.rolls, span); ok {
				total += s
				f.Scored = true
				f.Score = s
				f.Total = total
			} else {
				scoring = false
			}
		}
		frames = append(frames, f)
	}
	return frames
}
