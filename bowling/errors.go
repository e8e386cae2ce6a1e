package bowling

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPinCount is returned for a roll outside [0, MaxPins].
	ErrInvalidPinCount = errors.New("invalid number of pins: must be between 0 and 10")
	// ErrInvalidFrameTotal is returned when a roll would knock down more pins
	// than are standing in the frame. In the tenth frame it also covers each
	// fresh rack: the first two balls, and the two fill balls after a strike.
	ErrInvalidFrameTotal = errors.New("frame cannot have more than 10 pins")
	// ErrIncompleteGame is returned by FinalScore before the game is finished.
	ErrIncompleteGame = errors.New("game is incomplete")
)

// RollError describes a rejected roll.
type RollError struct {
	Index int // position the roll would have taken in the history
	Frame int // 1-based frame the roll belonged to
	Pins  int
	Err   error
}

func (e *RollError) Error() string {
	return fmt.Sprintf("roll %d (frame %d, %d pins): %v", e.Index+1, e.Frame, e.Pins, e.Err)
}

func (e *RollError) Unwrap() error {
	return e.Err
}
