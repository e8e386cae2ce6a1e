package bowling

const (
	// MaxPins is the number of pins standing at the start of a frame.
	MaxPins = 10
	// MaxFrames is the number of frames in a game.
	MaxFrames = 10
	// MaxScore is the score of a perfect game.
	MaxScore = 300
)

// frameSpan locates one frame inside the roll history.
type frameSpan struct {
	start    int
	rolls    int
	complete bool
}

// frameBoundaries splits the roll history into frames. The last span may be
// incomplete. A tenth frame is complete after two rolls when open and after
// three rolls when it starts with a strike or spare.
func frameBoundaries(rolls []int) []frameSpan {
	spans := make([]frameSpan, 0, MaxFrames)
	i := 0
	for i < len(rolls) && len(spans) < MaxFrames {
		remaining := len(rolls) - i
		if len(spans) == MaxFrames-1 {
			width := 2
			if rolls[i] == MaxPins || (remaining >= 2 && rolls[i]+rolls[i+1] == MaxPins) {
				width = 3
			}
			n := min(remaining, width)
			spans = append(spans, frameSpan{start: i, rolls: n, complete: n == width})
			i += n
			continue
		}

		if rolls[i] == MaxPins {
			spans = append(spans, frameSpan{start: i, rolls: 1, complete: true})
			i++
			continue
		}
		n := min(remaining, 2)
		spans = append(spans, frameSpan{start: i, rolls: n, complete: n == 2})
		i += n
	}
	return spans
}

// scoreFrame returns the score of the frame at span, and false when the rolls
// it needs (its own or its bonus) are not recorded yet.
func scoreFrame(rolls []int, span frameSpan) (int, bool) {
	s := span.start
	switch {
	case rolls[s] == MaxPins:
		if s+2 >= len(rolls) {
			return 0, false
		}
		return MaxPins + rolls[s+1] + rolls[s+2], true
	case s+1 >= len(rolls):
		return 0, false
	case rolls[s]+rolls[s+1] == MaxPins:
		if s+2 >= len(rolls) {
			return 0, false
		}
		return MaxPins + rolls[s+2], true
	default:
		return rolls[s] + rolls[s+1], true
	}
}

// FrameKind classifies a frame by how its pins fell.
type FrameKind int

const (
	// Pending frames are still waiting for their second roll.
	Pending FrameKind = iota
	Open
	Spare
	Strike
)

func (k FrameKind) String() string {
	switch k {
	case Open:
		return "open"
	case Spare:
		return "spare"
	case Strike:
		return "strike"
	default:
		return "pending"
	}
}

// Frame is the scorecard view of one frame.
type Frame struct {
	Number int   // 1-10
	Rolls  []int // rolls belonging to the frame, including tenth frame fill balls
	Kind   FrameKind
	// Scored is false until the frame and its bonus rolls are recorded, or
	// while an earlier frame is unscored.
	Scored bool
	Score  int // frame score including bonus
	Total  int // running total through this frame
}

func frameKind(rolls []int, span frameSpan) FrameKind {
	first := rolls[span.start]
	switch {
	case first == MaxPins:
		return Strike
	case span.rolls < 2:
		return Pending
	case first+rolls[span.start+1] == MaxPins:
		return Spare
	default:
		return Open
	}
}
