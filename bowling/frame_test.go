package bowling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		rolls []int
		want  []frameSpan
	}{
		{"empty", nil, []frameSpan{}},
		{"half frame", []int{4}, []frameSpan{{0, 1, false}}},
		{"strike collapses frame", []int{10, 4, 5}, []frameSpan{{0, 1, true}, {1, 2, true}}},
		{"strike then half frame", []int{10, 4}, []frameSpan{{0, 1, true}, {1, 1, false}}},
		{"ten after a first roll is not a strike", []int{0, 10, 3}, []frameSpan{{0, 2, true}, {2, 1, false}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, frameBoundaries(tt.rolls))
		})
	}
}

func TestFrameBoundariesTenthFrame(t *testing.T) {
	tests := []struct {
		name string
		last []int
		want frameSpan
	}{
		{"open", []int{3, 4}, frameSpan{18, 2, true}},
		{"spare waits for fill ball", []int{3, 7}, frameSpan{18, 2, false}},
		{"spare with fill ball", []int{3, 7, 5}, frameSpan{18, 3, true}},
		{"strike waits for two fill balls", []int{10, 10}, frameSpan{18, 2, false}},
		{"strike with fill balls", []int{10, 10, 10}, frameSpan{18, 3, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := frameBoundaries(concat(repeat(0, 18), tt.last))
			require.Len(t, spans, MaxFrames)
			assert.Equal(t, tt.want, spans[MaxFrames-1])
		})
	}
}

func TestFrameBoundariesIgnoresRollsPastTenthFrame(t *testing.T) {
	spans := frameBoundaries(repeat(0, 25))
	require.Len(t, spans, MaxFrames)
	assert.Equal(t, frameSpan{18, 2, true}, spans[MaxFrames-1])
}

func TestFrames(t *testing.T) {
	g := rollAll(t, []int{10, 7, 3, 9, 0, 4})
	frames := g.Frames()
	require.Len(t, frames, 4)

	assert.Equal(t, Frame{Number: 1, Rolls: []int{10}, Kind: Strike, Scored: true, Score: 20, Total: 20}, frames[0])
	assert.Equal(t, Frame{Number: 2, Rolls: []int{7, 3}, Kind: Spare, Scored: true, Score: 19, Total: 39}, frames[1])
	assert.Equal(t, Frame{Number: 3, Rolls: []int{9, 0}, Kind: Open, Scored: true, Score: 9, Total: 48}, frames[2])
	assert.Equal(t, Frame{Number: 4, Rolls: []int{4}, Kind: Pending}, frames[3])
}

func TestFramesStopScoringAtFirstUnscoredFrame(t *testing.T) {
	g := rollAll(t, []int{10, 10, 3})
	frames := g.Frames()
	require.Len(t, frames, 3)

	assert.True(t, frames[0].Scored)
	assert.Equal(t, 23, frames[0].Total)
	assert.False(t, frames[1].Scored, "strike still needs its second bonus roll")
	assert.False(t, frames[2].Scored)
	assert.Equal(t, Strike, frames[1].Kind)
}

func TestFramesTenthFrameIncludesFillBalls(t *testing.T) {
	g := rollAll(t, repeat(10, 12))
	frames := g.Frames()
	require.Len(t, frames, MaxFrames)
	assert.Equal(t, []int{10, 10, 10}, frames[9].Rolls)
	assert.Equal(t, 300, frames[9].Total)
}

func TestFrameKindString(t *testing.T) {
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "open", Open.String())
	assert.Equal(t, "spare", Spare.String())
	assert.Equal(t, "strike", Strike.String())
}
