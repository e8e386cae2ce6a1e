package scorecard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tenpin/bowling"
)

func TestMarks(t *testing.T) {
	tests := []struct {
		name  string
		rolls []int
		want  []string
	}{
		{"strike", []int{10}, []string{"X"}},
		{"spare", []int{7, 3}, []string{"7", "/"}},
		{"gutter spare", []int{0, 10}, []string{"-", "/"}},
		{"open with miss", []int{9, 0}, []string{"9", "-"}},
		{"gutter frame", []int{0, 0}, []string{"-", "-"}},
		{"in progress", []int{4}, []string{"4"}},
		{"tenth three strikes", []int{10, 10, 10}, []string{"X", "X", "X"}},
		{"tenth strike then spare", []int{10, 6, 4}, []string{"X", "6", "/"}},
		{"tenth strike then open", []int{10, 6, 2}, []string{"X", "6", "2"}},
		{"tenth spare then strike", []int{6, 4, 10}, []string{"6", "/", "X"}},
		{"tenth strike then gutter spare", []int{10, 0, 10}, []string{"X", "-", "/"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Marks(bowling.Frame{Rolls: tt.rolls}))
		})
	}
}

func TestRenderPartialGame(t *testing.T) {
	g, err := bowling.NewGameWithRolls(10, 7, 3, 9, 0)
	require.NoError(t, err)

	got := Render(g.Frames(), Options{Player: "alice"})
	want := "alice\n" +
		"|  1  |  2  |  3  |  4  |  5  |  6  |  7  |  8  |  9  |  10   |\n" +
		"|  X  | 7 / | 9 - |     |     |     |     |     |     |       |\n" +
		"| 20  | 39  | 48  |     |     |     |     |     |     |       |\n"
	assert.Equal(t, want, got)
}

func TestRenderPerfectGame(t *testing.T) {
	g, err := bowling.NewGameWithRolls(10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(Render(g.Frames(), Options{}), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[1], "| X X X |"), lines[1])
	assert.True(t, strings.HasSuffix(lines[2], "| 270 |  300  |"), lines[2])
}

func TestRenderUnscoredFrameLeavesTotalBlank(t *testing.T) {
	g, err := bowling.NewGameWithRolls(10, 10)
	require.NoError(t, err)

	lines := strings.Split(Render(g.Frames(), Options{}), "\n")
	assert.True(t, strings.HasPrefix(lines[1], "|  X  |  X  |     |"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "|     |     |     |"), lines[2])
}

func TestRenderColor(t *testing.T) {
	g, err := bowling.NewGameWithRolls(10, 3, 4)
	require.NoError(t, err)

	colored := Render(g.Frames(), Options{Color: true})
	plain := Render(g.Frames(), Options{})
	assert.Contains(t, colored, "\x1b[")
	assert.NotContains(t, plain, "\x1b[")
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  1  ", center("1", 5))
	assert.Equal(t, " 20  ", center("20", 5))
	assert.Equal(t, "toolong", center("toolong", 5))
}
