// Package scorecard renders bowling frames as a text scorecard.
package scorecard

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/tenpin/bowling"
)

const (
	frameWidth = 5
	tenthWidth = 7
)

// Options controls rendering.
type Options struct {
	Player string // printed above the card when set
	Color  bool
}

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	strike lipgloss.Style
	spare  lipgloss.Style
	miss   lipgloss.Style
	total  lipgloss.Style
}

func newStyles(color bool) styles {
	r := lipgloss.NewRenderer(io.Discard)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		header: r.NewStyle().Foreground(lipgloss.Color("12")),
		strike: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		spare:  r.NewStyle().Foreground(lipgloss.Color("11")),
		miss:   r.NewStyle().Foreground(lipgloss.Color("9")),
		total:  r.NewStyle().Bold(true),
	}
}

// Marks returns the scorecard symbols for a frame's rolls: X for a strike,
// / for a spare, - for a miss, otherwise the pin count.
func Marks(f bowling.Frame) []string {
	marks := make([]string, 0, len(f.Rolls))
	standing := bowling.MaxPins
	fresh := true // next roll is the first ball at a full rack
	for _, pins := range f.Rolls {
		switch {
		case fresh && pins == bowling.MaxPins:
			marks = append(marks, "X")
		case !fresh && pins == standing:
			marks = append(marks, "/")
			fresh, standing = true, bowling.MaxPins
		default:
			if pins == 0 {
				marks = append(marks, "-")
			} else {
				marks = append(marks, strconv.Itoa(pins))
			}
			if fresh {
				fresh, standing = false, standing-pins
			} else {
				fresh, standing = true, bowling.MaxPins
			}
		}
	}
	return marks
}

// Render draws a three row scorecard (frame numbers, marks, running totals)
// for all ten frames. Frames not yet started are left blank.
func Render(frames []bowling.Frame, opts Options) string {
	st := newStyles(opts.Color)

	headers := make([]string, bowling.MaxFrames)
	marks := make([]string, bowling.MaxFrames)
	totals := make([]string, bowling.MaxFrames)

	for i := 0; i < bowling.MaxFrames; i++ {
		width := frameWidth
		if i == bowling.MaxFrames-1 {
			width = tenthWidth
		}
		headers[i] = center(st.header.Render(strconv.Itoa(i+1)), width)
		marks[i] = center("", width)
		totals[i] = center("", width)

		if i >= len(frames) {
			continue
		}
		f := frames[i]
		marks[i] = center(st.styleMarks(Marks(f)), width)
		if f.Scored {
			totals[i] = center(st.total.Render(strconv.Itoa(f.Total)), width)
		}
	}

	var b strings.Builder
	if opts.Player != "" {
		b.WriteString(st.title.Render(opts.Player))
		b.WriteByte('\n')
	}
	for _, row := range [][]string{headers, marks, totals} {
		b.WriteString("|" + strings.Join(row, "|") + "|\n")
	}
	return b.String()
}

func (st styles) styleMarks(marks []string) string {
	styled := make([]string, len(marks))
	for i, m := range marks {
		switch m {
		case "X":
			styled[i] = st.strike.Render(m)
		case "/":
			styled[i] = st.spare.Render(m)
		case "-":
			styled[i] = st.miss.Render(m)
		default:
			styled[i] = m
		}
	}
	return strings.Join(styled, " ")
}

// center pads s to width, putting any odd space on the right. Width is
// measured without ANSI sequences.
func center(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
