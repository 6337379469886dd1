package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// glyphHeight is the number of rows in each big glyph.
const glyphHeight = 3

// glyphs maps digits and the colon to box-drawing glyphs three rows tall.
var glyphs = map[rune][glyphHeight]string{
	'0': {"┏━┓", "┃ ┃", "┗━┛"},
	'1': {" ┓ ", " ┃ ", " ┻ "},
	'2': {"┏━┓", "┏━┛", "┗━━"},
	'3': {"┏━┓", " ━┫", "┗━┛"},
	'4': {"╻ ╻", "┗━┫", "  ╹"},
	'5': {"┏━━", "┗━┓", "┗━┛"},
	'6': {"┏━━", "┣━┓", "┗━┛"},
	'7': {"━━┓", "  ┃", "  ╹"},
	'8': {"┏━┓", "┣━┫", "┗━┛"},
	'9': {"┏━┓", "┗━┫", "┗━┛"},
	':': {" ", "╏", " "},
}

// minBigWidth is the narrowest terminal that gets the big clock.
const minBigWidth = 30

// renderBigTime renders a clock string like "24:59" in big glyphs.
// Narrow terminals get a single bold line instead.
func renderBigTime(clock string, color lipgloss.Color, width int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(color)
	if width < minBigWidth {
		return style.Render(clock)
	}

	var rows [glyphHeight]strings.Builder
	for i, ch := range clock {
		glyph, ok := glyphs[ch]
		if !ok {
			continue
		}
		for r := 0; r < glyphHeight; r++ {
			if i > 0 {
				rows[r].WriteString(" ")
			}
			rows[r].WriteString(glyph[r])
		}
	}

	lines := make([]string, glyphHeight)
	for r := range rows {
		lines[r] = style.Render(rows[r].String())
	}
	return strings.Join(lines, "\n")
}
