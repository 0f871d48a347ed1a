package display

import (
	"strings"
	"unicode/utf8"
)

// block is a rectangle of text lines
type block []string

// width returns the widest visible line
func (b block) width() int {
	w := 0
	for _, line := range b {
		if n := visibleWidth(line); n > w {
			w = n
		}
	}
	return w
}

// join places blocks side by side, top aligned, separated by gap spaces
func join(blocks []block, gap int) block {
	height := 0
	for _, b := range blocks {
		if len(b) > height {
			height = len(b)
		}
	}

	out := make(block, height)
	for i, b := range blocks {
		w := b.width()
		for y := 0; y < height; y++ {
			line := ""
			if y < len(b) {
				line = b[y]
			}
			if i < len(blocks)-1 {
				line += strings.Repeat(" ", w-visibleWidth(line)+gap)
			}
			out[y] += line
		}
	}

	for y := range out {
		out[y] = strings.TrimRight(out[y], " ")
	}
	return out
}

// frame draws a box border around b
func frame(b block) block {
	w := b.width()
	out := make(block, 0, len(b)+2)
	out = append(out, "┌"+strings.Repeat("─", w+2)+"┐")
	for _, line := range b {
		out = append(out, "│ "+line+strings.Repeat(" ", w-visibleWidth(line))+" │")
	}
	out = append(out, "└"+strings.Repeat("─", w+2)+"┘")
	return out
}

// visibleWidth counts runes outside ANSI escape sequences
func visibleWidth(s string) int {
	return utf8.RuneCountInString(stripAnsi(s))
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if utf8.RuneCountInString(currentLine)+1+utf8.RuneCountInString(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
