package diag

import (
	"strconv"
	"strings"
)

// Render builds the source-pointer message for d. line is the source line d
// points into, without its trailing newline. Render has no side effects.
//
// Example:
//
//	error[E0002]: unterminated string literal
//	 --> main.il:1:5
//	  |
//	1 | say("hi);
//	  |     ^    - add a `"` here
//	  |     |
//	  |     string starts here
//	  |
//	  = help: add a `"` here
func Render(d *Diagnostic, line string) string {
	line = strings.TrimSuffix(line, "\r")
	gutter := strconv.Itoa(d.Location.Line)
	pad := strings.Repeat(" ", len(gutter))

	var b strings.Builder
	b.WriteString("error[")
	b.WriteString(d.Kind.Code())
	b.WriteString("]: ")
	b.WriteString(d.Message)
	b.WriteByte('\n')

	b.WriteString(pad)
	b.WriteString("--> ")
	b.WriteString(d.Location.String())
	b.WriteByte('\n')

	b.WriteString(pad)
	b.WriteString(" |\n")

	b.WriteString(gutter)
	b.WriteString(" | ")
	b.WriteString(line)
	b.WriteByte('\n')

	width := max(1, d.Width)
	marker := indent(line, d.Location.Column-1) + strings.Repeat("^", width)
	if d.HintColumn > d.Location.Column+width-1 {
		marker += indent(line, d.HintColumn-1)[len(marker):] + "- " + d.Hint
	}
	b.WriteString(pad)
	b.WriteString(" | ")
	b.WriteString(marker)
	b.WriteByte('\n')

	if d.Label != "" {
		b.WriteString(pad)
		b.WriteString(" | ")
		b.WriteString(indent(line, d.Location.Column-1))
		b.WriteString("|\n")
		b.WriteString(pad)
		b.WriteString(" | ")
		b.WriteString(indent(line, d.Location.Column-1))
		b.WriteString(d.Label)
		b.WriteByte('\n')
	}

	b.WriteString(pad)
	b.WriteString(" |\n")
	if d.Hint != "" {
		b.WriteString(pad)
		b.WriteString(" = help: ")
		b.WriteString(d.Hint)
		b.WriteByte('\n')
	}
	return b.String()
}

// indent returns n columns of padding that line up with line when printed
// below it: tabs in line are kept so the caret lands under the right
// character.
func indent(line string, n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	i := 0
	for _, r := range line {
		if i == n {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		i++
	}
	for ; i < n; i++ {
		b.WriteByte(' ')
	}
	return b.String()
}
