package wrapgen

import "strings"

// Indentation steps of the generated Python source.
const (
	i1 = "    "
	i2 = i1 + i1
	i3 = i2 + i1
)

// Wrap widths used by the emitter: prose wraps wide, argument lists wrap
// narrow with a hanging indent under the opening parenthesis.
const (
	defaultWrapCols = 72
	argWrapCols     = 50
	argWrapIndent   = "            "
)

// wrapLongLines greedily wraps s at ncols, prefixing continuation lines with
// indent. The first line carries no prefix so callers can embed the result
// mid-line. Empty or all-whitespace input renders empty.
func wrapLongLines(s string, ncols int, indent string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > ncols {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n"+indent)
}
