package layout

import "strings"

const (
	lineDelimiter        = "\n"
	blockDelimiter       = "\n\n"
	institutionDelimiter = " | "
)

// normalizeNewlines folds CRLF and lone CR, as posted by browser textareas, into LF.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// SplitLines splits on newlines and drops blank items. Items are trimmed.
func SplitLines(s string) []string {
	raw := strings.Split(normalizeNewlines(s), lineDelimiter)
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// SplitBlocks splits on blank lines. Blank blocks are dropped and each block
// keeps only its non-blank lines, so the first element is always the title.
func SplitBlocks(s string) [][]string {
	raw := strings.Split(normalizeNewlines(s), blockDelimiter)
	out := make([][]string, 0, len(raw))
	for _, block := range raw {
		lines := SplitLines(block)
		if len(lines) == 0 {
			continue
		}
		out = append(out, lines)
	}
	return out
}

// SplitInstitution splits an education heading on the first " | ".
// ok is false when the line carries no date.
func SplitInstitution(line string) (institution, date string, ok bool) {
	institution, date, ok = strings.Cut(line, institutionDelimiter)
	institution = strings.TrimSpace(institution)
	if !ok {
		return institution, "", false
	}
	date = strings.TrimSpace(date)
	return institution, date, date != ""
}
