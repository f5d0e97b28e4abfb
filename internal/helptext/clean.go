package helptext

import (
	"regexp"
	"strings"
)

// Cleaner normalizes one raw description string into one display-ready
// string. The same cleaner is used for class-level and member-level text so
// both agree exactly on the cleaning rules.
type Cleaner struct {
	// MaxLen is the length above which a description gets truncated.
	MaxLen int
	// TruncateAt is the running-length budget for whole sentences kept
	// during truncation.
	TruncateAt int
	// HeaderColonLen is the length above which a line ending in ':' is
	// treated as a leaked section header and dropped. The heuristic is
	// approximate; the threshold is a tunable, not a guaranteed rule.
	HeaderColonLen int
}

// DefaultCleaner mirrors the thresholds the extraction pipeline ships with.
var DefaultCleaner = Cleaner{
	MaxLen:         400,
	TruncateAt:     300,
	HeaderColonLen: 20,
}

// CleanDocstring cleans raw help text with the default thresholds.
func CleanDocstring(raw string) string {
	return DefaultCleaner.Clean(raw)
}

// Doxygen tag rewrites, applied line by line. Order matters: the
// more specific @par Thanks form must win over the generic @par.
var (
	reParamDesc  = regexp.MustCompile(`@param\s+(\w+)\s+(.+)`)
	reParamBare  = regexp.MustCompile(`@param\s+(\w+)$`)
	reReturnDesc = regexp.MustCompile(`@return\s+(.+)`)
	reReturnBare = regexp.MustCompile(`^@return\s*$`)
	reParThanks  = regexp.MustCompile(`@par\s+Thanks:\s*(.+)`)
	reParAny     = regexp.MustCompile(`@par\s+(.+)`)
	reThanksBare = regexp.MustCompile(`^Thanks:\s*$`)
	reThanksDesc = regexp.MustCompile(`^Thanks:\s*(.+)`)
	reWarnDesc   = regexp.MustCompile(`@warning\s+(.+)`)
	reWarnBare   = regexp.MustCompile(`^@warning\s*$`)
	reSee        = regexp.MustCompile(`@see\s+(.+)`)
	reNote       = regexp.MustCompile(`@note\s+(.+)`)
	reDeadTags   = regexp.MustCompile(`@(brief|deprecated|since|author|version)\s*`)

	reBlankRuns = regexp.MustCompile(`\n\s*\n\s*\n+`)
)

// Section header phrases that belong to the dump's table-like layout and
// must never leak into description text.
var structuralHeaders = []string{
	"Methods defined here:",
	"Static methods defined here:",
	"Class methods defined here:",
	"Data descriptors defined here:",
	"Data and other attributes defined here:",
	"Methods inherited from",
	"Static methods inherited from",
	"Class methods inherited from",
	"Data descriptors inherited from",
	"Data and other attributes inherited from",
}

// Clean normalizes raw help text: structural artifacts and C++ fragments are
// stripped, Doxygen tags are rewritten, unsafe characters are escaped, and
// the result is length-bounded. Clean is idempotent.
func (c Cleaner) Clean(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	var kept []string
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		if c.isStructuralArtifact(line) {
			continue
		}
		line = rewriteDoxygenTags(line)
		if isCPPNoise(line) {
			continue
		}
		kept = append(kept, line)
	}

	// Trim blank lines at both ends.
	for len(kept) > 0 && kept[0] == "" {
		kept = kept[1:]
	}
	for len(kept) > 0 && kept[len(kept)-1] == "" {
		kept = kept[:len(kept)-1]
	}

	cleaned := strings.Join(kept, "\n")
	cleaned = reBlankRuns.ReplaceAllString(cleaned, "\n\n")
	cleaned = escapeUnsafe(cleaned)
	cleaned = c.truncate(cleaned)

	return strings.TrimSpace(cleaned)
}

func (c Cleaner) isStructuralArtifact(line string) bool {
	if strings.HasPrefix(line, "|") {
		return true
	}
	if strings.HasPrefix(line, "-----") {
		return true
	}
	for _, h := range structuralHeaders {
		if strings.Contains(line, h) {
			return true
		}
	}
	threshold := c.HeaderColonLen
	if threshold <= 0 {
		threshold = DefaultCleaner.HeaderColonLen
	}
	// Long lines ending with ':' are likely section headers.
	if strings.HasSuffix(line, ":") && len(line) > threshold && !isRewrittenTagLine(line) {
		return true
	}
	return false
}

// isRewrittenTagLine protects lines the tag rewriter itself produces from
// the leaked-header heuristic, keeping Clean idempotent.
func isRewrittenTagLine(line string) bool {
	return strings.HasPrefix(line, ":param ") || strings.HasPrefix(line, ":returns")
}

func isCPPNoise(line string) bool {
	if strings.HasPrefix(line, "C++:") || strings.Contains(line, "C++:") {
		return true
	}
	if strings.HasPrefix(line, "virtual ") {
		return true
	}
	if strings.Contains(line, "::") && strings.Contains(strings.ToLower(line), "vtk") {
		return true
	}
	return false
}

func rewriteDoxygenTags(line string) string {
	line = reParamDesc.ReplaceAllString(line, ":param $1: $2")
	line = reParamBare.ReplaceAllString(line, ":param $1:")
	line = reReturnDesc.ReplaceAllString(line, ":returns: $1")
	line = reReturnBare.ReplaceAllString(line, ":returns:")
	line = reParThanks.ReplaceAllString(line, "Credits: $1")
	line = reParAny.ReplaceAllString(line, "Note: $1")
	line = reThanksBare.ReplaceAllString(line, "Credits:")
	line = reThanksDesc.ReplaceAllString(line, "Credits: $1")
	line = reWarnDesc.ReplaceAllString(line, "Warning: $1")
	line = reWarnBare.ReplaceAllString(line, "Warning:")
	line = reSee.ReplaceAllString(line, "See also: $1")
	line = reNote.ReplaceAllString(line, "Note: $1")
	line = reDeadTags.ReplaceAllString(line, "")
	return line
}

// escapeUnsafe escapes backslashes, quotes, and control characters so the
// text is safe to embed in serialized output. Already-escaped sequences are
// left alone, which keeps the cleaner idempotent.
func escapeUnsafe(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '\\':
			if i+1 < len(s) && isEscapeTail(s[i+1]) {
				b.WriteByte(ch)
				b.WriteByte(s[i+1])
				i++
			} else {
				b.WriteString(`\\`)
			}
		case '"':
			b.WriteString(`\"`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

func isEscapeTail(ch byte) bool {
	switch ch {
	case '\\', '"', 'b', 'f', 'n', 'r', 't':
		return true
	}
	return false
}

// truncate enforces the soft length cap: oversized text is re-split on
// sentence boundaries and rebuilt from whole sentences while the running
// length stays within budget. Lossy by design.
func (c Cleaner) truncate(s string) string {
	maxLen := c.MaxLen
	if maxLen <= 0 {
		maxLen = DefaultCleaner.MaxLen
	}
	budget := c.TruncateAt
	if budget <= 0 {
		budget = DefaultCleaner.TruncateAt
	}
	if len(s) <= maxLen {
		return s
	}

	var truncated []string
	length := 0
	for _, sentence := range strings.Split(s, ". ") {
		if length+len(sentence) > budget {
			break
		}
		truncated = append(truncated, sentence)
		length += len(sentence) + 2
	}
	s = strings.Join(truncated, ". ")
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}
