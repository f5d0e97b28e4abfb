package helptext

import "strings"

const (
	// bodyMargin is the left-margin marker help() puts in front of every
	// body line of a class block.
	bodyMargin = " |  "
	// continuationIndent marks lines that continue the current member's
	// documentation rather than starting a new member.
	continuationIndent = " |      "
	// mroMarker terminates the class-level description.
	mroMarker = "Method resolution order:"
	// universalBase is the base class whose inheritance provenance is
	// suppressed; nearly everything inherits from it.
	universalBase = "vtkObject"
)

// sectionHeaders is the fixed set of section header phrases the scanner
// recognizes. Inherited variants carry the parent class name after "from".
var sectionHeaders = []string{
	"Methods defined here:",
	"Static methods defined here:",
	"Data descriptors defined here:",
	"Data and other attributes defined here:",
	"Methods inherited from",
	"Class methods inherited from",
	"Data descriptors inherited from",
	"Data and other attributes inherited from",
}

// Parser is a two-level scanner over one raw help() dump: the outer level
// tracks the current section, the inner level the current member.
type Parser struct {
	Cleaner Cleaner
}

// NewParser creates a parser with the default cleaning thresholds.
func NewParser() *Parser {
	return &Parser{Cleaner: DefaultCleaner}
}

// ParseHelp parses a raw dump with the default thresholds.
func ParseHelp(helpText, className string) *ClassDoc {
	return NewParser().Parse(helpText, className)
}

// Parse turns one raw help() dump into a ClassDoc. A dump without any
// recognizable section headers yields a ClassDoc with no sections and
// whatever class description was found; that is valid, not an error.
func (p *Parser) Parse(helpText, className string) *ClassDoc {
	lines := strings.Split(helpText, "\n")
	doc := &ClassDoc{
		ClassName:   className,
		Description: p.Cleaner.Clean(classDescription(lines, className)),
	}

	var currentName string
	var currentBody []string

	flush := func() {
		if currentName == "" {
			return
		}
		members := p.extractMembers(currentBody, inheritedParent(currentName))
		// Sections with no surviving members are dropped entirely.
		if len(members) > 0 {
			doc.Sections = append(doc.Sections, Section{Name: currentName, Members: members})
		}
	}

	for _, line := range lines {
		if name, ok := sectionHeaderName(line); ok {
			flush()
			currentName = name
			currentBody = nil
			continue
		}
		if currentName != "" && strings.HasPrefix(line, bodyMargin) {
			currentBody = append(currentBody, line)
		}
	}
	flush()

	return doc
}

// classDescription collects the indented lines between the class's own
// header line and the method-resolution-order metadata.
func classDescription(lines []string, className string) string {
	var collected []string
	inBlock := false
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "class "+className) {
			inBlock = true
			continue
		}
		if strings.Contains(line, mroMarker) {
			break
		}
		if inBlock && strings.HasPrefix(line, bodyMargin) {
			collected = append(collected, line[len(bodyMargin):])
		}
	}
	return strings.Join(collected, "\n")
}

// sectionHeaderName reports whether the line is one of the recognized
// section headers and returns its normalized name (margin stripped).
func sectionHeaderName(line string) (string, bool) {
	for _, h := range sectionHeaders {
		if strings.Contains(line, h) {
			name := strings.TrimSpace(line)
			name = strings.TrimPrefix(name, "|")
			return strings.TrimSpace(name), true
		}
	}
	return "", false
}

// inheritedParent extracts the parent class name from an inherited-section
// header. It returns "" for non-inherited sections and for the universal
// base type, whose provenance is not worth annotating.
func inheritedParent(sectionName string) string {
	if !strings.Contains(strings.ToLower(sectionName), "inherited from") {
		return ""
	}
	idx := strings.LastIndex(sectionName, "from ")
	if idx < 0 {
		return ""
	}
	parent := strings.TrimSpace(strings.TrimSuffix(sectionName[idx+len("from "):], ":"))
	if parent == "" || parent == universalBase {
		return ""
	}
	return parent
}

// extractMembers runs the inner scan over one section's body lines.
// A member start line sits at the section's left margin (not the deeper
// continuation indent), contains an opening parenthesis, and is not a
// separator rule. Everything deeper-indented up to the next member start
// accumulates into the current member's documentation.
func (p *Parser) extractMembers(body []string, parent string) []Member {
	var members []Member
	index := make(map[string]int)

	var name string
	var acc []string

	emit := func() {
		if name == "" {
			return
		}
		cleaned := p.Cleaner.Clean(strings.Join(acc, "\n"))
		if cleaned == "" {
			return
		}
		if parent != "" {
			cleaned = "Inherited from " + parent + ".\n\n" + cleaned
		}
		if i, ok := index[name]; ok {
			members[i].Doc = cleaned
			return
		}
		index[name] = len(members)
		members = append(members, Member{Name: name, Doc: cleaned})
	}

	for _, line := range body {
		stripped := strings.TrimPrefix(line, bodyMargin)
		if isMemberStart(line, stripped) {
			emit()
			name = strings.TrimSpace(stripped[:strings.Index(stripped, "(")])
			acc = nil
			continue
		}
		if name != "" && strings.HasPrefix(line, bodyMargin) {
			acc = append(acc, stripped)
		}
	}
	emit()

	return members
}

func isMemberStart(line, stripped string) bool {
	return strings.HasPrefix(line, bodyMargin) &&
		!strings.HasPrefix(line, continuationIndent) &&
		strings.Contains(stripped, "(") &&
		!strings.HasPrefix(strings.TrimSpace(stripped), "-----")
}
