package stubs

import (
	"context"
	"regexp"
	"strings"

	"stubdoc/internal/helptext"
)

const placeholderDoc = "."

// Enhancer merges extracted class documentation into .pyi stub text.
// Matching is exact and case sensitive in both directions: documented
// members missing from the stub are skipped, stub members missing from the
// documentation are left bare.
type Enhancer struct {
	docs map[string]*helptext.ClassDoc
}

// NewEnhancer creates an enhancer over one module's documentation.
func NewEnhancer(docs map[string]*helptext.ClassDoc) *Enhancer {
	return &Enhancer{docs: docs}
}

// Enhance returns stubText with docstrings injected for every documented
// class, and whether any edit was made. A stub that fails syntax validation
// is returned unchanged. With no matching documentation the output is
// byte-identical to the input.
func (e *Enhancer) Enhance(ctx context.Context, stubText string) (string, bool) {
	valid, err := Validate(ctx, []byte(stubText))
	if err != nil || !valid {
		return stubText, false
	}

	var b strings.Builder
	b.Grow(len(stubText))
	changed := false
	prev := 0
	for _, blk := range SplitBlocks(stubText) {
		b.WriteString(stubText[prev:blk.Start])
		block := stubText[blk.Start:blk.End]
		if doc, ok := e.docs[blk.Name]; ok {
			mutated := enhanceBlock(block, doc)
			if mutated != block {
				changed = true
				block = mutated
			}
		}
		b.WriteString(block)
		prev = blk.End
	}
	b.WriteString(stubText[prev:])

	return b.String(), changed
}

var (
	reClassDefLine  = regexp.MustCompile(`(?m)^class\s+\w+[^\n]*:`)
	reLeadingDoc    = regexp.MustCompile(`^\n[ \t]+"""(?s:.*?)"""`)
	reOverloadNames = regexp.MustCompile(`(?m)^[ \t]+@overload\s*\n[ \t]+def (\w+)\(`)
)

// enhanceBlock applies all edits for one class block: the class docstring,
// per-member docstrings, then the placeholder pass over overload groups that
// ended up with no documentation anywhere.
func enhanceBlock(block string, doc *helptext.ClassDoc) string {
	if doc.Description != "" {
		block = insertClassDoc(block, doc.Description)
	}
	for name, memberDoc := range doc.MemberDocs() {
		block = injectMember(block, name, memberDoc)
	}
	for _, name := range undocumentedOverloadGroups(block) {
		block = injectMember(block, name, placeholderDoc)
	}
	return block
}

// insertClassDoc places the class docstring on the line after the class
// header, replacing an existing leading docstring if the generator emitted
// one.
func insertClassDoc(block, desc string) string {
	m := reClassDefLine.FindStringIndex(block)
	if m == nil {
		return block
	}
	docLine := "\n    \"\"\"" + desc + "\"\"\""
	rest := block[m[1]:]
	if loc := reLeadingDoc.FindStringIndex(rest); loc != nil {
		return block[:m[1]] + docLine + rest[loc[1]:]
	}
	return block[:m[1]] + docLine + rest
}

// injectMember attaches doc to the member's signature inside block.
// Overloaded signatures win: with @overload occurrences present the
// docstring lands on the last one only, so earlier overloads stay bare.
// Otherwise the plain (possibly @staticmethod) signature is annotated.
// A member that already carries a docstring is left alone.
func injectMember(block, name, doc string) string {
	q := regexp.QuoteMeta(name)
	sig := `\([^)]*\)(?:\s*->\s*[^:\n]+)?:`

	documented := regexp.MustCompile(`(?m)def ` + q + sig + `\n[ \t]*"""`)
	if documented.MatchString(block) {
		return block
	}

	overload := regexp.MustCompile(`(?m)^([ \t]+)@overload\s*\n[ \t]+def ` + q + sig + `[ \t]*\.\.\.[ \t]*$`)
	if locs := overload.FindAllStringSubmatchIndex(block, -1); len(locs) > 0 {
		return annotateAt(block, locs[len(locs)-1], doc)
	}

	plain := regexp.MustCompile(`(?m)^([ \t]+)(?:@staticmethod\s*\n[ \t]+)?def ` + q + sig + `[ \t]*\.\.\.[ \t]*$`)
	if loc := plain.FindStringSubmatchIndex(block); loc != nil {
		return annotateAt(block, loc, doc)
	}

	return block
}

// annotateAt rewrites one matched signature, moving the ellipsis body onto
// its own line below the new docstring.
func annotateAt(block string, loc []int, doc string) string {
	matched := block[loc[0]:loc[1]]
	body := block[loc[2]:loc[3]] + "    "

	idx := strings.LastIndex(matched, "...")
	head := strings.TrimRight(matched[:idx], " \t")
	replaced := head + "\n" + body + "\"\"\"" + doc + "\"\"\"" + "\n" + body + "..."

	return block[:loc[0]] + replaced + block[loc[1]:]
}

// undocumentedOverloadGroups returns names with two or more @overload
// occurrences in block where no occurrence carries a docstring. These get
// the placeholder so consumers can tell "no documentation" from "signature
// never emitted".
func undocumentedOverloadGroups(block string) []string {
	counts := make(map[string]int)
	var order []string
	for _, m := range reOverloadNames.FindAllStringSubmatch(block, -1) {
		name := m[1]
		if counts[name] == 0 {
			order = append(order, name)
		}
		counts[name]++
	}

	var groups []string
	for _, name := range order {
		if counts[name] < 2 {
			continue
		}
		documented := regexp.MustCompile(`(?m)def ` + regexp.QuoteMeta(name) + `\([^)]*\)(?:\s*->\s*[^:\n]+)?:\n[ \t]*"""`)
		if !documented.MatchString(block) {
			groups = append(groups, name)
		}
	}
	return groups
}
