package stubs

import "regexp"

// ClassBlock is the byte range of one top-level class definition inside a
// stub file, from its header line up to the next top-level class header or
// end of file. All docstring edits are scoped to one block; bytes outside
// the block are never touched.
type ClassBlock struct {
	Name  string
	Start int
	End   int
}

var reClassHeader = regexp.MustCompile(`(?m)^class\s+(\w+)`)

// SplitBlocks slices stubText into its top-level class blocks, in file order.
// Text before the first class header belongs to no block.
func SplitBlocks(stubText string) []ClassBlock {
	matches := reClassHeader.FindAllStringSubmatchIndex(stubText, -1)
	blocks := make([]ClassBlock, 0, len(matches))
	for i, m := range matches {
		end := len(stubText)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		blocks = append(blocks, ClassBlock{
			Name:  stubText[m[2]:m[3]],
			Start: m[0],
			End:   end,
		})
	}
	return blocks
}
