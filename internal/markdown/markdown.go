package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"stubdoc/internal/helptext"
)

const noDocFallback = "*No documentation available.*"

// Generator renders the documentation database into browsable markdown:
// one page per class plus an index page per module.
type Generator struct {
	OutDir string
}

func NewGenerator(outDir string) *Generator {
	return &Generator{OutDir: outDir}
}

// GenerateModule writes one module's pages under <out>/<module>/.
func (g *Generator) GenerateModule(moduleName string, docs map[string]*helptext.ClassDoc) error {
	moduleDir := filepath.Join(g.OutDir, moduleName)
	if err := os.MkdirAll(moduleDir, 0755); err != nil {
		return err
	}

	classNames := make([]string, 0, len(docs))
	for name := range docs {
		classNames = append(classNames, name)
	}
	sort.Strings(classNames)

	for _, name := range classNames {
		page := RenderClass(docs[name])
		path := filepath.Join(moduleDir, name+".md")
		if err := os.WriteFile(path, []byte(page), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	index := renderIndex(moduleName, classNames, docs)
	return os.WriteFile(filepath.Join(moduleDir, "README.md"), []byte(index), 0644)
}

// RenderClass renders one class page: description, then each section with
// its members sorted by name.
func RenderClass(doc *helptext.ClassDoc) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", doc.ClassName)

	if doc.Description != "" {
		sb.WriteString(doc.Description)
	} else {
		sb.WriteString(noDocFallback)
	}
	sb.WriteString("\n")

	for _, sec := range doc.Sections {
		fmt.Fprintf(&sb, "\n## %s\n", strings.TrimSuffix(sec.Name, ":"))

		members := make([]helptext.Member, len(sec.Members))
		copy(members, sec.Members)
		sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })

		for _, m := range members {
			fmt.Fprintf(&sb, "\n### %s\n\n", m.Name)
			if m.Doc != "" {
				sb.WriteString(m.Doc)
			} else {
				sb.WriteString(noDocFallback)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func renderIndex(moduleName string, classNames []string, docs map[string]*helptext.ClassDoc) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", moduleName)
	fmt.Fprintf(&sb, "%d documented classes.\n\n", len(classNames))

	for _, name := range classNames {
		fmt.Fprintf(&sb, "- [%s](%s.md) (%d documented members)\n", name, name, docs[name].MemberCount())
	}
	return sb.String()
}
