package markdown

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stubdoc/internal/helptext"
)

func sphereDoc() *helptext.ClassDoc {
	return &helptext.ClassDoc{
		ClassName:   "vtkSphereSource",
		ModuleName:  "vtkFiltersSources",
		Description: "Create a polygonal sphere.",
		Sections: []helptext.Section{
			{Name: "Methods defined here:", Members: []helptext.Member{
				{Name: "SetRadius", Doc: "Set the radius of the sphere."},
				{Name: "GetRadius", Doc: "Get the radius of the sphere."},
			}},
		},
	}
}

func TestRenderClass(t *testing.T) {
	page := RenderClass(sphereDoc())

	assert.Contains(t, page, "# vtkSphereSource\n")
	assert.Contains(t, page, "Create a polygonal sphere.")
	assert.Contains(t, page, "## Methods defined here\n")
	// Members are sorted by name.
	assert.Less(t,
		strings.Index(page, "### GetRadius"),
		strings.Index(page, "### SetRadius"))
}

func TestRenderClassNoDescription(t *testing.T) {
	doc := sphereDoc()
	doc.Description = ""
	page := RenderClass(doc)

	assert.Contains(t, page, "*No documentation available.*")
}

func TestGenerateModule(t *testing.T) {
	out := t.TempDir()
	docs := map[string]*helptext.ClassDoc{"vtkSphereSource": sphereDoc()}

	require.NoError(t, NewGenerator(out).GenerateModule("vtkFiltersSources", docs))

	page, err := os.ReadFile(filepath.Join(out, "vtkFiltersSources", "vtkSphereSource.md"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "# vtkSphereSource")

	index, err := os.ReadFile(filepath.Join(out, "vtkFiltersSources", "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "# vtkFiltersSources")
	assert.Contains(t, string(index), "[vtkSphereSource](vtkSphereSource.md) (2 documented members)")
}
