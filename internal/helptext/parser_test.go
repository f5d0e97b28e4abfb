package helptext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sphereHelp = `Help on vtkSphereSource in module vtkmodules.vtkFiltersSources object:

class vtkSphereSource(vtkmodules.vtkCommonExecutionModel.vtkPolyDataAlgorithm)
 |  vtkSphereSource - create a polygonal sphere centered at the origin
 |
 |  vtkSphereSource creates a sphere of specified radius centered at the origin.
 |
 |  Method resolution order:
 |      vtkSphereSource
 |      vtkmodules.vtkCommonExecutionModel.vtkPolyDataAlgorithm
 |      vtkmodules.vtkCommonCore.vtkObject
 |      builtins.object
 |
 |  Methods defined here:
 |
 |  SetRadius(self, radius:float) -> None
 |      Set the radius of the sphere.
 |
 |  GetRadius(self) -> float
 |      Get the radius of the sphere.
 |      C++: double GetRadius();
 |
 |  ----------------------------------------------------------------------
 |  Static methods defined here:
 |
 |  ----------------------------------------------------------------------
 |  Methods inherited from vtkPolyDataAlgorithm:
 |
 |  GetOutput(self) -> vtkPolyData
 |      Get the output data.
 |
 |  ----------------------------------------------------------------------
 |  Methods inherited from vtkObject:
 |
 |  Modified(self) -> None
 |      Update the modification time for this object.
`

func TestParseClassDescription(t *testing.T) {
	doc := ParseHelp(sphereHelp, "vtkSphereSource")

	assert.Equal(t, "vtkSphereSource", doc.ClassName)
	assert.Contains(t, doc.Description, "create a polygonal sphere")
	assert.NotContains(t, doc.Description, "Method resolution order")
	assert.NotContains(t, doc.Description, "builtins.object")
}

func TestParseOwnMethods(t *testing.T) {
	doc := ParseHelp(sphereHelp, "vtkSphereSource")

	sec := doc.Section("Methods defined here:")
	require.NotNil(t, sec)
	require.Len(t, sec.Members, 2)

	assert.Equal(t, "SetRadius", sec.Members[0].Name)
	assert.Equal(t, "Set the radius of the sphere.", sec.Members[0].Doc)
	assert.Equal(t, "GetRadius", sec.Members[1].Name)
	assert.Equal(t, "Get the radius of the sphere.", sec.Members[1].Doc)
}

func TestParseInheritedPrefix(t *testing.T) {
	doc := ParseHelp(sphereHelp, "vtkSphereSource")

	sec := doc.Section("Methods inherited from vtkPolyDataAlgorithm:")
	require.NotNil(t, sec)
	require.Len(t, sec.Members, 1)
	assert.Equal(t, "GetOutput", sec.Members[0].Name)
	assert.Equal(t, "Inherited from vtkPolyDataAlgorithm.\n\nGet the output data.", sec.Members[0].Doc)
}

func TestParseUniversalBaseNotPrefixed(t *testing.T) {
	doc := ParseHelp(sphereHelp, "vtkSphereSource")

	sec := doc.Section("Methods inherited from vtkObject:")
	require.NotNil(t, sec)
	require.Len(t, sec.Members, 1)
	assert.Equal(t, "Modified", sec.Members[0].Name)
	assert.Equal(t, "Update the modification time for this object.", sec.Members[0].Doc)
}

func TestParseDropsEmptySections(t *testing.T) {
	doc := ParseHelp(sphereHelp, "vtkSphereSource")

	assert.Nil(t, doc.Section("Static methods defined here:"))
	for _, sec := range doc.Sections {
		assert.NotEmpty(t, sec.Members, "section %q", sec.Name)
	}
}

func TestParseSectionOrderPreserved(t *testing.T) {
	doc := ParseHelp(sphereHelp, "vtkSphereSource")

	var names []string
	for _, sec := range doc.Sections {
		names = append(names, sec.Name)
	}
	assert.Equal(t, []string{
		"Methods defined here:",
		"Methods inherited from vtkPolyDataAlgorithm:",
		"Methods inherited from vtkObject:",
	}, names)
}

func TestParseMemberWithoutBodyDropped(t *testing.T) {
	help := strings.Join([]string{
		"class vtkEmpty(builtins.object)",
		" |  Method resolution order:",
		" |      vtkEmpty",
		" |",
		" |  Methods defined here:",
		" |",
		" |  Documented(self) -> None",
		" |      Does something.",
		" |",
		" |  Undocumented(self) -> None",
		" |",
	}, "\n")

	doc := ParseHelp(help, "vtkEmpty")
	sec := doc.Section("Methods defined here:")
	require.NotNil(t, sec)
	require.Len(t, sec.Members, 1)
	assert.Equal(t, "Documented", sec.Members[0].Name)
}

func TestParseNoRecognizedHeaders(t *testing.T) {
	doc := ParseHelp("just some free text\nwith no structure at all", "vtkNothing")

	assert.Empty(t, doc.Sections)
	assert.Equal(t, "", doc.Description)
	assert.True(t, doc.Empty())
}

func TestParseDuplicateMemberKeepsLastDoc(t *testing.T) {
	help := strings.Join([]string{
		"class vtkDup(builtins.object)",
		" |  Method resolution order:",
		" |      vtkDup",
		" |",
		" |  Methods defined here:",
		" |",
		" |  SetValue(self, v:int) -> None",
		" |      First overload form.",
		" |",
		" |  SetValue(self, v:float) -> None",
		" |      Second overload form.",
	}, "\n")

	doc := ParseHelp(help, "vtkDup")
	sec := doc.Section("Methods defined here:")
	require.NotNil(t, sec)
	require.Len(t, sec.Members, 1)
	assert.Equal(t, "SetValue", sec.Members[0].Name)
	assert.Equal(t, "Second overload form.", sec.Members[0].Doc)
}

func TestMemberDocsFlattening(t *testing.T) {
	doc := ParseHelp(sphereHelp, "vtkSphereSource")

	docs := doc.MemberDocs()
	assert.Len(t, docs, 4)
	assert.Equal(t, "Set the radius of the sphere.", docs["SetRadius"])
	assert.Equal(t, 4, doc.MemberCount())
	assert.False(t, doc.Empty())
}
