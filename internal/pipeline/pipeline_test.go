package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stubdoc/internal/config"
	"stubdoc/internal/docstore"
	"stubdoc/internal/helptext"
)

const coneHelp = `class vtkConeSource(vtkPolyDataAlgorithm)
 |  vtkConeSource - generate polygonal cone
 |
 |  Method resolution order:
 |      vtkConeSource
 |
 |  Methods defined here:
 |
 |  SetHeight(self, height:float) -> None
 |      Set the height of the cone.
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Paths.Docs = filepath.Join(base, "docs")
	cfg.Paths.Stubs = filepath.Join(base, "stubs")
	cfg.Paths.Enhanced = filepath.Join(base, "enhanced")
	cfg.Pipeline.Workers = 2
	cfg.Pipeline.UnitTimeoutSec = 30
	return cfg
}

// mapProvider serves canned dumps, or an error for modules it doesn't know.
type mapProvider struct {
	dumps map[string]map[string]string
}

func (p *mapProvider) ModuleHelp(ctx context.Context, moduleName string) (map[string]string, error) {
	d, ok := p.dumps[moduleName]
	if !ok {
		return nil, fmt.Errorf("no such module: %s", moduleName)
	}
	return d, nil
}

func TestExtractAll(t *testing.T) {
	cfg := testConfig(t)
	prov := &mapProvider{dumps: map[string]map[string]string{
		"vtkFiltersSources": {"vtkConeSource": coneHelp},
	}}

	report, err := New(cfg, prov).ExtractAll(context.Background(), []string{"vtkFiltersSources"})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Summary.Total)
	assert.Equal(t, 0, report.Summary.Failed)

	docs, err := docstore.NewStore(cfg.Paths.Docs).Load("vtkFiltersSources")
	require.NoError(t, err)
	require.Contains(t, docs, "vtkConeSource")
	assert.Equal(t, "Set the height of the cone.", docs["vtkConeSource"].MemberDocs()["SetHeight"])
}

func TestExtractAllUnitFailureDoesNotStopBatch(t *testing.T) {
	cfg := testConfig(t)
	prov := &mapProvider{dumps: map[string]map[string]string{
		"vtkFiltersSources": {"vtkConeSource": coneHelp},
	}}

	report, err := New(cfg, prov).ExtractAll(context.Background(), []string{"vtkFiltersSources", "vtkBroken"})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Summary.Total)
	assert.Equal(t, 1, report.Summary.Failed)
	assert.Equal(t, 1, report.Summary.Enhanced)
}

func TestEnhanceAll(t *testing.T) {
	cfg := testConfig(t)

	docs := map[string]*helptext.ClassDoc{
		"vtkConeSource": {
			ClassName:   "vtkConeSource",
			Description: "Generate a polygonal cone.",
			Sections: []helptext.Section{
				{Name: "Methods defined here:", Members: []helptext.Member{
					{Name: "SetHeight", Doc: "Set the height of the cone."},
				}},
			},
		},
	}
	require.NoError(t, docstore.NewStore(cfg.Paths.Docs).Save("vtkFiltersSources", docs))

	require.NoError(t, os.MkdirAll(cfg.Paths.Stubs, 0755))
	stub := "class vtkConeSource(vtkPolyDataAlgorithm):\n    def SetHeight(self, height:float) -> None: ...\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Paths.Stubs, "vtkFiltersSources.pyi"), []byte(stub), 0644))

	report, err := New(cfg, nil).EnhanceAll(context.Background(), nil, false)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Summary.Enhanced)

	out, err := os.ReadFile(filepath.Join(cfg.Paths.Enhanced, "vtkFiltersSources.pyi"))
	require.NoError(t, err)
	assert.Contains(t, string(out), `"""Generate a polygonal cone."""`)
	assert.Contains(t, string(out), `"""Set the height of the cone."""`)
}

func TestEnhanceAllSkipsExistingWithoutRestart(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, docstore.NewStore(cfg.Paths.Docs).Save("vtkFiltersSources", nil))

	require.NoError(t, os.MkdirAll(cfg.Paths.Stubs, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Paths.Stubs, "vtkFiltersSources.pyi"), []byte("class vtkX:\n    pass\n"), 0644))
	require.NoError(t, os.MkdirAll(cfg.Paths.Enhanced, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Paths.Enhanced, "vtkFiltersSources.pyi"), []byte("existing"), 0644))

	report, err := New(cfg, nil).EnhanceAll(context.Background(), nil, false)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Summary.Copied)

	out, err := os.ReadFile(filepath.Join(cfg.Paths.Enhanced, "vtkFiltersSources.pyi"))
	require.NoError(t, err)
	assert.Equal(t, "existing", string(out))
}

func TestEnhanceAllRestartRewritesOutput(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, docstore.NewStore(cfg.Paths.Docs).Save("vtkFiltersSources", nil))

	require.NoError(t, os.MkdirAll(cfg.Paths.Stubs, 0755))
	stub := "class vtkX:\n    pass\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Paths.Stubs, "vtkFiltersSources.pyi"), []byte(stub), 0644))
	require.NoError(t, os.MkdirAll(cfg.Paths.Enhanced, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Paths.Enhanced, "vtkFiltersSources.pyi"), []byte("stale"), 0644))

	report, err := New(cfg, nil).EnhanceAll(context.Background(), nil, true)
	require.NoError(t, err)
	// No docs match, so the stub passes through unmodified.
	assert.Equal(t, 1, report.Summary.Copied)

	out, err := os.ReadFile(filepath.Join(cfg.Paths.Enhanced, "vtkFiltersSources.pyi"))
	require.NoError(t, err)
	assert.Equal(t, stub, string(out))
}

func TestReportFinalize(t *testing.T) {
	r := NewReport()
	r.Add(UnitResult{Module: "b", Status: StatusEnhanced, DurationMS: 20})
	r.Add(UnitResult{Module: "a", Status: StatusFailed, DurationMS: 5})
	r.Add(UnitResult{Module: "c", Status: StatusTimeout, DurationMS: 300})
	r.Finalize()

	assert.Equal(t, 3, r.Summary.Total)
	assert.Equal(t, 1, r.Summary.Enhanced)
	assert.Equal(t, 1, r.Summary.Failed)
	assert.Equal(t, 1, r.Summary.Timeout)
	assert.InDelta(t, 1.0/3.0, r.Summary.SuccessRate, 1e-9)
	assert.Equal(t, "a", r.Units[0].Module)

	fastest, slowest, ok := r.extremes()
	require.True(t, ok)
	assert.Equal(t, "a", fastest.Module)
	assert.Equal(t, "c", slowest.Module)
}

func TestReportSave(t *testing.T) {
	r := NewReport()
	r.Add(UnitResult{Module: "vtkCommonCore", Status: StatusEnhanced})
	r.Finalize()

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, r.Save(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"vtkCommonCore"`)
	assert.Contains(t, string(b), `"success_rate"`)
}
