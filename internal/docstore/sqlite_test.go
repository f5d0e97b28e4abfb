package docstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteSaveAndQuery(t *testing.T) {
	ctx := context.Background()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "stubdoc.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SaveModule(ctx, "vtkFiltersSources", sampleDocs()))

	n, err := store.ClassCount(ctx, "vtkFiltersSources")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	doc, err := store.MemberDoc(ctx, "vtkSphereSource", "SetRadius")
	require.NoError(t, err)
	assert.Equal(t, "Set the radius of the sphere.", doc)

	doc, err = store.MemberDoc(ctx, "vtkSphereSource", "NoSuchMethod")
	require.NoError(t, err)
	assert.Equal(t, "", doc)
}

func TestSQLiteUpsertReplacesDoc(t *testing.T) {
	ctx := context.Background()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "stubdoc.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SaveModule(ctx, "vtkFiltersSources", sampleDocs()))

	docs := sampleDocs()
	docs["vtkSphereSource"].Sections[0].Members[1].Doc = "Set the sphere radius in world units."
	require.NoError(t, store.SaveModule(ctx, "vtkFiltersSources", docs))

	n, err := store.ClassCount(ctx, "vtkFiltersSources")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	doc, err := store.MemberDoc(ctx, "vtkSphereSource", "SetRadius")
	require.NoError(t, err)
	assert.Equal(t, "Set the sphere radius in world units.", doc)
}

func TestSQLiteSummaries(t *testing.T) {
	ctx := context.Background()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "stubdoc.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SaveModule(ctx, "vtkFiltersSources", sampleDocs()))

	sums, err := store.Summaries(ctx)
	require.NoError(t, err)
	require.Len(t, sums, 1)
	assert.Equal(t, "vtkFiltersSources", sums[0].ModuleName)
	assert.Equal(t, 1, sums[0].Classes)
	assert.Equal(t, 3, sums[0].Members)
}
