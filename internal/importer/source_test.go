package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const datasetYAML = `
categories:
  - id: veg
    name: Vegetables
    target: {kind: at_least, min: 3}
  - id: treats
    name: Treats
    target: {kind: at_most, max: 1}
  - id: sports
    name: Sports
    unit: min
    target: {kind: at_least, min: 30}
entries:
  - {category: veg, portion: 1.5, day: "2025-03-15"}
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFileSource_LoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dataset.yaml")
	writeFile(t, path, datasetYAML)

	src := &FileSource{Path: path, Options: DefaultConvertOptions()}
	ds, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, ds.Categories, 3)
	assert.Len(t, ds.Entries, 1)
	assert.False(t, ds.Rules.Explicit(), "absent compensation means defaults")

	c, ok := ds.CategoryByID("sports")
	require.True(t, ok)
	assert.Equal(t, "min", c.Unit)
	_, ok = ds.CategoryByID("nope")
	assert.False(t, ok)
}

func TestFileSource_ExplicitEmptyCompensationYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dataset.yaml")
	writeFile(t, path, datasetYAML+"compensation: []\n")

	ds, err := (&FileSource{Path: path, Options: DefaultConvertOptions()}).Load(context.Background())
	require.NoError(t, err)
	assert.True(t, ds.Rules.Explicit())
	assert.Empty(t, ds.Rules.Rules())
}

func TestFileSource_NullCompensationIsUnspecified(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dataset.yaml")
	writeFile(t, path, datasetYAML+"compensation: null\n")

	ds, err := (&FileSource{Path: path, Options: DefaultConvertOptions()}).Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ds.Rules.Explicit())
}

func TestFileSource_LoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dataset.json")
	writeFile(t, path, `{
  "categories": [
    {"id": "dairy", "name": "Dairy", "target": {"kind": "exact", "value": 2, "tolerance": 0.25}}
  ],
  "compensation": [],
  "entries": [{"category": "dairy", "portion": 2.2, "day": "2025-03-15"}]
}`)

	ds, err := (&FileSource{Path: path, Options: DefaultConvertOptions()}).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Categories, 1)
	assert.True(t, ds.Categories[0].Target.IsSatisfied(2.25))
	assert.True(t, ds.Rules.Explicit())
}

func TestFileSource_EntryGlobs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dataset.yaml")
	writeFile(t, path, datasetYAML)
	writeFile(t, filepath.Join(dir, "logs", "2025", "03", "week1.yaml"), `
entries:
  - {category: treats, portion: 0.5, day: "2025-03-15"}
`)
	writeFile(t, filepath.Join(dir, "logs", "2025", "03", "week2.json"), `{"entries": [{"category": "Sports", "portion": 45, "day": "2025-03-16"}]}`)
	writeFile(t, filepath.Join(dir, "logs", "notes.txt"), "not an entry file")

	src := &FileSource{
		Path:       path,
		EntryGlobs: []string{"logs/**/*.yaml", "logs/**/*.json", "logs/**/week1.yaml"},
		Options:    DefaultConvertOptions(),
	}
	ds, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Entries, 3)
}

func TestFileSource_InvalidDataset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dataset.yaml")
	writeFile(t, path, datasetYAML+`
  - {category: veg, portion: 0.33, day: "2025-03-15"}
`)
	writeFile(t, filepath.Join(dir, "extra.yaml"), `
entries:
  - {category: ghost, portion: 1, day: "2025-03-15"}
`)

	_, err := (&FileSource{Path: path, EntryGlobs: []string{"extra.yaml"}, Options: DefaultConvertOptions()}).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataset)
	assert.Contains(t, err.Error(), "entries[1].portion 0.33 is not a multiple of 0.1")
	assert.Contains(t, err.Error(), `extra.yaml[0].category: unknown category "ghost"`)
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := (&FileSource{Path: filepath.Join(t.TempDir(), "missing.yaml")}).Load(context.Background())
	assert.Error(t, err)
}

func TestFileSource_Cancelled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dataset.yaml")
	writeFile(t, path, datasetYAML)
	writeFile(t, filepath.Join(dir, "extra.yaml"), "entries: []\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := (&FileSource{Path: path, EntryGlobs: []string{"*.yaml"}, Options: DefaultConvertOptions()}).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExpandEntryGlobs_InvalidPattern(t *testing.T) {
	_, err := ExpandEntryGlobs(t.TempDir(), []string{"logs/[.yaml"})
	assert.Error(t, err)
}
