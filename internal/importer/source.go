package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/alexanderramin/portions/internal/domain"
	"github.com/bmatcuk/doublestar/v4"
)

// ErrInvalidDataset wraps validation failures returned by FileSource.Load.
var ErrInvalidDataset = errors.New("invalid dataset")

// FileSource loads a dataset file plus any entry logs matched by EntryGlobs.
// Globs are relative to the dataset file's directory and support "**".
type FileSource struct {
	Path       string
	EntryGlobs []string
	Options    ConvertOptions
}

// ExpandEntryGlobs returns the sorted, de-duplicated files under root matched
// by patterns.
func ExpandEntryGlobs(root string, patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	fsys := os.DirFS(root)
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid entry glob %q", pattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding entry glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			path := filepath.Join(root, filepath.FromSlash(m))
			if !seen[path] {
				seen[path] = true
				files = append(files, path)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// Load reads, validates and converts the dataset. Validation failures are
// joined and wrapped with ErrInvalidDataset.
func (s *FileSource) Load(ctx context.Context) (*Dataset, error) {
	schema, err := LoadDatasetSchema(s.Path)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	refs := newCategoryRefs()
	errs := validateDataset(schema, refs)

	files, err := ExpandEntryGlobs(filepath.Dir(s.Path), s.EntryGlobs)
	if err != nil {
		return nil, err
	}
	var extra []EntryImport
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if filepath.Clean(f) == filepath.Clean(s.Path) {
			continue
		}
		es, err := LoadEntriesSchema(f)
		if err != nil {
			return nil, fmt.Errorf("loading entries: %w", err)
		}
		errs = append(errs, validateEntries(filepath.Base(f), es.Entries, refs)...)
		extra = append(extra, es.Entries...)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, errors.Join(errs...))
	}

	schema.Entries = append(schema.Entries, extra...)
	ds, err := Convert(schema, s.Options)
	if err != nil {
		return nil, fmt.Errorf("converting dataset: %w", err)
	}
	return ds, nil
}

// CategoryByID returns the category with the given ID.
func (d *Dataset) CategoryByID(id string) (domain.Category, bool) {
	for _, c := range d.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Category{}, false
}
