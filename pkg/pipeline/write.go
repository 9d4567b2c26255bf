package pipeline

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pont-us/sedlog-ffq/pkg/errors"
)

// WriteArtifacts writes each artifact to dir under its name and returns
// the written paths in lexical order. dir is created if needed.
func WriteArtifacts(dir string, artifacts map[string][]byte) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create output directory %s", dir)
	}

	names := make([]string, 0, len(artifacts))
	for name := range artifacts {
		names = append(names, name)
	}
	sort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		if err := errors.ValidateOutputName(name); err != nil {
			return paths, err
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, artifacts[name], 0644); err != nil {
			return paths, errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
