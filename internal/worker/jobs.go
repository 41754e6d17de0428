package worker

import (
	"context"
	"path/filepath"

	"github.com/vytor/linguacards/internal/catalog"
)

// ImportFileJob loads one catalog file. Done receives the outcome on
// success or failure.
type ImportFileJob struct {
	Importer *catalog.Importer
	Path     string
	Done     func(path string, result *catalog.ImportResult, err error)
}

func (j *ImportFileJob) Name() string { return "import_" + filepath.Base(j.Path) }

func (j *ImportFileJob) Run(ctx context.Context) error {
	result, err := j.Importer.ImportFile(ctx, j.Path)
	if j.Done != nil {
		j.Done(j.Path, result, err)
	}
	return err
}
