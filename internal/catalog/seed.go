package catalog

import (
	"bytes"
	"context"
	"embed"
	"fmt"

	"github.com/vytor/linguacards/internal/logger"
)

//go:embed seed/catalog.json
var seedFS embed.FS

// Builtin returns the catalog shipped with the binary.
func Builtin() (*File, error) {
	b, err := seedFS.ReadFile("seed/catalog.json")
	if err != nil {
		return nil, err
	}
	return ReadJSON(bytes.NewReader(b))
}

// Seed fills an empty catalog, from path when given and from the built-in
// catalog otherwise. A catalog that already has languages is left alone.
func (im *Importer) Seed(ctx context.Context, path string) (*ImportResult, error) {
	log := logger.FromContext(ctx).WithPrefix("catalog")

	n, err := im.languages.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count languages: %w", err)
	}
	if n > 0 {
		log.Debug("catalog already has %d languages, skipping seed", n)
		return &ImportResult{}, nil
	}

	if path != "" {
		return im.ImportFile(ctx, path)
	}

	file, err := Builtin()
	if err != nil {
		return nil, fmt.Errorf("load built-in catalog: %w", err)
	}
	log.Info("seeding built-in catalog")
	return im.Import(ctx, file)
}
