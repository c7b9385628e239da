package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/dataviewhub/tableshaper/pkg/tableshaper/models"
)

// Supported dataset file extensions.
const (
	ExtCSV  = ".csv"
	ExtXLSX = ".xlsx"
)

// Dir serves the CSV and xlsx files of a directory. A dataset name is the
// file name with or without its extension; when both forms exist the CSV
// file wins.
type Dir struct {
	root   string
	logger *zap.Logger
}

// NewDir returns a Dir rooted at root. A nil logger disables logging.
func NewDir(root string, logger *zap.Logger) *Dir {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dir{root: root, logger: logger}
}

// Root returns the data directory.
func (d *Dir) Root() string {
	return d.root
}

// Fetch reads the named dataset file.
func (d *Dir) Fetch(ctx context.Context, dataset string) (models.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, err := d.resolve(dataset)
	if err != nil {
		return nil, err
	}
	d.logger.Debug("Reading dataset", zap.String("dataset", dataset), zap.String("path", p))

	switch strings.ToLower(filepath.Ext(p)) {
	case ExtXLSX:
		return readWorkbook(p, d.logger)
	default:
		f, err := os.Open(p)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readCSV(f)
	}
}

// Datasets lists the supported files of the directory, extension removed.
func (d *Dir) Datasets(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ExtCSV && ext != ExtXLSX) {
			d.logger.Debug("Skipping non-dataset entry", zap.String("name", e.Name()))
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// resolve maps a dataset name to a file inside the root directory.
func (d *Dir) resolve(dataset string) (string, error) {
	if dataset == "" {
		return "", fmt.Errorf("%w: empty dataset name", ErrNotFound)
	}
	if filepath.IsAbs(dataset) || !filepath.IsLocal(dataset) {
		return "", fmt.Errorf("%w: %q", ErrOutsideDir, dataset)
	}

	candidates := []string{dataset + ExtCSV, dataset + ExtXLSX}
	switch strings.ToLower(filepath.Ext(dataset)) {
	case ExtCSV, ExtXLSX:
		candidates = []string{dataset}
	}

	for _, c := range candidates {
		p := filepath.Join(d.root, c)
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: %q", ErrNotFound, dataset)
}
