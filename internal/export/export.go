// Package export writes generated batches to CSV files, one per table.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sync"

	"github.com/gocarina/gocsv"

	"github.com/pgEdge/pgedge-tradegen/internal/logging"
)

func init() {
	// Column headers follow the database column names.
	gocsv.TagName = "db"
}

// Dir writes <table>.csv files into a directory. The first batch of a
// table creates its file with a header row; later batches are appended.
type Dir struct {
	path string

	mu    sync.Mutex
	files map[string]*os.File
	rows  map[string]int
}

// NewDir creates the directory if needed.
func NewDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	return &Dir{
		path:  path,
		files: make(map[string]*os.File),
		rows:  make(map[string]int),
	}, nil
}

// Path returns the export directory.
func (d *Dir) Path() string {
	return d.path
}

// Write appends records, a slice of tagged structs, to the table's file.
// It has the shape of apps.BatchHook.
func (d *Dir) Write(table string, records any) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	f, ok := d.files[table]
	if !ok {
		var err error
		f, err = os.Create(filepath.Join(d.path, table+".csv"))
		if err != nil {
			return fmt.Errorf("failed to create export file for %s: %w", table, err)
		}
		d.files[table] = f
		if err := gocsv.MarshalFile(records, f); err != nil {
			return fmt.Errorf("failed to export %s: %w", table, err)
		}
	} else if err := gocsv.MarshalWithoutHeaders(records, f); err != nil {
		return fmt.Errorf("failed to export %s: %w", table, err)
	}

	if v := reflect.ValueOf(records); v.Kind() == reflect.Slice {
		d.rows[table] += v.Len()
	}
	return nil
}

// Rows returns how many records were exported per table.
func (d *Dir) Rows() map[string]int {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make(map[string]int, len(d.rows))
	for k, v := range d.rows {
		out[k] = v
	}
	return out
}

// Close closes every open file.
func (d *Dir) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var firstErr error
	for table, f := range d.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close export file for %s: %w", table, err)
		}
	}
	d.files = make(map[string]*os.File)

	logging.Debug().Str("dir", d.path).Int("tables", len(d.rows)).Msg("Export closed")
	return firstErr
}
