package db

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MemStore is an in-memory Store used for dry runs, exports and tests. It
// enforces primary key uniqueness and foreign keys the way PostgreSQL
// would, against committed and pending rows alike. Schema changes take
// effect immediately and are not undone by Rollback.
type MemStore struct {
	mu      sync.Mutex
	order   []string
	tables  map[string]*memTable
	commits int
}

type memTable struct {
	def     Table
	columns []string
	rows    []map[string]any
	pending []map[string]any
	keys    map[string]bool
	pkeys   map[string]bool
}

// NewMemStore creates an empty store.
func NewMemStore() *MemStore {
	return &MemStore{tables: make(map[string]*memTable)}
}

// DropSchema removes the given tables.
func (s *MemStore) DropSchema(ctx context.Context, tables []Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range tables {
		delete(s.tables, t.Name)
	}
	kept := s.order[:0]
	for _, name := range s.order {
		if _, ok := s.tables[name]; ok {
			kept = append(kept, name)
		}
	}
	s.order = kept
	return nil
}

// CreateSchema registers the given tables.
func (s *MemStore) CreateSchema(ctx context.Context, tables []Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range tables {
		if _, ok := s.tables[t.Name]; ok {
			return fmt.Errorf("relation %q already exists", t.Name)
		}
		s.tables[t.Name] = &memTable{
			def:   t,
			keys:  make(map[string]bool),
			pkeys: make(map[string]bool),
		}
		s.order = append(s.order, t.Name)
	}
	return nil
}

// BulkInsert validates and stages rows for table.
func (s *MemStore) BulkInsert(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[table]
	if !ok {
		return 0, fmt.Errorf("relation %q does not exist", table)
	}
	if t.columns == nil {
		t.columns = append([]string(nil), columns...)
	}

	staged := make([]map[string]any, 0, len(rows))
	for i, values := range rows {
		if len(values) != len(columns) {
			return 0, fmt.Errorf("%s row %d: expected %d values, got %d",
				table, i, len(columns), len(values))
		}
		row := make(map[string]any, len(columns))
		for j, col := range columns {
			row[col] = values[j]
		}
		if err := s.checkForeignKeys(t, row); err != nil {
			return 0, err
		}
		key := keyOf(t.def.PrimaryKey, row)
		if key != "" {
			if t.keys[key] || t.pkeys[key] {
				return 0, fmt.Errorf("duplicate key value violates primary key on %s: %s", table, key)
			}
			t.pkeys[key] = true
		}
		staged = append(staged, row)
	}

	t.pending = append(t.pending, staged...)
	return int64(len(staged)), nil
}

func (s *MemStore) checkForeignKeys(t *memTable, row map[string]any) error {
	for _, fk := range t.def.ForeignKeys {
		v := row[fk.Column]
		if v == nil {
			continue
		}
		ref, ok := s.tables[fk.RefTable]
		if !ok {
			return fmt.Errorf("%s.%s references missing relation %q", t.def.Name, fk.Column, fk.RefTable)
		}
		key := fmt.Sprint(v)
		if !ref.keys[key] && !ref.pkeys[key] {
			return fmt.Errorf("insert on %s violates foreign key %s: %s not present in %s.%s",
				t.def.Name, fk.Column, key, fk.RefTable, fk.RefColumn)
		}
	}
	return nil
}

// Commit makes staged rows visible.
func (s *MemStore) Commit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tables {
		t.rows = append(t.rows, t.pending...)
		for k := range t.pkeys {
			t.keys[k] = true
		}
		t.pending = nil
		t.pkeys = make(map[string]bool)
	}
	s.commits++
	return nil
}

// Rollback discards staged rows.
func (s *MemStore) Rollback(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tables {
		t.pending = nil
		t.pkeys = make(map[string]bool)
	}
	return nil
}

// Tables returns the names of existing tables in creation order.
func (s *MemStore) Tables() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...)
}

// Count returns the number of committed rows in table.
func (s *MemStore) Count(table string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tables[table]; ok {
		return len(t.rows)
	}
	return 0
}

// Rows returns the committed rows of table keyed by column name.
func (s *MemStore) Rows(table string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tables[table]; ok {
		return append([]map[string]any(nil), t.rows...)
	}
	return nil
}

// Columns returns the column order rows of table were inserted with.
func (s *MemStore) Columns(table string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tables[table]; ok {
		return append([]string(nil), t.columns...)
	}
	return nil
}

// Commits returns how many times Commit has been called.
func (s *MemStore) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

func keyOf(columns []string, row map[string]any) string {
	if len(columns) == 0 {
		return ""
	}
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = fmt.Sprint(row[c])
	}
	return strings.Join(parts, "|")
}
