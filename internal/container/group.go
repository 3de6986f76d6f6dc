package container

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Group is a named node that holds attributes, groups and datasets.
type Group struct {
	f    *File
	id   int64
	name string
}

// Dataset is a named binary payload with attributes.
type Dataset struct {
	Name  string
	Data  []byte
	Attrs map[string]string
}

// Name returns the group name ("/" for the root).
func (g *Group) Name() string { return g.name }

// CreateGroup adds a child group. Names are unique among siblings.
func (g *Group) CreateGroup(ctx context.Context, name string) (*Group, error) {
	id, err := g.insert(ctx, name, kindGroup, nil)
	if err != nil {
		return nil, err
	}
	return &Group{f: g.f, id: id, name: name}, nil
}

// Group returns the child group called name.
func (g *Group) Group(ctx context.Context, name string) (*Group, error) {
	var id int64
	err := g.f.q().QueryRowContext(ctx,
		`SELECT id FROM nodes WHERE parent = ? AND name = ? AND kind = ?`,
		g.id, name, kindGroup,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: group %q in %q", ErrMissing, name, g.name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read group %q: %w", ErrStorage, name, err)
	}
	return &Group{f: g.f, id: id, name: name}, nil
}

// Groups returns the child groups in creation order.
func (g *Group) Groups(ctx context.Context) ([]*Group, error) {
	rows, err := g.f.q().QueryContext(ctx,
		`SELECT id, name FROM nodes WHERE parent = ? AND kind = ? ORDER BY id`,
		g.id, kindGroup,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: list groups of %q: %w", ErrStorage, g.name, err)
	}
	defer rows.Close()

	var out []*Group
	for rows.Next() {
		child := &Group{f: g.f}
		if err := rows.Scan(&child.id, &child.name); err != nil {
			return nil, fmt.Errorf("%w: scan group: %w", ErrStorage, err)
		}
		out = append(out, child)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list groups of %q: %w", ErrStorage, g.name, err)
	}
	return out, nil
}

// SetAttrs sets several attributes at once.
func (g *Group) SetAttrs(ctx context.Context, attrs map[string]string) error {
	return g.f.setAttrs(ctx, g.id, attrs)
}

// Attrs returns every attribute of the group.
func (g *Group) Attrs(ctx context.Context) (map[string]string, error) {
	return g.f.attrs(ctx, g.id)
}

// WriteDataset stores a payload under name with the given attributes.
func (g *Group) WriteDataset(ctx context.Context, name string, data []byte, attrs map[string]string) error {
	id, err := g.insert(ctx, name, kindDataset, data)
	if err != nil {
		return err
	}
	return g.f.setAttrs(ctx, id, attrs)
}

// Dataset reads the payload called name.
func (g *Group) Dataset(ctx context.Context, name string) (*Dataset, error) {
	var (
		id   int64
		data []byte
	)
	err := g.f.q().QueryRowContext(ctx,
		`SELECT id, data FROM nodes WHERE parent = ? AND name = ? AND kind = ?`,
		g.id, name, kindDataset,
	).Scan(&id, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: dataset %q in %q", ErrMissing, name, g.name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read dataset %q: %w", ErrStorage, name, err)
	}
	attrs, err := g.f.attrs(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Dataset{Name: name, Data: data, Attrs: attrs}, nil
}

func (g *Group) insert(ctx context.Context, name, kind string, data []byte) (int64, error) {
	if err := g.f.writable(); err != nil {
		return 0, err
	}
	if name == "" {
		return 0, fmt.Errorf("%w: empty node name", ErrStorage)
	}
	res, err := g.f.tx.ExecContext(ctx,
		`INSERT INTO nodes (parent, name, kind, data) VALUES (?, ?, ?, ?)`,
		g.id, name, kind, data,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %q in %q", ErrExists, name, g.name)
		}
		return 0, fmt.Errorf("%w: create %s %q: %w", ErrStorage, kind, name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: create %s %q: %w", ErrStorage, kind, name, err)
	}
	return id, nil
}

func (f *File) setAttrs(ctx context.Context, node int64, attrs map[string]string) error {
	if err := f.writable(); err != nil {
		return err
	}
	for k, v := range attrs {
		_, err := f.tx.ExecContext(ctx,
			`INSERT INTO attrs (node, key, value) VALUES (?, ?, ?)
			 ON CONFLICT (node, key) DO UPDATE SET value = excluded.value`,
			node, k, v,
		)
		if err != nil {
			return fmt.Errorf("%w: set attribute %q: %w", ErrStorage, k, err)
		}
	}
	return nil
}

func (f *File) attrs(ctx context.Context, node int64) (map[string]string, error) {
	rows, err := f.q().QueryContext(ctx, `SELECT key, value FROM attrs WHERE node = ?`, node)
	if err != nil {
		return nil, fmt.Errorf("%w: read attributes: %w", ErrStorage, err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("%w: scan attribute: %w", ErrStorage, err)
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read attributes: %w", ErrStorage, err)
	}
	return out, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}
