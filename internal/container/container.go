// Package container implements a hierarchical container file: a single file
// holding a tree of named groups and datasets, each carrying string
// attributes. The file is an SQLite database.
package container

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// ErrStorage is the root of every container failure.
var ErrStorage = errors.New("storage error")

// Failures more specific than ErrStorage. All of them match ErrStorage.
var (
	ErrMissing  = fmt.Errorf("%w: missing node", ErrStorage)
	ErrExists   = fmt.Errorf("%w: node already exists", ErrStorage)
	ErrNotFile  = fmt.Errorf("%w: not a container file", ErrStorage)
	ErrReadOnly = fmt.Errorf("%w: container is read-only", ErrStorage)
)

const (
	kindGroup   = "group"
	kindDataset = "dataset"
	rootNode    = 1
)

// sqliteMagic is the header every SQLite database starts with.
var sqliteMagic = []byte("SQLite format 3\x00")

const headerSize = 100

const schema = `
CREATE TABLE nodes (
	id     INTEGER PRIMARY KEY,
	parent INTEGER REFERENCES nodes(id),
	name   TEXT NOT NULL,
	kind   TEXT NOT NULL,
	data   BLOB,
	UNIQUE (parent, name)
);
CREATE TABLE attrs (
	node  INTEGER NOT NULL REFERENCES nodes(id),
	key   TEXT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY (node, key)
);
INSERT INTO nodes (id, parent, name, kind) VALUES (1, NULL, '/', 'group');
`

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// File is an open container. Files from Create are written inside one
// transaction that Commit makes durable; files from Open are read-only.
type File struct {
	path string
	db   *sql.DB
	tx   *sql.Tx
}

// Create makes a new container at path, replacing any database already
// there. Nothing is visible to readers until Commit.
func Create(ctx context.Context, path string) (*File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: path is required", ErrStorage)
	}
	cleanPath := filepath.Clean(path)
	if err := os.Remove(cleanPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	db, err := openDB(ctx, cleanPath, writeParams)
	if err != nil {
		return nil, err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: begin: %w", ErrStorage, err)
	}
	if _, err := tx.ExecContext(ctx, schema); err != nil {
		_ = tx.Rollback()
		_ = db.Close()
		return nil, fmt.Errorf("%w: create schema: %w", ErrStorage, err)
	}
	return &File{path: cleanPath, db: db, tx: tx}, nil
}

// Open opens an existing container for reading. Missing, truncated or
// foreign files fail with an error matching ErrStorage.
func Open(ctx context.Context, path string) (*File, error) {
	cleanPath := filepath.Clean(path)
	if err := checkHeader(cleanPath); err != nil {
		return nil, err
	}

	db, err := openDB(ctx, cleanPath, readParams)
	if err != nil {
		return nil, err
	}
	f := &File{path: cleanPath, db: db}
	if err := f.verify(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return f, nil
}

// Connection parameters. mode=ro keeps a read from ever creating a file.
const (
	writeParams = "_pragma=foreign_keys(ON)&_pragma=synchronous(FULL)&_pragma=journal_mode(DELETE)"
	readParams  = "mode=ro&_pragma=query_only(1)"
)

// fileURI builds the sqlite DSN for path. The path is escaped inside a
// file: URI, so '?', '#' and '%' stay part of the file name instead of
// starting the parameter list.
func fileURI(path, params string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: params}
	return u.String(), nil
}

func openDB(ctx context.Context, path, params string) (*sql.DB, error) {
	dsn, err := fileURI(path, params)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite db: %w", ErrStorage, err)
	}
	// A single connection keeps the write transaction and every read on
	// the same view of the file.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping sqlite db: %w", ErrStorage, err)
	}
	return db, nil
}

func checkHeader(path string) error {
	fh, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	defer fh.Close()

	head := make([]byte, headerSize)
	if _, err := io.ReadFull(fh, head); err != nil {
		return fmt.Errorf("%w: %s: short header", ErrNotFile, path)
	}
	if !bytes.Equal(head[:len(sqliteMagic)], sqliteMagic) {
		return fmt.Errorf("%w: %s", ErrNotFile, path)
	}

	// The in-header page count is trusted only while the change counter
	// matches the version-valid-for number.
	if binary.BigEndian.Uint32(head[24:28]) != binary.BigEndian.Uint32(head[92:96]) {
		return nil
	}
	pageSize := int64(binary.BigEndian.Uint16(head[16:18]))
	if pageSize == 1 {
		pageSize = 65536
	}
	pages := int64(binary.BigEndian.Uint32(head[28:32]))
	info, err := fh.Stat()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if info.Size() < pageSize*pages {
		return fmt.Errorf("%w: %s: truncated (%d of %d bytes)", ErrNotFile, path, info.Size(), pageSize*pages)
	}
	return nil
}

func (f *File) verify(ctx context.Context) error {
	var result string
	if err := f.db.QueryRowContext(ctx, `PRAGMA quick_check`).Scan(&result); err != nil {
		return classify(f.path, err)
	}
	if result != "ok" {
		return fmt.Errorf("%w: %s: %s", ErrNotFile, f.path, result)
	}

	var kind string
	err := f.db.QueryRowContext(ctx, `SELECT kind FROM nodes WHERE id = ?`, rootNode).Scan(&kind)
	if err != nil {
		return classify(f.path, err)
	}
	if kind != kindGroup {
		return fmt.Errorf("%w: %s: root is a %s", ErrNotFile, f.path, kind)
	}
	return nil
}

// classify turns an SQLite failure on open into a storage error.
func classify(path string, err error) error {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() & 0xff {
		case sqlite3lib.SQLITE_NOTADB, sqlite3lib.SQLITE_CORRUPT:
			return fmt.Errorf("%w: %s: %w", ErrNotFile, path, err)
		}
	}
	if errors.Is(err, sql.ErrNoRows) || strings.Contains(err.Error(), "no such table") {
		return fmt.Errorf("%w: %s: missing schema", ErrNotFile, path)
	}
	return fmt.Errorf("%w: %s: %w", ErrStorage, path, err)
}

// Path returns the file location.
func (f *File) Path() string { return f.path }

// Root returns the top-level group.
func (f *File) Root() *Group {
	return &Group{f: f, id: rootNode, name: "/"}
}

func (f *File) q() querier {
	if f.tx != nil {
		return f.tx
	}
	return f.db
}

func (f *File) writable() error {
	if f.tx == nil {
		return ErrReadOnly
	}
	return nil
}

// Commit makes every write durable. The file is read-only afterwards.
func (f *File) Commit() error {
	if err := f.writable(); err != nil {
		return err
	}
	err := f.tx.Commit()
	f.tx = nil
	if err != nil {
		return fmt.Errorf("%w: commit: %w", ErrStorage, err)
	}
	return nil
}

// Close releases the file. Uncommitted writes are discarded.
func (f *File) Close() error {
	if f == nil || f.db == nil {
		return nil
	}
	if f.tx != nil {
		_ = f.tx.Rollback()
		f.tx = nil
	}
	err := f.db.Close()
	f.db = nil
	if err != nil {
		return fmt.Errorf("%w: close: %w", ErrStorage, err)
	}
	return nil
}
