// Package persist saves projects to container files and loads them back.
//
// File layout:
//
//	/                     format=zinspector version=1
//	  <project id>/       kind=Project id=<id> name=<name>
//	    meshes/
//	      <mesh id>/      kind=Mesh id=<id> name=<name>
//	        data          format=<storage tag>  (dataset)
//
// Ids are written for diagnostics only. Load always assigns fresh ids.
package persist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/fyrsmithlabs/zinspector/internal/container"
	"github.com/fyrsmithlabs/zinspector/internal/mesh"
	"github.com/fyrsmithlabs/zinspector/internal/model"
)

// File format markers on the root group.
const (
	FormatName = "zinspector"
	Version    = "1"
)

const (
	attrFormat  = "format"
	attrVersion = "version"
	attrKind    = "kind"
	attrID      = "id"
	attrName    = "name"

	meshesGroup = "meshes"
	dataName    = "data"
)

// Errors returned by Load for files that open but do not hold projects.
var (
	ErrNotProjectFile = fmt.Errorf("%w: not a zinspector project file", container.ErrStorage)
	ErrNoProject      = fmt.Errorf("%w: file holds no project", container.ErrStorage)
)

// Codec saves and loads projects. The zero value is not usable; call New.
type Codec struct {
	storageFormat mesh.Format
	workers       int
}

// Option configures a Codec.
type Option func(*Codec)

// WithStorageFormat sets the encoding for mesh payloads on disk.
func WithStorageFormat(f mesh.Format) Option {
	return func(c *Codec) {
		if f != "" {
			c.storageFormat = f
		}
	}
}

// WithWorkers bounds how many payloads are encoded or decoded at once.
func WithWorkers(n int) Option {
	return func(c *Codec) {
		if n > 0 {
			c.workers = n
		}
	}
}

// New creates a Codec storing meshes as STL by default.
func New(opts ...Option) *Codec {
	c := &Codec{
		storageFormat: mesh.FormatSTL,
		workers:       runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StorageFormat returns the on-disk mesh encoding.
func (c *Codec) StorageFormat() mesh.Format { return c.storageFormat }

// Save writes p to dest. The destination is replaced atomically: on any
// failure it keeps its previous content.
//
// The project lock is held only while its meshes are listed. Encoding and
// file I/O run without locks.
func (c *Codec) Save(ctx context.Context, p *model.Project, dest string) error {
	if !mesh.CanEncode(c.storageFormat) {
		return &mesh.CodecError{Op: "encode", Format: c.storageFormat, Err: mesh.ErrUnsupported}
	}
	rec := snapshot(p)
	if err := c.encode(ctx, rec); err != nil {
		return err
	}
	return writeAtomic(ctx, dest, func(f *container.File) error {
		root := f.Root()
		if err := root.SetAttrs(ctx, map[string]string{attrFormat: FormatName, attrVersion: Version}); err != nil {
			return err
		}
		return writeRecord(ctx, root, rec)
	})
}

// Load reads the single project stored in src. The returned project has
// fresh ids and is detached; attach it with Tree.AttachProject.
func (c *Codec) Load(ctx context.Context, src string) (*model.Project, error) {
	projects, err := c.LoadAll(ctx, src)
	if err != nil {
		return nil, err
	}
	if len(projects) != 1 {
		return nil, fmt.Errorf("%w: %s holds %d projects", ErrNoProject, src, len(projects))
	}
	return projects[0], nil
}

// LoadAll reads every project stored in src, in file order. Either all
// projects are returned or none.
func (c *Codec) LoadAll(ctx context.Context, src string) ([]*model.Project, error) {
	f, err := container.Open(ctx, src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	root := f.Root()
	header, err := root.Attrs(ctx)
	if err != nil {
		return nil, err
	}
	if header[attrFormat] != FormatName {
		return nil, fmt.Errorf("%w: %s", ErrNotProjectFile, src)
	}
	if v := header[attrVersion]; v != Version {
		return nil, fmt.Errorf("%w: %s: unsupported version %q", ErrNotProjectFile, src, v)
	}

	groups, err := root.Groups(ctx)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoProject, src)
	}

	recs := make([]*record, 0, len(groups))
	for _, g := range groups {
		rec, err := readRecord(ctx, g, model.KindProject)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := c.decode(ctx, recs); err != nil {
		return nil, err
	}

	projects := make([]*model.Project, 0, len(recs))
	for _, rec := range recs {
		obj, err := build(rec)
		if err != nil {
			return nil, err
		}
		projects = append(projects, obj.(*model.Project))
	}
	return projects, nil
}

// encode fills the payload of every mesh record of rec.
func (c *Codec) encode(ctx context.Context, rec *record) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for _, child := range rec.children {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := mesh.Encode(child.geometry, c.storageFormat)
			if err != nil {
				return err
			}
			child.format = c.storageFormat
			child.payload = data
			return nil
		})
	}
	return g.Wait()
}

// decode fills the geometry of every mesh record under recs.
func (c *Codec) decode(ctx context.Context, recs []*record) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for _, rec := range recs {
		for _, child := range rec.children {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				geometry, err := mesh.Decode(child.payload, child.format)
				if err != nil {
					return fmt.Errorf("mesh %q: %w", child.name, err)
				}
				child.geometry = geometry
				child.payload = nil
				return nil
			})
		}
	}
	return g.Wait()
}

// writeAtomic creates a container next to dest, lets fill populate it, and
// renames it over dest once it is durable.
func writeAtomic(ctx context.Context, dest string, fill func(*container.File) error) (err error) {
	dest = filepath.Clean(dest)
	dir := filepath.Dir(dest)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", container.ErrStorage, err)
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer func() {
		if err != nil {
			os.Remove(tmpPath)
			os.Remove(tmpPath + "-journal")
		}
	}()

	f, err := container.Create(ctx, tmpPath)
	if err != nil {
		return err
	}
	if err := fill(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := ctx.Err(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Commit(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if err := syncPath(tmpPath); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("%w: finalize %s: %w", container.ErrStorage, dest, err)
	}
	// The rename is in place; a failed directory sync only weakens
	// durability across power loss.
	_ = syncPath(dir)
	return nil
}

func syncPath(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", container.ErrStorage, err)
	}
	defer f.Close()
	if err := f.Sync(); err != nil && !errors.Is(err, os.ErrInvalid) {
		return fmt.Errorf("%w: sync %s: %w", container.ErrStorage, path, err)
	}
	return nil
}
