package persist

import (
	"context"
	"fmt"

	"github.com/fyrsmithlabs/zinspector/internal/container"
	"github.com/fyrsmithlabs/zinspector/internal/mesh"
	"github.com/fyrsmithlabs/zinspector/internal/model"
)

// record is the lock-free intermediate form of one persisted object.
type record struct {
	kind     model.Kind
	id       string
	name     string
	format   mesh.Format
	geometry *mesh.Mesh
	payload  []byte
	children []*record
}

// kindCodec writes and reads one object kind.
type kindCodec struct {
	write func(ctx context.Context, parent *container.Group, rec *record) error
	read  func(ctx context.Context, g *container.Group, attrs map[string]string) (*record, error)
	build func(rec *record) (model.Object, error)
}

var kinds map[model.Kind]kindCodec

func init() {
	kinds = map[model.Kind]kindCodec{
		model.KindProject: {write: writeProject, read: readProject, build: buildProject},
		model.KindMesh:    {write: writeMesh, read: readMesh, build: buildMesh},
	}
}

// snapshot copies what Save needs out of p.
func snapshot(p *model.Project) *record {
	rec := &record{kind: model.KindProject, id: p.ID().String(), name: p.Name()}
	for _, m := range p.Meshes() {
		rec.children = append(rec.children, &record{
			kind:     model.KindMesh,
			id:       m.ID().String(),
			name:     m.Name(),
			geometry: m.Geometry(),
		})
	}
	return rec
}

func writeRecord(ctx context.Context, parent *container.Group, rec *record) error {
	kc, ok := kinds[rec.kind]
	if !ok {
		return fmt.Errorf("%w: cannot persist a %s", container.ErrStorage, rec.kind)
	}
	return kc.write(ctx, parent, rec)
}

// readRecord reads g and checks its kind attribute against want.
func readRecord(ctx context.Context, g *container.Group, want model.Kind) (*record, error) {
	attrs, err := g.Attrs(ctx)
	if err != nil {
		return nil, err
	}
	kindAttr, err := requireAttr(g, attrs, attrKind)
	if err != nil {
		return nil, err
	}
	kind, ok := model.ParseKind(kindAttr)
	if !ok || kind != want {
		return nil, fmt.Errorf("%w: node %q has kind %q, want %s", container.ErrStorage, g.Name(), kindAttr, want)
	}
	return kinds[kind].read(ctx, g, attrs)
}

func requireAttr(g *container.Group, attrs map[string]string, key string) (string, error) {
	v, ok := attrs[key]
	if !ok {
		return "", fmt.Errorf("%w: attribute %q on %q", container.ErrMissing, key, g.Name())
	}
	return v, nil
}

func build(rec *record) (model.Object, error) {
	return kinds[rec.kind].build(rec)
}

func headerAttrs(rec *record) map[string]string {
	return map[string]string{
		attrKind: rec.kind.String(),
		attrID:   rec.id,
		attrName: rec.name,
	}
}

func writeProject(ctx context.Context, parent *container.Group, rec *record) error {
	g, err := parent.CreateGroup(ctx, rec.id)
	if err != nil {
		return err
	}
	if err := g.SetAttrs(ctx, headerAttrs(rec)); err != nil {
		return err
	}
	meshes, err := g.CreateGroup(ctx, meshesGroup)
	if err != nil {
		return err
	}
	for _, child := range rec.children {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeRecord(ctx, meshes, child); err != nil {
			return err
		}
	}
	return nil
}

func readProject(ctx context.Context, g *container.Group, attrs map[string]string) (*record, error) {
	name, err := requireAttr(g, attrs, attrName)
	if err != nil {
		return nil, err
	}
	rec := &record{kind: model.KindProject, name: name}

	meshes, err := g.Group(ctx, meshesGroup)
	if err != nil {
		return nil, err
	}
	children, err := meshes.Groups(ctx)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		mr, err := readRecord(ctx, child, model.KindMesh)
		if err != nil {
			return nil, err
		}
		rec.children = append(rec.children, mr)
	}
	return rec, nil
}

func buildProject(rec *record) (model.Object, error) {
	p, err := model.NewProject(rec.name)
	if err != nil {
		return nil, fmt.Errorf("%w: project name: %v", container.ErrStorage, err)
	}
	for _, child := range rec.children {
		obj, err := build(child)
		if err != nil {
			return nil, err
		}
		if err := p.Append(obj.(*model.Mesh)); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func writeMesh(ctx context.Context, parent *container.Group, rec *record) error {
	g, err := parent.CreateGroup(ctx, rec.id)
	if err != nil {
		return err
	}
	if err := g.SetAttrs(ctx, headerAttrs(rec)); err != nil {
		return err
	}
	return g.WriteDataset(ctx, dataName, rec.payload, map[string]string{attrFormat: rec.format.String()})
}

func readMesh(ctx context.Context, g *container.Group, attrs map[string]string) (*record, error) {
	name, err := requireAttr(g, attrs, attrName)
	if err != nil {
		return nil, err
	}
	ds, err := g.Dataset(ctx, dataName)
	if err != nil {
		return nil, err
	}
	tag, ok := ds.Attrs[attrFormat]
	if !ok {
		return nil, fmt.Errorf("%w: attribute %q on %q", container.ErrMissing, attrFormat, g.Name())
	}
	format, err := mesh.ParseFormat(tag)
	if err != nil {
		return nil, err
	}
	return &record{kind: model.KindMesh, name: name, format: format, payload: ds.Data}, nil
}

func buildMesh(rec *record) (model.Object, error) {
	m, err := model.NewMesh(rec.name, rec.geometry, rec.format)
	if err != nil {
		return nil, fmt.Errorf("%w: mesh %q: %v", container.ErrStorage, rec.name, err)
	}
	return m, nil
}
