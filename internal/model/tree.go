package model

import (
	"fmt"
	"slices"

	"github.com/fyrsmithlabs/zinspector/internal/registry"
)

// Tree is the process-wide object tree. Construct one at startup and pass it
// to every handler.
//
// Lock order is Root, then Project, then the registry.
type Tree struct {
	root    *Root
	objects *registry.Registry[Object]
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{
		root:    &Root{},
		objects: registry.New[Object](),
	}
}

// Root returns the aggregation root.
func (t *Tree) Root() *Root { return t.root }

// Len returns the number of live registered objects.
func (t *Tree) Len() int { return t.objects.Len() }

// Active returns a snapshot of every live object by id.
func (t *Tree) Active() map[registry.ID]Object { return t.objects.ListActive() }

// Prune evicts the index entries of removed objects that no lookup has met
// yet, and returns how many went.
func (t *Tree) Prune() int { return t.objects.Prune() }

// Resolve returns the object for id. The empty id resolves to the Root.
func (t *Tree) Resolve(id registry.ID) (Object, error) {
	if id == "" {
		return t.root, nil
	}
	return t.objects.Lookup(id)
}

// Project resolves id and checks it names a project.
func (t *Tree) Project(id registry.ID) (*Project, error) {
	obj, err := t.objects.Lookup(id)
	if err != nil {
		return nil, err
	}
	p, ok := obj.(*Project)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %s, not a Project", ErrWrongKind, id, obj.Kind())
	}
	return p, nil
}

// Mesh resolves id and checks it names a mesh.
func (t *Tree) Mesh(id registry.ID) (*Mesh, error) {
	obj, err := t.objects.Lookup(id)
	if err != nil {
		return nil, err
	}
	m, ok := obj.(*Mesh)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %s, not a Mesh", ErrWrongKind, id, obj.Kind())
	}
	return m, nil
}

// Children returns the ordered children of id (the Root when id is empty).
func (t *Tree) Children(id registry.ID) ([]Object, error) {
	obj, err := t.Resolve(id)
	if err != nil {
		return nil, err
	}
	return obj.Children(), nil
}

// CreateProject builds a project and appends it to the Root.
func (t *Tree) CreateProject(name string) (*Project, error) {
	p, err := NewProject(name)
	if err != nil {
		return nil, err
	}
	if err := t.AttachProject(p); err != nil {
		return nil, err
	}
	return p, nil
}

// AttachProject registers a detached project and its meshes, then appends it
// to the Root. On failure nothing stays registered.
func (t *Tree) AttachProject(p *Project) error {
	t.root.mu.Lock()
	defer t.root.mu.Unlock()
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.attached {
		return fmt.Errorf("%w: %s", registry.ErrDuplicate, p.id)
	}

	h, err := t.objects.Register(p)
	if err != nil {
		return err
	}
	for i, m := range p.meshes {
		mh, err := t.objects.Register(m)
		if err != nil {
			for _, done := range p.meshes[:i] {
				t.objects.Release(done.id)
				done.parent.Store(nil)
			}
			t.objects.Release(p.id)
			return err
		}
		m.handle = mh
		m.parent.Store(p)
	}
	p.handle = h
	p.attached = true
	t.root.projects = append(t.root.projects, p)
	return nil
}

// AddMesh registers m and appends it to the project. The project lock is held
// only for the registration and the append.
func (t *Tree) AddMesh(projectID registry.ID, m *Mesh) error {
	p, err := t.Project(projectID)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.attached {
		return fmt.Errorf("%w: project %s", registry.ErrNotFound, projectID)
	}
	h, err := t.objects.Register(m)
	if err != nil {
		return err
	}
	m.handle = h
	m.parent.Store(p)
	p.meshes = append(p.meshes, m)
	return nil
}

// Remove drops the object for id and everything it owns.
func (t *Tree) Remove(id registry.ID) (Object, error) {
	obj, err := t.objects.Lookup(id)
	if err != nil {
		return nil, err
	}
	switch o := obj.(type) {
	case *Project:
		return o, t.removeProject(o)
	case *Mesh:
		return o, t.removeMesh(o)
	}
	return nil, fmt.Errorf("%w: cannot remove %s", ErrWrongKind, obj.Kind())
}

func (t *Tree) removeProject(p *Project) error {
	t.root.mu.Lock()
	defer t.root.mu.Unlock()

	i := slices.Index(t.root.projects, p)
	if i < 0 {
		return fmt.Errorf("%w: project %s", registry.ErrNotFound, p.id)
	}
	t.root.projects = slices.Delete(t.root.projects, i, i+1)

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, m := range p.meshes {
		t.objects.Expire(m.handle)
		m.parent.Store(nil)
	}
	t.objects.Expire(p.handle)
	p.attached = false
	return nil
}

func (t *Tree) removeMesh(m *Mesh) error {
	// A racing project removal clears parent; that is reported as not found.
	p := m.parent.Load()
	if p == nil {
		return fmt.Errorf("%w: mesh %s", registry.ErrNotFound, m.id)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if m.parent.Load() != p {
		return fmt.Errorf("%w: mesh %s", registry.ErrNotFound, m.id)
	}
	i := slices.Index(p.meshes, m)
	if i < 0 {
		return fmt.Errorf("%w: mesh %s", registry.ErrNotFound, m.id)
	}
	p.meshes = slices.Delete(p.meshes, i, i+1)
	t.objects.Expire(m.handle)
	m.parent.Store(nil)
	return nil
}
