// Package model is the object tree served by zinspector: a process-wide Root
// that owns Projects, each owning an ordered list of Meshes.
//
// Ownership is strictly the parent collection. The Tree keeps a registry of
// non-owning id lookups and expires an entry whenever its object leaves the
// tree.
package model

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fyrsmithlabs/zinspector/internal/mesh"
	"github.com/fyrsmithlabs/zinspector/internal/registry"
)

// Errors for model operations.
var (
	ErrInvalidName = errors.New("invalid name")
	ErrWrongKind   = errors.New("object has the wrong kind")
	ErrAttached    = errors.New("project is attached to a tree")
)

// maxNameLen bounds object names to keep tree responses small.
const maxNameLen = 255

// Kind tags the variant of an Object.
type Kind int

const (
	KindRoot Kind = iota
	KindProject
	KindMesh
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "Root"
	case KindProject:
		return "Project"
	case KindMesh:
		return "Mesh"
	default:
		return "Unknown"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "Root":
		return KindRoot, true
	case "Project":
		return KindProject, true
	case "Mesh":
		return KindMesh, true
	}
	return 0, false
}

// Object is a node of the tree.
type Object interface {
	ID() registry.ID
	Name() string
	Kind() Kind
	// Children returns a snapshot of the owned children in insertion order.
	Children() []Object
}

// ValidateName rejects names that cannot label a tree node.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}
	if len(name) > maxNameLen {
		return ErrInvalidName
	}
	return nil
}

type base struct {
	id   registry.ID
	name string
}

func (b *base) ID() registry.ID { return b.id }
func (b *base) Name() string    { return b.name }

// Root is the aggregation point of all projects. It is never persisted.
type Root struct {
	mu       sync.RWMutex
	projects []*Project
}

func (r *Root) ID() registry.ID { return "" }
func (r *Root) Name() string    { return "Root" }
func (r *Root) Kind() Kind      { return KindRoot }

func (r *Root) Children() []Object {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Object, len(r.projects))
	for i, p := range r.projects {
		out[i] = p
	}
	return out
}

// Projects returns a snapshot of the projects.
func (r *Root) Projects() []*Project {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Project(nil), r.projects...)
}

// Project owns an ordered collection of meshes.
type Project struct {
	base

	// mu guards meshes, handle and attached.
	mu       sync.RWMutex
	meshes   []*Mesh
	handle   registry.Handle
	attached bool
}

// NewProject builds a detached project with a fresh id.
func NewProject(name string) (*Project, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &Project{base: base{id: registry.NewID(), name: name}}, nil
}

func (p *Project) Kind() Kind { return KindProject }

func (p *Project) Children() []Object {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]Object, len(p.meshes))
	for i, m := range p.meshes {
		out[i] = m
	}
	return out
}

// Meshes returns a snapshot of the meshes.
func (p *Project) Meshes() []*Mesh {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]*Mesh(nil), p.meshes...)
}

// Len returns the number of meshes.
func (p *Project) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.meshes)
}

// Append adds meshes to a detached project. Attached projects are mutated
// through the Tree so the registry stays in step.
func (p *Project) Append(meshes ...*Mesh) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.attached {
		return ErrAttached
	}
	p.meshes = append(p.meshes, meshes...)
	return nil
}

// Mesh is a leaf holding geometry and the tag of the encoding it came from.
type Mesh struct {
	base

	geometry *mesh.Mesh
	format   mesh.Format

	// handle is guarded by the parent project's mu. parent is written under
	// the same lock and may be read without it.
	handle registry.Handle
	parent atomic.Pointer[Project]
}

// NewMesh builds a detached mesh with a fresh id.
func NewMesh(name string, geometry *mesh.Mesh, format mesh.Format) (*Mesh, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := geometry.Validate(); err != nil {
		return nil, err
	}
	return &Mesh{
		base:     base{id: registry.NewID(), name: name},
		geometry: geometry,
		format:   format,
	}, nil
}

func (m *Mesh) Kind() Kind         { return KindMesh }
func (m *Mesh) Children() []Object { return nil }

// Geometry returns the mesh data. Callers must not modify it.
func (m *Mesh) Geometry() *mesh.Mesh { return m.geometry }

// Format returns the encoding the geometry was imported from.
func (m *Mesh) Format() mesh.Format { return m.format }

// Project returns the owning project, or nil once the mesh is detached.
func (m *Mesh) Project() *Project { return m.parent.Load() }
