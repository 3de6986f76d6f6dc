package service

import (
	"context"
	"encoding/json"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	zerrors "github.com/fyrsmithlabs/zinspector/internal/errors"
	"github.com/fyrsmithlabs/zinspector/internal/events"
	"github.com/fyrsmithlabs/zinspector/internal/logging"
	"github.com/fyrsmithlabs/zinspector/internal/mesh"
	"github.com/fyrsmithlabs/zinspector/internal/model"
	"github.com/fyrsmithlabs/zinspector/internal/registry"
)

// GetObjects returns the ids of the children of id in insertion order. The
// empty id names the Root.
func (s *Service) GetObjects(ctx context.Context, id registry.ID) ([]registry.ID, error) {
	ctx, span := s.start(ctx, "GetObjects", id)
	defer span.End()

	children, err := s.tree.Children(id)
	if err != nil {
		return nil, s.fail(ctx, span, "GetObjects", err)
	}
	ids := make([]registry.ID, len(children))
	for i, c := range children {
		ids[i] = c.ID()
	}
	span.SetAttributes(attribute.Int("children", len(ids)))
	return ids, nil
}

// GetName returns the name of the object behind id.
func (s *Service) GetName(ctx context.Context, id registry.ID) (string, error) {
	ctx, span := s.start(ctx, "GetName", id)
	defer span.End()

	obj, err := s.tree.Resolve(id)
	if err != nil {
		return "", s.fail(ctx, span, "GetName", err)
	}
	return obj.Name(), nil
}

// GetObjectTree returns the subtree below id as JSON:
//
//	[{"id": "...", "label": "Demo", "type": "Project", "children": [...]}]
func (s *Service) GetObjectTree(ctx context.Context, id registry.ID) (string, error) {
	ctx, span := s.start(ctx, "GetObjectTree", id)
	defer span.End()

	nodes, err := s.tree.Build(id)
	if err != nil {
		return "", s.fail(ctx, span, "GetObjectTree", err)
	}
	data, err := json.Marshal(nodes)
	if err != nil {
		return "", s.fail(ctx, span, "GetObjectTree", err)
	}
	return string(data), nil
}

// CreateProject appends a new empty project to the Root.
func (s *Service) CreateProject(ctx context.Context, name string) (registry.ID, error) {
	ctx, span := s.start(ctx, "CreateProject", "")
	defer span.End()

	p, err := s.tree.CreateProject(name)
	if err != nil {
		return "", s.fail(ctx, span, "CreateProject", err)
	}
	span.SetAttributes(attribute.String("object.id", p.ID().String()))
	s.logger.Info(ctx, "project created", logging.ObjectID(p.ID().String()), zap.String("name", p.Name()))

	s.updateGauges()
	s.publish(ctx, events.Event{ID: p.ID(), Kind: p.Kind().String(), Name: p.Name(), Action: events.ActionCreated})
	return p.ID(), nil
}

// ImportMesh decodes the mesh file at path and appends it to the project.
// The file is read and decoded before any lock is taken; a failure leaves
// the project unchanged.
func (s *Service) ImportMesh(ctx context.Context, projectID registry.ID, path string) (registry.ID, error) {
	ctx, span := s.start(ctx, "ImportMesh", projectID)
	defer span.End()
	span.SetAttributes(attribute.String("path", path))

	// Fail fast on a bad project before paying for the decode.
	if _, err := s.tree.Project(projectID); err != nil {
		return "", s.fail(ctx, span, "ImportMesh", err)
	}

	geometry, format, err := mesh.ReadFile(path)
	if err != nil {
		return "", s.fail(ctx, span, "ImportMesh", err)
	}
	if err := ctx.Err(); err != nil {
		return "", s.fail(ctx, span, "ImportMesh", err)
	}
	m, err := model.NewMesh(filepath.Base(path), geometry, format)
	if err != nil {
		return "", s.fail(ctx, span, "ImportMesh", err)
	}
	if err := s.tree.AddMesh(projectID, m); err != nil {
		return "", s.fail(ctx, span, "ImportMesh", err)
	}

	span.SetAttributes(
		attribute.String("mesh.id", m.ID().String()),
		attribute.Int("mesh.vertices", geometry.VertexCount()),
		attribute.Int("mesh.faces", geometry.FaceCount()),
	)
	s.logger.Info(ctx, "mesh imported",
		logging.ObjectID(m.ID().String()),
		logging.Path(path),
		zap.String("format", format.String()),
		zap.Int("faces", geometry.FaceCount()),
	)

	s.updateGauges()
	s.publish(ctx, events.Event{ID: m.ID(), Kind: m.Kind().String(), Name: m.Name(), Parent: projectID, Action: events.ActionCreated, Path: path})
	return m.ID(), nil
}

// DeleteObject removes a project or mesh together with everything it owns.
// Every removed id stops resolving.
func (s *Service) DeleteObject(ctx context.Context, id registry.ID) error {
	ctx, span := s.start(ctx, "DeleteObject", id)
	defer span.End()

	if id == "" {
		return s.fail(ctx, span, "DeleteObject", zerrors.New(zerrors.CodeValidation, "the root cannot be deleted"))
	}
	obj, err := s.tree.Remove(id)
	if err != nil {
		return s.fail(ctx, span, "DeleteObject", err)
	}

	e := events.Event{ID: obj.ID(), Kind: obj.Kind().String(), Name: obj.Name(), Action: events.ActionRemoved}
	s.logger.Info(ctx, "object removed", logging.ObjectID(id.String()), logging.Kind(e.Kind))

	s.updateGauges()
	s.publish(ctx, e)
	return nil
}
