package rpc

import (
	"context"

	"google.golang.org/grpc"

	zerrors "github.com/fyrsmithlabs/zinspector/internal/errors"
	"github.com/fyrsmithlabs/zinspector/internal/mesh"
	"github.com/fyrsmithlabs/zinspector/internal/metrics"
	"github.com/fyrsmithlabs/zinspector/internal/registry"
	"github.com/fyrsmithlabs/zinspector/internal/service"
	v1 "github.com/fyrsmithlabs/zinspector/pkg/api/v1"
)

// handler adapts the service to the wire messages. Every error leaves
// through zerrors.ToGRPCStatus, the single place domain codes become
// status codes.
type handler struct {
	v1.UnimplementedZInspectorServer

	svc     *service.Service
	metrics *metrics.Metrics
}

func newHandler(svc *service.Service, m *metrics.Metrics) *handler {
	return &handler{svc: svc, metrics: m}
}

// parseID canonicalises a wire id. An empty id addresses the Root where
// the call allows it; a malformed id cannot resolve and reports NotFound.
func parseID(s string) (registry.ID, error) {
	if s == "" {
		return "", nil
	}
	id, err := registry.ParseID(s)
	if err != nil {
		return "", zerrors.ToGRPCStatus(zerrors.Wrap(zerrors.CodeNotFound, "resolve id", err))
	}
	return id, nil
}

func ids(in ...registry.ID) *v1.IdResponse {
	out := make([]string, len(in))
	for i, id := range in {
		out[i] = id.String()
	}
	return &v1.IdResponse{Ids: out}
}

func (h *handler) GetObjectTree(ctx context.Context, req *v1.GetObjectTreeRequest) (*v1.GetObjectTreeResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	tree, err := h.svc.GetObjectTree(ctx, id)
	if err != nil {
		return nil, zerrors.ToGRPCStatus(err)
	}
	return &v1.GetObjectTreeResponse{Tree: tree}, nil
}

func (h *handler) GetObjects(ctx context.Context, req *v1.GetObjectsRequest) (*v1.IdResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	children, err := h.svc.GetObjects(ctx, id)
	if err != nil {
		return nil, zerrors.ToGRPCStatus(err)
	}
	return ids(children...), nil
}

func (h *handler) GetName(ctx context.Context, req *v1.GetNameRequest) (*v1.GetNameResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	name, err := h.svc.GetName(ctx, id)
	if err != nil {
		return nil, zerrors.ToGRPCStatus(err)
	}
	return &v1.GetNameResponse{Name: name}, nil
}

func (h *handler) CreateProject(ctx context.Context, req *v1.CreateProjectRequest) (*v1.IdResponse, error) {
	id, err := h.svc.CreateProject(ctx, req.GetName())
	if err != nil {
		return nil, zerrors.ToGRPCStatus(err)
	}
	return ids(id), nil
}

func (h *handler) ImportMesh(ctx context.Context, req *v1.ImportMeshRequest) (*v1.IdResponse, error) {
	projectID, err := parseID(req.GetProjectId())
	if err != nil {
		return nil, err
	}
	id, err := h.svc.ImportMesh(ctx, projectID, req.GetPath())
	if err != nil {
		return nil, zerrors.ToGRPCStatus(err)
	}
	return ids(id), nil
}

func (h *handler) SaveProject(ctx context.Context, req *v1.SaveProjectRequest) (*v1.Empty, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	if err := h.svc.SaveProject(ctx, id, req.GetPath()); err != nil {
		return nil, zerrors.ToGRPCStatus(err)
	}
	return &v1.Empty{}, nil
}

func (h *handler) LoadProject(ctx context.Context, req *v1.LoadProjectRequest) (*v1.IdResponse, error) {
	id, err := h.svc.LoadProject(ctx, req.GetPath())
	if err != nil {
		return nil, zerrors.ToGRPCStatus(err)
	}
	return ids(id), nil
}

func (h *handler) DeleteObject(ctx context.Context, req *v1.DeleteObjectRequest) (*v1.Empty, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	if err := h.svc.DeleteObject(ctx, id); err != nil {
		return nil, zerrors.ToGRPCStatus(err)
	}
	return &v1.Empty{}, nil
}

// GetMeshData sends the export of one mesh in index order. The stream stops
// at the first send failure or when the caller goes away; the export buffer
// is released either way.
func (h *handler) GetMeshData(req *v1.GetMeshDataRequest, out grpc.ServerStreamingServer[v1.MeshChunk]) error {
	ctx := out.Context()
	id, err := parseID(req.GetId())
	if err != nil {
		return err
	}
	st, err := h.svc.GetMeshData(ctx, id, mesh.Format(req.GetFormat()))
	if err != nil {
		return zerrors.ToGRPCStatus(err)
	}
	defer st.Close()

	for chunk, err := range st.All(ctx) {
		if err != nil {
			return zerrors.ToGRPCStatus(err)
		}
		if err := out.Send(&v1.MeshChunk{Format: chunk.Format, Index: chunk.Index, Data: chunk.Data}); err != nil {
			return err
		}
		h.metrics.RecordChunk(ctx, chunk.Format, len(chunk.Data))
	}
	return nil
}
