package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/zinspector/internal/mesh"
	"github.com/fyrsmithlabs/zinspector/internal/model"
	"github.com/fyrsmithlabs/zinspector/internal/registry"
	"github.com/fyrsmithlabs/zinspector/internal/telemetry"
)

type fakeHealth struct{ status telemetry.HealthStatus }

func (f fakeHealth) Health() telemetry.HealthStatus { return f.status }

func newTree(t *testing.T) (*model.Tree, *model.Project, *model.Mesh) {
	t.Helper()
	tree := model.NewTree()
	p, err := tree.CreateProject("Demo")
	require.NoError(t, err)
	m, err := model.NewMesh("box.stl", mesh.Box(1, 1, 1), mesh.FormatSTL)
	require.NoError(t, err)
	require.NoError(t, tree.AddMesh(p.ID(), m))
	return tree, p, m
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	tree, _, _ := newTree(t)
	s := NewServer(Config{ServiceName: "zinspector"}, tree, nil, nil)

	rec := get(t, s, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "zinspector", resp.Service)
	assert.Equal(t, 2, resp.Objects)
	assert.Nil(t, resp.Telemetry)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestHealth_Degraded(t *testing.T) {
	s := NewServer(Config{}, model.NewTree(), fakeHealth{telemetry.HealthStatus{
		Healthy:  true,
		Degraded: true,
		Reasons:  []string{"tracer provider failed"},
	}}, nil)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(get(t, s, "/health").Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	require.NotNil(t, resp.Telemetry)
	assert.Equal(t, []string{"tracer provider failed"}, resp.Telemetry.Reasons)
}

func TestMetrics(t *testing.T) {
	s := NewServer(Config{}, model.NewTree(), nil, nil)
	rec := get(t, s, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "go_goroutines"))
}

func TestDebugRegistry(t *testing.T) {
	tree, p, m := newTree(t)
	s := NewServer(Config{}, tree, nil, nil)

	rec := get(t, s, "/debug/registry")
	require.Equal(t, http.StatusOK, rec.Code)

	var out []ObjectInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, ObjectInfo{ID: p.ID().String(), Kind: "Project", Name: "Demo"}, out[0])
	assert.Equal(t, ObjectInfo{
		ID: m.ID().String(), Kind: "Mesh", Name: "box.stl", Parent: p.ID().String(),
		Faces:  12,
		Bounds: &[2]mesh.Vec3{{-0.5, -0.5, -0.5}, {0.5, 0.5, 0.5}},
	}, out[1])
}

func TestDebugRegistryPrune(t *testing.T) {
	tree, p, _ := newTree(t)
	s := NewServer(Config{}, tree, nil, nil)

	_, err := tree.Remove(p.ID())
	require.NoError(t, err)

	prune := func() PruneResponse {
		req := httptest.NewRequest(http.MethodPost, "/debug/registry/prune", nil)
		rec := httptest.NewRecorder()
		s.Echo().ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp PruneResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}
	assert.Equal(t, PruneResponse{Pruned: 2, Live: 0}, prune(), "project and mesh entries")
	assert.Equal(t, PruneResponse{Pruned: 0, Live: 0}, prune())

	assert.Equal(t, http.StatusMethodNotAllowed, get(t, s, "/debug/registry/prune").Code)
}

func TestDebugTree(t *testing.T) {
	tree, p, m := newTree(t)
	s := NewServer(Config{}, tree, nil, nil)

	rec := get(t, s, "/debug/tree?id="+p.ID().String())
	require.Equal(t, http.StatusOK, rec.Code)
	var nodes []model.TreeNode
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &nodes))
	require.Len(t, nodes, 1)
	assert.Equal(t, m.ID().String(), nodes[0].ID)

	rec = get(t, s, "/debug/tree?id="+registry.NewID().String())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_GracefulShutdown(t *testing.T) {
	s := NewServer(Config{Host: "127.0.0.1", Port: 0, ShutdownTimeout: time.Second}, model.NewTree(), nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Start(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.True(t, errors.Is(err, http.ErrServerClosed), "Start() error = %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shutdown in time")
	}
}
