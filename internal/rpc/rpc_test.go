package rpc

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/fyrsmithlabs/zinspector/internal/logging"
	"github.com/fyrsmithlabs/zinspector/internal/mesh"
	"github.com/fyrsmithlabs/zinspector/internal/model"
	"github.com/fyrsmithlabs/zinspector/internal/registry"
	"github.com/fyrsmithlabs/zinspector/internal/service"
	"github.com/fyrsmithlabs/zinspector/internal/stream"
	v1 "github.com/fyrsmithlabs/zinspector/pkg/api/v1"
)

type testEnv struct {
	client v1.ZInspectorClient
	conn   *grpc.ClientConn
	svc    *service.Service
	logger *logging.TestLogger
}

func defaultTestConfig() Config {
	return Config{
		Addr:            "bufnet",
		Workers:         4,
		MaxMessageSize:  4 << 20,
		ShutdownTimeout: time.Second,
	}
}

func startServer(t *testing.T, cfg Config, svcCfg *service.Config, dialOpts ...grpc.DialOption) *testEnv {
	t.Helper()

	logger := logging.NewTestLogger()
	svc, err := service.New(svcCfg, model.NewTree(), nil, nil, logger.Logger)
	require.NoError(t, err)
	srv, err := New(cfg, svc, logger.Logger, nil)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ctx, lis) }()

	dialOpts = append([]grpc.DialOption{
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, dialOpts...)
	conn, err := grpc.NewClient("passthrough:///bufnet", dialOpts...)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		select {
		case err := <-served:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("server did not stop")
		}
	})

	return &testEnv{client: v1.NewZInspectorClient(conn), conn: conn, svc: svc, logger: logger}
}

func writeMesh(t *testing.T, name string, m *mesh.Mesh) string {
	t.Helper()
	data, err := mesh.Encode(m, mesh.FormatSTL)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func writeBox(t *testing.T) string {
	t.Helper()
	return writeMesh(t, "box.stl", mesh.Box(1, 1, 1))
}

// strip returns n disjoint triangles, so welding keeps every vertex.
func strip(n int) *mesh.Mesh {
	m := &mesh.Mesh{}
	for i := 0; i < n; i++ {
		x := float32(i)
		base := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices, mesh.Vec3{x, 0, 0}, mesh.Vec3{x, 1, 0}, mesh.Vec3{x, 0, 1})
		m.Faces = append(m.Faces, mesh.Face{base, base + 1, base + 2})
	}
	return m
}

func reason(t *testing.T, err error) string {
	t.Helper()
	st, ok := status.FromError(err)
	require.True(t, ok, "not a status error: %v", err)
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info.GetReason()
		}
	}
	return ""
}

func TestNew_Validation(t *testing.T) {
	_, err := New(defaultTestConfig(), nil, nil, nil)
	assert.Error(t, err)

	svc, err := service.New(nil, model.NewTree(), nil, nil, nil)
	require.NoError(t, err)
	cfg := defaultTestConfig()
	cfg.Workers = 0
	_, err = New(cfg, svc, nil, nil)
	assert.Error(t, err)
}

func TestEndToEnd(t *testing.T) {
	env := startServer(t, defaultTestConfig(), nil)
	ctx := context.Background()
	c := env.client

	roots, err := c.GetObjects(ctx, &v1.GetObjectsRequest{})
	require.NoError(t, err)
	assert.Empty(t, roots.Ids)

	created, err := c.CreateProject(ctx, &v1.CreateProjectRequest{Name: "Demo"})
	require.NoError(t, err)
	require.Len(t, created.Ids, 1)
	x := created.Ids[0]

	roots, err = c.GetObjects(ctx, &v1.GetObjectsRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{x}, roots.Ids)

	name, err := c.GetName(ctx, &v1.GetNameRequest{Id: x})
	require.NoError(t, err)
	assert.Equal(t, "Demo", name.Name)

	imported, err := c.ImportMesh(ctx, &v1.ImportMeshRequest{ProjectId: x, Path: writeBox(t)})
	require.NoError(t, err)
	require.Len(t, imported.Ids, 1)
	y := imported.Ids[0]

	children, err := c.GetObjects(ctx, &v1.GetObjectsRequest{Id: x})
	require.NoError(t, err)
	assert.Equal(t, []string{y}, children.Ids)

	tree, err := c.GetObjectTree(ctx, &v1.GetObjectTreeRequest{})
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"id":"`+x+`","label":"Demo","type":"Project","children":[{"id":"`+y+`","label":"box.stl","type":"Mesh","children":[]}]}]`,
		tree.Tree)

	path := filepath.Join(t.TempDir(), "demo.zi")
	_, err = c.SaveProject(ctx, &v1.SaveProjectRequest{Id: x, Path: path})
	require.NoError(t, err)
	loaded, err := c.LoadProject(ctx, &v1.LoadProjectRequest{Path: path})
	require.NoError(t, err)
	require.Len(t, loaded.Ids, 1)
	assert.NotEqual(t, x, loaded.Ids[0])

	_, err = c.DeleteObject(ctx, &v1.DeleteObjectRequest{Id: loaded.Ids[0]})
	require.NoError(t, err)
	roots, err = c.GetObjects(ctx, &v1.GetObjectsRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{x}, roots.Ids)
}

func TestGetMeshData_Chunks(t *testing.T) {
	env := startServer(t, defaultTestConfig(), &service.Config{ChunkSize: 256})
	ctx := context.Background()

	created, err := env.client.CreateProject(ctx, &v1.CreateProjectRequest{Name: "Demo"})
	require.NoError(t, err)
	imported, err := env.client.ImportMesh(ctx, &v1.ImportMeshRequest{ProjectId: created.Ids[0], Path: writeBox(t)})
	require.NoError(t, err)
	y := imported.Ids[0]

	recv, err := env.client.GetMeshData(ctx, &v1.GetMeshDataRequest{Id: y})
	require.NoError(t, err)

	var asm stream.Assembler
	for {
		chunk, err := recv.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		assert.LessOrEqual(t, len(chunk.Data), 256)
		require.NoError(t, asm.Add(stream.Chunk{Format: chunk.Format, Index: chunk.Index, Data: chunk.Data}))
	}

	m, err := env.svc.Tree().Mesh(registry.ID(y))
	require.NoError(t, err)
	want, err := mesh.Encode(m.Geometry(), mesh.FormatGLB)
	require.NoError(t, err)
	assert.Equal(t, "glb", asm.Format())
	assert.Equal(t, stream.ChunkCount(len(want), 256), asm.Count())
	assert.Equal(t, want, asm.Bytes())
}

func TestGetMeshData_Cancel(t *testing.T) {
	// A fixed 64KiB window keeps the server blocked on flow control, so the
	// stream is still open when the client cancels.
	env := startServer(t, defaultTestConfig(), &service.Config{ChunkSize: 4 << 10},
		grpc.WithInitialWindowSize(64<<10),
		grpc.WithInitialConnWindowSize(64<<10),
	)
	ctx := context.Background()

	created, err := env.client.CreateProject(ctx, &v1.CreateProjectRequest{Name: "Demo"})
	require.NoError(t, err)
	imported, err := env.client.ImportMesh(ctx, &v1.ImportMeshRequest{ProjectId: created.Ids[0], Path: writeMesh(t, "strip.stl", strip(20000))})
	require.NoError(t, err)

	streamCtx, cancel := context.WithCancel(ctx)
	recv, err := env.client.GetMeshData(streamCtx, &v1.GetMeshDataRequest{Id: imported.Ids[0]})
	require.NoError(t, err)

	first, err := recv.Recv()
	require.NoError(t, err)
	assert.Equal(t, uint32(0), first.Index)

	cancel()
	for {
		_, err = recv.Recv()
		if err != nil {
			break
		}
	}
	assert.Equal(t, codes.Canceled, status.Code(err))
}

func TestGetMeshData_NotFound(t *testing.T) {
	env := startServer(t, defaultTestConfig(), nil)

	recv, err := env.client.GetMeshData(context.Background(), &v1.GetMeshDataRequest{Id: "missing"})
	require.NoError(t, err)
	_, err = recv.Recv()
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.True(t, v1.IsNotFound(err))
}

func TestErrorMapping(t *testing.T) {
	env := startServer(t, defaultTestConfig(), nil)
	ctx := context.Background()
	c := env.client

	_, err := c.GetName(ctx, &v1.GetNameRequest{Id: "missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, "NOT_FOUND", reason(t, err))

	_, err = c.CreateProject(ctx, &v1.CreateProjectRequest{Name: " "})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.True(t, v1.IsValidation(err))

	_, err = c.LoadProject(ctx, &v1.LoadProjectRequest{Path: filepath.Join(t.TempDir(), "missing.zi")})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.True(t, v1.IsStorage(err))

	created, err := c.CreateProject(ctx, &v1.CreateProjectRequest{Name: "Demo"})
	require.NoError(t, err)
	bad := filepath.Join(t.TempDir(), "bad.obj")
	require.NoError(t, os.WriteFile(bad, []byte("v 0 0 0\nf 1 2 3\n"), 0o644))
	_, err = c.ImportMesh(ctx, &v1.ImportMeshRequest{ProjectId: created.Ids[0], Path: bad})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.True(t, v1.IsMeshCodec(err))
	assert.Equal(t, "MESH_CODEC", reason(t, err))
}

func TestRequestID(t *testing.T) {
	env := startServer(t, defaultTestConfig(), nil)

	ctx := metadata.AppendToOutgoingContext(context.Background(), RequestIDHeader, "req-123")
	var header metadata.MD
	_, err := env.client.GetObjects(ctx, &v1.GetObjectsRequest{}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, []string{"req-123"}, header.Get(RequestIDHeader))

	header = nil
	_, err = env.client.GetObjects(context.Background(), &v1.GetObjectsRequest{}, grpc.Header(&header))
	require.NoError(t, err)
	require.Len(t, header.Get(RequestIDHeader), 1)
	assert.True(t, logging.ValidID(header.Get(RequestIDHeader)[0]))

	env.logger.AssertLogged(t, zapcore.DebugLevel, "rpc finished")
	env.logger.AssertField(t, "rpc finished", "request.id", "req-123")
}

func TestRateLimit(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.RateLimit = 0.001
	cfg.RateBurst = 1
	env := startServer(t, cfg, nil)
	ctx := context.Background()

	_, err := env.client.GetObjects(ctx, &v1.GetObjectsRequest{})
	require.NoError(t, err)
	_, err = env.client.GetObjects(ctx, &v1.GetObjectsRequest{})
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestHealth(t *testing.T) {
	env := startServer(t, defaultTestConfig(), nil)

	resp, err := healthpb.NewHealthClient(env.conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: v1.ZInspector_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestRecovery(t *testing.T) {
	logger := logging.NewTestLogger()
	interceptor := unaryRecovery(logger.Logger)

	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/test/Panic"},
		func(context.Context, any) (any, error) { panic("boom") })
	assert.Equal(t, codes.Internal, status.Code(err))
	logger.AssertLogged(t, zapcore.ErrorLevel, "panicked")
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, levelFor(codes.OK))
	assert.Equal(t, zapcore.InfoLevel, levelFor(codes.NotFound))
	assert.Equal(t, zapcore.ErrorLevel, levelFor(codes.Internal))
}

func TestAdmission_BoundsConcurrentCalls(t *testing.T) {
	admit := newAdmission(1)
	interceptor := admit.unary()
	info := &grpc.UnaryServerInfo{FullMethod: v1.ZInspector_GetName_FullMethodName}

	entered := make(chan struct{})
	unblock := make(chan struct{})
	first := make(chan error, 1)
	go func() {
		_, err := interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
			close(entered)
			<-unblock
			return nil, nil
		})
		first <- err
	}()
	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := interceptor(ctx, nil, info, func(context.Context, any) (any, error) {
		t.Error("handler ran while the only slot was taken")
		return nil, nil
	})
	assert.Equal(t, codes.DeadlineExceeded, status.Code(err))

	health := &grpc.UnaryServerInfo{FullMethod: healthpb.Health_Check_FullMethodName}
	_, err = interceptor(context.Background(), nil, health, func(context.Context, any) (any, error) { return nil, nil })
	assert.NoError(t, err, "health checks bypass the queue")

	close(unblock)
	require.NoError(t, <-first)

	ran := false
	_, err = interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		ran = true
		return nil, nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestAdmission_StreamHoldsSlot(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.Workers = 1
	env := startServer(t, cfg, &service.Config{ChunkSize: 4 << 10},
		grpc.WithInitialWindowSize(64<<10),
		grpc.WithInitialConnWindowSize(64<<10),
	)
	ctx := context.Background()

	created, err := env.client.CreateProject(ctx, &v1.CreateProjectRequest{Name: "Demo"})
	require.NoError(t, err)
	imported, err := env.client.ImportMesh(ctx, &v1.ImportMeshRequest{ProjectId: created.Ids[0], Path: writeMesh(t, "strip.stl", strip(20000))})
	require.NoError(t, err)

	streamCtx, cancelStream := context.WithCancel(ctx)
	defer cancelStream()
	recv, err := env.client.GetMeshData(streamCtx, &v1.GetMeshDataRequest{Id: imported.Ids[0]})
	require.NoError(t, err)
	_, err = recv.Recv()
	require.NoError(t, err)

	callCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	_, err = env.client.GetObjects(callCtx, &v1.GetObjectsRequest{})
	assert.Equal(t, codes.DeadlineExceeded, status.Code(err))

	cancelStream()
	require.Eventually(t, func() bool {
		_, err := env.client.GetObjects(ctx, &v1.GetObjectsRequest{})
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
}

func TestParseID_Canonical(t *testing.T) {
	env := startServer(t, defaultTestConfig(), nil)
	ctx := context.Background()

	created, err := env.client.CreateProject(ctx, &v1.CreateProjectRequest{Name: "Demo"})
	require.NoError(t, err)
	x := created.Ids[0]

	name, err := env.client.GetName(ctx, &v1.GetNameRequest{Id: strings.ToUpper(x)})
	require.NoError(t, err)
	assert.Equal(t, "Demo", name.GetName())

	_, err = env.client.GetObjects(ctx, &v1.GetObjectsRequest{Id: "not-an-id"})
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.True(t, v1.IsNotFound(err))
}
