package main

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/fyrsmithlabs/zinspector/internal/config"
	v1 "github.com/fyrsmithlabs/zinspector/pkg/api/v1"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Admin.Enabled = false
	cfg.Server.ShutdownTimeout = config.Duration(time.Second)
	cfg.Logging.Level = "error"
	return cfg
}

func TestApp_ServeAndShutdown(t *testing.T) {
	a, err := newApp(context.Background(), testConfig())
	require.NoError(t, err)
	defer a.close()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- a.serve(ctx, lis) }()

	cc, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer cc.Close()
	client := v1.NewZInspectorClient(cc)

	callCtx, callCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer callCancel()
	created, err := client.CreateProject(callCtx, &v1.CreateProjectRequest{Name: "Demo"}, grpc.WaitForReady(true))
	require.NoError(t, err)
	require.Len(t, created.Ids, 1)

	name, err := client.GetName(callCtx, &v1.GetNameRequest{Id: created.Ids[0]})
	require.NoError(t, err)
	assert.Equal(t, "Demo", name.Name)
	assert.Equal(t, 1, a.tree.Len())

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shutdown in time")
	}
}

func TestApp_AdminEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.Admin.Enabled = true
	cfg.Admin.Port = 0

	a, err := newApp(context.Background(), cfg)
	require.NoError(t, err)
	defer a.close()
	require.NotNil(t, a.admin)
}

func TestRun_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zinspector.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  workers: 0\n"), 0o600))

	err := run(context.Background(), path, -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
}

func TestRun_MissingConfigFile(t *testing.T) {
	err := run(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"), -1)
	assert.Error(t, err)
}

func TestRun_InvalidPort(t *testing.T) {
	err := run(context.Background(), "", 70000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
}
