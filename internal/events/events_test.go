package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/zinspector/internal/config"
	"github.com/fyrsmithlabs/zinspector/internal/registry"
)

func startTestNATSServer(t *testing.T, token string) *natsserver.Server {
	opts := &natsserver.Options{
		Host:          "127.0.0.1",
		Port:          -1,
		NoLog:         true,
		NoSigs:        true,
		Authorization: token,
	}

	server, err := natsserver.NewServer(opts)
	require.NoError(t, err)

	go server.Start()

	if !server.ReadyForConnections(5 * time.Second) {
		t.Fatal("NATS server not ready")
	}

	t.Cleanup(func() {
		server.Shutdown()
		server.WaitForShutdown()
	})

	return server
}

func TestSubject(t *testing.T) {
	e := Event{Kind: "Mesh", Action: ActionCreated}
	assert.Equal(t, "zinspector.objects.mesh.created", Subject("zinspector", e))
}

func TestNew_DisabledIsNop(t *testing.T) {
	p, err := New(config.EventsConfig{Enabled: false}, nil)
	require.NoError(t, err)
	assert.IsType(t, Nop{}, p)
	assert.NoError(t, p.Publish(context.Background(), Event{}))
	assert.NoError(t, p.Close())
}

func TestNATSPublisher_Publish(t *testing.T) {
	server := startTestNATSServer(t, "")
	nc, err := nats.Connect(server.ClientURL())
	require.NoError(t, err)
	defer nc.Close()

	sub, err := nc.SubscribeSync("zinspector.objects.project.>")
	require.NoError(t, err)
	require.NoError(t, nc.Flush())

	p := NewNATSPublisher(nc, "zinspector", nil)
	id := registry.NewID()
	require.NoError(t, p.Publish(context.Background(), Event{
		ID:     id,
		Kind:   "Project",
		Name:   "Demo",
		Action: ActionCreated,
	}))
	require.NoError(t, nc.Flush())

	msg, err := sub.NextMsg(2 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "zinspector.objects.project.created", msg.Subject)

	var got Event
	require.NoError(t, json.Unmarshal(msg.Data, &got))
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Demo", got.Name)
	assert.False(t, got.Time.IsZero())

	// Borrowed connection stays open.
	require.NoError(t, p.Close())
	assert.True(t, nc.IsConnected())
}

func TestNATSPublisher_CancelledContext(t *testing.T) {
	server := startTestNATSServer(t, "")
	nc, err := nats.Connect(server.ClientURL())
	require.NoError(t, err)
	defer nc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = NewNATSPublisher(nc, "zinspector", nil).Publish(ctx, Event{Kind: "Mesh", Action: ActionRemoved})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConnect_Token(t *testing.T) {
	server := startTestNATSServer(t, "s3cret")

	_, err := Connect(config.EventsConfig{
		Enabled:       true,
		URL:           server.ClientURL(),
		SubjectPrefix: "zinspector",
	}, nil)
	require.Error(t, err, "connection without the token must be refused")

	p, err := Connect(config.EventsConfig{
		Enabled:       true,
		URL:           server.ClientURL(),
		Token:         config.Secret("s3cret"),
		SubjectPrefix: "zinspector",
	}, nil)
	require.NoError(t, err)
	assert.True(t, p.conn.IsConnected())
	require.NoError(t, p.Close())
}
