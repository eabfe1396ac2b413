package publish

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/mfreeman451/wifiradar/pkg/models"
)

func newFakePubSub(t *testing.T) (*pstest.Server, *pubsub.Client) {
	t.Helper()

	srv := pstest.NewServer()
	t.Cleanup(func() { _ = srv.Close() })

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	client, err := pubsub.NewClient(context.Background(), "test-project", option.WithGRPCConn(conn))
	require.NoError(t, err)

	return srv, client
}

func TestPubSubSinkPublishes(t *testing.T) {
	ctx := context.Background()
	srv, client := newFakePubSub(t)

	_, err := client.CreateTopic(ctx, "scan-batches")
	require.NoError(t, err)

	sink := NewPubSubSink(client, "scan-batches")

	payload := []byte(`{"networks":[],"completed_at":"2025-06-01T12:00:00Z"}`)
	attrs := map[string]string{"interface": "wlan0", "networks": "0"}

	require.NoError(t, sink.Send(ctx, payload, attrs))

	msgs := srv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, payload, msgs[0].Data)
	assert.Equal(t, "wlan0", msgs[0].Attributes["interface"])

	require.NoError(t, sink.Close())
}

func TestPubSubSinkMissingTopic(t *testing.T) {
	ctx := context.Background()
	_, client := newFakePubSub(t)

	sink := NewPubSubSink(client, "never-created")
	t.Cleanup(func() { _ = sink.Close() })

	err := sink.Send(ctx, []byte(`{"networks":[]}`), nil)
	require.Error(t, err)
}

func TestPublisherWithPubSubSink(t *testing.T) {
	ctx := context.Background()
	srv, client := newFakePubSub(t)

	_, err := client.CreateTopic(ctx, "scan-batches")
	require.NoError(t, err)

	p := NewPublisher(NewPubSubSink(client, "scan-batches"), "wlan0")

	p.OnBatch(models.ScanBatch{
		Networks: []models.ScanRecord{
			{SSID: "lab", BSSID: "aa:bb:cc:dd:ee:ff", Frequency: 2437, Channel: 6},
		},
		CompletedAt: time.Now().UTC(),
	})

	require.Eventually(t, func() bool { return len(srv.Messages()) == 1 }, waitFor, tick)
	require.NoError(t, p.Close())

	msg := srv.Messages()[0]

	var batch models.ScanBatch

	require.NoError(t, json.Unmarshal(msg.Data, &batch))
	require.Len(t, batch.Networks, 1)
	assert.Equal(t, "lab", batch.Networks[0].SSID)
	assert.Equal(t, "1", msg.Attributes["networks"])
}
