package publish

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub"
)

const publishTimeout = 10 * time.Second

// PubSubSink publishes batches to a Google Cloud Pub/Sub topic. It
// takes ownership of the client: Close stops the topic and closes the
// client.
type PubSubSink struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

// NewPubSubSink wraps an existing Pub/Sub client. The topic must
// already exist.
func NewPubSubSink(client *pubsub.Client, topicID string) *PubSubSink {
	return &PubSubSink{
		client: client,
		topic:  client.Topic(topicID),
	}
}

// Send publishes one payload and waits for the server to accept it.
func (s *PubSubSink) Send(ctx context.Context, data []byte, attrs map[string]string) error {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	res := s.topic.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: attrs,
	})

	if _, err := res.Get(ctx); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", s.topic.ID(), err)
	}

	return nil
}

// Close flushes buffered messages and closes the underlying client.
func (s *PubSubSink) Close() error {
	s.topic.Stop()

	return s.client.Close()
}
