package pubsub

import (
	"context"
	"log/slog"

	"leasing/internal/domain/entity"
	"leasing/internal/domain/lifecycle"
	"leasing/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/mempubsub" // registers mem:// topics
)

// goCloudPublisher implements EventPublisher over any gocloud.dev topic URL
type goCloudPublisher struct {
	topic  *pubsub.Topic
	url    string
	logger *slog.Logger
}

// NewGoCloudPublisher opens the topic at topicURL
func NewGoCloudPublisher(ctx context.Context, topicURL string, logger *slog.Logger) (service.EventPublisher, error) {
	topic, err := pubsub.OpenTopic(ctx, topicURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open topic %s", topicURL)
	}

	logger.Info("gocloud Pub/Sub publisher initialized", slog.String("topic_url", topicURL))

	return &goCloudPublisher{
		topic:  topic,
		url:    topicURL,
		logger: logger,
	}, nil
}

// PublishUnitEvent sends the event to the topic
func (p *goCloudPublisher) PublishUnitEvent(ctx context.Context, event *entity.UnitEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	if err := p.topic.Send(ctx, &pubsub.Message{Body: data, Metadata: attributes}); err != nil {
		return errors.Wrapf(err, "failed to send to %s", p.url)
	}

	p.logger.Debug("[GoCloudPubSub] Event published",
		slog.String("unit_id", event.UnitID.String()),
		slog.Uint64("sequence", event.Sequence),
	)

	return nil
}

// Close flushes pending sends and releases the topic
func (p *goCloudPublisher) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	return errors.WithStack(p.topic.Shutdown(ctx))
}
