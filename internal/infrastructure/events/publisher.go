// internal/infrastructure/events/publisher.go
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/your-org/wms-backend/internal/domain/shared"
)

const channelPrefix = "wms:events:"

// RedisPublisher publishes drained domain events to redis pub/sub, one
// channel per event name. Delivery is fire-and-forget: publish failures are
// logged, never propagated back into the domain operation.
type RedisPublisher struct {
	client *redis.Client
	logger *logrus.Logger
}

// NewRedisPublisher creates a new redis event publisher.
func NewRedisPublisher(client *redis.Client, logger *logrus.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, logger: logger}
}

// Publish serializes each event to JSON and publishes it on
// wms:events:<event name>.
func (p *RedisPublisher) Publish(events ...shared.DomainEvent) {
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			p.logger.WithFields(logrus.Fields{
				"event":    event.EventName(),
				"event_id": event.EventID(),
			}).WithError(err).Error("Failed to serialize domain event")
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err = p.client.Publish(ctx, channelPrefix+event.EventName(), payload).Err()
		cancel()
		if err != nil {
			p.logger.WithFields(logrus.Fields{
				"event":    event.EventName(),
				"event_id": event.EventID(),
			}).WithError(err).Error("Failed to publish domain event")
			continue
		}

		p.logger.WithFields(logrus.Fields{
			"event":    event.EventName(),
			"event_id": event.EventID(),
		}).Debug("Domain event published")
	}
}

// Channel returns the pub/sub channel for an event name.
func Channel(eventName string) string {
	return fmt.Sprintf("%s%s", channelPrefix, eventName)
}
