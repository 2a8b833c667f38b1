package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"careerconnect/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Bus wraps a watermill publisher/subscriber pair. Without Kafka brokers it runs
// on an in-process go channel.
type Bus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
}

var _ Publisher = (*Bus)(nil)

// NewBus builds the bus selected by cfg.
func NewBus(cfg config.EventsConfig) (*Bus, error) {
	logger := watermill.NewStdLogger(false, false)

	if len(cfg.KafkaBrokers) == 0 {
		log.Println("Event bus: no Kafka brokers configured, using in-process channel")
		return NewInProcessBus(logger), nil
	}

	publisher, err := kafka.NewPublisher(kafka.PublisherConfig{
		Brokers:   cfg.KafkaBrokers,
		Marshaler: kafka.DefaultMarshaler{},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}

	subscriber, err := kafka.NewSubscriber(kafka.SubscriberConfig{
		Brokers:       cfg.KafkaBrokers,
		Unmarshaler:   kafka.DefaultMarshaler{},
		ConsumerGroup: cfg.ConsumerGroup,
	}, logger)
	if err != nil {
		publisher.Close()
		return nil, fmt.Errorf("failed to create kafka subscriber: %w", err)
	}

	log.Printf("Event bus: using Kafka brokers %v", cfg.KafkaBrokers)
	return &Bus{publisher: publisher, subscriber: subscriber}, nil
}

// NewInProcessBus returns a bus backed by a watermill go channel.
func NewInProcessBus(logger watermill.LoggerAdapter) *Bus {
	ch := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 256}, logger)
	return &Bus{publisher: ch, subscriber: ch}
}

// Publish marshals event to JSON and sends it on topic.
func (b *Bus) Publish(ctx context.Context, topic string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", topic, err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("topic", topic)
	msg.SetContext(ctx)
	if err := b.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", topic, err)
	}
	return nil
}

// Subscribe returns the message stream for topic.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.subscriber.Subscribe(ctx, topic)
}

// Close shuts down both sides of the bus.
func (b *Bus) Close() error {
	pubErr := b.publisher.Close()
	subErr := b.subscriber.Close()
	if pubErr != nil {
		return pubErr
	}
	return subErr
}
