package events

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
)

// Subscriber is the consuming half of the bus.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}

// Handler processes one event payload. Errors are logged and the message is dropped.
type Handler func(ctx context.Context, topic string, payload []byte) error

// NotificationWorker consumes every domain topic and hands each message to a Handler.
// The default handler only logs; delivery channels (email, push) plug in here.
type NotificationWorker struct {
	subscriber Subscriber
	handle     Handler
	wg         sync.WaitGroup
}

// NewNotificationWorker creates a worker. A nil handler logs each event.
func NewNotificationWorker(subscriber Subscriber, handle Handler) *NotificationWorker {
	if handle == nil {
		handle = LogHandler
	}
	return &NotificationWorker{subscriber: subscriber, handle: handle}
}

// Start subscribes to all topics and processes messages until ctx is cancelled.
func (w *NotificationWorker) Start(ctx context.Context) error {
	for _, topic := range AllTopics {
		messages, err := w.subscriber.Subscribe(ctx, topic)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
		}
		w.wg.Add(1)
		go w.consume(ctx, topic, messages)
	}
	log.Printf("NotificationWorker: listening on %d topics", len(AllTopics))
	return nil
}

// Wait blocks until every consumer goroutine has returned.
func (w *NotificationWorker) Wait() {
	w.wg.Wait()
}

func (w *NotificationWorker) consume(ctx context.Context, topic string, messages <-chan *message.Message) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			if err := w.handle(ctx, topic, msg.Payload); err != nil {
				log.Printf("NotificationWorker: failed to handle %s message %s: %v", topic, msg.UUID, err)
			}
			msg.Ack()
		}
	}
}

// LogHandler writes the event to the application log.
func LogHandler(_ context.Context, topic string, payload []byte) error {
	log.Printf("NotificationWorker: %s %s", topic, payload)
	return nil
}
