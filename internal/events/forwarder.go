package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Channel is the subset of *amqp.Channel used for publishing.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// SequenceSource hands out monotonically increasing sequence numbers per
// partition key.
type SequenceSource interface {
	NextSequence(ctx context.Context, partitionKey string) (int64, error)
}

// Forwarder is a Handler that publishes dispatched domain events to the
// events exchange wrapped in an EventEnvelope.
type Forwarder struct {
	ch       Channel
	seq      SequenceSource
	routes   map[string]string
	producer string
	logger   *zap.Logger
	counter  *prometheus.CounterVec
}

// NewForwarder opens a channel on conn and declares the events exchange.
// The returned close func releases the channel.
func NewForwarder(conn *amqp.Connection, seq SequenceSource, routes map[string]string, logger *zap.Logger) (*Forwarder, func() error, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareEventsExchange(ch); err != nil {
		_ = ch.Close()
		return nil, nil, fmt.Errorf("declare events exchange: %w", err)
	}

	return newForwarder(ch, seq, routes, logger), ch.Close, nil
}

func newForwarder(ch Channel, seq SequenceSource, routes map[string]string, logger *zap.Logger) *Forwarder {
	return &Forwarder{
		ch:       ch,
		seq:      seq,
		routes:   routes,
		producer: serviceName,
		logger:   logger,
	}
}

// CountWith makes the forwarder increment counter, labelled by event name, for
// every published event.
func (f *Forwarder) CountWith(counter *prometheus.CounterVec) {
	f.counter = counter
}

func (f *Forwarder) Handle(ctx context.Context, ev Event) error {
	routingKey, ok := f.routes[ev.Name()]
	if !ok {
		return fmt.Errorf("no routing key for %s", ev.Name())
	}

	var seq int64
	if f.seq != nil {
		next, err := f.seq.NextSequence(ctx, ev.AggregateID())
		if err != nil {
			return fmt.Errorf("reserve sequence: %w", err)
		}
		seq = next
	}

	correlationID := middleware.GetReqID(ctx)
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	env, err := newEnvelope(ev, f.producer, seq, correlationID)
	if err != nil {
		return err
	}
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal %s envelope: %w", ev.Name(), err)
	}

	if err := f.publishJSON(ctx, routingKey, body); err != nil {
		return fmt.Errorf("publish %s: %w", ev.Name(), err)
	}
	if f.counter != nil {
		f.counter.WithLabelValues(ev.Name()).Inc()
	}

	f.logger.Debug("event forwarded",
		zap.String("event", ev.Name()),
		zap.String("eventId", ev.ID()),
		zap.String("routingKey", routingKey),
		zap.Int64("sequence", seq),
	)
	return nil
}

func (f *Forwarder) publishJSON(ctx context.Context, routingKey string, body []byte) error {
	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return f.ch.PublishWithContext(
		pubCtx,
		EventsExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}
