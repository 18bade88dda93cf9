// Package events publishes staff actions (holidays, logged work, payments)
// to Kafka and reads them back.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gartstein/staff/internal/staff/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var jsonMarshal = json.Marshal

// maxSendRetries bounds the write attempts for a single event.
const maxSendRetries = 3

type EventType string

const (
	HolidayTaken    EventType = "holiday_taken"
	VacationPaidOut EventType = "vacation_paid_out"
	WorkLogged      EventType = "work_logged"
	EmployeePaid    EventType = "employee_paid"
)

// Event is the JSON payload written for every staff action.
type Event struct {
	Type       EventType       `json:"type"`
	EmployeeID uuid.UUID       `json:"employee_id"`
	Employee   string          `json:"employee"`
	Role       string          `json:"role"`
	Remaining  int             `json:"remaining,omitempty"`
	Hours      int             `json:"hours,omitempty"`
	Payment    *models.Payment `json:"payment,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewEvent builds an Event for emp stamped with the current time.
func NewEvent(eventType EventType, emp *models.Employee) Event {
	return Event{
		Type:       eventType,
		EmployeeID: emp.ID,
		Employee:   emp.String(),
		Role:       emp.Role,
		OccurredAt: time.Now().UTC(),
	}
}

type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	writer    KafkaWriter
	events    chan Event
	logger    *zap.Logger
	closeChan chan struct{}
	done      chan struct{}
	running   bool
	backoff   func() backoff.BackOff
}

func NewProducer(brokers []string, logger *zap.Logger, topic string) (*Producer, error) {
	// Create topic if it doesn't exist
	conn, err := kafka.Dial("tcp", brokers[0])
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	topicConfigs := []kafka.TopicConfig{
		{
			Topic:             topic,
			NumPartitions:     3,
			ReplicationFactor: 1,
		},
	}

	err = conn.CreateTopics(topicConfigs...)
	if err != nil {
		logger.Warn("failed to create topic (may already exist)", zap.Error(err))
	}
	p := newProducer(&kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Balancer: &kafka.Hash{},
		Topic:    topic,
	}, logger)

	p.start()
	return p, nil
}

func newProducer(writer KafkaWriter, logger *zap.Logger) *Producer {
	return &Producer{
		writer:    writer,
		events:    make(chan Event, 1000),
		logger:    logger.Named("kafka_producer"),
		closeChan: make(chan struct{}),
		done:      make(chan struct{}),
		backoff: func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxSendRetries)
		},
	}
}

// Produce queues event for delivery. It never blocks; events are dropped when
// the queue is full.
func (p *Producer) Produce(event Event) {
	select {
	case p.events <- event:
	default:
		p.logger.Warn("Kafka producer queue full, dropping event",
			zap.String("event_type", string(event.Type)),
			zap.String("employee_id", event.EmployeeID.String()),
		)
	}
}

func (p *Producer) start() {
	p.running = true
	go p.eventLoop()
}

func (p *Producer) eventLoop() {
	defer close(p.done)
	for {
		select {
		case event := <-p.events:
			p.sendEvent(context.Background(), event)
		case <-p.closeChan:
			return
		}
	}
}

func (p *Producer) sendEvent(ctx context.Context, event Event) {
	value, err := jsonMarshal(event)
	if err != nil {
		p.logger.Error("Failed to serialize event",
			zap.Error(err),
			zap.String("employee_id", event.EmployeeID.String()),
		)
		return
	}
	msg := kafka.Message{
		Key:   []byte(event.EmployeeID.String()),
		Value: value,
	}
	err = backoff.Retry(func() error {
		return p.writer.WriteMessages(ctx, msg)
	}, backoff.WithContext(p.backoff(), ctx))
	if err != nil {
		p.logger.Error("Failed to produce event",
			zap.Error(err),
			zap.String("event_type", string(event.Type)),
			zap.String("employee_id", event.EmployeeID.String()),
		)
		return
	}
}

// Close stops the event loop, flushes events still queued and closes the writer.
// It waits for an in-flight send to finish before flushing.
func (p *Producer) Close() {
	close(p.closeChan)
	if p.running {
		<-p.done
	}
flush:
	for {
		select {
		case event := <-p.events:
			p.sendEvent(context.Background(), event)
		default:
			break flush
		}
	}
	if err := p.writer.Close(); err != nil {
		p.logger.Error("Failed to close Kafka writer", zap.Error(err))
	}
}

// NopProducer discards events. It is used when no brokers are configured.
type NopProducer struct{}

func (NopProducer) Produce(Event) {}
