package test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gartstein/staff/internal/staff/controller"
	"github.com/gartstein/staff/internal/staff/events"
	"github.com/gartstein/staff/internal/staff/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type IntegrationTestSuite struct {
	suite.Suite
	brokers     []string
	topic       string
	producer    *events.Producer
	consumer    *events.Consumer
	cancel      context.CancelFunc
	logger      *zap.Logger
	testTimeout time.Duration

	mu       sync.Mutex
	received []events.Event
}

func TestIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests")
	}
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		t.Skip("KAFKA_BROKERS not set")
	}
	suite.Run(t, &IntegrationTestSuite{brokers: strings.Split(brokers, ",")})
}

func (s *IntegrationTestSuite) SetupSuite() {
	s.logger = zap.NewNop()
	s.testTimeout = 60 * time.Second
	s.topic = "staff_events_" + uuid.NewString()

	producer, err := initializeKafkaWithRetry(s.brokers, s.topic)
	if err != nil {
		s.T().Fatal("Kafka initialization failed:", err)
	}
	s.producer = producer

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.consumer = events.NewConsumer(s.brokers, "staff-it-"+uuid.NewString(), s.topic, s.logger)
	s.consumer.RegisterHandler(func(_ context.Context, event events.Event) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.received = append(s.received, event)
		return nil
	})
	s.consumer.Start(ctx)
}

func initializeKafkaWithRetry(brokers []string, topic string) (*events.Producer, error) {
	var producer *events.Producer
	err := backoff.Retry(func() error {
		var err error
		producer, err = events.NewProducer(brokers, zap.NewNop(), topic)
		if err != nil || producer == nil {
			return fmt.Errorf("failed to create Kafka producer: %v", err)
		}
		return nil
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 10))
	if err != nil {
		return nil, err
	}

	err = backoff.Retry(func() error {
		conn, err := kafka.Dial("tcp", brokers[0])
		if err != nil {
			return err
		}
		defer conn.Close()

		partitions, err := conn.ReadPartitions(topic)
		if err != nil || len(partitions) == 0 {
			return fmt.Errorf("topic %s not found", topic)
		}
		return nil
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5))
	if err != nil {
		return nil, fmt.Errorf("Kafka topic check failed: %w", err)
	}
	return producer, nil
}

func (s *IntegrationTestSuite) TearDownSuite() {
	if s.producer != nil {
		s.producer.Close()
	}
	if s.cancel != nil {
		s.cancel()
	}
	if s.consumer != nil {
		s.consumer.Close()
	}
}

func (s *IntegrationTestSuite) TestPayrollEvents() {
	ctx, cancel := context.WithTimeout(context.Background(), s.testTimeout)
	defer cancel()

	svc := controller.NewStaffService(s.producer, s.logger)

	company := models.NewCompany("Integration")
	ceo, err := models.NewSalariedEmployee("Cleo", "Park", models.RoleCEO)
	s.Require().NoError(err)
	dev, err := models.NewHourlyEmployee("Bob", "Stone", models.RoleDeveloper)
	s.Require().NoError(err)
	company.AddEmployee(ceo)
	company.AddEmployee(dev)

	svc.LogWork(ctx, dev, 8)
	s.Require().NoError(svc.TakeHoliday(ctx, ceo, true))
	svc.PayAll(ctx, company)

	paid := s.waitForEvent(ctx, events.EmployeePaid, dev.ID)
	if assert.NotNil(s.T(), paid.Payment) {
		assert.Equal(s.T(), 400, paid.Payment.Amount)
	}

	payout := s.waitForEvent(ctx, events.VacationPaidOut, ceo.ID)
	assert.Equal(s.T(), models.DefaultVacationDays-models.PayoutDays, payout.Remaining)

	logged := s.waitForEvent(ctx, events.WorkLogged, dev.ID)
	assert.Equal(s.T(), 8, logged.Hours)
}

func (s *IntegrationTestSuite) waitForEvent(ctx context.Context, eventType events.EventType, employeeID uuid.UUID) events.Event {
	var found events.Event
	err := backoff.Retry(func() error {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, event := range s.received {
			if event.Type == eventType && event.EmployeeID == employeeID {
				found = event
				return nil
			}
		}
		return fmt.Errorf("no %s event for %s yet", eventType, employeeID)
	}, backoff.WithContext(backoff.NewConstantBackOff(500*time.Millisecond), ctx))
	if err != nil {
		s.T().Fatalf("Timeout waiting for %s event: %v", eventType, err)
	}
	return found
}
