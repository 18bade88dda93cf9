// Package controller implements the staff business logic: vacation,
// logged work and payroll, logging every action and emitting events.
package controller

import (
	"context"
	"fmt"

	"github.com/gartstein/staff/internal/staff/events"
	"github.com/gartstein/staff/internal/staff/models"
	"go.uber.org/zap"
)

type EventProducer interface {
	Produce(event events.Event)
}

// StaffService performs employee and company operations, reporting each
// successful action to the logger and the event producer.
type StaffService struct {
	producer EventProducer
	logger   *zap.Logger
}

// NewStaffService constructs a StaffService with an event producer and a logger.
func NewStaffService(producer EventProducer, logger *zap.Logger) *StaffService {
	return &StaffService{
		producer: producer,
		logger:   logger.Named("staff_service"),
	}
}

// TakeHoliday withdraws a single vacation day, or a payout block when payout
// is set. Nothing is logged when the balance is insufficient.
func (s *StaffService) TakeHoliday(_ context.Context, m models.Member, payout bool) error {
	emp := m.Profile()
	leave, err := emp.TakeHoliday(payout)
	if err != nil {
		return err
	}

	action, eventType := "holiday", events.HolidayTaken
	if leave.Payout {
		action, eventType = "payout", events.VacationPaidOut
	}
	s.logger.Info(fmt.Sprintf("Taking a %s. Remaining vacation days: %d", action, leave.Remaining),
		zap.String("employee_id", emp.ID.String()),
		zap.Stringer("employee", emp),
	)

	event := events.NewEvent(eventType, emp)
	event.Remaining = emp.VacationDays
	s.producer.Produce(event)
	return nil
}

// LogWork records worked hours for an hourly employee.
func (s *StaffService) LogWork(_ context.Context, h *models.HourlyEmployee, hours int) {
	h.LogWork(hours)

	event := events.NewEvent(events.WorkLogged, &h.Employee)
	event.Hours = hours
	s.producer.Produce(event)
}

// Pay logs the payment owed to m. Members without a pay scheme are skipped.
func (s *StaffService) Pay(_ context.Context, m models.Member) {
	payment, ok := m.Payment()
	if !ok {
		return
	}

	emp := m.Profile()
	s.logger.Info(payment.String(),
		zap.String("employee_id", emp.ID.String()),
		zap.String("pay_kind", string(payment.Kind)),
		zap.Int("amount", payment.Amount),
	)

	event := events.NewEvent(events.EmployeePaid, emp)
	event.Payment = &payment
	s.producer.Produce(event)
}

// PayAll pays every employee of the company in order.
func (s *StaffService) PayAll(ctx context.Context, company *models.Company) {
	for _, m := range company.Employees() {
		s.Pay(ctx, m)
	}
}
