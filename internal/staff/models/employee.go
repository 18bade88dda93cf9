// Package models defines the core domain models for staff management.
// It includes the base Employee, its hourly and salaried variants, and the
// Company that groups and pays them.
package models

import (
	"fmt"

	e "github.com/gartstein/staff/internal/staff/errors"
	"github.com/google/uuid"
)

// Well-known role labels used by the company queries.
const (
	RoleCEO       = "CEO"
	RoleManager   = "manager"
	RoleDeveloper = "dev"
)

const (
	// DefaultVacationDays is the yearly allowance every new employee starts with.
	DefaultVacationDays = 25
	// PayoutDays is the number of days deducted by a vacation payout.
	PayoutDays = 5
)

// Member is anything a Company can list and pay.
type Member interface {
	// Profile returns the base employee record.
	Profile() *Employee
	// Payment reports what the member is owed. The second value is false
	// when the member has no pay scheme.
	Payment() (Payment, bool)
}

// Employee defines the base domain model for an employee.
type Employee struct {
	// ID is the unique identifier for the employee.
	ID uuid.UUID
	// FirstName is the employee's given name.
	FirstName string
	// LastName is the employee's family name.
	LastName string
	// Role is a free-text label such as "CEO", "manager" or "dev".
	Role string
	// VacationDays is the remaining vacation balance.
	VacationDays int
}

// Leave describes a successful vacation withdrawal.
type Leave struct {
	// Payout is true when the withdrawal was a payout rather than a single day.
	Payout bool
	// Days is the number of days deducted.
	Days int
	// Remaining is the balance before the deduction.
	Remaining int
}

// Option customises an employee at construction time.
type Option func(*options)

type options struct {
	vacationDays int
	hourlyRate   int
	salary       int
}

// WithVacationDays overrides DefaultVacationDays.
func WithVacationDays(days int) Option {
	return func(o *options) { o.vacationDays = days }
}

// WithHourlyRate overrides DefaultHourlyRate for hourly employees.
func WithHourlyRate(rate int) Option {
	return func(o *options) { o.hourlyRate = rate }
}

// WithSalary overrides DefaultSalary for salaried employees.
func WithSalary(salary int) Option {
	return func(o *options) { o.salary = salary }
}

func newOptions(opts []Option) *options {
	o := &options{
		vacationDays: DefaultVacationDays,
		hourlyRate:   DefaultHourlyRate,
		salary:       DefaultSalary,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewEmployee creates an Employee after checking the required fields.
func NewEmployee(firstName, lastName, role string, opts ...Option) (*Employee, error) {
	return newEmployee(firstName, lastName, role, newOptions(opts))
}

func newEmployee(firstName, lastName, role string, o *options) (*Employee, error) {
	if firstName == "" {
		return nil, fmt.Errorf("%w: first name required", e.ErrInvalidInput)
	}
	if lastName == "" {
		return nil, fmt.Errorf("%w: last name required", e.ErrInvalidInput)
	}
	if role == "" {
		return nil, fmt.Errorf("%w: role required", e.ErrInvalidInput)
	}
	return &Employee{
		ID:           uuid.New(),
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
		VacationDays: o.vacationDays,
	}, nil
}

// FullName returns the (first, last) name pair.
func (emp *Employee) FullName() (string, string) {
	return emp.FirstName, emp.LastName
}

func (emp *Employee) String() string {
	return emp.FirstName + " " + emp.LastName
}

// Profile implements Member.
func (emp *Employee) Profile() *Employee {
	return emp
}

// Payment implements Member. A plain employee has no pay scheme.
func (emp *Employee) Payment() (Payment, bool) {
	return Payment{}, false
}

// TakeHoliday deducts a single vacation day, or PayoutDays when payout is set.
// The balance is left untouched when it does not cover the request.
// The model holds no logger; controller.StaffService.TakeHoliday wraps this
// call and writes the log line, so callers should go through the service.
func (emp *Employee) TakeHoliday(payout bool) (Leave, error) {
	requested := 1
	if payout {
		requested = PayoutDays
	}

	remaining := emp.VacationDays
	if remaining < requested {
		return Leave{}, &e.VacationError{
			Employee:  emp.String(),
			Remaining: remaining,
			Requested: requested,
		}
	}

	emp.VacationDays -= requested
	return Leave{Payout: payout, Days: requested, Remaining: remaining}, nil
}
