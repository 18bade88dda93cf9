package models

const (
	// DefaultHourlyRate is the rate applied to hourly employees unless overridden.
	DefaultHourlyRate = 50
	// DefaultSalary is the monthly salary of salaried employees unless overridden.
	DefaultSalary = 5000
)

// HourlyEmployee is paid on the basis of logged working hours.
type HourlyEmployee struct {
	Employee
	// Hours is the number of hours worked since the last reset.
	Hours int
	// HourlyRate is the amount paid per hour.
	HourlyRate int
}

// NewHourlyEmployee creates an HourlyEmployee with no hours logged.
func NewHourlyEmployee(firstName, lastName, role string, opts ...Option) (*HourlyEmployee, error) {
	o := newOptions(opts)
	emp, err := newEmployee(firstName, lastName, role, o)
	if err != nil {
		return nil, err
	}
	return &HourlyEmployee{Employee: *emp, HourlyRate: o.hourlyRate}, nil
}

// LogWork adds hours to the worked total. The value is not validated.
func (h *HourlyEmployee) LogWork(hours int) {
	h.Hours += hours
}

// Payment implements Member.
func (h *HourlyEmployee) Payment() (Payment, bool) {
	return Payment{
		Kind:     PayHourly,
		Employee: h.String(),
		Rate:     h.HourlyRate,
		Hours:    h.Hours,
		Amount:   h.HourlyRate * h.Hours,
	}, true
}

// SalariedEmployee is paid a fixed monthly salary.
type SalariedEmployee struct {
	Employee
	salary int
}

// NewSalariedEmployee creates a SalariedEmployee. The salary cannot change afterwards.
func NewSalariedEmployee(firstName, lastName, role string, opts ...Option) (*SalariedEmployee, error) {
	o := newOptions(opts)
	emp, err := newEmployee(firstName, lastName, role, o)
	if err != nil {
		return nil, err
	}
	return &SalariedEmployee{Employee: *emp, salary: o.salary}, nil
}

// Salary returns the monthly salary.
func (s *SalariedEmployee) Salary() int {
	return s.salary
}

// Payment implements Member.
func (s *SalariedEmployee) Payment() (Payment, bool) {
	return Payment{
		Kind:     PaySalary,
		Employee: s.String(),
		Amount:   s.salary,
	}, true
}
