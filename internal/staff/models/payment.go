package models

import "fmt"

// PayKind represents how an employee is compensated.
type PayKind string

const (
	PaySalary PayKind = "SALARY"
	PayHourly PayKind = "HOURLY"
)

// Payment describes a single pay instruction for one employee.
type Payment struct {
	Kind     PayKind `json:"kind"`
	Employee string  `json:"employee"`
	Rate     int     `json:"rate,omitempty"`
	Hours    int     `json:"hours,omitempty"`
	Amount   int     `json:"amount"`
}

func (p Payment) String() string {
	switch p.Kind {
	case PayHourly:
		return fmt.Sprintf("Paying %s hourly rate of %.2f for %d hours", p.Employee, float64(p.Rate), p.Hours)
	case PaySalary:
		return fmt.Sprintf("Paying monthly salary of %.2f to %s", float64(p.Amount), p.Employee)
	default:
		return fmt.Sprintf("Paying %d to %s", p.Amount, p.Employee)
	}
}
