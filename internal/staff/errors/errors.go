package errors

import (
	"fmt"
)

var (
	ErrInvalidInput         = fmt.Errorf("invalid input")
	ErrInsufficientVacation = fmt.Errorf("insufficient vacation balance")
)

// VacationError is returned when a vacation request exceeds the remaining balance.
type VacationError struct {
	Employee  string
	Remaining int
	Requested int
}

func (v *VacationError) Error() string {
	return fmt.Sprintf("%s has not enough vacation days. Remaining days: %d. Requested: %d",
		v.Employee, v.Remaining, v.Requested)
}

func (v *VacationError) Unwrap() error {
	return ErrInsufficientVacation
}
