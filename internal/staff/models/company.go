package models

import "github.com/google/uuid"

// Company defines the domain model for a company and its staff.
type Company struct {
	// ID is the unique identifier for the company.
	ID uuid.UUID
	// Title is the company's display name.
	Title string

	employees []Member
}

// NewCompany creates a Company with its own empty staff list.
func NewCompany(title string) *Company {
	return &Company{
		ID:        uuid.New(),
		Title:     title,
		employees: []Member{},
	}
}

// AddEmployee appends m to the staff list. Duplicates are allowed; nil is ignored.
func (c *Company) AddEmployee(m Member) {
	if m == nil {
		return
	}
	c.employees = append(c.employees, m)
}

// Employees returns a copy of the staff list in insertion order.
func (c *Company) Employees() []Member {
	out := make([]Member, len(c.employees))
	copy(out, c.employees)
	return out
}

// ByRole returns the employees whose role equals role exactly, in insertion order.
func (c *Company) ByRole(role string) []Member {
	result := []Member{}
	for _, m := range c.employees {
		if m.Profile().Role == role {
			result = append(result, m)
		}
	}
	return result
}

// CEOs returns the employees with the CEO role.
func (c *Company) CEOs() []Member {
	return c.ByRole(RoleCEO)
}

// Managers returns the employees with the manager role.
func (c *Company) Managers() []Member {
	return c.ByRole(RoleManager)
}

// Developers returns the employees with the developer role.
func (c *Company) Developers() []Member {
	return c.ByRole(RoleDeveloper)
}
