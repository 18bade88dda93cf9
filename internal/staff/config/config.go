// Package config loads the staff service configuration and company roster
// from YAML.
package config

import (
	"fmt"
	"os"

	e "github.com/gartstein/staff/internal/staff/errors"
	"github.com/gartstein/staff/internal/staff/models"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when CONFIG_PATH is not set.
const DefaultPath = "config/staff.yaml"

// Employee kinds accepted in the roster.
const (
	KindEmployee = "employee"
	KindHourly   = "hourly"
	KindSalaried = "salaried"
)

// Config struct for YAML configuration
type Config struct {
	LogLevel     string        `yaml:"LOG_LEVEL"`
	KafkaBrokers []string      `yaml:"KAFKA_BROKERS"`
	Topic        string        `yaml:"TOPIC"`
	Company      CompanyConfig `yaml:"COMPANY"`
}

// CompanyConfig describes the company and its roster.
type CompanyConfig struct {
	Title     string           `yaml:"TITLE"`
	Employees []EmployeeConfig `yaml:"EMPLOYEES"`
}

// EmployeeConfig is one roster entry. Optional numbers fall back to the
// model defaults when omitted.
type EmployeeConfig struct {
	FirstName    string `yaml:"FIRST_NAME"`
	LastName     string `yaml:"LAST_NAME"`
	Role         string `yaml:"ROLE"`
	Kind         string `yaml:"KIND"`
	VacationDays *int   `yaml:"VACATION_DAYS"`
	HourlyRate   *int   `yaml:"HOURLY_RATE"`
	Salary       *int   `yaml:"SALARY"`
	Hours        int    `yaml:"HOURS"`
}

// Path returns CONFIG_PATH or DefaultPath.
func Path() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Topic == "" {
		cfg.Topic = "staff_events"
	}
	return &cfg, nil
}

// BuildCompany creates the company described by the roster.
func (c *Config) BuildCompany() (*models.Company, error) {
	company := models.NewCompany(c.Company.Title)
	for i, ec := range c.Company.Employees {
		m, err := ec.build()
		if err != nil {
			return nil, fmt.Errorf("config: employee %d: %w", i, err)
		}
		company.AddEmployee(m)
	}
	return company, nil
}

func (ec EmployeeConfig) build() (models.Member, error) {
	var opts []models.Option
	if ec.VacationDays != nil {
		opts = append(opts, models.WithVacationDays(*ec.VacationDays))
	}
	if ec.HourlyRate != nil {
		opts = append(opts, models.WithHourlyRate(*ec.HourlyRate))
	}
	if ec.Salary != nil {
		opts = append(opts, models.WithSalary(*ec.Salary))
	}

	switch ec.Kind {
	case "", KindEmployee:
		emp, err := models.NewEmployee(ec.FirstName, ec.LastName, ec.Role, opts...)
		if err != nil {
			return nil, err
		}
		return emp, nil
	case KindHourly:
		h, err := models.NewHourlyEmployee(ec.FirstName, ec.LastName, ec.Role, opts...)
		if err != nil {
			return nil, err
		}
		h.LogWork(ec.Hours)
		return h, nil
	case KindSalaried:
		s, err := models.NewSalariedEmployee(ec.FirstName, ec.LastName, ec.Role, opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: unknown employee kind %q", e.ErrInvalidInput, ec.Kind)
	}
}
