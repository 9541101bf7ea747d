package config

import (
	"strings"
	"time"

	"github.com/maxviazov/pagewindow/internal/logger"
	"github.com/maxviazov/pagewindow/pkg/pagination"
)

type Config struct {
	App        AppConfig           `mapstructure:"app"`
	Logger     logger.LoggerConfig `mapstructure:"logger" validate:"-"`
	Pagination PaginationConfig    `mapstructure:"pagination"`
	HTTP       HTTPConfig          `mapstructure:"http"`
}

type AppConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env" validate:"oneof=dev test staging prod"`
	Port    int    `mapstructure:"port" validate:"min=1,max=65535"`
}

// PaginationConfig feeds the window parser.
type PaginationConfig struct {
	SortParameter string            `mapstructure:"sort_parameter" validate:"required,excludesall=&=#?()[]"`
	DefaultOrder  []SortFieldConfig `mapstructure:"default_order" validate:"dive"`
}

type SortFieldConfig struct {
	Field     string `mapstructure:"field" validate:"required"`
	Direction string `mapstructure:"direction" validate:"omitempty,oneof=asc desc ASC DESC"`
}

type HTTPConfig struct {
	CORSOrigins     []string      `mapstructure:"cors_origins"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"min=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"min=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=0"`
}

// Order converts the configured default order; a missing direction means ascending.
func (p PaginationConfig) Order() pagination.Order {
	var out pagination.Order
	for _, f := range p.DefaultOrder {
		out = append(out, pagination.SortField{
			Field:     f.Field,
			Ascending: !strings.EqualFold(f.Direction, "desc"),
		})
	}
	return out
}
