package service

import (
	"context"
	"time"

	"github.com/maxviazov/pagewindow/pkg/pagination"
	"github.com/rs/zerolog"
)

// Settings are the knobs a deployment can turn on the parser.
type Settings struct {
	SortParameter string
	DefaultOrder  pagination.Order
}

// windowService wraps a parser with logging and metrics; it holds no per-request state.
type windowService struct {
	settings Settings
	parser   *pagination.Parser
	observer WindowObserver
	log      zerolog.Logger
}

// NewWindowService validates settings and builds the service.
// observer may be nil.
func NewWindowService(settings Settings, observer WindowObserver, logger zerolog.Logger) (WindowService, error) {
	l := logger.With().Str("module", "service").Str("component", "window").Logger()

	if err := validateSettings(settings); err != nil {
		l.Debug().Interface("field_errors", FieldErrors(err)).Msg("window settings validation failed")
		return nil, err
	}
	if settings.SortParameter == "" {
		settings.SortParameter = pagination.ParamSort
	}

	p := pagination.NewParser(
		pagination.WithSortParameter(settings.SortParameter),
		pagination.WithDefaultOrder(settings.DefaultOrder),
	)
	l.Info().
		Str("sort_parameter", p.SortParameter()).
		Strs("default_order", p.DefaultOrder().Fields()).
		Msg("window parser configured")

	return &windowService{settings: settings, parser: p, observer: observer, log: l}, nil
}

func (s *windowService) Describe(ctx context.Context, q pagination.Values, h pagination.HeaderFunc) pagination.Descriptor {
	start := time.Now()
	d := s.parser.Inspect(q, h)

	if s.observer != nil {
		s.observer.ObserveWindow(d)
	}
	if e := s.log.Debug(); e.Enabled() {
		e.Str("range", string(d.Range)).
			Str("sort", string(d.Sort)).
			Int("offset", d.Window.Offset()).
			Bool("unbounded", d.Window.IsUnbounded()).
			Strs("fields", d.Window.Order().Fields()).
			Dur("took", time.Since(start)).
			Msg("window described")
	}
	return d
}

func (s *windowService) Settings() Settings {
	out := s.settings
	out.DefaultOrder = s.parser.DefaultOrder()
	return out
}

// Ping reports readiness; the parser has no dependencies, so only a
// cancelled context can make it fail.
func (s *windowService) Ping(ctx context.Context) error {
	return ctx.Err()
}
