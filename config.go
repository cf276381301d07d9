package obtree

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Config configures a Tree at construction time. BP is the branching
// factor from the spec: the maximum number of edges a chunk may hold.
// Recommended values are 4, 8, or 16; BP must be at least 4 (the
// source crate leaves this unconstrained — a BP of 3 would give
// HALF == 1 and let the borrow-if-more-than-HALF rule produce
// pathological shapes, so this package requires BP >= 4 and rejects
// anything smaller at construction).
type Config struct {
	// BP is the branching factor. Required, must be >= 4.
	BP int `validate:"required,gte=4"`

	// Logger receives structural rebalance events (split, borrow,
	// merge, root promotion/demotion) at debug level. Nil means no
	// logging.
	Logger *zerolog.Logger

	// Metrics, if set, counts rebalance events as Prometheus counters.
	// Nil means no metrics are recorded.
	Metrics *Metrics
}

// configValidator wraps a go-playground validator.Validate instance the
// way the teacher codebase wraps one for request validation: a small
// struct around validator.New(), exposing just the Struct check this
// package needs.
type configValidator struct {
	validate *validator.Validate
}

func newConfigValidator() *configValidator {
	return &configValidator{validate: validator.New()}
}

func (v *configValidator) Validate(cfg Config) error {
	if err := v.validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
