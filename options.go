package array

import "go.uber.org/zap"

// Option configures an Array created with New.
type Option func(*options)

type options struct {
	budget Budget
	logger *zap.Logger
}

func defaultOptions() *options {
	return &options{}
}

// WithBudget meters every backing buffer of the array against b.
func WithBudget(b Budget) Option {
	return func(o *options) {
		o.budget = b
	}
}

// WithLimit caps the array's backing buffer at maxBytes.
// It is shorthand for WithBudget(NewLimit(maxBytes)).
func WithLimit(maxBytes int) Option {
	return func(o *options) {
		o.budget = NewLimit(maxBytes)
	}
}

// WithLogger sets the logger used by the array instead of the package logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
