// Package search enumerates simple paths through a letter graph and records
// every path that spells a dictionary word.
package search

import (
	"context"
	"errors"
	"time"
)

// DefaultMinLength is the shortest word reported unless WithMinLength says
// otherwise.
const DefaultMinLength = 4

// ErrDeadlineExceeded is returned when a search uses up its step budget.
var ErrDeadlineExceeded = errors.New("search: step budget exceeded")

type Option func(*Options)

type Options struct {
	// Ctx is checked between steps; defaults to context.Background().
	Ctx context.Context

	// MinLength is the shortest word recorded. Values below 1 mean 1.
	MinLength int

	// MaxSteps bounds the number of path extensions. Zero or less means
	// no bound.
	MaxSteps int
}

func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MinLength: DefaultMinLength,
	}
}

func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

func WithMinLength(n int) Option {
	return func(o *Options) {
		o.MinLength = n
	}
}

func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// Stats describes the work done by one Solve call.
type Stats struct {
	Roots    int           `json:"roots"`
	Steps    int           `json:"steps"`
	Pruned   int           `json:"pruned"`
	Hits     int           `json:"hits"`
	Duration time.Duration `json:"duration"`
}
