package todo

import (
	"context"
	"time"

	"github.com/zoobzio/pipz"
)

// Option configures the mutation dispatch pipeline of a Bloc. Pipeline
// options wrap the store call with middleware for retry, timeout, and other
// reliability patterns. The graph itself performs no retries and no
// recovery; these options are how an integrator chooses a policy for store
// failures.
type Option func(pipz.Chainable[*Mutation]) pipz.Chainable[*Mutation]

// buildPipeline wraps the store terminal with pipeline options.
func buildPipeline(terminal pipz.Chainable[*Mutation], opts []Option) pipz.Chainable[*Mutation] {
	pipeline := terminal
	for _, opt := range opts {
		pipeline = opt(pipeline)
	}
	return pipeline
}

// WithRetry wraps mutation dispatch with retry logic.
// Failed store calls are retried immediately up to maxAttempts times.
// For exponential backoff between retries, use WithBackoff instead.
func WithRetry(maxAttempts int) Option {
	return func(p pipz.Chainable[*Mutation]) pipz.Chainable[*Mutation] {
		return pipz.NewRetry("retry", p, maxAttempts)
	}
}

// WithBackoff wraps mutation dispatch with exponential backoff retry logic.
// Failed store calls are retried with increasing delays: baseDelay,
// 2*baseDelay, 4*baseDelay, and so on.
func WithBackoff(maxAttempts int, baseDelay time.Duration) Option {
	return func(p pipz.Chainable[*Mutation]) pipz.Chainable[*Mutation] {
		return pipz.NewBackoff("backoff", p, maxAttempts, baseDelay)
	}
}

// WithTimeout wraps mutation dispatch with a deadline. If the store call
// takes longer than d, it fails with a timeout error.
func WithTimeout(d time.Duration) Option {
	return func(p pipz.Chainable[*Mutation]) pipz.Chainable[*Mutation] {
		return pipz.NewTimeout("timeout", p, d)
	}
}

// WithErrorHandler adds error observation to mutation dispatch. Errors are
// passed to the handler for logging, metrics, or alerting, but the error
// still follows the bloc's failure policy. Use this for observability, not
// recovery.
func WithErrorHandler(handler pipz.Chainable[*pipz.Error[*Mutation]]) Option {
	return func(p pipz.Chainable[*Mutation]) pipz.Chainable[*Mutation] {
		return pipz.NewHandle("error-handler", p, handler)
	}
}

// WithMiddleware wraps mutation dispatch with a sequence of processors.
// Processors execute in order, with the store call last.
func WithMiddleware(processors ...pipz.Chainable[*Mutation]) Option {
	return func(p pipz.Chainable[*Mutation]) pipz.Chainable[*Mutation] {
		all := make([]pipz.Chainable[*Mutation], 0, len(processors)+1)
		all = append(all, processors...)
		all = append(all, p)
		return pipz.NewSequence("middleware", all...)
	}
}

// UseEffect creates a middleware processor that performs a side effect.
// The mutation passes through unchanged. Use for logging or notifications
// that should not affect dispatch.
func UseEffect(name string, fn func(context.Context, *Mutation) error) pipz.Chainable[*Mutation] {
	return pipz.Effect(pipz.Name(name), fn)
}

// UseTransform creates a middleware processor that rewrites the mutation.
// Cannot fail. Use for pure transformations that always succeed.
func UseTransform(name string, fn func(context.Context, *Mutation) *Mutation) pipz.Chainable[*Mutation] {
	return pipz.Transform(pipz.Name(name), fn)
}

// UseFilter wraps a processor with a condition. If the condition returns
// false, the mutation passes through without reaching the processor.
func UseFilter(name string, condition func(context.Context, *Mutation) bool, processor pipz.Chainable[*Mutation]) pipz.Chainable[*Mutation] {
	return pipz.NewFilter(pipz.Name(name), condition, processor)
}
