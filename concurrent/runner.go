package concurrent

import (
	"context"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
)

// WorkerFunc processes one item. Messages passed to report are logged with the runner prefix.
type WorkerFunc[T any, R any] func(ctx context.Context, item T, report func(string)) (R, error)

// RunnerConfig configures the runner
type RunnerConfig struct {
	LogPrefix string // Prefix for log messages
}

// Runner feeds items to a worker one at a time, in order, and collects what
// comes back. A failed item never stops the run.
type Runner[T any, R any] struct {
	config RunnerConfig
}

// NewRunner creates a new runner with the given configuration
func NewRunner[T any, R any](config RunnerConfig) *Runner[T, R] {
	if config.LogPrefix == "" {
		config.LogPrefix = "Runner"
	}
	return &Runner[T, R]{
		config: config,
	}
}

// RunResult contains the results of a run, in item order
type RunResult[R any] struct {
	Results []R
	Errors  []error
}

// Run executes the worker for each item and aggregates results and errors.
// A cancelled context stops the run before the next item.
func (r *Runner[T, R]) Run(ctx context.Context, items []T, worker WorkerFunc[T, R]) RunResult[R] {
	result := RunResult[R]{
		Results: []R{},
		Errors:  []error{},
	}

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			result.Errors = append(result.Errors, err)
			break
		}

		value, err := worker(ctx, item, r.logInfo)
		if err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}
		result.Results = append(result.Results, value)
	}

	return result
}

func (r *Runner[T, R]) logInfo(message string) {
	log.Info(fmt.Sprintf("%s: %s", r.config.LogPrefix, message))
}
