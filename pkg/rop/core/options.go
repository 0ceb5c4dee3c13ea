package core

import "context"

type OptionKey string

const (
	ProcessOptionKey OptionKey = "process_options"
	WorkerOptionKey  OptionKey = "worker_options"
	LoggerOptionKey  OptionKey = "logger_options"
)

type MaxLimitOption struct {
	Value int
}
type WorkerOptions struct {
	MaxCount  MaxLimitOption
	QueueSize int
}

type ProcessOptions struct {
	// ProcessRemaining makes a stopping pool run tasks that were already
	// queued instead of dropping them.
	ProcessRemaining bool
}

type LoggerOptions struct {
	Logger Logger
}

func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, ProcessOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return WithWorkerQueueOptions(ctx, maxWorkers, 0)
}

func WithWorkerQueueOptions(ctx context.Context, maxWorkers, queueSize int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey,
		WorkerOptions{MaxCount: MaxLimitOption{Value: maxWorkers}, QueueSize: queueSize})
}

func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func GetWorkerQueueSize(ctx context.Context, defaultQueueSize int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.QueueSize > 0 {
		return options.QueueSize
	}
	return defaultQueueSize
}

func IsProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	options, ok := ctx.Value(ProcessOptionKey).(ProcessOptions)
	if ok {
		return options.ProcessRemaining
	}
	return defaultProcessRemaining
}

// GetLogger returns the logger stored in ctx or DiscardLogger.
func GetLogger(ctx context.Context) Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return DiscardLogger
}
