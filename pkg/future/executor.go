package future

//go:generate mockgen -source executor.go -destination executor_mock.go -package future

// Executor runs tasks. Implementations decide on which goroutine.
type Executor interface {
	Execute(task func())
}

type ExecutorFunc func(task func())

func (f ExecutorFunc) Execute(task func()) {
	f(task)
}

var (
	// Inline runs each task on the calling goroutine.
	Inline Executor = ExecutorFunc(func(task func()) { task() })
	// Goroutine runs each task on a new goroutine.
	Goroutine Executor = ExecutorFunc(func(task func()) { go task() })
)
