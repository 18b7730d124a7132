package drill

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/xid"
	"go.uber.org/zap"

	"github.com/drillab/kata/hooking"
)

// HookPosStart marks the moment before a drill runs.
var HookPosStart = &hooking.Pos{Name: "Drill Start"}

// HookPosEnd marks a drill that ran to completion.
var HookPosEnd = &hooking.Pos{Name: "Drill End"}

// HookPosFail marks a drill whose property check failed.
var HookPosFail = &hooking.Pos{Name: "Drill Fail"}

// ResultTable is the recorder table runners write into.
const ResultTable = "drill_results"

// Result is one recorded drill run.
type Result struct {
	ID         string
	Drill      string
	Topic      string
	Passed     bool
	DurationMS int64
	Detail     string
	RunAt      string
}

// Recorder is the seam into the recording backends. It matches the
// recording package's writer surface.
type Recorder interface {
	CreateTable(tableName string, sampleEntry any)
	InsertData(tableName string, entry any)
	Flush()
}

// Runner executes drills from a registry. Build one with RunnerBuilder.
type Runner struct {
	hooking.Base

	registry *Registry
	recorder Recorder
	logger   *zap.Logger
	out      io.Writer
}

// RunnerBuilder builds a Runner.
type RunnerBuilder struct {
	registry *Registry
	recorder Recorder
	logger   *zap.Logger
	out      io.Writer
}

// WithRegistry sets the registry to draw drills from.
func (b RunnerBuilder) WithRegistry(r *Registry) RunnerBuilder {
	b.registry = r
	return b
}

// WithRecorder sets the result recorder. Without one, results are not
// persisted.
func (b RunnerBuilder) WithRecorder(rec Recorder) RunnerBuilder {
	b.recorder = rec
	return b
}

// WithLogger sets the logger.
func (b RunnerBuilder) WithLogger(l *zap.Logger) RunnerBuilder {
	b.logger = l
	return b
}

// WithOutput sets the writer drill walkthroughs are printed to.
func (b RunnerBuilder) WithOutput(w io.Writer) RunnerBuilder {
	b.out = w
	return b
}

// Build builds the Runner.
func (b RunnerBuilder) Build() *Runner {
	if b.registry == nil {
		panic("drill: runner needs a registry")
	}

	logger := b.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	out := b.out
	if out == nil {
		out = io.Discard
	}

	r := &Runner{
		registry: b.registry,
		recorder: b.recorder,
		logger:   logger,
		out:      out,
	}

	if r.recorder != nil {
		r.recorder.CreateTable(ResultTable, Result{})
	}

	return r
}

// Registry returns the registry the runner draws from.
func (r *Runner) Registry() *Registry { return r.registry }

// RunDrill executes one drill by name.
func (r *Runner) RunDrill(name string) (Result, error) {
	d, ok := r.registry.Lookup(name)
	if !ok {
		return Result{}, fmt.Errorf("drill: unknown drill %q", name)
	}

	return r.run(d), nil
}

// RunTopic executes every drill of a topic, in name order.
func (r *Runner) RunTopic(topic string) ([]Result, error) {
	drills := r.registry.ByTopic(topic)
	if len(drills) == 0 {
		return nil, fmt.Errorf("drill: no drills for topic %q", topic)
	}

	results := make([]Result, 0, len(drills))
	for _, d := range drills {
		results = append(results, r.run(d))
	}

	return results, nil
}

// RunAll executes the entire corpus.
func (r *Runner) RunAll() []Result {
	drills := r.registry.All()

	results := make([]Result, 0, len(drills))
	for _, d := range drills {
		results = append(results, r.run(d))
	}

	return results
}

func (r *Runner) run(d Drill) Result {
	r.Invoke(hooking.Ctx{Domain: r, Pos: HookPosStart, Item: d})

	r.logger.Info("running drill",
		zap.String("drill", d.Name),
		zap.String("topic", d.Topic))

	start := time.Now()
	err := d.Run(r.out)
	elapsed := time.Since(start)

	result := Result{
		ID:         xid.New().String(),
		Drill:      d.Name,
		Topic:      d.Topic,
		Passed:     err == nil,
		DurationMS: elapsed.Milliseconds(),
		RunAt:      start.UTC().Format(time.RFC3339),
	}

	if err != nil {
		result.Detail = err.Error()

		r.logger.Warn("drill failed",
			zap.String("drill", d.Name),
			zap.Error(err))
		r.Invoke(hooking.Ctx{Domain: r, Pos: HookPosFail, Item: d, Detail: err})
	} else {
		r.Invoke(hooking.Ctx{Domain: r, Pos: HookPosEnd, Item: d})
	}

	if r.recorder != nil {
		r.recorder.InsertData(ResultTable, result)
	}

	return result
}
