// Package lesson runs the function-semantics demonstrations in a fixed order
// and prints what each one does.
package lesson

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strings"
	"time"

	"go.uber.org/zap"

	"go-functions/internal/shared/logger"
	"go-functions/internal/shared/metrics"
	"go-functions/internal/utils"
)

var (
	// ErrUnknownLesson is returned when a requested lesson is not in the catalogue
	ErrUnknownLesson = errors.New("unknown lesson")
	// ErrLessonPanicked wraps the value of a recovered lesson panic
	ErrLessonPanicked = errors.New("lesson panicked")
)

// Lesson is one self-contained demonstration
type Lesson struct {
	Name  string
	Title string
	Run   func(ctx context.Context, env *Env) error
}

// Env is what a lesson may touch while it runs
type Env struct {
	out     io.Writer
	err     error
	logger  *logger.Logger
	metrics *metrics.Metrics
}

// Println writes a line of lesson output. The first write error is kept and
// later writes are skipped.
func (e *Env) Println(a ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.out, a...)
}

// Printf writes formatted lesson output
func (e *Env) Printf(format string, a ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.out, format, a...)
}

// Err reports the first output error
func (e *Env) Err() error {
	return e.err
}

// Logger returns the lesson's logger
func (e *Env) Logger() *logger.Logger {
	return e.logger
}

func (e *Env) recordCounterOperation(op string) {
	if e.metrics != nil {
		e.metrics.RecordCounterOperation(op)
	}
}

func (e *Env) recordBooking(usedDefaults bool) {
	if e.metrics != nil {
		e.metrics.RecordBooking(usedDefaults)
	}
}

func (e *Env) recordReservation(airline string) {
	if e.metrics != nil {
		e.metrics.RecordReservation(airline)
	}
}

// Runner runs lessons against one output
type Runner struct {
	lessons []Lesson
	out     io.Writer
	logger  *logger.Logger
	metrics *metrics.Metrics
}

// RunnerOptions holds the runner dependencies. Logger and Metrics may be nil;
// a nil Logger discards everything.
type RunnerOptions struct {
	Lessons []Lesson
	Out     io.Writer
	Logger  *logger.Logger
	Metrics *metrics.Metrics
}

// NewRunner creates a runner over opts.Lessons, or the full catalogue when none are given
func NewRunner(opts RunnerOptions) *Runner {
	lessons := opts.Lessons
	if len(lessons) == 0 {
		lessons = Catalogue()
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	return &Runner{
		lessons: lessons,
		out:     opts.Out,
		logger:  log.Named("lesson-runner"),
		metrics: opts.Metrics,
	}
}

// Lessons returns the runner's lessons in run order
func (r *Runner) Lessons() []Lesson {
	out := make([]Lesson, len(r.lessons))
	copy(out, r.lessons)
	return out
}

// Run runs the named lessons, or every lesson when names is empty.
// Lessons always run in catalogue order. Unknown names fail before anything
// runs, and a cancelled ctx stops the run between lessons.
func (r *Runner) Run(ctx context.Context, names ...string) error {
	selected, err := r.selectLessons(names)
	if err != nil {
		return err
	}

	log := r.logger.With(zap.String("run_id", utils.NewRunID()))
	log.Info("Run started", zap.Int("lessons", len(selected)))
	start := time.Now()

	for _, l := range selected {
		if err := ctx.Err(); err != nil {
			log.Warn("Run cancelled", zap.String("next_lesson", l.Name), zap.Error(err))
			return err
		}

		if err := r.runOne(ctx, log, l); err != nil {
			return fmt.Errorf("lesson %s: %w", l.Name, err)
		}
	}

	log.Info("Run finished", zap.Duration("duration", time.Since(start)))
	return nil
}

func (r *Runner) runOne(ctx context.Context, log *logger.Logger, l Lesson) error {
	lessonLog := log.Named(l.Name)
	env := &Env{
		out:     r.out,
		logger:  lessonLog,
		metrics: r.metrics,
	}

	start := time.Now()
	env.Printf("=== %s ===\n", l.Title)
	err := r.invoke(ctx, lessonLog, l, env)
	env.Printf("=== End %s ===\n", l.Title)
	if err == nil {
		err = env.Err()
	}
	duration := time.Since(start)

	if r.metrics != nil {
		r.metrics.RecordLesson(l.Name, duration, err)
	}

	if err != nil {
		lessonLog.Error("Lesson failed", zap.Duration("duration", duration), zap.Error(err))
		return err
	}
	lessonLog.Debug("Lesson finished", zap.Duration("duration", duration))
	return nil
}

// invoke turns a panicking lesson into an error so the run can report it
func (r *Runner) invoke(ctx context.Context, log *logger.Logger, l Lesson, env *Env) (err error) {
	defer func() {
		if p := recover(); p != nil {
			log.Error("Panic recovered",
				zap.Any("error", p),
				zap.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("%w: %v", ErrLessonPanicked, p)
		}
	}()

	return l.Run(ctx, env)
}

func (r *Runner) selectLessons(names []string) ([]Lesson, error) {
	if len(names) == 0 {
		return r.lessons, nil
	}

	known := make(map[string]bool, len(r.lessons))
	for _, l := range r.lessons {
		known[l.Name] = true
	}

	wanted := make(map[string]bool, len(names))
	var unknown []string
	for _, name := range names {
		if !known[name] {
			unknown = append(unknown, name)
			continue
		}
		wanted[name] = true
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLesson, strings.Join(unknown, ", "))
	}

	selected := make([]Lesson, 0, len(wanted))
	for _, l := range r.lessons {
		if wanted[l.Name] {
			selected = append(selected, l)
		}
	}
	return selected, nil
}
