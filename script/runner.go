package script

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"hop.computer/linkedlist/pkg/list"
)

// Options configures a Runner.
type Options struct {
	Capacity  int // capacity for lists built by the runner
	NodeLimit int // node cap for lists built by the runner, zero for none
	Width     int // wrap printed chains at this many columns, zero for no wrap
	Log       *logrus.Entry
}

// Runner executes steps against a list of strings and writes one result per
// step to its output. A Runner starts with an empty list already created.
type Runner struct {
	out io.Writer

	capacity  int
	nodeLimit int
	width     int

	list       *list.List[string]
	generation int
	released   int
	log        *logrus.Entry
}

// NewRunner returns a Runner writing results to out.
func NewRunner(out io.Writer, opts Options) *Runner {
	r := &Runner{
		out:       out,
		capacity:  opts.Capacity,
		nodeLimit: opts.NodeLimit,
		width:     opts.Width,
		log:       opts.Log,
	}
	if r.log == nil {
		r.log = logrus.WithField("runner", "")
	}
	r.list = r.newList(r.capacity)
	return r
}

func (r *Runner) newList(capacity int) *list.List[string] {
	r.generation++
	log := r.log.WithField("list", r.generation)
	log.WithField("capacity", capacity).Debug("creating list")
	return list.New(capacity,
		list.WithLogger[string](log),
		list.WithNodeLimit[string](r.nodeLimit),
		list.WithRelease(func(v *string) {
			r.released++
			log.WithField("value", *v).Debug("released payload")
		}),
	)
}

// Exec runs a single step and writes its result. It only returns an error
// when the step itself is malformed; failures reported by the list, such as
// an index out of range, are written to the output as the step's result.
func (r *Runner) Exec(s Step) error {
	if err := s.check(); err != nil {
		return err
	}
	r.log.WithField("step", s.String()).Trace("exec")
	res, err := ops[s.Op].run(r, s)
	if err != nil {
		return errors.Wrapf(err, "line %d: %s", s.Line, s.Op)
	}
	_, err = fmt.Fprintln(r.out, res)
	return err
}

// Run executes steps in order, stopping at the first malformed one.
func (r *Runner) Run(steps []Step) error {
	for _, s := range steps {
		if err := r.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Interactive reads line commands from in until EOF. A non-empty prompt is
// written before every line. Malformed lines are reported and skipped.
func (r *Runner) Interactive(in io.Reader, prompt string) error {
	scanner := bufio.NewScanner(in)
	lineno := 0
	for {
		if prompt != "" {
			fmt.Fprint(r.out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		lineno++
		s, ok, err := ParseLine(scanner.Text(), lineno)
		if err == nil && ok {
			err = r.Exec(s)
		}
		if err != nil {
			r.log.WithError(err).Debug("bad command")
			fmt.Fprintln(r.out, "error:", err)
		}
	}
	if prompt != "" {
		fmt.Fprintln(r.out)
	}
	return scanner.Err()
}

// Close destroys the current list, if it is still live.
func (r *Runner) Close() error {
	if r.list.Len() < 0 {
		return nil
	}
	return r.list.Destroy()
}
