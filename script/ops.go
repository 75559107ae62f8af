package script

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"hop.computer/linkedlist/pkg/list"
)

type argMode int

const (
	argNone argMode = iota
	argOptional
	argRequired
)

func (m argMode) check(present bool) error {
	switch {
	case m == argNone && present:
		return ErrExcessArgument
	case m == argRequired && !present:
		return ErrMissingArgument
	}
	return nil
}

type opSpec struct {
	index, value argMode
	usage        string
	run          func(r *Runner, s Step) (string, error)
}

var ops map[string]opSpec

func init() {
	ops = map[string]opSpec{
		"create": {
			index: argOptional,
			usage: "create [capacity]: replace the list with a new empty one",
			run:   (*Runner).create,
		},
		"destroy": {
			usage: "destroy: free every node of the list",
			run:   (*Runner).destroy,
		},
		"size": {
			usage: "size: count the elements",
			run:   (*Runner).size,
		},
		"append": {
			value: argRequired,
			usage: "append <value>: add value at the tail",
			run:   (*Runner).append,
		},
		"insert": {
			index: argRequired,
			value: argRequired,
			usage: "insert <index> <value>: make value the element at index",
			run:   (*Runner).insert,
		},
		"remove": {
			index: argRequired,
			usage: "remove <index>: delete the element at index",
			run:   (*Runner).remove,
		},
		"get": {
			index: argRequired,
			usage: "get <index>: show the element at index",
			run:   (*Runner).get,
		},
		"reset": {
			usage: "reset: rewind the cursor before the head",
			run:   (*Runner).reset,
		},
		"next": {
			usage: "next: advance the cursor and show its element",
			run:   (*Runner).next,
		},
		"atend": {
			usage: "atend: report whether next would find nothing",
			run:   (*Runner).atEnd,
		},
		"print": {
			usage: "print: draw the chain",
			run:   (*Runner).print,
		},
		"stats": {
			usage: "stats: show node allocation counters",
			run:   (*Runner).stats,
		},
		"help": {
			usage: "help: list commands",
			run:   (*Runner).help,
		},
	}
}

// Ops returns the names of all ops, sorted.
func Ops() []string {
	names := maps.Keys(ops)
	slices.Sort(names)
	return names
}

// Usage returns the one-line description of op, or the empty string if there
// is no such op.
func Usage(op string) string {
	return ops[op].usage
}

// outcome renders the result of a list operation. Errors from the list are
// results to show, not failures of the script.
func outcome(err error) string {
	if err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}

func (r *Runner) create(s Step) (string, error) {
	capacity := r.capacity
	if s.Index != nil {
		capacity = *s.Index
	}
	if r.list.Len() >= 0 {
		// The old list is unreachable once replaced, so free its nodes now.
		if err := r.list.Destroy(); err != nil {
			return "", err
		}
	}
	r.list = r.newList(capacity)
	return "ok", nil
}

func (r *Runner) destroy(Step) (string, error) {
	return outcome(r.list.Destroy()), nil
}

func (r *Runner) size(Step) (string, error) {
	n, err := r.list.Size()
	if err != nil {
		return outcome(err), nil
	}
	return strconv.Itoa(n), nil
}

func (r *Runner) append(s Step) (string, error) {
	v := *s.Value
	return outcome(r.list.Append(&v)), nil
}

func (r *Runner) insert(s Step) (string, error) {
	v := *s.Value
	return outcome(r.list.InsertAt(*s.Index, &v)), nil
}

func (r *Runner) remove(s Step) (string, error) {
	return outcome(r.list.RemoveAt(*s.Index)), nil
}

func (r *Runner) get(s Step) (string, error) {
	v, err := r.list.Get(*s.Index)
	if err != nil {
		return outcome(err), nil
	}
	return *v, nil
}

func (r *Runner) reset(Step) (string, error) {
	return outcome(r.list.Reset()), nil
}

func (r *Runner) next(Step) (string, error) {
	v, err := r.list.GetNext()
	if errors.Is(err, list.ErrExhausted) {
		return "exhausted", nil
	}
	if err != nil {
		return outcome(err), nil
	}
	return *v, nil
}

func (r *Runner) atEnd(Step) (string, error) {
	end, err := r.list.AtEnd()
	if err != nil {
		return outcome(err), nil
	}
	return strconv.FormatBool(end), nil
}

func (r *Runner) print(Step) (string, error) {
	vs, err := r.list.Values()
	if err != nil {
		return outcome(err), nil
	}
	values := make([]string, len(vs))
	for i, v := range vs {
		values[i] = *v
	}
	return Render(values, r.width), nil
}

func (r *Runner) stats(Step) (string, error) {
	st := r.list.Stats()
	return fmt.Sprintf("allocs=%d frees=%d live=%d released=%d", st.Allocs, st.Frees, st.Live, r.released), nil
}

func (r *Runner) help(Step) (string, error) {
	var out string
	for i, name := range Ops() {
		if i > 0 {
			out += "\n"
		}
		out += ops[name].usage
	}
	return out, nil
}
