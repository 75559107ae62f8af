// Package script drives a list from a sequence of steps, read either from a
// YAML document or one command per line.
package script

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrUnknownOp is returned for a step whose op is not in the op table.
var ErrUnknownOp = errors.New("unknown op")

// ErrMissingArgument is returned when a step lacks an index or value its op
// requires.
var ErrMissingArgument = errors.New("missing argument")

// ErrExcessArgument is returned when a step carries an argument its op does
// not take.
var ErrExcessArgument = errors.New("unexpected argument")

// ErrBadIndex is returned when an index is not an integer.
var ErrBadIndex = errors.New("index is not an integer")

// Step is a single operation on the list.
type Step struct {
	Op    string  `yaml:"op"`
	Index *int    `yaml:"index,omitempty"`
	Value *string `yaml:"value,omitempty"`

	// Line is the position of the step in its source, for error messages.
	Line int `yaml:"-"`
}

func (s Step) String() string {
	var b strings.Builder
	b.WriteString(s.Op)
	if s.Index != nil {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(*s.Index))
	}
	if s.Value != nil {
		b.WriteByte(' ')
		b.WriteString(*s.Value)
	}
	return b.String()
}

// check validates the step against the argument shape of its op.
func (s Step) check() error {
	spec, ok := ops[s.Op]
	if !ok {
		return errors.Wrapf(ErrUnknownOp, "line %d: %q", s.Line, s.Op)
	}
	if err := spec.index.check(s.Index != nil); err != nil {
		return errors.Wrapf(err, "line %d: %s: index", s.Line, s.Op)
	}
	if err := spec.value.check(s.Value != nil); err != nil {
		return errors.Wrapf(err, "line %d: %s: value", s.Line, s.Op)
	}
	return nil
}

// ParseYAML reads a YAML sequence of steps, each a mapping with an op and the
// index and value the op takes, e.g. {op: insert, index: 1, value: "15"}. An
// empty document yields no steps.
func ParseYAML(r io.Reader) ([]Step, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "parsing script")
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, errors.Errorf("line %d: script must be a sequence of steps", root.Line)
	}

	steps := make([]Step, 0, len(root.Content))
	for _, n := range root.Content {
		var s Step
		if err := n.Decode(&s); err != nil {
			return nil, errors.Wrapf(err, "line %d", n.Line)
		}
		s.Op = strings.ToLower(s.Op)
		s.Line = n.Line
		if err := s.check(); err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// ParseLine reads a step written as "op [index] [value]". Everything after the
// arguments the op takes is joined into the value, so "append hello world"
// appends "hello world". Blank lines and lines starting with '#' yield
// ok == false.
func ParseLine(line string, lineno int) (s Step, ok bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return Step{}, false, nil
	}
	s = Step{
		Op:   strings.ToLower(fields[0]),
		Line: lineno,
	}
	spec, known := ops[s.Op]
	if !known {
		return Step{}, false, errors.Wrapf(ErrUnknownOp, "line %d: %q", lineno, fields[0])
	}

	args := fields[1:]
	if spec.index != argNone && len(args) > 0 {
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return Step{}, false, errors.Wrapf(ErrBadIndex, "line %d: %q", lineno, args[0])
		}
		s.Index = &i
		args = args[1:]
	}
	if spec.value != argNone && len(args) > 0 {
		v := strings.Join(args, " ")
		s.Value = &v
		args = nil
	}
	if len(args) > 0 {
		return Step{}, false, errors.Wrapf(ErrExcessArgument, "line %d: %s: %q", lineno, s.Op, strings.Join(args, " "))
	}
	if err := s.check(); err != nil {
		return Step{}, false, err
	}
	return s, true, nil
}
