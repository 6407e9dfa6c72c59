package score

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive integer interval.
type Range struct {
	Min int
	Max int
}

// DefaultRange is the evaluation scale.
var DefaultRange = Range{Min: Min, Max: Max}

func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Option is one selectable entry, e.g. {7, "7 - Good"}.
type Option struct {
	Value int
	Label string
}

// Selector is a controlled input over a Range. It holds no state of its own:
// the current value belongs to the caller and every selection is reported to
// onChange, which is expected to produce a new Selector with the new value.
type Selector struct {
	value    int
	rng      Range
	onChange func(int)
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithRange overrides the default [1,10] range.
func WithRange(r Range) SelectorOption {
	return func(s *Selector) {
		s.rng = r
	}
}

// NewSelector returns a selector showing value. Passing a value outside the
// range is a caller error and is reported, never clamped.
func NewSelector(value int, onChange func(int), opts ...SelectorOption) (*Selector, error) {
	s := &Selector{
		value:    value,
		rng:      DefaultRange,
		onChange: onChange,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng.Min > s.rng.Max {
		return nil, fmt.Errorf("invalid range [%d,%d]", s.rng.Min, s.rng.Max)
	}
	if !s.rng.Contains(value) {
		return nil, fmt.Errorf("%w: %d not in [%d,%d]", ErrOutOfRange, value, s.rng.Min, s.rng.Max)
	}
	return s, nil
}

func (s *Selector) Value() int {
	return s.value
}

func (s *Selector) Range() Range {
	return s.rng
}

// Options lists every value in the range with its label, lowest first.
func (s *Selector) Options() []Option {
	opts := make([]Option, 0, s.rng.Max-s.rng.Min+1)
	for v := s.rng.Min; v <= s.rng.Max; v++ {
		opts = append(opts, Option{Value: v, Label: fmt.Sprintf("%d - %s", v, Label(v))})
	}
	return opts
}

// Caption renders the current value, e.g. "7/10 - Good".
func (s *Selector) Caption() string {
	return fmt.Sprintf("%d/%d - %s", s.value, s.rng.Max, Label(s.value))
}

// Select reports v to onChange synchronously.
func (s *Selector) Select(v int) error {
	if !s.rng.Contains(v) {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrOutOfRange, v, s.rng.Min, s.rng.Max)
	}
	if s.onChange != nil {
		s.onChange(v)
	}
	return nil
}

// ParseChoice reads a picker entry typed by a user: either "7" or "7 - Good".
func ParseChoice(choice string) (int, error) {
	head, _, _ := strings.Cut(strings.TrimSpace(choice), " ")
	v, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, fmt.Errorf("invalid score %q: %w", choice, err)
	}
	return v, nil
}
