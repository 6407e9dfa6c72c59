// Package score holds the 1-10 evaluation score and the selector used to pick it.
package score

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	Min     = 1
	Max     = 10
	Default = 5
)

// ErrOutOfRange is returned for any value outside the permitted range.
var ErrOutOfRange = errors.New("score out of range")

// Score is an evaluation score in [Min, Max]. It is stored relative to
// Default so that the zero value is a valid score of 5; values outside the
// range cannot be constructed.
type Score struct {
	offset int
}

// New validates v and returns it as a Score.
func New(v int) (Score, error) {
	if v < Min || v > Max {
		return Score{}, fmt.Errorf("%w: %d not in [%d,%d]", ErrOutOfRange, v, Min, Max)
	}
	return Score{offset: v - Default}, nil
}

// MustNew is New for constants known to be valid. It panics otherwise.
func MustNew(v int) Score {
	s, err := New(v)
	if err != nil {
		panic(err)
	}
	return s
}

// Int returns the numeric score.
func (s Score) Int() int {
	return Default + s.offset
}

// Label returns the display bucket for the score.
func (s Score) Label() string {
	return Label(s.Int())
}

func (s Score) String() string {
	return fmt.Sprintf("%d/%d - %s", s.Int(), Max, s.Label())
}

func (s Score) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Int())
}

func (s *Score) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("score must be an integer: %w", err)
	}
	parsed, err := New(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Label maps a score onto its display bucket. Bucketing is for display only
// and never changes a stored value.
func Label(v int) string {
	switch {
	case v <= 3:
		return "Poor"
	case v <= 5:
		return "Fair"
	case v <= 7:
		return "Good"
	case v <= 9:
		return "Excellent"
	default:
		return "Outstanding"
	}
}

// Legend is the scale key printed under a selector.
func Legend() []string {
	return []string{
		"1-3: Poor",
		"4-5: Fair",
		"6-7: Good",
		"8-9: Excellent",
		"10: Outstanding",
	}
}
