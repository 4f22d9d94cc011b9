package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// DayKind tags the variant held by a DayValue.
type DayKind uint8

const (
	DayUnset DayKind = iota
	DayDone
	DayCount
)

// DayValue is one cell of a habit history: either nothing was
// recorded, a yes/no check, or a count. The zero value is Unset.
//
// On the wire the variants stay compatible with older documents:
// Done marshals as a bare bool and Count as a bare number.
type DayValue struct {
	kind  DayKind
	done  bool
	count int
}

// Unset returns the no-record value.
func Unset() DayValue { return DayValue{} }

// Done returns a binary check value.
func Done(v bool) DayValue { return DayValue{kind: DayDone, done: v} }

// Count returns a counted value. Negative counts clamp to zero.
func Count(n int) DayValue {
	if n < 0 {
		n = 0
	}
	return DayValue{kind: DayCount, count: n}
}

func (v DayValue) Kind() DayKind { return v.kind }

// IsComplete reports whether the day counts as done: a true check or
// a positive count.
func (v DayValue) IsComplete() bool {
	switch v.kind {
	case DayDone:
		return v.done
	case DayCount:
		return v.count > 0
	}
	return false
}

// Recorded reports whether anything was recorded for the day at all.
// A false check or a zero count is recorded but not complete.
func (v DayValue) Recorded() bool { return v.kind != DayUnset }

// CountValue returns the count, reading non-count variants as zero.
func (v DayValue) CountValue() int {
	if v.kind == DayCount {
		return v.count
	}
	return 0
}

func (v DayValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case DayDone:
		return json.Marshal(v.done)
	case DayCount:
		return []byte(strconv.Itoa(v.count)), nil
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts a bool or a non-negative number. Anything
// else, malformed cells included, decodes as Unset rather than
// failing the whole document.
func (v *DayValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = Done(b)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil && n >= 0 {
		*v = DayValue{kind: DayCount, count: int(n)}
		return nil
	}
	*v = Unset()
	return nil
}

// History maps ISO dates (YYYY-MM-DD) to day values. Absent keys read
// as Unset; keys are added but never removed.
type History map[string]DayValue

// Clone returns a copy of the history. A nil history clones to nil.
func (h History) Clone() History {
	if h == nil {
		return nil
	}
	out := make(History, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}
