package pipeline

import (
	"gokz-dump/internal/model"
	"math"
	"time"
)

// CreatedLayout is both the accepted input form of Times.Created and the
// rendered form of Record.CreatedOn
const CreatedLayout = "2006-01-02 15:04:05"

func toUint32(field string, v int64) (uint32, error) {
	if err := checkRange(field, v, math.MaxUint32); err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func toUint16(field string, v int64) (uint16, error) {
	if err := checkRange(field, v, math.MaxUint16); err != nil {
		return 0, err
	}
	return uint16(v), nil
}

func toUint8(field string, v int64) (uint8, error) {
	if err := checkRange(field, v, math.MaxUint8); err != nil {
		return 0, err
	}
	return uint8(v), nil
}

func checkRange(field string, v int64, max uint64) error {
	if v < 0 || uint64(v) > max {
		return &model.RangeError{Field: field, Value: v, Max: max}
	}
	return nil
}

// parseCreated accepts exactly YYYY-MM-DD HH:MM:SS. time.Parse tolerates a
// trailing fractional second and collapses runs of spaces, so the shape is
// checked character by character first.
func parseCreated(s string) (string, error) {
	if !matchesLayout(s) {
		return "", &model.TimestampFormatError{Value: s}
	}
	t, err := time.Parse(CreatedLayout, s)
	if err != nil {
		return "", &model.TimestampFormatError{Value: s, Err: err}
	}
	return t.Format(CreatedLayout), nil
}

// matchesLayout reports whether s has a digit wherever CreatedLayout has one
// and the same separator everywhere else
func matchesLayout(s string) bool {
	if len(s) != len(CreatedLayout) {
		return false
	}
	for i := 0; i < len(CreatedLayout); i++ {
		want, got := CreatedLayout[i], s[i]
		if want >= '0' && want <= '9' {
			if got < '0' || got > '9' {
				return false
			}
		} else if got != want {
			return false
		}
	}
	return true
}
