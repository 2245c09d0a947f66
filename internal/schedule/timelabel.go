package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var ErrUnknownTimeLabel = errors.New("unknown time label")

// TimeLabels is the fixed enumeration of hourly labels a court is
// provisioned with, in chronological order.
var TimeLabels = []string{
	"6:00 AM", "7:00 AM", "8:00 AM", "9:00 AM", "10:00 AM", "11:00 AM",
	"12:00 PM", "1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
	"6:00 PM", "7:00 PM", "8:00 PM", "9:00 PM", "10:00 PM", "11:00 PM",
}

var labelRank = func() map[string]int {
	m := make(map[string]int, len(TimeLabels))
	for i, l := range TimeLabels {
		m[l] = i
	}
	return m
}()

// Rank returns the chronological position of a time label. Labels outside
// the enumeration sort after all known ones, so malformed rows never panic
// a listing.
func Rank(label string) int {
	if r, ok := labelRank[label]; ok {
		return r
	}
	return len(TimeLabels)
}

// Known reports whether the label belongs to the enumeration.
func Known(label string) bool {
	_, ok := labelRank[label]
	return ok
}

// ParseLabel converts an hourly label into its hour-of-day (0..23).
func ParseLabel(label string) (int, error) {
	t, err := time.Parse("3:04 PM", label)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTimeLabel, label)
	}
	return t.Hour(), nil
}

// SortChronological orders items by the rank of their time label. The sort
// is stable so equal labels keep their store order.
func SortChronological[T any](items []T, label func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return Rank(label(items[i])) < Rank(label(items[j]))
	})
}

// ValidDate reports whether s is a calendar date in "2006-01-02" form.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
