package sheetq

import (
	"strconv"
	"strings"
)

// RowRange is a 1-based inclusive span of rows.
type RowRange struct {
	Start int
	End   int
}

// ParseRowRange parses "N" or "N-M" into a RowRange. Start must be >= 1 and
// End >= Start.
func ParseRowRange(s string) (RowRange, error) {
	malformed := &ArgumentError{
		Name:   "range",
		Reason: "use N or N-M (e.g. 10 or 10-20), got " + strconv.Quote(s),
	}

	if start, end, ok := strings.Cut(s, "-"); ok {
		a, err := strconv.Atoi(start)
		if err != nil {
			return RowRange{}, malformed
		}
		b, err := strconv.Atoi(end)
		if err != nil {
			return RowRange{}, malformed
		}
		if a < 1 || b < a {
			return RowRange{}, &ArgumentError{
				Name:   "range",
				Reason: "start must be >= 1 and end >= start, got " + s,
			}
		}
		return RowRange{Start: a, End: b}, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return RowRange{}, malformed
	}
	if n < 1 {
		return RowRange{}, &ArgumentError{Name: "range", Reason: "row number must be >= 1, got " + s}
	}
	return RowRange{Start: n, End: n}, nil
}
