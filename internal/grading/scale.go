// Package grading turns stored component marks into totals, letter grades
// and the table rows shown in course and student reports.
package grading

import "sort"

// GradePoint is a letter grade with its grade point.
type GradePoint struct {
	Grade string  `json:"grade"`
	Point float64 `json:"point"`
}

// Band awards GradePoint to totals at or above Min.
type Band struct {
	Min float64
	GradePoint
}

// Scale is a set of bands. Totals below every band receive Fail.
type Scale struct {
	bands []Band
	fail  GradePoint
}

// NewScale builds a scale from bands in any order.
func NewScale(fail GradePoint, bands ...Band) Scale {
	sorted := append([]Band(nil), bands...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Min > sorted[j].Min })
	return Scale{bands: sorted, fail: fail}
}

// DefaultScale is the grading scale used unless configured otherwise.
var DefaultScale = NewScale(GradePoint{Grade: "F", Point: 0},
	Band{80, GradePoint{"A", 4.0}},
	Band{75, GradePoint{"B+", 3.5}},
	Band{70, GradePoint{"B", 3.0}},
	Band{65, GradePoint{"C+", 2.5}},
	Band{60, GradePoint{"C", 2.0}},
	Band{55, GradePoint{"D+", 1.5}},
	Band{50, GradePoint{"D", 1.0}},
)

// Grade returns the highest band the total reaches.
func (s Scale) Grade(total float64) GradePoint {
	for _, b := range s.bands {
		if total >= b.Min {
			return b.GradePoint
		}
	}
	return s.fail
}

// Bands returns the bands ordered from highest to lowest.
func (s Scale) Bands() []Band { return append([]Band(nil), s.bands...) }
