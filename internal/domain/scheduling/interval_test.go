package scheduling

import (
	"testing"
	"time"
)

func at(h, m int) time.Time {
	return time.Date(2026, 3, 10, h, m, 0, 0, time.UTC)
}

func TestIntervalOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "identical",
			a:    Interval{at(10, 0), at(10, 30)},
			b:    Interval{at(10, 0), at(10, 30)},
			want: true,
		},
		{
			name: "partial overlap",
			a:    Interval{at(10, 0), at(10, 30)},
			b:    Interval{at(10, 15), at(10, 45)},
			want: true,
		},
		{
			name: "contained",
			a:    Interval{at(10, 0), at(11, 0)},
			b:    Interval{at(10, 15), at(10, 30)},
			want: true,
		},
		{
			name: "touching boundaries do not conflict",
			a:    Interval{at(10, 0), at(10, 30)},
			b:    Interval{at(10, 30), at(11, 0)},
			want: false,
		},
		{
			name: "disjoint",
			a:    Interval{at(9, 0), at(9, 30)},
			b:    Interval{at(11, 0), at(11, 30)},
			want: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Overlaps(c.b); got != c.want {
				t.Errorf("a.Overlaps(b) = %v, want %v", got, c.want)
			}
			// overlap is symmetric
			if got := c.b.Overlaps(c.a); got != c.want {
				t.Errorf("b.Overlaps(a) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestIntervalContains(t *testing.T) {
	iv := Interval{at(10, 0), at(10, 30)}

	if !iv.Contains(at(10, 0)) {
		t.Error("start should be contained (half-open)")
	}
	if !iv.Contains(at(10, 15)) {
		t.Error("interior point should be contained")
	}
	if iv.Contains(at(10, 30)) {
		t.Error("end should not be contained (half-open)")
	}
}
