// Package summary computes the dashboard's summary tiles from the
// application collection.
package summary

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/YKarmar/AdmissionsDashboard/internal/logging"
	"github.com/YKarmar/AdmissionsDashboard/internal/types"
)

var ErrInvalidAmount = errors.New("invalid scholarship amount")

// Tiles holds the three summary values shown above the table.
type Tiles struct {
	Accepted         int      `json:"accepted"`
	Pending          int      `json:"pending"`
	AnnualTotal      float64  `json:"annual_total"`
	ScholarshipTotal string   `json:"scholarship_total"`
	Unparsed         []string `json:"unparsed,omitempty"`
}

// Provider supplies the tiles for a collection.
type Provider interface {
	Tiles(apps []types.Application) Tiles
}

// Derived computes tiles by folding over the collection.
type Derived struct{}

func (Derived) Tiles(apps []types.Application) Tiles {
	return Derive(apps)
}

// Authored returns fixed tile values. Values that disagree with the
// collection are logged as warnings on every call.
type Authored struct {
	Values Tiles
	Logger *logging.Logger
}

func (a Authored) Tiles(apps []types.Application) Tiles {
	if a.Logger != nil {
		for _, d := range Drift(a.Values, Derive(apps)) {
			a.Logger.Warn("authored summary tile disagrees with applications",
				"tile", d.Tile, "authored", d.Authored, "derived", d.Derived)
		}
	}
	return a.Values
}

// Derive counts accepted and pending applications and totals scholarships
// per year. Pending means status applied: no decision has been made.
func Derive(apps []types.Application) Tiles {
	var t Tiles
	for _, app := range apps {
		switch app.Status {
		case types.StatusAccepted:
			t.Accepted++
		case types.StatusApplied:
			t.Pending++
		case types.StatusRejected:
		}
		for _, s := range app.Scholarships {
			v, err := ParseAmount(s.Amount)
			if err != nil {
				t.Unparsed = append(t.Unparsed, s.Amount)
				continue
			}
			t.AnnualTotal += v
		}
	}
	t.ScholarshipTotal = FormatAmount(t.AnnualTotal)
	return t
}

// Mismatch describes one tile whose authored value differs from the derived one.
type Mismatch struct {
	Tile     string
	Authored string
	Derived  string
}

// Drift lists the tiles where authored and derived values differ.
func Drift(authored, derived Tiles) []Mismatch {
	var out []Mismatch
	if authored.Accepted != derived.Accepted {
		out = append(out, Mismatch{"accepted", strconv.Itoa(authored.Accepted), strconv.Itoa(derived.Accepted)})
	}
	if authored.Pending != derived.Pending {
		out = append(out, Mismatch{"pending", strconv.Itoa(authored.Pending), strconv.Itoa(derived.Pending)})
	}
	if authored.ScholarshipTotal != derived.ScholarshipTotal {
		out = append(out, Mismatch{"scholarship_total", authored.ScholarshipTotal, derived.ScholarshipTotal})
	}
	return out
}

var periodsPerYear = map[string]float64{
	"":         1,
	"year":     1,
	"yr":       1,
	"annum":    1,
	"semester": 2,
	"month":    12,
}

// ParseAmount converts a display amount such as "$17,500/year" into a
// yearly dollar value.
func ParseAmount(s string) (float64, error) {
	raw := strings.TrimSpace(s)
	value, period, _ := strings.Cut(raw, "/")

	mult, ok := periodsPerYear[strings.ToLower(strings.TrimSpace(period))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown period in %q", ErrInvalidAmount, s)
	}

	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, "$")
	value = strings.ReplaceAll(value, ",", "")
	if !isDecimal(value) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return v * mult, nil
}

// isDecimal reports whether s is plain digits with at most one decimal
// point. ParseFloat alone would also take signs, exponents, NaN and Inf.
func isDecimal(s string) bool {
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

// FormatAmount renders a dollar value compactly: $850, $17.5K, $1.25M.
func FormatAmount(v float64) string {
	switch {
	case v >= 1_000_000:
		return "$" + trimFloat(v/1_000_000) + "M"
	case v >= 1_000:
		return "$" + trimFloat(v/1_000) + "K"
	default:
		return "$" + strconv.FormatFloat(v, 'f', 0, 64)
	}
}

func trimFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
