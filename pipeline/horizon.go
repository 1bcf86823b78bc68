package pipeline

import (
	"strconv"
	"strings"
	"time"
)

// Horizon is a parsed forward-looking span such as "30d", "6m" or "1y".
type Horizon struct {
	Quantity int
	Unit     byte // 'd', 'm' or 'y'
}

// ParseHorizon parses "<int><unit>" with unit one of d, m, y.
func ParseHorizon(s string) (Horizon, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) < 2 {
		return Horizon{}, &ConfigurationError{Field: "horizon", Reason: "expected <int><d|m|y>, got " + strconv.Quote(s)}
	}

	unit := s[len(s)-1]
	if unit != 'd' && unit != 'm' && unit != 'y' {
		return Horizon{}, &ConfigurationError{Field: "horizon", Reason: "unknown unit " + strconv.Quote(string(unit))}
	}

	qty, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || qty <= 0 {
		return Horizon{}, &ConfigurationError{Field: "horizon", Reason: "quantity must be a positive integer"}
	}

	return Horizon{Quantity: qty, Unit: unit}, nil
}

// SubtractFrom returns t moved back by the horizon span.
func (h Horizon) SubtractFrom(t time.Time) time.Time {
	switch h.Unit {
	case 'y':
		return t.AddDate(-h.Quantity, 0, 0)
	case 'm':
		return t.AddDate(0, -h.Quantity, 0)
	default:
		return t.AddDate(0, 0, -h.Quantity)
	}
}

// Days returns the horizon length in whole days, used to size the future
// scenario window. Months count as 30 days and years as 365.
func (h Horizon) Days() int {
	switch h.Unit {
	case 'y':
		return h.Quantity * 365
	case 'm':
		return h.Quantity * 30
	default:
		return h.Quantity
	}
}

func (h Horizon) String() string {
	return strconv.Itoa(h.Quantity) + string(h.Unit)
}
