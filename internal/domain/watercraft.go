package domain

import "fmt"

// WatercraftKind closed set of watercraft types offered for excursions
type WatercraftKind string

const (
	KindPontoon   WatercraftKind = "Pontoon"
	KindSpeedBoat WatercraftKind = "SpeedBoat"
	KindJetSki    WatercraftKind = "JetSki"
)

// ParseWatercraftKind validates a kind name
func ParseWatercraftKind(s string) (WatercraftKind, error) {
	switch k := WatercraftKind(s); k {
	case KindPontoon, KindSpeedBoat, KindJetSki:
		return k, nil
	default:
		return "", fmt.Errorf("unknown watercraft kind %q", s)
	}
}

// Watercraft is a bookable watercraft type. Quantity identical units exist,
// each with Capacity seats.
type Watercraft struct {
	ID       int64
	Kind     WatercraftKind
	Capacity int
	Quantity int
}

// Units returns the number of units, treating an unset quantity as one
func (w *Watercraft) Units() int {
	if w.Quantity <= 0 {
		return DefaultUnitQuantity
	}
	return w.Quantity
}

// Seats returns the per-unit seat count
func (w *Watercraft) Seats() int {
	if w.Capacity < 0 {
		return 0
	}
	return w.Capacity
}

// HasSeat reports whether (unit, seat) addresses an existing 0-based seat
func (w *Watercraft) HasSeat(unit, seat int) bool {
	return unit >= 0 && unit < w.Units() && seat >= 0 && seat < w.Seats()
}
