package domain

// Slot grid constants
const (
	SlotMinutes = 15
)

// Business validation constants
const (
	MaxCustomerNameLength = 100
	DefaultUnitQuantity   = 1
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
