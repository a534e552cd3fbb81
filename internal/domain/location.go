package domain

import "time"

// Represents a named endpoint of the commute (e.g. "Home", "Work").
// The label is the stable identifier; the address is free text and the
// coordinates stay unset until the first successful resolution.
type Location struct {
	Label     string
	Address   string
	Coord     Coordinates
	CreatedAt time.Time
}
