package domain

import "time"

// DealershipInfo is static configuration describing the dealership. It is
// seeded by migration and read-only from the service's perspective.
type DealershipInfo struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkingHour describes operating hours for one day of the week.
type WorkingHour struct {
	ID           string
	DealershipID string
	DayOfWeek    string // MONDAY .. SUNDAY
	OpenTime     string // "HH:MM"
	CloseTime    string // "HH:MM"
	IsOpen       bool
}
