package shift

import "time"

// Shift is reference data (Day/Evening/Night); managed out of band, read-only
// through the API.
type Shift struct {
	ShiftID      int8 `gorm:"primaryKey"`
	Name         string
	StartTime    string // "HH:MM", wall-clock, no timezone semantics
	EndTime      string
	ModifiedDate time.Time
}

func (Shift) TableName() string { return "shifts" }

type ShiftResponse struct {
	ShiftID   int8   `json:"shift_id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
