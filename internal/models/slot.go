package models

// TimeSlot is one of the four fixed bookable windows in a service day.
// The catalog is configuration, not user data; slot IDs act as foreign
// keys from templates, overrides and derived booking lookups.
type TimeSlot struct {
	ID        string `json:"id"`
	ClockTime string `json:"clock_time"`
	Label     string `json:"label"`
}
