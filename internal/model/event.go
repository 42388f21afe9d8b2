package model

import "fmt"

// Event is an annotated geopolitical or policy event. The feed carries no
// unique key: several events may share a date, and titles can collide.
type Event struct {
	Date        string `json:"date"`
	EventType   string `json:"event_type"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source,omitempty"`
}

// Key synthesizes a stable composite key for indexed display use. The
// ordinal is the event's position in its collection, which disambiguates
// title collisions on the same date.
func (e Event) Key(ordinal int) string {
	return fmt.Sprintf("%s/%s/%d", e.Date, e.Title, ordinal)
}

// ChangePoint marks a date where the statistical behavior of the price
// series shifts, with the magnitude of the level change around it.
type ChangePoint struct {
	Date                   string  `json:"date"`
	MeanBefore             float64 `json:"mean_before"`
	MeanAfter              float64 `json:"mean_after"`
	ChangeMagnitudePercent float64 `json:"change_magnitude_percent"`
	AssociatedEvents       string  `json:"associated_events"`
}
