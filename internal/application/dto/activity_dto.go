package dto

import "time"

// ActivityResponse entrada del registro de actividad.
type ActivityResponse struct {
	ID       int       `json:"id"`
	Date     time.Time `json:"date"`
	Activity string    `json:"activity"`
	User     string    `json:"user"`
	Details  string    `json:"details"`
}
