// Package model defines the core domain types for the activity signup system.
package model

// Activity represents an extracurricular activity students can sign up for.
// The activity name is the registry key and is not repeated in the record,
// matching the wire shape of GET /activities.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Remaining returns the number of open spots.
func (a *Activity) Remaining() int {
	return a.MaxParticipants - len(a.Participants)
}

// MessageResponse is the JSON envelope for successful mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON envelope for request failures.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
