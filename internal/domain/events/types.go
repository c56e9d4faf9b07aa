package events

import "time"

// Status is a user's attendance intention for an event.
type Status string

const (
	StatusYes   Status = "yes"
	StatusMaybe Status = "maybe"
	StatusNo    Status = "no"
)

// ParseStatus reports whether value is one of the three RSVP states.
func ParseStatus(value string) (Status, bool) {
	switch Status(value) {
	case StatusYes, StatusMaybe, StatusNo:
		return Status(value), true
	default:
		return "", false
	}
}

// Record is the stored shape of an event, without derived RSVP aggregates.
type Record struct {
	ID          string
	Title       string
	Description string
	StartsAt    time.Time
	Location    string
	Category    string
	MicroEvent  bool
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RSVP is one user's vote on one event. At most one row exists per
// (event, user) pair; a new vote overwrites the previous one.
type RSVP struct {
	EventID string
	UserID  string
	Status  Status
}

type Counts struct {
	Yes   int `json:"yes"`
	Maybe int `json:"maybe"`
	No    int `json:"no"`
}

type Members struct {
	Yes   []string `json:"yes"`
	Maybe []string `json:"maybe"`
	No    []string `json:"no"`
}

// Item is the normalized event shape returned by every operation regardless
// of backend: the stored record plus aggregates derived from RSVP rows and
// the requesting user's own vote.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"startsAt"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	MicroEvent  bool      `json:"microEvent"`
	CreatedBy   string    `json:"createdBy"`
	RSVPCounts  Counts    `json:"rsvpCounts"`
	RSVPMembers Members   `json:"rsvpMembers"`
	UserRSVP    *Status   `json:"userRsvp"`
}

type CreateInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	StartsAt    string `json:"startsAt" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Category    string `json:"category"`
	MicroEvent  bool   `json:"microEvent"`
}

// UpdateInput carries a partial event; nil fields keep their stored values.
type UpdateInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartsAt    *string `json:"startsAt"`
	Location    *string `json:"location"`
	Category    *string `json:"category"`
	MicroEvent  *bool   `json:"microEvent"`
}

type ListResult struct {
	Source string `json:"source"`
	Events []Item `json:"events"`
}

type EventResult struct {
	Source string `json:"source"`
	Event  *Item  `json:"event"`
}

type DeleteResult struct {
	Source  string `json:"source"`
	Deleted bool   `json:"deleted"`
}
