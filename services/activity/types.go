package activity

import (
	"errors"
	"slices"
	"time"
)

var (
	ErrNotFound = errors.New("activity not found")
	// ErrFull is returned when joining an activity without open slots.
	ErrFull      = errors.New("activity is full")
	ErrCancelled = errors.New("activity is cancelled")
	// ErrOrganizerLeave is returned when the organizer tries to leave their
	// own activity. Organizers delete it instead.
	ErrOrganizerLeave = errors.New("organizer cannot leave the activity")
)

type Status string

const (
	StatusOpen      Status = "open"
	StatusFull      Status = "full"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusFull, StatusCancelled:
		return true
	}
	return false
}

// Interval is when an activity takes place.
type Interval struct {
	Start           time.Time `json:"start" firestore:"start"`
	DurationMinutes int       `json:"durationMinutes" firestore:"durationMinutes"`
}

func (i Interval) Duration() time.Duration {
	return time.Duration(i.DurationMinutes) * time.Minute
}

func (i Interval) End() time.Time {
	return i.Start.Add(i.Duration())
}

type Message struct {
	AuthorID string    `json:"authorId" firestore:"authorId"`
	Text     string    `json:"text" firestore:"text"`
	SentAt   time.Time `json:"sentAt" firestore:"sentAt"`
}

type Activity struct {
	ID                 string    `json:"id" firestore:"id"`
	Title              string    `json:"title" firestore:"title"`
	OrganizerID        string    `json:"organizerId" firestore:"organizerId"`
	InfrastructureID   string    `json:"infrastructureId" firestore:"infrastructureId"`
	Sport              string    `json:"sport" firestore:"sport"`
	Interval           Interval  `json:"interval" firestore:"interval"`
	SoughtParticipants int       `json:"soughtParticipants" firestore:"soughtParticipants"`
	Participants       []string  `json:"participants" firestore:"participants"`
	Description        string    `json:"description" firestore:"description"`
	Status             Status    `json:"status" firestore:"status"`
	OpenSlots          int       `json:"openSlots" firestore:"openSlots"`
	InvitationsOpen    bool      `json:"invitationsOpen" firestore:"invitationsOpen"`
	Messages           []Message `json:"messages" firestore:"messages"`
	CreatedAt          time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Clone returns a deep copy so callers can't alias the slices of a cached record.
func (a Activity) Clone() Activity {
	c := a
	if a.Participants != nil {
		c.Participants = append([]string(nil), a.Participants...)
	}
	if a.Messages != nil {
		c.Messages = append([]Message(nil), a.Messages...)
	}
	return c
}

// HasParticipant reports whether userID takes part in the activity.
func (a Activity) HasParticipant(userID string) bool {
	return slices.Contains(a.Participants, userID)
}

// WithParticipant returns a copy of a with userID added and its status and
// open slots recomputed. changed is false when userID already takes part.
func (a Activity) WithParticipant(userID string) (next Activity, changed bool, err error) {
	next = a.Clone()
	if a.HasParticipant(userID) {
		return next, false, nil
	}
	if a.Status == StatusCancelled {
		return next, false, ErrCancelled
	}
	if _, slots := ComputeStatus(a.Status, a.SoughtParticipants, len(a.Participants)); slots == 0 {
		return next, false, ErrFull
	}
	next.Participants = append(next.Participants, userID)
	next.Status, next.OpenSlots = ComputeStatus(a.Status, a.SoughtParticipants, len(next.Participants))
	return next, true, nil
}

// WithoutParticipant returns a copy of a with userID removed and its status
// and open slots recomputed. changed is false when userID did not take part.
func (a Activity) WithoutParticipant(userID string) (next Activity, changed bool, err error) {
	next = a.Clone()
	if userID == a.OrganizerID {
		return next, false, ErrOrganizerLeave
	}
	if !a.HasParticipant(userID) {
		return next, false, nil
	}
	next.Participants = slices.DeleteFunc(next.Participants, func(id string) bool { return id == userID })
	next.Status, next.OpenSlots = ComputeStatus(a.Status, a.SoughtParticipants, len(next.Participants))
	return next, true, nil
}

// statusUpdate is the partial write applied by RefreshStatusAndSlots.
type statusUpdate struct {
	Status    Status `structs:"status"`
	OpenSlots int    `structs:"openSlots"`
	UpdatedAt any    `structs:"updatedAt"`
}

// ComputeStatus returns the open slots and resulting status for the given
// participant counts. Cancelled activities stay cancelled.
func ComputeStatus(current Status, sought, participants int) (Status, int) {
	slots := max(sought-participants, 0)
	if current == StatusCancelled {
		return StatusCancelled, slots
	}
	if slots == 0 {
		return StatusFull, slots
	}
	return StatusOpen, slots
}
