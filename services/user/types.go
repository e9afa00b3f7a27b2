package user

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

type User struct {
	ID                 string         `json:"id" firestore:"id"`
	DisplayName        string         `json:"displayName" firestore:"displayName"`
	FavoriteActivities []string       `json:"favoriteActivities" firestore:"favoriteActivities"`
	Availabilities     Availabilities `json:"availabilities" firestore:"availabilities"`
	CreatedAt          time.Time      `json:"createdAt" firestore:"createdAt"`
}

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists the days of the week starting on Monday.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d Weekday) Valid() bool {
	for _, w := range Weekdays {
		if d == w {
			return true
		}
	}
	return false
}

// clockLayout is the wall clock format of slot bounds.
const clockLayout = "15:04"

// minSlotLength is the shortest slot a user can declare.
const minSlotLength = time.Minute

// Slot is a time range within a day, both ends as "HH:MM".
type Slot struct {
	Start string `json:"start" firestore:"start"`
	End   string `json:"end" firestore:"end"`
}

// Availabilities maps a weekday to the slots the user is free on that day.
// Days without slots are left out.
type Availabilities map[Weekday][]Slot

var ErrInvalidAvailabilities = errors.New("invalid availabilities")

// Validate checks that at least one slot is declared, every day is a known
// weekday, every slot lasts at least a minute and slots of a day do not
// overlap. It returns a copy with empty days dropped and slots sorted.
func (av Availabilities) Validate() (Availabilities, error) {
	out := make(Availabilities, len(av))
	for day, slots := range av {
		if !day.Valid() {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidAvailabilities, day)
		}
		if len(slots) == 0 {
			continue
		}
		type bounds struct {
			slot       Slot
			start, end time.Time
		}
		parsed := make([]bounds, 0, len(slots))
		for _, slot := range slots {
			start, err := time.Parse(clockLayout, slot.Start)
			if err != nil {
				return nil, fmt.Errorf("%w: %s start %q", ErrInvalidAvailabilities, day, slot.Start)
			}
			end, err := time.Parse(clockLayout, slot.End)
			if err != nil {
				return nil, fmt.Errorf("%w: %s end %q", ErrInvalidAvailabilities, day, slot.End)
			}
			if end.Before(start.Add(minSlotLength)) {
				return nil, fmt.Errorf("%w: %s slot %s-%s ends before it starts", ErrInvalidAvailabilities, day, slot.Start, slot.End)
			}
			parsed = append(parsed, bounds{slot: slot, start: start, end: end})
		}
		sort.Slice(parsed, func(i, j int) bool { return parsed[i].start.Before(parsed[j].start) })
		for i := 1; i < len(parsed); i++ {
			if parsed[i].start.Before(parsed[i-1].end) {
				return nil, fmt.Errorf("%w: %s slots %s-%s and %s-%s overlap", ErrInvalidAvailabilities, day,
					parsed[i-1].slot.Start, parsed[i-1].slot.End, parsed[i].slot.Start, parsed[i].slot.End)
			}
		}
		sorted := make([]Slot, len(parsed))
		for i, b := range parsed {
			sorted[i] = b.slot
		}
		out[day] = sorted
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: at least one slot is required", ErrInvalidAvailabilities)
	}
	return out, nil
}
