package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

var sportNouns = map[string][]string{
	"basketball": {"Hoops", "Pickup Run", "Half Court", "21"},
	"soccer":     {"Kickabout", "Five-a-side", "Pickup Match", "Small-sided Game"},
	"tennis":     {"Rally", "Doubles", "Hitting Session", "Sets"},
	"volleyball": {"Bump Set Spike", "Pickup Volley", "Beach Sixes"},
	"hockey":     {"Shinny", "Pond Hockey", "Pickup Skate"},
	"pickleball": {"Dink Session", "Open Play", "Doubles Ladder"},
}

var genericNouns = []string{"Pickup Game", "Meetup", "Open Session", "Drop-in"}

var moods = []string{
	"Friendly", "Casual", "Competitive", "Chill", "Early Bird",
	"Sunset", "Weekend", "After Work", "Lunchtime", "All Levels",
}

// ActivityTitle builds a title for an activity created without one, such as
// "Sunset Hoops" for basketball. Unknown sports get a generic noun.
func ActivityTitle(sport string) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	nouns, ok := sportNouns[strings.ToLower(strings.TrimSpace(sport))]
	if !ok {
		nouns = genericNouns
	}
	mood := moods[r.Intn(len(moods))]
	noun := nouns[r.Intn(len(nouns))]

	// 30% chance to name the sport when the noun does not already imply it
	if !ok && sport != "" && r.Float64() < 0.3 {
		return fmt.Sprintf("%s %s %s", mood, capitalize(sport), noun)
	}
	return fmt.Sprintf("%s %s", mood, noun)
}

func capitalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
