package activity

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStatus(t *testing.T) {
	tests := []struct {
		name         string
		current      Status
		sought       int
		participants int
		wantStatus   Status
		wantSlots    int
	}{
		{"room left", StatusOpen, 10, 4, StatusOpen, 6},
		{"exactly full", StatusOpen, 4, 4, StatusFull, 0},
		{"over booked clamps to zero", StatusOpen, 4, 6, StatusFull, 0},
		{"full reopens", StatusFull, 5, 3, StatusOpen, 2},
		{"cancelled stays cancelled", StatusCancelled, 5, 1, StatusCancelled, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStatus, gotSlots := ComputeStatus(tt.current, tt.sought, tt.participants)
			assert.Equal(t, tt.wantStatus, gotStatus)
			assert.Equal(t, tt.wantSlots, gotSlots)
		})
	}
}

func TestSortByStart(t *testing.T) {
	base := time.Date(2025, time.August, 10, 18, 0, 0, 0, time.UTC)
	activities := []Activity{
		{ID: "c", Interval: Interval{Start: base.Add(2 * time.Hour)}},
		{ID: "b", Interval: Interval{Start: base}},
		{ID: "a", Interval: Interval{Start: base}},
	}
	SortByStart(activities)
	ids := []string{activities[0].ID, activities[1].ID, activities[2].ID}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestSameDay(t *testing.T) {
	montreal := time.FixedZone("EDT", -4*60*60)
	evening := time.Date(2025, time.August, 10, 22, 0, 0, 0, montreal)

	assert.True(t, sameDay(evening, time.Date(2025, time.August, 10, 8, 0, 0, 0, montreal)))
	// 02:00 UTC on the 11th is still the 10th in Montreal.
	assert.True(t, sameDay(evening, time.Date(2025, time.August, 11, 2, 0, 0, 0, time.UTC)))
	assert.False(t, sameDay(evening, time.Date(2025, time.August, 11, 8, 0, 0, 0, montreal)))
}

func TestCloneDoesNotAlias(t *testing.T) {
	original := Activity{ID: "a", Participants: []string{"u1"}}
	clone := original.Clone()
	clone.Participants[0] = "u2"
	assert.Equal(t, "u1", original.Participants[0])
}

func TestIntervalEnd(t *testing.T) {
	start := time.Date(2025, time.August, 10, 18, 0, 0, 0, time.UTC)
	i := Interval{Start: start, DurationMinutes: 90}
	assert.Equal(t, start.Add(90*time.Minute), i.End())
}

func TestWithParticipant(t *testing.T) {
	base := Activity{ID: "a", OrganizerID: "org", SoughtParticipants: 3, Participants: []string{"org"}, Status: StatusOpen, OpenSlots: 2}

	tests := []struct {
		name        string
		activity    Activity
		user        string
		wantErr     error
		wantChanged bool
		wantStatus  Status
		wantSlots   int
	}{
		{"joins with room left", base, "u1", nil, true, StatusOpen, 1},
		{"last slot fills it", Activity{OrganizerID: "org", SoughtParticipants: 2, Participants: []string{"org"}, Status: StatusOpen}, "u1", nil, true, StatusFull, 0},
		{"already in", base, "org", nil, false, StatusOpen, 2},
		{"full", Activity{SoughtParticipants: 1, Participants: []string{"org"}, Status: StatusFull}, "u1", ErrFull, false, StatusFull, 0},
		{"cancelled", Activity{SoughtParticipants: 5, Participants: []string{"org"}, Status: StatusCancelled}, "u1", ErrCancelled, false, StatusCancelled, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, changed, err := tt.activity.WithParticipant(tt.user)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)
			assert.True(t, next.HasParticipant(tt.user))
			assert.Equal(t, tt.wantStatus, next.Status)
			assert.Equal(t, tt.wantSlots, next.OpenSlots)
		})
	}

	// The receiver is left untouched.
	_, _, _ = base.WithParticipant("u9")
	assert.Equal(t, []string{"org"}, base.Participants)
}

func TestWithoutParticipant(t *testing.T) {
	full := Activity{OrganizerID: "org", SoughtParticipants: 2, Participants: []string{"org", "u1"}, Status: StatusFull}

	next, changed, err := full.WithoutParticipant("u1")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"org"}, next.Participants)
	assert.Equal(t, StatusOpen, next.Status)
	assert.Equal(t, 1, next.OpenSlots)
	assert.Equal(t, []string{"org", "u1"}, full.Participants)

	_, changed, err = full.WithoutParticipant("stranger")
	require.NoError(t, err)
	assert.False(t, changed)

	_, _, err = full.WithoutParticipant("org")
	assert.ErrorIs(t, err, ErrOrganizerLeave)

	cancelled := Activity{OrganizerID: "org", SoughtParticipants: 2, Participants: []string{"org", "u1"}, Status: StatusCancelled}
	next, _, err = cancelled.WithoutParticipant("u1")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, next.Status)
	assert.Equal(t, 1, next.OpenSlots)
}

// The tests below need the Firestore emulator.
func emulatorService(t *testing.T) *service {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	ctx := context.Background()
	db, err := firestore.NewClient(ctx, "sportlink-test")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &service{DB: db, now: time.Now}
}

func TestGetByIDsOmitsUnknown(t *testing.T) {
	s := emulatorService(t)
	ctx := context.Background()

	ids := make([]string, 0, 35)
	for i := 0; i < 35; i++ {
		created, err := s.Create(ctx, Activity{
			OrganizerID:        "organizer",
			Sport:              "soccer",
			SoughtParticipants: 10,
			Interval:           Interval{Start: time.Now().Add(24 * time.Hour), DurationMinutes: 60},
		})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	got, err := s.GetByIDs(ctx, append(ids, "does-not-exist"))
	require.NoError(t, err)
	assert.Len(t, got, len(ids))
}

func TestRefreshStatusAndSlots(t *testing.T) {
	s := emulatorService(t)
	ctx := context.Background()

	created, err := s.Create(ctx, Activity{
		OrganizerID:        "organizer",
		Title:              "Hoops",
		SoughtParticipants: 2,
		Interval:           Interval{Start: time.Now().Add(time.Hour)},
	})
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, created.Status)

	_, err = s.DB.Collection(collection).Doc(created.ID).Update(ctx, []firestore.Update{
		{Path: "participants", Value: []string{"u1", "u2"}},
	})
	require.NoError(t, err)

	refreshed, err := s.RefreshStatusAndSlots(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusFull, refreshed.Status)
	assert.Equal(t, 0, refreshed.OpenSlots)

	_, err = s.RefreshStatusAndSlots(ctx, fmt.Sprintf("%s-missing", created.ID))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJoinAndLeave(t *testing.T) {
	s := emulatorService(t)
	ctx := context.Background()

	created, err := s.Create(ctx, Activity{
		OrganizerID:        "organizer",
		Title:              "Pickup",
		SoughtParticipants: 2,
		Participants:       []string{"organizer"},
		Interval:           Interval{Start: time.Now().Add(time.Hour)},
	})
	require.NoError(t, err)

	joined, err := s.Join(ctx, created.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, StatusFull, joined.Status)
	assert.Equal(t, 0, joined.OpenSlots)

	_, err = s.Join(ctx, created.ID, "u2")
	assert.ErrorIs(t, err, ErrFull)

	mine, err := s.ListByParticipant(ctx, "u1")
	require.NoError(t, err)
	require.NotEmpty(t, mine)
	assert.True(t, mine[0].HasParticipant("u1"))

	left, err := s.Leave(ctx, created.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, left.Status)
	assert.Equal(t, 1, left.OpenSlots)

	stored, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"organizer"}, stored.Participants)

	_, err = s.Leave(ctx, created.ID, "organizer")
	assert.ErrorIs(t, err, ErrOrganizerLeave)
	_, err = s.Join(ctx, created.ID+"-missing", "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}
