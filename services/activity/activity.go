package activity

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"sportLink/generator"
	"sportLink/utils"

	"cloud.google.com/go/firestore"
	"github.com/fatih/structs"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service is the remote store of activities.
type Service interface {
	// GetByIDs returns the activities whose id is in ids. Unknown ids are
	// silently omitted. The order of the result is not guaranteed.
	GetByIDs(ctx context.Context, ids []string) ([]Activity, error)

	// Get returns a single activity or ErrNotFound.
	Get(ctx context.Context, id string) (*Activity, error)

	// Create stores a new activity and returns it with its id, status and
	// open slots filled in.
	Create(ctx context.Context, activity Activity) (*Activity, error)

	UpdateTitle(ctx context.Context, id string, title string) error

	// RefreshStatusAndSlots recomputes the open slots and status from the
	// stored participant list and returns the updated activity.
	RefreshStatusAndSlots(ctx context.Context, id string) (*Activity, error)

	Delete(ctx context.Context, id string) error

	// Join adds userID to the participants and recomputes the status and
	// open slots in one transaction. Joining twice is a no-op. It fails with
	// ErrFull or ErrCancelled when the activity takes no one new.
	Join(ctx context.Context, id string, userID string) (*Activity, error)

	// Leave removes userID from the participants and recomputes the status
	// and open slots in one transaction. The organizer cannot leave.
	Leave(ctx context.Context, id string, userID string) (*Activity, error)

	// ListByInfrastructure returns upcoming activities held at an
	// infrastructure sorted by start. When day is set only activities
	// starting on that calendar day are returned.
	ListByInfrastructure(ctx context.Context, infraID string, day *time.Time) ([]Activity, error)

	ListByOrganizer(ctx context.Context, organizerID string) ([]Activity, error)

	ListUpcoming(ctx context.Context) ([]Activity, error)

	// ListByParticipant returns the upcoming activities userID joined,
	// sorted by start.
	ListByParticipant(ctx context.Context, userID string) ([]Activity, error)
}

const (
	collection = "activities"
	// Firestore caps the number of values in an "in" filter.
	inLimit = 30
)

type service struct {
	DB  *firestore.Client
	now func() time.Time
}

var _ Service = (*service)(nil)

func NewService(db *firestore.Client) Service {
	return &service{
		DB:  db,
		now: time.Now,
	}
}

func (s *service) GetByIDs(ctx context.Context, ids []string) ([]Activity, error) {
	if len(ids) == 0 {
		return []Activity{}, nil
	}

	var (
		mu      sync.Mutex
		results = make([]Activity, 0, len(ids))
	)
	g, ctx := errgroup.WithContext(ctx)
	for _, batch := range utils.Chunk(ids, inLimit) {
		g.Go(func() error {
			docs, err := s.DB.Collection(collection).
				Where("id", "in", batch).
				Documents(ctx).GetAll()
			if err != nil {
				return fmt.Errorf("failed to fetch activities: %w", err)
			}
			activities, err := utils.GetAllToStructs[Activity](docs)
			if err != nil {
				return err
			}
			mu.Lock()
			results = append(results, activities...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *service) Get(ctx context.Context, id string) (*Activity, error) {
	doc, err := s.DB.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	result := Activity{}
	if err := doc.DataTo(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *service) Create(ctx context.Context, activity Activity) (*Activity, error) {
	if activity.OrganizerID == "" {
		return nil, errors.New("organizer is required")
	}
	if activity.Title == "" {
		activity.Title = generator.ActivityTitle(activity.Sport)
	}
	now := s.now()
	ref := s.DB.Collection(collection).NewDoc()
	activity.ID = ref.ID
	activity.CreatedAt = now
	activity.UpdatedAt = now
	if activity.Participants == nil {
		activity.Participants = []string{}
	}
	if !activity.Status.Valid() {
		activity.Status = StatusOpen
	}
	activity.Status, activity.OpenSlots = ComputeStatus(activity.Status, activity.SoughtParticipants, len(activity.Participants))

	if _, err := ref.Set(ctx, activity); err != nil {
		return nil, err
	}
	log.Info().Str("activityId", activity.ID).Str("organizerId", activity.OrganizerID).Msg("Activity saved")
	return &activity, nil
}

func (s *service) UpdateTitle(ctx context.Context, id string, title string) error {
	_, err := s.DB.Collection(collection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "title", Value: title},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update title: %w", err)
	}
	return nil
}

func (s *service) RefreshStatusAndSlots(ctx context.Context, id string) (*Activity, error) {
	ref := s.DB.Collection(collection).Doc(id)
	var result Activity
	err := s.DB.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}
		if err := doc.DataTo(&result); err != nil {
			return err
		}
		result.Status, result.OpenSlots = ComputeStatus(result.Status, result.SoughtParticipants, len(result.Participants))
		update := statusUpdate{
			Status:    result.Status,
			OpenSlots: result.OpenSlots,
			UpdatedAt: firestore.ServerTimestamp,
		}
		return tx.Set(ref, structs.Map(update), firestore.MergeAll)
	})
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to refresh status: %w", err)
	}
	result.UpdatedAt = s.now()
	return &result, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	_, err := s.DB.Collection(collection).Doc(id).Delete(ctx)
	return err
}

func (s *service) Join(ctx context.Context, id string, userID string) (*Activity, error) {
	return s.changeParticipants(ctx, id, firestore.ArrayUnion(userID), func(a Activity) (Activity, bool, error) {
		return a.WithParticipant(userID)
	})
}

func (s *service) Leave(ctx context.Context, id string, userID string) (*Activity, error) {
	return s.changeParticipants(ctx, id, firestore.ArrayRemove(userID), func(a Activity) (Activity, bool, error) {
		return a.WithoutParticipant(userID)
	})
}

// changeParticipants applies participants, an array transform, together with
// the status and slots computed by change, in a single transaction.
func (s *service) changeParticipants(ctx context.Context, id string, participants any, change func(Activity) (Activity, bool, error)) (*Activity, error) {
	ref := s.DB.Collection(collection).Doc(id)
	var (
		result  Activity
		changed bool
	)
	err := s.DB.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}
		var current Activity
		if err := doc.DataTo(&current); err != nil {
			return err
		}
		result, changed, err = change(current)
		if err != nil || !changed {
			return err
		}
		return tx.Update(ref, []firestore.Update{
			{Path: "participants", Value: participants},
			{Path: "status", Value: result.Status},
			{Path: "openSlots", Value: result.OpenSlots},
			{Path: "updatedAt", Value: firestore.ServerTimestamp},
		})
	})
	switch {
	case status.Code(err) == codes.NotFound:
		return nil, ErrNotFound
	case errors.Is(err, ErrFull), errors.Is(err, ErrCancelled), errors.Is(err, ErrOrganizerLeave):
		return nil, err
	case err != nil:
		return nil, fmt.Errorf("failed to update participants: %w", err)
	}
	if changed {
		result.UpdatedAt = s.now()
		log.Debug().Str("activityId", id).Int("participants", len(result.Participants)).Msg("participants updated")
	}
	return &result, nil
}

func (s *service) ListByInfrastructure(ctx context.Context, infraID string, day *time.Time) ([]Activity, error) {
	q := s.DB.Collection(collection).
		Where("infrastructureId", "==", infraID).
		Where("interval.start", ">=", s.midnight())
	activities, err := collect(ctx, q)
	if err != nil {
		return nil, err
	}
	if day != nil {
		filtered := make([]Activity, 0, len(activities))
		for _, a := range activities {
			if sameDay(a.Interval.Start, *day) {
				filtered = append(filtered, a)
			}
		}
		activities = filtered
	}
	SortByStart(activities)
	return activities, nil
}

func (s *service) ListByOrganizer(ctx context.Context, organizerID string) ([]Activity, error) {
	q := s.DB.Collection(collection).
		Where("organizerId", "==", organizerID).
		Where("interval.start", ">=", s.midnight())
	activities, err := collect(ctx, q)
	if err != nil {
		return nil, err
	}
	SortByStart(activities)
	return activities, nil
}

func (s *service) ListByParticipant(ctx context.Context, userID string) ([]Activity, error) {
	q := s.DB.Collection(collection).
		Where("participants", "array-contains", userID).
		Where("interval.start", ">=", s.midnight())
	activities, err := collect(ctx, q)
	if err != nil {
		return nil, err
	}
	SortByStart(activities)
	return activities, nil
}

func (s *service) ListUpcoming(ctx context.Context) ([]Activity, error) {
	q := s.DB.Collection(collection).
		Where("interval.start", ">=", s.midnight()).
		OrderBy("interval.start", firestore.Asc)
	return collect(ctx, q)
}

// midnight is the start of the current day; earlier activities are past.
func (s *service) midnight() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func collect(ctx context.Context, q firestore.Query) ([]Activity, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()
	results := make([]Activity, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		a := Activity{}
		if err := doc.DataTo(&a); err != nil {
			return nil, fmt.Errorf("failed to convert doc %s: %w", doc.Ref.ID, err)
		}
		results = append(results, a)
	}
	return results, nil
}

// sameDay reports whether a falls on the calendar day of b, in b's zone.
func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// SortByStart orders activities by start time, then id for ties.
func SortByStart(activities []Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		if activities[i].Interval.Start.Equal(activities[j].Interval.Start) {
			return activities[i].ID < activities[j].ID
		}
		return activities[i].Interval.Start.Before(activities[j].Interval.Start)
	})
}
