package user

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Service interface {
	GetUser(ctx context.Context, ID string) (*User, error)
	// FavoriteIDs returns the ids of the activities the user bookmarked.
	FavoriteIDs(ctx context.Context, userID string) ([]string, error)
	AddFavorite(ctx context.Context, userID string, activityID string) error
	RemoveFavorite(ctx context.Context, userID string, activityID string) error
	// GetAvailabilities returns the weekly slots the user is free, empty when
	// none were declared.
	GetAvailabilities(ctx context.Context, userID string) (Availabilities, error)
	// SetAvailabilities validates and replaces the user's weekly slots.
	SetAvailabilities(ctx context.Context, userID string, availabilities Availabilities) (Availabilities, error)
}

type userService struct {
	db *firestore.Client
}

var _ Service = (*userService)(nil)

const (
	userCollection      = "users"
	favoritesField      = "favoriteActivities"
	availabilitiesField = "availabilities"
)

func NewUserService(client *firestore.Client) Service {
	return &userService{
		db: client,
	}
}

var NotFound = errors.New("user not found")

func (s *userService) GetUser(ctx context.Context, ID string) (*User, error) {
	doc, err := s.db.Collection(userCollection).Doc(ID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, NotFound
	}
	if err != nil {
		return nil, err
	}
	user := User{}
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		user.ID = doc.Ref.ID
	}
	return &user, nil
}

func (s *userService) FavoriteIDs(ctx context.Context, userID string) ([]string, error) {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.FavoriteActivities == nil {
		return []string{}, nil
	}
	return u.FavoriteActivities, nil
}

func (s *userService) AddFavorite(ctx context.Context, userID string, activityID string) error {
	_, err := s.db.Collection(userCollection).Doc(userID).Set(ctx, map[string]any{
		favoritesField: firestore.ArrayUnion(activityID),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	log.Debug().Str("userId", userID).Str("activityId", activityID).Msg("favorite added")
	return nil
}

func (s *userService) RemoveFavorite(ctx context.Context, userID string, activityID string) error {
	_, err := s.db.Collection(userCollection).Doc(userID).Set(ctx, map[string]any{
		favoritesField: firestore.ArrayRemove(activityID),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	log.Debug().Str("userId", userID).Str("activityId", activityID).Msg("favorite removed")
	return nil
}

func (s *userService) GetAvailabilities(ctx context.Context, userID string) (Availabilities, error) {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.Availabilities == nil {
		return Availabilities{}, nil
	}
	return u.Availabilities, nil
}

func (s *userService) SetAvailabilities(ctx context.Context, userID string, availabilities Availabilities) (Availabilities, error) {
	valid, err := availabilities.Validate()
	if err != nil {
		return nil, err
	}
	// A merge on the map field would keep days the user cleared.
	_, err = s.db.Collection(userCollection).Doc(userID).Set(ctx, map[string]any{
		availabilitiesField: valid,
	}, firestore.Merge([]string{availabilitiesField}))
	if err != nil {
		return nil, fmt.Errorf("failed to save availabilities: %w", err)
	}
	log.Debug().Str("userId", userID).Int("days", len(valid)).Msg("availabilities saved")
	return valid, nil
}
