package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"sportLink/api"
	"sportLink/services/activity"
	"sportLink/services/favorites"
	"sportLink/services/location"
	"sportLink/services/user"
	"sportLink/validator"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ensure that we've conformed to the `ServerInterface` with a compile-time check
var _ api.ServerInterface = (*Server)(nil)

// staleHeader is set on a favorites response served from the cache after the
// remote fetch kept failing.
const staleHeader = "X-Favorites-Stale"

var errForbidden = errors.New("caller is not allowed to do this")

type Server struct {
	ActivityService activity.Service
	UserService     user.Service
	Registry        *favorites.Registry
	Catalog         *location.Catalog
	Retry           favorites.RetryPolicy
}

func NewServer(activities activity.Service, users user.Service, registry *favorites.Registry, catalog *location.Catalog) *Server {
	return &Server{
		ActivityService: activities,
		UserService:     users,
		Registry:        registry,
		Catalog:         catalog,
		Retry:           favorites.DefaultRetryPolicy,
	}
}

func (s *Server) GetPing(c *gin.Context) {
	c.JSON(http.StatusOK, api.Pong{Ping: "pong"})
}

func (s *Server) ListActivities(c *gin.Context, params api.ListActivitiesParams) {
	ctx := c.Request.Context()
	var (
		activities []activity.Activity
		err        error
	)
	switch {
	case params.Ids != nil:
		activities, err = s.ActivityService.GetByIDs(ctx, *params.Ids)
		if err == nil {
			activity.SortByStart(activities)
		}
	case params.InfraId != nil:
		var day *time.Time
		if params.Date != nil {
			d := params.Date.Time
			local := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)
			day = &local
		}
		activities, err = s.ActivityService.ListByInfrastructure(ctx, *params.InfraId, day)
	case params.OrganizerId != nil:
		activities, err = s.ActivityService.ListByOrganizer(ctx, *params.OrganizerId)
	default:
		activities, err = s.ActivityService.ListUpcoming(ctx)
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.FromActivities(activities))
}

func (s *Server) CreateActivity(c *gin.Context) {
	access, ok := caller(c)
	if !ok {
		return
	}
	var req api.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error{Message: err.Error()})
		return
	}
	if _, ok := s.Catalog.Infrastructure(req.InfrastructureId); !ok {
		c.JSON(http.StatusBadRequest, api.Error{Message: location.ErrUnknownInfrastructure.Error()})
		return
	}
	created, err := s.ActivityService.Create(c.Request.Context(), api.ToActivity(req, access.UserID))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.FromActivity(*created))
}

func (s *Server) GetActivity(c *gin.Context, activityId string) {
	a, err := s.ActivityService.Get(c.Request.Context(), activityId)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.FromActivity(*a))
}

func (s *Server) UpdateActivity(c *gin.Context, activityId string) {
	var req api.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error{Message: err.Error()})
		return
	}
	a, ok := s.organizedByCaller(c, activityId)
	if !ok {
		return
	}
	if err := s.ActivityService.UpdateTitle(c.Request.Context(), activityId, req.Title); err != nil {
		fail(c, err)
		return
	}
	a.Title = req.Title
	applied := s.Registry.Apply(activityId, func(record *activity.Activity) {
		record.Title = req.Title
	})
	zerolog.Ctx(c.Request.Context()).Debug().Str("activityId", activityId).Int("caches", applied).Msg("title echoed")
	c.JSON(http.StatusOK, api.FromActivity(*a))
}

func (s *Server) DeleteActivity(c *gin.Context, activityId string) {
	if _, ok := s.organizedByCaller(c, activityId); !ok {
		return
	}
	if err := s.ActivityService.Delete(c.Request.Context(), activityId); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) RefreshActivity(c *gin.Context, activityId string) {
	a, err := s.ActivityService.RefreshStatusAndSlots(c.Request.Context(), activityId)
	if err != nil {
		fail(c, err)
		return
	}
	s.Registry.Apply(activityId, func(record *activity.Activity) {
		record.Status = a.Status
		record.OpenSlots = a.OpenSlots
		record.UpdatedAt = a.UpdatedAt
	})
	c.JSON(http.StatusOK, api.FromActivity(*a))
}

func (s *Server) JoinActivity(c *gin.Context, activityId string, userId string) {
	if !s.isCaller(c, userId) {
		return
	}
	a, err := s.ActivityService.Join(c.Request.Context(), activityId, userId)
	if err != nil {
		fail(c, err)
		return
	}
	s.echoParticipants(c.Request.Context(), *a)
	c.JSON(http.StatusOK, api.FromActivity(*a))
}

func (s *Server) LeaveActivity(c *gin.Context, activityId string, userId string) {
	if !s.isCaller(c, userId) {
		return
	}
	a, err := s.ActivityService.Leave(c.Request.Context(), activityId, userId)
	if err != nil {
		fail(c, err)
		return
	}
	s.echoParticipants(c.Request.Context(), *a)
	c.JSON(http.StatusOK, api.FromActivity(*a))
}

func (s *Server) ListJoinedActivities(c *gin.Context, userId string) {
	if !s.isCaller(c, userId) {
		return
	}
	activities, err := s.ActivityService.ListByParticipant(c.Request.Context(), userId)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.FromActivities(activities))
}

// GetAvailabilities is open to any signed-in user so organizers can pick
// who to invite.
func (s *Server) GetAvailabilities(c *gin.Context, userId string) {
	av, err := s.UserService.GetAvailabilities(c.Request.Context(), userId)
	if errors.Is(err, user.NotFound) {
		av, err = user.Availabilities{}, nil
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.FromAvailabilities(av))
}

func (s *Server) SetAvailabilities(c *gin.Context, userId string) {
	if !s.isCaller(c, userId) {
		return
	}
	var req api.SetAvailabilitiesJSONRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error{Message: err.Error()})
		return
	}
	saved, err := s.UserService.SetAvailabilities(c.Request.Context(), userId, api.ToAvailabilities(req))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.FromAvailabilities(saved))
}

func (s *Server) GetFavorites(c *gin.Context, userId string) {
	if !s.isCaller(c, userId) {
		return
	}
	ctx := c.Request.Context()
	ids, err := s.favoriteIDs(ctx, userId)
	if err != nil {
		fail(c, err)
		return
	}

	records, err := s.Registry.Sync(ctx, userId, ids, s.Retry)
	switch {
	case err == nil:
	case errors.Is(err, favorites.ErrFetchFailed):
		// Removals were still applied, so what is cached is a valid subset.
		zerolog.Ctx(ctx).Warn().Err(err).Str("userId", userId).Msg("serving stale favorites")
		c.Header(staleHeader, "true")
	default:
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.FromActivities(records))
}

func (s *Server) GetFavoriteIds(c *gin.Context, userId string) {
	if !s.isCaller(c, userId) {
		return
	}
	ids, err := s.favoriteIDs(c.Request.Context(), userId)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.FavoriteIds{Ids: ids})
}

func (s *Server) AddFavorite(c *gin.Context, userId string, activityId string) {
	if !s.isCaller(c, userId) {
		return
	}
	ctx := c.Request.Context()
	if _, err := s.ActivityService.Get(ctx, activityId); err != nil {
		fail(c, err)
		return
	}
	if err := s.UserService.AddFavorite(ctx, userId, activityId); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) RemoveFavorite(c *gin.Context, userId string, activityId string) {
	if !s.isCaller(c, userId) {
		return
	}
	if err := s.UserService.RemoveFavorite(c.Request.Context(), userId, activityId); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) GetInfrastructure(c *gin.Context, infraId string, params api.GetInfrastructureParams) {
	infra, ok := s.Catalog.Infrastructure(infraId)
	if !ok {
		c.JSON(http.StatusNotFound, api.Error{Message: location.ErrUnknownInfrastructure.Error()})
		return
	}
	park, _ := s.Catalog.ParkFor(infraId)
	details := api.FromInfrastructure(infra, park)

	if params.Lat != nil && params.Lng != nil {
		km, err := s.Catalog.DistanceKm(location.Coordinates{Latitude: *params.Lat, Longitude: *params.Lng}, infraId)
		if err != nil {
			fail(c, err)
			return
		}
		details.Distance = &api.Distance{Kilometers: km, Label: location.FormatDistance(km)}
	}
	c.JSON(http.StatusOK, details)
}

// echoParticipants copies a participant change into every cached copy of a.
func (s *Server) echoParticipants(ctx context.Context, a activity.Activity) {
	applied := s.Registry.Apply(a.ID, func(record *activity.Activity) {
		record.Participants = append([]string(nil), a.Participants...)
		record.Status = a.Status
		record.OpenSlots = a.OpenSlots
		record.UpdatedAt = a.UpdatedAt
	})
	zerolog.Ctx(ctx).Debug().Str("activityId", a.ID).Int("caches", applied).Msg("participants echoed")
}

// favoriteIDs treats a user without a profile as having no favorites.
func (s *Server) favoriteIDs(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.UserService.FavoriteIDs(ctx, userID)
	if errors.Is(err, user.NotFound) {
		return []string{}, nil
	}
	return ids, err
}

func (s *Server) organizedByCaller(c *gin.Context, activityID string) (*activity.Activity, bool) {
	access, ok := caller(c)
	if !ok {
		return nil, false
	}
	a, err := s.ActivityService.Get(c.Request.Context(), activityID)
	if err != nil {
		fail(c, err)
		return nil, false
	}
	if a.OrganizerID != access.UserID {
		fail(c, errForbidden)
		return nil, false
	}
	return a, true
}

func (s *Server) isCaller(c *gin.Context, userID string) bool {
	access, ok := caller(c)
	if !ok {
		return false
	}
	if access.UserID != userID {
		fail(c, errForbidden)
		return false
	}
	return true
}

func caller(c *gin.Context) (*validator.Access, bool) {
	access, ok := validator.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Error{Message: "missing access token"})
		return nil, false
	}
	return access, true
}

func fail(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, activity.ErrNotFound), errors.Is(err, user.NotFound):
		code = http.StatusNotFound
	case errors.Is(err, errForbidden):
		code = http.StatusForbidden
	case errors.Is(err, user.ErrInvalidAvailabilities):
		code = http.StatusBadRequest
	case errors.Is(err, activity.ErrFull), errors.Is(err, activity.ErrCancelled), errors.Is(err, activity.ErrOrganizerLeave):
		code = http.StatusConflict
	case errors.Is(err, favorites.ErrFetchFailed):
		code = http.StatusBadGateway
	case errors.Is(err, favorites.ErrClosed), errors.Is(err, context.Canceled):
		code = http.StatusServiceUnavailable
	}
	if code >= http.StatusInternalServerError {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	c.JSON(code, api.Error{Message: err.Error()})
}
