package sportlink

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sportLink/api"
	"sportLink/services/activity"
	"sportLink/services/favorites"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

var ErrUnauthorized = errors.New("sportlink: unauthorized")

// Client talks to the SportLink HTTP API on behalf of one signed-in user.
type Client struct {
	http *resty.Client
}

var _ favorites.Fetcher = (*Client)(nil)

func New(baseURL, idToken string) *Client {
	c := resty.New()
	c.SetBaseURL(strings.TrimRight(baseURL, "/"))
	c.SetAuthToken(idToken)
	c.SetHeaders(map[string]string{
		"Accept":     "application/json",
		"User-Agent": "sportlink-favsync",
	})
	return &Client{http: c}
}

type activityList struct {
	Activities []activity.Activity `json:"activities"`
}

// GetByIDs fetches the activities whose id is in ids.
func (c *Client) GetByIDs(ctx context.Context, ids []string) ([]activity.Activity, error) {
	if len(ids) == 0 {
		return []activity.Activity{}, nil
	}
	result := &activityList{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("ids", strings.Join(ids, ",")).
		SetResult(result).
		SetError(&api.Error{}).
		Get("/activities")
	if err := check(resp, err, "fetching activities"); err != nil {
		return nil, err
	}
	log.Debug().Int("requested", len(ids)).Int("received", len(result.Activities)).Msg("activities fetched")
	return result.Activities, nil
}

// FavoriteIDs returns the ids the user bookmarked.
func (c *Client) FavoriteIDs(ctx context.Context, userID string) ([]string, error) {
	result := &api.FavoriteIds{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("userId", userID).
		SetResult(result).
		SetError(&api.Error{}).
		Get("/users/{userId}/favorites/ids")
	if err := check(resp, err, "fetching favorite ids"); err != nil {
		return nil, err
	}
	return result.Ids, nil
}

func check(resp *resty.Response, err error, what string) error {
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if !resp.IsError() {
		return nil
	}
	msg := resp.Status()
	if e, ok := resp.Error().(*api.Error); ok && e.Message != "" {
		msg = e.Message
	}
	if resp.StatusCode() == 401 || resp.StatusCode() == 403 {
		return fmt.Errorf("%s: %w: %s", what, ErrUnauthorized, msg)
	}
	return fmt.Errorf("%s: %s", what, msg)
}
