package location

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `{
  "parks": [
    {
      "id": "jarry",
      "name": "Parc Jarry",
      "address": "285 Rue Faillon O, Montréal",
      "infrastructures": [
        {"id": "jarry-bball-1", "name": "Basketball court 1", "sports": ["basketball"], "coordinates": {"lat": 45.5334, "lng": -73.6281}},
        {"id": "jarry-tennis", "name": "Tennis courts", "sports": ["tennis", "pickleball"], "coordinates": {"lat": 45.5318, "lng": -73.6269}}
      ]
    },
    {
      "id": "laurier",
      "name": "Parc Laurier",
      "infrastructures": [
        {"id": "laurier-soccer", "name": "Soccer field", "sports": ["soccer"], "coordinates": {"lat": 45.5296, "lng": -73.5870}}
      ]
    }
  ]
}`

func TestParse(t *testing.T) {
	c, err := Parse(strings.NewReader(catalogJSON))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Size())

	infra, ok := c.Infrastructure("jarry-tennis")
	require.True(t, ok)
	assert.Equal(t, []string{"tennis", "pickleball"}, infra.Sports)

	park, ok := c.ParkFor("jarry-tennis")
	require.True(t, ok)
	assert.Equal(t, "Parc Jarry", park.Name)

	_, ok = c.ParkFor("missing")
	assert.False(t, ok)
}

func TestParseRejectsDuplicates(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"parks":[
		{"id":"a","infrastructures":[{"id":"x"}]},
		{"id":"b","infrastructures":[{"id":"x"}]}
	]}`))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(catalogJSON), 0o644))

	c, err := Load(context.Background(), path, "", "")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Size())
}

func TestDistance(t *testing.T) {
	c, err := Parse(strings.NewReader(catalogJSON))
	require.NoError(t, err)

	d, err := c.DistanceKm(Coordinates{Latitude: 45.5334, Longitude: -73.6281}, "jarry-bball-1")
	require.NoError(t, err)
	assert.InDelta(t, 0, d, 1e-9)

	d, err = c.DistanceKm(Coordinates{Latitude: 45.5334, Longitude: -73.6281}, "laurier-soccer")
	require.NoError(t, err)
	assert.InDelta(t, 3.2, d, 0.2)

	_, err = c.DistanceKm(Coordinates{}, "missing")
	assert.ErrorIs(t, err, ErrUnknownInfrastructure)
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		km   float64
		want string
	}{
		{0.25, "250 m"},
		{0.9999, "999 m"},
		{1, "1.0 km"},
		{12.345, "12.3 km"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDistance(tt.km))
		})
	}
}
