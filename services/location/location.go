package location

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"sportLink/clients/gcp"

	"github.com/rs/zerolog/log"
)

var ErrUnknownInfrastructure = errors.New("unknown infrastructure")

type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

type Infrastructure struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Sports      []string    `json:"sports"`
	Coordinates Coordinates `json:"coordinates"`
}

type Park struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Address         string           `json:"address"`
	Infrastructures []Infrastructure `json:"infrastructures"`
}

// Catalog indexes the parks and their infrastructures. It is read-only once
// loaded.
type Catalog struct {
	parks  map[string]*Park
	infras map[string]*Infrastructure
	// infraPark maps an infrastructure id to the id of its park.
	infraPark map[string]string
}

type catalogFile struct {
	Parks []Park `json:"parks"`
}

// Parse decodes a JSON catalog.
func Parse(r io.Reader) (*Catalog, error) {
	var file catalogFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	c := &Catalog{
		parks:     make(map[string]*Park, len(file.Parks)),
		infras:    make(map[string]*Infrastructure),
		infraPark: make(map[string]string),
	}
	for i := range file.Parks {
		park := &file.Parks[i]
		c.parks[park.ID] = park
		for j := range park.Infrastructures {
			infra := &park.Infrastructures[j]
			if _, dup := c.infras[infra.ID]; dup {
				return nil, fmt.Errorf("duplicate infrastructure id %q", infra.ID)
			}
			c.infras[infra.ID] = infra
			c.infraPark[infra.ID] = park.ID
		}
	}
	return c, nil
}

// Load reads the catalog from a local file when path is set, otherwise from
// the Cloud Storage object.
func Load(ctx context.Context, path, bucket, object string) (*Catalog, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog: %w", err)
		}
		defer f.Close()
		log.Info().Str("path", path).Msg("Loading infrastructure catalog from file")
		return Parse(f)
	}

	var buf bytes.Buffer
	if err := gcp.DownloadObject(ctx, &buf, bucket, object); err != nil {
		return nil, fmt.Errorf("failed to download catalog: %w", err)
	}
	log.Info().Str("bucket", bucket).Str("object", object).Msg("Loading infrastructure catalog from storage")
	return Parse(&buf)
}

func (c *Catalog) Infrastructure(id string) (Infrastructure, bool) {
	infra, ok := c.infras[id]
	if !ok {
		return Infrastructure{}, false
	}
	return *infra, true
}

// ParkFor returns the park holding the infrastructure.
func (c *Catalog) ParkFor(infraID string) (Park, bool) {
	parkID, ok := c.infraPark[infraID]
	if !ok {
		return Park{}, false
	}
	return *c.parks[parkID], true
}

// Size is the number of infrastructures in the catalog.
func (c *Catalog) Size() int {
	return len(c.infras)
}

// DistanceKm returns the great-circle distance from the given point to the
// infrastructure.
func (c *Catalog) DistanceKm(from Coordinates, infraID string) (float64, error) {
	infra, ok := c.infras[infraID]
	if !ok {
		return 0, ErrUnknownInfrastructure
	}
	return Haversine(from, infra.Coordinates), nil
}

const earthRadiusKm = 6371.0

func Haversine(a, b Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := lat2 - lat1
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// FormatDistance renders metres under one kilometre, kilometres otherwise.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(km*1000))
	}
	return fmt.Sprintf("%.1f km", km)
}
