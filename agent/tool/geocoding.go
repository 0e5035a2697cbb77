package tool

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	einotool "github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/rs/zerolog/log"

	cachex "github.com/tanpawarit/chative-specialists/agent/cache"
	"github.com/tanpawarit/chative-specialists/pkg/nominatim"
)

const (
	ToolGeocoding = "geocoding"

	geocodingResultLimit = 3
)

// Geocoder resolves free-text addresses. *nominatim.Client satisfies it.
type Geocoder interface {
	Search(ctx context.Context, query string, limit int) ([]nominatim.Place, error)
}

type GeocodingInput struct {
	Address string `json:"address" jsonschema:"description=Full address to verify: street and number and postal code and city"`
}

type GeocodingOutput struct {
	Query   string            `json:"query"`
	Found   bool              `json:"found"`
	Results []nominatim.Place `json:"results,omitempty"`
	Error   string            `json:"error,omitempty"`
}

func NewGeocodingTool(geocoder Geocoder) (einotool.InvokableTool, error) {
	if geocoder == nil {
		return nil, fmt.Errorf("geocoding tool: geocoder is nil")
	}
	return utils.InferTool(
		ToolGeocoding,
		"Resolve a postal address to normalized components and coordinates. Use it to check that a delivery address exists.",
		func(ctx context.Context, in GeocodingInput) (GeocodingOutput, error) {
			return executeGeocoding(ctx, geocoder, in), nil
		},
	)
}

func executeGeocoding(ctx context.Context, geocoder Geocoder, in GeocodingInput) GeocodingOutput {
	query := strings.TrimSpace(in.Address)
	out := GeocodingOutput{Query: query}
	if query == "" {
		out.Error = "address is required"
		return out
	}

	places, err := geocoder.Search(ctx, query, geocodingResultLimit)
	if err != nil {
		log.Warn().Err(err).Str("tool", ToolGeocoding).Msg("geocoding lookup failed")
		out.Error = err.Error()
		return out
	}

	log.Debug().Str("tool", ToolGeocoding).Int("results", len(places)).Msg("geocoding lookup done")
	out.Found = len(places) > 0
	out.Results = places
	return out
}

// CachedGeocoder serves repeated lookups from a cache. Cache failures never
// fail a lookup.
type CachedGeocoder struct {
	next  Geocoder
	cache cachex.Cache
}

func NewCachedGeocoder(next Geocoder, cache cachex.Cache) Geocoder {
	if cache == nil {
		return next
	}
	return &CachedGeocoder{next: next, cache: cache}
}

func (g *CachedGeocoder) Search(ctx context.Context, query string, limit int) ([]nominatim.Place, error) {
	key := geocodeCacheKey(query, limit)

	raw, ok, err := g.cache.Get(ctx, key)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("key", key).Msg("geocode cache read failed")
	case ok:
		var places []nominatim.Place
		if err := json.Unmarshal([]byte(raw), &places); err == nil {
			return places, nil
		}
		log.Warn().Str("key", key).Msg("geocode cache entry is corrupt")
	}

	places, err := g.next.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return places, nil
	}

	payload, err := json.Marshal(places)
	if err != nil {
		return places, nil
	}
	if err := g.cache.Set(ctx, key, string(payload)); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("geocode cache write failed")
	}
	return places, nil
}

func geocodeCacheKey(query string, limit int) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d|%s", limit, normalized)))
	return "geocode:" + hex.EncodeToString(sum[:16])
}
