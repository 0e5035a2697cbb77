package nominatim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultLimit         = 3
	maxLimit             = 10
	maxResponseSizeBytes = 1 << 20
)

var ErrEmptyQuery = errors.New("geocoding query is empty")

type Config struct {
	BaseURL   string        `envconfig:"BASE_URL" split_words:"true" default:"https://nominatim.openstreetmap.org"`
	UserAgent string        `envconfig:"USER_AGENT" split_words:"true" required:"true"`
	Email     string        `envconfig:"EMAIL" split_words:"true"`
	Language  string        `envconfig:"LANGUAGE" split_words:"true" default:"es"`
	Timeout   time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"10s"`
}

// Place is a single geocoding match.
type Place struct {
	DisplayName string  `json:"display_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Road        string  `json:"road,omitempty"`
	HouseNumber string  `json:"house_number,omitempty"`
	City        string  `json:"city,omitempty"`
	PostalCode  string  `json:"postal_code,omitempty"`
	Country     string  `json:"country,omitempty"`
	CountryCode string  `json:"country_code,omitempty"`
	Importance  float64 `json:"importance,omitempty"`
}

type ClientOption func(*Client)

func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// Client talks to a Nominatim compatible /search endpoint.
type Client struct {
	baseURL    string
	userAgent  string
	email      string
	language   string
	httpClient *http.Client
}

type searchResult struct {
	DisplayName string  `json:"display_name"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	Importance  float64 `json:"importance"`
	Address     struct {
		Road        string `json:"road"`
		HouseNumber string `json:"house_number"`
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		Postcode    string `json:"postcode"`
		Country     string `json:"country"`
		CountryCode string `json:"country_code"`
	} `json:"address"`
}

func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("nominatim base url is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid nominatim url: %w", err)
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		return nil, errors.New("nominatim user agent is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		email:     strings.TrimSpace(cfg.Email),
		language:  strings.TrimSpace(cfg.Language),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

// Search resolves a free-text address. limit <= 0 uses the default.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("addressdetails", "1")
	params.Set("limit", strconv.Itoa(limit))
	if c.email != "" {
		params.Set("email", c.email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build nominatim request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if c.language != "" {
		req.Header.Set("Accept-Language", c.language)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute nominatim request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
	if err != nil {
		return nil, fmt.Errorf("read nominatim response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("nominatim http status=%d body=%s", resp.StatusCode, string(raw))
	}

	var results []searchResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("decode nominatim response: %w", err)
	}

	places := make([]Place, 0, len(results))
	for _, r := range results {
		p, err := r.toPlace()
		if err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	return places, nil
}

func (r searchResult) toPlace() (Place, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return Place{}, fmt.Errorf("invalid latitude %q: %w", r.Lat, err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return Place{}, fmt.Errorf("invalid longitude %q: %w", r.Lon, err)
	}

	city := r.Address.City
	if city == "" {
		city = r.Address.Town
	}
	if city == "" {
		city = r.Address.Village
	}

	return Place{
		DisplayName: r.DisplayName,
		Latitude:    lat,
		Longitude:   lon,
		Road:        r.Address.Road,
		HouseNumber: r.Address.HouseNumber,
		City:        city,
		PostalCode:  r.Address.Postcode,
		Country:     r.Address.Country,
		CountryCode: strings.ToUpper(r.Address.CountryCode),
		Importance:  r.Importance,
	}, nil
}
