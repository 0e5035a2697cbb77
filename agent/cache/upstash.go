package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrInvalidKey = errors.New("cache key is empty")

const (
	defaultKeyPrefix     = "specialists:"
	defaultTTL           = 7 * 24 * time.Hour
	maxResponseSizeBytes = 2 << 20
)

// Cache is a string key/value cache.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// Option customizes UpstashCache.
type Option func(*UpstashCache)

func WithKeyPrefix(prefix string) Option {
	return func(c *UpstashCache) {
		trimmed := strings.TrimSpace(prefix)
		if trimmed != "" {
			c.keyPrefix = trimmed
		}
	}
}

func WithTTL(ttl time.Duration) Option {
	return func(c *UpstashCache) {
		c.ttl = ttl
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *UpstashCache) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// UpstashCache stores values in Upstash Redis via its REST API.
type UpstashCache struct {
	baseURL    string
	token      string
	httpClient *http.Client
	keyPrefix  string
	ttl        time.Duration
}

var _ Cache = (*UpstashCache)(nil)

type redisRESTResponse struct {
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

type UpstashRedisConfig struct {
	URL     string        `envconfig:"URL" split_words:"true"`
	Token   string        `envconfig:"TOKEN" split_words:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"5s"`
	TTL     time.Duration `envconfig:"TTL" split_words:"true" default:"168h"`
}

// Enabled reports whether the cache is configured at all.
func (c UpstashRedisConfig) Enabled() bool {
	return strings.TrimSpace(c.URL) != "" && strings.TrimSpace(c.Token) != ""
}

func NewUpstashCache(cfg UpstashRedisConfig, opts ...Option) (*UpstashCache, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if baseURL == "" {
		return nil, errors.New("upstash redis url is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid redis rest url: %w", err)
	}

	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, errors.New("upstash redis token is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	c := &UpstashCache{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		keyPrefix: defaultKeyPrefix,
		ttl:       ttl,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.ttl < 0 {
		return nil, errors.New("ttl must be >= 0")
	}

	return c, nil
}

func (c *UpstashCache) Get(ctx context.Context, key string) (string, bool, error) {
	redisKey, err := c.redisKey(key)
	if err != nil {
		return "", false, err
	}

	resp, err := c.exec(ctx, []any{"GET", redisKey})
	if err != nil {
		return "", false, err
	}

	result := bytes.TrimSpace(resp.Result)
	if len(result) == 0 || bytes.Equal(result, []byte("null")) {
		return "", false, nil
	}

	var value string
	if err := json.Unmarshal(result, &value); err != nil {
		return "", false, fmt.Errorf("decode cached value: %w", err)
	}
	return value, true, nil
}

func (c *UpstashCache) Set(ctx context.Context, key string, value string) error {
	redisKey, err := c.redisKey(key)
	if err != nil {
		return err
	}

	cmd := []any{"SET", redisKey, value}
	if c.ttl > 0 {
		cmd = append(cmd, "EX", ttlSeconds(c.ttl))
	}

	_, err = c.exec(ctx, cmd)
	return err
}

func (c *UpstashCache) Delete(ctx context.Context, key string) error {
	redisKey, err := c.redisKey(key)
	if err != nil {
		return err
	}
	_, err = c.exec(ctx, []any{"DEL", redisKey})
	return err
}

func (c *UpstashCache) redisKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", ErrInvalidKey
	}
	return c.keyPrefix + key, nil
}

func (c *UpstashCache) exec(ctx context.Context, command []any) (*redisRESTResponse, error) {
	body, err := json.Marshal(command)
	if err != nil {
		return nil, fmt.Errorf("marshal redis command: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build redis request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute redis request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
	if err != nil {
		return nil, fmt.Errorf("read redis response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("redis http status=%d body=%s", resp.StatusCode, string(raw))
	}

	var parsed redisRESTResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode redis response: %w", err)
	}
	if parsed.Error != "" {
		return nil, errors.New(parsed.Error)
	}
	return &parsed, nil
}

func ttlSeconds(ttl time.Duration) int64 {
	seconds := ttl / time.Second
	if seconds <= 0 {
		return 1
	}
	if ttl%time.Second != 0 {
		seconds++
	}
	return int64(seconds)
}
