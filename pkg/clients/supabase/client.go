package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/supabase-community/postgrest-go"

	"landing-forms/pkg/config"
)

// Client defines the interface for writing rows to Supabase tables
type Client interface {
	// InsertOne inserts record into table and decodes the single row the
	// store reports back into out.
	InsertOne(ctx context.Context, table string, record interface{}, out interface{}) error
}

type clientImpl struct {
	baseURL string
	rest    *postgrest.Client
}

// NewClient creates a new Supabase client talking to the PostgREST endpoint
// under baseURL
func NewClient(baseURL, apiKey string) Client {
	baseURL = strings.TrimRight(baseURL, "/")
	rest := postgrest.NewClient(baseURL+"/rest/v1", "public", map[string]string{
		"apikey":        apiKey,
		"Authorization": "Bearer " + apiKey,
		"Content-Type":  "application/json",
	})

	return &clientImpl{
		baseURL: baseURL,
		rest:    rest,
	}
}

// NewClientFromConfig returns the network client when both the URL and the key
// are set, and the unconfigured client otherwise
func NewClientFromConfig(cfg *config.Config) Client {
	if !cfg.IsSupabaseConfigured() {
		return NewUnconfiguredClient()
	}
	return NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
}

// IsConfigured reports whether c talks to a real store
func IsConfigured(c Client) bool {
	if c == nil {
		return false
	}
	_, unconfigured := c.(unconfiguredClient)
	return !unconfigured
}

func (c *clientImpl) InsertOne(ctx context.Context, table string, record interface{}, out interface{}) error {
	// insert -> select -> single: return=representation plus the single-object
	// Accept header, so anything but exactly one row comes back as PGRST116.
	body, _, err := c.rest.From(table).
		Insert(record, false, "", "representation", "").
		Single().
		ExecuteWithContext(ctx)
	if err != nil {
		return toError(table, err)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("error parsing response: %w", err)
	}

	return nil
}

type unconfiguredClient struct{}

// NewUnconfiguredClient returns a client whose operations all fail with
// ErrNotConfigured without touching the network
func NewUnconfiguredClient() Client {
	return unconfiguredClient{}
}

func (unconfiguredClient) InsertOne(context.Context, string, interface{}, interface{}) error {
	return ErrNotConfigured
}
