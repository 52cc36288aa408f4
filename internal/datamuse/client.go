// Package datamuse queries the Datamuse word-finding API.
package datamuse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/verte-zerg/haiku/internal/model"
)

// DefaultEndpoint is the public /words endpoint.
const DefaultEndpoint = "https://api.datamuse.com/words"

// DefaultTimeout bounds a single request.
const DefaultTimeout = 10 * time.Second

const (
	paramSpelledLike = "sp"
	paramAdjectives  = "rel_jjb"
	paramNouns       = "rel_jja"
	paramMetadata    = "md"
	// p: parts of speech, s: syllable counts.
	metadataFlags = "ps"

	tagNoun      = "n"
	tagAdjective = "adj"
)

// Client fetches word metadata and relations from Datamuse.
type Client struct {
	endpoint   string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a Client for endpoint. An empty endpoint uses DefaultEndpoint
// and a non-positive timeout uses DefaultTimeout.
func NewClient(endpoint string, timeout time.Duration, logger *zap.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With(zap.String("component", "datamuse")),
	}
}

// SpelledLike returns every result for an exact-spelling query.
func (c *Client) SpelledLike(ctx context.Context, word string) ([]model.Word, error) {
	entries, err := c.query(ctx, paramSpelledLike, word)
	if err != nil {
		return nil, err
	}
	words := make([]model.Word, 0, len(entries))
	for _, e := range entries {
		words = append(words, e.toWord())
	}
	return words, nil
}

// LookupNoun returns the result whose text equals word and which is tagged as a noun.
// It returns model.ErrNoMatch when the service knows the spelling but not as that noun.
func (c *Client) LookupNoun(ctx context.Context, word string) (model.Word, error) {
	entries, err := c.query(ctx, paramSpelledLike, word)
	if err != nil {
		return model.Word{}, err
	}
	for _, e := range entries {
		if e.Word == word && e.hasTag(tagNoun) {
			return e.toWord(), nil
		}
	}
	return model.Word{}, fmt.Errorf("datamuse: %q: %w", word, model.ErrNoMatch)
}

// RelatedAdjectives returns adjectives that commonly modify noun, most relevant first.
func (c *Client) RelatedAdjectives(ctx context.Context, noun model.Word) ([]model.Word, error) {
	entries, err := c.query(ctx, paramAdjectives, noun.Text)
	if err != nil {
		return nil, err
	}
	words := filterTagged(entries, tagAdjective)
	if len(words) == 0 {
		return nil, fmt.Errorf("datamuse: no adjectives for %q: %w", noun.Text, model.ErrNoResults)
	}
	return words, nil
}

// RelatedNouns returns nouns commonly modified by adjective, most relevant first.
func (c *Client) RelatedNouns(ctx context.Context, adjective model.Word) ([]model.Word, error) {
	entries, err := c.query(ctx, paramNouns, adjective.Text)
	if err != nil {
		return nil, err
	}
	return filterTagged(entries, tagNoun), nil
}

// query issues one GET and fails on a non-2xx status or an empty result array.
func (c *Client) query(ctx context.Context, param, word string) ([]apiWord, error) {
	params := url.Values{}
	params.Set(param, word)
	params.Set(paramMetadata, metadataFlags)
	reqURL := c.endpoint + "?" + params.Encode()

	c.log.Debug("datamuse request", zap.String(param, word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("datamuse: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("datamuse request failed", zap.String(param, word), zap.Error(err))
		return nil, fmt.Errorf("datamuse: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("datamuse: status %d: %w", resp.StatusCode, model.ErrUnexpectedStatus)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("datamuse: read body: %w", err)
	}

	var entries []apiWord
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("datamuse: decode json: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("datamuse: %s=%q: %w", param, word, model.ErrNoResults)
	}

	c.log.Debug("datamuse response",
		zap.String(param, word),
		zap.Int("status", resp.StatusCode),
		zap.Int("results", len(entries)),
	)
	return entries, nil
}
