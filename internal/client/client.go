package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/deckstudy/internal/api"
	"github.com/phrazzld/deckstudy/internal/api/shared"
	"github.com/phrazzld/deckstudy/internal/domain"
	"github.com/phrazzld/deckstudy/internal/platform/logger"
)

// DefaultTimeout bounds each request when no HTTP client is supplied.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// Client talks to the deck API.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client. Nil is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http = &http.Client{Timeout: d}
		}
	}
}

// WithLogger sets the client logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a Client for the API rooted at baseURL, e.g.
// "http://localhost:8080".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(slog.String("component", "api_client"))
	return c, nil
}

// FetchDeckMeta returns the deck's id and name.
func (c *Client) FetchDeckMeta(ctx context.Context, deckID string) (domain.DeckMeta, error) {
	var resp api.DeckResponse
	if err := c.fetch(ctx, "fetch deck", "/api/decks/"+url.PathEscape(deckID), &resp); err != nil {
		return domain.DeckMeta{}, err
	}
	return domain.DeckMeta{ID: resp.ID, Name: resp.Name}, nil
}

// FetchDueCards returns the deck's due cards in server order.
func (c *Client) FetchDueCards(ctx context.Context, deckID string) ([]domain.Card, error) {
	path := "/api/decks/" + url.PathEscape(deckID) + "/cards"

	var resp []api.CardResponse
	if err := c.fetch(ctx, "fetch due cards", path, &resp); err != nil {
		return nil, err
	}

	cards := make([]domain.Card, 0, len(resp))
	for _, r := range resp {
		card, err := r.ToDomain()
		if err != nil {
			return nil, &NetworkError{Op: "fetch due cards", URL: c.endpoint(path), Err: err}
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// SubmitReview posts one rating. A non-success response yields a
// *RemoteError carrying the server's message.
func (c *Client) SubmitReview(ctx context.Context, cardID uuid.UUID, rating domain.Rating) error {
	req := api.ReviewRequest{CardID: cardID.String(), Rating: string(rating)}
	return c.send(ctx, http.MethodPost, "/api/cards/review", req, nil)
}

// ListDecks returns every deck with its due count.
func (c *Client) ListDecks(ctx context.Context) ([]domain.DeckSummary, error) {
	var resp []api.DeckSummaryResponse
	if err := c.send(ctx, http.MethodGet, "/api/decks", nil, &resp); err != nil {
		return nil, err
	}
	decks := make([]domain.DeckSummary, 0, len(resp))
	for _, d := range resp {
		decks = append(decks, domain.DeckSummary{ID: d.ID, Name: d.Name, DueCardCount: d.DueCardCount})
	}
	return decks, nil
}

// Import uploads a validated deck document.
func (c *Client) Import(ctx context.Context, doc *domain.DeckImport) (*api.ImportResponse, error) {
	var resp api.ImportResponse
	if err := c.send(ctx, http.MethodPost, "/api/import", doc, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteDeck removes a deck and its cards.
func (c *Client) DeleteDeck(ctx context.Context, deckID uuid.UUID) error {
	return c.send(ctx, http.MethodDelete, "/api/decks/"+deckID.String(), nil, nil)
}

// fetch performs a GET used to load session data. Any failure, including a
// non-success status, is reported as a *NetworkError.
func (c *Client) fetch(ctx context.Context, op, path string, out any) error {
	err := c.send(ctx, http.MethodGet, path, nil, out)
	if err == nil {
		return nil
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		netErr.Op = op
		return netErr
	}
	var remote *RemoteError
	if errors.As(err, &remote) {
		return &NetworkError{Op: op, URL: c.endpoint(path), Status: remote.Status, Err: remote}
	}
	return err
}

func (c *Client) endpoint(path string) string {
	return c.baseURL.String() + path
}

// send issues one JSON request. Transport and decoding failures are
// *NetworkError; non-2xx responses are *RemoteError.
func (c *Client) send(ctx context.Context, method, path string, in, out any) error {
	log := logger.FromContextOrDefault(ctx, c.logger)
	endpoint := c.endpoint(path)
	op := method

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return &NetworkError{Op: op, URL: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug("request failed",
			slog.String("method", method),
			slog.String("url", endpoint),
			slog.String("error", err.Error()))
		return &NetworkError{Op: op, URL: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	log.Debug("request completed",
		slog.String("method", method),
		slog.String("url", endpoint),
		slog.Int("status", resp.StatusCode),
		slog.String("trace_id", resp.Header.Get(shared.TraceIDHeader)),
		slog.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return remoteError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{Op: op, URL: endpoint, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func remoteError(resp *http.Response) *RemoteError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var errResp shared.ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error != "" {
		return &RemoteError{Status: resp.StatusCode, Message: errResp.Error}
	}
	return &RemoteError{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
}
