package quizapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

const maxBodySize = 1 << 20

var ErrUnexpectedStatus = errors.New("unexpected quiz endpoint status")

// Client fetches daily quiz documents published as {baseURL}/{YYYY-MM-DD}.json.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client. A zero timeout means no client-side timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// URL returns the document URL of a day.
func (c *Client) URL(day entities.Day) string {
	return c.baseURL + "/" + day.String() + ".json"
}

// Fetch issues one request for the quiz of day. There is no retry.
func (c *Client) Fetch(ctx context.Context, day entities.Day) (*entities.Quiz, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(day), nil)
	if err != nil {
		return nil, fmt.Errorf("build quiz request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch quiz %s: %w", day, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, fmt.Errorf("fetch quiz %s: %w: %s", day, ErrUnexpectedStatus, resp.Status)
	}

	var quiz entities.Quiz
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&quiz); err != nil {
		return nil, fmt.Errorf("decode quiz %s: %w", day, err)
	}

	if err := quiz.Validate(); err != nil {
		return nil, fmt.Errorf("quiz %s: %w", day, err)
	}

	return &quiz, nil
}
