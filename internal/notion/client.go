package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/dieortin/escultoide-bot/internal/event"
)

const (
	defaultBaseURL = "https://api.notion.com"
	notionVersion  = "2022-06-28"
	timeout        = 10 * time.Second
)

// Client is a client for the Notion database query API, bound to a single
// calendar database.
type Client struct {
	token      string
	databaseID string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Notion client for the given calendar database
func NewClient(token, databaseID string) *Client {
	return &Client{
		token:      token,
		databaseID: databaseID,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type queryRequest struct {
	Filter queryFilter `json:"filter"`
	Sorts  []querySort `json:"sorts"`
}

type queryFilter struct {
	Property string        `json:"property"`
	Date     dateCondition `json:"date"`
}

type dateCondition struct {
	After string `json:"after"`
}

type querySort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

type queryResponse struct {
	Results []page `json:"results"`
}

// queryAfter fetches the raw calendar records dated strictly after the
// given instant, requesting an ascending sort on the date property.
func (c *Client) queryAfter(ctx context.Context, after time.Time) ([]page, error) {
	body, err := json.Marshal(queryRequest{
		Filter: queryFilter{
			Property: propDate,
			Date:     dateCondition{After: after.Format(time.RFC3339)},
		},
		Sorts: []querySort{
			{Property: propDate, Direction: "ascending"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling query: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1/databases/%s/query", c.baseURL, c.databaseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", notionVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	var result queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &UpstreamError{Err: fmt.Errorf("decoding response: %w", err)}
	}

	return result.Results, nil
}

// NextEventAfter returns the earliest calendar event dated after the given
// instant. It returns ErrNoUpcomingEvent when the query matches nothing and
// an *UpstreamError when the API cannot be reached. The query is issued
// exactly once, with no retries.
func (c *Client) NextEventAfter(ctx context.Context, after time.Time) (*event.Event, error) {
	pages, err := c.queryAfter(ctx, after)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, ErrNoUpcomingEvent
	}

	events := make([]*event.Event, 0, len(pages))
	for _, p := range pages {
		evt, err := mapPage(p)
		if err != nil {
			return nil, err
		}
		events = append(events, evt)
	}

	// The query asks Notion for an ascending sort, but the earliest-first
	// contract must hold even if the response comes back unordered.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Start().Before(events[j].Date.Start())
	})

	return events[0], nil
}

// NextEvent returns the earliest calendar event after the current instant
func (c *Client) NextEvent(ctx context.Context) (*event.Event, error) {
	return c.NextEventAfter(ctx, time.Now().UTC())
}
