package sportapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrRequestFailed is returned when the GET request fails at the
	// transport level or comes back with a non-success HTTP status.
	ErrRequestFailed = errors.New("request failed")

	// ErrInvalidResponse is returned when the response body is not valid JSON.
	ErrInvalidResponse = errors.New("response is not valid JSON")
)

// Client interacts with the biathlonresults.com sport API
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new API client. The default client carries no timeout,
// matching the API's single blocking GET semantics; pass a configured
// http.Client to NewClientWithHTTP to change that.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
	}
}

// NewClientWithHTTP creates a client on top of a caller-supplied http.Client.
func NewClientWithHTTP(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// get performs one GET request with no retries. A transport error or a
// non-2xx status both count as a failed request.
func (c *Client) get(reqURL string) ([]byte, error) {
	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	// Public APIs often block default Go user agents
	req.Header.Set("User-Agent", "biathlon-data/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrRequestFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	return body, nil
}

// GetJSON sends a GET request to the given URL and returns the decoded JSON
// value of the response. The shape of the result is whatever the endpoint
// returns; no validation is performed.
func (c *Client) GetJSON(reqURL string) (interface{}, error) {
	var v interface{}
	if err := c.getJSON(reqURL, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (c *Client) getJSON(reqURL string, v interface{}) error {
	body, err := c.get(reqURL)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return nil
}

// FetchCalendar retrieves the event calendar of a season. The season uses the
// two-digit year span format, e.g. "2425" (see SeasonID).
func (c *Client) FetchCalendar(season string) ([]Event, error) {
	var events []Event
	if err := c.getJSON(CalendarURL(season), &events); err != nil {
		return nil, fmt.Errorf("failed to fetch calendar: %w", err)
	}
	return events, nil
}

// FetchCompetitions retrieves the races held during an event.
func (c *Client) FetchCompetitions(eventID string) ([]Competition, error) {
	var competitions []Competition
	if err := c.getJSON(EventURL(eventID), &competitions); err != nil {
		return nil, fmt.Errorf("failed to fetch competitions: %w", err)
	}
	return competitions, nil
}

// FetchResults retrieves the results of a race.
func (c *Client) FetchResults(raceID string) (*RaceResults, error) {
	var results RaceResults
	if err := c.getJSON(ResultsURL(raceID), &results); err != nil {
		return nil, fmt.Errorf("failed to fetch results: %w", err)
	}
	return &results, nil
}

// FetchAnalytics retrieves one type of analytical results of a race, e.g.
// shooting times for type ID "STTM". The payload shape varies by type, so the
// decoded JSON value is returned as is.
func (c *Client) FetchAnalytics(raceID, typeID string) (interface{}, error) {
	v, err := c.GetJSON(AnalyticsURL(raceID, typeID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch analytics: %w", err)
	}
	return v, nil
}
