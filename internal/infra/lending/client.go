package lending

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"equiplend/internal/domain/pool"
	"equiplend/internal/domain/schedule"
	"equiplend/internal/domain/timeline"
	"equiplend/internal/infra"
	"equiplend/internal/usecase/commands"
)

// Client talks to the lending backend that owns the inventory, the
// loan policy, and the persisted bookings. This service never mutates
// inventory or policy; bookings are only appended via Submit.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// ListInstances reads the full inventory listing. The listing order is
// load-bearing: the allocator's tie-breaks follow it.
func (c *Client) ListInstances(ctx context.Context) ([]pool.Instance, error) {
	var rows []instanceRow
	if err := c.getJSON(ctx, "/inventory/sets", &rows); err != nil {
		return nil, infra.WrapCollabErr("failed to list inventory", err)
	}

	instances, err := toInstances(rows)
	if err != nil {
		return nil, infra.WrapCollabErr("malformed inventory listing", err, infra.KindDecodeFailure)
	}
	return instances, nil
}

// LoanPolicy reads the institutional day-rule configuration.
func (c *Client) LoanPolicy(ctx context.Context) (schedule.DayRuleConfig, error) {
	var row policyRow
	if err := c.getJSON(ctx, "/policy/loan", &row); err != nil {
		return schedule.DayRuleConfig{}, infra.WrapCollabErr("failed to load loan policy", err)
	}

	cfg, err := toDayRuleConfig(row)
	if err != nil {
		return schedule.DayRuleConfig{}, infra.WrapCollabErr("malformed loan policy", err, infra.KindDecodeFailure)
	}
	return cfg, nil
}

// ListYear reads every booking visible in one calendar year.
func (c *Client) ListYear(ctx context.Context, year int) ([]timeline.Booking, error) {
	path := "/bookings?" + url.Values{"year": {strconv.Itoa(year)}}.Encode()
	var rows []bookingRow
	if err := c.getJSON(ctx, path, &rows); err != nil {
		return nil, infra.WrapCollabErr("failed to list bookings", err)
	}

	bookings, err := toBookings(rows)
	if err != nil {
		return nil, infra.WrapCollabErr("malformed booking listing", err, infra.KindDecodeFailure)
	}
	return bookings, nil
}

// Submit sends a confirmed draft to the persistence collaborator and
// returns its message. Success or failure of anything beyond that is
// the backend's business.
func (c *Client) Submit(ctx context.Context, sub commands.BookingSubmission) (string, error) {
	payload, err := json.Marshal(toSubmissionRow(sub))
	if err != nil {
		return "", infra.WrapCollabErr("failed to encode booking submission", err, infra.KindDecodeFailure)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bookings", bytes.NewReader(payload))
	if err != nil {
		return "", infra.WrapCollabErr("failed to build booking submission", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", infra.WrapCollabErr("lending backend unreachable", err, infra.KindUnreachable)
	}
	defer func() { _ = resp.Body.Close() }()

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", infra.WrapCollabErr("failed to decode submission response", err, infra.KindDecodeFailure)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return body.Message, infra.WrapCollabErr(
			fmt.Sprintf("booking submission rejected with status %d", resp.StatusCode), nil)
	}
	return body.Message, nil
}

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return infra.WrapCollabErr("lending backend unreachable", err, infra.KindUnreachable)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return infra.WrapCollabErr("not found: "+path, nil, infra.KindNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("lending backend returned status %d for %s", resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
