package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"equiplend/internal/domain/schedule"
	"equiplend/internal/infra"
	"equiplend/internal/usecase/readmodel"

	"github.com/google/uuid"
)

const dateFormat = "2006-01-02"

// Client consumes the external availability oracle. The oracle is
// authoritative: its answer is applied as-is, never second-guessed,
// and never retried.
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

type checkRequest struct {
	RentStart string `json:"rentStart"`
	RentEnd   string `json:"rentEnd"`
}

type checkResponse struct {
	UnavailableIDs []uuid.UUID           `json:"unavailableIds"`
	PerIDDetail    map[string]wireDetail `json:"perIdDetail,omitempty"`
}

type wireDetail struct {
	Available      bool `json:"available"`
	AvailableCount int  `json:"availableCount"`
}

// Check asks which instances are already taken inside the range.
func (c *Client) Check(ctx context.Context, rng schedule.DateRange) (*readmodel.AvailabilityRM, error) {
	payload, err := json.Marshal(checkRequest{
		RentStart: rng.Start.Format(dateFormat),
		RentEnd:   rng.End.Format(dateFormat),
	})
	if err != nil {
		return nil, infra.WrapCollabErr("failed to encode availability request", err, infra.KindDecodeFailure)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/availability", bytes.NewReader(payload))
	if err != nil {
		return nil, infra.WrapCollabErr("failed to build availability request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, infra.WrapCollabErr("availability oracle unreachable", err, infra.KindUnreachable)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, infra.WrapCollabErr(
			fmt.Sprintf("availability oracle returned status %d", resp.StatusCode), nil)
	}

	var body checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, infra.WrapCollabErr("failed to decode availability response", err, infra.KindDecodeFailure)
	}

	return toAvailabilityRM(body)
}

func toAvailabilityRM(body checkResponse) (*readmodel.AvailabilityRM, error) {
	rm := &readmodel.AvailabilityRM{
		UnavailableIDs: body.UnavailableIDs,
	}
	if len(body.PerIDDetail) > 0 {
		rm.PerIDDetail = make(map[uuid.UUID]readmodel.AvailabilityDetail, len(body.PerIDDetail))
		for key, d := range body.PerIDDetail {
			id, err := uuid.Parse(key)
			if err != nil {
				return nil, infra.WrapCollabErr("availability detail keyed by malformed id", err, infra.KindDecodeFailure)
			}
			rm.PerIDDetail[id] = readmodel.AvailabilityDetail{
				Available:      d.Available,
				AvailableCount: d.AvailableCount,
			}
		}
	}
	return rm, nil
}
