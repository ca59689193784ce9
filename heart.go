package withings

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

type HeartListParams struct {
	StartDate *time.Time
	EndDate   *time.Time
	Offset    *int
}

func (p *HeartListParams) values() url.Values {
	if p == nil {
		return nil
	}

	v := make(url.Values)

	if p.StartDate != nil {
		v.Set("startdate", epoch(*p.StartDate))
	}
	if p.EndDate != nil {
		v.Set("enddate", epoch(*p.EndDate))
	}
	if p.Offset != nil {
		v.Set("offset", strconv.Itoa(*p.Offset))
	}

	return v
}

type heartService struct {
	client *Client
}

// Get fetches the raw ECG waveform recorded under a signal id from a heart
// list serie.
func (s *heartService) Get(ctx context.Context, signalID int) (HeartGetResponse, error) {
	const route = "/v2/heart"

	params := make(url.Values)
	params.Set("signalid", strconv.Itoa(signalID))

	body, err := s.client.request(ctx, route, "get", params)
	if err != nil {
		return HeartGetResponse{}, err
	}
	return NewHeartGetResponse(body)
}

func (s *heartService) List(ctx context.Context, params *HeartListParams) (HeartListResponse, error) {
	const route = "/v2/heart"

	body, err := s.client.request(ctx, route, "list", params.values())
	if err != nil {
		return HeartListResponse{}, err
	}
	return NewHeartListResponse(body)
}
