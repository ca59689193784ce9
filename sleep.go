package withings

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// GetSleepField selects the dense series the sleep get call returns.
type GetSleepField string

const (
	GetSleepFieldHR      GetSleepField = "hr"
	GetSleepFieldRR      GetSleepField = "rr"
	GetSleepFieldSnoring GetSleepField = "snoring"
)

// GetSleepSummaryField selects the aggregates the getsummary call returns.
type GetSleepSummaryField string

const (
	GetSleepSummaryFieldRemSleepDuration   GetSleepSummaryField = "remsleepduration"
	GetSleepSummaryFieldWakeupDuration     GetSleepSummaryField = "wakeupduration"
	GetSleepSummaryFieldLightSleepDuration GetSleepSummaryField = "lightsleepduration"
	GetSleepSummaryFieldDeepSleepDuration  GetSleepSummaryField = "deepsleepduration"
	GetSleepSummaryFieldWakeupCount        GetSleepSummaryField = "wakeupcount"
	GetSleepSummaryFieldDurationToSleep    GetSleepSummaryField = "durationtosleep"
	GetSleepSummaryFieldDurationToWakeup   GetSleepSummaryField = "durationtowakeup"
	GetSleepSummaryFieldHRAverage          GetSleepSummaryField = "hr_average"
	GetSleepSummaryFieldHRMin              GetSleepSummaryField = "hr_min"
	GetSleepSummaryFieldHRMax              GetSleepSummaryField = "hr_max"
	GetSleepSummaryFieldRRAverage          GetSleepSummaryField = "rr_average"
	GetSleepSummaryFieldRRMin              GetSleepSummaryField = "rr_min"
	GetSleepSummaryFieldRRMax              GetSleepSummaryField = "rr_max"
	GetSleepSummaryFieldSleepScore         GetSleepSummaryField = "sleep_score"
)

type SleepGetParams struct {
	StartDate  *time.Time
	EndDate    *time.Time
	DataFields []GetSleepField
}

func (p *SleepGetParams) values() url.Values {
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
	if len(p.DataFields) > 0 {
		fields := make([]string, len(p.DataFields))
		for i, field := range p.DataFields {
			fields[i] = string(field)
		}
		v.Set("data_fields", strings.Join(fields, ","))
	}

	return v
}

type SleepGetSummaryParams struct {
	StartDateYMD *time.Time
	EndDateYMD   *time.Time
	DataFields   []GetSleepSummaryField
	LastUpdate   *time.Time
}

func (p *SleepGetSummaryParams) values() url.Values {
	if p == nil {
		return nil
	}

	v := make(url.Values)

	if p.StartDateYMD != nil {
		v.Set("startdateymd", ymd(*p.StartDateYMD))
	}
	if p.EndDateYMD != nil {
		v.Set("enddateymd", ymd(*p.EndDateYMD))
	}
	if len(p.DataFields) > 0 {
		fields := make([]string, len(p.DataFields))
		for i, field := range p.DataFields {
			fields[i] = string(field)
		}
		v.Set("data_fields", strings.Join(fields, ","))
	}
	if p.LastUpdate != nil {
		v.Set("lastupdate", epoch(*p.LastUpdate))
	}

	return v
}

type sleepService struct {
	client *Client
}

func (s *sleepService) Get(ctx context.Context, params *SleepGetParams) (SleepGetResponse, error) {
	const route = "/v2/sleep"

	body, err := s.client.request(ctx, route, "get", params.values())
	if err != nil {
		return SleepGetResponse{}, err
	}
	return NewSleepGetResponse(body)
}

func (s *sleepService) GetSummary(ctx context.Context, params *SleepGetSummaryParams) (SleepGetSummaryResponse, error) {
	const route = "/v2/sleep"

	body, err := s.client.request(ctx, route, "getsummary", params.values())
	if err != nil {
		return SleepGetSummaryResponse{}, err
	}
	return NewSleepGetSummaryResponse(body)
}
