package withings

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// GetActivityField selects which columns the getactivity call returns.
type GetActivityField string

const (
	GetActivityFieldSteps         GetActivityField = "steps"
	GetActivityFieldDistance      GetActivityField = "distance"
	GetActivityFieldElevation     GetActivityField = "elevation"
	GetActivityFieldSoft          GetActivityField = "soft"
	GetActivityFieldModerate      GetActivityField = "moderate"
	GetActivityFieldIntense       GetActivityField = "intense"
	GetActivityFieldActive        GetActivityField = "active"
	GetActivityFieldCalories      GetActivityField = "calories"
	GetActivityFieldTotalCalories GetActivityField = "totalcalories"
	GetActivityFieldHRAverage     GetActivityField = "hr_average"
	GetActivityFieldHRMin         GetActivityField = "hr_min"
	GetActivityFieldHRMax         GetActivityField = "hr_max"
	GetActivityFieldHRZone0       GetActivityField = "hr_zone_0"
	GetActivityFieldHRZone1       GetActivityField = "hr_zone_1"
	GetActivityFieldHRZone2       GetActivityField = "hr_zone_2"
	GetActivityFieldHRZone3       GetActivityField = "hr_zone_3"
)

type MeasureGetMeasParams struct {
	MeasType   *MeasureType
	Category   *MeasureGroupCategory
	StartDate  *time.Time
	EndDate    *time.Time
	Offset     *int
	LastUpdate *time.Time
}

func (p *MeasureGetMeasParams) values() url.Values {
	if p == nil {
		return nil
	}

	v := make(url.Values)

	if p.MeasType != nil {
		v.Set("meastype", strconv.Itoa(int(*p.MeasType)))
	}
	if p.Category != nil {
		v.Set("category", strconv.Itoa(int(*p.Category)))
	}
	if p.StartDate != nil {
		v.Set("startdate", epoch(*p.StartDate))
	}
	if p.EndDate != nil {
		v.Set("enddate", epoch(*p.EndDate))
	}
	if p.Offset != nil {
		v.Set("offset", strconv.Itoa(*p.Offset))
	}
	if p.LastUpdate != nil {
		v.Set("lastupdate", epoch(*p.LastUpdate))
	}

	return v
}

type MeasureGetActivityParams struct {
	StartDateYMD *time.Time
	EndDateYMD   *time.Time
	Offset       *int
	DataFields   []GetActivityField
	LastUpdate   *time.Time
}

func (p *MeasureGetActivityParams) values() url.Values {
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
	if p.Offset != nil {
		v.Set("offset", strconv.Itoa(*p.Offset))
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

type measureService struct {
	client *Client
}

func (s *measureService) GetMeas(ctx context.Context, params *MeasureGetMeasParams) (MeasureGetMeasResponse, error) {
	const route = "/measure"

	body, err := s.client.request(ctx, route, "getmeas", params.values())
	if err != nil {
		return MeasureGetMeasResponse{}, err
	}
	return NewMeasureGetMeasResponse(body)
}

func (s *measureService) GetActivity(ctx context.Context, params *MeasureGetActivityParams) (MeasureGetActivityResponse, error) {
	const route = "/v2/measure"

	body, err := s.client.request(ctx, route, "getactivity", params.values())
	if err != nil {
		return MeasureGetActivityResponse{}, err
	}
	return NewMeasureGetActivityResponse(body)
}

func epoch(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

func ymd(t time.Time) string {
	return t.Format("2006-01-02")
}
