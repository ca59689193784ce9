package withings

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

// fakeRequester records the last call and replays a canned envelope.
type fakeRequester struct {
	resp any
	err  error

	gotPath   string
	gotParams url.Values
}

func (f *fakeRequester) Request(_ context.Context, path string, params url.Values) (any, error) {
	f.gotPath = path
	f.gotParams = params
	return f.resp, f.err
}

func fakeEnvelope(t *testing.T, raw string) any {
	t.Helper()
	var data any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return data
}

func TestClientUserGetDevice(t *testing.T) {
	t.Parallel()

	fake := &fakeRequester{resp: fakeEnvelope(t, `{
		"status": 0,
		"body": {
			"devices": [
				{"type": "Scale", "model": "Body+", "battery": "high", "deviceid": "abc", "timezone": "UTC"}
			]
		}
	}`)}
	client := New(nil, WithRequester(fake))

	resp, err := client.User.GetDevice(context.Background())
	if err != nil {
		t.Fatalf("GetDevice() error = %v", err)
	}
	if fake.gotPath != "/v2/user" {
		t.Errorf("path = %q, want /v2/user", fake.gotPath)
	}
	if got := fake.gotParams.Get("action"); got != "getdevice" {
		t.Errorf("action = %q, want getdevice", got)
	}
	if len(resp.Devices) != 1 || resp.Devices[0].DeviceID != "abc" {
		t.Errorf("devices = %+v", resp.Devices)
	}
}

func TestClientMeasureGetMeas(t *testing.T) {
	t.Parallel()

	fake := &fakeRequester{resp: fakeEnvelope(t, `{
		"status": 0,
		"body": {
			"updatetime": 1409596058,
			"timezone": "UTC",
			"measuregrps": [
				{
					"grpid": 1, "attrib": 0, "category": 1,
					"date": 1387251958, "created": 1387251958,
					"measures": [{"value": 860, "type": 1, "unit": -1}]
				}
			]
		}
	}`)}
	client := New(nil, WithRequester(fake))

	start := time.Unix(1387000000, 0)
	end := time.Unix(1388000000, 0)
	measType := MeasureTypeWeight
	resp, err := client.Measure.GetMeas(context.Background(), &MeasureGetMeasParams{
		MeasType:  &measType,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		t.Fatalf("GetMeas() error = %v", err)
	}

	if fake.gotPath != "/measure" {
		t.Errorf("path = %q, want /measure", fake.gotPath)
	}
	wantParams := url.Values{
		"action":    {"getmeas"},
		"meastype":  {"1"},
		"startdate": {"1387000000"},
		"enddate":   {"1388000000"},
	}
	if diff := cmp.Diff(wantParams, fake.gotParams); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}

	weight, ok := GetMeasureValue(resp, MeasureTypeWeight, nil)
	if !ok || weight != 86.0 {
		t.Errorf("weight = (%v, %v), want (86.0, true)", weight, ok)
	}
}

func TestClientStatusError(t *testing.T) {
	t.Parallel()

	fake := &fakeRequester{resp: fakeEnvelope(t, `{"status": 401}`)}
	client := New(nil, WithRequester(fake))

	_, err := client.Sleep.Get(context.Background(), nil)
	var target *AuthFailedError
	if !errors.As(err, &target) {
		t.Fatalf("error = %T (%v), want *AuthFailedError", err, err)
	}
	if target.Status != 401 {
		t.Errorf("Status = %d, want 401", target.Status)
	}
}

func TestClientTransportError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("connection refused")
	fake := &fakeRequester{err: wantErr}
	client := New(nil, WithRequester(fake))

	_, err := client.Heart.List(context.Background(), nil)
	if !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want %v", err, wantErr)
	}
}

func TestClientNotifySubscribe(t *testing.T) {
	t.Parallel()

	fake := &fakeRequester{resp: fakeEnvelope(t, `{"status": 0}`)}
	client := New(nil, WithRequester(fake))

	err := client.Notify.Subscribe(context.Background(), "https://example.com/hook", NotifyAppliWeight, "scale hook")
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if fake.gotPath != "/notify" {
		t.Errorf("path = %q, want /notify", fake.gotPath)
	}
	wantParams := url.Values{
		"action":      {"subscribe"},
		"callbackurl": {"https://example.com/hook"},
		"appli":       {"1"},
		"comment":     {"scale hook"},
	}
	if diff := cmp.Diff(wantParams, fake.gotParams); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestClientHeartGet(t *testing.T) {
	t.Parallel()

	fake := &fakeRequester{resp: fakeEnvelope(t, `{
		"status": 0,
		"body": {"signal": [1, 2, 3], "sampling_frequency": 300, "wearposition": 2}
	}`)}
	client := New(nil, WithRequester(fake))

	resp, err := client.Heart.Get(context.Background(), 900)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got := fake.gotParams.Get("signalid"); got != "900" {
		t.Errorf("signalid = %q, want 900", got)
	}
	if got := fake.gotParams.Get("action"); got != "get" {
		t.Errorf("action = %q, want get", got)
	}
	if resp.WearPosition != HeartWearPositionRightArm || len(resp.Signal) != 3 {
		t.Errorf("response = %+v", resp)
	}
}

func TestParamsValues(t *testing.T) {
	t.Parallel()

	start := time.Unix(1540000000, 0).UTC()
	end := time.Unix(1540100000, 0).UTC()
	offset := 128
	lastUpdate := time.Unix(1540200000, 0).UTC()

	tests := []struct {
		name   string
		params interface{ values() url.Values }
		want   url.Values
	}{
		{
			name:   "nil getmeas params",
			params: (*MeasureGetMeasParams)(nil),
			want:   nil,
		},
		{
			name: "getactivity params",
			params: &MeasureGetActivityParams{
				StartDateYMD: &start,
				EndDateYMD:   &end,
				Offset:       &offset,
				DataFields:   []GetActivityField{GetActivityFieldSteps, GetActivityFieldCalories},
			},
			want: url.Values{
				"startdateymd": {start.Format("2006-01-02")},
				"enddateymd":   {end.Format("2006-01-02")},
				"offset":       {"128"},
				"data_fields":  {"steps,calories"},
			},
		},
		{
			name: "sleep get params",
			params: &SleepGetParams{
				StartDate:  &start,
				EndDate:    &end,
				DataFields: []GetSleepField{GetSleepFieldHR, GetSleepFieldRR, GetSleepFieldSnoring},
			},
			want: url.Values{
				"startdate":   {"1540000000"},
				"enddate":     {"1540100000"},
				"data_fields": {"hr,rr,snoring"},
			},
		},
		{
			name: "sleep summary params",
			params: &SleepGetSummaryParams{
				StartDateYMD: &start,
				LastUpdate:   &lastUpdate,
				DataFields:   []GetSleepSummaryField{GetSleepSummaryFieldSleepScore},
			},
			want: url.Values{
				"startdateymd": {start.Format("2006-01-02")},
				"lastupdate":   {"1540200000"},
				"data_fields":  {"sleep_score"},
			},
		},
		{
			name:   "heart list params",
			params: &HeartListParams{StartDate: &start, Offset: &offset},
			want: url.Values{
				"startdate": {"1540000000"},
				"offset":    {"128"},
			},
		},
		{
			name: "notify update params",
			params: &NotifyUpdateParams{
				CallbackURL:    "https://old.example.com",
				Appli:          NotifyAppliWeight,
				NewCallbackURL: "https://new.example.com",
			},
			want: url.Values{
				"callbackurl":     {"https://old.example.com"},
				"appli":           {"1"},
				"new_callbackurl": {"https://new.example.com"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, tt.params.values()); diff != "" {
				t.Errorf("values() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
