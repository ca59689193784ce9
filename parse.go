package withings

import (
	"log/slog"
	"sort"
	"strconv"
	"time"
)

// parseSlice builds a nested collection element-wise in input order. A
// malformed element is logged and skipped so one bad item does not lose the
// rest of the page; required fields on the enclosing record still fail the
// whole parse.
func parseSlice[T any](raw any, what string, parse func(map[string]any) (T, error)) []T {
	if raw == nil {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		slog.Warn("expected a list of "+what, slog.Any("value", raw))
		return nil
	}
	out := make([]T, 0, len(items))
	for i, item := range items {
		m, err := asDict(item)
		if err == nil {
			var v T
			if v, err = parse(m); err == nil {
				out = append(out, v)
				continue
			}
		}
		slog.Warn("skipping malformed "+what, slog.Int("index", i), slog.Any("error", err))
	}
	return out
}

func NewUserGetDeviceDevice(data map[string]any) (UserGetDeviceDevice, error) {
	deviceType, err := asString(data["type"])
	if err != nil {
		return UserGetDeviceDevice{}, err
	}
	model, err := asString(data["model"])
	if err != nil {
		return UserGetDeviceDevice{}, err
	}
	battery, err := asString(data["battery"])
	if err != nil {
		return UserGetDeviceDevice{}, err
	}
	deviceID, err := asString(data["deviceid"])
	if err != nil {
		return UserGetDeviceDevice{}, err
	}
	timezone, err := asLocation(data["timezone"])
	if err != nil {
		return UserGetDeviceDevice{}, err
	}
	return UserGetDeviceDevice{
		Type:     deviceType,
		Model:    model,
		Battery:  battery,
		DeviceID: deviceID,
		Timezone: timezone,
	}, nil
}

func NewUserGetDeviceResponse(body map[string]any) (UserGetDeviceResponse, error) {
	return UserGetDeviceResponse{
		Devices: parseSlice(body["devices"], "device", NewUserGetDeviceDevice),
	}, nil
}

// newSleepSamples rebuilds a dense series from the sparse wire mapping of
// epoch-second strings to values, ordered by ascending timestamp.
func newSleepSamples(raw any, what string) []SleepSample {
	data := asDictOrNil(raw)
	if data == nil {
		return nil
	}
	samples := make([]SleepSample, 0, len(data))
	for key, value := range data {
		epoch, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			slog.Warn("skipping malformed "+what+" sample", slog.String("key", key))
			continue
		}
		v, err := asInt(value)
		if err != nil {
			slog.Warn("skipping malformed "+what+" sample", slog.String("key", key), slog.Any("error", err))
			continue
		}
		samples = append(samples, SleepSample{Timestamp: time.Unix(epoch, 0).UTC(), Value: v})
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].Timestamp.Before(samples[j].Timestamp) })
	return samples
}

func NewSleepGetSerie(data map[string]any) (SleepGetSerie, error) {
	startdate, err := asTime(data["startdate"])
	if err != nil {
		return SleepGetSerie{}, err
	}
	enddate, err := asTime(data["enddate"])
	if err != nil {
		return SleepGetSerie{}, err
	}
	state, err := asInt(data["state"])
	if err != nil {
		return SleepGetSerie{}, err
	}
	return SleepGetSerie{
		Startdate: startdate,
		Enddate:   enddate,
		State:     NewSleepState(state),
		HR:        newSleepSamples(data["hr"], "hr"),
		RR:        newSleepSamples(data["rr"], "rr"),
		Snoring:   newSleepSamples(data["snoring"], "snoring"),
	}, nil
}

func NewSleepGetResponse(body map[string]any) (SleepGetResponse, error) {
	model, err := asInt(body["model"])
	if err != nil {
		return SleepGetResponse{}, err
	}
	return SleepGetResponse{
		Model:  NewSleepModel(model),
		Series: parseSlice(body["series"], "sleep serie", NewSleepGetSerie),
	}, nil
}

func NewGetSleepSummaryData(data map[string]any) GetSleepSummaryData {
	return GetSleepSummaryData{
		RemSleepDuration:   asIntOrNil(data["remsleepduration"]),
		WakeupDuration:     asIntOrNil(data["wakeupduration"]),
		LightSleepDuration: asIntOrNil(data["lightsleepduration"]),
		DeepSleepDuration:  asIntOrNil(data["deepsleepduration"]),
		WakeupCount:        asIntOrNil(data["wakeupcount"]),
		DurationToSleep:    asIntOrNil(data["durationtosleep"]),
		DurationToWakeup:   asIntOrNil(data["durationtowakeup"]),
		HRAverage:          asIntOrNil(data["hr_average"]),
		HRMin:              asIntOrNil(data["hr_min"]),
		HRMax:              asIntOrNil(data["hr_max"]),
		RRAverage:          asIntOrNil(data["rr_average"]),
		RRMin:              asIntOrNil(data["rr_min"]),
		RRMax:              asIntOrNil(data["rr_max"]),
		SleepScore:         asIntOrNil(data["sleep_score"]),
	}
}

func NewGetSleepSummarySerie(data map[string]any) (GetSleepSummarySerie, error) {
	timezone, err := asLocation(data["timezone"])
	if err != nil {
		return GetSleepSummarySerie{}, err
	}
	model, err := asInt(data["model"])
	if err != nil {
		return GetSleepSummarySerie{}, err
	}
	startdate, err := asTime(data["startdate"])
	if err != nil {
		return GetSleepSummarySerie{}, err
	}
	enddate, err := asTime(data["enddate"])
	if err != nil {
		return GetSleepSummarySerie{}, err
	}
	date, err := asTime(data["date"])
	if err != nil {
		return GetSleepSummarySerie{}, err
	}
	modified, err := asTime(data["modified"])
	if err != nil {
		return GetSleepSummarySerie{}, err
	}
	summaryData, err := asDict(data["data"])
	if err != nil {
		return GetSleepSummarySerie{}, err
	}
	return GetSleepSummarySerie{
		Timezone:  timezone,
		Model:     NewSleepModel(model),
		Startdate: startdate.In(timezone),
		Enddate:   enddate.In(timezone),
		Date:      date.In(timezone),
		Modified:  modified.In(timezone),
		Data:      NewGetSleepSummaryData(summaryData),
	}, nil
}

func NewSleepGetSummaryResponse(body map[string]any) (SleepGetSummaryResponse, error) {
	more, err := asBool(body["more"])
	if err != nil {
		return SleepGetSummaryResponse{}, err
	}
	offset, err := asInt(body["offset"])
	if err != nil {
		return SleepGetSummaryResponse{}, err
	}
	return SleepGetSummaryResponse{
		More:   more,
		Offset: offset,
		Series: parseSlice(body["series"], "sleep summary serie", NewGetSleepSummarySerie),
	}, nil
}

func NewMeasureGetMeasMeasure(data map[string]any) (MeasureGetMeasMeasure, error) {
	measureType, err := asInt(data["type"])
	if err != nil {
		return MeasureGetMeasMeasure{}, err
	}
	unit, err := asInt(data["unit"])
	if err != nil {
		return MeasureGetMeasMeasure{}, err
	}
	value, err := asInt(data["value"])
	if err != nil {
		return MeasureGetMeasMeasure{}, err
	}
	return MeasureGetMeasMeasure{
		Type:  NewMeasureType(measureType),
		Unit:  unit,
		Value: value,
	}, nil
}

// NewMeasureGetMeasGroup parses one measure group. Timestamps are re-homed
// into the response timezone; they remain the same absolute instants.
func NewMeasureGetMeasGroup(data map[string]any, timezone *time.Location) (MeasureGetMeasGroup, error) {
	grpID, err := asInt(data["grpid"])
	if err != nil {
		return MeasureGetMeasGroup{}, err
	}
	attrib, err := asInt(data["attrib"])
	if err != nil {
		return MeasureGetMeasGroup{}, err
	}
	category, err := asInt(data["category"])
	if err != nil {
		return MeasureGetMeasGroup{}, err
	}
	created, err := asTime(data["created"])
	if err != nil {
		return MeasureGetMeasGroup{}, err
	}
	date, err := asTime(data["date"])
	if err != nil {
		return MeasureGetMeasGroup{}, err
	}
	return MeasureGetMeasGroup{
		GrpID:    grpID,
		Attrib:   NewMeasureGroupAttrib(attrib),
		Category: NewMeasureGroupCategory(category),
		Created:  created.In(timezone),
		Date:     date.In(timezone),
		DeviceID: asStringOrNil(data["deviceid"]),
		Measures: parseSlice(data["measures"], "measure", NewMeasureGetMeasMeasure),
	}, nil
}

func NewMeasureGetMeasResponse(body map[string]any) (MeasureGetMeasResponse, error) {
	timezone, err := asLocation(body["timezone"])
	if err != nil {
		return MeasureGetMeasResponse{}, err
	}
	updateTime, err := asTime(body["updatetime"])
	if err != nil {
		return MeasureGetMeasResponse{}, err
	}
	groups := parseSlice(body["measuregrps"], "measure group", func(m map[string]any) (MeasureGetMeasGroup, error) {
		return NewMeasureGetMeasGroup(m, timezone)
	})
	return MeasureGetMeasResponse{
		MeasureGrps: groups,
		More:        asBoolOrNil(body["more"]),
		Offset:      asIntOrNil(body["offset"]),
		Timezone:    timezone,
		UpdateTime:  updateTime.In(timezone),
	}, nil
}

func NewMeasureGetActivityActivity(data map[string]any) (MeasureGetActivityActivity, error) {
	timezone, err := asLocation(data["timezone"])
	if err != nil {
		return MeasureGetActivityActivity{}, err
	}
	date, err := asTime(data["date"])
	if err != nil {
		return MeasureGetActivityActivity{}, err
	}
	brand, err := asInt(data["brand"])
	if err != nil {
		return MeasureGetActivityActivity{}, err
	}
	isTracker, err := asBool(data["is_tracker"])
	if err != nil {
		return MeasureGetActivityActivity{}, err
	}
	totalCalories, err := asFloat(data["totalcalories"])
	if err != nil {
		return MeasureGetActivityActivity{}, err
	}
	return MeasureGetActivityActivity{
		Date:          date.In(timezone),
		Timezone:      timezone,
		DeviceID:      asStringOrNil(data["deviceid"]),
		Brand:         brand,
		IsTracker:     isTracker,
		Steps:         asIntOrNil(data["steps"]),
		Distance:      asFloatOrNil(data["distance"]),
		Elevation:     asFloatOrNil(data["elevation"]),
		Soft:          asIntOrNil(data["soft"]),
		Moderate:      asIntOrNil(data["moderate"]),
		Intense:       asIntOrNil(data["intense"]),
		Active:        asIntOrNil(data["active"]),
		Calories:      asFloatOrNil(data["calories"]),
		TotalCalories: totalCalories,
		HRAverage:     asIntOrNil(data["hr_average"]),
		HRMin:         asIntOrNil(data["hr_min"]),
		HRMax:         asIntOrNil(data["hr_max"]),
		HRZone0:       asIntOrNil(data["hr_zone_0"]),
		HRZone1:       asIntOrNil(data["hr_zone_1"]),
		HRZone2:       asIntOrNil(data["hr_zone_2"]),
		HRZone3:       asIntOrNil(data["hr_zone_3"]),
	}, nil
}

func NewMeasureGetActivityResponse(body map[string]any) (MeasureGetActivityResponse, error) {
	more, err := asBool(body["more"])
	if err != nil {
		return MeasureGetActivityResponse{}, err
	}
	offset, err := asInt(body["offset"])
	if err != nil {
		return MeasureGetActivityResponse{}, err
	}
	return MeasureGetActivityResponse{
		Activities: parseSlice(body["activities"], "activity", NewMeasureGetActivityActivity),
		More:       more,
		Offset:     offset,
	}, nil
}

func NewHeartListSerie(data map[string]any) (HeartListSerie, error) {
	model, err := asInt(data["model"])
	if err != nil {
		return HeartListSerie{}, err
	}
	heartRate, err := asInt(data["heart_rate"])
	if err != nil {
		return HeartListSerie{}, err
	}
	timestamp, err := asTime(data["timestamp"])
	if err != nil {
		return HeartListSerie{}, err
	}
	serie := HeartListSerie{
		DeviceID:  asStringOrNil(data["deviceid"]),
		Model:     NewHeartModel(model),
		HeartRate: heartRate,
		Timestamp: timestamp,
	}
	if ecg := asDictOrNil(data["ecg"]); ecg != nil {
		signalID, err := asInt(ecg["signalid"])
		if err != nil {
			return HeartListSerie{}, err
		}
		afib, err := asInt(ecg["afib"])
		if err != nil {
			return HeartListSerie{}, err
		}
		serie.ECG = &HeartListECG{SignalID: signalID, Afib: NewAfibClassification(afib)}
	}
	if bp := asDictOrNil(data["bloodpressure"]); bp != nil {
		diastole, err := asInt(bp["diastole"])
		if err != nil {
			return HeartListSerie{}, err
		}
		systole, err := asInt(bp["systole"])
		if err != nil {
			return HeartListSerie{}, err
		}
		serie.BloodPressure = &HeartBloodPressure{Diastole: diastole, Systole: systole}
	}
	return serie, nil
}

func NewHeartListResponse(body map[string]any) (HeartListResponse, error) {
	return HeartListResponse{
		Series: parseSlice(body["series"], "heart serie", NewHeartListSerie),
		More:   asBoolOrNil(body["more"]),
		Offset: asIntOrNil(body["offset"]),
	}, nil
}

func NewHeartGetResponse(body map[string]any) (HeartGetResponse, error) {
	samplingFrequency, err := asInt(body["sampling_frequency"])
	if err != nil {
		return HeartGetResponse{}, err
	}
	wearPosition, err := asInt(body["wearposition"])
	if err != nil {
		return HeartGetResponse{}, err
	}
	rawSignal, ok := body["signal"].([]any)
	if !ok {
		return HeartGetResponse{}, unexpectedType(body["signal"], "list of int")
	}
	signal := make([]int, 0, len(rawSignal))
	for _, sample := range rawSignal {
		v, err := asInt(sample)
		if err != nil {
			return HeartGetResponse{}, err
		}
		signal = append(signal, v)
	}
	return HeartGetResponse{
		Signal:            signal,
		SamplingFrequency: samplingFrequency,
		WearPosition:      NewHeartWearPosition(wearPosition),
	}, nil
}

func NewNotifyListProfile(data map[string]any) (NotifyListProfile, error) {
	appli, err := asInt(data["appli"])
	if err != nil {
		return NotifyListProfile{}, err
	}
	callbackURL, err := asString(data["callbackurl"])
	if err != nil {
		return NotifyListProfile{}, err
	}
	expires, err := asTime(data["expires"])
	if err != nil {
		return NotifyListProfile{}, err
	}
	return NotifyListProfile{
		Appli:       NewNotifyAppli(appli),
		CallbackURL: callbackURL,
		Expires:     expires,
		Comment:     asStringOrNil(data["comment"]),
	}, nil
}

func NewNotifyListResponse(body map[string]any) (NotifyListResponse, error) {
	return NotifyListResponse{
		Profiles: parseSlice(body["profiles"], "notify profile", NewNotifyListProfile),
	}, nil
}

func NewNotifyGetResponse(body map[string]any) (NotifyGetResponse, error) {
	appli, err := asInt(body["appli"])
	if err != nil {
		return NotifyGetResponse{}, err
	}
	callbackURL, err := asString(body["callbackurl"])
	if err != nil {
		return NotifyGetResponse{}, err
	}
	return NotifyGetResponse{
		Appli:       NewNotifyAppli(appli),
		CallbackURL: callbackURL,
		Comment:     asStringOrNil(body["comment"]),
	}, nil
}
