package withings

import "time"

type UserGetDeviceDevice struct {
	Type     string
	Model    string
	Battery  string
	DeviceID string
	Timezone *time.Location
}

type UserGetDeviceResponse struct {
	Devices []UserGetDeviceDevice
}

// SleepSample is one point of a dense sleep series (heart rate, respiration
// rate, or snoring), reconstructed from the sparse epoch-keyed wire format.
type SleepSample struct {
	Timestamp time.Time
	Value     int
}

// SleepGetSerie is one sleep-state interval [Startdate, Enddate).
type SleepGetSerie struct {
	Startdate time.Time
	Enddate   time.Time
	State     SleepState
	HR        []SleepSample
	RR        []SleepSample
	Snoring   []SleepSample
}

type SleepGetResponse struct {
	Model  SleepModel
	Series []SleepGetSerie
}

type GetSleepSummaryData struct {
	RemSleepDuration   *int
	WakeupDuration     *int
	LightSleepDuration *int
	DeepSleepDuration  *int
	WakeupCount        *int
	DurationToSleep    *int
	DurationToWakeup   *int
	HRAverage          *int
	HRMin              *int
	HRMax              *int
	RRAverage          *int
	RRMin              *int
	RRMax              *int
	SleepScore         *int
}

type GetSleepSummarySerie struct {
	Timezone  *time.Location
	Model     SleepModel
	Startdate time.Time
	Enddate   time.Time
	Date      time.Time
	Modified  time.Time
	Data      GetSleepSummaryData
}

type SleepGetSummaryResponse struct {
	More   bool
	Offset int
	Series []GetSleepSummarySerie
}

// MeasureGetMeasMeasure is one reading: a fixed-point decimal encoded as an
// integer mantissa and a power-of-ten exponent.
type MeasureGetMeasMeasure struct {
	Type  MeasureType
	Unit  int
	Value int
}

// MeasureGetMeasGroup is one batch of readings taken together, for example a
// single weigh-in event.
type MeasureGetMeasGroup struct {
	Attrib   MeasureGroupAttrib
	Category MeasureGroupCategory
	Created  time.Time
	Date     time.Time
	DeviceID *string
	GrpID    int
	Measures []MeasureGetMeasMeasure
}

type MeasureGetMeasResponse struct {
	MeasureGrps []MeasureGetMeasGroup
	More        *bool
	Offset      *int
	Timezone    *time.Location
	UpdateTime  time.Time
}

// MeasureGetActivityActivity is one day of activity statistics. Each activity
// carries its own timezone: devices contributing to one response can live in
// different zones.
type MeasureGetActivityActivity struct {
	Date          time.Time
	Timezone      *time.Location
	DeviceID      *string
	Brand         int
	IsTracker     bool
	Steps         *int
	Distance      *float64
	Elevation     *float64
	Soft          *int
	Moderate      *int
	Intense       *int
	Active        *int
	Calories      *float64
	TotalCalories float64
	HRAverage     *int
	HRMin         *int
	HRMax         *int
	HRZone0       *int
	HRZone1       *int
	HRZone2       *int
	HRZone3       *int
}

type MeasureGetActivityResponse struct {
	Activities []MeasureGetActivityActivity
	More       bool
	Offset     int
}

type HeartBloodPressure struct {
	Diastole int
	Systole  int
}

type HeartListECG struct {
	SignalID int
	Afib     AfibClassification
}

// HeartListSerie is the metadata of one heart reading. BloodPressure is nil
// for devices that do not measure it; ECG is nil when no waveform was
// recorded.
type HeartListSerie struct {
	DeviceID      *string
	Model         HeartModel
	ECG           *HeartListECG
	BloodPressure *HeartBloodPressure
	HeartRate     int
	Timestamp     time.Time
}

type HeartListResponse struct {
	Series []HeartListSerie
	More   *bool
	Offset *int
}

// HeartGetResponse is a raw ECG recording. Signal preserves sample order.
type HeartGetResponse struct {
	Signal            []int
	SamplingFrequency int
	WearPosition      HeartWearPosition
}

type NotifyListProfile struct {
	Appli       NotifyAppli
	CallbackURL string
	Expires     time.Time
	Comment     *string
}

type NotifyListResponse struct {
	Profiles []NotifyListProfile
}

type NotifyGetResponse struct {
	Appli       NotifyAppli
	CallbackURL string
	Comment     *string
}
