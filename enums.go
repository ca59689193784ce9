package withings

import (
	"fmt"
	"log/slog"
)

// unknownCode is the reserved sentinel for server codes this library does not
// recognize. Withings adds codes (new devices, new measure types) without
// notice; mapping them to an explicit unknown member keeps old clients
// working. The value is far outside anything the server uses.
const unknownCode = -999999

func enumOrUnknown[E ~int](name string, value int, names map[E]string, unknown E) E {
	if _, ok := names[E(value)]; ok {
		return E(value)
	}
	slog.Warn("unrecognized "+name+" code", slog.Int("value", value))
	return unknown
}

func enumString[E ~int](name string, value E, names map[E]string) string {
	if s, ok := names[value]; ok {
		return s
	}
	return fmt.Sprintf("%s(%d)", name, int(value))
}

// SleepModel identifies the device family a sleep serie was recorded with.
type SleepModel int

const (
	SleepModelUnknown      SleepModel = unknownCode
	SleepModelTracker      SleepModel = 16
	SleepModelSleepMonitor SleepModel = 32
)

var sleepModelNames = map[SleepModel]string{
	SleepModelUnknown:      "unknown",
	SleepModelTracker:      "tracker",
	SleepModelSleepMonitor: "sleep_monitor",
}

func NewSleepModel(value int) SleepModel {
	return enumOrUnknown("sleep model", value, sleepModelNames, SleepModelUnknown)
}

func (m SleepModel) String() string { return enumString("SleepModel", m, sleepModelNames) }

// SleepState tags one interval of a sleep serie.
type SleepState int

const (
	SleepStateUnknown SleepState = unknownCode
	SleepStateAwake   SleepState = 0
	SleepStateLight   SleepState = 1
	SleepStateDeep    SleepState = 2
	SleepStateREM     SleepState = 3
)

var sleepStateNames = map[SleepState]string{
	SleepStateUnknown: "unknown",
	SleepStateAwake:   "awake",
	SleepStateLight:   "light",
	SleepStateDeep:    "deep",
	SleepStateREM:     "rem",
}

func NewSleepState(value int) SleepState {
	return enumOrUnknown("sleep state", value, sleepStateNames, SleepStateUnknown)
}

func (s SleepState) String() string { return enumString("SleepState", s, sleepStateNames) }

// MeasureGroupAttrib records who or what captured a measure group, and how
// reliably it is attributed to the user.
type MeasureGroupAttrib int

const (
	MeasureGroupAttribUnknown                         MeasureGroupAttrib = unknownCode
	MeasureGroupAttribDeviceEntryForUser              MeasureGroupAttrib = 0
	MeasureGroupAttribDeviceEntryForUserAmbiguous     MeasureGroupAttrib = 1
	MeasureGroupAttribManualUserEntry                 MeasureGroupAttrib = 2
	MeasureGroupAttribManualUserDuringAccountCreation MeasureGroupAttrib = 4
	MeasureGroupAttribMeasureAuto                     MeasureGroupAttrib = 5
	MeasureGroupAttribMeasureUserConfirmed            MeasureGroupAttrib = 7
	MeasureGroupAttribSameAsDeviceEntryForUser        MeasureGroupAttrib = 8
)

var measureGroupAttribNames = map[MeasureGroupAttrib]string{
	MeasureGroupAttribUnknown:                         "unknown",
	MeasureGroupAttribDeviceEntryForUser:              "device_entry_for_user",
	MeasureGroupAttribDeviceEntryForUserAmbiguous:     "device_entry_for_user_ambiguous",
	MeasureGroupAttribManualUserEntry:                 "manual_user_entry",
	MeasureGroupAttribManualUserDuringAccountCreation: "manual_user_during_account_creation",
	MeasureGroupAttribMeasureAuto:                     "measure_auto",
	MeasureGroupAttribMeasureUserConfirmed:            "measure_user_confirmed",
	MeasureGroupAttribSameAsDeviceEntryForUser:        "same_as_device_entry_for_user",
}

func NewMeasureGroupAttrib(value int) MeasureGroupAttrib {
	return enumOrUnknown("measure group attrib", value, measureGroupAttribNames, MeasureGroupAttribUnknown)
}

func (a MeasureGroupAttrib) String() string {
	return enumString("MeasureGroupAttrib", a, measureGroupAttribNames)
}

// MeasureGroupCategory distinguishes real measurements from user-set targets.
type MeasureGroupCategory int

const (
	MeasureGroupCategoryUnknown        MeasureGroupCategory = unknownCode
	MeasureGroupCategoryReal           MeasureGroupCategory = 1
	MeasureGroupCategoryUserObjectives MeasureGroupCategory = 2
)

var measureGroupCategoryNames = map[MeasureGroupCategory]string{
	MeasureGroupCategoryUnknown:        "unknown",
	MeasureGroupCategoryReal:           "real",
	MeasureGroupCategoryUserObjectives: "user_objectives",
}

func NewMeasureGroupCategory(value int) MeasureGroupCategory {
	return enumOrUnknown("measure group category", value, measureGroupCategoryNames, MeasureGroupCategoryUnknown)
}

func (c MeasureGroupCategory) String() string {
	return enumString("MeasureGroupCategory", c, measureGroupCategoryNames)
}

// MeasureType is the kind of reading inside a measure group.
type MeasureType int

const (
	MeasureTypeUnknown                MeasureType = unknownCode
	MeasureTypeWeight                 MeasureType = 1
	MeasureTypeHeight                 MeasureType = 4
	MeasureTypeFatFreeMass            MeasureType = 5
	MeasureTypeFatRatio               MeasureType = 6
	MeasureTypeFatMassWeight          MeasureType = 8
	MeasureTypeDiastolicBloodPressure MeasureType = 9
	MeasureTypeSystolicBloodPressure  MeasureType = 10
	MeasureTypeHeartRate              MeasureType = 11
	MeasureTypeTemperature            MeasureType = 12
	MeasureTypeSPO2                   MeasureType = 54
	MeasureTypeBodyTemperature        MeasureType = 71
	MeasureTypeSkinTemperature        MeasureType = 73
	MeasureTypeMuscleMass             MeasureType = 76
	MeasureTypeHydration              MeasureType = 77
	MeasureTypeBoneMass               MeasureType = 88
	MeasureTypePulseWaveVelocity      MeasureType = 91
)

var measureTypeNames = map[MeasureType]string{
	MeasureTypeUnknown:                "unknown",
	MeasureTypeWeight:                 "weight",
	MeasureTypeHeight:                 "height",
	MeasureTypeFatFreeMass:            "fat_free_mass",
	MeasureTypeFatRatio:               "fat_ratio",
	MeasureTypeFatMassWeight:          "fat_mass_weight",
	MeasureTypeDiastolicBloodPressure: "diastolic_blood_pressure",
	MeasureTypeSystolicBloodPressure:  "systolic_blood_pressure",
	MeasureTypeHeartRate:              "heart_rate",
	MeasureTypeTemperature:            "temperature",
	MeasureTypeSPO2:                   "spo2",
	MeasureTypeBodyTemperature:        "body_temperature",
	MeasureTypeSkinTemperature:        "skin_temperature",
	MeasureTypeMuscleMass:             "muscle_mass",
	MeasureTypeHydration:              "hydration",
	MeasureTypeBoneMass:               "bone_mass",
	MeasureTypePulseWaveVelocity:      "pulse_wave_velocity",
}

func NewMeasureType(value int) MeasureType {
	return enumOrUnknown("measure type", value, measureTypeNames, MeasureTypeUnknown)
}

func (t MeasureType) String() string { return enumString("MeasureType", t, measureTypeNames) }

// NotifyAppli selects the data category a notification subscription covers.
type NotifyAppli int

const (
	NotifyAppliUnknown     NotifyAppli = unknownCode
	NotifyAppliWeight      NotifyAppli = 1
	NotifyAppliCirculatory NotifyAppli = 4
	NotifyAppliActivity    NotifyAppli = 16
	NotifyAppliSleep       NotifyAppli = 44
	NotifyAppliUser        NotifyAppli = 46
	NotifyAppliBedIn       NotifyAppli = 50
	NotifyAppliBedOut      NotifyAppli = 51
)

var notifyAppliNames = map[NotifyAppli]string{
	NotifyAppliUnknown:     "unknown",
	NotifyAppliWeight:      "weight",
	NotifyAppliCirculatory: "circulatory",
	NotifyAppliActivity:    "activity",
	NotifyAppliSleep:       "sleep",
	NotifyAppliUser:        "user",
	NotifyAppliBedIn:       "bed_in",
	NotifyAppliBedOut:      "bed_out",
}

func NewNotifyAppli(value int) NotifyAppli {
	return enumOrUnknown("notify appli", value, notifyAppliNames, NotifyAppliUnknown)
}

func (a NotifyAppli) String() string { return enumString("NotifyAppli", a, notifyAppliNames) }

// HeartModel identifies the device that produced a heart reading.
type HeartModel int

const (
	HeartModelUnknown HeartModel = unknownCode
	HeartModelBPMCore HeartModel = 44
	HeartModelMoveECG HeartModel = 91
)

var heartModelNames = map[HeartModel]string{
	HeartModelUnknown: "unknown",
	HeartModelBPMCore: "bpm_core",
	HeartModelMoveECG: "move_ecg",
}

func NewHeartModel(value int) HeartModel {
	return enumOrUnknown("heart model", value, heartModelNames, HeartModelUnknown)
}

func (m HeartModel) String() string { return enumString("HeartModel", m, heartModelNames) }

// AfibClassification is the atrial fibrillation result attached to an ECG.
type AfibClassification int

const (
	AfibClassificationUnknown      AfibClassification = unknownCode
	AfibClassificationNegative     AfibClassification = 0
	AfibClassificationPositive     AfibClassification = 1
	AfibClassificationInconclusive AfibClassification = 2
)

var afibClassificationNames = map[AfibClassification]string{
	AfibClassificationUnknown:      "unknown",
	AfibClassificationNegative:     "negative",
	AfibClassificationPositive:     "positive",
	AfibClassificationInconclusive: "inconclusive",
}

func NewAfibClassification(value int) AfibClassification {
	return enumOrUnknown("afib classification", value, afibClassificationNames, AfibClassificationUnknown)
}

func (c AfibClassification) String() string {
	return enumString("AfibClassification", c, afibClassificationNames)
}

// HeartWearPosition is where the device was worn while recording an ECG.
type HeartWearPosition int

const (
	HeartWearPositionUnknown    HeartWearPosition = unknownCode
	HeartWearPositionRightWrist HeartWearPosition = 0
	HeartWearPositionLeftWrist  HeartWearPosition = 1
	HeartWearPositionRightArm   HeartWearPosition = 2
	HeartWearPositionLeftArm    HeartWearPosition = 3
	HeartWearPositionRightFoot  HeartWearPosition = 4
	HeartWearPositionLeftFoot   HeartWearPosition = 5
)

var heartWearPositionNames = map[HeartWearPosition]string{
	HeartWearPositionUnknown:    "unknown",
	HeartWearPositionRightWrist: "right_wrist",
	HeartWearPositionLeftWrist:  "left_wrist",
	HeartWearPositionRightArm:   "right_arm",
	HeartWearPositionLeftArm:    "left_arm",
	HeartWearPositionRightFoot:  "right_foot",
	HeartWearPositionLeftFoot:   "left_foot",
}

func NewHeartWearPosition(value int) HeartWearPosition {
	return enumOrUnknown("heart wear position", value, heartWearPositionNames, HeartWearPositionUnknown)
}

func (p HeartWearPosition) String() string {
	return enumString("HeartWearPosition", p, heartWearPositionNames)
}
