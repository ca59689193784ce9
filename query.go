package withings

import "math"

// GroupSource is anything the measure-group query can read groups from: a
// single group, a whole getmeas response, or an explicit slice.
type GroupSource interface {
	measureGroups() []MeasureGetMeasGroup
}

// MeasureGroups lets a caller pass a plain slice of groups as a GroupSource.
type MeasureGroups []MeasureGetMeasGroup

func (g MeasureGroups) measureGroups() []MeasureGetMeasGroup { return g }

func (g MeasureGetMeasGroup) measureGroups() []MeasureGetMeasGroup {
	return []MeasureGetMeasGroup{g}
}

func (r MeasureGetMeasResponse) measureGroups() []MeasureGetMeasGroup { return r.MeasureGrps }

// Filter sets. Declared as explicit literals so they are plain read-only
// package data; a nil filter passed to the query functions means ANY.
var (
	// The ANY and UNAMBIGUOUS sets include the Unknown members: a group whose
	// server-sent code degraded to Unknown still occurred, and must show up
	// when a caller asks for everything.
	MeasureTypesAny = []MeasureType{
		MeasureTypeUnknown,
		MeasureTypeWeight,
		MeasureTypeHeight,
		MeasureTypeFatFreeMass,
		MeasureTypeFatRatio,
		MeasureTypeFatMassWeight,
		MeasureTypeDiastolicBloodPressure,
		MeasureTypeSystolicBloodPressure,
		MeasureTypeHeartRate,
		MeasureTypeTemperature,
		MeasureTypeSPO2,
		MeasureTypeBodyTemperature,
		MeasureTypeSkinTemperature,
		MeasureTypeMuscleMass,
		MeasureTypeHydration,
		MeasureTypeBoneMass,
		MeasureTypePulseWaveVelocity,
	}

	GroupAttribsAny = []MeasureGroupAttrib{
		MeasureGroupAttribUnknown,
		MeasureGroupAttribDeviceEntryForUser,
		MeasureGroupAttribDeviceEntryForUserAmbiguous,
		MeasureGroupAttribManualUserEntry,
		MeasureGroupAttribManualUserDuringAccountCreation,
		MeasureGroupAttribMeasureAuto,
		MeasureGroupAttribMeasureUserConfirmed,
		MeasureGroupAttribSameAsDeviceEntryForUser,
	}

	// GroupAttribsAmbiguous holds the attributions where a reading may not
	// reliably belong to the intended user.
	GroupAttribsAmbiguous = []MeasureGroupAttrib{
		MeasureGroupAttribDeviceEntryForUserAmbiguous,
		MeasureGroupAttribManualUserDuringAccountCreation,
	}

	GroupAttribsUnambiguous = []MeasureGroupAttrib{
		MeasureGroupAttribUnknown,
		MeasureGroupAttribDeviceEntryForUser,
		MeasureGroupAttribManualUserEntry,
		MeasureGroupAttribMeasureAuto,
		MeasureGroupAttribMeasureUserConfirmed,
		MeasureGroupAttribSameAsDeviceEntryForUser,
	}
)

// IsAmbiguous reports whether the group's attribution means the reading may
// not reliably belong to the intended user.
func (g MeasureGetMeasGroup) IsAmbiguous() bool {
	return g.Attrib == MeasureGroupAttribDeviceEntryForUserAmbiguous ||
		g.Attrib == MeasureGroupAttribManualUserDuringAccountCreation
}

// Float is the physical quantity the measure encodes: Value × 10^Unit.
func (m MeasureGetMeasMeasure) Float() float64 {
	if m.Unit < 0 {
		return float64(m.Value) / math.Pow10(-m.Unit)
	}
	return float64(m.Value) * math.Pow10(m.Unit)
}

// QueryMeasureGroups returns the groups of src whose attribution is in
// withAttribs, each rebuilt with only the measures whose type is in
// withTypes. Groups failing the attribution filter are dropped; groups that
// pass it but end up with no matching measures are kept with an empty
// measures slice, so callers can still see that the group occurred. Input
// order is preserved. A nil filter means ANY.
func QueryMeasureGroups(src GroupSource, withTypes []MeasureType, withAttribs []MeasureGroupAttrib) []MeasureGetMeasGroup {
	typeSet := toSet(withTypes)
	attribSet := toSet(withAttribs)

	var groups []MeasureGetMeasGroup
	for _, group := range src.measureGroups() {
		if attribSet != nil {
			if _, ok := attribSet[group.Attrib]; !ok {
				continue
			}
		}

		measures := make([]MeasureGetMeasMeasure, 0, len(group.Measures))
		for _, measure := range group.Measures {
			if typeSet != nil {
				if _, ok := typeSet[measure.Type]; !ok {
					continue
				}
			}
			measures = append(measures, measure)
		}

		group.Measures = measures
		groups = append(groups, group)
	}
	return groups
}

// GetMeasureValue returns the scaled value of the first measure of the given
// type across all matching groups, in server order. It finds one
// representative value; it does not aggregate.
func GetMeasureValue(src GroupSource, withType MeasureType, withAttribs []MeasureGroupAttrib) (float64, bool) {
	for _, group := range QueryMeasureGroups(src, []MeasureType{withType}, withAttribs) {
		for _, measure := range group.Measures {
			return measure.Float(), true
		}
	}
	return 0, false
}

func toSet[E comparable](values []E) map[E]struct{} {
	if values == nil {
		return nil
	}
	set := make(map[E]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
