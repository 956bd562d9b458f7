package pipeline

import "math"

// Record timestamps use the export's fixed-offset layout.
const timeLayout = "2006-01-02 15:04:05 -0700"

// HKCategoryTypeIdentifier and HKQuantityTypeIdentifier are the same length,
// so a single fixed-width cut strips either prefix from a record type.
const typePrefixLen = len("HKCategoryTypeIdentifier")

const activityTypePrefix = "HKWorkoutActivityType"

// sleepAnalysisCodes are the category values whose timestamps get the 4-hour
// shift, so that sleep crossing midnight attributes to the night it started.
var sleepAnalysisCodes = map[string]struct{}{
	"HKCategoryValueSleepAnalysisInBed":             {},
	"HKCategoryValueSleepAnalysisAsleepCore":        {},
	"HKCategoryValueSleepAnalysisAsleepDeep":        {},
	"HKCategoryValueSleepAnalysisAwake":             {},
	"HKCategoryValueSleepAnalysisAsleepREM":         {},
	"HKCategoryValueSleepAnalysisAsleepUnspecified": {},
}

// asleepStageCodes are the sleep sub-categories whose value column is
// replaced with the elapsed seconds of the segment (unit "s"). In-bed, awake
// and unspecified segments are excluded.
var asleepStageCodes = map[string]struct{}{
	"HKCategoryValueSleepAnalysisAsleepCore": {},
	"HKCategoryValueSleepAnalysisAsleepDeep": {},
	"HKCategoryValueSleepAnalysisAsleepREM":  {},
}

// codedValueSentinels maps enum-only record values to the sentinel stored in
// the numeric value column. Declared as data so the mapping can be tested on
// its own rather than scattered through the flattener.
var codedValueSentinels = map[string]float64{
	"HKCategoryValueSleepAnalysisInBed":                            math.NaN(),
	"HKCategoryValueNotApplicable":                                 math.NaN(),
	"HKCategoryValueHeadphoneAudioExposureEventSevenDayLimit":      math.NaN(),
	"HKCategoryValueEnvironmentalAudioExposureEventMomentaryLimit": math.NaN(),
	"HKCategoryValueSleepAnalysisAsleepCore":                       math.NaN(),
	"HKCategoryValueSleepAnalysisAsleepDeep":                       math.NaN(),
	"HKCategoryValueSleepAnalysisAwake":                            math.NaN(),
	"HKCategoryValueSleepAnalysisAsleepREM":                        math.NaN(),
	"HKCategoryValueSleepAnalysisAsleepUnspecified":                math.NaN(),
	"HKCategoryValueAppleStandHourIdle":                            math.NaN(),
	"HKCategoryValueAppleStandHourStood":                           math.NaN(),
}

// Record types aggregated into daily health metrics.
const (
	typeRestingHeartRate  = "RestingHeartRate"
	typeActiveEnergy      = "ActiveEnergyBurned"
	typeBasalEnergy       = "BasalEnergyBurned"
	typeVO2Max            = "VO2Max"
	sleepStageCoreCode    = "HKCategoryValueSleepAnalysisAsleepCore"
	sleepStageDeepCode    = "HKCategoryValueSleepAnalysisAsleepDeep"
	sleepStageREMCode     = "HKCategoryValueSleepAnalysisAsleepREM"
	distanceWalkRunType   = "HKQuantityTypeIdentifierDistanceWalkingRunning"
	elevationAscendedKey  = "HKElevationAscended"
	activityStrength      = "TraditionalStrengthTraining"
	activityRunning       = "Running"
	activityHIIT          = "HighIntensityIntervalTraining"
	activityCoreTraining  = "CoreTraining"
	strengthUploadRelabel = "StrengthTraining"
)

func stripTypePrefix(s string) string {
	if len(s) <= typePrefixLen {
		return ""
	}
	return s[typePrefixLen:]
}
