package models

import "time"

// Export holds the decoded contents of one health export archive.
type Export struct {
	Records  []RawRecord
	Workouts []RawWorkout
}

// RawRecord is one point-in-time health observation as it appears in the
// export XML. All attributes are kept as strings; parsing happens in the
// pipeline so a malformed value fails the stage, not the decode.
type RawRecord struct {
	Type          string `xml:"type,attr"`
	SourceName    string `xml:"sourceName,attr"`
	SourceVersion string `xml:"sourceVersion,attr"`
	Unit          string `xml:"unit,attr"`
	Value         string `xml:"value,attr"`
	StartDate     string `xml:"startDate,attr"`
	EndDate       string `xml:"endDate,attr"`
}

// RawStatistic is a summed quantity nested inside a workout element.
type RawStatistic struct {
	Type string `xml:"type,attr"`
	Sum  string `xml:"sum,attr"`
	Unit string `xml:"unit,attr"`
}

// RawMetadataEntry is a key/value pair nested inside a workout element.
// Values are sometimes "<number> <unit>" strings.
type RawMetadataEntry struct {
	Key   string `xml:"key,attr"`
	Value string `xml:"value,attr"`
}

// RawWorkout is one workout session as it appears in the export XML.
type RawWorkout struct {
	ActivityType string             `xml:"workoutActivityType,attr"`
	Duration     string             `xml:"duration,attr"`
	DurationUnit string             `xml:"durationUnit,attr"`
	StartDate    string             `xml:"startDate,attr"`
	EndDate      string             `xml:"endDate,attr"`
	Statistics   []RawStatistic     `xml:"WorkoutStatistics"`
	Metadata     []RawMetadataEntry `xml:"MetadataEntry"`
}

// HealthRecord is one normalized health observation.
//
// Value is NaN for enum-only category codes; for the asleep sub-categories
// (Core, Deep, REM) it holds the elapsed seconds of the sleep segment and
// Unit is "s". CodedValue preserves the original enumerated value so later
// stages can filter by category.
type HealthRecord struct {
	Type          string
	Unit          string
	Value         float64
	CodedValue    string
	StartDatetime time.Time
	EndDatetime   time.Time
	TimeElapsed   time.Duration
	StartDate     time.Time
	EndDate       time.Time
}

// WorkoutRecord is one normalized workout session. Distance and elevation
// default to 0 when the source never reported them.
type WorkoutRecord struct {
	ActivityType           string
	Duration               int
	DurationUnit           string
	DistanceWalkingRunning float64
	DistanceUnit           string
	ElevationAscended      float64
	ElevationUnit          string
	StartDatetime          time.Time
	EndDatetime            time.Time
	StartDate              time.Time
	EndDate                time.Time
}

// DailyFact is one row of the daily fact table: every metric observed on a
// single calendar day, plus derived totals and indicators. Sleep and calorie
// metrics are NullFloat because a day with no matching records has no value,
// which is not the same as zero; workout metrics are zero-filled.
type DailyFact struct {
	EndDate                  time.Time
	Weekday                  string
	CoreSleepHours           NullFloat
	DeepSleepHours           NullFloat
	REMSleepHours            NullFloat
	TotalSleepHours          NullFloat
	CoreSleepHoursNextNight  NullFloat
	DeepSleepHoursNextNight  NullFloat
	REMSleepHoursNextNight   NullFloat
	TotalSleepHoursNextNight NullFloat
	AvgRestingHeartRateBPM   NullFloat
	ActiveCaloriesBurned     NullFloat
	BasalCaloriesBurned      NullFloat
	TotalCaloriesBurned      NullFloat
	StrengthTrainingMinutes  int
	RunningMinutes           int
	RunningMiles             float64
	RunningMetersAscended    float64
	HIITMinutes              int
	CoreTrainingMinutes      int
	TotalWorkoutMinutes      int
	WeekEndingDate           time.Time
	StrengthTrained          int
	Ran                      int
	HIITTrained              int
	CoreTrained              int
	Exercised                int
}

// WorkoutGroup is total workout minutes for one activity type on one day.
type WorkoutGroup struct {
	EndDate      time.Time
	ActivityType string
	Duration     int
}

// VO2MaxReading is one VO2Max observation keyed by its calendar day.
type VO2MaxReading struct {
	EndDate time.Time
	Value   float64
}

// WeeklySleepSummary is the five-number summary of nightly sleep hours for
// one week, keyed by its week-ending Sunday.
type WeeklySleepSummary struct {
	WeekEndingDate time.Time
	Min            float64
	Q1             float64
	Median         float64
	Q3             float64
	Max            float64
}

// RegimenSummary is the five-number summary of strength-training minutes for
// one training-regimen cohort ("A" before the cutover date, "B" after).
type RegimenSummary struct {
	Min     float64
	Q1      float64
	Median  float64
	Q3      float64
	Max     float64
	Regimen string
}
