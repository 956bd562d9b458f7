package pipeline

import (
	"math"
	"sort"
	"time"

	"github.com/JonnyWalker81/healthsync/internal/logger"
	"github.com/JonnyWalker81/healthsync/internal/models"
)

// weekdayNames follows the Monday=0..Sunday=6 convention used throughout the
// aggregation (keep in sync with weekdayIndex).
var weekdayNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// reportingStart cuts the fact table to the current reporting window.
var reportingStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// BuildDailyFacts joins the normalized health and workout tables into one
// fact row per observed calendar day.
//
// The date spine holds only days with at least one health record; gaps are
// not filled, so the next-night columns of a day directly before a gap refer
// to the next observed day rather than the literal next night.
func (p *Pipeline) BuildDailyFacts(health []models.HealthRecord, workouts []models.WorkoutRecord) []models.DailyFact {
	spine := distinctEndDates(health)
	p.log.Info("building daily facts", logger.Int("days", len(spine)))

	coreSleep := sumValueByDate(health, matchCodedValue(sleepStageCoreCode))
	deepSleep := sumValueByDate(health, matchCodedValue(sleepStageDeepCode))
	remSleep := sumValueByDate(health, matchCodedValue(sleepStageREMCode))
	restingHR := sumValueByDate(health, matchType(typeRestingHeartRate))
	activeEnergy := sumValueByDate(health, matchType(typeActiveEnergy))
	basalEnergy := sumValueByDate(health, matchType(typeBasalEnergy))
	activity := groupWorkoutsByDay(workouts)

	facts := make([]models.DailyFact, len(spine))
	for i, date := range spine {
		f := &facts[i]
		weekday := weekdayIndex(date)

		f.EndDate = date
		f.Weekday = weekdayNames[weekday]
		f.WeekEndingDate = date.AddDate(0, 0, 6-weekday)

		f.CoreSleepHours = secondsToHours(coreSleep[date])
		f.DeepSleepHours = secondsToHours(deepSleep[date])
		f.REMSleepHours = secondsToHours(remSleep[date])
		f.TotalSleepHours = models.AddNullFloats(f.CoreSleepHours, f.DeepSleepHours, f.REMSleepHours)

		f.AvgRestingHeartRateBPM = restingHR[date].null()
		f.ActiveCaloriesBurned = roundWhole(activeEnergy[date].null())
		f.BasalCaloriesBurned = roundWhole(basalEnergy[date].null())
		f.TotalCaloriesBurned = models.AddNullFloats(f.ActiveCaloriesBurned, f.BasalCaloriesBurned)

		f.StrengthTrainingMinutes = activity[dayActivity{activityStrength, date}].minutes
		f.RunningMinutes = activity[dayActivity{activityRunning, date}].minutes
		f.HIITMinutes = activity[dayActivity{activityHIIT, date}].minutes
		f.CoreTrainingMinutes = activity[dayActivity{activityCoreTraining, date}].minutes
		f.RunningMiles = activity[dayActivity{activityRunning, date}].distance
		f.RunningMetersAscended = activity[dayActivity{activityRunning, date}].elevation

		f.TotalWorkoutMinutes = f.StrengthTrainingMinutes + f.RunningMinutes +
			f.CoreTrainingMinutes + f.HIITMinutes
		f.StrengthTrained = indicator(f.StrengthTrainingMinutes)
		f.Ran = indicator(f.RunningMinutes)
		f.HIITTrained = indicator(f.HIITMinutes)
		f.CoreTrained = indicator(f.CoreTrainingMinutes)
		f.Exercised = indicator(f.TotalWorkoutMinutes)
	}

	// Next-night columns shift sleep metrics one spine position earlier; the
	// last day has nothing to shift in and stays missing.
	for i := 0; i+1 < len(facts); i++ {
		facts[i].CoreSleepHoursNextNight = facts[i+1].CoreSleepHours
		facts[i].DeepSleepHoursNextNight = facts[i+1].DeepSleepHours
		facts[i].REMSleepHoursNextNight = facts[i+1].REMSleepHours
		facts[i].TotalSleepHoursNextNight = facts[i+1].TotalSleepHours
	}

	filtered := facts[:0:0]
	for _, f := range facts {
		if !f.EndDate.Before(reportingStart) {
			filtered = append(filtered, f)
		}
	}

	p.log.Info("built daily facts", logger.Int("rows", len(filtered)))
	return filtered
}

// distinctEndDates returns the sorted set of distinct end dates.
func distinctEndDates(health []models.HealthRecord) []time.Time {
	seen := make(map[time.Time]struct{})
	var dates []time.Time
	for _, r := range health {
		if _, ok := seen[r.EndDate]; ok {
			continue
		}
		seen[r.EndDate] = struct{}{}
		dates = append(dates, r.EndDate)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// dateSum accumulates one metric for one day. seen distinguishes "no
// matching records" from "records summing to zero".
type dateSum struct {
	total float64
	seen  bool
}

func (s dateSum) null() models.NullFloat {
	if !s.seen {
		return models.NullFloat{}
	}
	return models.Float(s.total)
}

// sumValueByDate sums record values per end date over the rows match keeps.
// NaN values (enum-only rows) do not contribute to the sum but still mark
// the day as seen.
func sumValueByDate(health []models.HealthRecord, match func(models.HealthRecord) bool) map[time.Time]dateSum {
	sums := make(map[time.Time]dateSum)
	for _, r := range health {
		if !match(r) {
			continue
		}
		entry := sums[r.EndDate]
		entry.seen = true
		if !math.IsNaN(r.Value) {
			entry.total += r.Value
		}
		sums[r.EndDate] = entry
	}
	return sums
}

func matchCodedValue(code string) func(models.HealthRecord) bool {
	return func(r models.HealthRecord) bool { return r.CodedValue == code }
}

func matchType(typ string) func(models.HealthRecord) bool {
	return func(r models.HealthRecord) bool { return r.Type == typ }
}

// dayActivity keys workout totals by activity type and calendar day.
type dayActivity struct {
	activity string
	date     time.Time
}

type workoutTotals struct {
	minutes   int
	distance  float64
	elevation float64
}

// groupWorkoutsByDay sums duration, distance and elevation per activity type
// and day. An activity type with no sessions at all simply has no entries,
// which the fact builder reads back as zeroes.
func groupWorkoutsByDay(workouts []models.WorkoutRecord) map[dayActivity]workoutTotals {
	totals := make(map[dayActivity]workoutTotals)
	for _, w := range workouts {
		key := dayActivity{w.ActivityType, w.EndDate}
		entry := totals[key]
		entry.minutes += w.Duration
		entry.distance += w.DistanceWalkingRunning
		entry.elevation += w.ElevationAscended
		totals[key] = entry
	}
	return totals
}

// secondsToHours converts a summed sleep duration to hours, one decimal.
func secondsToHours(s dateSum) models.NullFloat {
	if !s.seen {
		return models.NullFloat{}
	}
	return models.Float(round1(s.total / 3600))
}

// roundWhole rounds a present value to a whole number.
func roundWhole(n models.NullFloat) models.NullFloat {
	if !n.Valid {
		return n
	}
	return models.Float(math.Round(n.Value))
}

func indicator(minutes int) int {
	if minutes > 0 {
		return 1
	}
	return 0
}
