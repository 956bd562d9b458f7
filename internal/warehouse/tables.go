package warehouse

import (
	"github.com/JonnyWalker81/healthsync/internal/models"
)

// DailyFactTable converts the daily fact table for upload.
func DailyFactTable(name string, facts []models.DailyFact) Table {
	columns := []Column{
		{"EndDate", TypeDate},
		{"Weekday", TypeString},
		{"CoreSleepHours", TypeFloat},
		{"DeepSleepHours", TypeFloat},
		{"REMSleepHours", TypeFloat},
		{"TotalSleepHours", TypeFloat},
		{"CoreSleepHoursNextNight", TypeFloat},
		{"DeepSleepHoursNextNight", TypeFloat},
		{"REMSleepHoursNextNight", TypeFloat},
		{"TotalSleepHoursNextNight", TypeFloat},
		{"AvgRestingHeartRateBPM", TypeFloat},
		{"ActiveCaloriesBurned", TypeFloat},
		{"BasalCaloriesBurned", TypeFloat},
		{"TotalCaloriesBurned", TypeFloat},
		{"StrengthTrainingMinutes", TypeInteger},
		{"RunningMinutes", TypeInteger},
		{"RunningMiles", TypeFloat},
		{"RunningMetersAscended", TypeFloat},
		{"HIITMinutes", TypeInteger},
		{"CoreTrainingMinutes", TypeInteger},
		{"TotalWorkoutMinutes", TypeInteger},
		{"WeekEndingDate", TypeDate},
		{"StrengthTrained", TypeInteger},
		{"Ran", TypeInteger},
		{"HIITTrained", TypeInteger},
		{"CoreTrained", TypeInteger},
		{"Exercised", TypeInteger},
	}

	rows := make([][]any, len(facts))
	for i, f := range facts {
		rows[i] = []any{
			f.EndDate,
			f.Weekday,
			f.CoreSleepHours.Ptr(),
			f.DeepSleepHours.Ptr(),
			f.REMSleepHours.Ptr(),
			f.TotalSleepHours.Ptr(),
			f.CoreSleepHoursNextNight.Ptr(),
			f.DeepSleepHoursNextNight.Ptr(),
			f.REMSleepHoursNextNight.Ptr(),
			f.TotalSleepHoursNextNight.Ptr(),
			f.AvgRestingHeartRateBPM.Ptr(),
			f.ActiveCaloriesBurned.Ptr(),
			f.BasalCaloriesBurned.Ptr(),
			f.TotalCaloriesBurned.Ptr(),
			f.StrengthTrainingMinutes,
			f.RunningMinutes,
			f.RunningMiles,
			f.RunningMetersAscended,
			f.HIITMinutes,
			f.CoreTrainingMinutes,
			f.TotalWorkoutMinutes,
			f.WeekEndingDate,
			f.StrengthTrained,
			f.Ran,
			f.HIITTrained,
			f.CoreTrained,
			f.Exercised,
		}
	}

	return Table{Name: name, Columns: columns, Rows: rows}
}

// GroupedWorkoutsTable converts the per-day activity duration sums.
func GroupedWorkoutsTable(name string, groups []models.WorkoutGroup) Table {
	columns := []Column{
		{"end_date", TypeDate},
		{"workout_activity_type", TypeString},
		{"duration", TypeInteger},
	}

	rows := make([][]any, len(groups))
	for i, g := range groups {
		rows[i] = []any{g.EndDate, g.ActivityType, g.Duration}
	}

	return Table{Name: name, Columns: columns, Rows: rows}
}

// VO2MaxTable converts the per-date VO2Max readings.
func VO2MaxTable(name string, readings []models.VO2MaxReading) Table {
	columns := []Column{
		{"end_date", TypeDate},
		{"value", TypeFloat},
	}

	rows := make([][]any, len(readings))
	for i, r := range readings {
		rows[i] = []any{r.EndDate, r.Value}
	}

	return Table{Name: name, Columns: columns, Rows: rows}
}

// SleepSummaryTable converts the weekly sleep five-number summaries.
func SleepSummaryTable(name string, summaries []models.WeeklySleepSummary) Table {
	columns := []Column{
		{"WeekEndingDate", TypeDate},
		{"Min", TypeFloat},
		{"Q1", TypeFloat},
		{"Median", TypeFloat},
		{"Q3", TypeFloat},
		{"Max", TypeFloat},
	}

	rows := make([][]any, len(summaries))
	for i, s := range summaries {
		rows[i] = []any{s.WeekEndingDate, s.Min, s.Q1, s.Median, s.Q3, s.Max}
	}

	return Table{Name: name, Columns: columns, Rows: rows}
}

// RegimenSummaryTable converts the regimen cohort five-number summaries.
func RegimenSummaryTable(name string, summaries []models.RegimenSummary) Table {
	columns := []Column{
		{"Min", TypeFloat},
		{"Q1", TypeFloat},
		{"Median", TypeFloat},
		{"Q3", TypeFloat},
		{"Max", TypeFloat},
		{"Regimen", TypeString},
	}

	rows := make([][]any, len(summaries))
	for i, s := range summaries {
		rows[i] = []any{s.Min, s.Q1, s.Median, s.Q3, s.Max, s.Regimen}
	}

	return Table{Name: name, Columns: columns, Rows: rows}
}
