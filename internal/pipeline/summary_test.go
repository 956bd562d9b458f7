package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/healthsync/internal/models"
)

func factOn(date time.Time, strengthMinutes int, totalSleep models.NullFloat) models.DailyFact {
	weekday := weekdayIndex(date)
	return models.DailyFact{
		EndDate:                 date,
		WeekEndingDate:          date.AddDate(0, 0, 6-weekday),
		StrengthTrainingMinutes: strengthMinutes,
		TotalSleepHours:         totalSleep,
	}
}

func TestQuantileLinearInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}

	require.Equal(t, 1.75, quantile(sorted, 0.25))
	require.Equal(t, 2.5, quantile(sorted, 0.5))
	require.Equal(t, 3.25, quantile(sorted, 0.75))
	require.Equal(t, 1.0, quantile(sorted, 0))
	require.Equal(t, 4.0, quantile(sorted, 1))
}

func TestSummarizeWeeklySleep(t *testing.T) {
	p := newTestPipeline()

	// One week ending 2024-11-17 (excluded, cutoff is strict) and one week
	// ending 2024-12-01 (kept).
	var facts []models.DailyFact
	for i := 0; i < 4; i++ {
		facts = append(facts, factOn(day(2024, 11, 11+i), 0, models.Float(6+float64(i))))
	}
	for i := 0; i < 4; i++ {
		facts = append(facts, factOn(day(2024, 11, 25+i), 0, models.Float(7+float64(i))))
	}
	// A night with a missing total must not enter the distribution.
	facts = append(facts, factOn(day(2024, 11, 29), 0, models.NullFloat{}))

	summaries := p.SummarizeWeeklySleep(facts)
	require.Len(t, summaries, 1)

	s := summaries[0]
	require.Equal(t, day(2024, 12, 1), s.WeekEndingDate)
	require.Equal(t, 7.0, s.Min)
	require.Equal(t, 10.0, s.Max)
	require.Equal(t, 8.5, s.Median)
	require.LessOrEqual(t, s.Min, s.Q1)
	require.LessOrEqual(t, s.Q1, s.Median)
	require.LessOrEqual(t, s.Median, s.Q3)
	require.LessOrEqual(t, s.Q3, s.Max)
}

func TestSummarizeRegimens(t *testing.T) {
	p := newTestPipeline()

	facts := []models.DailyFact{
		factOn(day(2024, 6, 1), 30, models.NullFloat{}),
		factOn(day(2024, 6, 3), 45, models.NullFloat{}),
		factOn(day(2024, 6, 5), 0, models.NullFloat{}),   // no training, excluded
		factOn(day(2024, 12, 30), 60, models.NullFloat{}), // last day of cohort A
		factOn(day(2024, 12, 31), 20, models.NullFloat{}), // first day of cohort B
		factOn(day(2025, 1, 4), 40, models.NullFloat{}),
	}

	summaries := p.SummarizeRegimens(facts)
	require.Len(t, summaries, 2)

	a, b := summaries[0], summaries[1]
	require.Equal(t, "A", a.Regimen)
	require.Equal(t, "B", b.Regimen)

	require.Equal(t, 30.0, a.Min)
	require.Equal(t, 60.0, a.Max)
	require.Equal(t, 45.0, a.Median)

	require.Equal(t, 20.0, b.Min)
	require.Equal(t, 40.0, b.Max)

	for _, s := range summaries {
		require.LessOrEqual(t, s.Min, s.Q1)
		require.LessOrEqual(t, s.Q1, s.Median)
		require.LessOrEqual(t, s.Median, s.Q3)
		require.LessOrEqual(t, s.Q3, s.Max)
	}
}

func TestSummarizeRegimensEmptyCohortProducesNoRow(t *testing.T) {
	p := newTestPipeline()

	facts := []models.DailyFact{
		factOn(day(2024, 6, 1), 30, models.NullFloat{}),
	}

	summaries := p.SummarizeRegimens(facts)
	require.Len(t, summaries, 1)
	require.Equal(t, "A", summaries[0].Regimen)
}

func TestGroupWorkouts(t *testing.T) {
	p := newTestPipeline()

	d1, d2 := day(2024, 3, 1), day(2024, 3, 2)
	workouts := []models.WorkoutRecord{
		workoutOn(activityStrength, d1, 45),
		workoutOn(activityStrength, d1, 15),
		workoutOn(activityRunning, d2, 30),
	}

	groups := p.GroupWorkouts(workouts)
	require.Equal(t, []models.WorkoutGroup{
		{EndDate: d1, ActivityType: "StrengthTraining", Duration: 60},
		{EndDate: d2, ActivityType: "Running", Duration: 30},
	}, groups)
}

func TestVO2MaxSeries(t *testing.T) {
	p := newTestPipeline()

	health := []models.HealthRecord{
		quantityRecord(typeVO2Max, day(2024, 3, 1), 41.2),
		quantityRecord(typeRestingHeartRate, day(2024, 3, 1), 55),
		quantityRecord(typeVO2Max, day(2024, 3, 8), 41.9),
	}

	readings := p.VO2MaxSeries(health)
	require.Equal(t, []models.VO2MaxReading{
		{EndDate: day(2024, 3, 1), Value: 41.2},
		{EndDate: day(2024, 3, 8), Value: 41.9},
	}, readings)
}
