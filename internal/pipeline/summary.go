package pipeline

import (
	"math"
	"sort"
	"time"

	"github.com/JonnyWalker81/healthsync/internal/logger"
	"github.com/JonnyWalker81/healthsync/internal/models"
)

// sleepSummaryCutoff drops sleep weeks ending on or before this date.
var sleepSummaryCutoff = time.Date(2024, time.November, 17, 0, 0, 0, 0, time.UTC)

// regimenCutover splits strength-training days into cohort A (before) and
// cohort B (on/after).
var regimenCutover = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

// SummarizeWeeklySleep computes the five-number summary of nightly total
// sleep hours per week-ending Sunday, keeping only weeks ending after the
// summary cutoff. Nights with missing totals do not enter the distribution.
func (p *Pipeline) SummarizeWeeklySleep(facts []models.DailyFact) []models.WeeklySleepSummary {
	byWeek := make(map[time.Time][]float64)
	for _, f := range facts {
		if !f.TotalSleepHours.Valid {
			continue
		}
		byWeek[f.WeekEndingDate] = append(byWeek[f.WeekEndingDate], f.TotalSleepHours.Value)
	}

	weeks := make([]time.Time, 0, len(byWeek))
	for week := range byWeek {
		if week.After(sleepSummaryCutoff) {
			weeks = append(weeks, week)
		}
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })

	out := make([]models.WeeklySleepSummary, 0, len(weeks))
	for _, week := range weeks {
		min, q1, median, q3, max := fiveNumberSummary(byWeek[week])
		out = append(out, models.WeeklySleepSummary{
			WeekEndingDate: week,
			Min:            min,
			Q1:             q1,
			Median:         median,
			Q3:             q3,
			Max:            max,
		})
	}

	p.log.Info("summarized weekly sleep", logger.Int("weeks", len(out)))
	return out
}

// SummarizeRegimens computes five-number summaries of strength-training
// minutes for the two training-regimen cohorts: days with any strength
// training before the cutover ("A") and on/after it ("B"). A cohort with no
// qualifying days produces no row.
func (p *Pipeline) SummarizeRegimens(facts []models.DailyFact) []models.RegimenSummary {
	var before, after []float64
	for _, f := range facts {
		if f.StrengthTrainingMinutes <= 0 {
			continue
		}
		minutes := float64(f.StrengthTrainingMinutes)
		if f.EndDate.Before(regimenCutover) {
			before = append(before, minutes)
		} else {
			after = append(after, minutes)
		}
	}

	var out []models.RegimenSummary
	for _, cohort := range []struct {
		label   string
		minutes []float64
	}{
		{"A", before},
		{"B", after},
	} {
		if len(cohort.minutes) == 0 {
			p.log.Warn("regimen cohort has no qualifying days", logger.String("regimen", cohort.label))
			continue
		}
		min, q1, median, q3, max := fiveNumberSummary(cohort.minutes)
		out = append(out, models.RegimenSummary{
			Min:     min,
			Q1:      q1,
			Median:  median,
			Q3:      q3,
			Max:     max,
			Regimen: cohort.label,
		})
	}

	return out
}

// GroupWorkouts sums workout minutes per day and activity type for the
// grouped upload, relabeling TraditionalStrengthTraining to the shorter
// reporting name.
func (p *Pipeline) GroupWorkouts(workouts []models.WorkoutRecord) []models.WorkoutGroup {
	totals := groupWorkoutsByDay(workouts)

	out := make([]models.WorkoutGroup, 0, len(totals))
	for key, entry := range totals {
		activity := key.activity
		if activity == activityStrength {
			activity = strengthUploadRelabel
		}
		out = append(out, models.WorkoutGroup{
			EndDate:      key.date,
			ActivityType: activity,
			Duration:     entry.minutes,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].EndDate.Equal(out[j].EndDate) {
			return out[i].EndDate.Before(out[j].EndDate)
		}
		return out[i].ActivityType < out[j].ActivityType
	})
	return out
}

// VO2MaxSeries extracts per-date VO2Max readings in record order.
func (p *Pipeline) VO2MaxSeries(health []models.HealthRecord) []models.VO2MaxReading {
	var out []models.VO2MaxReading
	for _, r := range health {
		if r.Type != typeVO2Max {
			continue
		}
		out = append(out, models.VO2MaxReading{EndDate: r.EndDate, Value: r.Value})
	}
	return out
}

// fiveNumberSummary returns min, Q1, median, Q3 and max of values, with
// quartiles computed by linear interpolation.
func fiveNumberSummary(values []float64) (min, q1, median, q3, max float64) {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return sorted[0],
		quantile(sorted, 0.25),
		quantile(sorted, 0.5),
		quantile(sorted, 0.75),
		sorted[len(sorted)-1]
}

func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
