package pipeline

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/JonnyWalker81/healthsync/internal/logger"
	"github.com/JonnyWalker81/healthsync/internal/models"
)

// FlattenWorkouts converts raw workout elements into the normalized workout
// table. Distance comes from the walking/running statistic, elevation from
// the HKElevationAscended metadata entry; both default to 0 when absent.
func (p *Pipeline) FlattenWorkouts(workouts []models.RawWorkout) ([]models.WorkoutRecord, error) {
	p.log.Info("flattening workouts", logger.Int("count", len(workouts)))

	out := make([]models.WorkoutRecord, 0, len(workouts))
	for i, raw := range workouts {
		row, err := flattenWorkout(raw)
		if err != nil {
			return nil, processingError(StageWorkouts, fmt.Errorf("workout %d (%s): %w", i, raw.ActivityType, err))
		}
		out = append(out, row)
	}

	p.log.Info("flattened workouts", logger.Int("rows", len(out)))
	return out, nil
}

// flattenWorkout normalizes one workout. Elevation is divided by 100
// unconditionally: the export reports it in centimeters, and the conversion
// deliberately does not look at the reported unit label.
func flattenWorkout(raw models.RawWorkout) (models.WorkoutRecord, error) {
	start, err := time.Parse(timeLayout, raw.StartDate)
	if err != nil {
		return models.WorkoutRecord{}, fmt.Errorf("parsing start date %q: %w", raw.StartDate, err)
	}
	end, err := time.Parse(timeLayout, raw.EndDate)
	if err != nil {
		return models.WorkoutRecord{}, fmt.Errorf("parsing end date %q: %w", raw.EndDate, err)
	}

	duration, err := strconv.ParseFloat(raw.Duration, 64)
	if err != nil {
		return models.WorkoutRecord{}, fmt.Errorf("parsing duration %q: %w", raw.Duration, err)
	}

	row := models.WorkoutRecord{
		ActivityType:  strings.TrimPrefix(raw.ActivityType, activityTypePrefix),
		Duration:      int(math.Round(duration)),
		DurationUnit:  raw.DurationUnit,
		StartDatetime: start,
		EndDatetime:   end,
		StartDate:     dateOf(start),
		EndDate:       dateOf(end),
	}

	for _, stat := range raw.Statistics {
		if stat.Type != distanceWalkRunType {
			continue
		}
		distance, err := strconv.ParseFloat(stat.Sum, 64)
		if err != nil {
			return models.WorkoutRecord{}, fmt.Errorf("parsing distance %q: %w", stat.Sum, err)
		}
		row.DistanceWalkingRunning = round1(distance)
		row.DistanceUnit = stat.Unit
	}

	for _, meta := range raw.Metadata {
		if meta.Key != elevationAscendedKey {
			continue
		}
		valueStr, unit := splitValueUnit(meta.Value)
		elevation, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			return models.WorkoutRecord{}, fmt.Errorf("parsing elevation %q: %w", meta.Value, err)
		}
		row.ElevationAscended = elevation
		row.ElevationUnit = unit
	}

	row.ElevationAscended = round1(row.ElevationAscended / 100)
	if row.ElevationUnit == "cm" {
		row.ElevationUnit = "m"
	}

	return row, nil
}

// splitValueUnit splits a "<value> <unit>" metadata string. Without a space
// the whole string is the value and the unit is empty.
func splitValueUnit(s string) (string, string) {
	value, unit, found := strings.Cut(s, " ")
	if !found {
		return s, ""
	}
	return value, unit
}
