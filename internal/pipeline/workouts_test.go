package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/healthsync/internal/models"
)

func TestFlattenWorkoutsRunningSession(t *testing.T) {
	p := newTestPipeline()

	rows, err := p.FlattenWorkouts([]models.RawWorkout{{
		ActivityType: "HKWorkoutActivityTypeRunning",
		Duration:     "30.183",
		DurationUnit: "min",
		StartDate:    "2024-03-01 07:00:00 -0500",
		EndDate:      "2024-03-01 07:30:00 -0500",
		Statistics: []models.RawStatistic{{
			Type: "HKQuantityTypeIdentifierDistanceWalkingRunning",
			Sum:  "4.02",
			Unit: "mi",
		}},
		Metadata: []models.RawMetadataEntry{{
			Key:   "HKElevationAscended",
			Value: "250 cm",
		}},
	}})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	require.Equal(t, "Running", row.ActivityType)
	require.Equal(t, 30, row.Duration)
	require.Equal(t, 4.0, row.DistanceWalkingRunning)
	require.Equal(t, "mi", row.DistanceUnit)
	require.Equal(t, 2.5, row.ElevationAscended)
	require.Equal(t, "m", row.ElevationUnit)
	require.Equal(t, day(2024, 3, 1), row.StartDate)
	require.Equal(t, day(2024, 3, 1), row.EndDate)
}

func TestFlattenWorkoutsElevationWithoutUnit(t *testing.T) {
	p := newTestPipeline()

	rows, err := p.FlattenWorkouts([]models.RawWorkout{{
		ActivityType: "HKWorkoutActivityTypeRunning",
		Duration:     "20",
		StartDate:    "2024-03-01 07:00:00 -0500",
		EndDate:      "2024-03-01 07:20:00 -0500",
		Metadata: []models.RawMetadataEntry{{
			Key:   "HKElevationAscended",
			Value: "250",
		}},
	}})
	require.NoError(t, err)
	require.Equal(t, 2.5, rows[0].ElevationAscended)
	require.Equal(t, "", rows[0].ElevationUnit)
}

func TestFlattenWorkoutsDefaultsWhenAbsent(t *testing.T) {
	p := newTestPipeline()

	rows, err := p.FlattenWorkouts([]models.RawWorkout{{
		ActivityType: "HKWorkoutActivityTypeTraditionalStrengthTraining",
		Duration:     "45.6",
		StartDate:    "2024-03-01 18:00:00 -0500",
		EndDate:      "2024-03-01 18:46:00 -0500",
	}})
	require.NoError(t, err)

	row := rows[0]
	require.Equal(t, "TraditionalStrengthTraining", row.ActivityType)
	require.Equal(t, 46, row.Duration)
	require.Zero(t, row.DistanceWalkingRunning)
	require.Zero(t, row.ElevationAscended)
	require.Empty(t, row.ElevationUnit)
}

func TestFlattenWorkoutsEmptyInput(t *testing.T) {
	p := newTestPipeline()

	rows, err := p.FlattenWorkouts(nil)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestFlattenWorkoutsMalformedDurationFailsRun(t *testing.T) {
	p := newTestPipeline()

	_, err := p.FlattenWorkouts([]models.RawWorkout{{
		ActivityType: "HKWorkoutActivityTypeRunning",
		Duration:     "half an hour",
		StartDate:    "2024-03-01 07:00:00 -0500",
		EndDate:      "2024-03-01 07:30:00 -0500",
	}})
	require.Error(t, err)

	var perr *ProcessingError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, StageWorkouts, perr.Stage)
}
