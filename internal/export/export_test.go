package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleExport = `<?xml version="1.0" encoding="UTF-8"?>
<HealthData locale="en_US">
 <ExportDate value="2025-01-15 08:00:00 -0500"/>
 <Record type="HKQuantityTypeIdentifierRestingHeartRate" sourceName="Watch" sourceVersion="11.0" unit="count/min" value="55" startDate="2024-03-01 10:00:00 -0500" endDate="2024-03-01 10:00:00 -0500"/>
 <Record type="HKCategoryTypeIdentifierSleepAnalysis" sourceName="Watch" sourceVersion="11.0" value="HKCategoryValueSleepAnalysisAsleepCore" startDate="2024-03-01 22:00:00 -0500" endDate="2024-03-02 00:00:00 -0500"/>
 <Workout workoutActivityType="HKWorkoutActivityTypeRunning" duration="30.183" durationUnit="min" startDate="2024-03-01 07:00:00 -0500" endDate="2024-03-01 07:30:00 -0500">
  <MetadataEntry key="HKElevationAscended" value="250 cm"/>
  <WorkoutStatistics type="HKQuantityTypeIdentifierDistanceWalkingRunning" startDate="2024-03-01 07:00:00 -0500" endDate="2024-03-01 07:30:00 -0500" sum="4.02" unit="mi"/>
 </Workout>
</HealthData>`

func TestParse(t *testing.T) {
	ex, err := Parse(strings.NewReader(sampleExport))
	require.NoError(t, err)

	require.Len(t, ex.Records, 2)
	require.Equal(t, "HKQuantityTypeIdentifierRestingHeartRate", ex.Records[0].Type)
	require.Equal(t, "55", ex.Records[0].Value)
	require.Equal(t, "count/min", ex.Records[0].Unit)
	require.Equal(t, "HKCategoryValueSleepAnalysisAsleepCore", ex.Records[1].Value)

	require.Len(t, ex.Workouts, 1)
	w := ex.Workouts[0]
	require.Equal(t, "HKWorkoutActivityTypeRunning", w.ActivityType)
	require.Equal(t, "30.183", w.Duration)
	require.Len(t, w.Statistics, 1)
	require.Equal(t, "4.02", w.Statistics[0].Sum)
	require.Len(t, w.Metadata, 1)
	require.Equal(t, "250 cm", w.Metadata[0].Value)
}

func TestParseMalformedDocument(t *testing.T) {
	_, err := Parse(strings.NewReader("<HealthData><Record"))
	require.Error(t, err)
}

func TestFindLatestArchive(t *testing.T) {
	dir := t.TempDir()
	touch := func(name string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	_, err := FindLatestArchive(dir)
	require.Error(t, err)

	touch("export.zip")
	path, err := FindLatestArchive(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "export.zip"), path)

	// With several archives the newest may still be downloading, so the one
	// before it wins.
	touch("export (1).zip")
	touch("export (2).zip")
	touch("notes.txt")
	path, err = FindLatestArchive(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "export (2).zip"), path)
}
