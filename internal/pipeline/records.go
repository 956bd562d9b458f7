package pipeline

import (
	"fmt"
	"strconv"
	"time"

	"github.com/JonnyWalker81/healthsync/internal/logger"
	"github.com/JonnyWalker81/healthsync/internal/models"
)

// sleepShift realigns sleep segments so that a night crossing midnight lands
// on the day the sleep started.
const sleepShift = 4 * time.Hour

// FlattenRecords converts raw export records into the normalized health
// table: unified type/value/unit columns, shifted sleep timestamps, elapsed
// durations and calendar dates.
func (p *Pipeline) FlattenRecords(records []models.RawRecord) ([]models.HealthRecord, error) {
	p.log.Info("flattening health records", logger.Int("count", len(records)))

	out := make([]models.HealthRecord, 0, len(records))
	for i, raw := range records {
		row, err := flattenRecord(raw)
		if err != nil {
			return nil, processingError(StageRecords, fmt.Errorf("record %d (%s): %w", i, raw.Type, err))
		}
		out = append(out, row)
	}

	p.log.Info("flattened health records", logger.Int("rows", len(out)))
	return out, nil
}

func flattenRecord(raw models.RawRecord) (models.HealthRecord, error) {
	start, err := time.Parse(timeLayout, raw.StartDate)
	if err != nil {
		return models.HealthRecord{}, fmt.Errorf("parsing start date %q: %w", raw.StartDate, err)
	}
	end, err := time.Parse(timeLayout, raw.EndDate)
	if err != nil {
		return models.HealthRecord{}, fmt.Errorf("parsing end date %q: %w", raw.EndDate, err)
	}

	if _, isSleep := sleepAnalysisCodes[raw.Value]; isSleep {
		start = start.Add(sleepShift)
		end = end.Add(sleepShift)
	}
	elapsed := end.Sub(start)

	value, err := parseRecordValue(raw.Value)
	if err != nil {
		return models.HealthRecord{}, err
	}

	unit := raw.Unit
	if _, isStage := asleepStageCodes[raw.Value]; isStage {
		value = elapsed.Truncate(time.Second).Seconds()
		unit = "s"
	}

	return models.HealthRecord{
		Type:          stripTypePrefix(raw.Type),
		Unit:          unit,
		Value:         value,
		CodedValue:    raw.Value,
		StartDatetime: start,
		EndDatetime:   end,
		TimeElapsed:   elapsed,
		StartDate:     dateOf(start),
		EndDate:       dateOf(end),
	}, nil
}

// parseRecordValue casts a raw value to float, mapping known enum-only codes
// to their sentinel first.
func parseRecordValue(raw string) (float64, error) {
	if sentinel, ok := codedValueSentinels[raw]; ok {
		return sentinel, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing value %q: %w", raw, err)
	}
	return value, nil
}
