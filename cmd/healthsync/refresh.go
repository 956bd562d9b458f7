package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/healthsync/internal/config"
	"github.com/JonnyWalker81/healthsync/internal/export"
	"github.com/JonnyWalker81/healthsync/internal/logger"
	"github.com/JonnyWalker81/healthsync/internal/pipeline"
	"github.com/JonnyWalker81/healthsync/internal/warehouse"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Process the newest export and refresh the warehouse",
	Long:  `Locate the newest health export archive, derive the daily fact and summary tables, and replace their warehouse contents.`,
	RunE:  runRefresh,
}

var downloadsDir string

func init() {
	refreshCmd.Flags().StringVarP(&downloadsDir, "downloads", "d", "", "Directory holding export archives (overrides config)")
}

func runRefresh(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override downloads directory from flag if provided
	if downloadsDir != "" {
		cfg.Paths.Downloads = downloadsDir
	}

	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	ctx := logger.WithRunID(cmd.Context(), "")
	ctx = logger.WithLogger(ctx, log)
	log = log.WithContext(ctx)

	archive, err := export.FindLatestArchive(cfg.Paths.Downloads)
	if err != nil {
		return err
	}
	log.Info("processing export archive", logger.String("archive", archive))

	data, err := export.Read(archive)
	if err != nil {
		return err
	}
	log.Info("decoded export",
		logger.Int("records", len(data.Records)),
		logger.Int("workouts", len(data.Workouts)))

	p := pipeline.New(log)

	health, err := p.FlattenRecords(data.Records)
	if err != nil {
		return err
	}
	workouts, err := p.FlattenWorkouts(data.Workouts)
	if err != nil {
		return err
	}
	facts := p.BuildDailyFacts(health, workouts)

	writer, err := warehouse.NewWriter(ctx, cfg.Warehouse.URL, log)
	if err != nil {
		return err
	}
	defer writer.Close()

	tables := []warehouse.Table{
		warehouse.DailyFactTable(cfg.Warehouse.Tables[config.TableHealthRecord], facts),
		warehouse.GroupedWorkoutsTable(cfg.Warehouse.Tables[config.TableWorkoutsGrouped], p.GroupWorkouts(workouts)),
		warehouse.VO2MaxTable(cfg.Warehouse.Tables[config.TableVO2Max], p.VO2MaxSeries(health)),
		warehouse.SleepSummaryTable(cfg.Warehouse.Tables[config.TableSleepBoxplots], p.SummarizeWeeklySleep(facts)),
		warehouse.RegimenSummaryTable(cfg.Warehouse.Tables[config.TableRegimenBoxplots], p.SummarizeRegimens(facts)),
	}
	for _, table := range tables {
		if err := writer.Replace(ctx, table); err != nil {
			return fmt.Errorf("failed to upload %s: %w", table.Name, err)
		}
	}

	log.Info("refresh complete", logger.Int("daily_facts", len(facts)))
	return nil
}
