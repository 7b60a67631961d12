// Package main provides f1ctl, the operator CLI for the championship service.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Nhat-School/F1-Demo/internal/config"
	"github.com/Nhat-School/F1-Demo/internal/database"
	"github.com/Nhat-School/F1-Demo/internal/logger"
	"github.com/Nhat-School/F1-Demo/internal/repository"
	"github.com/Nhat-School/F1-Demo/internal/service"
)

var (
	configFile string
	appLog     *logrus.Logger
	cfg        *config.Config
	db         *database.DB
	repos      *repository.Repositories
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(standingsCmd)
}

var rootCmd = &cobra.Command{
	Use:   "f1ctl",
	Short: "Operator tooling for the championship service",
	Long:  `Enters race results, recomputes standings and manages the schema directly against the database, without going through the API server.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := setupDependencies(cmd.Context()); err != nil {
			return fmt.Errorf("failed to setup dependencies: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			db.Close()
		}
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.Migrate(cmd.Context()); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		appLog.Info("Schema is up to date")
		return nil
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score <race-id> <outcomes.json>",
	Short: "Score a race from an outcome sheet and store the results",
	Long:  `Reads a JSON array of outcomes, scores the race and upserts the results. Re-running with a corrected sheet replaces the stored rows.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		raceID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid race id %q: %w", args[0], err)
		}

		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read outcome sheet: %w", err)
		}

		var outcomes []service.OutcomeInput
		if err := json.Unmarshal(data, &outcomes); err != nil {
			return fmt.Errorf("failed to parse outcome sheet: %w", err)
		}

		resultsSvc := service.NewResultsService(repos.Race, repos.Registration, repos.Result, appLog)
		results, err := resultsSvc.SubmitOutcomes(cmd.Context(), raceID, outcomes)
		if err != nil {
			return err
		}

		for _, r := range results {
			if r.Rank != nil {
				fmt.Printf("%2d. %s  %s  %d pts\n", *r.Rank, r.RacerID, r.GetFinishTime(), r.Score)
			} else {
				fmt.Printf(" -. %s  %s\n", r.RacerID, r.Status)
			}
		}

		return nil
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Print the current racer and team leaderboards",
	RunE: func(cmd *cobra.Command, args []string) error {
		standingsSvc := service.NewStandingsService(repos.Result, time.Minute, appLog)
		table, err := standingsSvc.Refresh(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("Racers:")
		for i, racer := range table.Racers {
			fmt.Printf("%2d. %-4s %-24s %-20s %4d pts  %s\n",
				i+1, racer.Code, racer.Name, racer.TeamName, racer.TotalScore, racer.TotalTime)
		}

		fmt.Println("\nTeams:")
		for i, team := range table.Teams {
			fmt.Printf("%2d. %-24s %4d pts  %s\n",
				i+1, team.Name, team.TotalScore, team.TotalTime)
		}

		return nil
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	return config.Validate(cfg)
}

func setupDependencies(ctx context.Context) error {
	appLog = logger.NewLogger(cfg.App.LogLevel)

	var err error
	db, err = database.NewDB(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	repos, err = repository.NewRepositories(db)
	if err != nil {
		return fmt.Errorf("failed to initialize repositories: %w", err)
	}

	return nil
}
