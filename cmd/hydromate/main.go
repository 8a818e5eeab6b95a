package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hrygo/hydromate/breaks"
	"github.com/hrygo/hydromate/content"
	"github.com/hrygo/hydromate/internal/profile"
	"github.com/hrygo/hydromate/internal/version"
	"github.com/hrygo/hydromate/metrics"
	"github.com/hrygo/hydromate/reminder"
	"github.com/hrygo/hydromate/store"
	"github.com/hrygo/hydromate/store/db"
	"github.com/hrygo/hydromate/trigger"
)

var rootCmd = &cobra.Command{
	Use:   "hydromate",
	Short: `Operator CLI for the HydroMate reminder engine. Preview schedules, inspect intake patterns, and exercise the trigger plan against a local data store.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// Try to load .env from the current directory; absence is fine.
		_ = godotenv.Load()
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the reminder times the current settings would schedule",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		env, err := setup(ctx)
		if err != nil {
			return err
		}
		defer env.close()

		settings := env.engine.Settings().Load(ctx)
		times, err := env.engine.Preview(ctx, settings)
		if err != nil {
			return err
		}

		fmt.Printf("Interval: %d minutes\n", settings.IntervalMinutes)
		if w := settings.QuietHours.Window(); w != nil {
			fmt.Printf("Quiet hours: %s - %s\n", w.Start, w.End)
		} else {
			fmt.Println("Quiet hours: disabled")
		}
		fmt.Printf("Reminders per day: %d\n", len(times))
		for _, t := range times {
			fmt.Printf("  %s\n", t)
		}
		return nil
	},
}

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Analyze recent intake history into peak and low hours",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		env, err := setup(ctx)
		if err != nil {
			return err
		}
		defer env.close()

		summary, err := env.engine.DetailedPatterns(ctx, viper.GetInt("days"))
		if err != nil {
			return err
		}

		fmt.Printf("Days analyzed: %d\n", summary.TotalDaysAnalyzed)
		fmt.Println("Peak hours:")
		for _, peak := range summary.PeakHours {
			fmt.Printf("  %02d:00  avg %.0f ml\n", peak.Hour, peak.Average)
		}
		fmt.Println("Low hours:")
		for _, hour := range summary.LowHours {
			fmt.Printf("  %02d:00\n", hour)
		}
		fmt.Printf("\n%s\n", summary.Recommendation)
		return nil
	},
}

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain which adaptive reminders the current plan adds",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		env, err := setup(ctx)
		if err != nil {
			return err
		}
		defer env.close()

		explanation, err := env.engine.AdaptiveExplanation(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Adaptive enabled: %v\n", explanation.IsEnabled)
		fmt.Println(explanation.Explanation)
		return nil
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Register the reminder plan against an in-memory trigger scheduler and show the result",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		env, err := setup(ctx)
		if err != nil {
			return err
		}
		defer env.close()

		if err := env.engine.Apply(ctx); err != nil {
			return err
		}
		summary, err := env.engine.Summary(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Registered %d daily reminders: %s\n", summary.Count, strings.Join(summary.Times, ", "))
		if summary.Next != "" {
			fmt.Printf("Next: %s\n", summary.Next)
		}
		return nil
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Show the break the engine would suggest right now",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		env, err := setup(ctx)
		if err != nil {
			return err
		}
		defer env.close()

		suggestion := env.breaks.SuggestedBreak(ctx, viper.GetInt("elapsed"), content.LangEnglish)
		if suggestion == nil {
			fmt.Println("No break suggested.")
			return nil
		}
		info := content.BreakInfo(suggestion.Category, content.LangEnglish)
		fmt.Printf("%s %s: %s\n", info.Emoji, info.Name, suggestion.Reason)
		return nil
	},
}

// env holds the wired engine stack for one command invocation. Triggers go to
// an in-memory scheduler; the CLI inspects plans, it does not deliver.
type env struct {
	store  *store.Store
	engine *reminder.Engine
	breaks *breaks.Engine
}

func setup(ctx context.Context) (*env, error) {
	instanceProfile := &profile.Profile{
		Mode:    viper.GetString("mode"),
		Data:    viper.GetString("data"),
		Driver:  viper.GetString("driver"),
		DSN:     viper.GetString("dsn"),
		Version: version.GetCurrentVersion(viper.GetString("mode")),
	}
	instanceProfile.FromEnv()
	if err := instanceProfile.Validate(); err != nil {
		return nil, err
	}

	dbDriver, err := db.NewDriver(instanceProfile)
	if err != nil {
		slog.Error("failed to create db driver", "error", err)
		return nil, err
	}

	storeInstance := store.New(dbDriver, instanceProfile)
	if err := storeInstance.Migrate(ctx); err != nil {
		slog.Error("failed to migrate", "error", err)
		return nil, err
	}

	triggers := trigger.NewMemoryScheduler()
	selector := content.NewSelector(content.Config{})
	exporter := metrics.NewExporter(metrics.Config{})
	engine := reminder.NewEngine(reminder.EngineConfig{
		KV:       storeInstance,
		History:  storeInstance,
		Triggers: triggers,
		Selector: selector,
		Exporter: exporter,
	})
	breakEngine := breaks.NewEngine(storeInstance, triggers, selector, exporter)

	return &env{store: storeInstance, engine: engine, breaks: breakEngine}, nil
}

func (e *env) close() {
	if err := e.store.Close(); err != nil {
		slog.Error("failed to close store", "error", err)
	}
}

func init() {
	viper.SetDefault("mode", "demo")
	viper.SetDefault("driver", "sqlite")
	viper.SetDefault("days", 7)

	rootCmd.PersistentFlags().String("mode", "demo", `mode, can be "prod" or "dev" or "demo"`)
	rootCmd.PersistentFlags().String("data", "", "data directory")
	rootCmd.PersistentFlags().String("driver", "sqlite", "storage driver (sqlite, postgres)")
	rootCmd.PersistentFlags().String("dsn", "", "database source name(aka. DSN)")
	patternsCmd.Flags().Int("days", 7, "days of history to analyze")
	suggestCmd.Flags().Int("elapsed", 0, "minutes since the last break")

	if err := viper.BindPFlag("mode", rootCmd.PersistentFlags().Lookup("mode")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("driver", rootCmd.PersistentFlags().Lookup("driver")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("dsn", rootCmd.PersistentFlags().Lookup("dsn")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("days", patternsCmd.Flags().Lookup("days")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("elapsed", suggestCmd.Flags().Lookup("elapsed")); err != nil {
		panic(err)
	}

	viper.SetEnvPrefix("hydromate")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	rootCmd.AddCommand(previewCmd, patternsCmd, explainCmd, applyCmd, suggestCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
