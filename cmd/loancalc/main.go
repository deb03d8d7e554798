package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/loanworks/loancalc/internal/calculation"
	"github.com/loanworks/loancalc/internal/config"
	"github.com/loanworks/loancalc/internal/domain"
	"github.com/loanworks/loancalc/internal/output"
	"github.com/loanworks/loancalc/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// initializeLogger creates a zap logger from settings and the CLI override.
func initializeLogger(logging config.LoggingConfig, levelOverride string) (*zap.Logger, error) {
	level := logging.Level
	if levelOverride != "" {
		level = levelOverride
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info", "":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	var cfg zap.Config
	switch logging.Format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console", "":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", logging.Format)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	return cfg.Build()
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func buildEngine(cmd *cobra.Command) (*calculation.CalculationEngine, *config.Settings, error) {
	settingsPath, _ := cmd.Flags().GetString("settings")
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return nil, nil, err
	}

	logLevel := ""
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		logLevel = "debug"
	}
	logger, err := initializeLogger(settings.Logging, logLevel)
	if err != nil {
		return nil, nil, err
	}

	engine := calculation.NewCalculationEngine(logger)
	engine.MaxPeriods = settings.MaxSchedulePeriods
	return engine, settings, nil
}

func parseRequest(path string, settings *config.Settings) (*domain.CalculationInput, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}

	parser := config.NewInputParser()
	if settings.DefaultFrequency != "" {
		parser.DefaultFrequency = domain.PaymentFrequency(settings.DefaultFrequency)
	}
	return parser.Parse(data)
}

var rootCmd = &cobra.Command{
	Use:   "loancalc",
	Short: "Loan amortization calculator",
	Long:  "Amortization schedules, cost summaries, and affordability analysis for fixed-payment loans",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Calculate a full loan schedule and summary",
	Long:  "Reads a loan request (YAML or JSON, '-' for stdin) and writes the schedule, summary, and optional affordability analysis to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, settings, err := buildEngine(cmd)
		if err != nil {
			return err
		}

		input, err := parseRequest(args[0], settings)
		if err != nil {
			return err
		}

		result, err := engine.Calculate(input)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			format = settings.Output.Format
		}
		formatter := output.GetFormatterByName(format)
		if formatter == nil {
			return fmt.Errorf("unsupported format: %s", format)
		}

		rendered, err := formatter.Format(result)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(rendered)
		return err
	},
}

var affordabilityCmd = &cobra.Command{
	Use:   "affordability [input-file]",
	Short: "Assess repayment burden without generating a schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, settings, err := buildEngine(cmd)
		if err != nil {
			return err
		}

		input, err := parseRequest(args[0], settings)
		if err != nil {
			return err
		}

		income := input.MonthlyIncome
		if flagIncome, _ := cmd.Flags().GetFloat64("income"); flagIncome != 0 {
			v := decimal.NewFromFloat(flagIncome)
			income = &v
		}
		if income == nil {
			return fmt.Errorf("%w: monthly_income (set it in the request or pass --income)", domain.ErrMissingRequiredField)
		}

		assessment, err := engine.Affordability(input.Terms, *income)
		if err != nil {
			return err
		}

		fmt.Printf("Monthly equivalent:  %s\n", output.FormatCurrency(assessment.MonthlyPaymentEquivalent))
		fmt.Printf("Debt-to-income:      %s\n", output.FormatPercentage(assessment.DebtToIncomeRatio))
		fmt.Printf("Comfort level:       %s\n", assessment.ComfortLevel)
		fmt.Printf("Affordable:          %t\n", assessment.IsAffordable)
		fmt.Printf("Recommended max:     %s\n", output.FormatCurrency(assessment.RecommendedMaxPayment))
		return nil
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui [input-file]",
	Short: "Browse a calculated schedule interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, settings, err := buildEngine(cmd)
		if err != nil {
			return err
		}

		input, err := parseRequest(args[0], settings)
		if err != nil {
			return err
		}

		result, err := engine.Calculate(input)
		if err != nil {
			return err
		}

		return tui.Run(result)
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "loancalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

func main() {
	rootCmd.PersistentFlags().String("settings", "", "Path to an optional settings file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	calculateCmd.Flags().String("format", "", "Output format: json, json-compact, csv, table")
	affordabilityCmd.Flags().Float64("income", 0, "Monthly income (overrides the request's monthly_income)")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(affordabilityCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
