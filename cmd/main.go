package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/amirphl/simple-ta/internal/candle"
	"github.com/amirphl/simple-ta/internal/config"
	"github.com/amirphl/simple-ta/internal/indicator"
	"github.com/amirphl/simple-ta/internal/report"
	"github.com/amirphl/simple-ta/internal/utils"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const timestampLayout = "2006-01-02 15:04"

// Command line flags
var (
	configFile string
	inputFile  string
	indicators []string
	logLevel   string
	precision  int
	heikinAshi bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "simple-ta",
		Short:         "Technical analysis indicators over price series",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(buildRunCmd(), buildListCmd())
	return rootCmd
}

func buildRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Compute indicators over a CSV of candles and print them as a table",
		RunE:  runIndicators,
	}

	runCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to YAML config file")
	runCmd.Flags().StringVarP(&inputFile, "input", "i", "", "CSV file with a close column, - for stdin")
	runCmd.Flags().StringSliceVarP(&indicators, "indicators", "n", nil, "Comma-separated indicators (see list)")
	runCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	runCmd.Flags().IntVarP(&precision, "precision", "p", 0, "Decimal places in the output")
	runCmd.Flags().BoolVar(&heikinAshi, "heikin-ashi", false, "Convert candles to Heikin-Ashi before computing")

	return runCmd
}

func buildListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available indicators",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range indicator.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func runIndicators(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log := utils.GetLogger()

	candles, err := readCandles(cmd.InOrStdin(), cfg.Input)
	if err != nil {
		return err
	}
	log.Info().Str("input", cfg.Input).Int("candles", len(candles)).Msg("Loaded candles")

	if cfg.HeikinAshi {
		candles = candle.HeikinAshi(candles)
		log.Debug().Msg("Converted candles to Heikin-Ashi")
	}

	in := indicator.Input{
		High:  candle.Highs(candles),
		Low:   candle.Lows(candles),
		Close: candle.Closes(candles),
	}

	names := cfg.Indicators
	if cfg.AllIndicators && !hasHighLow(in) {
		skipped := lo.Filter(names, func(name string, _ int) bool { return indicator.UsesHighLow(name) })
		names = lo.Without(names, skipped...)
		log.Warn().Strs("skipped", skipped).Msg("Input has no high/low data, skipping indicators that need it")
	}

	columns := []indicator.Line{{Name: "close", Values: in.Close}}
	for _, name := range names {
		ind, err := indicator.New(name, cfg.Params)
		if err != nil {
			return err
		}

		lines, err := ind.Calculate(in)
		if err != nil {
			return fmt.Errorf("%s: %w", ind.Name(), err)
		}
		log.Debug().Str("indicator", ind.Name()).Int("lines", len(lines)).Msg("Computed indicator")
		columns = append(columns, lines...)
	}

	return report.Render(cmd.OutOrStdout(), indexName(candles), index(candles), columns, cfg.Precision)
}

// loadConfig starts from the config file (or defaults) and applies flags
// that were set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = inputFile
	}
	if flags.Changed("indicators") {
		cfg.Indicators = indicators
		cfg.AllIndicators = false
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("precision") {
		cfg.Precision = precision
	}
	if flags.Changed("heikin-ashi") {
		cfg.HeikinAshi = heikinAshi
	}

	cfg.Dedup()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func hasHighLow(in indicator.Input) bool {
	finite := func(v float64) bool { return !math.IsNaN(v) }
	return lo.ContainsBy(in.High, finite) && lo.ContainsBy(in.Low, finite)
}

func readCandles(stdin io.Reader, path string) ([]candle.Candle, error) {
	if path == "" || path == "-" {
		return candle.ReadCSV(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	return candle.ReadCSV(f)
}

func indexName(candles []candle.Candle) string {
	if len(candles) > 0 && !candles[0].Timestamp.IsZero() {
		return "time"
	}
	return "#"
}

func index(candles []candle.Candle) []string {
	keys := make([]string, len(candles))
	for i, c := range candles {
		if c.Timestamp.IsZero() {
			keys[i] = strconv.Itoa(i)
			continue
		}
		keys[i] = strings.TrimSuffix(c.Timestamp.Format(timestampLayout), " 00:00")
	}
	return keys
}
