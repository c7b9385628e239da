// Package main provides the CLI entry point for tableshaper.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dataviewhub/tableshaper/internal/config"
	"github.com/dataviewhub/tableshaper/pkg/tableshaper"
	"github.com/dataviewhub/tableshaper/pkg/tableshaper/chart"
	"github.com/dataviewhub/tableshaper/pkg/tableshaper/models"
	"github.com/dataviewhub/tableshaper/pkg/tableshaper/output"
	"github.com/dataviewhub/tableshaper/pkg/tableshaper/shaper"
	"github.com/dataviewhub/tableshaper/pkg/tableshaper/source"
)

var (
	configPath string
	verbose    bool
	dataDir    string
	useMock    bool
	outputPath string
	pretty     bool
	format     string
	search     string
	column     string
	state      string
	county     string
	bbDataset  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tableshaper",
		Short: "Load CSV and xlsx datasets as tables or chart series",
		Long: `tableshaper loads datasets from a data directory, searches them and
converts them into chart series, reporting columns that are not numeric.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory of CSV and xlsx datasets")
	rootCmd.PersistentFlags().BoolVar(&useMock, "mock", false, "Use the built-in demo datasets")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path, .xlsx or JSON (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	viewCmd := &cobra.Command{
		Use:   "view <dataset>",
		Short: "Load a dataset as a table or chart",
		Args:  cobra.ExactArgs(1),
		RunE:  runView,
	}
	viewCmd.Flags().StringVarP(&format, "format", "f", "", "Presentation: table, bar, or stacked-bar")
	viewCmd.Flags().StringVarP(&search, "search", "s", "", "Keep only rows with a cell equal to this value")
	viewCmd.Flags().StringVarP(&column, "column", "c", "", "Restrict search to a column name or index")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available datasets",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	shapeCmd := &cobra.Command{
		Use:   "shape <file>",
		Short: "Convert a CSV or xlsx file into chart series",
		Args:  cobra.ExactArgs(1),
		RunE:  runShape,
	}

	broadbandCmd := &cobra.Command{
		Use:   "broadband",
		Short: "Look up the broadband record of a county",
		Args:  cobra.NoArgs,
		RunE:  runBroadband,
	}
	broadbandCmd.Flags().StringVar(&state, "state", "", "State name")
	broadbandCmd.Flags().StringVar(&county, "county", "", "County name")
	broadbandCmd.Flags().StringVar(&bbDataset, "dataset", "", "Dataset holding broadband records")
	// Both flags are defined above, so marking them cannot fail.
	_ = broadbandCmd.MarkFlagRequired("state")
	_ = broadbandCmd.MarkFlagRequired("county")

	rootCmd.AddCommand(viewCmd, listCmd, shapeCmd, broadbandCmd)
	return rootCmd
}

// env bundles what every subcommand needs.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	src    source.Source
}

func setup() (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if pretty {
		cfg.Pretty = true
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := newLogger(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, logger: logger}
	if useMock {
		m, err := source.NewMock()
		if err != nil {
			return nil, fmt.Errorf("load demo datasets: %w", err)
		}
		e.src = m
	} else {
		e.src = source.NewDir(cfg.DataDir, logger)
	}
	logger.Debug("Configured", zap.String("data_dir", cfg.DataDir), zap.Bool("mock", useMock))
	return e, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %s", level)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func runView(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	f := format
	if f == "" {
		f = e.cfg.Format
	}
	viewFormat, err := tableshaper.ParseFormat(f)
	if err != nil {
		return err
	}

	opts := tableshaper.Options{
		Format: viewFormat,
		Search: search,
		Column: column,
	}
	view, err := tableshaper.Load(cmd.Context(), e.src, args[0], opts)
	if err != nil {
		return userError(err)
	}
	if view.Message != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), view.Message)
	}
	if view.Chart != nil && len(view.Chart.SkippedColumns) > 0 {
		e.logger.Info("Columns with non-numeric values",
			zap.String("dataset", view.Dataset),
			zap.Strings("skipped", view.Chart.SkippedColumns))
	}

	return writeView(cmd, view, e.cfg.Pretty)
}

func runList(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	names, err := e.src.Datasets(cmd.Context())
	if err != nil {
		return fmt.Errorf("list datasets: %w", err)
	}
	jsonData, err := output.NamesToJSON(names, e.cfg.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeBytes(cmd, jsonData)
}

func runShape(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}

	d := source.NewDir(filepath.Dir(path), e.logger)
	table, err := d.Fetch(cmd.Context(), filepath.Base(path))
	if err != nil {
		return userError(source.NewRetrievalError(path, err))
	}

	data := shaper.Shape(table)
	jsonData, err := output.ChartToJSON(&data, e.cfg.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeBytes(cmd, jsonData)
}

func runBroadband(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	dataset := bbDataset
	if dataset == "" {
		dataset = e.cfg.Broadband
	}
	b, err := source.LoadBroadband(cmd.Context(), e.src, dataset)
	if err != nil {
		return userError(err)
	}

	view, err := tableshaper.LoadBroadband(cmd.Context(), b, state, county)
	if err != nil {
		return userError(err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), view.Message)
	return writeView(cmd, view, e.cfg.Pretty)
}

// userError prefixes retrieval errors with their user-facing message.
func userError(err error) error {
	var rerr *source.RetrievalError
	if errors.As(err, &rerr) {
		return fmt.Errorf("%s: %w", rerr.Message(), err)
	}
	return err
}

func writeView(cmd *cobra.Command, view *models.View, pretty bool) error {
	if strings.EqualFold(filepath.Ext(outputPath), source.ExtXLSX) {
		if err := chart.SaveWorkbook(outputPath, view); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		return nil
	}

	jsonData, err := output.ToJSON(view, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeBytes(cmd, jsonData)
}

func writeBytes(cmd *cobra.Command, data []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
