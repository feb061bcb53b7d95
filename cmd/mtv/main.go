// Command mtv runs the MTV itemset-summarization driver over a dataset
// file and writes summary.dat and a stats YAML document (spec.md §6).
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mtv/dataset"
	"github.com/katalvlaran/mtv/internal/config"
	"github.com/katalvlaran/mtv/mtvdriver"
	"github.com/katalvlaran/mtv/statsio"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mtv",
		Short: "Mine a MaxEnt itemset summary from a transactional dataset",
		RunE:  run,
	}
	config.BindFlags(rootCmd.Flags())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	params, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	if params.Dataset == "" {
		return fmt.Errorf("mtv: --dataset is required")
	}

	level := zerolog.InfoLevel
	if params.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	f, err := os.Open(params.Dataset)
	if err != nil {
		return err
	}
	defer f.Close()

	loader := dataset.TextLoader{Headers: readSiblingHeaders(params.Dataset)}
	transactions, headers, err := loader.Load(f)
	if err != nil {
		return err
	}

	d, err := dataset.New(transactions, headers)
	if err != nil {
		return err
	}

	opts := []mtvdriver.Option{
		mtvdriver.WithM(params.M),
		mtvdriver.WithMinSupport(params.S),
		mtvdriver.WithZ(params.Z),
		mtvdriver.WithGreedy(params.Greedy),
		mtvdriver.WithNegation(params.AddNegated),
		mtvdriver.WithLogger(logger),
	}
	if params.HasK {
		opts = append(opts, mtvdriver.WithK(params.K))
	}
	if params.HasQ {
		opts = append(opts, mtvdriver.WithQ(params.Q))
	}

	driver, err := mtvdriver.New(d, opts...)
	if err != nil {
		return err
	}

	if err := driver.Run(context.Background()); err != nil {
		return err
	}

	logger.Info().Int("summary_size", len(driver.Summary())).Msg("converged")

	return writeOutputs(params.OutDir, driver)
}

// readSiblingHeaders looks for an optional "<dataset>.headers" file, one
// attribute name per line (spec.md §6's "optional sibling .headers file").
// A missing sibling file is not an error; headers are simply inferred by
// numeric position downstream.
func readSiblingHeaders(datasetPath string) []string {
	f, err := os.Open(datasetPath + ".headers")
	if err != nil {
		return nil
	}
	defer f.Close()

	var headers []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			headers = append(headers, line)
		}
	}

	return headers
}

func writeOutputs(outDir string, driver *mtvdriver.Driver) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	summaryFile, err := os.Create(filepath.Join(outDir, "summary.dat"))
	if err != nil {
		return err
	}
	defer summaryFile.Close()
	if err := statsio.WriteSummary(summaryFile, driver.Summary(), driver.Global().Headers()); err != nil {
		return err
	}

	statsFile, err := os.Create(filepath.Join(outDir, "stats"))
	if err != nil {
		return err
	}
	defer statsFile.Close()
	doc := statsio.BuildDocument(driver.Stats(), driver.Timers(), driver.Counters())

	return statsio.WriteStats(statsFile, doc)
}
