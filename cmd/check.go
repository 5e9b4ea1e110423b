package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/formal/check"
	"github.com/gnolang/formal/internal/engine"
	"github.com/gnolang/formal/internal/report"
	tt "github.com/gnolang/formal/internal/types"
)

// ErrRulesFailed is returned when a rule with error severity fails.
var ErrRulesFailed = errors.New("rules failed")

var (
	ignoreRules string
	jsonOutput  bool
	outPath     string
	metricsPath string
	jobs        int
	watch       bool
)

var checkCmd = &cobra.Command{
	Use:   "check [rules...]",
	Short: "Run verification rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := check.LoadConfig(cfgFile)
		if err != nil {
			logger.Error("Failed to load configuration", zap.Error(err))
			return err
		}

		if watch {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runWatch(ctx, cmd, config, args)
		}

		return runCheck(cmd.Context(), cmd, newEngine(config), args)
	},
}

func init() {
	checkCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of rules to ignore")
	checkCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output findings in JSON format")
	checkCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	checkCmd.Flags().StringVar(&metricsPath, "metrics", "", "Write prometheus metrics to this file")
	checkCmd.Flags().IntVar(&jobs, "jobs", 0, "Number of rules run in parallel (default from config)")
	checkCmd.Flags().BoolVar(&watch, "watch", false, "Re-run when the configuration file changes")
}

func newEngine(config check.Config) *engine.Engine {
	if jobs > 0 {
		config.Jobs = jobs
	}
	e := check.New(config, logger)

	if ignoreRules != "" {
		rules := strings.Split(ignoreRules, ",")
		for _, rule := range rules {
			e.IgnoreRule(strings.TrimSpace(rule))
		}
	}
	return e
}

func runCheck(ctx context.Context, cmd *cobra.Command, e *engine.Engine, names []string) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var progress io.Writer
	if !jsonOutput {
		progress = cmd.ErrOrStderr()
	}

	findings, err := check.ProcessRules(ctx, logger, e, names, progress)
	if err != nil {
		return err
	}

	if err := printFindings(cmd.OutOrStdout(), findings); err != nil {
		logger.Error("Error printing findings", zap.Error(err))
		return err
	}

	if metricsPath != "" {
		if err := e.Metrics().WriteFile(metricsPath); err != nil {
			logger.Error("Error writing metrics", zap.String("path", metricsPath), zap.Error(err))
			return err
		}
	}

	if report.Summarize(findings).Errors > 0 {
		return ErrRulesFailed
	}
	return nil
}

func printFindings(out io.Writer, findings []tt.Finding) error {
	if !jsonOutput {
		fmt.Fprintln(out)
		return report.Text(out, findings, verbose)
	}

	if outPath == "" {
		return report.JSON(out, findings)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("error creating JSON output file: %w", err)
	}
	defer f.Close()
	return report.JSON(f, findings)
}

func runWatch(ctx context.Context, cmd *cobra.Command, config check.Config, names []string) error {
	w, err := check.NewWatcher(cfgFile, logger)
	if err != nil {
		return err
	}
	defer w.Close()

	rerun := func(config check.Config) error {
		err := runCheck(ctx, cmd, newEngine(config), names)
		if err != nil && !errors.Is(err, ErrRulesFailed) {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "watching %s for changes\n", cfgFile)
		return nil
	}

	if err := rerun(config); err != nil {
		return err
	}
	if err := w.Run(ctx, rerun); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
