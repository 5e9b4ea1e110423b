package check

import (
	"context"
	"io"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/gnolang/formal/contract"
	"github.com/gnolang/formal/internal/engine"
	"github.com/gnolang/formal/internal/rules"
	tt "github.com/gnolang/formal/internal/types"
)

type CheckEngine interface {
	RunRules(ctx context.Context, names []string, progress func(tt.Finding)) ([]tt.Finding, error)
	IgnoreRule(name string)
	Names() []string
}

var _ CheckEngine = (*engine.Engine)(nil)

// New builds an engine from config with every built-in rule registered.
// Generated contexts are traced to logger at debug level.
func New(config Config, logger *zap.Logger) *engine.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := engine.NewEngine(engine.Options{
		Iterations: config.Iterations,
		FailFast:   config.FailFast,
		Jobs:       config.Jobs,
		Rules:      config.Rules,
		Logger:     logger,
	})
	rules.Register(e, rules.Options{
		Seed:   config.Seed,
		Tracer: contract.ZapTracer(logger.Named("trace")),
	})
	return e
}

// NewFromFile loads the configuration at path and builds an engine from it.
func NewFromFile(path string, logger *zap.Logger) (*engine.Engine, Config, error) {
	config, err := LoadConfig(path)
	if err != nil {
		return nil, config, err
	}
	return New(config, logger), config, nil
}

// RuleNames lists every built-in rule.
func RuleNames() []string {
	return rules.Names()
}

// ProcessRules runs names, or every active rule when names is empty. When
// progress is non-nil a progress bar is drawn on it.
func ProcessRules(
	ctx context.Context,
	logger *zap.Logger,
	e CheckEngine,
	names []string,
	progress io.Writer,
) ([]tt.Finding, error) {
	if len(names) == 0 {
		names = e.Names()
	}

	var onFinding func(tt.Finding)
	if progress != nil {
		bar := progressbar.NewOptions(len(names),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("checking"),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
		defer bar.Finish()

		onFinding = func(f tt.Finding) {
			bar.Describe(f.Rule)
			_ = bar.Add(1)
		}
	}

	findings, err := e.RunRules(ctx, names, onFinding)
	if err != nil {
		if logger != nil {
			logger.Error("Error running rules", zap.Strings("rules", names), zap.Error(err))
		}
		return nil, err
	}
	return findings, nil
}
