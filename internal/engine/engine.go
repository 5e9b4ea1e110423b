package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	tt "github.com/gnolang/formal/internal/types"
)

// ErrUnknownRule is returned when a rule name is not registered.
var ErrUnknownRule = errors.New("unknown rule")

// Options configures an Engine.
type Options struct {
	// Iterations is the default number of sessions per rule.
	Iterations int
	// FailFast aborts a session at its first failing assertion.
	FailFast bool
	// Jobs bounds how many rules run in parallel.
	Jobs int
	// Rules holds per-rule overrides.
	Rules  map[string]tt.ConfigRule
	Logger *zap.Logger
}

// Engine manages rule registration and runs.
type Engine struct {
	mu           sync.RWMutex
	rules        map[string]Rule
	ignoredRules map[string]bool
	settings     map[string]tt.ConfigRule

	iterations int
	failFast   bool
	jobs       int

	logger  *zap.Logger
	metrics *Metrics
}

// NewEngine creates an engine with no rules.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		rules:        make(map[string]Rule),
		ignoredRules: make(map[string]bool),
		settings:     make(map[string]tt.ConfigRule),
		iterations:   max(opts.Iterations, 1),
		failFast:     opts.FailFast,
		jobs:         max(opts.Jobs, 1),
		logger:       opts.Logger,
		metrics:      NewMetrics(),
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	for name, rule := range opts.Rules {
		e.settings[name] = rule
	}
	return e
}

// AddRule registers r, replacing any rule with the same name.
func (e *Engine) AddRule(r Rule) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rules[r.Name()] = r
}

// IgnoreRule excludes a rule from RunAll.
func (e *Engine) IgnoreRule(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ignoredRules[name] = true
}

// Rule looks up a registered rule.
func (e *Engine) Rule(name string) (Rule, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	r, ok := e.rules[name]
	return r, ok
}

// Names returns the rules RunAll would run, sorted: registered, not
// ignored and not configured off.
func (e *Engine) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.rules))
	for name := range e.rules {
		if e.ignoredRules[name] || e.settings[name].Severity == tt.SeverityOff {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Registered returns every registered rule name, sorted.
func (e *Engine) Registered() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.rules))
	for name := range e.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Engine) Metrics() *Metrics {
	return e.metrics
}

func (e *Engine) setting(name string) tt.ConfigRule {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.settings[name]
}

// Run checks one rule for its configured number of iterations, each in a
// fresh Session. The first failing iteration ends the rule; failures are not
// retried. The rule is vacuous when every iteration was pruned.
func (e *Engine) Run(ctx context.Context, name string) (tt.Finding, error) {
	rule, ok := e.Rule(name)
	if !ok {
		return tt.Finding{}, fmt.Errorf("%w: %s", ErrUnknownRule, name)
	}

	setting := e.setting(name)
	iterations := e.iterations
	if setting.Iterations > 0 {
		iterations = setting.Iterations
	}

	finding := tt.Finding{Rule: name, Severity: setting.Severity}
	start := time.Now()
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			finding.Duration = time.Since(start)
			return finding, err
		}

		session := NewSession(e.failFast)
		out := session.Run(rule.Check)
		e.metrics.observeSession(name, out)

		finding.Iterations++
		finding.Assertions += out.Assertions

		if out.Verdict == Vacuous {
			finding.Pruned++
			e.logger.Debug("Session pruned",
				zap.String("rule", name),
				zap.String("session", out.Session),
				zap.String("assumption", out.PrunedBy))
			continue
		}
		if out.Verdict == Fail {
			finding.Failures = out.Messages()
			finding.Iteration = i + 1
			finding.Session = out.Session
			break
		}
	}
	finding.Duration = time.Since(start)

	verdict := aggregate(finding)
	finding.Verdict = verdict.String()
	e.metrics.observeRule(name, verdict)

	e.logger.Debug("Rule finished",
		zap.String("rule", name),
		zap.String("verdict", finding.Verdict),
		zap.Int("iterations", finding.Iterations),
		zap.Int("pruned", finding.Pruned),
		zap.Duration("duration", finding.Duration))

	return finding, nil
}

func aggregate(f tt.Finding) Verdict {
	switch {
	case f.Failed():
		return Fail
	case f.Iterations > 0 && f.Pruned == f.Iterations:
		return Vacuous
	default:
		return Pass
	}
}

// RunRules runs the named rules with at most Jobs in parallel. Findings are
// returned in the order of names. progress, if set, is called as each rule
// finishes, possibly from several goroutines.
func (e *Engine) RunRules(ctx context.Context, names []string, progress func(tt.Finding)) ([]tt.Finding, error) {
	findings := make([]tt.Finding, len(names))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.jobs)

	for i, name := range names {
		g.Go(func() error {
			f, err := e.Run(gCtx, name)
			if err != nil {
				e.logger.Error("Error running rule", zap.String("rule", name), zap.Error(err))
				return err
			}
			findings[i] = f
			if progress != nil {
				progress(f)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return findings, err
	}
	return findings, nil
}

// RunAll runs every active rule.
func (e *Engine) RunAll(ctx context.Context) ([]tt.Finding, error) {
	return e.RunRules(ctx, e.Names(), nil)
}
