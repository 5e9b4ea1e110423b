package check

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	tt "github.com/gnolang/formal/internal/types"
)

type mockCheckEngine struct {
	mock.Mock
}

func (m *mockCheckEngine) RunRules(ctx context.Context, names []string, progress func(tt.Finding)) ([]tt.Finding, error) {
	args := m.Called(ctx, names, progress)
	findings := args.Get(0).([]tt.Finding)
	if progress != nil {
		for _, f := range findings {
			progress(f)
		}
	}
	return findings, args.Error(1)
}

func (m *mockCheckEngine) IgnoreRule(name string) {
	m.Called(name)
}

func (m *mockCheckEngine) Names() []string {
	return m.Called().Get(0).([]string)
}

func TestProcessRulesDefaultsToActiveRules(t *testing.T) {
	t.Parallel()
	expected := []tt.Finding{{Rule: "a", Verdict: "pass"}, {Rule: "b", Verdict: "fail"}}

	m := new(mockCheckEngine)
	m.On("Names").Return([]string{"a", "b"})
	m.On("RunRules", mock.Anything, []string{"a", "b"}, mock.Anything).Return(expected, nil)

	var bar bytes.Buffer
	findings, err := ProcessRules(context.Background(), zap.NewNop(), m, nil, &bar)
	require.NoError(t, err)
	assert.Equal(t, expected, findings)
	assert.Contains(t, bar.String(), "2/2")
	m.AssertExpectations(t)
}

func TestProcessRulesNamed(t *testing.T) {
	t.Parallel()
	m := new(mockCheckEngine)
	m.On("RunRules", mock.Anything, []string{"b"}, mock.Anything).Return([]tt.Finding{{Rule: "b"}}, nil)

	findings, err := ProcessRules(context.Background(), nil, m, []string{"b"}, nil)
	require.NoError(t, err)
	assert.Len(t, findings, 1)
	m.AssertNotCalled(t, "Names")
}

func TestProcessRulesError(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.ErrorLevel)

	m := new(mockCheckEngine)
	m.On("RunRules", mock.Anything, []string{"x"}, mock.Anything).Return([]tt.Finding(nil), assert.AnError)

	_, err := ProcessRules(context.Background(), zap.New(core), m, []string{"x"}, nil)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, logs.FilterMessage("Error running rules").Len())
}

func TestNewRunsBuiltinRules(t *testing.T) {
	t.Parallel()
	config := DefaultConfig()
	config.Iterations = 50
	config.Rules["account-invariant"] = tt.ConfigRule{Severity: tt.SeverityOff}

	e := New(config, nil)
	assert.Equal(t, []string{"account-deposit", "account-withdraw", "point-lemma"}, e.Names())
	assert.ElementsMatch(t, RuleNames(), e.Registered())

	findings, err := ProcessRules(context.Background(), nil, e, nil, nil)
	require.NoError(t, err)
	require.Len(t, findings, 3)
	for _, f := range findings {
		assert.Equal(t, "pass", f.Verdict, f.Rule)
		assert.Equal(t, 50, f.Iterations)
	}
}

func TestNewTracesContexts(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	config := DefaultConfig()
	config.Iterations = 2

	e := New(config, zap.New(core))
	_, err := e.Run(context.Background(), "point-lemma")
	require.NoError(t, err)

	traces := logs.FilterLoggerName("trace").FilterMessage("trace")
	assert.Equal(t, 2, traces.Len())
}

func TestNewFromFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "formal.yaml")
	content := `name: test
seed: 9
iterations: 7
fail_fast: true
rules:
  point-lemma:
    severity: warning
    iterations: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	e, config, err := NewFromFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), config.Seed)
	assert.True(t, config.FailFast)

	f, err := e.Run(context.Background(), "point-lemma")
	require.NoError(t, err)
	assert.Equal(t, 3, f.Iterations)
	assert.Equal(t, tt.SeverityWarning, f.Severity)

	f, err = e.Run(context.Background(), "account-deposit")
	require.NoError(t, err)
	assert.Equal(t, 7, f.Iterations)
}
