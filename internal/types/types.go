package types

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Severity controls whether a failing rule breaks the run.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityOff:
		return "off"
	default:
		return "unknown"
	}
}

// ParseSeverity accepts the names produced by String, case-insensitively.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error", "":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "off":
		return SeverityOff, nil
	default:
		return SeverityError, fmt.Errorf("unknown severity %q", s)
	}
}

func (s Severity) MarshalYAML() (any, error) {
	return s.String(), nil
}

func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseSeverity(value.Value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ConfigRule is the per-rule section of the configuration file.
type ConfigRule struct {
	Severity   Severity `yaml:"severity"`
	Iterations int      `yaml:"iterations,omitempty"`
}

// Finding is the result of running one rule.
type Finding struct {
	Rule       string        `json:"rule"`
	Verdict    string        `json:"verdict"`
	Severity   Severity      `json:"severity"`
	Iterations int           `json:"iterations"`
	Pruned     int           `json:"pruned"`
	Assertions int           `json:"assertions"`
	Failures   []string      `json:"failures,omitempty"`
	Iteration  int           `json:"failedIteration,omitempty"`
	Session    string        `json:"session,omitempty"`
	Duration   time.Duration `json:"duration"`
}

// Failed reports whether the finding carries assertion failures.
func (f Finding) Failed() bool {
	return len(f.Failures) > 0
}
