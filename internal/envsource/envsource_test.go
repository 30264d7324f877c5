package envsource

import (
	"os"
	"testing"

	"cliarg/internal/model"
)

func TestValuePrefersDeclaredEnvVar(t *testing.T) {
	const envVar = "CLIARG_TEST_DECLARED_ENV_VAR"
	os.Setenv(envVar, "from-declared-var")
	defer os.Unsetenv(envVar)

	s, err := New("CLIARG", "")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	arg := &model.Arg{ID: "token", EnvVar: envVar}

	got, ok := s.Value(arg)
	if !ok || got != "from-declared-var" {
		t.Errorf("Value() = (%q, %v), want (%q, true)", got, ok, "from-declared-var")
	}
}

func TestValueFallsBackToPrefixedNamespace(t *testing.T) {
	os.Setenv("CLIARG_TIMEOUT", "30")
	defer os.Unsetenv("CLIARG_TIMEOUT")

	s, err := New("CLIARG", "")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	arg := &model.Arg{ID: "timeout"}

	got, ok := s.Value(arg)
	if !ok || got != "30" {
		t.Errorf("Value() = (%q, %v), want (\"30\", true)", got, ok)
	}
}

func TestValueNotFoundReturnsFalse(t *testing.T) {
	s, err := New("CLIARGUNSET", "")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	arg := &model.Arg{ID: "nonexistent"}

	if _, ok := s.Value(arg); ok {
		t.Error("Value() should report false for an arg with no env var and no config default")
	}
}

func TestNewMissingConfigFileIsNotAnError(t *testing.T) {
	if _, err := New("CLIARG", "/nonexistent/path/does-not-exist.yaml"); err != nil {
		t.Errorf("New() error = %v, want nil: a missing config file is the common case", err)
	}
}

func TestNewFromYAMLResolvesDeclaredDefault(t *testing.T) {
	s, err := NewFromYAML("CLIARG", []byte("timeout: \"60\"\nretries: \"3\"\n"))
	if err != nil {
		t.Fatalf("NewFromYAML() error: %v", err)
	}

	got, ok := s.Value(&model.Arg{ID: "timeout"})
	if !ok || got != "60" {
		t.Errorf("Value(timeout) = (%q, %v), want (\"60\", true)", got, ok)
	}
	got, ok = s.Value(&model.Arg{ID: "retries"})
	if !ok || got != "3" {
		t.Errorf("Value(retries) = (%q, %v), want (\"3\", true)", got, ok)
	}
}

func TestNewFromYAMLEmptyDataIsNotAnError(t *testing.T) {
	s, err := NewFromYAML("CLIARG", nil)
	if err != nil {
		t.Fatalf("NewFromYAML() error = %v, want nil", err)
	}
	if _, ok := s.Value(&model.Arg{ID: "anything"}); ok {
		t.Error("expected no defaults from empty YAML data")
	}
}

func TestNewFromYAMLInvalidYAMLIsAnError(t *testing.T) {
	_, err := NewFromYAML("CLIARG", []byte("not: [valid yaml"))
	if err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
