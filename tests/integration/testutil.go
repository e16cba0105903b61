// Package integration provides CLI integration tests for okrboard.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// okrboardBin is the path to the built okrboard binary.
	okrboardBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetOkrboardBin sets the path to the okrboard binary (called from TestMain).
func SetOkrboardBin(path string) {
	okrboardBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config and data
// directory. Every invocation pins the tracking window so provisioning counts
// are deterministic.
type TestEnv struct {
	t          *testing.T
	TempDir    string
	Config     string
	DataDir    string
	StartMonth string
	EndMonth   string
}

// NewTestEnv creates a new isolated test environment with a three-month
// tracking window (2025-10 through 2025-12).
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build okrboard: %v", buildErr)
	}
	if okrboardBin == "" {
		t.Fatal("okrboard binary not built (okrboardBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "start_month: \"2025-10\"\nend_month: \"2025-12\"\ndata_dir: " + dataDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:          t,
		TempDir:    tempDir,
		Config:     configDir,
		DataDir:    dataDir,
		StartMonth: "2025-10",
		EndMonth:   "2025-12",
	}
}

// CmdResult holds the result of an okrboard command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunOkrboard executes the okrboard CLI with the given arguments.
// Returns stdout, stderr, and exit code.
func (e *TestEnv) RunOkrboard(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(okrboardBin, allArgs...)
	cmd.Dir = e.TempDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run okrboard: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunOkrboard executes the okrboard CLI and fails the test if it returns
// non-zero.
func (e *TestEnv) MustRunOkrboard(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunOkrboard(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("okrboard %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Objective mirrors the objective JSON shape for parsing CLI output.
type Objective struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Driver       string `json:"driver"`
	CreatedDate  string `json:"created_date"`
	ModifiedDate string `json:"modified_date"`
}

// KeyResult mirrors the key result JSON shape for parsing CLI output.
type KeyResult struct {
	ID          int64  `json:"id"`
	ObjectiveID int64  `json:"objective_id"`
	Title       string `json:"title"`
	Metric      string `json:"metric"`
	Unit        string `json:"unit"`
	Inverse     bool   `json:"inverse_metric"`
}

// MonthlyData mirrors the monthly data JSON shape.
type MonthlyData struct {
	ID          int64   `json:"id"`
	KeyResultID int64   `json:"key_result_id"`
	Month       string  `json:"month"`
	Target      float64 `json:"target"`
	Actual      float64 `json:"actual"`
}

// ObjectiveComment mirrors the comment JSON shape.
type ObjectiveComment struct {
	ID          int64  `json:"id"`
	ObjectiveID int64  `json:"objective_id"`
	Month       string `json:"month"`
	Comment     string `json:"comment"`
}

// KeyResultDetails pairs a key result with its monthly series.
type KeyResultDetails struct {
	KeyResult
	MonthlyData []MonthlyData `json:"monthly_data"`
}

// ObjectiveDetails mirrors the composite read returned by "okrboard show".
type ObjectiveDetails struct {
	Objective
	KeyResults []KeyResultDetails `json:"key_results"`
	Comments   []ObjectiveComment `json:"comments"`
}

// BulkResult mirrors the copy-targets JSON output.
type BulkResult struct {
	Updated int      `json:"updated"`
	Errors  []string `json:"errors"`
}

// ExportDocument mirrors the versioned JSON interchange document.
type ExportDocument struct {
	Version    string `json:"version"`
	ExportedAt string `json:"exported_at"`
	Data       struct {
		Objectives        []Objective        `json:"objectives"`
		KeyResults        []KeyResult        `json:"key_results"`
		MonthlyData       []MonthlyData      `json:"monthly_data"`
		ObjectiveComments []ObjectiveComment `json:"objective_comments"`
	} `json:"data"`
}
