package evals

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/olgasafonova/restoolbox-mcp-server/tools"
)

const testdataDir = "testdata"

type mockResponse struct {
	Tool string
	Args map[string]any
}

// MockToolSelector answers from Responses, falling back to DefaultTool.
// Err, when set, is returned for every input.
type MockToolSelector struct {
	Responses   map[string]mockResponse
	DefaultTool string
	Err         error
}

func (m *MockToolSelector) SelectTool(input string) (string, map[string]any, error) {
	if m.Err != nil {
		return "", nil, m.Err
	}
	if resp, ok := m.Responses[input]; ok {
		return resp.Tool, resp.Args, nil
	}
	return m.DefaultTool, nil, nil
}

// oracle answers every case in suite correctly.
func oracle(suite *ToolSelectionSuite) *MockToolSelector {
	m := &MockToolSelector{Responses: make(map[string]mockResponse, len(suite.Tests))}
	for _, test := range suite.Tests {
		m.Responses[test.Input] = mockResponse{Tool: test.ExpectedTool, Args: test.ExpectedArgs}
	}
	return m
}

func TestLoadSuites(t *testing.T) {
	selection, pairs, args, err := LoadAllEvals(testdataDir)
	if err != nil {
		t.Fatalf("LoadAllEvals() error = %v", err)
	}

	for name, suite := range map[string]struct{ Name, Version string }{
		ToolSelectionFile: {selection.Name, selection.Version},
		ConfusionPairFile: {pairs.Name, pairs.Version},
		ArgumentFile:      {args.Name, args.Version},
	} {
		if suite.Name == "" || suite.Version == "" {
			t.Errorf("%s: name and version are required", name)
		}
	}

	ids := make(map[string]bool)
	unique := func(id string) {
		if id == "" {
			t.Error("case without an id")
		} else if ids[id] {
			t.Errorf("duplicate id %s", id)
		}
		ids[id] = true
	}

	if len(selection.Tests) == 0 {
		t.Error("tool selection suite is empty")
	}
	for _, test := range selection.Tests {
		unique(test.ID)
		if test.Input == "" || test.ExpectedTool == "" || test.Category == "" {
			t.Errorf("[%s] incomplete case", test.ID)
		}
	}

	if len(pairs.Pairs) == 0 {
		t.Error("confusion pair suite is empty")
	}
	for _, pair := range pairs.Pairs {
		unique(pair.ID)
		if len(pair.Tools) < 2 || len(pair.Tests) == 0 {
			t.Errorf("[%s] a pair needs two tools and at least one case", pair.ID)
		}
		for _, test := range pair.Tests {
			if !slices.Contains(pair.Tools, test.Expected) {
				t.Errorf("[%s] expects %s, which is not one of its tools", pair.ID, test.Expected)
			}
		}
	}

	if len(args.Tests) == 0 {
		t.Error("argument suite is empty")
	}
	if args.ValidationRules.Units == "" {
		t.Error("argument suite should document units")
	}
	for _, test := range args.Tests {
		unique(test.ID)
		if test.Tool == "" || test.Input == "" {
			t.Errorf("[%s] incomplete case", test.ID)
		}
	}
}

func TestLoadSuiteErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadToolSelectionSuite(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file should fail")
	}
	if _, _, _, err := LoadAllEvals(dir); err == nil {
		t.Error("empty directory should fail")
	}

	bad := filepath.Join(dir, ToolSelectionFile)
	if err := os.WriteFile(bad, []byte(`{"name":"x","tests":[{"id":"1","expected":"gas_z_factor"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadToolSelectionSuite(bad); err == nil {
		t.Error("unknown fields should be rejected")
	}
}

// Suites must only reference tools the server registers.
func TestSuitesReferenceKnownTools(t *testing.T) {
	selection, pairs, args, err := LoadAllEvals(testdataDir)
	if err != nil {
		t.Fatalf("LoadAllEvals() error = %v", err)
	}

	check := func(where, name string) {
		if _, ok := tools.Lookup(name); !ok {
			t.Errorf("%s references unknown tool %q", where, name)
		}
	}
	for _, test := range selection.Tests {
		check(test.ID, test.ExpectedTool)
		for _, name := range test.NotTools {
			check(test.ID, name)
		}
	}
	for _, pair := range pairs.Pairs {
		for _, name := range pair.Tools {
			check(pair.ID, name)
		}
	}
	for _, test := range args.Tests {
		check(test.ID, test.Tool)
	}
}

func TestEvaluateToolSelection(t *testing.T) {
	suite, err := LoadToolSelectionSuite(filepath.Join(testdataDir, ToolSelectionFile))
	if err != nil {
		t.Fatalf("LoadToolSelectionSuite() error = %v", err)
	}

	metrics, results := EvaluateToolSelection(suite, oracle(suite))

	if metrics.TotalTests != len(suite.Tests) {
		t.Errorf("Total tests: expected %d, got %d", len(suite.Tests), metrics.TotalTests)
	}
	if metrics.Accuracy != 1.0 {
		t.Errorf("Perfect selector should have 100%% accuracy, got %.1f%%", metrics.Accuracy*100)
	}
	if len(results) != len(suite.Tests) {
		t.Errorf("Should have result for each test")
	}
	for _, result := range results {
		if !result.Passed {
			t.Errorf("Test %s should pass with perfect selector: %v", result.TestID, result.Errors)
		}
	}
}

func TestEvaluateToolSelectionWithWrongAnswers(t *testing.T) {
	suite := &ToolSelectionSuite{
		Name: "Test Suite",
		Tests: []ToolSelectionTest{
			{
				ID:           "test-001",
				Category:     "gas",
				Input:        "gas z-factor at 2000 psia",
				ExpectedTool: "gas_z_factor",
				ExpectedArgs: map[string]any{"p": float64(2000)},
				NotTools:     []string{"gas_formation_volume_factor"},
			},
			{
				ID:           "test-002",
				Category:     "oil",
				Input:        "oil bubble point",
				ExpectedTool: "oil_bubble_point",
			},
		},
	}

	wrongSelector := &MockToolSelector{DefaultTool: "gas_formation_volume_factor"}
	metrics, results := EvaluateToolSelection(suite, wrongSelector)

	if metrics.PassedTests != 0 {
		t.Errorf("Wrong selector should have 0 passed tests, got %d", metrics.PassedTests)
	}
	if metrics.FailedTests != 2 {
		t.Errorf("Wrong selector should have 2 failed tests, got %d", metrics.FailedTests)
	}
	if metrics.Accuracy != 0 {
		t.Errorf("Wrong selector should have 0%% accuracy, got %.1f%%", metrics.Accuracy*100)
	}
	if metrics.ByTool["gas_formation_volume_factor"].FalsePositives != 2 {
		t.Errorf("false positives = %d, want 2", metrics.ByTool["gas_formation_volume_factor"].FalsePositives)
	}

	for _, result := range results {
		if result.Passed {
			t.Errorf("Test %s should not pass with wrong selector", result.TestID)
		}
		if len(result.Errors) == 0 {
			t.Errorf("Test %s should have errors", result.TestID)
		}
	}
	if !strings.Contains(strings.Join(results[0].Errors, ";"), "forbidden") {
		t.Errorf("first result should flag the forbidden tool: %v", results[0].Errors)
	}
}

func TestEvaluateConfusionPairs(t *testing.T) {
	suite := &ConfusionPairSuite{
		Name: "Test Confusion Pairs",
		Pairs: []ConfusionPair{
			{
				ID:             "pair-direction",
				Tools:          []string{"lorenz_to_beta", "beta_to_lorenz"},
				Disambiguation: "named after the direction of conversion",
				Tests: []ConfusionPairTest{
					{Input: "Lorenz to beta", Expected: "lorenz_to_beta", Reason: "Lorenz known"},
					{Input: "beta to Lorenz", Expected: "beta_to_lorenz", Reason: "beta known"},
				},
			},
		},
	}

	perfectSelector := &MockToolSelector{
		Responses: map[string]mockResponse{
			"Lorenz to beta": {Tool: "lorenz_to_beta"},
			"beta to Lorenz": {Tool: "beta_to_lorenz"},
		},
	}

	metrics, results := EvaluateConfusionPairs(suite, perfectSelector)

	if metrics.TotalTests != 2 {
		t.Errorf("Expected 2 tests, got %d", metrics.TotalTests)
	}
	if metrics.Accuracy != 1.0 {
		t.Errorf("Perfect selector should have 100%% accuracy, got %.1f%%", metrics.Accuracy*100)
	}
	for _, result := range results {
		if !result.Passed {
			t.Errorf("Test should pass: %s", result.TestInput)
		}
	}

	// Always picking one side gets exactly half right
	oneSided := &MockToolSelector{DefaultTool: "lorenz_to_beta"}
	metrics, _ = EvaluateConfusionPairs(suite, oneSided)
	if metrics.PassedTests != 1 || metrics.FailedTests != 1 {
		t.Errorf("one-sided selector: passed %d, failed %d; want 1 and 1", metrics.PassedTests, metrics.FailedTests)
	}
}

func TestEvaluateArguments(t *testing.T) {
	suite := &ArgumentSuite{
		Name: "Test Arguments",
		Tests: []ArgumentTest{
			{
				ID:           "args-001",
				Tool:         "gas_z_factor",
				Input:        "gas z-factor at 2000 psia and 180 degF",
				RequiredArgs: []string{"p", "degf"},
				ExpectedArgs: map[string]any{
					"p":    float64(2000), // JSON numbers are float64
					"degf": float64(180),
				},
				ForbiddenArgs: []string{"api"},
			},
		},
	}

	correctSelector := &MockToolSelector{
		Responses: map[string]mockResponse{
			"gas z-factor at 2000 psia and 180 degF": {
				Tool: "gas_z_factor",
				Args: map[string]any{"p": float64(2000), "degf": 180.0},
			},
		},
	}

	metrics, results := EvaluateArguments(suite, correctSelector)

	if metrics.TotalTests != 1 {
		t.Errorf("Expected 1 test, got %d", metrics.TotalTests)
	}
	if metrics.PassedTests != 1 {
		t.Errorf("Expected 1 passed test, got %d", metrics.PassedTests)
	}
	if len(results) > 0 && !results[0].Passed {
		t.Errorf("Test should pass: missing=%v, wrong=%v, forbidden=%v",
			results[0].MissingArgs, results[0].WrongArgs, results[0].ForbiddenHit)
	}
}

func TestEvaluateArgumentsWithForbidden(t *testing.T) {
	suite := &ArgumentSuite{
		Name: "Test Forbidden Args",
		Tests: []ArgumentTest{
			{
				ID:            "args-001",
				Tool:          "oil_bubble_point",
				Input:         "bubble point for 35 API oil, gas gravity 0.75",
				RequiredArgs:  []string{"api"},
				ExpectedArgs:  map[string]any{"api": float64(35), "sg_g": 0.75},
				ForbiddenArgs: []string{"sg"},
			},
		},
	}

	badSelector := &MockToolSelector{
		Responses: map[string]mockResponse{
			"bubble point for 35 API oil, gas gravity 0.75": {
				Tool: "oil_bubble_point",
				Args: map[string]any{"api": float64(35), "sg": 0.75},
			},
		},
	}

	metrics, results := EvaluateArguments(suite, badSelector)

	if metrics.PassedTests != 0 {
		t.Errorf("Expected 0 passed tests (forbidden arg used), got %d", metrics.PassedTests)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if len(results[0].ForbiddenHit) == 0 {
		t.Error("Should flag forbidden arg usage")
	}
	if len(results[0].MissingArgs) != 1 || results[0].MissingArgs[0] != "sg_g" {
		t.Errorf("MissingArgs = %v, want [sg_g]", results[0].MissingArgs)
	}
}

func TestEvaluateArgumentsWrongToolIsRecorded(t *testing.T) {
	suite := &ArgumentSuite{
		Tests: []ArgumentTest{
			{ID: "a", Tool: "gas_z_factor", Input: "z"},
			{ID: "b", Tool: "gas_z_factor", Input: "boom"},
		},
	}

	metrics, results := EvaluateArguments(suite, &MockToolSelector{DefaultTool: "gas_viscosity"})
	if metrics.FailedTests != 2 || len(results) != 2 {
		t.Errorf("wrong tool should count as a failure: failed %d, results %d", metrics.FailedTests, len(results))
	}

	metrics, _ = EvaluateArguments(suite, &MockToolSelector{Err: errors.New("model offline")})
	if metrics.FailedTests != 2 {
		t.Errorf("selector errors should count as failures, got %d", metrics.FailedTests)
	}
	if !strings.Contains(metrics.FailedDetails[0], "model offline") {
		t.Errorf("failure detail should carry the selector error: %q", metrics.FailedDetails[0])
	}
}

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name     string
		expected any
		actual   any
		want     bool
	}{
		{"equal strings", "DAK", "DAK", true},
		{"different strings", "DAK", "HY", false},
		{"int vs float64", 2000, float64(2000), true},
		{"float64 vs float64", 0.7, 0.7, true},
		{"float within tolerance", 0.7, 0.7000000001, true},
		{"float outside tolerance", 0.7, 0.71, false},
		{"number vs string", 2000.0, "2000", false},
		{"equal slices", []any{1000.0, 2000.0}, []any{1000.0, 2000.0}, true},
		{"int slice vs float slice", []int{1000, 2000}, []float64{1000, 2000}, true},
		{"different slices", []string{"a", "b"}, []string{"a", "c"}, false},
		{"different lengths", []float64{1}, []float64{1, 2}, false},
		{"nil values", nil, nil, true},
		{"nil vs value", nil, "test", false},
		{"equal bools", true, true, true},
		{"different bools", true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compareValues(tt.expected, tt.actual)
			if got != tt.want {
				t.Errorf("compareValues(%v, %v) = %v, want %v", tt.expected, tt.actual, got, tt.want)
			}
		})
	}
}

func TestFormatMetrics(t *testing.T) {
	metrics := &EvalMetrics{
		TotalTests:  10,
		PassedTests: 8,
		FailedTests: 2,
		Accuracy:    0.8,
		ByCategory: map[string]*CategoryMetrics{
			"gas":     {Total: 5, Passed: 4, Failed: 1},
			"geomech": {Total: 5, Passed: 4, Failed: 1},
		},
		FailedDetails: []string{
			"[test-1] input: error",
			"[test-2] input: error",
		},
	}

	output := FormatMetrics(metrics, "Test Suite")

	if !strings.Contains(output, "80.0%") {
		t.Error("Should show accuracy percentage")
	}
	if strings.Index(output, "gas") > strings.Index(output, "geomech") {
		t.Error("Categories should be sorted")
	}
	if !strings.Contains(output, "Failed Tests:") {
		t.Error("Should show failed tests section")
	}
}

func TestFormatMetricsTruncatesFailures(t *testing.T) {
	metrics := &EvalMetrics{TotalTests: 12, FailedTests: 12}
	for i := 0; i < 12; i++ {
		metrics.FailedDetails = append(metrics.FailedDetails, "[x] failed")
	}

	output := FormatMetrics(metrics, "Truncated")

	if !strings.Contains(output, "showing first 10 of 12") {
		t.Errorf("output should say the list is truncated:\n%s", output)
	}
	if got := strings.Count(output, "[x] failed"); got != maxFailedShown {
		t.Errorf("printed %d failures, want %d", got, maxFailedShown)
	}
}

func TestLoadAllEvals(t *testing.T) {
	toolSelection, confusionPairs, arguments, err := LoadAllEvals(testdataDir)
	if err != nil {
		t.Fatalf("Failed to load all evals: %v", err)
	}

	total := len(toolSelection.Tests)
	for _, pair := range confusionPairs.Pairs {
		total += len(pair.Tests)
	}
	total += len(arguments.Tests)

	t.Logf("Loaded %d total evaluation tests", total)
}
