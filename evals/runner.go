package evals

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"sort"
	"strings"
)

// ToolSelector picks a tool and its arguments for a natural language
// request. A model client, the keyword baseline or a test mock can
// implement it.
type ToolSelector interface {
	SelectTool(input string) (toolName string, args map[string]any, err error)
}

// ToolSelectionResult is the outcome of one tool selection case.
type ToolSelectionResult struct {
	TestID       string
	Input        string
	ExpectedTool string
	ActualTool   string
	Passed       bool
	Errors       []string
}

// ConfusionPairResult is the outcome of one disambiguation case.
type ConfusionPairResult struct {
	PairID       string
	TestInput    string
	ExpectedTool string
	ActualTool   string
	Reason       string
	Passed       bool
}

// ArgumentResult is the outcome of one argument correctness case.
type ArgumentResult struct {
	TestID       string
	Tool         string
	Input        string
	Passed       bool
	MissingArgs  []string
	WrongArgs    map[string]string // arg -> "expected X, got Y"
	ForbiddenHit []string
}

// EvalMetrics aggregates a suite run.
type EvalMetrics struct {
	TotalTests    int
	PassedTests   int
	FailedTests   int
	Accuracy      float64
	ByCategory    map[string]*CategoryMetrics
	ByTool        map[string]*ToolMetrics
	FailedDetails []string
}

// CategoryMetrics counts cases per category, confusion pair or tool.
type CategoryMetrics struct {
	Total  int
	Passed int
	Failed int
}

// ToolMetrics counts how often a tool was expected and picked.
type ToolMetrics struct {
	ExpectedCount  int
	SelectedCount  int
	CorrectCount   int
	FalsePositives int // picked when another tool was expected
	FalseNegatives int // expected but another tool was picked
}

// scoreboard accumulates EvalMetrics while a suite runs.
type scoreboard struct {
	m EvalMetrics
}

func newScoreboard() *scoreboard {
	return &scoreboard{m: EvalMetrics{
		ByCategory: make(map[string]*CategoryMetrics),
		ByTool:     make(map[string]*ToolMetrics),
	}}
}

func (s *scoreboard) tool(name string) *ToolMetrics {
	tm, ok := s.m.ByTool[name]
	if !ok {
		tm = &ToolMetrics{}
		s.m.ByTool[name] = tm
	}
	return tm
}

func (s *scoreboard) category(name string) *CategoryMetrics {
	cm, ok := s.m.ByCategory[name]
	if !ok {
		cm = &CategoryMetrics{}
		s.m.ByCategory[name] = cm
	}
	return cm
}

// selection books one pick of actual where expected was wanted.
func (s *scoreboard) selection(expected, actual string) {
	s.tool(expected).ExpectedCount++
	s.tool(actual).SelectedCount++
	if actual == expected {
		s.tool(expected).CorrectCount++
		return
	}
	s.tool(expected).FalseNegatives++
	s.tool(actual).FalsePositives++
}

// outcome books a finished case under category. detail is only rendered
// for failures.
func (s *scoreboard) outcome(category string, passed bool, detail func() string) {
	cm := s.category(category)
	cm.Total++
	s.m.TotalTests++
	if passed {
		cm.Passed++
		s.m.PassedTests++
		return
	}
	cm.Failed++
	s.m.FailedTests++
	s.m.FailedDetails = append(s.m.FailedDetails, detail())
}

func (s *scoreboard) metrics() *EvalMetrics {
	if s.m.TotalTests > 0 {
		s.m.Accuracy = float64(s.m.PassedTests) / float64(s.m.TotalTests)
	}
	return &s.m
}

// EvaluateToolSelection scores selector on every case in suite. A case
// passes when the expected tool is picked, no excluded tool is picked and
// every expected argument matches.
func EvaluateToolSelection(suite *ToolSelectionSuite, selector ToolSelector) (*EvalMetrics, []ToolSelectionResult) {
	board := newScoreboard()
	results := make([]ToolSelectionResult, 0, len(suite.Tests))

	for _, test := range suite.Tests {
		tool, args, err := selector.SelectTool(test.Input)
		board.selection(test.ExpectedTool, tool)

		var problems []string
		if err != nil {
			problems = append(problems, fmt.Sprintf("selector error: %v", err))
		}
		if tool != test.ExpectedTool {
			problems = append(problems, fmt.Sprintf("wrong tool: expected %s, got %s", test.ExpectedTool, tool))
		}
		if slices.Contains(test.NotTools, tool) {
			problems = append(problems, fmt.Sprintf("selected forbidden tool: %s", tool))
		}
		for _, key := range sortedKeys(test.ExpectedArgs) {
			want := test.ExpectedArgs[key]
			got, ok := args[key]
			switch {
			case !ok:
				problems = append(problems, fmt.Sprintf("missing arg %s (expected %v)", key, want))
			case !compareValues(want, got):
				problems = append(problems, fmt.Sprintf("wrong arg %s: expected %v, got %v", key, want, got))
			}
		}

		passed := len(problems) == 0
		board.outcome(test.Category, passed, func() string {
			return fmt.Sprintf("[%s] %s: %s", test.ID, test.Input, strings.Join(problems, "; "))
		})
		results = append(results, ToolSelectionResult{
			TestID:       test.ID,
			Input:        test.Input,
			ExpectedTool: test.ExpectedTool,
			ActualTool:   tool,
			Passed:       passed,
			Errors:       problems,
		})
	}

	return board.metrics(), results
}

// EvaluateConfusionPairs scores selector on each pair's cases, grouping
// the per-category numbers by pair ID.
func EvaluateConfusionPairs(suite *ConfusionPairSuite, selector ToolSelector) (*EvalMetrics, []ConfusionPairResult) {
	board := newScoreboard()
	var results []ConfusionPairResult

	for _, pair := range suite.Pairs {
		for _, test := range pair.Tests {
			tool, _, err := selector.SelectTool(test.Input)
			board.selection(test.Expected, tool)

			passed := err == nil && tool == test.Expected
			board.outcome(pair.ID, passed, func() string {
				return fmt.Sprintf("[%s] %s: expected %s, got %s (%s)",
					pair.ID, test.Input, test.Expected, tool, test.Reason)
			})
			results = append(results, ConfusionPairResult{
				PairID:       pair.ID,
				TestInput:    test.Input,
				ExpectedTool: test.Expected,
				ActualTool:   tool,
				Reason:       test.Reason,
				Passed:       passed,
			})
		}
	}

	return board.metrics(), results
}

// EvaluateArguments scores argument filling. Arguments are only checked
// when the selector picked the intended tool.
func EvaluateArguments(suite *ArgumentSuite, selector ToolSelector) (*EvalMetrics, []ArgumentResult) {
	board := newScoreboard()
	results := make([]ArgumentResult, 0, len(suite.Tests))

	for _, test := range suite.Tests {
		result := ArgumentResult{
			TestID:    test.ID,
			Tool:      test.Tool,
			Input:     test.Input,
			WrongArgs: make(map[string]string),
		}

		var cause string
		tool, args, err := selector.SelectTool(test.Input)
		switch {
		case err != nil:
			cause = fmt.Sprintf("selector error: %v", err)
		case tool != test.Tool:
			cause = fmt.Sprintf("wrong tool: %s", tool)
		default:
			checkArguments(test, args, &result)
		}
		result.Passed = cause == "" && len(result.MissingArgs) == 0 &&
			len(result.WrongArgs) == 0 && len(result.ForbiddenHit) == 0

		board.outcome(test.Tool, result.Passed, func() string {
			return fmt.Sprintf("[%s] %s: %s", test.ID, test.Input, argumentProblems(cause, result))
		})
		results = append(results, result)
	}

	return board.metrics(), results
}

// checkArguments fills the missing, wrong and forbidden lists of result.
func checkArguments(test ArgumentTest, args map[string]any, result *ArgumentResult) {
	for _, key := range test.RequiredArgs {
		if _, ok := args[key]; !ok {
			result.MissingArgs = append(result.MissingArgs, key)
		}
	}
	for _, key := range sortedKeys(test.ExpectedArgs) {
		want := test.ExpectedArgs[key]
		got, ok := args[key]
		switch {
		case !ok:
			if !slices.Contains(result.MissingArgs, key) {
				result.MissingArgs = append(result.MissingArgs, key)
			}
		case !compareValues(want, got):
			result.WrongArgs[key] = fmt.Sprintf("expected %v, got %v", want, got)
		}
	}
	for _, key := range test.ForbiddenArgs {
		if _, ok := args[key]; ok {
			result.ForbiddenHit = append(result.ForbiddenHit, key)
		}
	}
}

func argumentProblems(cause string, result ArgumentResult) string {
	var parts []string
	if cause != "" {
		parts = append(parts, cause)
	}
	if len(result.MissingArgs) > 0 {
		parts = append(parts, fmt.Sprintf("missing: %v", result.MissingArgs))
	}
	for _, key := range sortedKeys(result.WrongArgs) {
		parts = append(parts, key+": "+result.WrongArgs[key])
	}
	if len(result.ForbiddenHit) > 0 {
		parts = append(parts, fmt.Sprintf("forbidden: %v", result.ForbiddenHit))
	}
	return strings.Join(parts, "; ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// argTolerance is the relative tolerance for numeric arguments.
const argTolerance = 1e-6

// compareValues reports whether an actual argument matches the expected
// one. Numbers compare across Go types, slices element by element.
func compareValues(expected, actual any) bool {
	if expected == nil || actual == nil {
		return expected == nil && actual == nil
	}

	if e, ok := asFloat(expected); ok {
		a, ok := asFloat(actual)
		if !ok {
			return false
		}
		scale := math.Max(1, math.Max(math.Abs(e), math.Abs(a)))
		return math.Abs(e-a) <= argTolerance*scale
	}

	ev, av := reflect.ValueOf(expected), reflect.ValueOf(actual)
	if ev.Kind() == reflect.Slice && av.Kind() == reflect.Slice {
		if ev.Len() != av.Len() {
			return false
		}
		for i := range ev.Len() {
			if !compareValues(ev.Index(i).Interface(), av.Index(i).Interface()) {
				return false
			}
		}
		return true
	}

	return reflect.DeepEqual(expected, actual)
}

func asFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// maxFailedShown caps the failure list printed by FormatMetrics.
const maxFailedShown = 10

// FormatMetrics renders a suite run as plain text.
func FormatMetrics(metrics *EvalMetrics, suiteName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n=== %s ===\n", suiteName)
	fmt.Fprintf(&b, "Total: %d tests\n", metrics.TotalTests)
	fmt.Fprintf(&b, "Passed: %d (%.1f%%)\n", metrics.PassedTests, metrics.Accuracy*100)
	fmt.Fprintf(&b, "Failed: %d\n", metrics.FailedTests)

	if len(metrics.ByCategory) > 0 {
		b.WriteString("\nBy Category:\n")
		for _, name := range sortedKeys(metrics.ByCategory) {
			cm := metrics.ByCategory[name]
			if cm.Total == 0 {
				continue
			}
			fmt.Fprintf(&b, "  %-30s: %d/%d (%.0f%%)\n", name, cm.Passed, cm.Total,
				100*float64(cm.Passed)/float64(cm.Total))
		}
	}

	failed := metrics.FailedDetails
	switch {
	case len(failed) == 0:
		return b.String()
	case len(failed) > maxFailedShown:
		fmt.Fprintf(&b, "\nFailed Tests (showing first %d of %d):\n", maxFailedShown, len(failed))
		failed = failed[:maxFailedShown]
	default:
		b.WriteString("\nFailed Tests:\n")
	}
	for _, detail := range failed {
		fmt.Fprintf(&b, "  - %s\n", detail)
	}
	return b.String()
}
