// Package evals provides an evaluation framework for MCP tool selection
// accuracy. It checks that a selector picks the right reservoir engineering
// tool for a natural language request and fills its arguments correctly.
package evals

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ToolSelectionTest represents a single tool selection evaluation case
type ToolSelectionTest struct {
	ID           string         `json:"id"`
	Category     string         `json:"category"`
	Input        string         `json:"input"`
	ExpectedTool string         `json:"expected_tool"`
	ExpectedArgs map[string]any `json:"expected_args"`
	NotTools     []string       `json:"not_tools"`
}

// ToolSelectionSuite contains all tool selection tests
type ToolSelectionSuite struct {
	Name        string              `json:"name"`
	Version     string              `json:"version"`
	Description string              `json:"description"`
	Tests       []ToolSelectionTest `json:"tests"`
}

// ConfusionPairTest represents a single disambiguation test
type ConfusionPairTest struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Reason   string `json:"reason"`
}

// ConfusionPair represents a pair of tools that are commonly confused
type ConfusionPair struct {
	ID             string              `json:"id"`
	Tools          []string            `json:"tools"`
	Disambiguation string              `json:"disambiguation"`
	Tests          []ConfusionPairTest `json:"tests"`
}

// ConfusionPairSuite contains all confusion pair tests
type ConfusionPairSuite struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Pairs       []ConfusionPair `json:"pairs"`
}

// ArgumentTest represents a single argument correctness test
type ArgumentTest struct {
	ID            string         `json:"id"`
	Tool          string         `json:"tool"`
	Input         string         `json:"input"`
	RequiredArgs  []string       `json:"required_args"`
	ExpectedArgs  map[string]any `json:"expected_args"`
	ForbiddenArgs []string       `json:"forbidden_args"`
	ArgNotes      string         `json:"arg_notes,omitempty"`
}

// ValidationRules documents how arguments are expected to be written
type ValidationRules struct {
	Units         string `json:"units"`
	ArrayHandling string `json:"array_handling"`
	MethodCodes   string `json:"method_codes"`
	Defaults      string `json:"defaults"`
}

// ArgumentSuite contains all argument correctness tests
type ArgumentSuite struct {
	Name            string          `json:"name"`
	Version         string          `json:"version"`
	Description     string          `json:"description"`
	Tests           []ArgumentTest  `json:"tests"`
	ValidationRules ValidationRules `json:"validation_rules"`
}

func loadJSON[T any](path string) (*T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var suite T
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&suite); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return &suite, nil
}

// LoadToolSelectionSuite loads tool selection tests from a JSON file
func LoadToolSelectionSuite(path string) (*ToolSelectionSuite, error) {
	return loadJSON[ToolSelectionSuite](path)
}

// LoadConfusionPairSuite loads confusion pair tests from a JSON file
func LoadConfusionPairSuite(path string) (*ConfusionPairSuite, error) {
	return loadJSON[ConfusionPairSuite](path)
}

// LoadArgumentSuite loads argument correctness tests from a JSON file
func LoadArgumentSuite(path string) (*ArgumentSuite, error) {
	return loadJSON[ArgumentSuite](path)
}

// Suite file names inside an eval directory.
const (
	ToolSelectionFile = "tool_selection.json"
	ConfusionPairFile = "confusion_pairs.json"
	ArgumentFile      = "argument_correctness.json"
)

// LoadAllEvals loads the three suites from dir.
func LoadAllEvals(dir string) (*ToolSelectionSuite, *ConfusionPairSuite, *ArgumentSuite, error) {
	selection, err := LoadToolSelectionSuite(filepath.Join(dir, ToolSelectionFile))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ToolSelectionFile, err)
	}
	pairs, err := LoadConfusionPairSuite(filepath.Join(dir, ConfusionPairFile))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ConfusionPairFile, err)
	}
	args, err := LoadArgumentSuite(filepath.Join(dir, ArgumentFile))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ArgumentFile, err)
	}
	return selection, pairs, args, nil
}
