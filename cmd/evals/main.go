// Command evals loads the tool selection suites and scores the keyword
// baseline selector against them.
//
// Usage:
//
//	go run ./cmd/evals --dir ./evals/testdata --suite all --run
//
// Without --run the command only reports suite coverage. To evaluate a
// model, implement evals.ToolSelector and call the Evaluate functions.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jessevdk/go-flags"

	"github.com/olgasafonova/restoolbox-mcp-server/evals"
	"github.com/olgasafonova/restoolbox-mcp-server/tools"
)

type options struct {
	Dir     string `long:"dir" default:"./evals/testdata" description:"Directory containing eval JSON files"`
	Suite   string `long:"suite" default:"all" choice:"tool_selection" choice:"confusion_pairs" choice:"arguments" choice:"all" description:"Suite to load"`
	Run     bool   `long:"run" description:"Score the keyword baseline selector"`
	Verbose bool   `short:"v" long:"verbose" description:"Show detailed test information"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	fmt.Println("Reservoir Toolbox MCP Server - Evaluation Framework")
	fmt.Println("===================================================")
	fmt.Println()

	var selector evals.ToolSelector
	if opts.Run {
		selector = evals.NewKeywordSelector(tools.AllTools)
	}

	var err error
	switch opts.Suite {
	case "tool_selection":
		err = toolSelection(opts, selector)
	case "confusion_pairs":
		err = confusionPairs(opts, selector)
	case "arguments":
		err = arguments(opts, selector)
	default:
		err = all(opts, selector)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func toolSelection(opts options, selector evals.ToolSelector) error {
	suite, err := evals.LoadToolSelectionSuite(filepath.Join(opts.Dir, evals.ToolSelectionFile))
	if err != nil {
		return fmt.Errorf("loading tool selection suite: %w", err)
	}

	fmt.Printf("Tool Selection Suite: %s\n", suite.Name)
	fmt.Printf("Version: %s\n", suite.Version)
	fmt.Printf("Description: %s\n", suite.Description)
	fmt.Printf("Total Tests: %d\n", len(suite.Tests))
	fmt.Println()

	categories := make(map[string]int)
	byTool := make(map[string]int)
	for _, test := range suite.Tests {
		categories[test.Category]++
		byTool[test.ExpectedTool]++
	}
	printCounts("Tests by Category:", categories, 15)
	printCounts("Tests by Tool:", byTool, 40)

	if opts.Verbose {
		fmt.Println("Test Cases:")
		for _, test := range suite.Tests {
			fmt.Printf("  [%s] %s\n", test.ID, test.Input)
			fmt.Printf("    → %s\n", test.ExpectedTool)
			if len(test.NotTools) > 0 {
				fmt.Printf("    ✗ %v\n", test.NotTools)
			}
		}
	}

	if selector != nil {
		metrics, _ := evals.EvaluateToolSelection(suite, selector)
		fmt.Print(evals.FormatMetrics(metrics, suite.Name))
	}
	return nil
}

func confusionPairs(opts options, selector evals.ToolSelector) error {
	suite, err := evals.LoadConfusionPairSuite(filepath.Join(opts.Dir, evals.ConfusionPairFile))
	if err != nil {
		return fmt.Errorf("loading confusion pairs suite: %w", err)
	}

	fmt.Printf("Confusion Pairs Suite: %s\n", suite.Name)
	fmt.Printf("Version: %s\n", suite.Version)
	fmt.Printf("Description: %s\n", suite.Description)
	fmt.Printf("Total Pairs: %d\n", len(suite.Pairs))

	fmt.Println("Confusion Pairs:")
	for _, pair := range suite.Pairs {
		fmt.Printf("\n  %s:\n", pair.ID)
		fmt.Printf("    Tools: %v\n", pair.Tools)
		fmt.Printf("    Rule: %s\n", pair.Disambiguation)
		fmt.Printf("    Tests: %d\n", len(pair.Tests))

		if opts.Verbose {
			for _, test := range pair.Tests {
				fmt.Printf("      %q\n", test.Input)
				fmt.Printf("        → %s (%s)\n", test.Expected, test.Reason)
			}
		}
	}
	fmt.Println()

	if selector != nil {
		metrics, _ := evals.EvaluateConfusionPairs(suite, selector)
		fmt.Print(evals.FormatMetrics(metrics, suite.Name))
	}
	return nil
}

func arguments(opts options, selector evals.ToolSelector) error {
	suite, err := evals.LoadArgumentSuite(filepath.Join(opts.Dir, evals.ArgumentFile))
	if err != nil {
		return fmt.Errorf("loading argument suite: %w", err)
	}

	fmt.Printf("Argument Suite: %s\n", suite.Name)
	fmt.Printf("Version: %s\n", suite.Version)
	fmt.Printf("Description: %s\n", suite.Description)
	fmt.Printf("Total Tests: %d\n", len(suite.Tests))
	fmt.Println()

	byTool := make(map[string]int)
	for _, test := range suite.Tests {
		byTool[test.Tool]++
	}
	printCounts("Tests by Tool:", byTool, 40)

	rules := suite.ValidationRules
	fmt.Println("Validation Rules:")
	fmt.Printf("  Units: %s\n", rules.Units)
	fmt.Printf("  Array Handling: %s\n", rules.ArrayHandling)
	fmt.Printf("  Method Codes: %s\n", rules.MethodCodes)
	fmt.Printf("  Defaults: %s\n", rules.Defaults)
	fmt.Println()

	if opts.Verbose {
		fmt.Println("Test Cases:")
		for _, test := range suite.Tests {
			fmt.Printf("  [%s] %s\n", test.ID, test.Input)
			fmt.Printf("    Tool: %s\n", test.Tool)
			fmt.Printf("    Required: %v\n", test.RequiredArgs)
			fmt.Printf("    Expected: %v\n", test.ExpectedArgs)
			if len(test.ForbiddenArgs) > 0 {
				fmt.Printf("    Forbidden: %v\n", test.ForbiddenArgs)
			}
			if test.ArgNotes != "" {
				fmt.Printf("    Notes: %s\n", test.ArgNotes)
			}
		}
	}

	if selector != nil {
		metrics, _ := evals.EvaluateArguments(suite, selector)
		fmt.Print(evals.FormatMetrics(metrics, suite.Name))
	}
	return nil
}

func all(opts options, selector evals.ToolSelector) error {
	toolSuite, pairSuite, argSuite, err := evals.LoadAllEvals(opts.Dir)
	if err != nil {
		return err
	}

	confusionTests := 0
	for _, pair := range pairSuite.Pairs {
		confusionTests += len(pair.Tests)
	}
	totalTests := len(toolSuite.Tests) + confusionTests + len(argSuite.Tests)

	fmt.Printf("Loaded all evaluation suites from: %s\n\n", opts.Dir)

	fmt.Println("Summary:")
	fmt.Println("--------")
	fmt.Printf("Tool Selection Tests:   %d\n", len(toolSuite.Tests))
	fmt.Printf("Confusion Pair Tests:   %d (across %d pairs)\n", confusionTests, len(pairSuite.Pairs))
	fmt.Printf("Argument Tests:         %d\n", len(argSuite.Tests))
	fmt.Printf("──────────────────────────\n")
	fmt.Printf("Total Evaluation Tests: %d\n", totalTests)
	fmt.Println()

	covered := make(map[string]bool)
	for _, test := range toolSuite.Tests {
		covered[test.ExpectedTool] = true
	}
	for _, pair := range pairSuite.Pairs {
		for _, tool := range pair.Tools {
			covered[tool] = true
		}
	}
	for _, test := range argSuite.Tests {
		covered[test.Tool] = true
	}
	fmt.Printf("Tool Coverage: %d of %d tools tested\n", len(covered), len(tools.AllTools))

	if opts.Verbose {
		fmt.Println("\nUncovered Tools:")
		for _, spec := range tools.AllTools {
			if !covered[spec.Name] {
				fmt.Printf("  - %s\n", spec.Name)
			}
		}
	}

	if selector == nil {
		fmt.Println()
		fmt.Println("Pass --run to score the keyword baseline, or implement evals.ToolSelector")
		fmt.Println("and use EvaluateToolSelection(), EvaluateConfusionPairs(), EvaluateArguments()")
		return nil
	}

	metrics, _ := evals.EvaluateToolSelection(toolSuite, selector)
	fmt.Print(evals.FormatMetrics(metrics, toolSuite.Name))
	metrics, _ = evals.EvaluateConfusionPairs(pairSuite, selector)
	fmt.Print(evals.FormatMetrics(metrics, pairSuite.Name))
	metrics, _ = evals.EvaluateArguments(argSuite, selector)
	fmt.Print(evals.FormatMetrics(metrics, argSuite.Name))
	return nil
}

// printCounts prints a count table sorted by key
func printCounts(title string, counts map[string]int, width int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println(title)
	for _, k := range keys {
		fmt.Printf("  %-*s: %d\n", width, k, counts[k])
	}
	fmt.Println()
}
