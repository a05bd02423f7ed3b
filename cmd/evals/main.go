// Command evals runs MCP tool selection evaluations.
//
// Usage:
//
//	go run ./cmd/evals -dir ./evals -suite all
//
// This command loads evaluation test suites, checks that every referenced
// tool is actually registered, and reports on test coverage. For actual LLM
// evaluation, integrate the evals package with your LLM testing framework.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/crunchtools/wordpress-mcp-server/evals"
	"github.com/crunchtools/wordpress-mcp-server/tools"
)

func main() {
	dir := flag.String("dir", "./evals", "Directory containing eval JSON files")
	suite := flag.String("suite", "all", "Suite to load: tool_selection, confusion_pairs, arguments, or all")
	verbose := flag.Bool("verbose", false, "Show detailed test information")
	flag.Parse()

	fmt.Println("WordPress MCP Server - Evaluation Framework")
	fmt.Println("============================================")
	fmt.Println()

	switch *suite {
	case "tool_selection":
		loadToolSelection(*dir, *verbose)
	case "confusion_pairs":
		loadConfusionPairs(*dir, *verbose)
	case "arguments":
		loadArguments(*dir, *verbose)
	case "all":
		loadAll(*dir, *verbose)
	default:
		fmt.Fprintf(os.Stderr, "Unknown suite: %s\n", *suite)
		os.Exit(1)
	}
}

// registeredTools returns the set of tool names the server actually exposes.
func registeredTools() map[string]bool {
	known := make(map[string]bool)
	for _, spec := range tools.AllTools {
		known[spec.Name] = true
	}
	return known
}

func loadToolSelection(dir string, verbose bool) {
	path := filepath.Join(dir, "tool_selection.json")
	suite, err := evals.LoadToolSelectionSuite(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tool selection suite: %v\n", err)
		os.Exit(1)
	}

	reportUnknown(evals.ValidateToolReferences(registeredTools(), suite, nil, nil))

	fmt.Printf("Tool Selection Suite: %s\n", suite.Name)
	fmt.Printf("Version: %s\n", suite.Version)
	fmt.Printf("Description: %s\n", suite.Description)
	fmt.Printf("Total Tests: %d\n", len(suite.Tests))
	fmt.Println()

	// Count by category
	categories := make(map[string]int)
	toolCounts := make(map[string]int)
	for _, test := range suite.Tests {
		categories[test.Category]++
		toolCounts[test.ExpectedTool]++
	}

	fmt.Println("Tests by Category:")
	for cat, count := range categories {
		fmt.Printf("  %-15s: %d\n", cat, count)
	}
	fmt.Println()

	fmt.Println("Tests by Tool:")
	for tool, count := range toolCounts {
		fmt.Printf("  %-40s: %d\n", tool, count)
	}
	fmt.Println()

	if verbose {
		fmt.Println("Test Cases:")
		for _, test := range suite.Tests {
			fmt.Printf("  [%s] %s\n", test.ID, test.Input)
			fmt.Printf("    → %s\n", test.ExpectedTool)
			if len(test.NotTools) > 0 {
				fmt.Printf("    ✗ %v\n", test.NotTools)
			}
		}
	}
}

func loadConfusionPairs(dir string, verbose bool) {
	path := filepath.Join(dir, "confusion_pairs.json")
	suite, err := evals.LoadConfusionPairSuite(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading confusion pairs suite: %v\n", err)
		os.Exit(1)
	}

	reportUnknown(evals.ValidateToolReferences(registeredTools(), nil, suite, nil))

	fmt.Printf("Confusion Pairs Suite: %s\n", suite.Name)
	fmt.Printf("Version: %s\n", suite.Version)
	fmt.Printf("Description: %s\n", suite.Description)
	fmt.Printf("Total Pairs: %d\n", len(suite.Pairs))

	totalTests := 0
	for _, pair := range suite.Pairs {
		totalTests += len(pair.Tests)
	}
	fmt.Printf("Total Tests: %d\n", totalTests)
	fmt.Println()

	fmt.Println("Confusion Pairs:")
	for _, pair := range suite.Pairs {
		fmt.Printf("\n  %s:\n", pair.ID)
		fmt.Printf("    Tools: %v\n", pair.Tools)
		fmt.Printf("    Rule: %s\n", pair.Disambiguation)
		fmt.Printf("    Tests: %d\n", len(pair.Tests))

		if verbose {
			for _, test := range pair.Tests {
				fmt.Printf("      \"%s\"\n", test.Input)
				fmt.Printf("        → %s (%s)\n", test.Expected, test.Reason)
			}
		}
	}
	fmt.Println()
}

func loadArguments(dir string, verbose bool) {
	path := filepath.Join(dir, "argument_correctness.json")
	suite, err := evals.LoadArgumentSuite(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading argument suite: %v\n", err)
		os.Exit(1)
	}

	reportUnknown(evals.ValidateToolReferences(registeredTools(), nil, nil, suite))

	fmt.Printf("Argument Suite: %s\n", suite.Name)
	fmt.Printf("Version: %s\n", suite.Version)
	fmt.Printf("Description: %s\n", suite.Description)
	fmt.Printf("Total Tests: %d\n", len(suite.Tests))
	fmt.Println()

	// Count by tool
	toolCounts := make(map[string]int)
	for _, test := range suite.Tests {
		toolCounts[test.Tool]++
	}

	fmt.Println("Tests by Tool:")
	for tool, count := range toolCounts {
		fmt.Printf("  %-40s: %d\n", tool, count)
	}
	fmt.Println()

	fmt.Println("Validation Rules:")
	fmt.Printf("  ID Handling: %s\n", suite.ValidationRules.IDHandling)
	fmt.Printf("  Status Vocabulary: %s\n", suite.ValidationRules.StatusVocabulary)
	fmt.Printf("  Boolean Handling: %s\n", suite.ValidationRules.BooleanHandling)
	fmt.Printf("  Array Handling: %s\n", suite.ValidationRules.ArrayHandling)
	fmt.Printf("  Force Default: %s\n", suite.ValidationRules.ForceDefault)
	fmt.Println()

	if verbose {
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
}

func loadAll(dir string, verbose bool) {
	toolSelection, confusionPairs, arguments, err := evals.LoadAllEvals(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading evals: %v\n", err)
		os.Exit(1)
	}

	reportUnknown(evals.ValidateToolReferences(registeredTools(), toolSelection, confusionPairs, arguments))

	// Count totals
	totalTests := len(toolSelection.Tests)
	for _, pair := range confusionPairs.Pairs {
		totalTests += len(pair.Tests)
	}
	totalTests += len(arguments.Tests)

	fmt.Printf("Loaded all evaluation suites from: %s\n\n", dir)

	fmt.Println("Summary:")
	fmt.Println("--------")
	fmt.Printf("Tool Selection Tests:   %d\n", len(toolSelection.Tests))

	confusionTests := 0
	for _, pair := range confusionPairs.Pairs {
		confusionTests += len(pair.Tests)
	}
	fmt.Printf("Confusion Pair Tests:   %d (across %d pairs)\n", confusionTests, len(confusionPairs.Pairs))
	fmt.Printf("Argument Tests:         %d\n", len(arguments.Tests))
	fmt.Printf("──────────────────────────\n")
	fmt.Printf("Total Evaluation Tests: %d\n", totalTests)
	fmt.Println()

	// Show tool coverage against the registered set
	toolCoverage := make(map[string]bool)
	for _, test := range toolSelection.Tests {
		toolCoverage[test.ExpectedTool] = true
	}
	for _, pair := range confusionPairs.Pairs {
		for _, tool := range pair.Tools {
			toolCoverage[tool] = true
		}
	}
	for _, test := range arguments.Tests {
		toolCoverage[test.Tool] = true
	}

	registered := registeredTools()
	fmt.Printf("Tool Coverage: %d of %d registered tools tested\n", len(toolCoverage), len(registered))

	if verbose {
		covered := make([]string, 0, len(toolCoverage))
		for tool := range toolCoverage {
			covered = append(covered, tool)
		}
		sort.Strings(covered)

		fmt.Println("\nCovered Tools:")
		for _, tool := range covered {
			fmt.Printf("  ✓ %s\n", tool)
		}

		var uncovered []string
		for tool := range registered {
			if !toolCoverage[tool] {
				uncovered = append(uncovered, tool)
			}
		}
		if len(uncovered) > 0 {
			sort.Strings(uncovered)
			fmt.Println("\nUncovered Tools:")
			for _, tool := range uncovered {
				fmt.Printf("  - %s\n", tool)
			}
		}
	}

	fmt.Println()
	fmt.Println("To run with LLM integration, implement the evals.ToolSelector interface")
	fmt.Println("and use EvaluateToolSelection(), EvaluateConfusionPairs(), EvaluateArguments()")
}

// reportUnknown exits if a suite references tools the server does not register.
func reportUnknown(unknown []string) {
	if len(unknown) == 0 {
		return
	}
	fmt.Fprintln(os.Stderr, "Suite references unregistered tools:")
	for _, name := range unknown {
		fmt.Fprintf(os.Stderr, "  %s\n", name)
	}
	os.Exit(1)
}
