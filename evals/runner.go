// Package evals provides an evaluation framework for MCP tool selection
// accuracy. It validates that LLMs pick the right WordPress tool and extract
// proper arguments from natural language inputs.
package evals

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
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

// ValidationRules defines common argument conventions for WordPress tools
type ValidationRules struct {
	IDHandling       string `json:"id_handling"`
	StatusVocabulary string `json:"status_vocabulary"`
	BooleanHandling  string `json:"boolean_handling"`
	ArrayHandling    string `json:"array_handling"`
	ForceDefault     string `json:"force_default"`
}

// ArgumentSuite contains all argument correctness tests
type ArgumentSuite struct {
	Name            string          `json:"name"`
	Version         string          `json:"version"`
	Description     string          `json:"description"`
	Tests           []ArgumentTest  `json:"tests"`
	ValidationRules ValidationRules `json:"validation_rules"`
}

// ToolSelectionResult represents the result of a single tool selection evaluation
type ToolSelectionResult struct {
	TestID       string
	Input        string
	ExpectedTool string
	ActualTool   string
	Passed       bool
	Errors       []string
}

// ConfusionPairResult represents the result of a confusion pair evaluation
type ConfusionPairResult struct {
	PairID       string
	TestInput    string
	ExpectedTool string
	ActualTool   string
	Reason       string
	Passed       bool
}

// ArgumentResult represents the result of an argument correctness evaluation
type ArgumentResult struct {
	TestID       string
	Tool         string
	Input        string
	Passed       bool
	MissingArgs  []string
	WrongArgs    map[string]string // arg -> "expected X, got Y"
	ForbiddenHit []string          // forbidden args that were used
}

// EvalMetrics contains aggregate metrics for an evaluation run
type EvalMetrics struct {
	TotalTests    int
	PassedTests   int
	FailedTests   int
	Accuracy      float64 // PassedTests / TotalTests
	ByCategory    map[string]*CategoryMetrics
	ByTool        map[string]*ToolMetrics
	FailedDetails []string
}

// CategoryMetrics contains metrics per category
type CategoryMetrics struct {
	Total  int
	Passed int
	Failed int
}

// ToolMetrics contains metrics per tool
type ToolMetrics struct {
	ExpectedCount  int // times tool was expected
	SelectedCount  int // times tool was actually selected
	CorrectCount   int // times tool was correctly selected
	FalsePositives int // times wrong tool was selected instead
	FalseNegatives int // times this tool should have been selected but wasn't
}

// LoadToolSelectionSuite loads tool selection tests from a JSON file
func LoadToolSelectionSuite(path string) (*ToolSelectionSuite, error) {
	var suite ToolSelectionSuite
	if err := loadJSON(path, &suite); err != nil {
		return nil, err
	}
	return &suite, nil
}

// LoadConfusionPairSuite loads confusion pair tests from a JSON file
func LoadConfusionPairSuite(path string) (*ConfusionPairSuite, error) {
	var suite ConfusionPairSuite
	if err := loadJSON(path, &suite); err != nil {
		return nil, err
	}
	return &suite, nil
}

// LoadArgumentSuite loads argument correctness tests from a JSON file
func LoadArgumentSuite(path string) (*ArgumentSuite, error) {
	var suite ArgumentSuite
	if err := loadJSON(path, &suite); err != nil {
		return nil, err
	}
	return &suite, nil
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing JSON: %w", err)
	}
	return nil
}

// LoadAllEvals loads all evaluation suites from a directory
func LoadAllEvals(dir string) (*ToolSelectionSuite, *ConfusionPairSuite, *ArgumentSuite, error) {
	toolSelection, err := LoadToolSelectionSuite(filepath.Join(dir, "tool_selection.json"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading tool selection: %w", err)
	}

	confusionPairs, err := LoadConfusionPairSuite(filepath.Join(dir, "confusion_pairs.json"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading confusion pairs: %w", err)
	}

	arguments, err := LoadArgumentSuite(filepath.Join(dir, "argument_correctness.json"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading arguments: %w", err)
	}

	return toolSelection, confusionPairs, arguments, nil
}

// ValidateToolReferences checks that every tool name a suite references is
// actually registered. A suite referencing a renamed or removed tool passes
// evals vacuously, so this runs before any evaluation.
func ValidateToolReferences(known map[string]bool, ts *ToolSelectionSuite, cp *ConfusionPairSuite, as *ArgumentSuite) []string {
	unknown := map[string]bool{}

	if ts != nil {
		for _, test := range ts.Tests {
			if !known[test.ExpectedTool] {
				unknown[test.ExpectedTool] = true
			}
			for _, name := range test.NotTools {
				if !known[name] {
					unknown[name] = true
				}
			}
		}
	}
	if cp != nil {
		for _, pair := range cp.Pairs {
			for _, name := range pair.Tools {
				if !known[name] {
					unknown[name] = true
				}
			}
			for _, test := range pair.Tests {
				if !known[test.Expected] {
					unknown[test.Expected] = true
				}
			}
		}
	}
	if as != nil {
		for _, test := range as.Tests {
			if !known[test.Tool] {
				unknown[test.Tool] = true
			}
		}
	}

	names := make([]string, 0, len(unknown))
	for name := range unknown {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ToolSelector is an interface that an LLM or mock can implement for testing
type ToolSelector interface {
	// SelectTool returns the tool name and arguments for a given natural language input
	SelectTool(input string) (toolName string, args map[string]any, err error)
}

// EvaluateToolSelection runs tool selection tests against a selector
func EvaluateToolSelection(suite *ToolSelectionSuite, selector ToolSelector) (*EvalMetrics, []ToolSelectionResult) {
	metrics := newMetrics()
	var results []ToolSelectionResult

	for _, test := range suite.Tests {
		metrics.TotalTests++
		metrics.category(test.Category).Total++
		metrics.tool(test.ExpectedTool).ExpectedCount++

		actualTool, actualArgs, err := selector.SelectTool(test.Input)

		result := ToolSelectionResult{
			TestID:       test.ID,
			Input:        test.Input,
			ExpectedTool: test.ExpectedTool,
			ActualTool:   actualTool,
			Passed:       true,
		}

		if err != nil {
			result.Passed = false
			result.Errors = append(result.Errors, fmt.Sprintf("selector error: %v", err))
		}

		if actualTool != test.ExpectedTool {
			result.Passed = false
			result.Errors = append(result.Errors,
				fmt.Sprintf("wrong tool: expected %s, got %s", test.ExpectedTool, actualTool))
			metrics.tool(test.ExpectedTool).FalseNegatives++
			metrics.tool(actualTool).FalsePositives++
		} else {
			metrics.tool(test.ExpectedTool).CorrectCount++
		}
		metrics.tool(actualTool).SelectedCount++

		for _, forbidden := range test.NotTools {
			if actualTool == forbidden {
				result.Passed = false
				result.Errors = append(result.Errors,
					fmt.Sprintf("selected forbidden tool: %s", forbidden))
			}
		}

		for key, expectedValue := range test.ExpectedArgs {
			actualValue, exists := actualArgs[key]
			if !exists {
				result.Passed = false
				result.Errors = append(result.Errors,
					fmt.Sprintf("missing arg %s (expected %v)", key, expectedValue))
			} else if !compareValues(expectedValue, actualValue) {
				result.Passed = false
				result.Errors = append(result.Errors,
					fmt.Sprintf("wrong arg %s: expected %v, got %v", key, expectedValue, actualValue))
			}
		}

		if result.Passed {
			metrics.PassedTests++
			metrics.category(test.Category).Passed++
		} else {
			metrics.FailedTests++
			metrics.category(test.Category).Failed++
			metrics.FailedDetails = append(metrics.FailedDetails,
				fmt.Sprintf("[%s] %s: %s", test.ID, test.Input, strings.Join(result.Errors, "; ")))
		}

		results = append(results, result)
	}

	metrics.finish()
	return metrics, results
}

// EvaluateConfusionPairs runs confusion pair tests against a selector
func EvaluateConfusionPairs(suite *ConfusionPairSuite, selector ToolSelector) (*EvalMetrics, []ConfusionPairResult) {
	metrics := newMetrics()
	var results []ConfusionPairResult

	for _, pair := range suite.Pairs {
		for _, test := range pair.Tests {
			metrics.TotalTests++
			metrics.category(pair.ID).Total++
			metrics.tool(test.Expected).ExpectedCount++

			actualTool, _, err := selector.SelectTool(test.Input)

			result := ConfusionPairResult{
				PairID:       pair.ID,
				TestInput:    test.Input,
				ExpectedTool: test.Expected,
				ActualTool:   actualTool,
				Reason:       test.Reason,
				Passed:       err == nil && actualTool == test.Expected,
			}
			metrics.tool(actualTool).SelectedCount++

			if result.Passed {
				metrics.PassedTests++
				metrics.category(pair.ID).Passed++
				metrics.tool(test.Expected).CorrectCount++
			} else {
				metrics.FailedTests++
				metrics.category(pair.ID).Failed++
				metrics.tool(test.Expected).FalseNegatives++
				metrics.tool(actualTool).FalsePositives++
				metrics.FailedDetails = append(metrics.FailedDetails,
					fmt.Sprintf("[%s] %s: expected %s, got %s (%s)",
						pair.ID, test.Input, test.Expected, actualTool, test.Reason))
			}

			results = append(results, result)
		}
	}

	metrics.finish()
	return metrics, results
}

// EvaluateArguments runs argument correctness tests against a selector
func EvaluateArguments(suite *ArgumentSuite, selector ToolSelector) (*EvalMetrics, []ArgumentResult) {
	metrics := newMetrics()
	var results []ArgumentResult

	for _, test := range suite.Tests {
		metrics.TotalTests++
		metrics.category(test.Tool).Total++

		actualTool, actualArgs, err := selector.SelectTool(test.Input)

		result := ArgumentResult{
			TestID:    test.ID,
			Tool:      test.Tool,
			Input:     test.Input,
			Passed:    true,
			WrongArgs: make(map[string]string),
		}

		if err != nil || actualTool != test.Tool {
			result.Passed = false
		} else {
			for _, reqArg := range test.RequiredArgs {
				if _, exists := actualArgs[reqArg]; !exists {
					result.Passed = false
					result.MissingArgs = append(result.MissingArgs, reqArg)
				}
			}

			for key, expectedValue := range test.ExpectedArgs {
				actualValue, exists := actualArgs[key]
				if !exists {
					result.Passed = false
					result.MissingArgs = append(result.MissingArgs, key)
				} else if !compareValues(expectedValue, actualValue) {
					result.Passed = false
					result.WrongArgs[key] = fmt.Sprintf("expected %v, got %v", expectedValue, actualValue)
				}
			}

			for _, forbidden := range test.ForbiddenArgs {
				if _, exists := actualArgs[forbidden]; exists {
					result.Passed = false
					result.ForbiddenHit = append(result.ForbiddenHit, forbidden)
				}
			}
		}

		if result.Passed {
			metrics.PassedTests++
			metrics.category(test.Tool).Passed++
		} else {
			metrics.FailedTests++
			metrics.category(test.Tool).Failed++

			var errDetails []string
			if len(result.MissingArgs) > 0 {
				errDetails = append(errDetails, fmt.Sprintf("missing: %v", result.MissingArgs))
			}
			for k, v := range result.WrongArgs {
				errDetails = append(errDetails, fmt.Sprintf("%s: %s", k, v))
			}
			if len(result.ForbiddenHit) > 0 {
				errDetails = append(errDetails, fmt.Sprintf("forbidden: %v", result.ForbiddenHit))
			}
			metrics.FailedDetails = append(metrics.FailedDetails,
				fmt.Sprintf("[%s] %s: %s", test.ID, test.Input, strings.Join(errDetails, "; ")))
		}

		results = append(results, result)
	}

	metrics.finish()
	return metrics, results
}

func newMetrics() *EvalMetrics {
	return &EvalMetrics{
		ByCategory: make(map[string]*CategoryMetrics),
		ByTool:     make(map[string]*ToolMetrics),
	}
}

func (m *EvalMetrics) category(name string) *CategoryMetrics {
	if m.ByCategory[name] == nil {
		m.ByCategory[name] = &CategoryMetrics{}
	}
	return m.ByCategory[name]
}

func (m *EvalMetrics) tool(name string) *ToolMetrics {
	if m.ByTool[name] == nil {
		m.ByTool[name] = &ToolMetrics{}
	}
	return m.ByTool[name]
}

func (m *EvalMetrics) finish() {
	if m.TotalTests > 0 {
		m.Accuracy = float64(m.PassedTests) / float64(m.TotalTests)
	}
}

// compareValues compares expected and actual values, handling type differences
func compareValues(expected, actual any) bool {
	if expected == nil && actual == nil {
		return true
	}
	if expected == nil || actual == nil {
		return false
	}

	ev := reflect.ValueOf(expected)
	av := reflect.ValueOf(actual)

	// JSON unmarshals numbers to float64
	switch ev.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if av.Kind() == reflect.Float64 {
			return float64(ev.Int()) == av.Float()
		}
	case reflect.Float32, reflect.Float64:
		if av.Kind() == reflect.Float64 {
			return ev.Float() == av.Float()
		}
	}

	if ev.Kind() == reflect.Slice && av.Kind() == reflect.Slice {
		if ev.Len() != av.Len() {
			return false
		}
		for i := 0; i < ev.Len(); i++ {
			if !compareValues(ev.Index(i).Interface(), av.Index(i).Interface()) {
				return false
			}
		}
		return true
	}

	return reflect.DeepEqual(expected, actual)
}

// FormatMetrics returns a human-readable summary of evaluation metrics
func FormatMetrics(metrics *EvalMetrics, suiteName string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("\n=== %s ===\n", suiteName))
	b.WriteString(fmt.Sprintf("Total: %d tests\n", metrics.TotalTests))
	b.WriteString(fmt.Sprintf("Passed: %d (%.1f%%)\n", metrics.PassedTests, metrics.Accuracy*100))
	b.WriteString(fmt.Sprintf("Failed: %d\n", metrics.FailedTests))

	if len(metrics.ByCategory) > 0 {
		b.WriteString("\nBy Category:\n")
		for cat, m := range metrics.ByCategory {
			if m.Total > 0 {
				acc := float64(m.Passed) / float64(m.Total) * 100
				b.WriteString(fmt.Sprintf("  %-25s: %d/%d (%.0f%%)\n", cat, m.Passed, m.Total, acc))
			}
		}
	}

	if len(metrics.FailedDetails) > 0 && len(metrics.FailedDetails) <= 10 {
		b.WriteString("\nFailed Tests:\n")
		for _, detail := range metrics.FailedDetails {
			b.WriteString(fmt.Sprintf("  - %s\n", detail))
		}
	} else if len(metrics.FailedDetails) > 10 {
		b.WriteString(fmt.Sprintf("\nFailed Tests (showing first 10 of %d):\n", len(metrics.FailedDetails)))
		for _, detail := range metrics.FailedDetails[:10] {
			b.WriteString(fmt.Sprintf("  - %s\n", detail))
		}
	}

	return b.String()
}
