package e2e

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KromDaniel/tablere/pkg/tablere"
)

// TestCase represents a test case with a pattern and inputs
type TestCase struct {
	Pattern string   `json:"pattern"`
	Inputs  []string `json:"inputs"`
}

func loadTestCases(t *testing.T) []TestCase {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata.json"))
	if err != nil {
		t.Fatalf("Failed to read test data: %v", err)
	}

	var testCases []TestCase
	if err := json.Unmarshal(data, &testCases); err != nil {
		t.Fatalf("Failed to parse test data: %v", err)
	}

	if len(testCases) == 0 {
		t.Fatal("No test cases found in testdata.json")
	}
	return testCases
}

// TestE2E generates a matcher for every pattern and runs the generated
// tests with the go tool.
func TestE2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go tool not available")
	}

	testCases := loadTestCases(t)
	t.Logf("Running %d e2e test cases", len(testCases))

	// This directory will be automatically cleaned up after the test
	tempDir := t.TempDir()

	for i, tc := range testCases {
		testName := fmt.Sprintf("Pattern%02d", i+1)

		t.Run(testName, func(t *testing.T) {
			caseDir := filepath.Join(tempDir, testName)
			if err := os.MkdirAll(caseDir, 0755); err != nil {
				t.Fatalf("Failed to create test directory: %v", err)
			}

			// Step 1: Generate code
			t.Logf("Generating code for pattern: %s", tc.Pattern)
			outputFile := filepath.Join(caseDir, fmt.Sprintf("%s.go", testName))

			opts := tablere.Options{
				Pattern:          tc.Pattern,
				Name:             testName,
				OutputFile:       outputFile,
				Package:          "generated",
				GenerateTestFile: true,
				TestFileInputs:   tc.Inputs,
			}

			if err := tablere.Generate(opts); err != nil {
				t.Fatalf("Failed to generate code: %v", err)
			}

			testFile := filepath.Join(caseDir, fmt.Sprintf("%s_test.go", testName))
			if _, err := os.Stat(testFile); os.IsNotExist(err) {
				t.Fatalf("Generated test file does not exist: %s", testFile)
			}

			// Step 2: Initialize go module in the test directory
			initCmd := exec.Command("go", "mod", "init", "testmodule")
			initCmd.Dir = caseDir
			if output, err := initCmd.CombinedOutput(); err != nil {
				t.Fatalf("Failed to initialize go module:\nOutput: %s\nError: %v", string(output), err)
			}

			// Step 3: Run the generated tests
			cmd := exec.Command("go", "test", "-v")
			cmd.Dir = caseDir

			output, err := cmd.CombinedOutput()
			if err != nil {
				t.Fatalf("Generated tests failed:\nOutput: %s\nError: %v", string(output), err)
			}

			if testCount := countTests(string(output)); testCount == 0 {
				t.Fatalf("No tests were executed! Output: %s", string(output))
			}
		})
	}
}

// countTests counts the number of tests that were executed by parsing the output
func countTests(output string) int {
	count := 0
	lines := strings.Split(output, "\n")
	for _, line := range lines {
		// Look for lines like "=== RUN   TestPattern01Match"
		if strings.HasPrefix(strings.TrimSpace(line), "=== RUN") {
			count++
		}
	}
	return count
}
