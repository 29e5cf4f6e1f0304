// Package testutil provides helper functions for testing next-a11y components
package testutil

import (
	"testing"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/parser"
)

// ParseTSX parses TSX source into the file model, failing the test on error
func ParseTSX(t *testing.T, path, source string) *parser.File {
	t.Helper()
	p := parser.NewTypeScriptParser()
	defer p.Close()

	file, err := p.ParseFile(path, []byte(source))
	if err != nil {
		t.Fatalf("Failed to parse test source: %v", err)
	}
	return file
}

// ParseJSX parses JSX source into the file model, failing the test on error
func ParseJSX(t *testing.T, path, source string) *parser.File {
	t.Helper()
	p := parser.NewParser()
	defer p.Close()

	file, err := p.ParseFile(path, []byte(source))
	if err != nil {
		t.Fatalf("Failed to parse test source: %v", err)
	}
	return file
}

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertEqual fails the test if expected != actual
func AssertEqual(t *testing.T, expected, actual any) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}

// AssertTrue fails the test if condition is false
func AssertTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Error(msg)
	}
}

// AssertFalse fails the test if condition is true
func AssertFalse(t *testing.T, condition bool, msg string) {
	t.Helper()
	if condition {
		t.Error(msg)
	}
}

// FindElement returns the first element with the given tag, or nil
func FindElement(file *parser.File, tag string) *parser.Element {
	for _, el := range file.Elements {
		if el.Tag == tag {
			return el
		}
	}
	return nil
}

// CountViolations counts violations carrying the given rule id
func CountViolations(rule string, violations []domain.Violation) int {
	count := 0
	for _, v := range violations {
		if v.Rule == rule {
			count++
		}
	}
	return count
}
