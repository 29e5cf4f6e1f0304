package service

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
)

// OutputFormatterImpl implements the OutputFormatter interface
type OutputFormatterImpl struct{}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// Format renders the result as a string in the given format
func (f *OutputFormatterImpl) Format(result *domain.ScanResult, format domain.OutputFormat) (string, error) {
	var sb strings.Builder
	if err := f.Write(result, format, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write renders the result into the writer in the given format
func (f *OutputFormatterImpl) Write(result *domain.ScanResult, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return writeJSON(result, writer)
	case domain.OutputFormatYAML:
		return writeYAML(result, writer)
	case domain.OutputFormatText, "":
		return writeText(result, writer)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func writeJSON(result *domain.ScanResult, writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeYAML(result *domain.ScanResult, writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	defer encoder.Close()
	return encoder.Encode(result)
}

func writeText(result *domain.ScanResult, writer io.Writer) error {
	byFile := map[string][]domain.Violation{}
	var files []string
	for _, v := range result.Violations {
		if _, seen := byFile[v.File]; !seen {
			files = append(files, v.File)
		}
		byFile[v.File] = append(byFile[v.File], v)
	}
	sort.Strings(files)

	for _, file := range files {
		fmt.Fprintf(writer, "%s\n", file)
		violations := byFile[file]
		sort.Slice(violations, func(i, j int) bool {
			if violations[i].Line != violations[j].Line {
				return violations[i].Line < violations[j].Line
			}
			return violations[i].Column < violations[j].Column
		})
		for _, v := range violations {
			marker := " "
			if v.Fixable() {
				marker = "*"
			}
			fmt.Fprintf(writer, "  %4d:%-3d %s %-22s %s\n", v.Line, v.Column, marker, v.Rule, v.Message)
		}
		fmt.Fprintln(writer)
	}

	s := result.Summary
	fmt.Fprintf(writer, "Scanned %d files (%d skipped), %d elements\n",
		s.FilesScanned, s.FilesSkipped, s.ElementsScanned)
	if s.TotalViolations == 0 {
		fmt.Fprintln(writer, "No accessibility violations found")
	} else {
		fmt.Fprintf(writer, "%d violations, %d fixable (*)\n", s.TotalViolations, s.FixableCount)
	}
	if result.FixedCount > 0 {
		fmt.Fprintf(writer, "Applied %d fixes\n", result.FixedCount)
	}

	fmt.Fprintf(writer, "Accessibility score: %d/100", result.Score)
	if delta, ok := result.ScoreDelta(); ok {
		fmt.Fprintf(writer, " (%+d since last run)", delta)
	}
	fmt.Fprintln(writer)
	return nil
}
