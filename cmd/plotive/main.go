// Package main provides the CLI entry point for plotive-go.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/plotive/plotive-go/pkg/plotive"
	"github.com/plotive/plotive-go/pkg/plotive/data"
	"github.com/plotive/plotive-go/pkg/plotive/models"
	"github.com/plotive/plotive-go/pkg/plotive/output"
)

var (
	outputPath string
	pretty     bool
	stylePath  string
	dataPath   string
	sheet      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "plotive [figure.json]",
		Short: "Extract and validate figure descriptions",
		Long: `plotive-go reads a loosely-typed figure description, extracts it into
its validated typed form, and prints a JSON digest.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&stylePath, "style", "", "Style description file (JSON)")
	rootCmd.Flags().StringVar(&dataPath, "data", "", "Data source workbook (xlsx)")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "Workbook sheet name (default: active sheet)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	fig, err := extractFigureFile(args[0])
	if err != nil {
		return err
	}

	if stylePath != "" {
		v, err := decodeFile(stylePath)
		if err != nil {
			return err
		}
		if _, err := plotive.ExtractStyle(v); err != nil {
			return fmt.Errorf("style extraction failed: %w", err)
		}
	}

	columns := plotive.SourceColumns(fig)
	if dataPath != "" {
		src, err := openWorkbookSource(dataPath, sheet)
		if err != nil {
			return err
		}
		if missing := missingColumns(src, columns); len(missing) > 0 {
			return fmt.Errorf("data source is missing columns: %s", strings.Join(missing, ", "))
		}
	}

	jsonData, err := output.ToJSON(output.Summarize(fig, columns), pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

func extractFigureFile(path string) (*models.Figure, error) {
	v, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	fig, err := plotive.ExtractFigure(v)
	if err != nil {
		return nil, fmt.Errorf("figure extraction failed: %w", err)
	}
	return fig, nil
}

// decodeFile reads a JSON file keeping numbers as json.Number so integer
// and floating point inputs stay distinguishable.
func decodeFile(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return v, nil
}

func openWorkbookSource(path, sheet string) (data.Source, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	frame, err := data.FrameFromWorkbook(f, sheet)
	if err != nil {
		return nil, err
	}
	return data.FromFrame(frame)
}

func missingColumns(src data.Source, wanted []string) []string {
	var missing []string
	for _, name := range wanted {
		if src.Column(name) == nil {
			missing = append(missing, name)
		}
	}
	return missing
}
