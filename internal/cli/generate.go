package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"portfolio.dev/internal/app"
	"portfolio.dev/internal/assets"
	"portfolio.dev/internal/models"
)

var generateCmd = &cobra.Command{
	Use:   "generate <output-dir>",
	Short: "Write the rendered page and its assets as a static site",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		written, err := Generate(a, args[0])
		if err != nil {
			return err
		}
		for _, path := range written {
			fmt.Fprintf(cmd.OutOrStdout(), "  Created %s\n", path)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Done!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

type artifact struct {
	name  string
	write func(io.Writer) error
}

// Generate renders a fresh page and its assets into outputDir and returns the written paths
func Generate(a *app.App, outputDir string) ([]string, error) {
	if err := os.MkdirAll(filepath.Join(outputDir, "static"), 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	artifacts := []artifact{
		{"index.html", a.NewPage().Render},
		{filepath.Join("static", "style.css"), func(w io.Writer) error {
			_, err := w.Write(assets.StyleCSS)
			return err
		}},
		{filepath.Join("static", "highlight.css"), a.Highlighter.CSS},
		{"projects.json", func(w io.Writer) error {
			data, err := json.MarshalIndent(models.ProjectList{Projects: a.Catalog.Projects()}, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling JSON: %w", err)
			}
			_, err = w.Write(data)
			return err
		}},
	}

	written := make([]string, 0, len(artifacts))
	for _, art := range artifacts {
		var buf bytes.Buffer
		if err := art.write(&buf); err != nil {
			return written, fmt.Errorf("rendering %s: %w", art.name, err)
		}

		path := filepath.Join(outputDir, art.name)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
