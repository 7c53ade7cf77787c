package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func NewGenDocsCommand() *cobra.Command {
	var (
		outDir      string
		frontMatter bool
	)

	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Generate CLI documentation in Markdown format",
		Long: `Write one Markdown page per yomogi command into --outdir.
With --front-matter each page starts with a YAML title block for static site generators.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				outDir = "docs/cli"
			}
			abs, err := filepath.Abs(outDir)
			if err != nil {
				return fmt.Errorf("resolve %q: %w", outDir, err)
			}
			if err := os.MkdirAll(abs, 0o755); err != nil {
				return fmt.Errorf("create docs directory %q: %w", abs, err)
			}

			prepend := func(string) string { return "" }
			if frontMatter {
				prepend = titleBlock
			}
			link := func(name string) string { return name }

			if err := doc.GenMarkdownTreeCustom(cmd.Root(), abs, prepend, link); err != nil {
				return fmt.Errorf("generate CLI docs: %w", err)
			}

			fmt.Printf("CLI docs generated in %s\n", abs)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "outdir", "docs/cli", "Output directory for generated CLI docs")
	cmd.Flags().BoolVar(&frontMatter, "front-matter", false, "Prefix each page with a YAML title block")

	return cmd
}

// titleBlock turns docs/cli/yomogi_http_start.md into a "yomogi http start" title.
func titleBlock(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return fmt.Sprintf("---\ntitle: %q\n---\n\n", strings.ReplaceAll(base, "_", " "))
}
