package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/glrecon-dev/glrecon/internal/classify"
	"github.com/glrecon-dev/glrecon/internal/config"
	"github.com/glrecon-dev/glrecon/internal/export"
	"github.com/glrecon-dev/glrecon/internal/ingest"
	"github.com/glrecon-dev/glrecon/internal/model"
	"github.com/glrecon-dev/glrecon/internal/summary"
)

// Output file names, matching the artifacts reconciliation reviewers expect.
const (
	glLabeledFile   = "gl_labeled.csv"
	bankLabeledFile = "bank_labeled.csv"
	summaryFile     = "summary_output.csv"
)

func newRunCommand() *cobra.Command {
	var glPath string
	var bankPath string
	var outDir string
	var configPath string
	var category string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Categorize both extracts and write the comparison summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(glPath, bankPath, outDir, configPath, category, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&glPath, "gl", "", "GL detail CSV export (required)")
	_ = cmd.MarkFlagRequired("gl")
	cmd.Flags().StringVar(&bankPath, "bank", "", "bank statement workbook, .xls or .xlsx (required)")
	_ = cmd.MarkFlagRequired("bank")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory for labeled tables and summary")
	cmd.Flags().StringVar(&configPath, "config", "", "path to glrecon.yaml (defaults apply when omitted)")
	cmd.Flags().StringVar(&category, "category", "", "print rows for one category instead of writing files")

	return cmd
}

func runRun(glPath, bankPath, outDir, configPath, category string, stdout io.Writer) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Ingest both extracts before producing any output: a missing column
	// or broken file must abort with nothing written.
	glFile, err := os.Open(glPath)
	if err != nil {
		return fmt.Errorf("opening GL extract: %w", err)
	}
	defer glFile.Close()

	glTable, err := ingest.ReadGL(glFile)
	if err != nil {
		return err
	}

	bankTable, err := ingest.ReadBankFile(bankPath, ingest.BankOptions{
		HeaderSkip: cfg.Bank.HeaderSkip,
		Sheet:      cfg.Bank.Sheet,
	})
	if err != nil {
		return err
	}

	for i := range glTable.Rows {
		r := &glTable.Rows[i]
		r.Remark = classify.GL(r.Source, r.Description, cfg.GL.TaxSources)
	}
	for i := range bankTable.Rows {
		r := &bankTable.Rows[i]
		r.Remark = classify.Bank(r.Text, r.DataType)
	}

	if category != "" {
		return printCategory(stdout, glTable, bankTable, model.Category(category))
	}

	summaryRows, warnings := summary.Summarize(glTable, bankTable)
	for _, w := range warnings {
		slog.Warn("amount not numeric, counted as 0",
			"table", w.Table, "row", w.Row, "category", w.Category, "value", w.Raw)
	}
	if len(warnings) > 0 {
		slog.Warn("totals include rows with unreadable amounts", "count", len(warnings))
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := writeFile(filepath.Join(outDir, glLabeledFile), func(f *os.File) error {
		return export.WriteLabeledGL(f, glTable)
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(outDir, bankLabeledFile), func(f *os.File) error {
		return export.WriteLabeledBank(f, bankTable)
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(outDir, summaryFile), func(f *os.File) error {
		return export.WriteSummary(f, summaryRows)
	}); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%-12s %16s %16s\n", "Category", "GL", "Bank Statement")
	for _, r := range summaryRows {
		fmt.Fprintf(stdout, "%-12s %16s %16s\n", r.Category, r.GL.StringFixed(2), r.Bank.StringFixed(2))
	}
	fmt.Fprintf(stdout, "\nWrote %s, %s, %s in %s\n", glLabeledFile, bankLabeledFile, summaryFile, outDir)
	return nil
}

// printCategory writes the labeled rows of one category from both tables,
// the ad-hoc detail view reviewers use to chase a difference.
func printCategory(w io.Writer, gl *model.GLTable, bank *model.BankTable, cat model.Category) error {
	if !cat.Valid() {
		return fmt.Errorf("unknown category %q (known: %v)", cat, model.Categories())
	}

	glFiltered := &model.GLTable{Header: gl.Header}
	for _, r := range gl.Rows {
		if r.Remark == cat {
			glFiltered.Rows = append(glFiltered.Rows, r)
		}
	}
	bankFiltered := &model.BankTable{Header: bank.Header}
	for _, r := range bank.Rows {
		if r.Remark == cat {
			bankFiltered.Rows = append(bankFiltered.Rows, r)
		}
	}

	fmt.Fprintf(w, "GL rows (%d):\n", len(glFiltered.Rows))
	if err := export.WriteLabeledGL(w, glFiltered); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nBank rows (%d):\n", len(bankFiltered.Rows))
	return export.WriteLabeledBank(w, bankFiltered)
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
