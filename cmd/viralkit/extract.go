package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abdulachik/viralkit/internal/fileproc"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Print the text extracted from a product file",
	Long: `Print the plain text viralkit would send for analysis.

Examples:
  viralkit extract ebook.pdf
  viralkit extract course.zip`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	ft := fileproc.DetectFileType(args[0], data)
	text, err := fileproc.NewExtractor().Extract(data, ft)
	if err != nil {
		return fmt.Errorf("extract %s: %w", ft, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
