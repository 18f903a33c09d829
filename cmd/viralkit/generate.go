package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abdulachik/viralkit/internal/app"
	"github.com/abdulachik/viralkit/internal/config"
	"github.com/abdulachik/viralkit/internal/fileproc"
	"github.com/abdulachik/viralkit/internal/models"
	"github.com/abdulachik/viralkit/internal/platform"
)

var (
	genName      string
	genNiche     string
	genURL       string
	genFile      string
	genVariants  int
	genMaxImages int
	genJSON      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate marketing copy for one product",
	Long: `Run the full pipeline once and print the result.

Examples:
  viralkit generate --name "Focus Kit" --niche productivity --url https://focuskit.dev
  viralkit generate --name "Focus Kit" --niche productivity --url https://focuskit.dev --file guide.pdf --json`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genName, "name", "", "Product name (required)")
	generateCmd.Flags().StringVar(&genNiche, "niche", "", "Product niche (required)")
	generateCmd.Flags().StringVar(&genURL, "url", "", "Landing page URL (required)")
	generateCmd.Flags().StringVar(&genFile, "file", "", "Local product file (txt, md, pdf or zip)")
	generateCmd.Flags().IntVar(&genVariants, "variants", 0, "Variants per platform (default from config)")
	generateCmd.Flags().IntVar(&genMaxImages, "max-images", 0, "Assets kept per platform (default from config)")
	generateCmd.Flags().BoolVar(&genJSON, "json", false, "Print the raw JSON result")
	_ = generateCmd.MarkFlagRequired("name")
	_ = generateCmd.MarkFlagRequired("niche")
	_ = generateCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	if genVariants > 10 || genMaxImages > 10 {
		return fmt.Errorf("--variants and --max-images must be at most 10")
	}

	req := models.GenerationRequest{
		ProductID:           uuid.NewString(),
		ProductName:         genName,
		Niche:               genNiche,
		LandingURL:          genURL,
		MaxImages:           genMaxImages,
		VariantsPerPlatform: genVariants,
	}

	if genFile != "" {
		data, err := os.ReadFile(genFile)
		if err != nil {
			return fmt.Errorf("read product file: %w", err)
		}
		req.ProductFileBase64 = base64.StdEncoding.EncodeToString(data)
		req.ProductFileType = fileproc.DetectFileType(genFile, data).String()
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}

	if cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.RequestTimeout)
		defer cancel()
	}

	result := a.Agent.Generate(ctx, req)

	out := cmd.OutOrStdout()
	if genJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
	} else {
		printResult(out, result)
	}

	if result.Status == models.StatusFailed {
		return fmt.Errorf("generation failed: %s", result.Error)
	}
	return nil
}

func printResult(out io.Writer, result *models.GenerationResult) {
	fmt.Fprintf(out, "=== Result %s: %s ===\n", result.ProductID, result.Status)
	if result.Error != "" {
		fmt.Fprintf(out, "Error: %s\n", result.Error)
		return
	}
	fmt.Fprintln(out)

	insights := result.ResearchInsights
	fmt.Fprintln(out, "Research:")
	fmt.Fprintf(out, "  Audience: %s\n", insights.TargetAudience.Demographics)
	fmt.Fprintf(out, "  Trends: %s\n", strings.Join(insights.NicheTrends, "; "))
	fmt.Fprintf(out, "  Pain points: %s\n", strings.Join(insights.TargetAudience.PainPoints, "; "))
	fmt.Fprintf(out, "  Keywords: %s\n", strings.Join(insights.KeywordClusters, ", "))
	fmt.Fprintln(out)

	for _, asset := range result.Assets {
		fmt.Fprintf(out, "--- %s #%d (score %d) ---\n", asset.Platform, asset.VariantIndex, asset.EngagementScore)
		fmt.Fprintln(out, platform.Render(asset))
		fmt.Fprintf(out, "CTA: %s\n", asset.CTA)
		fmt.Fprintf(out, "Post at: %s\n", asset.BestPostingTime)
		if asset.ImageURL != "" {
			fmt.Fprintf(out, "Image: %s\n", asset.ImageURL)
		}
		fmt.Fprintln(out)
	}
}
