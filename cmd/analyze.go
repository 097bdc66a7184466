package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/intel-cli/internal/model"
)

var (
	analyzeName string
	analyzeURL  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the intelligence pipeline for a single company",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("analyze"); err != nil {
			return err
		}

		env, err := initPipeline(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		company := model.CompanyIdentity{
			Name: analyzeName,
			URL:  analyzeURL,
		}

		result, err := env.Analyzer.Run(ctx, company)
		if err != nil {
			return eris.Wrap(err, "analyze")
		}

		zap.L().Info("analysis complete",
			zap.String("company", company.Name),
			zap.Float64("quality_score", result.Profile.QualityScore),
			zap.Int("successful_sources", len(result.Profile.SuccessfulSources)),
			zap.Duration("duration", result.Duration),
		)

		// Print the profile JSON to stdout
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Profile)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeName, "name", "", "company name (required)")
	analyzeCmd.Flags().StringVar(&analyzeURL, "url", "", "canonical company website URL")
	_ = analyzeCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(analyzeCmd)
}
