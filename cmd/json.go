// File: cmd/json.go
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/veye-maven/internal/config"
	"github.com/xkilldash9x/veye-maven/internal/observability"
	"github.com/xkilldash9x/veye-maven/internal/reporting"
)

func newJSONCmd() *cobra.Command {
	jsonCmd := &cobra.Command{
		Use:   "json",
		Short: "Write the project document as JSON",
		Long: `Collects the project's dependencies and plugins and writes the document that
create and update would submit. Use --output - to print it to standard output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := getConfigFromContext(ctx)
			if err != nil {
				return err
			}
			return runJSON(ctx, observability.GetLogger(), cfg)
		},
	}
	jsonCmd.Flags().StringP("output", "o", "target/pom.json", "Output file, - for standard output")
	return jsonCmd
}

func runJSON(ctx context.Context, logger *zap.Logger, cfg config.Interface) error {
	outcome, err := buildDocument(ctx, logger, cfg)
	if err != nil {
		return err
	}

	if outcome.Empty() {
		printEmpty(logger, outcome)
		return nil
	}

	output := cfg.Project().Output
	// Keep standard output clean for the document itself.
	reportLogger := logger
	if reporting.IsStdout(output) {
		reportLogger = zap.NewNop()
	}

	data, err := encodeOutcome(reportLogger, outcome)
	if err != nil {
		return err
	}

	if err := reporting.WritePayload(output, data); err != nil {
		return err
	}
	if !reporting.IsStdout(output) {
		logger.Info("Wrote project document", zap.String("path", output),
			zap.Int("dependencies", len(outcome.Document.Dependencies)),
			zap.Int("plugins", len(outcome.Document.Plugins)))
	}
	return nil
}
