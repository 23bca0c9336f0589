// File: cmd/create.go
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/veye-maven/internal/config"
	"github.com/xkilldash9x/veye-maven/internal/observability"
	"github.com/xkilldash9x/veye-maven/internal/reporting"
	"github.com/xkilldash9x/veye-maven/internal/store"
)

func newCreateCmd(provider serviceProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new project on the service",
		Long: `Submits the project document as a new project and stores the returned project
id in the project properties file, so later runs of update address the same project.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := getConfigFromContext(ctx)
			if err != nil {
				return err
			}
			return runCreate(ctx, observability.GetLogger(), cfg, provider)
		},
	}
}

func runCreate(ctx context.Context, logger *zap.Logger, cfg config.Interface, provider serviceProvider) error {
	outcome, err := buildDocument(ctx, logger, cfg)
	if err != nil {
		return err
	}
	data, err := encodeOutcome(logger, outcome)
	if err != nil || data == nil {
		return err
	}

	service, err := provider.Create(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to set up service client: %w", err)
	}

	resp, err := service.CreateProject(ctx, data)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	projectStore := store.New(cfg.Project().PropertiesFile, logger)
	if err := projectStore.SaveProjectID(resp.ID); err != nil {
		return fmt.Errorf("project %s was created but its id could not be stored: %w", resp.ID, err)
	}

	reporting.Print(logger, reporting.RenderSummary(*resp, cfg.API().BaseURL))
	return nil
}
