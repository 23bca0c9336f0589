// File: cmd/update.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/veye-maven/internal/config"
	"github.com/xkilldash9x/veye-maven/internal/observability"
	"github.com/xkilldash9x/veye-maven/internal/reporting"
	"github.com/xkilldash9x/veye-maven/internal/store"
)

func newUpdateCmd(provider serviceProvider) *cobra.Command {
	var projectID string

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update an existing project on the service",
		Long: `Submits the project document to an existing project. The project id comes from
--project-id or, when not given, from the project properties file written by create.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := getConfigFromContext(ctx)
			if err != nil {
				return err
			}
			return runUpdate(ctx, observability.GetLogger(), cfg, projectID, provider)
		},
	}
	updateCmd.Flags().StringVar(&projectID, "project-id", "", "Project id (default from the project properties file)")
	return updateCmd
}

func runUpdate(ctx context.Context, logger *zap.Logger, cfg config.Interface, projectID string, provider serviceProvider) error {
	id := strings.TrimSpace(projectID)
	if id == "" {
		stored, err := store.New(cfg.Project().PropertiesFile, logger).ProjectID()
		if errors.Is(err, store.ErrNoProjectID) {
			return fmt.Errorf("%w: run create first or pass --project-id", err)
		}
		if err != nil {
			return err
		}
		id = stored
	}

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

	resp, err := service.UpdateProject(ctx, id, data)
	if err != nil {
		return fmt.Errorf("failed to update project %s: %w", id, err)
	}

	reporting.Print(logger, reporting.RenderSummary(*resp, cfg.API().BaseURL))
	return nil
}
