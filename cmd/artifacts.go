// File: cmd/artifacts.go
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/veye-maven/internal/graph"
	"github.com/xkilldash9x/veye-maven/internal/observability"
	"github.com/xkilldash9x/veye-maven/internal/payload"
)

func newArtifactsCmd() *cobra.Command {
	var treePath string

	artifactsCmd := &cobra.Command{
		Use:   "artifacts",
		Short: "Print the direct artifacts of a resolved dependency tree",
		Long: `Reads the output of "mvn dependency:tree" (a file, or - for standard input) and
prints the project's direct dependencies as a JSON artifacts document.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if treePath != "-" {
				f, err := os.Open(treePath)
				if err != nil {
					return fmt.Errorf("failed to open dependency tree: %w", err)
				}
				defer f.Close()
				in = f
			}
			return runArtifacts(observability.GetLogger(), in, cmd.OutOrStdout())
		},
	}
	artifactsCmd.Flags().StringVar(&treePath, "tree", "", "Dependency tree file, - for standard input (required)")
	_ = artifactsCmd.MarkFlagRequired("tree")
	return artifactsCmd
}

func runArtifacts(logger *zap.Logger, in io.Reader, out io.Writer) error {
	root, err := graph.ParseTree(in)
	if err != nil {
		return fmt.Errorf("failed to read dependency tree: %w", err)
	}

	direct := graph.DirectDependencies(root)
	logger.Debug("Collected direct artifacts",
		zap.Stringer("root", root.Artifact()), zap.Int("count", len(direct)))

	data, err := payload.Encode(payload.AssembleArtifacts(direct))
	if err != nil {
		return fmt.Errorf("failed to encode artifacts: %w", err)
	}
	if _, err := fmt.Fprintf(out, "%s\n", data); err != nil {
		return fmt.Errorf("failed to write artifacts: %w", err)
	}
	return nil
}
