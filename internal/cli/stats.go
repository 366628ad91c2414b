package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"curated-packages/internal/app"
	"curated-packages/internal/shared"
)

type statsOptions struct {
	Snapshots []string
	RunIDs    []int64
	Curations []string
	Versions  bool
	Format    string
}

func newStatsCommand() *cobra.Command {
	opts := statsOptions{}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count distinct packages and ecosystems across runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Snapshots, "snapshot", nil, "Run snapshot file(s)")
	cmd.Flags().Int64SliceVar(&opts.RunIDs, "run", nil, "Run id(s) to query")
	cmd.Flags().StringSliceVar(&opts.Curations, "curations", nil, "Additional curation file(s)")
	cmd.Flags().BoolVar(&opts.Versions, "versions", false, "Report highest analyzed version per package")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "Output format (text or json)")
	return cmd
}

func runStats(cmd *cobra.Command, opts statsOptions) error {
	service := newAppService(resolveStrings(cmd, opts.Snapshots, "snapshots", "snapshot"))
	result, err := service.Stats(cmd.Context(), app.StatsRequest{
		RunIDs:        resolveRunIDs(cmd, opts.RunIDs, "runs", "run"),
		CurationFiles: shared.TrimmedNonEmpty(opts.Curations),
		Versions:      opts.Versions,
	})
	if err != nil {
		return err
	}

	if resolveString(cmd, opts.Format, "format", "format") == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	fmt.Printf("distinct packages: %d\n", result.TotalPackages)
	for _, entry := range result.Ecosystems {
		fmt.Printf("- %s: %d\n", entry.Ecosystem, entry.Count)
	}
	if opts.Versions {
		fmt.Println("highest versions:")
		for _, entry := range result.HighestVersions {
			fmt.Printf("- %s @ %s\n", entry.Coordinate, entry.Version)
		}
	}
	return nil
}
