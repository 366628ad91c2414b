package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"curated-packages/internal/app"
	"curated-packages/internal/shared"
)

type listOptions struct {
	Snapshots []string
	RunIDs    []int64
	Sort      []string
	Filters   []string
	Limit     int
	Offset    int
	Curations []string
	Format    string
}

func newListCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List merged packages across analysis runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Snapshots, "snapshot", nil, "Run snapshot file(s)")
	cmd.Flags().Int64SliceVar(&opts.RunIDs, "run", nil, "Run id(s) to query")
	cmd.Flags().StringSliceVar(&opts.Sort, "sort", nil, "Sort spec field[:asc|desc]")
	cmd.Flags().StringSliceVar(&opts.Filters, "filter", nil, "Filter spec field:operator:value")
	cmd.Flags().IntVar(&opts.Limit, "limit", -1, "Page size (-1 for all)")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "Page offset")
	cmd.Flags().StringSliceVar(&opts.Curations, "curations", nil, "Additional curation file(s)")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "Output format (text or json)")
	_ = viper.BindPFlag("snapshots", cmd.Flags().Lookup("snapshot"))
	_ = viper.BindPFlag("runs", cmd.Flags().Lookup("run"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}

func runList(cmd *cobra.Command, opts listOptions) error {
	service := newAppService(resolveStrings(cmd, opts.Snapshots, "snapshots", "snapshot"))
	req := app.ListPackagesRequest{
		RunIDs:        resolveRunIDs(cmd, opts.RunIDs, "runs", "run"),
		Sort:          opts.Sort,
		Filters:       opts.Filters,
		Offset:        opts.Offset,
		CurationFiles: shared.TrimmedNonEmpty(opts.Curations),
	}
	if opts.Limit >= 0 {
		limit := opts.Limit
		req.Limit = &limit
	}

	result, err := service.ListPackages(cmd.Context(), req)
	if err != nil {
		return err
	}

	if resolveString(cmd, opts.Format, "format", "format") == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	fmt.Printf("packages: %d of %d\n", len(result.Items), result.TotalCount)
	for _, item := range result.Items {
		license := item.ConcludedLicense
		if license == "" {
			license = item.Pkg.DeclaredProcessed.SPDXExpression
		}
		fmt.Printf("- %s [run %d] license=%s paths=%d curations=%d\n",
			item.Pkg.ID.Purl(), item.RunID, license,
			len(item.ShortestPaths), len(item.AppliedCurations))
	}
	return nil
}
