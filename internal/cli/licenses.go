package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"curated-packages/internal/app"
	"curated-packages/internal/shared"
)

type licensesOptions struct {
	Snapshots []string
	RunIDs    []int64
	Curations []string
	Format    string
}

func newLicensesCommand() *cobra.Command {
	opts := licensesOptions{}
	cmd := &cobra.Command{
		Use:   "licenses",
		Short: "List distinct processed license expressions across runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLicenses(cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Snapshots, "snapshot", nil, "Run snapshot file(s)")
	cmd.Flags().Int64SliceVar(&opts.RunIDs, "run", nil, "Run id(s) to query")
	cmd.Flags().StringSliceVar(&opts.Curations, "curations", nil, "Additional curation file(s)")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "Output format (text or json)")
	return cmd
}

func runLicenses(cmd *cobra.Command, opts licensesOptions) error {
	service := newAppService(resolveStrings(cmd, opts.Snapshots, "snapshots", "snapshot"))
	result, err := service.Licenses(cmd.Context(), app.LicensesRequest{
		RunIDs:        resolveRunIDs(cmd, opts.RunIDs, "runs", "run"),
		CurationFiles: shared.TrimmedNonEmpty(opts.Curations),
	})
	if err != nil {
		return err
	}

	if resolveString(cmd, opts.Format, "format", "format") == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	for _, license := range result.Licenses {
		fmt.Println(license)
	}
	return nil
}
