package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"curated-packages/internal/adapters"
	"curated-packages/internal/app"
)

func newAppService(snapshots []string) app.Service {
	return app.NewService(adapters.NewSnapshotFileAdapter(snapshots...))
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveRunIDs(cmd *cobra.Command, values []int64, key string, flagName string) []int64 {
	if cmd == nil || !flagChanged(cmd, flagName) {
		configured := viper.GetIntSlice(key)
		if len(configured) > 0 {
			out := make([]int64, 0, len(configured))
			for _, value := range configured {
				out = append(out, int64(value))
			}
			return out
		}
	}
	return values
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || name == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
