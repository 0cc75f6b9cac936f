package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"tripplanner/internal/config"
	"tripplanner/internal/remote"
	"tripplanner/internal/services"
)

var flagDestinationID int64

var destinationsCmd = &cobra.Command{
	Use:   "destinations",
	Short: "Print destinations, or the activities of one with --id",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		client := remote.NewClient(cfg.RemoteAPIURL, cfg.RemoteAPITimeout, zap.NewNop())
		catalog := services.NewCatalogService(client, nil, 0, zap.NewNop())

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if flagDestinationID > 0 {
			return enc.Encode(catalog.ListActivitiesByDestination(ctx, flagDestinationID))
		}
		return enc.Encode(catalog.ListDestinations(ctx))
	},
}

func init() {
	destinationsCmd.Flags().Int64Var(&flagDestinationID, "id", 0, "destination id")
}
