package cmd

import (
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/oabooks/exportcore/cache"
	"github.com/oabooks/exportcore/httpapi"
	"github.com/oabooks/exportcore/registry"
	"github.com/oabooks/exportcore/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the export core's HTTP surface",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry.LoadEmbedded()
		if err != nil {
			return err
		}

		c, err := cache.NewMemory(cfg.CacheCapacity)
		if err != nil {
			return err
		}

		gens := buildGeneratorRegistry(cfg.SenderName, cfg.SenderEmail)
		st := store.NewMemory()

		srv := httpapi.New(reg, gens, c, st)
		slog.Info("starting export core", "addr", cfg.HTTPAddr)
		return http.ListenAndServe(cfg.HTTPAddr, srv)
	},
}
