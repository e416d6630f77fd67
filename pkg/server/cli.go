package server

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/railgate/railgate/pkg/config"
	"github.com/railgate/railgate/pkg/mcp"
	"github.com/railgate/railgate/pkg/stations"
	"github.com/railgate/railgate/pkg/tools"
	"github.com/railgate/railgate/pkg/upstream"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "Provides the MCP gateway server",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the MCP gateway server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Value:   "config.yml",
						Usage:   "path to the yaml configuration file",
						EnvVars: []string{"RAILGATE_CONFIG"},
					},
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen target override for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					client := upstream.NewClient(upstream.Options{
						BaseURL:    cfg.Upstream.BaseURL,
						FeedURL:    cfg.Feed.URL,
						UserAgent:  cfg.Upstream.UserAgent,
						Timeout:    time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second,
						MaxRetries: cfg.Upstream.MaxRetries,
					})

					store := stations.NewStore()

					catalog, err := stations.LoadCatalog(context.Background(), client, cfg.Feed.CachePath, cfg.Heal)
					if err != nil {
						log.Fatal().Err(err).Msg("Failed to load station catalog")
					}
					store.Swap(catalog)
					log.Info().Int("stations", catalog.Len()).Msg("Station catalog loaded")

					toolset := &tools.Toolset{
						Store:    store,
						Upstream: client,
					}

					listen := cfg.Server.Listen
					if c.String("listen") != "" {
						listen = c.String("listen")
					}

					return mcp.NewServer(toolset.Registry(), store).SetupServer(listen)
				},
			},
		},
	}
}
