package stations

import (
	"context"
	"os"
	"time"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/railgate/railgate/pkg/upstream"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "stations",
		Usage: "Station catalog management",
		Subcommands: []*cli.Command{
			{
				Name:  "update",
				Usage: "refresh the local station feed cache from the portal",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "url",
						Value: "https://kyfw.12306.cn/otn/resources/js/framework/station_name.js",
						Usage: "station master-data feed URL",
					},
					&cli.StringFlag{
						Name:  "file",
						Value: "data/station_name.js",
						Usage: "local feed cache path",
					},
					&cli.StringFlag{
						Name:  "user-agent",
						Value: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
						Usage: "user agent presented to the portal",
					},
				},
				Action: func(c *cli.Context) error {
					client := upstream.NewClient(upstream.Options{
						BaseURL:    "https://kyfw.12306.cn",
						FeedURL:    c.String("url"),
						UserAgent:  c.String("user-agent"),
						Timeout:    30 * time.Second,
						MaxRetries: 2,
					})

					feedText, err := client.FetchStationFeed(context.Background())
					if err != nil {
						log.Fatal().Err(err).Msg("Failed to download station feed")
					}

					records, err := ParseFeed(feedText, DefaultHealWindows())
					if err != nil {
						log.Fatal().Err(err).Msg("Downloaded feed did not parse")
					}

					if err := os.WriteFile(c.String("file"), []byte(feedText), 0644); err != nil {
						log.Fatal().Err(err).Str("path", c.String("file")).Msg("Failed to write feed cache")
					}

					log.Info().Int("stations", len(records)).Str("path", c.String("file")).Msg("Station feed cache refreshed")

					if len(records) > 10 {
						records = records[:10]
					}
					pretty.Println(records)

					return nil
				},
			},
		},
	}
}
