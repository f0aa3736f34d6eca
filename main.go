package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ticofinder/webtriage/internal/classify"
	"github.com/ticofinder/webtriage/pkg/help"
	"github.com/ticofinder/webtriage/pkg/llm"
)

func main() {
	app := &cli.App{
		Name:  "webtriage",
		Usage: "classify travel-domain web pages by content type and page type",
		Commands: []*cli.Command{
			{
				Name:      "classify",
				Usage:     "Classify a single URL",
				ArgsUsage: "URL",
				Action:    classify.ClassifyAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "html-file",
						Usage: "read page HTML from `FILE` instead of fetching",
					},
					&cli.BoolFlag{
						Name:  "fetch",
						Usage: "download the page HTML before classifying",
					},
					&cli.StringFlag{
						Name:  "type",
						Usage: "content type override (skips detection, confidence 1.0)",
					},
					&cli.BoolFlag{
						Name:  "use-llm",
						Usage: "allow OpenAI fallback when heuristics are unsure",
					},
					&cli.StringFlag{
						Name:  "api-key",
						Usage: "OpenAI API key (defaults to OPENAI_API_KEY)",
					},
					&cli.StringFlag{
						Name:  "model",
						Value: llm.DefaultModel,
						Usage: "OpenAI model for fallback classification",
					},
					&cli.StringFlag{
						Name:  "registry",
						Usage: "category registry YAML `FILE` (defaults to built-in types)",
					},
					&cli.BoolFlag{
						Name:  "save",
						Usage: "record the result in the history database",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "history database `PATH` (defaults to next to the binary)",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
			},
			{
				Name:   "batch",
				Usage:  "Classify many URLs concurrently",
				Action: classify.BatchAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "urls",
						Usage: "comma-separated list of URLs",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "batch configuration YAML `FILE`",
					},
					&cli.IntFlag{
						Name:  "workers",
						Value: 4,
						Usage: "number of concurrent workers",
					},
					&cli.StringFlag{
						Name:  "cache-dir",
						Value: ".webtriage-cache",
						Usage: "directory for cached page HTML",
					},
					&cli.StringFlag{
						Name:  "max-age",
						Value: "24h",
						Usage: "how long cached HTML stays fresh",
					},
					&cli.BoolFlag{
						Name:  "use-llm",
						Usage: "allow OpenAI fallback when heuristics are unsure",
					},
					&cli.BoolFlag{
						Name:  "save",
						Usage: "record results in the history database",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "history database `PATH` (defaults to next to the binary)",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
			},
			{
				Name:   "types",
				Usage:  "List configured content types",
				Action: classify.TypesAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "registry",
						Usage: "category registry YAML `FILE` (defaults to built-in types)",
					},
					&cli.BoolFlag{
						Name:  "verbose",
						Usage: "include the domain lists",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "output JSON instead of YAML",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
			},
			{
				Name:   "history",
				Usage:  "Show recent classification history",
				Action: classify.HistoryAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "maximum number of entries",
					},
					&cli.StringFlag{
						Name:  "url",
						Usage: "only show history for this URL",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "history database `PATH` (defaults to next to the binary)",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
			},
			{
				Name:  "coldstart",
				Usage: "Print a machine-readable quick-start reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
