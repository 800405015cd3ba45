package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/kailas-cloud/symptomlog/internal/version"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "symptomctl",
		Usage:   "Identify symptoms in caregiver logs from the command line",
		Version: version.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "assets",
				Aliases: []string{"a"},
				Usage:   "Asset directory (corpus.txt, word_vectors.txt, symptom_vectors.json, ...)",
				EnvVars: []string{"SYMPTOMLOG_ASSETS"},
				Value:   "./assets",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "classify",
				Usage:     "Classify text given as arguments or on stdin",
				ArgsUsage: "[text...]",
				Action:    classifyCommand,
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:    "threshold",
						Aliases: []string{"t"},
						Usage:   "Similarity a symptom must exceed, in [-1, 1]",
						Value:   0.5,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Sentences processed concurrently",
						Value: 4,
					},
					&cli.BoolFlag{
						Name:  "no-sentence-break",
						Usage: "Keep clauses joined by connectives in one sentence",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print the full report as JSON",
					},
					&cli.BoolFlag{
						Name:  "debug",
						Usage: "Log pipeline operations to stderr",
					},
				},
			},
			{
				Name:   "check",
				Usage:  "Load every asset and report sizes and consistency",
				Action: checkCommand,
			},
		},
	}
}
