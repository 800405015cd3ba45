package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	symptomlog "github.com/kailas-cloud/symptomlog/pkg/sdk"
)

func classifyCommand(c *cli.Context) error {
	text, err := readText(c)
	if err != nil {
		return err
	}

	opts := []symptomlog.Option{
		symptomlog.WithAssetDir(c.String("assets")),
		symptomlog.WithThreshold(c.Float64("threshold")),
		symptomlog.WithWorkers(c.Int("workers")),
	}
	if c.Bool("no-sentence-break") {
		opts = append(opts, symptomlog.WithoutSentenceBreak())
	}
	if c.Bool("debug") {
		opts = append(opts, symptomlog.WithLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	client, err := symptomlog.New(opts...)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	rep, err := client.Analyze(c.Context, text)
	if err != nil {
		return err
	}

	if c.Bool("json") {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	printReport(c.App.Writer, &rep)
	return nil
}

// readText joins the arguments, or reads stdin when there are none.
func readText(c *cli.Context) (string, error) {
	if c.Args().Len() > 0 {
		return strings.Join(c.Args().Slice(), " "), nil
	}
	data, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("no text given")
	}
	return string(data), nil
}

func printReport(w io.Writer, rep *symptomlog.Report) {
	fmt.Fprintf(w, "Identified:    %s\n", strings.Join(rep.Identified, ", "))
	if rep.AlsoPossible != nil {
		fmt.Fprintf(w, "Also possible: %s\n", strings.Join(rep.AlsoPossible, ", "))
	}
	if len(rep.Targets) > 0 {
		fmt.Fprintf(w, "Targets:       %s\n", strings.Join(rep.Targets, ", "))
	}
	for _, s := range rep.Sentences {
		fmt.Fprintf(w, "\n[%d] %s\n", s.Index, s.Text)
		if len(s.Matches) == 0 {
			fmt.Fprintln(w, "    (no match)")
			continue
		}
		for _, m := range s.Matches {
			fmt.Fprintf(w, "    %-24s %.3f\n", m.Symptom, m.Score)
		}
	}
}
