package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/dashcells/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	sourceCountKey = "count"
	outputKey      = "output"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed multi-source Watch helpers",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  sourceCountKey,
				Usage: "Highest number of sources to generate a Watch helper for",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write",
				Value: "cells/watch_gen.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for watch helpers started !")
	defer func() {
		log.Printf("Codegen for watch helpers finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(sourceCountKey))
	if count < 2 {
		return fmt.Errorf("count must be at least 2, got %d", count)
	}
	output := cmd.String(outputKey)
	log.Printf("Sources: 2..%d -> %s", count, output)

	contents, err := format.Source([]byte(templates.WatchGen(count)))
	if err != nil {
		return fmt.Errorf("format generated code: %w", err)
	}
	return os.WriteFile(output, contents, 0644)
}
