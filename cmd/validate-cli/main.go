package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-validate/pkg/constraints/loader"
	"github.com/goliatone/go-validate/pkg/engine"
	"github.com/goliatone/go-validate/pkg/prompt"
)

func main() {
	source := flag.String("constraints", "constraints.json", "constraint document path or URL")
	typeName := flag.String("type", "", "type name to validate")
	output := flag.String("output", "", "output file for the accepted values (stdout if empty)")
	flag.Parse()

	if *typeName == "" {
		log.Fatal("missing required -type flag")
	}

	ctx := context.Background()

	src := parseSource(*source)
	if src == nil {
		log.Fatalf("invalid source: %q", *source)
	}

	specLoader := loader.New(loader.Options{AllowHTTP: true})
	spec, err := specLoader.Load(ctx, src)
	if err != nil {
		log.Fatalf("Failed to load constraints: %v", err)
	}

	eng := engine.New(engine.WithConstraints(spec))
	runner, err := prompt.NewRunner(eng, nil)
	if err != nil {
		log.Fatalf("Failed to create runner: %v", err)
	}

	values, err := runner.Run(ctx, *typeName)
	if err != nil {
		if errors.Is(err, prompt.ErrInterrupted) {
			os.Exit(130)
		}
		log.Fatalf("Validation session failed: %v", err)
	}

	payload, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode values: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Values written to %s\n", *output)
	} else {
		fmt.Println(string(payload))
	}
}

func parseSource(raw string) loader.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return loader.SourceFromURL(path)
	}
	return loader.SourceFromFile(path)
}
