// modelcheck loads an .archimate document, optionally merges a staged
// JSON batch, runs the consistency engine (and optionally the
// autocomplete rules), prints the report and writes the cleaned model
// back out.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	appservices "github.com/Switchdoctorstu/Archimate-Ingester/application/services"
	"github.com/Switchdoctorstu/Archimate-Ingester/domain/registry"
	domainservices "github.com/Switchdoctorstu/Archimate-Ingester/domain/services"
	"github.com/Switchdoctorstu/Archimate-Ingester/infrastructure/archixml"
)

func main() {
	var (
		inPath       = flag.String("in", "", "input .archimate file (required)")
		outPath      = flag.String("out", "", "output file; defaults to overwriting the input")
		stagingPath  = flag.String("staging", "", "staged JSON batch to merge before validation")
		autocomplete = flag.Bool("autocomplete", false, "apply autocomplete suggestion rules")
		verbose      = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *inPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *outPath == "" {
		*outPath = *inPath
	}

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatalf("logger: %v", err)
		}
	}
	defer logger.Sync()

	reg := registry.Default()
	codec := archixml.New()
	session := appservices.NewModelService(
		reg,
		appservices.NewStagingService(reg, logger),
		domainservices.NewConsistencyEngine(reg, logger),
		domainservices.NewAutocompleteEngine(reg, logger),
		codec,
		nil,
		appservices.DefaultHistoryLimit,
		logger,
	)

	in, err := os.Open(*inPath)
	if err != nil {
		log.Fatalf("open %s: %v", *inPath, err)
	}
	if err := session.ImportDocument(in); err != nil {
		in.Close()
		log.Fatalf("parse %s: %v", *inPath, err)
	}
	in.Close()

	if *stagingPath != "" {
		data, err := os.ReadFile(*stagingPath)
		if err != nil {
			log.Fatalf("read %s: %v", *stagingPath, err)
		}
		result, err := session.MergeStaging(data)
		if err != nil {
			log.Fatalf("merge %s: %v", *stagingPath, err)
		}
		fmt.Printf("Merged staging: %d elements, %d relationships (%d/%d skipped)\n",
			result.ElementsCreated, result.RelationshipsCreated,
			result.ElementsSkipped, result.RelationshipsSkipped)
		for _, d := range result.Diagnostics {
			fmt.Printf("  [%s] %s\n", d.Level, d.Message)
		}
	}

	report := session.RunConsistency()
	fmt.Print(report.Render())

	if *autocomplete {
		result := session.RunAutocomplete()
		fmt.Printf("Autocomplete added %d elements, %d relationships\n",
			len(result.CreatedElements), len(result.CreatedRelationships))
	}

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("create %s: %v", *outPath, err)
	}
	defer out.Close()
	if err := session.ExportDocument(out); err != nil {
		log.Fatalf("write %s: %v", *outPath, err)
	}

	stats := session.Stats()
	fmt.Printf("Wrote %s: %d elements, %d relationships\n", *outPath, stats.Elements, stats.Relationships)
}
