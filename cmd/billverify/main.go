package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	bv "billverify"
	"billverify/ratesheet"
	"billverify/semindex"
	"billverify/verify"
)

func main() {
	ocrPath := flag.String("ocr", "", "path to an OCR result JSON file")
	source := flag.String("source", "", "hospital name as it appears on the bill")
	rateSheetDir := flag.String("rate-sheets", "", "directory of tie-up rate sheets (.json/.xlsx)")
	embeddingEndpoint := flag.String("embedding-endpoint", "", "Ollama embedding endpoint (overrides config default)")
	flag.Parse()

	if *ocrPath == "" || *rateSheetDir == "" {
		log.Fatal("both -ocr and -rate-sheets are required")
	}

	cfg := bv.DefaultConfig()
	if *embeddingEndpoint != "" {
		cfg.EmbeddingEndpoint = *embeddingEndpoint
	}
	cfg.RateSheetDirectory = *rateSheetDir

	raw, err := os.ReadFile(*ocrPath)
	if err != nil {
		log.Fatal(err)
	}

	var ocr bv.OcrResult
	if err := json.Unmarshal(raw, &ocr); err != nil {
		log.Fatal(err)
	}

	doc, err := bv.ExtractBill(ocr, cfg, bv.ExtractOptions{Source: *source})
	if err != nil {
		log.Fatal(err)
	}

	sheets, loadErrs := ratesheet.LoadDirectory(cfg.RateSheetDirectory)
	for _, e := range loadErrs {
		log.Printf("rate sheet load warning: %v", e)
	}

	client := semindex.NewEmbeddingClient(cfg.EmbeddingEndpoint, cfg.EmbeddingModel)
	var adjudicator verify.Adjudicator = verify.NoopAdjudicator{}
	if cfg.AdjudicatorEndpoint != "" {
		adjudicator = verify.NewOllamaAdjudicator(cfg.AdjudicatorEndpoint, cfg.AdjudicatorModel)
	}

	orch := verify.NewOrchestrator(cfg, client, adjudicator)
	ctx := context.Background()
	if err := orch.LoadRateSheets(ctx, sheets); err != nil {
		log.Fatal(err)
	}

	report, err := orch.Verify(ctx, doc)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Upload: %s\n", doc.UploadID)
	fmt.Printf("Hospital: %s (matched %s)\n", report.Hospital, report.MatchedHospital)
	fmt.Printf("Green: %d  Red: %d  Unclassified: %d  Ignored: %d  AllowedNotComparable: %d\n",
		report.Counts.Green, report.Counts.Red, report.Counts.Unclassified, report.Counts.Ignored, report.Counts.AllowedNotComparable)
	fmt.Printf("Bill total: %s  Allowed: %s  Extra: %s  Unclassified: %s\n",
		report.TotalBillAmount, report.TotalAllowedAmount, report.TotalExtraAmount, report.TotalUnclassifiedAmount)
	if !report.FinancialsBalanced {
		fmt.Println("warning: financial reconciliation did not balance within tolerance")
	}
}
