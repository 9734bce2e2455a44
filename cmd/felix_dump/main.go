package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Parryho/Menuplaner/pkg/config"
	"github.com/Parryho/Menuplaner/pkg/export"
	"github.com/Parryho/Menuplaner/pkg/extraction"
	"github.com/Parryho/Menuplaner/pkg/felix"
	"github.com/Parryho/Menuplaner/pkg/ocr"
)

// Runs one extraction locally and prints the progress trail and the rows.
// No database is needed.
func main() {
	file := flag.String("file", "", "Pensionsliste photo, scan or PDF")
	preproc := flag.String("preproc", "", "also write the binarized image to this PNG path")
	xlsx := flag.String("xlsx", "", "also write the rows to this XLSX path")
	raw := flag.Bool("raw", false, "print the recognized text")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()
	if *file == "" {
		log.Fatal("-file required")
	}

	cfg := config.Load()
	logger := zap.NewNop()
	if *verbose {
		if l, err := config.NewLogger("debug", "console"); err == nil {
			logger = l
		}
	}
	defer logger.Sync()

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read: %v", err)
	}
	popts := ocr.PreprocessOptions{LongSide: cfg.LongSide, Window: cfg.SauvolaWindow, K: cfg.SauvolaK}

	if *preproc != "" {
		png, err := ocr.PreprocessBytes(data, popts)
		if err != nil {
			log.Fatalf("preprocess: %v", err)
		}
		if err := os.WriteFile(*preproc, png, 0o644); err != nil {
			log.Fatalf("write preprocessed image: %v", err)
		}
	}

	ex := extraction.New(
		ocr.NewTesseract(cfg.OCRLanguage, cfg.OCRTimeout, logger),
		ocr.PlainPDF{},
		extraction.WithMinRows(cfg.OCRMinRows),
		extraction.WithPreprocessOptions(popts),
		extraction.WithLogger(logger),
	)
	abs, _ := filepath.Abs(*file)
	fmt.Printf("Running extraction on %s\n", abs)
	run := ex.Run(context.Background(), extraction.Input{
		Data:     data,
		Filename: filepath.Base(*file),
		Observer: func(s extraction.StepLog) {
			if s.Message != "" {
				fmt.Printf("  [%3d%%] %-10s %s\n", s.Percent, s.State, s.Message)
			}
		},
	})

	if *raw {
		fmt.Println(strings.Repeat("-", 60))
		fmt.Println(run.Result.RawText)
		fmt.Println(strings.Repeat("-", 60))
	}
	fmt.Printf("state=%s pass=%s hotel=%q zeitraum=%q rows=%d\n", run.State, run.Pass, run.Result.Hotel, run.Result.Zeitraum, len(run.Result.Days))
	if run.Failed() {
		fmt.Printf("error: %v\n", run.Err)
		os.Exit(1)
	}
	fmt.Printf("%-9s %-3s %6s %6s %6s %6s %6s %6s %6s %6s  %s\n", "Datum", "Tag", "Ges", "Frst", "KPV", "Mittag", "KPN", "AbE", "AbK", "Abend", "Konf")
	for _, d := range run.Result.Days {
		fmt.Printf("%-9s %-3s %6d %6d %6d %6d %6d %6d %6d %6d  %.2f %s\n",
			d.Date, d.Day, d.GesamtPax, d.Fruehstueck, d.KpVorm, d.Mittag, d.KpNach, d.AbendE, d.AbendK, d.AbendGesamt,
			d.Confidence, felix.ConfidenceLevel(d.Confidence))
	}

	if *xlsx != "" {
		b, err := export.ResultXLSX(run.Result)
		if err != nil {
			log.Fatalf("export: %v", err)
		}
		if err := os.WriteFile(*xlsx, b, 0o644); err != nil {
			log.Fatalf("write xlsx: %v", err)
		}
		fmt.Printf("wrote %s\n", *xlsx)
	}
}
