// Batch feature extraction: turns a CSV of labeled URLs into the
// 31-column training table used to fit the ensemble models.
package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"phishvet-poc/dataset"
	"phishvet-poc/features"
)

func main() {
	_ = godotenv.Load()

	inPath := flag.String("in", "dataset.csv", "input CSV with url,label[,domain_age,ssl_age] columns")
	outPath := flag.String("out", "training_dataset.csv", "output training table")
	whitelistPath := flag.String("whitelist", "final_whitelist.csv", "trusted-domain allow-list")
	flag.Parse()

	trusted, err := features.LoadTrustedDomains(*whitelistPath)
	if err != nil {
		log.Fatalf("[DATASET] whitelist: %v", err)
	}
	log.Infof("[DATASET] loaded %d trusted domains", trusted.Len())

	in, err := os.Open(*inPath)
	if err != nil {
		log.Fatalf("[DATASET] open input: %v", err)
	}
	defer in.Close()

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("[DATASET] create output: %v", err)
	}
	defer out.Close()

	stats, err := dataset.Build(in, out, trusted)
	if err != nil {
		log.Fatalf("[DATASET] build failed: %v", err)
	}
	log.Infof("[DATASET] wrote %d rows to %s (%d skipped)", stats.Written, *outPath, stats.Skipped)
}
