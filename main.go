package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"phishvet-poc/ensemble"
	"phishvet-poc/features"
	"phishvet-poc/pipeline"
	"phishvet-poc/signals"
	"phishvet-poc/web"
)

func main() {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Fatalf("[INIT] config: %v", err)
	}

	trusted, err := features.LoadTrustedDomains(cfg.WhitelistPath)
	if err != nil {
		log.Fatalf("[INIT] whitelist: %v", err)
	}
	if trusted.Len() == 0 {
		log.Warnf("[INIT] no trusted domains loaded from %s; whitelist checks will never match", cfg.WhitelistPath)
	} else {
		log.Infof("[INIT] loaded %d trusted domains, typosquatting checks %d brands", trusted.Len(), len(features.SensitiveBrands))
	}

	// A missing or corrupt model artifact is fatal: the ensemble refuses
	// to serve with a member silently dropped.
	models, err := ensemble.LoadAll(cfg.ModelPaths())
	if err != nil {
		log.Fatalf("[INIT] models: %v", err)
	}
	scorer, err := ensemble.NewScorer(models, features.NumFeatures)
	if err != nil {
		log.Fatalf("[INIT] scorer: %v", err)
	}

	resolver := signals.NewResolver(time.Duration(cfg.WhoisTimeout), time.Duration(cfg.TLSTimeout))
	pipe := pipeline.New(trusted, resolver)
	srv := web.NewServer(pipe, scorer)

	http.HandleFunc("/check", srv.CheckHandler)
	http.HandleFunc("/", srv.IndexHandler)

	log.Infof("[INIT] phishvet service listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatal(err)
	}
}
