// Package dataset builds the training table: one row of 30 features plus a
// label per input URL, using the same static extractor and the same
// suspicious-age logic as the live inference path.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"phishvet-poc/features"
	"phishvet-poc/signals"
)

// BuildStats summarizes one batch run.
type BuildStats struct {
	Written int
	Skipped int
}

// Build reads rows of (url, label[, domain_age, ssl_age]) from a CSV with
// a header and writes the 31-column training table (30 features + label).
// Missing dynamic columns default to the -1 sentinel. Rows producing a
// wrong feature count are skipped with a warning, never fatal to the
// batch.
func Build(in io.Reader, out io.Writer, trusted *features.TrustedDomains) (BuildStats, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return BuildStats{}, fmt.Errorf("read input header: %w", err)
	}

	cols := columnIndex(header)
	urlIdx, ok := cols["url"]
	if !ok {
		return BuildStats{}, fmt.Errorf("input has no 'url' column")
	}
	labelIdx, ok := cols["label"]
	if !ok {
		return BuildStats{}, fmt.Errorf("input has no 'label' column")
	}
	domainAgeIdx, hasDomainAge := cols["domain_age"]
	sslAgeIdx, hasSSLAge := cols["ssl_age"]

	writer := csv.NewWriter(out)
	outHeader := append(append([]string{}, features.Columns...), "label")
	if err := writer.Write(outHeader); err != nil {
		return BuildStats{}, fmt.Errorf("write output header: %w", err)
	}

	var stats BuildStats
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("read input row %d: %w", line, err)
		}
		line++

		url := field(record, urlIdx)
		label := field(record, labelIdx)

		static := features.ExtractStatic(url, trusted)

		domainAge := -1.0
		if hasDomainAge {
			domainAge = parseAge(field(record, domainAgeIdx))
		}
		sslAge := -1.0
		if hasSSLAge {
			sslAge = parseAge(field(record, sslAgeIdx))
		}
		combo := signals.SuspiciousAgeCombo(domainAge, sslAge)

		vector := make([]float64, 0, features.NumFeatures)
		vector = append(vector, static.Vector...)
		vector = append(vector, domainAge, sslAge, combo)

		if len(vector) != features.NumFeatures {
			log.Warnf("[DATASET] row %d (%s): feature count %d, skipping", line, url, len(vector))
			stats.Skipped++
			continue
		}

		row := make([]string, 0, features.NumFeatures+1)
		for _, v := range vector {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		row = append(row, label)

		if err := writer.Write(row); err != nil {
			return stats, fmt.Errorf("write output row %d: %w", line, err)
		}
		stats.Written++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return stats, fmt.Errorf("flush output: %w", err)
	}
	return stats, nil
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// parseAge converts a dynamic-age column value, defaulting absent or
// malformed cells to the -1 sentinel.
func parseAge(s string) float64 {
	if s == "" || strings.EqualFold(s, "na") || strings.EqualFold(s, "nan") {
		return -1
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return -1
	}
	return v
}
