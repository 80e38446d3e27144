package autoenc_test

import (
	"encoding/csv"
	"os"
	"strings"
	"testing"

	ae "github.com/HiYKY/autoenc"
)

func TestFitWritesSummaries(t *testing.T) {
	x := randomData(8, 3, 40)
	logDir := t.TempDir()

	u := ae.NewUnit("u", 3, 2)
	if _, err := u.Fit(x, ae.FitArgs{Epochs: 3, BatchSize: 2, LogEvery: 1, LogDir: logDir}); err != nil {
		t.Fatalf("failed to fit unit: %v", err)
	}

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("failed to read log directory: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "u_run-") {
		t.Fatalf("log directory holds %v, should hold one 'u_run-*' directory", entries)
	}

	f, err := os.Open(logDir + "/" + entries[0].Name() + "/loss.csv")
	if err != nil {
		t.Fatalf("summary file wasn't written: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("summary isn't readable CSV: %v", err)
	}

	if len(records) < 2 {
		t.Fatalf("summary holds %d records, should hold the header plus at least one value", len(records))
	}

	header := records[0]
	if len(header) != 3 || header[0] != "step" || header[1] != "epoch" || header[2] != "loss" {
		t.Errorf("summary header is %v, should be [step epoch loss]", header)
	}

	// 3 epochs of 4 iterations, logged every iteration
	if len(records)-1 != 12 {
		t.Errorf("summary holds %d values, should hold 12", len(records)-1)
	}
}
