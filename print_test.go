package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSnapshotTable(t *testing.T) {
	records := []PriceRecord{
		{Rank: 1, Name: "Bitcoin", Symbol: "BTC", Price: 65432.1, Change: 2.5, MarketCap: 1.29e12, Volume24h: 2.8e10},
		{Rank: 2, Name: "Ethereum", Symbol: "ETH", Price: 3456.789, Change: -1.25, MarketCap: 4.15e11, Volume24h: 1.2e10},
	}

	var buf bytes.Buffer
	renderSnapshotTable(&buf, records)
	out := buf.String()

	for _, want := range []string{"BTC", "Bitcoin", "$65432.10", "2.50%", "ETH", "-1.25%", "$415.00B", "$1.71T", "$40.00B"} {
		assert.Contains(t, out, want)
	}
}

func TestRunPrint(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runPrint(context.Background(), &fakeSource{records: sampleRecords(3)}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "C3")
	assert.Empty(t, stderr.String())

	stdout.Reset()
	code = runPrint(context.Background(), &fakeSource{err: errors.New("offline")}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "offline")
}
