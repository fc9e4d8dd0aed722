package main

import (
	"math"
	"sort"
)

// Byte-to-token divisors: optimistic and pessimistic tokens-per-byte
// ratios for source-like text. Deliberate rough constants, not derived
// from any real tokenizer; keep them as-is for run-to-run output parity.
const (
	tokenDivisorLow  = 4
	tokenDivisorHigh = 3
)

// estimateTokens converts a byte count into a [low, high] token range.
func estimateTokens(sizeBytes int64) (low, high int64) {
	return sizeBytes / tokenDivisorLow, sizeBytes / tokenDivisorHigh
}

// aggregate computes totals, the per-extension breakdown (descending byte
// sum, first-seen order on ties), and the top-N largest files (empty when
// topN <= 0).
func aggregate(root string, records []FileRecord, topN int) Report {
	rep := Report{Root: root, TotalFiles: len(records)}
	for _, r := range records {
		rep.TotalBytes += r.Size
	}
	rep.TokLow, rep.TokHigh = estimateTokens(rep.TotalBytes)

	// Group in first-seen order so the stable sort below keeps ties
	// deterministic.
	index := make(map[string]int)
	for _, r := range records {
		i, ok := index[r.Ext]
		if !ok {
			i = len(rep.ByExt)
			index[r.Ext] = i
			rep.ByExt = append(rep.ByExt, ExtGroup{Ext: r.Ext})
		}
		rep.ByExt[i].Files++
		rep.ByExt[i].Bytes += r.Size
	}
	for i := range rep.ByExt {
		rep.ByExt[i].TokLow, rep.ByExt[i].TokHigh = estimateTokens(rep.ByExt[i].Bytes)
	}
	sort.SliceStable(rep.ByExt, func(i, j int) bool {
		return rep.ByExt[i].Bytes > rep.ByExt[j].Bytes
	})

	if topN > 0 {
		top := make([]FileRecord, len(records))
		copy(top, records)
		sort.SliceStable(top, func(i, j int) bool {
			return top[i].Size > top[j].Size
		})
		if len(top) > topN {
			top = top[:topN]
		}
		rep.Top = top
	}

	return rep
}

// summarize returns the midpoint token estimate and its percentage spread,
// rounded to the nearest integer for display.
func summarize(low, high int64) (avg int64, spreadPct int) {
	avg = (low + high) / 2
	if avg == 0 {
		return avg, 0
	}
	spreadPct = int(math.Round(float64(high-avg) / float64(avg) * 100))
	return avg, spreadPct
}
