package transcript

import (
	"sort"

	"github.com/varannot/varannot/internal/genome"
)

// Index provides O(log n + k) transcript overlap queries per chromosome
// using a sorted-slice approach with a suffix-max array. Transcripts are
// loaded once and never modified after build.
type Index struct {
	byChrom map[string]*chromIndex
	flank   int64
}

type chromIndex struct {
	entries []indexEntry
	maxEnd  []int64 // maxEnd[i] = max(End) for entries[i:]
}

type indexEntry struct {
	begin, end int64
	tm         *Model
}

// NewIndex builds an index over the given models. Queries are expanded by
// flank bases on both sides so upstream/downstream variants still find the
// transcript.
func NewIndex(models []*Model, flank int64) *Index {
	idx := &Index{byChrom: make(map[string]*chromIndex), flank: flank}
	for _, tm := range models {
		ci := idx.byChrom[tm.Chrom]
		if ci == nil {
			ci = &chromIndex{}
			idx.byChrom[tm.Chrom] = ci
		}
		tx := tm.TXRegion()
		ci.entries = append(ci.entries, indexEntry{begin: tx.Begin, end: tx.End, tm: tm})
	}
	for _, ci := range idx.byChrom {
		sort.Slice(ci.entries, func(i, j int) bool {
			return ci.entries[i].begin < ci.entries[j].begin
		})
		ci.maxEnd = make([]int64, len(ci.entries))
		ci.maxEnd[len(ci.entries)-1] = ci.entries[len(ci.entries)-1].end
		for i := len(ci.entries) - 2; i >= 0; i-- {
			ci.maxEnd[i] = ci.entries[i].end
			if ci.maxEnd[i+1] > ci.maxEnd[i] {
				ci.maxEnd[i] = ci.maxEnd[i+1]
			}
		}
	}
	return idx
}

// Len returns the number of indexed transcripts.
func (x *Index) Len() int {
	var n int
	for _, ci := range x.byChrom {
		n += len(ci.entries)
	}
	return n
}

// Query returns the transcripts whose flank-expanded span overlaps the
// change interval. Insertion points are treated as single-base queries.
func (x *Index) Query(iv genome.Interval) []*Model {
	ci := x.byChrom[iv.Chrom]
	if ci == nil {
		return nil
	}
	qb, qe := iv.Begin-x.flank, iv.End+x.flank
	if iv.IsEmpty() {
		qb, qe = iv.Begin-x.flank, iv.Begin+x.flank
	}

	// Binary search: first entry with begin >= qe; candidates are [0, hi).
	hi := sort.Search(len(ci.entries), func(i int) bool {
		return ci.entries[i].begin >= qe
	})

	var result []*Model
	for i := hi - 1; i >= 0; i-- {
		// Prune: if no entry from 0..i reaches qb, none can overlap.
		if ci.maxEnd[i] <= qb {
			break
		}
		if ci.entries[i].end > qb {
			result = append(result, ci.entries[i].tm)
		}
	}
	// Restore ascending begin order after the backward scan.
	for l, r := 0, len(result)-1; l < r; l, r = l+1, r-1 {
		result[l], result[r] = result[r], result[l]
	}
	return result
}
