// Package transcript provides the transcript model, coordinate projection
// between genome, transcript, CDS and protein frames, and functional-region
// classification.
package transcript

import (
	"errors"
	"fmt"

	"github.com/varannot/varannot/internal/genome"
)

// ErrMalformedTranscript is wrapped by all transcript construction failures.
var ErrMalformedTranscript = errors.New("malformed transcript")

// Model is an immutable gene isoform: exon structure, CDS boundaries and the
// spliced transcript sequence. Models are built once by external gene-model
// collaborators and treated as read-only afterwards.
type Model struct {
	Accession  string
	GeneSymbol string
	Chrom      string
	Strand     genome.Strand
	// Exons in ascending genomic order, non-overlapping.
	Exons []genome.Interval
	// CDS is the coding region in genomic coordinates, stop codon included.
	// An empty interval marks a non-coding transcript.
	CDS genome.Interval
	// Sequence is the exon-concatenated transcript sequence in transcript
	// orientation (already reverse-complemented for reverse-strand models).
	Sequence string

	tx genome.Interval // derived transcript span
}

// New validates the transcript structure and returns the model.
func New(accession, geneSymbol, chrom string, strand genome.Strand, exons []genome.Interval, cds genome.Interval, sequence string) (*Model, error) {
	if len(exons) == 0 {
		return nil, fmt.Errorf("%w: %s has no exons", ErrMalformedTranscript, accession)
	}
	var exonLen int64
	for i, e := range exons {
		if e.Chrom != chrom {
			return nil, fmt.Errorf("%w: %s exon %d on chromosome %s, want %s", ErrMalformedTranscript, accession, i+1, e.Chrom, chrom)
		}
		if e.IsEmpty() {
			return nil, fmt.Errorf("%w: %s exon %d is empty", ErrMalformedTranscript, accession, i+1)
		}
		if i > 0 && e.Begin < exons[i-1].End {
			return nil, fmt.Errorf("%w: %s exons %d and %d overlap or are unsorted", ErrMalformedTranscript, accession, i, i+1)
		}
		exonLen += e.Len()
	}
	tx := genome.Interval{Chrom: chrom, Begin: exons[0].Begin, End: exons[len(exons)-1].End}
	if !cds.IsEmpty() {
		if !tx.ContainsInterval(cds) {
			return nil, fmt.Errorf("%w: %s CDS %d-%d outside exon span", ErrMalformedTranscript, accession, cds.Begin, cds.End)
		}
		for _, pos := range []int64{cds.Begin, cds.End - 1} {
			if exonAt(exons, pos) < 0 {
				return nil, fmt.Errorf("%w: %s CDS boundary %d falls in an intron", ErrMalformedTranscript, accession, pos)
			}
		}
	}
	if sequence != "" && int64(len(sequence)) != exonLen {
		return nil, fmt.Errorf("%w: %s sequence length %d does not match exonic length %d", ErrMalformedTranscript, accession, len(sequence), exonLen)
	}
	return &Model{
		Accession:  accession,
		GeneSymbol: geneSymbol,
		Chrom:      chrom,
		Strand:     strand,
		Exons:      exons,
		CDS:        cds,
		Sequence:   sequence,
		tx:         tx,
	}, nil
}

// TXRegion returns the genomic span from the first exon begin to the last
// exon end.
func (m *Model) TXRegion() genome.Interval {
	return m.tx
}

// IsCoding returns true if the transcript carries a CDS.
func (m *Model) IsCoding() bool {
	return !m.CDS.IsEmpty()
}

// ExonCount returns the number of exons.
func (m *Model) ExonCount() int {
	return len(m.Exons)
}

// ExonicLength returns the total number of exonic bases.
func (m *Model) ExonicLength() int64 {
	var n int64
	for _, e := range m.Exons {
		n += e.Len()
	}
	return n
}

// exonAt returns the index of the exon containing pos, or -1. Binary search
// over the ascending exon list.
func exonAt(exons []genome.Interval, pos int64) int {
	lo, hi := 0, len(exons)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		e := exons[mid]
		switch {
		case pos < e.Begin:
			hi = mid - 1
		case pos >= e.End:
			lo = mid + 1
		default:
			return mid
		}
	}
	return -1
}

// ExonIndexAt returns the genomic index of the exon containing pos, or -1
// when pos is intronic or outside the transcript.
func (m *Model) ExonIndexAt(pos int64) int {
	return exonAt(m.Exons, pos)
}

// ExonRank converts a genomic exon index to the transcript-order rank
// (0-based): exons count from the 5' end of the transcript.
func (m *Model) ExonRank(genomicIdx int) int {
	if m.Strand.IsForward() {
		return genomicIdx
	}
	return len(m.Exons) - 1 - genomicIdx
}
