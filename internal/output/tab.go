// Package output provides annotation output formatters.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/varannot/varannot/internal/annotate"
)

// TabWriter writes annotations in tab-delimited format, one row per
// (variant, transcript) pair.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Location",
			"Allele",
			"Gene",
			"Feature",
			"Effects",
			"IMPACT",
			"EXON",
			"INTRON",
			"HGVSn",
			"HGVSp",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single annotation row.
func (tw *TabWriter) Write(ann annotate.Annotation) error {
	location := fmt.Sprintf("%s:%d", ann.Variant.Chrom, ann.Variant.Begin+1)

	allele := ann.Variant.Alt
	if allele == "" {
		allele = "-"
	}

	gene := orDash(ann.GeneSymbol())
	feature := orDash(ann.Accession())

	exon, intron := "-", "-"
	if loc := ann.Location; loc != nil && loc.Rank != annotate.InvalidRank {
		field := fmt.Sprintf("%d/%d", loc.Rank+1, loc.Total)
		if loc.Type == annotate.LocationExon {
			exon = field
		} else {
			intron = field
		}
	}

	values := []string{
		location,
		allele,
		gene,
		feature,
		ann.EffectString(),
		ann.Impact(),
		exon,
		intron,
		orDash(ann.NucleotideHGVS),
		orDash(ann.ProteinHGVS),
	}

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
