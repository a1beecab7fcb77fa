package transcript

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/varannot/varannot/internal/genome"
)

// modelJSON is the interchange form for externally built transcript models.
// Coordinates are zero-based, half-open; sequences are transcript-oriented.
type modelJSON struct {
	Accession  string      `json:"accession"`
	GeneSymbol string      `json:"gene_symbol"`
	Chrom      string      `json:"chrom"`
	Strand     string      `json:"strand"`
	Exons      [][2]int64  `json:"exons"`
	CDS        *[2]int64   `json:"cds,omitempty"`
	Sequence   string      `json:"sequence,omitempty"`
}

// ReadModels decodes a JSON array of transcript models, validating each
// through New. The reader may be gzip-compressed.
func ReadModels(r io.Reader) ([]*Model, error) {
	var raw []modelJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode transcript models: %w", err)
	}
	models := make([]*Model, 0, len(raw))
	for _, mj := range raw {
		tm, err := mj.toModel()
		if err != nil {
			return nil, err
		}
		models = append(models, tm)
	}
	return models, nil
}

// ReadModelsFile loads transcript models from a JSON file, transparently
// handling a .gz suffix.
func ReadModelsFile(path string) ([]*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip transcript file: %w", err)
		}
		defer gz.Close()
		r = gz
	}
	return ReadModels(r)
}

// WriteModels encodes transcript models as a JSON array.
func WriteModels(w io.Writer, models []*Model) error {
	raw := make([]modelJSON, 0, len(models))
	for _, tm := range models {
		raw = append(raw, fromModel(tm))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(raw); err != nil {
		return fmt.Errorf("encode transcript models: %w", err)
	}
	return nil
}

func (mj modelJSON) toModel() (*Model, error) {
	var strand genome.Strand
	switch mj.Strand {
	case "+":
		strand = genome.StrandFwd
	case "-":
		strand = genome.StrandRev
	default:
		return nil, fmt.Errorf("%w: %s has strand %q, want + or -", ErrMalformedTranscript, mj.Accession, mj.Strand)
	}
	exons := make([]genome.Interval, 0, len(mj.Exons))
	for _, e := range mj.Exons {
		exons = append(exons, genome.Interval{Chrom: mj.Chrom, Begin: e[0], End: e[1]})
	}
	var cds genome.Interval
	if mj.CDS != nil {
		cds = genome.Interval{Chrom: mj.Chrom, Begin: mj.CDS[0], End: mj.CDS[1]}
	}
	return New(mj.Accession, mj.GeneSymbol, mj.Chrom, strand, exons, cds, strings.ToUpper(mj.Sequence))
}

func fromModel(tm *Model) modelJSON {
	mj := modelJSON{
		Accession:  tm.Accession,
		GeneSymbol: tm.GeneSymbol,
		Chrom:      tm.Chrom,
		Strand:     "+",
		Sequence:   tm.Sequence,
	}
	if !tm.Strand.IsForward() {
		mj.Strand = "-"
	}
	for _, e := range tm.Exons {
		mj.Exons = append(mj.Exons, [2]int64{e.Begin, e.End})
	}
	if tm.IsCoding() {
		cds := tm.CDS
		mj.CDS = &[2]int64{cds.Begin, cds.End}
	}
	return mj
}
