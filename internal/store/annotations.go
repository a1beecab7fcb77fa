package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/varannot/varannot/internal/annotate"
)

// Row is one persisted annotation record. Positions are one-based.
type Row struct {
	Chrom         string
	Pos           int64
	Ref           string
	Alt           string
	TranscriptID  string
	GeneSymbol    string
	Effects       string
	Impact        string
	LocationType  string
	LocationRank  int32
	LocationTotal int32
	HGVSn         string
	HGVSp         string
}

// rowKey is the composite key for deduplicating rows before writing.
type rowKey struct {
	chrom, ref, alt, transcriptID string
	pos                           int64
}

// rowOf flattens an annotation into its persisted form.
func rowOf(ann annotate.Annotation) Row {
	r := Row{
		Chrom:        ann.Variant.Chrom,
		Pos:          ann.Variant.Begin + 1,
		Ref:          ann.Variant.Ref,
		Alt:          ann.Variant.Alt,
		TranscriptID: ann.Accession(),
		GeneSymbol:   ann.GeneSymbol(),
		Effects:      ann.EffectString(),
		Impact:       ann.Impact(),
		LocationRank: int32(annotate.InvalidRank),
		HGVSn:        ann.NucleotideHGVS,
		HGVSp:        ann.ProteinHGVS,
	}
	if loc := ann.Location; loc != nil {
		if loc.Type == annotate.LocationExon {
			r.LocationType = "exon"
		} else {
			r.LocationType = "intron"
		}
		r.LocationRank = int32(loc.Rank)
		r.LocationTotal = int32(loc.Total)
	}
	return r
}

// WriteAnnotations batch-inserts annotations using the Appender API.
// Duplicate (chrom, pos, ref, alt, transcript_id) entries are deduplicated
// before writing.
func (s *Store) WriteAnnotations(anns []annotate.Annotation) error {
	if len(anns) == 0 {
		return nil
	}

	seen := make(map[rowKey]bool, len(anns))
	rows := make([]Row, 0, len(anns))
	for _, ann := range anns {
		r := rowOf(ann)
		k := rowKey{r.Chrom, r.Ref, r.Alt, r.TranscriptID, r.Pos}
		if !seen[k] {
			seen[k] = true
			rows = append(rows, r)
		}
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "annotations")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range rows {
		if err := appender.AppendRow(
			r.Chrom, r.Pos, r.Ref, r.Alt, r.TranscriptID,
			r.GeneSymbol, r.Effects, r.Impact,
			r.LocationType, r.LocationRank, r.LocationTotal,
			r.HGVSn, r.HGVSp,
		); err != nil {
			return fmt.Errorf("append annotation: %w", err)
		}
	}

	return appender.Flush()
}

// Clear removes all persisted annotations.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM annotations")
	return err
}

const selectColumns = `chrom, pos, ref, alt, transcript_id,
	gene_symbol, effects, impact,
	location_type, location_rank, location_total,
	hgvs_n, hgvs_p`

// LookupVariant returns persisted annotations for a specific variant.
// pos is one-based.
func (s *Store) LookupVariant(chrom string, pos int64, ref, alt string) ([]Row, error) {
	rows, err := s.db.Query(`SELECT `+selectColumns+`
		FROM annotations
		WHERE chrom=? AND pos=? AND ref=? AND alt=?`,
		chrom, pos, ref, alt)
	if err != nil {
		return nil, fmt.Errorf("query variant: %w", err)
	}
	defer rows.Close()

	return scanRows(rows)
}

// SearchByGene returns all persisted annotations for a gene symbol.
func (s *Store) SearchByGene(geneSymbol string) ([]Row, error) {
	rows, err := s.db.Query(`SELECT `+selectColumns+`
		FROM annotations
		WHERE gene_symbol=?`, geneSymbol)
	if err != nil {
		return nil, fmt.Errorf("query by gene: %w", err)
	}
	defer rows.Close()

	return scanRows(rows)
}

// SearchByRegion returns persisted annotations with a one-based position
// in [begin, end].
func (s *Store) SearchByRegion(chrom string, begin, end int64) ([]Row, error) {
	rows, err := s.db.Query(`SELECT `+selectColumns+`
		FROM annotations
		WHERE chrom=? AND pos>=? AND pos<=?`,
		chrom, begin, end)
	if err != nil {
		return nil, fmt.Errorf("query by region: %w", err)
	}
	defer rows.Close()

	return scanRows(rows)
}

// Count returns the number of persisted annotation rows.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM annotations").Scan(&n); err != nil {
		return 0, fmt.Errorf("count annotations: %w", err)
	}
	return n, nil
}

func scanRows(rows *sql.Rows) ([]Row, error) {
	var results []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(
			&r.Chrom, &r.Pos, &r.Ref, &r.Alt, &r.TranscriptID,
			&r.GeneSymbol, &r.Effects, &r.Impact,
			&r.LocationType, &r.LocationRank, &r.LocationTotal,
			&r.HGVSn, &r.HGVSp,
		); err != nil {
			return nil, fmt.Errorf("scan annotation: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate annotations: %w", err)
	}
	return results, nil
}
