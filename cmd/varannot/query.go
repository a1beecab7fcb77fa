package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/varannot/varannot/internal/annotate"
	"github.com/varannot/varannot/internal/store"
)

func newQueryCmd() *cobra.Command {
	var (
		dbPath string
		gene   string
		region string
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query persisted annotations",
		Long:  "Query annotations persisted by a previous 'annotate --db' run,\nby gene symbol or by genomic region.",
		Example: `  varannot query --db results.duckdb --gene ZBTB48
  varannot query --db results.duckdb --region 1:6640000-6650000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = viper.GetString("db")
			}
			if dbPath == "" {
				return fmt.Errorf("no database: use --db or set 'db' in the config")
			}
			return runQuery(dbPath, gene, region)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "DuckDB database written by 'annotate --db'")
	cmd.Flags().StringVar(&gene, "gene", "", "gene symbol to search for")
	cmd.Flags().StringVar(&region, "region", "", "genomic region as chrom:begin-end (one-based, inclusive)")
	cmd.MarkFlagsMutuallyExclusive("gene", "region")

	return cmd
}

func runQuery(dbPath, gene, region string) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	var rows []store.Row
	switch {
	case gene != "":
		rows, err = st.SearchByGene(gene)
	case region != "":
		chrom, begin, end, perr := parseRegion(region)
		if perr != nil {
			return perr
		}
		rows, err = st.SearchByRegion(chrom, begin, end)
	default:
		n, cerr := st.Count()
		if cerr != nil {
			return cerr
		}
		fmt.Printf("%d annotations in %s\n", n, dbPath)
		return nil
	}
	if err != nil {
		return err
	}

	for _, r := range rows {
		fmt.Fprintln(os.Stdout, formatRow(r))
	}
	return nil
}

func parseRegion(s string) (chrom string, begin, end int64, err error) {
	chrom, span, ok := strings.Cut(s, ":")
	if !ok || chrom == "" {
		return "", 0, 0, fmt.Errorf("invalid region %q: want chrom:begin-end", s)
	}
	from, to, ok := strings.Cut(span, "-")
	if !ok {
		return "", 0, 0, fmt.Errorf("invalid region %q: want chrom:begin-end", s)
	}
	begin, err = strconv.ParseInt(from, 10, 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid region begin %q", from)
	}
	end, err = strconv.ParseInt(to, 10, 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid region end %q", to)
	}
	if end < begin {
		return "", 0, 0, fmt.Errorf("invalid region %q: end before begin", s)
	}
	return chrom, begin, end, nil
}

func formatRow(r store.Row) string {
	rank := "-"
	if r.LocationRank != int32(annotate.InvalidRank) && r.LocationType != "" {
		rank = fmt.Sprintf("%s %d/%d", r.LocationType, r.LocationRank+1, r.LocationTotal)
	}
	fields := []string{
		fmt.Sprintf("%s:%d", r.Chrom, r.Pos),
		orDash(r.Ref) + ">" + orDash(r.Alt),
		orDash(r.GeneSymbol),
		orDash(r.TranscriptID),
		orDash(r.Effects),
		orDash(r.Impact),
		rank,
		orDash(r.HGVSn),
		orDash(r.HGVSp),
	}
	return strings.Join(fields, "\t")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
