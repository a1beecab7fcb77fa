package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/varannot/varannot/internal/annotate"
	"github.com/varannot/varannot/internal/output"
	"github.com/varannot/varannot/internal/store"
	"github.com/varannot/varannot/internal/transcript"
	"github.com/varannot/varannot/internal/vcf"
)

func newAnnotateCmd() *cobra.Command {
	var (
		transcriptsPath string
		outputFile      string
		dbPath          string
		workers         int
		flank           int64
		svMinLen        int
	)

	cmd := &cobra.Command{
		Use:   "annotate [flags] <input.vcf>",
		Short: "Annotate variants in a VCF file",
		Long:  "Annotate each variant in a VCF file against every overlapping\ntranscript model, writing one tab-delimited row per pair.\nUse '-' to read from stdin.",
		Example: `  varannot annotate -t transcripts.json input.vcf
  varannot annotate -t transcripts.json.gz -o out.tsv input.vcf.gz
  cat input.vcf | varannot annotate -t transcripts.json -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if transcriptsPath == "" {
				transcriptsPath = viper.GetString("transcripts")
			}
			if transcriptsPath == "" {
				return fmt.Errorf("no transcript models: use --transcripts or set 'transcripts' in the config")
			}
			if dbPath == "" {
				dbPath = viper.GetString("db")
			}
			return runAnnotate(args[0], transcriptsPath, outputFile, dbPath, workers, flank, svMinLen)
		},
	}

	cmd.Flags().StringVarP(&transcriptsPath, "transcripts", "t", "", "transcript models JSON file (.json or .json.gz)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&dbPath, "db", "", "also persist results to a DuckDB database")
	cmd.Flags().IntVar(&workers, "workers", 0, "annotation workers (default: one per CPU)")
	cmd.Flags().Int64Var(&flank, "flank", transcript.DefaultFlankSize, "upstream/downstream flank size in bases")
	cmd.Flags().IntVar(&svMinLen, "sv-min-len", annotate.DefaultStructuralMinLen, "allele length from which variants are treated as structural")

	return cmd
}

func runAnnotate(inputPath, transcriptsPath, outputFile, dbPath string, workers int, flank int64, svMinLen int) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	models, err := transcript.ReadModelsFile(transcriptsPath)
	if err != nil {
		return err
	}
	logger.Info("loaded transcript models",
		zap.Int("count", len(models)),
		zap.String("path", transcriptsPath))

	index := transcript.NewIndex(models, flank)

	ann := annotate.NewAnnotator(index)
	ann.SetLogger(logger)
	ann.SetWorkers(workers)
	ann.SetStructuralMinLen(svMinLen)

	parser, err := vcf.NewParser(inputPath)
	if err != nil {
		return err
	}
	defer parser.Close()

	out := os.Stdout
	if outputFile != "" {
		out, err = os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer out.Close()
	}

	var writer annotate.AnnotationWriter = output.NewTabWriter(out)

	if dbPath != "" {
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()
		logger.Info("persisting annotations", zap.String("db", dbPath))
		writer = &storeWriter{inner: writer, store: st}
	}

	if err := writer.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return ann.AnnotateAll(parser, writer)
}

// storeWriter tees annotations into a DuckDB store, batch-writing them
// when the stream is flushed.
type storeWriter struct {
	inner annotate.AnnotationWriter
	store *store.Store
	batch []annotate.Annotation
}

func (sw *storeWriter) WriteHeader() error {
	return sw.inner.WriteHeader()
}

func (sw *storeWriter) Write(ann annotate.Annotation) error {
	sw.batch = append(sw.batch, ann)
	return sw.inner.Write(ann)
}

func (sw *storeWriter) Flush() error {
	if err := sw.store.WriteAnnotations(sw.batch); err != nil {
		return fmt.Errorf("persist annotations: %w", err)
	}
	sw.batch = nil
	return sw.inner.Flush()
}
