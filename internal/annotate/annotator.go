package annotate

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/varannot/varannot/internal/genome"
	"github.com/varannot/varannot/internal/transcript"
)

// TranscriptLookup finds the transcripts overlapping a change interval.
type TranscriptLookup interface {
	Query(iv genome.Interval) []*transcript.Model
}

// Annotator annotates variants against an indexed transcript set.
type Annotator struct {
	index            TranscriptLookup
	structuralMinLen int
	workers          int
	logger           *zap.Logger
}

// NewAnnotator creates an annotator over the given transcript lookup.
func NewAnnotator(idx TranscriptLookup) *Annotator {
	return &Annotator{
		index:            idx,
		structuralMinLen: DefaultStructuralMinLen,
		logger:           zap.NewNop(),
	}
}

// SetLogger sets the logger for warning and info messages.
func (a *Annotator) SetLogger(l *zap.Logger) {
	a.logger = l
}

// SetStructuralMinLen overrides the allele length from which variants are
// annotated as structural.
func (a *Annotator) SetStructuralMinLen(n int) {
	a.structuralMinLen = n
}

// SetWorkers overrides the batch worker count; zero means one per CPU.
func (a *Annotator) SetWorkers(n int) {
	a.workers = n
}

func (a *Annotator) isStructural(v genome.Variant) bool {
	return len(v.Ref) >= a.structuralMinLen || len(v.Alt) >= a.structuralMinLen
}

// Annotate annotates one variant against every overlapping transcript,
// falling back to a single intergenic annotation when none overlaps.
func (a *Annotator) Annotate(v genome.Variant) ([]Annotation, error) {
	if v.Chrom == "" {
		return nil, fmt.Errorf("variant has no chromosome")
	}
	if len(v.Ref) == 0 && len(v.Alt) == 0 {
		return nil, fmt.Errorf("variant %s:%d alters nothing", v.Chrom, v.Begin)
	}

	models := a.index.Query(v.Interval())
	if len(models) == 0 {
		if a.isStructural(v) {
			return []Annotation{BuildStructural(nil, v)}, nil
		}
		return []Annotation{Build(nil, v)}, nil
	}

	anns := make([]Annotation, 0, len(models))
	for _, tm := range models {
		if a.isStructural(v) {
			anns = append(anns, BuildStructural(tm, v))
		} else {
			anns = append(anns, Build(tm, v))
		}
	}
	return anns, nil
}

// VariantSource yields variants one at a time; ok is false at end of input.
type VariantSource interface {
	Next() (v genome.Variant, ok bool, err error)
}

// AnnotationWriter receives annotations in input order.
type AnnotationWriter interface {
	WriteHeader() error
	Write(ann Annotation) error
	Flush() error
}

// AnnotateAll annotates every variant from the source, in parallel, writing
// results in input order. A variant that fails to annotate is logged and
// skipped; it never aborts the batch.
func (a *Annotator) AnnotateAll(src VariantSource, w AnnotationWriter) error {
	items := make(chan WorkItem, 64)
	var readErr error

	go func() {
		defer close(items)
		seq := 0
		for {
			v, ok, err := src.Next()
			if err != nil {
				readErr = fmt.Errorf("read variant: %w", err)
				return
			}
			if !ok {
				return
			}
			items <- WorkItem{Seq: seq, Variant: v}
			seq++
		}
	}()

	results := a.ParallelAnnotate(items, a.workers)

	if err := OrderedCollect(results, func(r WorkResult) error {
		if r.Err != nil {
			a.logger.Warn("failed to annotate variant",
				zap.String("chrom", r.Variant.Chrom),
				zap.Int64("pos", r.Variant.Begin),
				zap.Error(r.Err))
			return nil
		}
		for _, ann := range r.Anns {
			if err := w.Write(ann); err != nil {
				return fmt.Errorf("write annotation: %w", err)
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if readErr != nil {
		return readErr
	}
	return w.Flush()
}
