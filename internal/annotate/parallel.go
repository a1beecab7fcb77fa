package annotate

import (
	"runtime"
	"sync"

	"github.com/varannot/varannot/internal/genome"
)

// WorkItem holds one variant ready for annotation.
type WorkItem struct {
	Seq     int
	Variant genome.Variant
}

// WorkResult holds the annotation output for one variant.
type WorkResult struct {
	Seq     int
	Variant genome.Variant
	Anns    []Annotation
	Err     error
}

// ParallelAnnotate annotates work items using a pool of workers. Results
// arrive on the returned channel in completion order, not sequence order;
// use OrderedCollect to consume them in sequence order. Workers of 0 means
// runtime.NumCPU().
func (a *Annotator) ParallelAnnotate(items <-chan WorkItem, workers int) <-chan WorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for item := range items {
				anns, err := a.Annotate(item.Variant)
				results <- WorkResult{
					Seq:     item.Seq,
					Variant: item.Variant,
					Anns:    anns,
					Err:     err,
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect calls fn for each result in sequence-number order,
// buffering out-of-order results until the next expected sequence number
// arrives. Blocks until the results channel is closed.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	pending := make(map[int]WorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}
