package ecert

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// PreviewNames are rendered by Preview: a short name and one long enough to wrap.
var PreviewNames = []string{
	"Participant's Name",
	"Participant's Name That Is Long Should Be Printed In This Format And Outline",
}

// Generator renders previews and batches. A single Generator may run any number of
// batches concurrently; it keeps no per-batch state.
type Generator struct {
	cfg      *Config
	renderer *Renderer
	logger   *zap.SugaredLogger
}

func NewGenerator(cfg *Config, logger *zap.SugaredLogger) *Generator {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Generator{
		cfg:      cfg,
		renderer: NewRenderer(cfg),
		logger:   logger,
	}
}

type generationJob struct {
	index int
	name  string
}

type generationResult struct {
	index   int
	data    []byte
	err     error
	skipped bool
}

// Preview renders every PreviewNames entry and merges them into one document, one page
// per sample in order.
func (g *Generator) Preview(layout *Layout) ([]byte, error) {
	if layout == nil {
		return nil, ErrEmptySelection
	}

	results := g.renderAll(layout, PreviewNames, true)

	docs := make([][]byte, len(results))
	for i, r := range results {
		if r.err != nil {
			return nil, &RenderError{Name: PreviewNames[i], Err: r.err}
		}
		docs[i] = r.data
	}

	merged, err := mergeDocuments(docs, g.cfg.PDFConfiguration())
	if err != nil {
		return nil, err
	}

	return normalizeDocument(merged)
}

// PreviewName renders a single certificate for name without packaging it.
func (g *Generator) PreviewName(layout *Layout, name string) ([]byte, error) {
	if layout == nil {
		return nil, ErrEmptySelection
	}

	data, err := g.render(layout, name)
	if err != nil {
		return nil, &RenderError{Name: name, Err: err}
	}
	return data, nil
}

// Generate renders a certificate for every recipient. Under FailFast the first failure in
// recipient order is returned and no archive is produced.
func (g *Generator) Generate(layout *Layout, list *RecipientList) (*Archive, error) {
	if layout == nil || list == nil {
		return nil, ErrEmptySelection
	}
	if list.Len() == 0 {
		return nil, ErrEmptyRecipientList
	}

	names := make([]string, list.Len())
	for i, r := range list.Recipients {
		names[i] = r.Name
	}

	start := time.Now()
	results := g.renderAll(layout, names, g.cfg.FailurePolicy != SkipFailed)

	archive, err := g.aggregateResults(results, names)
	if err != nil {
		g.logger.Errorw("Batch generation failed", "recipients", len(names), "error", err)
		return nil, err
	}

	g.logger.Infow("Batch generated",
		"recipients", len(names),
		"entries", len(archive.Entries),
		"failures", len(archive.Failures),
		"duration", time.Since(start),
	)

	return archive, nil
}

// renderAll renders names on the worker pool and returns the results indexed like names.
// With stopOnFailure, jobs not yet started when a render fails are skipped and left
// without data. Jobs are started in index order, so every job before the first failure
// still completes.
func (g *Generator) renderAll(layout *Layout, names []string, stopOnFailure bool) []generationResult {
	maxWorkers := g.calculateWorkerCount(len(names))

	jobs := make(chan generationJob, len(names))
	results := make(chan generationResult, len(names))

	var (
		wg     sync.WaitGroup
		failed atomic.Bool
	)
	for range maxWorkers {
		wg.Add(1)
		go g.processWorkerJobs(layout, jobs, results, &wg, stopOnFailure, &failed)
	}

	for i, name := range names {
		jobs <- generationJob{index: i, name: name}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	ordered := make([]generationResult, len(names))
	for r := range results {
		ordered[r.index] = r
	}
	return ordered
}

func (g *Generator) calculateWorkerCount(jobCount int) int {
	limit := g.cfg.MaxWorkers
	if limit <= 0 {
		limit = max(runtime.GOMAXPROCS(0)*2, 1)
	}
	maxWorkers := max(min(limit, jobCount), 1)
	g.logger.Debugf("Using %d workers for %d renders", maxWorkers, jobCount)
	return maxWorkers
}

func (g *Generator) processWorkerJobs(layout *Layout, jobs <-chan generationJob, results chan<- generationResult, wg *sync.WaitGroup, stopOnFailure bool, failed *atomic.Bool) {
	defer wg.Done()

	for job := range jobs {
		if stopOnFailure && failed.Load() {
			results <- generationResult{index: job.index, skipped: true}
			continue
		}

		data, err := g.render(layout, job.name)
		if err != nil {
			failed.Store(true)
		}
		results <- generationResult{
			index: job.index,
			data:  data,
			err:   err,
		}
	}
}

func (g *Generator) render(layout *Layout, name string) ([]byte, error) {
	start := time.Now()
	data, err := g.renderer.RenderLayout(layout, name)
	if g.cfg.OnRender != nil {
		g.cfg.OnRender(time.Since(start), err)
	}
	return data, err
}

func (g *Generator) aggregateResults(results []generationResult, names []string) (*Archive, error) {
	fileNames := entryNames(names)
	archive := &Archive{Entries: make([]ArchiveEntry, 0, len(results))}

	for i, r := range results {
		if r.err != nil {
			renderErr := &RenderError{Name: names[i], Err: r.err}
			if g.cfg.FailurePolicy != SkipFailed {
				return nil, renderErr
			}

			g.logger.Warnw("Skipping failed certificate", "recipient", names[i], "error", r.err)
			archive.Failures = append(archive.Failures, renderErr)
			continue
		}

		if r.data == nil {
			return nil, fmt.Errorf("missing result for recipient %d (%q)", i+1, names[i])
		}

		archive.Entries = append(archive.Entries, ArchiveEntry{
			Name:      fileNames[i],
			Recipient: names[i],
			Data:      r.data,
		})
	}

	return archive, nil
}
