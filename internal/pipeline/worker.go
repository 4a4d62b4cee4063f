package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"lessongest/internal/assemble"
	"lessongest/internal/config"
	"lessongest/internal/docstore"
	"lessongest/internal/segment"
	"lessongest/internal/source"
)

// Worker processes a single ingestion job.
type Worker struct {
	docs  *docstore.Store
	stats *ParseStats
	log   *slog.Logger
	cfg   config.Config
}

func NewWorker(docs *docstore.Store, stats *ParseStats, log *slog.Logger, cfg config.Config) *Worker {
	return &Worker{
		docs:  docs,
		stats: stats,
		log:   log,
		cfg:   cfg,
	}
}

// Process runs the full ingest pipeline for a job: load, dedup, segment,
// classify, assemble, store.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)
	start := time.Now()

	// Phase 1: Load the raw bytes into a flat line stream.
	job.SetStatus(StatusLoading, "loading")
	loader, err := source.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "loading")
		return
	}
	if p, ok := loader.(*source.PDFLoader); ok {
		p.FallbackPdftotext = w.cfg.PDFFallbackPdftotext
	}

	raw, err := loader.Load(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("load failed", "error", err)
		job.AddError(fmt.Sprintf("load: %s", err))
		job.SetStatus(StatusFailed, "loading")
		return
	}
	log.Info("loaded document", "lines", len(raw))

	// Phase 1.5: Dedup on the raw file content.
	hash := ContentHashHex(job.FileData())
	job.ContentHash = hash

	if existing := w.docs.ByHash(hash); existing != nil {
		log.Info("duplicate document, skipping", "existing_doc_id", existing.ID)
		job.SetDocID(existing.ID)
		job.SetStatus(StatusDupSkipped, "dedup")
		return
	}

	// Phase 2: TOC extraction and section splitting.
	job.SetStatus(StatusSegmenting, "segmenting")
	engCfg := w.cfg.EngineConfig()
	toc := segment.ParseTOC(raw)
	sections := segment.Split(raw, toc, engCfg.Splitter)
	job.SetCounts(len(toc), len(sections))
	log.Info("segmented document", "toc_entries", len(toc), "sections", len(sections))

	if len(sections) == 0 {
		// Still produce an empty-but-valid document; the caller can
		// inspect the recorded error.
		job.AddError("no sections recognized")
	}

	if err := ctx.Err(); err != nil {
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "segmenting")
		return
	}

	// Phase 3: Per-section classification with bounded concurrency.
	job.SetStatus(StatusClassifying, "classifying")
	contents := assemble.ClassifyAll(sections, engCfg, func(int) {
		job.IncrSectionsClassified()
	})

	// Phase 4: Assemble and store.
	job.SetStatus(StatusAssembling, "assembling")
	doc := assemble.Compose(sections, contents)

	if err := assemble.Validate(doc); err != nil {
		log.Warn("document failed validation", "error", err)
		job.AddError(fmt.Sprintf("validate: %s", err))
	}

	rec := &docstore.Record{
		ID:          hash[:12],
		Filename:    job.Filename,
		ContentHash: hash,
		CreatedAt:   time.Now(),
		Counts:      assemble.Count(doc),
		Document:    doc,
	}
	w.docs.Put(rec)
	job.SetDocID(rec.ID)

	elapsed := time.Since(start)
	w.stats.Record(elapsed.Milliseconds())
	log.Info("ingest complete", "doc_id", rec.ID,
		"lessons", rec.Counts.Lessons,
		"dictionary_entries", rec.Counts.DictionaryEntries,
		"duration_ms", elapsed.Milliseconds())
	job.SetStatus(StatusCompleted, "done")
}
