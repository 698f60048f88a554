package gen

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/syssam/solgen/compiler/printer"
)

// SourceExt is the extension of written contract files.
const SourceExt = ".sol"

// ManifestFile is the name of the run manifest in the output directory.
const ManifestFile = "manifest.yaml"

// Writer prints generated contracts and writes them to a directory in
// parallel, one <id>.sol file per contract plus a manifest.
type Writer struct {
	outDir  string
	workers int
	logger  *zap.Logger
	runID   uuid.UUID
	onWrite func(context.Context, *GeneratedSource) error
	print   []printer.Option

	// Metrics for performance monitoring
	mu       sync.Mutex
	metrics  *WriterMetrics
	manifest []ManifestEntry
}

// WriterMetrics tracks generation performance
type WriterMetrics struct {
	FilesWritten int
	TotalBytes   int64
	PrintTime    int64 // nanoseconds
	WriteTime    int64 // nanoseconds
}

// Manifest describes one writer run.
type Manifest struct {
	Run       string          `yaml:"run"`
	Contracts []ManifestEntry `yaml:"contracts"`
}

// ManifestEntry describes one written contract.
type ManifestEntry struct {
	ID          string   `yaml:"id"`
	Kind        Kind     `yaml:"kind"`
	Name        string   `yaml:"name"`
	Upgradeable bool     `yaml:"upgradeable"`
	Footprint   []string `yaml:"footprint"`

	seq int
}

// NewWriter creates a writer for cfg.Target using cfg.Workers workers.
func NewWriter(cfg *Config) *Writer {
	w := &Writer{
		outDir:  cfg.Target,
		workers: cfg.Workers,
		logger:  cfg.Logger,
		runID:   uuid.New(),
		metrics: &WriterMetrics{},
	}
	if w.workers <= 0 {
		w.workers = runtime.GOMAXPROCS(0)
	}
	if w.logger == nil {
		w.logger = zap.NewNop()
	}
	return w
}

// WithWorkers sets the number of parallel workers.
func (w *Writer) WithWorkers(n int) *Writer {
	if n > 0 {
		w.workers = n
	}
	return w
}

// WithPrintOptions sets options passed to the printer.
func (w *Writer) WithPrintOptions(opts ...printer.Option) *Writer {
	w.print = opts
	return w
}

// OnWrite registers fn to be called after each file is written, e.g. to
// index the source. It may be called concurrently.
func (w *Writer) OnWrite(fn func(context.Context, *GeneratedSource) error) *Writer {
	w.onWrite = fn
	return w
}

// RunID returns the id recorded in the manifest.
func (w *Writer) RunID() uuid.UUID { return w.runID }

// Metrics returns the generation metrics.
func (w *Writer) Metrics() *WriterMetrics {
	return w.metrics
}

// WriteAll prints and writes every contract of seq, then the manifest.
// The first error cancels the remaining tasks.
func (w *Writer) WriteAll(ctx context.Context, seq iter.Seq2[*GeneratedContract, error]) error {
	if w.outDir == "" {
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	log := w.logger.With(zap.String("run", w.runID.String()))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)

	n := 0
	for gc, err := range seq {
		if err != nil {
			eg.Go(func() error { return err })
			break
		}
		if ctx.Err() != nil {
			break
		}
		idx := n
		n++
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.writeContract(ctx, idx, gc)
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	if err := w.writeManifest(); err != nil {
		return err
	}
	log.Info("contracts written",
		zap.String("dir", w.outDir),
		zap.Int("files", w.metrics.FilesWritten),
		zap.Int64("bytes", w.metrics.TotalBytes),
	)
	return nil
}

// writeContract prints and writes a single contract.
func (w *Writer) writeContract(ctx context.Context, seq int, gc *GeneratedContract) error {
	start := time.Now()
	src, err := Print(gc, w.print...)
	if err != nil {
		return err
	}
	printed := time.Now()

	path := filepath.Join(w.outDir, gc.ID+SourceExt)
	if err := os.WriteFile(path, []byte(src.Source), 0o644); err != nil {
		return NewGenerationError(PhaseWrite, gc.Options, gc.ID, err)
	}
	if w.onWrite != nil {
		if err := w.onWrite(ctx, src); err != nil {
			return NewGenerationError(PhaseWrite, gc.Options, gc.ID, err)
		}
	}
	w.logger.Debug("contract written", zap.String("id", gc.ID), zap.String("kind", string(gc.Options.Kind())))

	w.mu.Lock()
	defer w.mu.Unlock()
	w.metrics.FilesWritten++
	w.metrics.TotalBytes += int64(len(src.Source))
	w.metrics.PrintTime += int64(printed.Sub(start))
	w.metrics.WriteTime += int64(time.Since(printed))
	w.manifest = append(w.manifest, ManifestEntry{
		ID:          gc.ID,
		Kind:        gc.Options.Kind(),
		Name:        gc.Contract.Name,
		Upgradeable: gc.Contract.Upgradeable,
		Footprint:   gc.Contract.Footprint(),
		seq:         seq,
	})
	return nil
}

func (w *Writer) writeManifest() error {
	w.mu.Lock()
	entries := slices.SortedFunc(slices.Values(w.manifest), func(a, b ManifestEntry) int {
		return cmp.Compare(a.seq, b.seq)
	})
	w.mu.Unlock()
	data, err := yaml.Marshal(Manifest{Run: w.runID.String(), Contracts: entries})
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(w.outDir, ManifestFile), data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ReadManifest reads the manifest of a writer run in dir.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}
