package gifplay

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/user/gifplay/pkg/ports"
	"github.com/user/gifplay/pkg/timeline"
)

// Exporter writes the frames of a built timeline to disk as still images,
// one file per composited frame, plus a timeline.json summary.
type Exporter struct {
	renderer ports.Renderer
	fs       ports.FileSystem
	logger   ports.Logger
}

// NewExporter creates a new Exporter.
func NewExporter(renderer ports.Renderer, fs ports.FileSystem, logger ports.Logger) *Exporter {
	return &Exporter{
		renderer: renderer,
		fs:       fs,
		logger:   logger.WithComponent("export"),
	}
}

// timelineSummary is the serialized form of the timeline metadata.
type timelineSummary struct {
	FrameCount int            `json:"frame_count"`
	TotalMs    int64          `json:"total_ms"`
	LoopCount  int            `json:"loop_count"`
	Frames     []frameSummary `json:"frames"`
}

type frameSummary struct {
	Index   int    `json:"index"`
	StartMs int64  `json:"start_ms"`
	File    string `json:"file"`
}

// Export writes one image per composited frame into dir, named
// frame-0000.png and so on. Frame images are shared read-only; export never
// mutates them, scaling and flattening draw into fresh buffers.
func (e *Exporter) Export(ctx context.Context, tl *timeline.Timeline, dir string, cfg Config) error {
	if tl == nil || tl.FrameCount() == 0 {
		return fmt.Errorf("export: empty timeline")
	}
	if err := e.fs.MkdirAll(dir); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	e.logger.Debug("Exporting %d frames with %d workers", tl.FrameCount(), workers)
	start := time.Now()

	jobs := make(chan int, tl.FrameCount())
	errChan := make(chan error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go e.worker(ctx, &wg, tl, dir, cfg, jobs, errChan)
	}

	for i := 0; i < tl.FrameCount(); i++ {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(errChan)

	if err := <-errChan; err != nil {
		return err
	}

	if err := e.writeSummary(tl, dir, cfg); err != nil {
		return err
	}

	e.logger.Debug("Export completed: %d files in %s", tl.FrameCount()+1, time.Since(start).Round(time.Millisecond))
	return nil
}

// worker encodes and writes frames from the jobs channel.
func (e *Exporter) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	tl *timeline.Timeline,
	dir string,
	cfg Config,
	jobs <-chan int,
	errChan chan<- error,
) {
	defer wg.Done()

	for idx := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if err := e.exportFrame(tl.Frames[idx].Image, idx, dir, cfg); err != nil {
			select {
			case errChan <- fmt.Errorf("export frame %d: %w", idx, err):
			default:
			}
			return
		}
	}
}

// exportFrame prepares, encodes and writes a single frame.
func (e *Exporter) exportFrame(img image.Image, index int, dir string, cfg Config) error {
	prepared := e.prepare(img, cfg)

	data, err := e.renderer.EncodeImage(prepared, cfg.Format, cfg.Quality)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, frameFileName(index, cfg.Format))
	return e.fs.WriteFile(path, data)
}

// prepare applies scaling and background flattening without touching the
// shared frame image.
func (e *Exporter) prepare(img image.Image, cfg Config) image.Image {
	if cfg.Scale > 0 && cfg.Scale != 1.0 {
		bounds := img.Bounds()
		width := int(float64(bounds.Dx()) * cfg.Scale)
		height := int(float64(bounds.Dy()) * cfg.Scale)
		if width > 0 && height > 0 {
			img = e.renderer.ResizeImage(img, width, height)
		}
	}

	if cfg.Background != nil {
		bounds := img.Bounds()
		dc := e.renderer.CreateCanvas(bounds.Dx(), bounds.Dy())
		dc.DrawRect(0, 0, bounds.Dx(), bounds.Dy(), cfg.Background)
		dc.DrawImage(img, 0, 0)
		img = dc.ToImage()
	}

	return img
}

// writeSummary saves the timeline metadata next to the frames.
func (e *Exporter) writeSummary(tl *timeline.Timeline, dir string, cfg Config) error {
	summary := timelineSummary{
		FrameCount: tl.FrameCount(),
		TotalMs:    tl.TotalDuration.Milliseconds(),
		LoopCount:  tl.LoopCount,
		Frames:     make([]frameSummary, tl.FrameCount()),
	}
	for i, f := range tl.Frames {
		summary.Frames[i] = frameSummary{
			Index:   i,
			StartMs: f.Start.Milliseconds(),
			File:    frameFileName(i, cfg.Format),
		}
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal timeline summary: %w", err)
	}
	return e.fs.WriteFile(filepath.Join(dir, "timeline.json"), data)
}

func frameFileName(index int, format ports.ImageFormat) string {
	ext := "png"
	if format == ports.FormatJPEG {
		ext = "jpg"
	}
	return fmt.Sprintf("frame-%04d.%s", index, ext)
}
