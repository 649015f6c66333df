// Package orchestrator develops every photo of an input directory.
package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/user/instantfilm/pkg/film"
	"github.com/user/instantfilm/pkg/pipeline"
	"github.com/user/instantfilm/pkg/ports"
)

// Config contains all configuration for a batch run.
type Config struct {
	InputDir  string
	OutputDir string
	Options   pipeline.DevelopOptions
}

// Orchestrator fans a batch of photos out to the develop stage.
type Orchestrator struct {
	developStage pipeline.Developer
	fs           ports.FileSystem
	logger       ports.Logger
	numWorkers   int
}

// New creates a new Orchestrator. numWorkers <= 0 uses one worker per CPU.
func New(
	developStage pipeline.Developer,
	fs ports.FileSystem,
	logger ports.Logger,
	numWorkers int,
) *Orchestrator {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Orchestrator{
		developStage: developStage,
		fs:           fs,
		logger:       logger,
		numWorkers:   numWorkers,
	}
}

// Run develops all photos of config.InputDir into config.OutputDir.
// A failed photo is logged and recorded in the result; only failures to list
// the input or create the output directory, and cancellation, abort the run.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	start := time.Now()
	o.logger.Info("Developing photos in %s", config.InputDir)

	if err := o.fs.MkdirAll(config.OutputDir); err != nil {
		o.logger.Error("Failed to create output directory: %s", err)
		return RunResult{}, fmt.Errorf("create output directory: %w", err)
	}

	paths, err := o.fs.ListFiles(config.InputDir)
	if err != nil {
		o.logger.Error("Failed to list input files: %s", err)
		return RunResult{}, fmt.Errorf("list input files: %w", err)
	}
	paths = photoPaths(paths)
	if len(paths) == 0 {
		o.logger.Warn("No photos found in %s", config.InputDir)
	}

	files := o.developAll(ctx, config, paths)

	result := RunResult{
		Files:      files,
		Options:    config.Options,
		InputDir:   config.InputDir,
		OutputDir:  config.OutputDir,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	o.logger.Info("Developed %d of %d photos", result.Succeeded(), len(files))
	return result, nil
}

// indexedResult holds a file result with its original index for sorting.
type indexedResult struct {
	index  int
	result FileResult
}

// developAll runs the worker pool over paths and returns the results in
// input order. Photos not started before cancellation are left out.
func (o *Orchestrator) developAll(ctx context.Context, config Config, paths []string) []FileResult {
	jobs := make(chan int, len(paths))
	results := make(chan indexedResult, len(paths))

	var wg sync.WaitGroup
	for w := 0; w < min(o.numWorkers, max(len(paths), 1)); w++ {
		wg.Add(1)
		go o.worker(ctx, &wg, config, paths, jobs, results)
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]indexedResult, 0, len(paths))
	for r := range results {
		collected = append(collected, r)
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].index < collected[j].index
	})

	files := make([]FileResult, len(collected))
	for i, r := range collected {
		files[i] = r.result
	}
	return files
}

// worker develops photos from the jobs channel until it is drained or ctx is done.
func (o *Orchestrator) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	config Config,
	paths []string,
	jobs <-chan int,
	results chan<- indexedResult,
) {
	defer wg.Done()

	for idx := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		r := o.developOne(ctx, config, paths[idx])
		if r.Err != nil {
			o.logger.Error("Failed to develop %s: %s", r.Source, r.Err)
		} else {
			o.logger.Info("Developed %s -> %s", r.Source, r.Output)
		}
		results <- indexedResult{index: idx, result: r}
	}
}

// developOne reads, develops and writes a single photo.
func (o *Orchestrator) developOne(ctx context.Context, config Config, path string) (r FileResult) {
	start := time.Now()
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	r.Source = name
	defer func() { r.DurationMs = time.Since(start).Milliseconds() }()

	data, err := o.fs.ReadFile(path)
	if err != nil {
		r.Err = fmt.Errorf("read input: %w", err)
		return r
	}

	developed, err := o.developStage.Execute(ctx, pipeline.DevelopInput{
		Name:    stem,
		Data:    data,
		Options: config.Options,
	})
	if err != nil {
		r.Err = err
		return r
	}

	output := filepath.Join(config.OutputDir, stem+developed.Format.Extension())
	if err := o.fs.WriteFile(output, developed.Data); err != nil {
		r.Err = fmt.Errorf("write output: %w", err)
		return r
	}

	r.Output = filepath.Base(output)
	r.Width = developed.Width
	r.Height = developed.Height
	r.FileSize = int64(len(developed.Data))
	r.Painter = developed.Painter
	r.Metadata = developed.Metadata
	return r
}

// photoPaths drops hidden files such as .DS_Store.
func photoPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if strings.HasPrefix(filepath.Base(p), ".") {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FileResult is the outcome of developing one photo.
type FileResult struct {
	Source     string // Input file name
	Output     string // Output file name, empty on failure
	Width      int
	Height     int
	FileSize   int64
	Painter    string
	Metadata   film.Metadata
	DurationMs int64
	Err        error
}

// RunResult contains the results of a batch run for summary generation.
type RunResult struct {
	InputDir   string
	OutputDir  string
	Options    pipeline.DevelopOptions
	Files      []FileResult
	DurationMs int64
}

// Succeeded returns the number of photos developed without error.
func (r RunResult) Succeeded() int {
	n := 0
	for _, f := range r.Files {
		if f.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of photos that could not be developed.
func (r RunResult) Failed() int {
	return len(r.Files) - r.Succeeded()
}
