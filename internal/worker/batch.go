package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/relextract/slotscan/internal/model"
)

// Runner defines the interface for annotating one document file.
type Runner interface {
	AnnotateFile(ctx context.Context, path string) (*model.Report, error)
}

// AnnotateJob annotates a single document file.
type AnnotateJob struct {
	Path   string
	Runner Runner
}

// Execute runs the annotation job.
func (j *AnnotateJob) Execute(ctx context.Context) Result {
	report, err := j.Runner.AnnotateFile(ctx, j.Path)
	return &AnnotateResult{Path: j.Path, Report: report, Error: err}
}

// AnnotateResult is the outcome of annotating one file.
type AnnotateResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the error from the annotation result.
func (r *AnnotateResult) GetError() error {
	return r.Error
}

// BatchProcessor annotates multiple document files concurrently.
type BatchProcessor struct {
	runner      Runner
	concurrency int
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(runner Runner, concurrency int) *BatchProcessor {
	return &BatchProcessor{runner: runner, concurrency: concurrency}
}

// ProcessPaths annotates the given files concurrently.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*AnnotateResult {
	if len(paths) == 0 {
		return []*AnnotateResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		// A dead context (batch timeout) stops submission; jobs already
		// running still report their results below.
		if !pool.Submit(ctx, &AnnotateJob{Path: path, Runner: b.runner}) {
			break
		}
	}

	results := pool.Wait()

	annotateResults := make([]*AnnotateResult, len(results))
	for i, result := range results {
		annotateResults[i] = result.(*AnnotateResult)
	}
	return annotateResults
}

// CollectPaths resolves a batch argument to document file paths: a directory
// yields its document files, a list file (one path per line) yields the listed
// paths, and anything else is taken as a single document file.
func CollectPaths(arg string) ([]string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	if info.IsDir() {
		return collectDir(arg)
	}
	if hasDocumentExt(arg) {
		return []string{arg}, nil
	}
	return readPathsFromFile(arg)
}

func collectDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if hasDocumentExt(path) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// readPathsFromFile reads file paths from a list file, one per line,
// skipping blanks and comments and deduplicating.
func readPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}

func hasDocumentExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml", ".conll", ".tsv":
		return true
	}
	return false
}
