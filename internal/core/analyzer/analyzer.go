package analyzer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/mattn/go-isatty"
	"golang.org/x/sync/semaphore"

	"sample-organizer/internal/config"
	"sample-organizer/internal/core/metadata"
	"sample-organizer/internal/interfaces"
	"sample-organizer/internal/shared"
)

// analyzableExtensions is the set of decodable file types. MIDI carries no
// audio to analyze and is excluded.
var analyzableExtensions = map[string]bool{
	".wav": true,
	".aif": true,
	".mp3": true,
}

// Analyzer walks an organized library and produces one CSV record of
// acoustic descriptors per audio file.
type Analyzer struct {
	extractor       interfaces.FeatureExtractor
	warnings        *shared.WarningCollector
	warningBehavior string
	parallelism     int
	debug           bool
}

// NewAnalyzer creates a new Analyzer
func NewAnalyzer(extractor interfaces.FeatureExtractor, warnings *shared.WarningCollector, warningBehavior string, parallelism int, debug bool) *Analyzer {
	if parallelism < 1 {
		parallelism = 1
	}
	return &Analyzer{
		extractor:       extractor,
		warnings:        warnings,
		warningBehavior: warningBehavior,
		parallelism:     parallelism,
		debug:           debug,
	}
}

// Run analyzes every audio file under libraryDir and writes the records to
// outputCSV, sorted by filename. Per-file failures are recorded and
// counted, never abort the batch.
func (a *Analyzer) Run(ctx context.Context, libraryDir, outputCSV string) (*shared.AnalysisStats, error) {
	if _, err := os.Stat(libraryDir); err != nil {
		return nil, fmt.Errorf("library directory not accessible: %w", err)
	}

	files, err := a.collectFiles(libraryDir)
	if err != nil {
		return nil, err
	}
	shared.ColorInfo.Printf("Found %d audio files to analyze\n", len(files))

	var bar *pb.ProgressBar
	if len(files) > 0 && isatty.IsTerminal(os.Stdout.Fd()) {
		bar = pb.StartNew(len(files))
	}

	stats := &shared.AnalysisStats{}
	var (
		mu      sync.Mutex
		records []SampleRecord
		wg      sync.WaitGroup
	)
	sem := semaphore.NewWeighted(int64(a.parallelism))

	for _, file := range files {
		wg.Add(1)
		if err := sem.Acquire(ctx, 1); err != nil {
			shared.ColorError.Printf("Failed to acquire semaphore: %v\n", err)
			wg.Done()
			break
		}

		go func(path string) {
			defer wg.Done()
			defer sem.Release(1)
			if bar != nil {
				defer bar.Increment()
			}

			record, err := a.analyzeFile(ctx, path)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				stats.FailedCount++
				a.reportFailure(path, err)
				return
			}
			records = append(records, *record)
			stats.ProcessedCount++
		}(file)
	}
	wg.Wait()
	if bar != nil {
		bar.Finish()
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Filename < records[j].Filename })
	if err := WriteCSV(outputCSV, records); err != nil {
		return stats, err
	}

	shared.ColorSuccess.Printf("Analysis complete! Wrote %d records to %s\n", stats.ProcessedCount, outputCSV)
	if stats.FailedCount > 0 {
		shared.ColorWarning.Printf("%d files failed to analyze\n", stats.FailedCount)
	}
	return stats, nil
}

// collectFiles returns every analyzable file under root. Hidden files,
// including macOS "._" resource forks, are excluded.
func (a *Analyzer) collectFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// One unreadable entry must not kill the batch.
			a.warnings.AddFileSkippedWarning(path, err.Error())
			shared.DebugPrint(a.debug, "Skipping unreadable path: %s (%v)", path, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") || !analyzableExtensions[strings.ToLower(filepath.Ext(name))] {
			a.warnings.AddFileSkippedWarning(path, "not an analyzable audio file")
			shared.DebugPrint(a.debug, "Skipping non-analyzable file: %s", path)
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk library: %w", err)
	}
	return files, nil
}

func (a *Analyzer) analyzeFile(ctx context.Context, path string) (*SampleRecord, error) {
	features, err := a.extractor.DecodeAndAnalyze(ctx, path, config.MaxAnalyzeSeconds)
	if err != nil {
		return nil, err
	}

	filename := filepath.Base(path)
	pack, sampleName := ParseStructuredName(filename)
	bpm, key := metadata.Parse(filename)

	return &SampleRecord{
		Filename:    filename,
		Category:    filepath.Base(filepath.Dir(path)),
		Pack:        pack,
		SampleName:  sampleName,
		BPMFromName: bpm,
		KeyFromName: key,
		Features:    *features,
	}, nil
}

func (a *Analyzer) reportFailure(path string, err error) {
	if a.warningBehavior == "immediate" {
		shared.ColorWarning.Printf("⚠️  Failed to analyze %s: %v\n", path, err)
	}
	a.warnings.AddAnalysisFailedWarning(path, err.Error())
}
