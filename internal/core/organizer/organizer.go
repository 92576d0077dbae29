package organizer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"sample-organizer/internal/core/metadata"
	"sample-organizer/internal/interfaces"
	"sample-organizer/internal/shared"
)

// eligibleExtensions is the closed set of file types the organizer relocates.
// Everything else (project files, presets, artwork) stays where it is.
var eligibleExtensions = map[string]bool{
	".wav": true,
	".aif": true,
	".mp3": true,
	".mid": true,
}

// Organizer relocates sample files from a source tree into a
// category-first destination layout with canonical filenames.
type Organizer struct {
	mover           interfaces.FileMover
	warnings        *shared.WarningCollector
	warningBehavior string
	debug           bool
	dryRun          bool
}

// NewOrganizer creates a new Organizer
func NewOrganizer(mover interfaces.FileMover, warnings *shared.WarningCollector, warningBehavior string, debug, dryRun bool) *Organizer {
	return &Organizer{
		mover:           mover,
		warnings:        warnings,
		warningBehavior: warningBehavior,
		debug:           debug,
		dryRun:          dryRun,
	}
}

// Run walks sourceDir and relocates every eligible file into
// destDir/<category>/<canonical name>. Per-file failures are recorded and
// counted but never abort the walk.
func (o *Organizer) Run(sourceDir, destDir string) (*shared.OrganizeStats, error) {
	if _, err := os.Stat(sourceDir); err != nil {
		return nil, fmt.Errorf("source directory not accessible: %w", err)
	}
	if !o.dryRun {
		if err := shared.CreateDirIfNotExists(destDir); err != nil {
			return nil, fmt.Errorf("failed to create destination directory: %w", err)
		}
	}

	absDest, err := filepath.Abs(destDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination path: %w", err)
	}

	stats := &shared.OrganizeStats{}
	planned := make(map[string]bool)
	walkErr := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// One unreadable entry must not kill the batch.
			o.warnings.AddFileSkippedWarning(path, err.Error())
			shared.DebugPrint(o.debug, "Skipping unreadable path: %s (%v)", path, err)
			return nil
		}
		if d.IsDir() {
			// Never descend into the destination when it lives under the source.
			if abs, absErr := filepath.Abs(path); absErr == nil && abs == absDest {
				return filepath.SkipDir
			}
			return nil
		}
		o.processFile(sourceDir, destDir, path, d.Name(), planned, stats)
		return nil
	})
	if walkErr != nil {
		return stats, walkErr
	}

	if o.dryRun {
		shared.ColorSuccess.Printf("Dry run complete! Would move %d files to %s\n", stats.MovedCount, destDir)
	} else {
		shared.ColorSuccess.Printf("Organization complete! Moved %d files to %s\n", stats.MovedCount, destDir)
	}
	if stats.FailedCount > 0 {
		shared.ColorWarning.Printf("%d files failed to move\n", stats.FailedCount)
	}
	return stats, nil
}

func (o *Organizer) processFile(sourceDir, destDir, path, name string, planned map[string]bool, stats *shared.OrganizeStats) {
	ext := filepath.Ext(name)
	if strings.HasPrefix(name, ".") || !eligibleExtensions[strings.ToLower(ext)] {
		stats.SkippedCount++
		o.warnings.AddFileSkippedWarning(path, "not an eligible audio file")
		shared.DebugPrint(o.debug, "Skipping ineligible file: %s", path)
		return
	}

	meta := o.buildMetadata(sourceDir, path, name, ext)
	newName := metadata.Synthesize(meta.PackName, meta.SampleName, meta.BPM, meta.Key, meta.Extension)

	categoryDir := filepath.Join(destDir, meta.Category)
	candidate := filepath.Join(categoryDir, newName)
	// Destinations already claimed earlier in this run count as occupied,
	// so a dry run previews the same suffixes a real run would produce.
	finalPath := ResolveCollision(candidate, func(p string) bool {
		return planned[p] || shared.PathExists(p)
	})
	planned[finalPath] = true
	renamed := finalPath != candidate

	if o.dryRun {
		shared.ColorInfo.Printf("Would move: %s -> %s\n", path, finalPath)
		stats.MovedCount++
		if renamed {
			stats.RenamedCount++
		}
		return
	}

	if err := shared.CreateDirIfNotExists(categoryDir); err != nil {
		o.reportFailure(path, err)
		stats.FailedCount++
		return
	}
	if err := o.mover.Move(path, finalPath); err != nil {
		o.reportFailure(path, err)
		stats.FailedCount++
		return
	}

	stats.MovedCount++
	if renamed {
		stats.RenamedCount++
		o.warnings.AddCollisionRenamedWarning(finalPath)
		shared.ColorMove.Printf("Moved (renamed): %s -> %s\n", name, finalPath)
	} else {
		shared.ColorMove.Printf("Moved: %s -> %s\n", name, finalPath)
	}
}

// buildMetadata derives everything the synthesizer needs for one file:
// category from the path below the source root, BPM/key from the filename
// with a folder fallback, pack name from the first relative path segment.
// Paths above the source root never influence classification — a keyword
// in the user's personal folder names must not recategorize a library.
func (o *Organizer) buildMetadata(sourceDir, path, name, ext string) shared.SampleMetadata {
	rel, err := filepath.Rel(sourceDir, path)
	if err != nil {
		rel = name
	}
	relSlash := filepath.ToSlash(rel)

	category := metadata.Classify(relSlash)
	bpm, key := metadata.ParseWithFallback(name, filepath.ToSlash(filepath.Dir(rel)))

	packName := "UnknownPack"
	segments := strings.Split(relSlash, "/")
	if len(segments) > 1 {
		if cleaned := metadata.CleanName(segments[0]); cleaned != "" {
			packName = cleaned
		}
	}

	stem := strings.TrimSuffix(name, ext)
	sampleName := metadata.StripTokens(metadata.CleanName(stem), bpm, key)

	return shared.SampleMetadata{
		PackName:   packName,
		SampleName: sampleName,
		BPM:        bpm,
		Key:        key,
		Category:   category,
		Extension:  ext,
	}
}

func (o *Organizer) reportFailure(path string, err error) {
	if o.warningBehavior == "immediate" {
		shared.ColorWarning.Printf("⚠️  Failed to move %s: %v\n", path, err)
	}
	o.warnings.AddMoveFailedWarning(path, err.Error())
}
