package shared

import (
	"fmt"
	"sort"
	"strings"
)

// WarningType represents different types of warnings
type WarningType int

const (
	MoveFailedWarning WarningType = iota
	AnalysisFailedWarning
	CollisionRenamedWarning
	FileSkippedWarning
)

// Warning represents a single warning with context
type Warning struct {
	Type    WarningType
	Message string
	Context string // file or path context
	Details string // underlying error message
}

// WarningCollector collects per-file warnings during a batch run so a
// single failure never aborts the batch.
type WarningCollector struct {
	warnings []Warning
	enabled  bool
}

// NewWarningCollector creates a new warning collector
func NewWarningCollector(enabled bool) *WarningCollector {
	return &WarningCollector{
		warnings: make([]Warning, 0),
		enabled:  enabled,
	}
}

// AddWarning adds a warning to the collector
func (wc *WarningCollector) AddWarning(warningType WarningType, context, message, details string) {
	if !wc.enabled {
		return
	}

	warning := Warning{
		Type:    warningType,
		Message: message,
		Context: context,
		Details: details,
	}
	wc.warnings = append(wc.warnings, warning)
}

// AddMoveFailedWarning records a relocation failure for one file
func (wc *WarningCollector) AddMoveFailedWarning(filename, details string) {
	wc.AddWarning(MoveFailedWarning, filename, "Failed to move file", details)
}

// AddAnalysisFailedWarning records a feature-extraction failure for one file
func (wc *WarningCollector) AddAnalysisFailedWarning(filename, details string) {
	wc.AddWarning(AnalysisFailedWarning, filename, "Failed to analyze file", details)
}

// AddCollisionRenamedWarning records that a destination collision forced a rename
func (wc *WarningCollector) AddCollisionRenamedWarning(destPath string) {
	wc.AddWarning(CollisionRenamedWarning, destPath, "Destination existed, suffixed filename", "")
}

// AddFileSkippedWarning records a file excluded from processing
func (wc *WarningCollector) AddFileSkippedWarning(filename, details string) {
	wc.AddWarning(FileSkippedWarning, filename, "File skipped", details)
}

// HasWarnings returns true if there are any warnings
func (wc *WarningCollector) HasWarnings() bool {
	return len(wc.warnings) > 0
}

// GetWarningCount returns the total number of warnings
func (wc *WarningCollector) GetWarningCount() int {
	return len(wc.warnings)
}

// GetWarningsByType returns warnings grouped by type
func (wc *WarningCollector) GetWarningsByType() map[WarningType][]Warning {
	grouped := make(map[WarningType][]Warning)
	for _, warning := range wc.warnings {
		grouped[warning.Type] = append(grouped[warning.Type], warning)
	}
	return grouped
}

// PrintSummary prints a formatted summary of all warnings
func (wc *WarningCollector) PrintSummary() {
	if !wc.HasWarnings() {
		return
	}

	ColorWarning.Printf("\n⚠️  Warning Summary (%d warnings):\n", len(wc.warnings))
	ColorWarning.Println(strings.Repeat("─", 50))

	grouped := wc.GetWarningsByType()

	// Sort warning types for consistent output
	var types []WarningType
	for warningType := range grouped {
		types = append(types, warningType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, warningType := range types {
		wc.printWarningTypeSection(warningType, grouped[warningType])
	}
}

// printWarningTypeSection prints warnings for a specific type
func (wc *WarningCollector) printWarningTypeSection(warningType WarningType, warnings []Warning) {
	if len(warnings) == 0 {
		return
	}

	sectionTitle := wc.getWarningTypeTitle(warningType)
	ColorWarning.Printf("\n%s (%d):\n", sectionTitle, len(warnings))

	// Group identical contexts to avoid repetition
	contextCounts := make(map[string]int)
	contextDetails := make(map[string]string)
	for _, warning := range warnings {
		contextCounts[warning.Context]++
		if warning.Details != "" {
			contextDetails[warning.Context] = warning.Details
		}
	}

	var contexts []string
	for context := range contextCounts {
		contexts = append(contexts, context)
	}
	sort.Strings(contexts)

	for _, context := range contexts {
		line := context
		if details := contextDetails[context]; details != "" {
			line = fmt.Sprintf("%s: %s", context, details)
		}
		if count := contextCounts[context]; count > 1 {
			ColorWarning.Printf("  • %s (×%d)\n", line, count)
		} else {
			ColorWarning.Printf("  • %s\n", line)
		}
	}
}

// getWarningTypeTitle returns a human-readable title for a warning type
func (wc *WarningCollector) getWarningTypeTitle(warningType WarningType) string {
	switch warningType {
	case MoveFailedWarning:
		return "Move Failures"
	case AnalysisFailedWarning:
		return "Analysis Failures"
	case CollisionRenamedWarning:
		return "Collision Renames"
	case FileSkippedWarning:
		return "Skipped Files"
	default:
		return "Other Warnings"
	}
}
