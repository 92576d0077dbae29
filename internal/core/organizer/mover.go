package organizer

import "sample-organizer/internal/shared"

// OSMover relocates files on the local filesystem.
type OSMover struct{}

// Move relocates a file, falling back to copy+delete across filesystems.
func (OSMover) Move(sourcePath, destPath string) error {
	return shared.MoveFile(sourcePath, destPath)
}
