package leveldata

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyTilemap is returned when no valid map data is found.
var ErrEmptyTilemap = errors.New("tilemap is empty - no valid map data found")

// IoError wraps a file read/write failure with its path and operation tag.
type IoError struct {
	Path      string
	Operation string
	Err       error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("failed to %s '%s': %v", e.Operation, e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// ParseError reports a malformed segment header or body.
type ParseError struct {
	File   string
	Line   int // 1-based; 0 when the line is unknown
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in '%s' at line %d: %s", e.File, e.Line, e.Reason)
	}
	return fmt.Sprintf("parse error in '%s': %s", e.File, e.Reason)
}

// ValidationError reports validator rejections for a level.
type ValidationError struct {
	LevelID string
	Issues  []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("level '%s' validation failed: %s", e.LevelID, strings.Join(e.Issues, ", "))
}

// NotFoundError reports a level that could not be located.
type NotFoundError struct {
	ID       string
	Searched []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("level '%s' not found in: %s", e.ID, strings.Join(e.Searched, ", "))
}

// FileTooLargeError reports a segment file over the size bound.
type FileTooLargeError struct {
	Path    string
	Size    int
	MaxSize int
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("level file '%s' too large: %d bytes (max %d bytes)", e.Path, e.Size, e.MaxSize)
}

// TilemapTooLargeError reports a grid over the dimension bound.
type TilemapTooLargeError struct {
	Width, Height int
	MaxDimension  int
}

func (e *TilemapTooLargeError) Error() string {
	return fmt.Sprintf("tilemap too large: %dx%d (max %dx%d)",
		e.Width, e.Height, e.MaxDimension, e.MaxDimension)
}
