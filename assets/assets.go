package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:segments
var content embed.FS

// SegmentsDir is the pool directory inside Content.
const SegmentsDir = "segments"

// Content returns the embedded asset filesystem rooted at the package.
func Content() fs.FS { return content }
