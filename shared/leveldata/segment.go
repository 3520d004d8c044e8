package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
)

// Segment is one hand-authored level chunk loaded from a segment file.
// The body keeps the raw glyph rows so the linker can place markers and
// difficulty slots before the combined level is parsed into tiles.
type Segment struct {
	Name      string
	Biome     string
	Archetype string
	Tier      int
	Mechanics []string
	Rows      []string
}

// headerBodySep separates the key: value header from the tilemap body.
const headerBodySep = "\n---\n"

// ParseSegment parses a single segment file. Unknown header keys are
// ignored. Body rows are right-padded with walls to the widest row.
func ParseSegment(name string, data []byte) (*Segment, error) {
	if len(data) > MaxSegmentFileSize {
		return nil, &FileTooLargeError{Path: name, Size: len(data), MaxSize: MaxSegmentFileSize}
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	header, body, found := strings.Cut(text, headerBodySep)
	if !found {
		return nil, &ParseError{File: name, Reason: "missing --- separator between header and body"}
	}

	seg := &Segment{Tier: 1}
	for i, line := range strings.Split(header, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, &ParseError{File: name, Line: i + 1, Reason: fmt.Sprintf("malformed header line %q", line)}
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "name":
			seg.Name = value
		case "biome":
			seg.Biome = strings.ToLower(value)
		case "archetype":
			seg.Archetype = value
		case "tier":
			tier, err := strconv.Atoi(value)
			if err != nil || tier < 1 || tier > 5 {
				return nil, &ParseError{File: name, Line: i + 1, Reason: fmt.Sprintf("tier must be 1..5, got %q", value)}
			}
			seg.Tier = tier
		case "mechanics":
			for _, m := range strings.Split(value, ",") {
				if m = strings.TrimSpace(m); m != "" {
					seg.Mechanics = append(seg.Mechanics, m)
				}
			}
		}
	}
	if seg.Name == "" {
		seg.Name = name
	}

	rows := splitBody(body)
	if len(rows) == 0 {
		return nil, &ParseError{File: name, Reason: "segment body is empty"}
	}
	width := 0
	for _, r := range rows {
		if n := len([]rune(r)); n > width {
			width = n
		}
	}
	seg.Rows = make([]string, len(rows))
	for i, r := range rows {
		if pad := width - len([]rune(r)); pad > 0 {
			r += strings.Repeat(string(GlyphSolid), pad)
		}
		seg.Rows[i] = r
	}
	return seg, nil
}

// Width returns the padded row width in tiles.
func (s *Segment) Width() int {
	if len(s.Rows) == 0 {
		return 0
	}
	return len([]rune(s.Rows[0]))
}

// Height returns the number of body rows.
func (s *Segment) Height() int { return len(s.Rows) }

// Body joins the rows back into tilemap body text.
func (s *Segment) Body() string { return strings.Join(s.Rows, "\n") }

// HasMechanic reports whether the header declared a mechanic.
func (s *Segment) HasMechanic(name string) bool {
	for _, m := range s.Mechanics {
		if strings.EqualFold(m, name) {
			return true
		}
	}
	return false
}

// LoadSegments reads every .txt segment under dir in fsys. Files that fail
// to parse are skipped and reported in the returned error slice so one bad
// file does not poison the whole pool.
func LoadSegments(fsys fs.FS, dir string) ([]*Segment, []error) {
	var (
		segs []*Segment
		errs []error
	)
	walkErr := fs.WalkDir(fsys, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".txt" {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			errs = append(errs, &IoError{Path: path, Operation: "read", Err: err})
			return nil
		}
		base := strings.TrimSuffix(filepath.Base(path), ".txt")
		seg, err := ParseSegment(base, data)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		segs = append(segs, seg)
		return nil
	})
	if walkErr != nil {
		errs = append(errs, &IoError{Path: dir, Operation: "walk", Err: walkErr})
	}
	return segs, errs
}
