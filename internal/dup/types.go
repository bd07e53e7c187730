// Package dup finds exact duplicated line sequences across a set of text
// files. Lines are compared after trimming surrounding whitespace; reported
// blocks keep their original relative indentation minus the common indent.
package dup

import "errors"

// ErrNoInput is returned when the file source yielded nothing to analyze.
var ErrNoInput = errors.New("no valid files found in the specified paths")

// Source is one input file as seen by the engine. The text must stay valid
// for the whole call; the engine keeps line views into it.
type Source interface {
	Name() string
	Text() string
}

// Location identifies one physical line occurrence, 1-based.
type Location struct {
	File string `json:"file"`
	Line uint32 `json:"line"`
}

// LineEntry is a single scanned line. Produced on demand, never stored past
// the stage that created it.
type LineEntry struct {
	File string
	Line uint32
	Text string
}

// Block is an accepted duplication unit: the block text with common leading
// whitespace removed, plus every location it occurs at. Accepted blocks have
// at least two locations and never overlap another accepted block's lines.
type Block struct {
	Content   string
	Locations []Location
}

func containsLoc(locs []Location, loc Location) bool {
	for _, l := range locs {
		if l == loc {
			return true
		}
	}
	return false
}
