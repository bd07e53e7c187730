package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/textscope/textscope/internal/dup"
)

// PrintScanStart prints the initial scanning message.
func PrintScanStart(w io.Writer, fileCount int, root string) {
	if root != "" {
		fmt.Fprintf(w, "%s\n", theme.Summary.Render(
			fmt.Sprintf("Scanning %d files in directory: %s", fileCount, root)))
		return
	}
	fmt.Fprintf(w, "%s\n", theme.Summary.Render(fmt.Sprintf("Scanning %d file(s)", fileCount)))
}

// Duplications prints every accepted block with its locations.
func Duplications(w io.Writer, blocks []dup.Block) {
	if len(blocks) == 0 {
		fmt.Fprintln(w, "No duplications found.")
		return
	}

	fmt.Fprintf(w, "%s\n\n", theme.Summary.Render(
		fmt.Sprintf("Found %d duplicate entries", len(blocks))))

	for _, b := range blocks {
		for _, line := range strings.Split(b.Content, "\n") {
			fmt.Fprintln(w, theme.Block.Render(line))
		}
		for _, loc := range b.Locations {
			fmt.Fprintf(w, "  %s%s%s\n",
				theme.Location.Render(loc.File),
				theme.Dim.Render(":"),
				theme.LineNum.Render(fmt.Sprintf("%d", loc.Line)))
		}
		fmt.Fprintln(w, theme.Dim.Render(strings.Repeat("-", 60)))
	}
}

// FilesOnly prints just the distinct files containing duplications, sorted.
func FilesOnly(w io.Writer, blocks []dup.Block) {
	seen := make(map[string]bool)
	for _, b := range blocks {
		for _, loc := range b.Locations {
			seen[loc.File] = true
		}
	}
	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		fmt.Fprintln(w, theme.Location.Render(f))
	}
}

// Hotspots prints the files with the most duplicated lines, top 5.
func Hotspots(w io.Writer, blocks []dup.Block) {
	dupLines := make(map[string]int)
	for _, b := range blocks {
		lines := strings.Count(b.Content, "\n") + 1
		for _, loc := range b.Locations {
			dupLines[loc.File] += lines
		}
	}
	if len(dupLines) == 0 {
		return
	}

	type hotspot struct {
		file  string
		lines int
	}
	hotspots := make([]hotspot, 0, len(dupLines))
	for f, lines := range dupLines {
		hotspots = append(hotspots, hotspot{f, lines})
	}
	sort.Slice(hotspots, func(i, j int) bool {
		if hotspots[i].lines != hotspots[j].lines {
			return hotspots[i].lines > hotspots[j].lines
		}
		return hotspots[i].file < hotspots[j].file
	})

	fmt.Fprintf(w, "\n%s\n", theme.Summary.Render("Duplication hotspots (lines):"))
	show := 5
	if len(hotspots) < show {
		show = len(hotspots)
	}
	for i := 0; i < show; i++ {
		fmt.Fprintf(w, "  %s %s\n",
			theme.LineNum.Render(fmt.Sprintf("%4d", hotspots[i].lines)),
			theme.Location.Render(hotspots[i].file))
	}
}
