// Package linelen builds a histogram of line display widths across files.
package linelen

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const maxBarWidth = 60

// Source is the minimal view of a loaded file this package needs.
type Source interface {
	Text() string
}

// Row is one histogram bucket for serialized output.
type Row struct {
	Length int `json:"length"`
	Count  int `json:"count"`
}

// Histogram counts how many lines of the given files have each display
// width. Width is measured in terminal cells, not bytes.
func Histogram(files []Source) map[int]int {
	histogram := make(map[int]int)
	for _, f := range files {
		lines := strings.Split(f.Text(), "\n")
		// A trailing newline terminates the last line, it does not open a new one.
		if n := len(lines); n > 0 && lines[n-1] == "" {
			lines = lines[:n-1]
		}
		for _, line := range lines {
			histogram[runewidth.StringWidth(line)]++
		}
	}
	return histogram
}

// Rows flattens the histogram sorted by line length ascending.
func Rows(histogram map[int]int) []Row {
	rows := make([]Row, 0, len(histogram))
	for length, count := range histogram {
		rows = append(rows, Row{Length: length, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Length < rows[j].Length })
	return rows
}

// Format renders the histogram as aligned columns with a bar scaled to the
// most frequent length.
func Format(histogram map[int]int) string {
	if len(histogram) == 0 {
		return "No lines found to analyze."
	}

	rows := Rows(histogram)
	maxLength := rows[len(rows)-1].Length
	maxCount := 0
	for _, row := range rows {
		if row.Count > maxCount {
			maxCount = row.Count
		}
	}

	lengthWidth := len(strconv.Itoa(maxLength))
	countWidth := len(strconv.Itoa(maxCount))

	var sb strings.Builder
	sb.WriteString(runewidth.FillLeft("Length", lengthWidth))
	sb.WriteString("  ")
	sb.WriteString(runewidth.FillLeft("Count", countWidth))
	sb.WriteString("  Histogram\n")
	sb.WriteString(strings.Repeat("-", lengthWidth))
	sb.WriteString("  ")
	sb.WriteString(strings.Repeat("-", countWidth))
	sb.WriteString("  ")
	sb.WriteString(strings.Repeat("-", len("Histogram")))
	sb.WriteString("\n")

	for _, row := range rows {
		barWidth := 0
		if maxCount > 0 {
			barWidth = int(float64(maxBarWidth)*float64(row.Count)/float64(maxCount) + 0.5)
		}
		sb.WriteString(runewidth.FillLeft(strconv.Itoa(row.Length), lengthWidth))
		sb.WriteString("  ")
		sb.WriteString(runewidth.FillLeft(strconv.Itoa(row.Count), countWidth))
		sb.WriteString("  ")
		sb.WriteString(strings.Repeat("▆", barWidth))
		sb.WriteString("\n")
	}
	return sb.String()
}
