// Package freq builds word-frequency profiles and renders them as
// column-aligned bar charts.
package freq

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

const maxLineWidth = 80

// Map counts every word of the text, case-folded. Words are maximal runs of
// letters; everything else separates.
func Map(text string) map[string]int {
	counts := make(map[string]int)
	for _, word := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	}) {
		counts[strings.ToLower(word)]++
	}
	return counts
}

// Item is one frequency row for serialized output.
type Item struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Items flattens a frequency map into rows sorted by count descending, then
// alphabetically, so serialized output is stable.
func Items(counts map[string]int) []Item {
	items := make([]Item, 0, len(counts))
	for word, count := range counts {
		items = append(items, Item{Word: word, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Word < items[j].Word
	})
	return items
}

// Format renders the frequency map as right-aligned word and count columns
// followed by a bar scaled to the highest count.
func Format(counts map[string]int) string {
	items := Items(counts)
	if len(items) == 0 {
		return ""
	}

	maxWordWidth := 0
	maxCount := 0
	for _, item := range items {
		if w := runewidth.StringWidth(item.Word); w > maxWordWidth {
			maxWordWidth = w
		}
		if item.Count > maxCount {
			maxCount = item.Count
		}
	}
	maxCountWidth := len(strconv.Itoa(maxCount))
	barSpace := maxLineWidth - (maxWordWidth + 2 + maxCountWidth + 2)
	// Words wider than the line leave no room for a bar.
	if barSpace < 0 {
		barSpace = 0
	}

	var sb strings.Builder
	for _, item := range items {
		barWidth := int(float64(barSpace)/float64(maxCount)*float64(item.Count) + 0.5)
		sb.WriteString(runewidth.FillLeft(item.Word, maxWordWidth))
		sb.WriteString("  ")
		sb.WriteString(runewidth.FillLeft(strconv.Itoa(item.Count), maxCountWidth))
		sb.WriteString("  ")
		sb.WriteString(strings.Repeat("▆", barWidth))
		sb.WriteString("\n")
	}
	return sb.String()
}
