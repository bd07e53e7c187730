package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/textscope/textscope/internal/dup"
)

// JSONBlock is one duplicated block in serialized results.
type JSONBlock struct {
	Lines       int            `json:"lines"`
	Occurrences int            `json:"occurrences"`
	Content     []string       `json:"content"`
	Locations   []dup.Location `json:"locations"`
}

// JSONOutput is the top-level duplication result document.
type JSONOutput struct {
	TotalBlocks int         `json:"total_blocks"`
	Blocks      []JSONBlock `json:"blocks"`
}

// WriteDuplications writes the full result set as indented JSON.
func WriteDuplications(w io.Writer, blocks []dup.Block) error {
	out := JSONOutput{
		TotalBlocks: len(blocks),
		Blocks:      make([]JSONBlock, 0, len(blocks)),
	}
	for _, b := range blocks {
		lines := strings.Split(b.Content, "\n")
		out.Blocks = append(out.Blocks, JSONBlock{
			Lines:       len(lines),
			Occurrences: len(b.Locations),
			Content:     lines,
			Locations:   b.Locations,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}

// WriteJSON writes any serializable result (frequency items, histogram rows)
// as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}
