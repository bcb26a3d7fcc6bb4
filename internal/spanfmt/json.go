package spanfmt

import (
	"encoding/json"
	"io"

	"csfmt/internal/suppress"
	"csfmt/internal/syntax"
)

// RecordJSON is one suppression record in machine-readable form.
type RecordJSON struct {
	Mode       string `json:"mode"`
	StartToken uint32 `json:"start_token"`
	EndToken   uint32 `json:"end_token"`
	StartByte  uint32 `json:"start_byte"`
	EndByte    uint32 `json:"end_byte"`
	Excerpt    string `json:"excerpt"`
	MultiLine  bool   `json:"multi_line"`
}

// FileJSON is the per-file JSON payload.
type FileJSON struct {
	Path    string       `json:"path"`
	Records []RecordJSON `json:"records"`
}

// JSON writes the records of one file as an indented JSON document.
func JSON(w io.Writer, path string, tree *syntax.Tree, records []suppress.Record) error {
	out := FileJSON{Path: path, Records: make([]RecordJSON, 0, len(records))}
	for _, rec := range records {
		span := tree.Token(rec.Start).Span.Cover(tree.Token(rec.End).Span)
		out.Records = append(out.Records, RecordJSON{
			Mode:       rec.Mode.String(),
			StartToken: uint32(rec.Start),
			EndToken:   uint32(rec.End),
			StartByte:  span.Start,
			EndByte:    span.End,
			Excerpt:    Excerpt(tree, rec.Start, rec.End),
			MultiLine: tree.SpanHasNewline(rec.Start, rec.End,
				rec.Mode == suppress.PreserveSingleLineIgnoreElastic),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
