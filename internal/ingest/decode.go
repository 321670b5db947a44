package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var headerTokens = map[string]bool{
	"#":        true,
	"equipe":   true,
	"equipe 1": true,
	"equipe 2": true,
	"stand":    true,
	"origine":  true,
	"score":    true,
	"cumul":    true,
	"joues":    true,
	"vict.":    true,
	"egal.":    true,
	"def.":     true,
}

// DecodeRows turns a raw CSV export into trimmed data rows. The header row, if any, is dropped.
func DecodeRows(data []byte) ([][]string, error) {
	text, err := toUTF8(data)
	if err != nil {
		return nil, err
	}

	delim := detectDelimiter(text)
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		row := normalizeRow(record, delim)
		if isBlank(row) {
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) > 0 && isHeader(rows[0]) {
		rows = rows[1:]
	}
	return rows, nil
}

func toUTF8(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode windows-1252: %w", err)
	}
	return string(decoded), nil
}

// detectDelimiter picks ',' only when the first non-empty line has more commas than semicolons
func detectDelimiter(text string) rune {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.Count(line, ",") > strings.Count(line, ";") {
			return ','
		}
		return ';'
	}
	return ';'
}

func normalizeRow(record []string, delim rune) []string {
	row := make([]string, 0, len(record))
	for _, field := range record {
		if delim == ',' && strings.Contains(field, ";") {
			for _, part := range strings.Split(field, ";") {
				row = append(row, strings.TrimSpace(part))
			}
			continue
		}
		row = append(row, strings.TrimSpace(field))
	}
	return row
}

func isBlank(row []string) bool {
	for _, f := range row {
		if f != "" {
			return false
		}
	}
	return true
}

func isHeader(row []string) bool {
	for _, f := range row {
		if headerTokens[Fold(f)] {
			return true
		}
	}
	return false
}

// Fold lowercases s and strips diacritics, so "Équipe" and "equipe" compare equal
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
