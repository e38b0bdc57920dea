package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// MinValueWidth is the narrowest the value column is truncated to, however
// small the terminal.
const MinValueWidth = 8

// Ellipsis marks a truncated value.
const Ellipsis = "…"

// Row is one line of a table: a key or index, its type description and a
// one-line summary of its value.
type Row struct {
	Key   string
	Type  string
	Value string
}

var controlReplacer = strings.NewReplacer("\r", `\r`, "\n", `\n`, "\t", `\t`)

// Table renders rows with the key and type columns padded to their widest
// cell plus one space. Values are cut to fit width display cells; width <= 0
// disables truncation.
func Table(rows []Row, width int) string {
	keys := make([]string, len(rows))
	types := make([]string, len(rows))
	keyWidth, typeWidth := 0, 0
	for i, r := range rows {
		keys[i] = controlReplacer.Replace(r.Key)
		types[i] = controlReplacer.Replace(r.Type)
		keyWidth = max(keyWidth, runewidth.StringWidth(keys[i]))
		typeWidth = max(typeWidth, runewidth.StringWidth(types[i]))
	}
	keyWidth++
	typeWidth++

	valueWidth := 0
	if width > 0 {
		valueWidth = max(width-keyWidth-typeWidth, MinValueWidth)
	}

	var b strings.Builder
	for i, r := range rows {
		value := controlReplacer.Replace(r.Value)
		if valueWidth > 0 {
			value = runewidth.Truncate(value, valueWidth, Ellipsis)
		}
		b.WriteString(Key.Sprint(runewidth.FillRight(keys[i], keyWidth)))
		b.WriteString(Type.Sprint(runewidth.FillRight(types[i], typeWidth)))
		b.WriteString(value)
		b.WriteByte('\n')
	}
	return b.String()
}
