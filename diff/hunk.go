package diff

import (
	"fmt"
	"strings"
)

// EditType classifies one line of an edit script.
type EditType int8

const (
	Equal EditType = iota
	Add
	Remove
)

// Edit is one line of an edit script: Equal edits carry both lines,
// Add only BLine, Remove only ALine.
type Edit struct {
	Type  EditType
	ALine *Line
	BLine *Line
}

// hunkContext is the number of unchanged lines kept on either side of a
// change, matching the default used by unified diffs.
const hunkContext = 3

// Hunk is a contiguous run of edits, padded with up to hunkContext
// unchanged lines of context on either side.
type Hunk struct {
	AStart int
	BStart int
	Edits  []Edit
}

// Header renders the `@@ -a_start,a_len +b_start,b_len @@` line.
func (h Hunk) Header() string {
	aStart, aLen := h.offsets(func(e Edit) *Line { return e.ALine }, h.AStart)
	bStart, bLen := h.offsets(func(e Edit) *Line { return e.BLine }, h.BStart)
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", aStart, aLen, bStart, bLen)
}

func (h Hunk) offsets(side func(Edit) *Line, fallback int) (start, length int) {
	start = fallback
	first := true
	for _, e := range h.Edits {
		l := side(e)
		if l == nil {
			continue
		}
		if first {
			start = l.Number
			first = false
		}
		length++
	}
	return start, length
}

// Hunks groups an edit script into hunks, each with hunkContext lines
// of context before and after the changes it covers.
func Hunks(edits []Edit) []Hunk {
	var hunks []Hunk
	offset := 0

	for {
		for offset < len(edits) && edits[offset].Type == Equal {
			offset++
		}
		if offset >= len(edits) {
			return hunks
		}

		offset -= hunkContext + 1

		hunk := Hunk{}
		if offset >= 0 {
			hunk.AStart = lineNumberOr(edits[offset].ALine, 0)
			hunk.BStart = lineNumberOr(edits[offset].BLine, 0)
		}

		offset = buildHunk(&hunk, edits, offset)
		hunks = append(hunks, hunk)
	}
}

// buildHunk appends edits to hunk starting at offset, extending past
// each change by resetting a countdown to 2*hunkContext+1 and counting
// it down on every Equal line seen, so the hunk closes hunkContext
// lines after the last change.
func buildHunk(hunk *Hunk, edits []Edit, offset int) int {
	counter := -1

	for counter != 0 {
		if offset >= 0 && counter > 0 {
			hunk.Edits = append(hunk.Edits, edits[offset])
		}

		offset++
		if offset >= len(edits) {
			break
		}
		if offset+hunkContext >= len(edits) {
			counter--
			continue
		}

		switch edits[offset+hunkContext].Type {
		case Equal:
			counter--
		case Add, Remove:
			counter = 2*hunkContext + 1
		}
	}

	return offset
}

func lineNumberOr(l *Line, fallback int) int {
	if l == nil {
		return fallback
	}
	return l.Number
}

// Render writes hunk as unified-diff text: the header line followed by
// one line per edit, prefixed " " for context, "+" for additions and
// "-" for removals.
func (h Hunk) Render() string {
	var b strings.Builder
	b.WriteString(h.Header())
	b.WriteByte('\n')
	for _, e := range h.Edits {
		switch e.Type {
		case Equal:
			b.WriteString(" " + e.ALine.Text + "\n")
		case Add:
			b.WriteString("+" + e.BLine.Text + "\n")
		case Remove:
			b.WriteString("-" + e.ALine.Text + "\n")
		}
	}
	return b.String()
}
