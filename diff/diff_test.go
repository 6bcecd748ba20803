package diff_test

import (
	"strings"
	"testing"

	"github.com/go-rgit/rgit/diff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	assert.Nil(t, diff.SplitLines(""))

	lines := diff.SplitLines("a\nb\nc\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "a", lines[0].Text)
	assert.Equal(t, 1, lines[0].Number)
	assert.Equal(t, "c", lines[2].Text)
	assert.Equal(t, 3, lines[2].Number)

	lines = diff.SplitLines("a\nb")
	require.Len(t, lines, 2)
	assert.Equal(t, "b", lines[1].Text)
}

func TestEditsIdentical(t *testing.T) {
	t.Parallel()

	text := "one\ntwo\nthree\n"
	edits := diff.Edits(text, text)
	for _, e := range edits {
		assert.Equal(t, diff.Equal, e.Type)
	}
	assert.Empty(t, diff.Hunks(edits))
}

// applyEdits replays an edit script onto a, skipping Equal, dropping
// Remove, and inserting Add, to check the script actually reproduces b.
func applyEdits(edits []diff.Edit) string {
	var out []string
	for _, e := range edits {
		switch e.Type {
		case diff.Equal:
			out = append(out, e.ALine.Text)
		case diff.Add:
			out = append(out, e.BLine.Text)
		case diff.Remove:
			// dropped
		}
	}
	return strings.Join(out, "\n") + "\n"
}

func TestEditsReproduceB(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b string
	}{
		{"append", "a\nb\nc\n", "a\nb\nc\nd\n"},
		{"delete middle", "a\nb\nc\nd\n", "a\nc\nd\n"},
		{"replace", "a\nb\nc\n", "a\nx\nc\n"},
		{"disjoint", "one\ntwo\nthree\nfour\nfive\n", "one\nTWO\nthree\nFOUR\nfive\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			edits := diff.Edits(tc.a, tc.b)
			assert.Equal(t, tc.b, applyEdits(edits))
		})
	}
}

func TestHunksGroupChangesWithContext(t *testing.T) {
	t.Parallel()

	a := "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n"
	b := "1\n2\n3\nfour\n5\n6\n7\n8\n9\n10\n"

	edits := diff.Edits(a, b)
	hunks := diff.Hunks(edits)
	require.Len(t, hunks, 1)

	h := hunks[0]
	assert.Equal(t, 1, h.AStart)
	assert.Equal(t, 1, h.BStart)
	assert.Contains(t, h.Header(), "@@ -")
}

func TestHunksSeparatesDistantChanges(t *testing.T) {
	t.Parallel()

	a := strings.Repeat("x\n", 20)
	aLines := strings.Split(strings.TrimSuffix(a, "\n"), "\n")
	aLines[0] = "CHANGED-TOP"
	aLines[len(aLines)-1] = "CHANGED-BOTTOM"
	b := strings.Join(aLines, "\n") + "\n"

	edits := diff.Edits(a, b)
	hunks := diff.Hunks(edits)
	assert.Len(t, hunks, 2)
}

func TestHunkRender(t *testing.T) {
	t.Parallel()

	edits := diff.Edits("a\nb\nc\n", "a\nx\nc\n")
	hunks := diff.Hunks(edits)
	require.Len(t, hunks, 1)

	rendered := hunks[0].Render()
	assert.Contains(t, rendered, "-b")
	assert.Contains(t, rendered, "+x")
	assert.Contains(t, rendered, " a")
	assert.Contains(t, rendered, " c")
}
