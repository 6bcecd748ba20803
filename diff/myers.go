package diff

// vVector is the furthest-reaching x for each diagonal k at a given
// edit distance d, indexed in [-d, d]. Diagonals can be negative, so
// negative k wraps around modularly the same way a ring buffer would.
type vVector []int

func newVVector(size int) vVector {
	v := make(vVector, size)
	for i := range v {
		v[i] = -1
	}
	return v
}

func (v vVector) get(k int) int {
	if k < 0 {
		k = len(v) + k
	}
	return v[k]
}

func (v vVector) set(k, x int) {
	if k < 0 {
		k = len(v) + k
	}
	v[k] = x
}

// trace runs the O(ND) Myers algorithm over a and b, recording the V
// array at every edit distance d so backtrack can later walk the path
// back from (len(a), len(b)) to (0, 0).
func trace(a, b []Line) []vVector {
	n, m := len(a), len(b)
	v := newVVector(2*(n+m) + 1)
	v.set(1, 0)

	history := make([]vVector, 0, n+m+1)

	for d := 0; d <= n+m; d++ {
		snapshot := make(vVector, len(v))
		copy(snapshot, v)
		history = append(history, snapshot)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v.get(k-1) < v.get(k+1)) {
				x = v.get(k + 1)
			} else {
				x = v.get(k-1) + 1
			}
			y := x - k

			for x < n && y < m && a[x].Text == b[y].Text {
				x++
				y++
			}

			v.set(k, x)
			if x >= n && y >= m {
				return history
			}
		}
	}
	return history
}

// step is one recovered move of the edit graph: the graph went from
// (prevX, prevY) to (x, y).
type step struct {
	prevX, prevY, x, y int
}

// backtrack walks history from (len(a), len(b)) back to (0, 0), choosing
// at each d whether the path arrived via the diagonal above or below,
// then records diagonal moves (equal lines) before the single
// insertion/deletion that got there.
func backtrack(history []vVector, a, b []Line) []step {
	x, y := len(a), len(b)
	var path []step

	for d := len(history) - 1; d >= 0; d-- {
		v := history[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && v.get(k-1) < v.get(k+1)) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}

		prevX := v.get(prevK)
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			path = append(path, step{prevX: x - 1, prevY: y - 1, x: x, y: y})
			x--
			y--
		}

		if d > 0 {
			path = append(path, step{prevX: prevX, prevY: prevY, x: x, y: y})
		}

		x, y = prevX, prevY
	}
	return path
}

// render turns the backtracked path into edits in source order (the
// path comes out of backtrack in reverse).
func render(a, b []Line, path []step) []Edit {
	edits := make([]Edit, len(path))
	for i, s := range path {
		var aLine, bLine *Line
		if s.prevX < len(a) {
			l := a[s.prevX]
			aLine = &l
		}
		if s.prevY < len(b) {
			l := b[s.prevY]
			bLine = &l
		}

		switch {
		case s.x == s.prevX:
			edits[i] = Edit{Type: Add, BLine: bLine}
		case s.y == s.prevY:
			edits[i] = Edit{Type: Remove, ALine: aLine}
		default:
			edits[i] = Edit{Type: Equal, ALine: aLine, BLine: bLine}
		}
	}

	for i, j := 0, len(edits)-1; i < j; i, j = i+1, j-1 {
		edits[i], edits[j] = edits[j], edits[i]
	}
	return edits
}

// Edits computes the shortest edit script turning aText into bText.
func Edits(aText, bText string) []Edit {
	a := SplitLines(aText)
	b := SplitLines(bText)
	history := trace(a, b)
	path := backtrack(history, a, b)
	return render(a, b, path)
}
