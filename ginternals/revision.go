package ginternals

import (
	"strconv"

	"golang.org/x/xerrors"
)

// RevOpKind identifies one step of a parsed revision expression.
type RevOpKind int8

const (
	// RevOpParent means "the first parent of the previous step".
	RevOpParent RevOpKind = iota + 1
	// RevOpAncestor means "the previous step, walked N generations up".
	RevOpAncestor
)

// RevOp is a single operator applied on top of a resolved base, read
// left to right in application order (the opposite of how they're
// discovered while parsing, which happens right to left).
type RevOp struct {
	Kind RevOpKind
	N    int // only meaningful when Kind == RevOpAncestor
}

// ParseRevision splits a revision expression into its base ("@", "HEAD",
// or a branch/prefix name) and the chain of ^/~N operators layered on
// top of it:
//
//	rev ::= rev '^'        # parent
//	      | rev '~' DIGITS # Nth ancestor
//	      | '@' | 'HEAD'   # current branch
//	      | NAME           # branch name
//
// Parsing walks the string from the end, peeling one operator at a time,
// which is why the discovery order is reversed before being returned.
func ParseRevision(expr string) (base string, ops []RevOp, err error) {
	rest := expr
	var discovered []RevOp
	for {
		r, op, ok := peelRevOp(rest)
		if !ok {
			break
		}
		rest = r
		discovered = append(discovered, op)
	}
	if rest == "" {
		return "", nil, xerrors.Errorf("revision %q: %w", expr, ErrUnknownRevision)
	}

	ops = make([]RevOp, len(discovered))
	for i, op := range discovered {
		ops[len(discovered)-1-i] = op
	}
	return rest, ops, nil
}

// peelRevOp removes one trailing operator from s, if there is one.
func peelRevOp(s string) (rest string, op RevOp, ok bool) {
	if s == "" {
		return s, RevOp{}, false
	}

	if s[len(s)-1] == '^' {
		return s[:len(s)-1], RevOp{Kind: RevOpParent}, true
	}

	last := s[len(s)-1]
	if last < '0' || last > '9' {
		return s, RevOp{}, false
	}
	i := len(s) - 1
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == 0 || s[i-1] != '~' {
		return s, RevOp{}, false
	}
	n, convErr := strconv.Atoi(s[i:])
	if convErr != nil {
		return s, RevOp{}, false
	}
	return s[:i-1], RevOp{Kind: RevOpAncestor, N: n}, true
}

// IsCurrentBranchAlias reports whether name is one of the two spellings
// that mean "the branch HEAD currently points to".
func IsCurrentBranchAlias(name string) bool {
	return name == "@" || name == Head
}

// ParentOfFunc returns the first parent of the commit identified by
// oid. ok is false when the commit is a root commit.
type ParentOfFunc func(oid Oid) (parent Oid, ok bool, err error)

// ResolveBaseFunc turns a revision's base name into an Oid: a branch
// lookup falling back to an object prefix match.
type ResolveBaseFunc func(name string) (Oid, error)

// ResolveRevision resolves a full revision expression to an Oid.
// resolveBase and parentOf are the only two backend operations this
// grammar needs; they stay as callbacks so this package never has to
// import the object database or object model to do its job.
func ResolveRevision(expr string, resolveBase ResolveBaseFunc, parentOf ParentOfFunc) (Oid, error) {
	base, ops, err := ParseRevision(expr)
	if err != nil {
		return NullOid, err
	}

	oid, err := resolveBase(base)
	if err != nil {
		return NullOid, err
	}

	for _, op := range ops {
		switch op.Kind {
		case RevOpParent:
			if oid, err = applyParent(oid, parentOf); err != nil {
				return NullOid, err
			}
		case RevOpAncestor:
			for i := 0; i < op.N; i++ {
				if oid, err = applyParent(oid, parentOf); err != nil {
					return NullOid, err
				}
			}
		default:
			return NullOid, xerrors.Errorf("revision %q: %w", expr, ErrUnknownRevision)
		}
	}
	return oid, nil
}

func applyParent(oid Oid, parentOf ParentOfFunc) (Oid, error) {
	parent, ok, err := parentOf(oid)
	if err != nil {
		return NullOid, xerrors.Errorf("could not load parent of %s: %w", oid.String(), err)
	}
	if !ok {
		return NullOid, xerrors.Errorf("%s: %w", oid.String(), ErrNoParent)
	}
	return parent, nil
}
