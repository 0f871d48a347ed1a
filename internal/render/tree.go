package render

import (
	"fmt"
	"strings"
)

// TreeKind tags the variant of a Tree
type TreeKind int

const (
	// KindCard is a top-level card layout
	KindCard TreeKind = iota
	// KindProduction is a production box, restricted to items and symbols
	KindProduction
	// KindEffect is a cause, delimiter, effect triple
	KindEffect
)

func (k TreeKind) String() string {
	switch k {
	case KindCard:
		return "card"
	case KindProduction:
		return "production"
	case KindEffect:
		return "effect"
	default:
		return fmt.Sprintf("tree(%d)", int(k))
	}
}

// Tree is a finished, immutable row layout
type Tree struct {
	kind TreeKind
	rows []Row
}

// Kind returns the tree variant
func (t *Tree) Kind() TreeKind {
	return t.kind
}

// NodeKind implements Node, so production and effect trees nest inside rows
func (t *Tree) NodeKind() NodeKind {
	switch t.kind {
	case KindProduction:
		return NodeProduction
	case KindEffect:
		return NodeEffect
	default:
		return NodeCard
	}
}

// Rows returns a copy of the rows
func (t *Tree) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.clone()
	}
	return out
}

// Row returns a copy of row i, or nil when it is out of range
func (t *Tree) Row(i int) Row {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return t.rows[i].clone()
}

// Len returns the number of rows
func (t *Tree) Len() int {
	return len(t.rows)
}

func (t *Tree) String() string {
	rows := make([]string, len(t.rows))
	for i, r := range t.rows {
		nodes := make([]string, len(r))
		for j, n := range r {
			nodes[j] = n.String()
		}
		rows[i] = "[" + strings.Join(nodes, " ") + "]"
	}
	return fmt.Sprintf("%s{%s}", t.kind, strings.Join(rows, " "))
}

// validate checks the effect shape. It has no side effects.
func (t *Tree) validate(op string) error {
	if t.kind != KindEffect {
		return shapeError(op, ErrNotEffect, t.kind.String())
	}
	if len(t.rows) != 3 {
		return shapeError(op, ErrEffectRowCount, fmt.Sprintf("got %d", len(t.rows)))
	}
	if len(t.rows[1]) != 1 {
		return shapeError(op, ErrDelimiterLength, fmt.Sprintf("got %d", len(t.rows[1])))
	}
	if t.rows[1][0].NodeKind() != NodeSymbol {
		return shapeError(op, ErrDelimiterNotSymbol, t.rows[1][0].NodeKind().String())
	}
	return nil
}

// Validate reports whether the tree is a well-formed effect
func (t *Tree) Validate() error {
	return t.validate("validate")
}

// Cause returns the cause row of an effect tree
func (t *Tree) Cause() (Row, error) {
	if err := t.validate("cause"); err != nil {
		return nil, err
	}
	return t.rows[0].clone(), nil
}

// Delimiter returns the delimiter symbol of an effect tree.
// When the cause row is empty there is nothing to delimit and it returns nil.
func (t *Tree) Delimiter() (Node, error) {
	if err := t.validate("delimiter"); err != nil {
		return nil, err
	}
	if len(t.rows[0]) == 0 {
		return nil, nil
	}
	return t.rows[1][0], nil
}

// Effect returns the effect row of an effect tree
func (t *Tree) Effect() (Row, error) {
	if err := t.validate("effect"); err != nil {
		return nil, err
	}
	return t.rows[2].clone(), nil
}

// Description returns the text form of the last node of the effect row.
// Authors put a Text node there; any other node is converted with String.
func (t *Tree) Description() (string, error) {
	if err := t.validate("description"); err != nil {
		return "", err
	}
	last := t.rows[2].Last()
	if last == nil {
		return "", nil
	}
	return last.String(), nil
}
