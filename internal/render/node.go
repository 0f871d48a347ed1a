package render

import "fmt"

// NodeKind tags the variant held by a Node
type NodeKind int

const (
	NodeItem NodeKind = iota
	NodeSymbol
	NodeProduction
	NodeEffect
	NodeText
	// NodeCard is the tag of a top-level card tree. No builder accepts it.
	NodeCard
)

func (k NodeKind) String() string {
	switch k {
	case NodeItem:
		return "item"
	case NodeSymbol:
		return "symbol"
	case NodeProduction:
		return "production"
	case NodeEffect:
		return "effect"
	case NodeText:
		return "text"
	case NodeCard:
		return "card"
	default:
		return fmt.Sprintf("node(%d)", int(k))
	}
}

// Node is one visual primitive of a row. The implementations are Item,
// Symbol, Text and *Tree; consumers switch on NodeKind.
type Node interface {
	NodeKind() NodeKind
	String() string
}

// Text is a free-text node
type Text string

// NodeKind implements Node
func (Text) NodeKind() NodeKind { return NodeText }

func (t Text) String() string { return string(t) }

// Row is an ordered run of nodes drawn left to right
type Row []Node

func (r Row) clone() Row {
	if r == nil {
		return Row{}
	}
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Last returns the last node of the row, or nil for an empty row
func (r Row) Last() Node {
	if len(r) == 0 {
		return nil
	}
	return r[len(r)-1]
}
