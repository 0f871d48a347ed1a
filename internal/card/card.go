package card

import "github.com/arcanaland/cardrender/internal/render"

// Type is the play type of a card
type Type string

const (
	TypeAutomated Type = "automated"
	TypeActive    Type = "active"
	TypeEvent     Type = "event"
)

// Card represents a project card and its rendered content
type Card struct {
	ID     string       // Canonical ID (e.g., base.arctic_algae)
	Name   string       // Display name
	Type   Type         // automated, active or event
	Cost   int          // Megacredit cost
	Tags   []string     // Tags printed in the top bar
	Render *render.Tree // Card body layout
}

// Effects returns the effect trees nested directly in the card body, in row order
func (c *Card) Effects() []*render.Tree {
	if c.Render == nil {
		return nil
	}
	var out []*render.Tree
	for _, row := range c.Render.Rows() {
		for _, n := range row {
			if t, ok := n.(*render.Tree); ok && t.Kind() == render.KindEffect {
				out = append(out, t)
			}
		}
	}
	return out
}
