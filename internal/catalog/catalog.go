package catalog

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/arcanaland/cardrender/internal/card"
	"github.com/arcanaland/cardrender/internal/render"
)

// Catalog holds a set of built card definitions
type Catalog struct {
	Name string

	// Card map for lookup by canonical ID
	Cards map[string]*card.Card

	logger *zap.Logger
}

// Definition describes one card. Render is run once against a fresh builder.
type Definition struct {
	ID     string
	Name   string
	Type   card.Type
	Cost   int
	Tags   []string
	Render func(b *render.Builder)
}

// Load builds the bundled card definitions
func Load(logger *zap.Logger) (*Catalog, error) {
	return New("base", Definitions(), logger)
}

// New builds a catalog from definitions. Building stops at the first card
// whose layout fails.
func New(name string, defs []Definition, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Catalog{
		Name:   name,
		Cards:  make(map[string]*card.Card, len(defs)),
		logger: logger,
	}

	for _, def := range defs {
		if err := c.add(def); err != nil {
			return nil, err
		}
	}

	logger.Debug("Catalog loaded", zap.String("catalog", name), zap.Int("cards", len(c.Cards)))
	return c, nil
}

// add builds one definition and stores it
func (c *Catalog) add(def Definition) error {
	if def.ID == "" {
		return fmt.Errorf("card definition %q has no id", def.Name)
	}
	if _, exists := c.Cards[def.ID]; exists {
		return fmt.Errorf("duplicate card id: %s", def.ID)
	}

	tree, err := render.Build(def.Render)
	if err != nil {
		return fmt.Errorf("error building card %s: %w", def.ID, err)
	}

	c.Cards[def.ID] = &card.Card{
		ID:     def.ID,
		Name:   def.Name,
		Type:   def.Type,
		Cost:   def.Cost,
		Tags:   def.Tags,
		Render: tree,
	}

	c.logger.Debug("Card built",
		zap.String("id", def.ID),
		zap.Int("rows", tree.Len()))
	return nil
}

// GetCard gets a card by its canonical ID
func (c *Catalog) GetCard(cardID string) (*card.Card, error) {
	parts := splitCardID(cardID)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid card ID format: %s", cardID)
	}

	found, ok := c.Cards[cardID]
	if !ok {
		return nil, fmt.Errorf("card not found: %s", cardID)
	}
	return found, nil
}

// List returns the cards sorted by ID
func (c *Catalog) List() []*card.Card {
	cards := make([]*card.Card, 0, len(c.Cards))
	for _, found := range c.Cards {
		cards = append(cards, found)
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })
	return cards
}

// splitCardID splits a canonical card ID into set and name
func splitCardID(cardID string) []string {
	return strings.Split(cardID, ".")
}
