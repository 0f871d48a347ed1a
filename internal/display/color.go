package display

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/cardrender/internal/render"
)

// DefaultPalette is the icon colour of each item kind
var DefaultPalette = map[render.ItemKind]string{
	render.ItemTemperature:   "#e53935",
	render.ItemOceans:        "#1e88e5",
	render.ItemOxygen:        "#b0bec5",
	render.ItemVenus:         "#ffb74d",
	render.ItemPlants:        "#43a047",
	render.ItemMicrobes:      "#9ccc65",
	render.ItemAnimals:       "#8d6e63",
	render.ItemHeat:          "#ff7043",
	render.ItemEnergy:        "#ab47bc",
	render.ItemTitanium:      "#607d8b",
	render.ItemSteel:         "#a1887f",
	render.ItemMegacredits:   "#fdd835",
	render.ItemCards:         "#90a4ae",
	render.ItemFloaters:      "#e0e0e0",
	render.ItemEvent:         "#212121",
	render.ItemSpace:         "#37474f",
	render.ItemTrade:         "#26a69a",
	render.ItemTradeDiscount: "#26a69a",
	render.ItemInfluence:     "#5c6bc0",
}

// palette maps item kinds to parsed colours
type palette map[render.ItemKind]colorful.Color

// newPalette parses hex colours, falling back to DefaultPalette per kind
func newPalette(overrides map[render.ItemKind]string) (palette, error) {
	p := make(palette, len(DefaultPalette))
	for kind, hex := range DefaultPalette {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("invalid default colour for %s: %w", kind, err)
		}
		p[kind] = c
	}
	for kind, hex := range overrides {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("invalid colour %q for %s: %w", hex, kind, err)
		}
		p[kind] = c
	}
	return p, nil
}

// paint wraps s in a 24-bit foreground colour escape
func paint(s string, c colorful.Color) string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
}
