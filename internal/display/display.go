// Package display draws card render trees as terminal text.
package display

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	colorize "github.com/fatih/color"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arcanaland/cardrender/internal/card"
	"github.com/arcanaland/cardrender/internal/render"
)

// defaultWidth is used when the terminal width cannot be read
const defaultWidth = 80

// digitThreshold is the largest amount drawn as repeated icons
const digitThreshold = 5

// Options controls how trees are drawn
type Options struct {
	Width   int // 0 uses the terminal width
	Color   bool
	Palette map[render.ItemKind]string
}

// Renderer draws cards and trees to a writer
type Renderer struct {
	w       io.Writer
	width   int
	color   bool
	palette palette

	label  *colorize.Color
	value  *colorize.Color
	alert  *colorize.Color
	strong *colorize.Color
}

// New creates a renderer writing to w
func New(w io.Writer, opts Options) (*Renderer, error) {
	p, err := newPalette(opts.Palette)
	if err != nil {
		return nil, err
	}

	width := opts.Width
	if width <= 0 {
		width = terminalWidth()
	}

	r := &Renderer{
		w:       w,
		width:   width,
		color:   opts.Color,
		palette: p,
		label:   colorize.New(colorize.FgCyan),
		value:   colorize.New(colorize.FgHiWhite),
		alert:   colorize.New(colorize.FgRed),
		strong:  colorize.New(colorize.Bold),
	}
	for _, c := range []*colorize.Color{r.label, r.value, r.alert, r.strong} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r, nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// RenderCard writes the card header followed by its body
func (r *Renderer) RenderCard(c *card.Card) error {
	lines, err := r.Lines(c.Render)
	if err != nil {
		return fmt.Errorf("error rendering card %s: %w", c.ID, err)
	}

	header := []string{
		r.label.Sprint("Card: ") + r.value.Sprint(c.Name),
		r.label.Sprint("ID:   ") + r.value.Sprint(c.ID),
		r.label.Sprint("Type: ") + r.value.Sprint(Title(string(c.Type))),
		r.label.Sprint("Cost: ") + r.value.Sprint(strconv.Itoa(c.Cost)),
	}
	if len(c.Tags) > 0 {
		header = append(header, r.label.Sprint("Tags: ")+r.value.Sprint(strings.Join(c.Tags, ", ")))
	}

	fmt.Fprintln(r.w)
	for _, line := range header {
		fmt.Fprintln(r.w, "  "+line)
	}
	fmt.Fprintln(r.w)
	for _, line := range lines {
		fmt.Fprintln(r.w, "  "+line)
	}
	fmt.Fprintln(r.w)
	return nil
}

// Lines draws a tree into text lines, one block of lines per row
func (r *Renderer) Lines(t *render.Tree) ([]string, error) {
	if t == nil {
		return nil, nil
	}
	var out []string
	for _, row := range t.Rows() {
		b, err := r.row(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

func (r *Renderer) row(row render.Row) (block, error) {
	if len(row) == 0 {
		return block{""}, nil
	}
	blocks := make([]block, 0, len(row))
	for _, n := range row {
		b, err := r.node(n)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return join(blocks, 1), nil
}

func (r *Renderer) node(n render.Node) (block, error) {
	switch n.NodeKind() {
	case render.NodeItem:
		return block{r.item(n.(render.Item))}, nil
	case render.NodeSymbol:
		return block{r.symbol(n.(render.Symbol))}, nil
	case render.NodeProduction:
		lines, err := r.Lines(n.(*render.Tree))
		if err != nil {
			return nil, err
		}
		return frame(lines), nil
	case render.NodeEffect:
		return r.effect(n.(*render.Tree))
	case render.NodeText:
		return wrapText(n.String(), r.width), nil
	default:
		return block{"n/a"}, nil
	}
}

// item draws one icon honouring the four presentation flags
func (r *Renderer) item(it render.Item) string {
	open, closing := "[", "]"
	if it.IsPlayed {
		open, closing = "(", ")"
	}
	if it.AnyPlayer {
		open, closing = r.alert.Sprint(open+open), r.alert.Sprint(closing+closing)
	}

	label := iconLabel(it.Kind)
	if r.color {
		label = paint(label, r.palette[it.Kind])
	}

	switch {
	case !it.HasAmount():
		return open + label + closing
	case it.AmountInside:
		return open + strconv.Itoa(it.Amount) + " " + label + closing
	case it.ShowDigit || it.Amount == 0 || abs(it.Amount) > digitThreshold:
		return strconv.Itoa(it.Amount) + " " + open + label + closing
	}

	icons := make([]string, abs(it.Amount))
	for i := range icons {
		icons[i] = open + label + closing
	}
	s := strings.Join(icons, " ")
	if it.Amount < 0 {
		s = "-" + s
	}
	return s
}

func (r *Renderer) symbol(s render.Symbol) string {
	glyph := s.Kind.Glyph()
	if s.Size == render.SizeLarge {
		return r.strong.Sprint(glyph)
	}
	return glyph
}

// effect draws cause, delimiter and effect on one line with the description below
func (r *Renderer) effect(t *render.Tree) (block, error) {
	cause, err := t.Cause()
	if err != nil {
		return nil, err
	}
	delim, err := t.Delimiter()
	if err != nil {
		return nil, err
	}
	effect, err := t.Effect()
	if err != nil {
		return nil, err
	}

	var description string
	if last := effect.Last(); last != nil && last.NodeKind() == render.NodeText {
		description, err = t.Description()
		if err != nil {
			return nil, err
		}
		effect = effect[:len(effect)-1]
	}

	var blocks []block
	if len(cause) > 0 {
		b, err := r.row(cause)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	if delim != nil {
		b, err := r.node(delim)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	if len(effect) > 0 {
		b, err := r.row(effect)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}

	out := join(blocks, 1)
	if description != "" {
		out = append(out, wrapText(description, r.width)...)
	}
	return out, nil
}

// Legend lists the item kinds used anywhere in the tree
func (r *Renderer) Legend(t *render.Tree) []string {
	seen := make(map[render.ItemKind]bool)
	collectKinds(t, seen)

	kinds := make([]render.ItemKind, 0, len(seen))
	for k := range seen {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	lines := make([]string, 0, len(kinds))
	for _, k := range kinds {
		lines = append(lines, r.label.Sprint(fmt.Sprintf("%-8s", iconLabel(k)))+" "+Title(k.String()))
	}
	return lines
}

func collectKinds(t *render.Tree, seen map[render.ItemKind]bool) {
	if t == nil {
		return
	}
	for _, row := range t.Rows() {
		for _, n := range row {
			switch v := n.(type) {
			case render.Item:
				seen[v.Kind] = true
			case *render.Tree:
				collectKinds(v, seen)
			}
		}
	}
}

var iconLabels = map[render.ItemKind]string{
	render.ItemTemperature:   "°C",
	render.ItemOceans:        "ocean",
	render.ItemOxygen:        "O2",
	render.ItemVenus:         "venus",
	render.ItemPlants:        "plant",
	render.ItemMicrobes:      "microbe",
	render.ItemAnimals:       "animal",
	render.ItemHeat:          "heat",
	render.ItemEnergy:        "energy",
	render.ItemTitanium:      "ti",
	render.ItemSteel:         "steel",
	render.ItemMegacredits:   "MC",
	render.ItemCards:         "card",
	render.ItemFloaters:      "floater",
	render.ItemEvent:         "event",
	render.ItemSpace:         "space",
	render.ItemTrade:         "trade",
	render.ItemTradeDiscount: "trade",
	render.ItemInfluence:     "infl",
}

func iconLabel(k render.ItemKind) string {
	if l, ok := iconLabels[k]; ok {
		return l
	}
	return k.String()
}

// Title turns identifiers like "trade_discount" into "Trade Discount"
func Title(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return cases.Title(language.English).String(s)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
