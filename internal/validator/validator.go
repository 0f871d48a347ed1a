package validator

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/arcanaland/cardrender/internal/card"
	"github.com/arcanaland/cardrender/internal/catalog"
	"github.com/arcanaland/cardrender/internal/render"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	Catalog *catalog.Catalog
	Results ValidationResults

	logger *zap.Logger
}

func NewValidator(c *catalog.Catalog, logger *zap.Logger) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{
		Catalog: c,
		Results: ValidationResults{},
		logger:  logger,
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if v.Catalog == nil {
		return v.Results, errors.New("no catalog to validate")
	}

	for _, c := range v.Catalog.List() {
		v.validateCard(c)
	}

	v.logger.Debug("Catalog validated",
		zap.Int("cards", len(v.Catalog.Cards)),
		zap.Int("errors", len(v.Results.Errors)),
		zap.Int("warnings", len(v.Results.Warnings)))
	return v.Results, nil
}

func (v *Validator) validateCard(c *card.Card) {
	v.logger.Debug("Validating card", zap.String("id", c.ID))

	if c.Name == "" {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s: name is required", c.ID))
	}
	if c.Render == nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s: card has no render tree", c.ID))
		return
	}
	if c.Render.Len() == 0 {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s: render tree has no rows", c.ID))
		return
	}

	for i, row := range c.Render.Rows() {
		where := fmt.Sprintf("%s row %d", c.ID, i)
		if len(row) == 0 {
			v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("%s: empty row", where))
			continue
		}
		v.checkLeadingSeparator(where, row)
		v.validateNested(where, row)
	}
}

// validateNested checks the boxes nested in a row
func (v *Validator) validateNested(where string, row render.Row) {
	for j, n := range row {
		t, ok := n.(*render.Tree)
		if !ok {
			continue
		}
		at := fmt.Sprintf("%s node %d", where, j)
		switch n.NodeKind() {
		case render.NodeEffect:
			v.validateEffect(at, t)
		case render.NodeProduction:
			if t.Len() == 0 || (t.Len() == 1 && len(t.Row(0)) == 0) {
				v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("%s: empty production box", at))
			}
		}
	}
}

// validateEffect reads an effect through its checked accessors
func (v *Validator) validateEffect(where string, t *render.Tree) {
	cause, err := t.Cause()
	if err != nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s: %v", where, err))
		return
	}
	if _, err := t.Delimiter(); err != nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s: %v", where, err))
		return
	}
	effect, err := t.Effect()
	if err != nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s: %v", where, err))
		return
	}

	if len(effect) == 0 {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s: effect row is empty", where))
		return
	}
	if last := effect.Last(); last.NodeKind() != render.NodeText {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: effect row does not end with a description", where))
	}

	if len(cause) > 0 {
		v.checkLeadingSeparator(where+" cause", cause)
		v.validateNested(where+" cause", cause)
	}
	v.checkLeadingSeparator(where+" effect", effect)
	v.validateNested(where+" effect", effect)
}

// checkLeadingSeparator warns about a row that opens with a separator symbol.
// Symbols are allowed to start a row, but a separator there has nothing to separate.
func (v *Validator) checkLeadingSeparator(where string, row render.Row) {
	s, ok := row[0].(render.Symbol)
	if !ok {
		return
	}
	switch s.Kind {
	case render.SymbolOr, render.SymbolSlash, render.SymbolAsterix, render.SymbolColon, render.SymbolArrow:
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: row starts with separator %q", where, s.Kind.Glyph()))
	}
}
