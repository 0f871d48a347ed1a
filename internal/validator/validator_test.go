package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arcanaland/cardrender/internal/card"
	"github.com/arcanaland/cardrender/internal/catalog"
	"github.com/arcanaland/cardrender/internal/render"
)

func TestValidate_BundledCatalogIsClean(t *testing.T) {
	c, err := catalog.Load(zap.NewNop())
	require.NoError(t, err)

	results, err := NewValidator(c, nil).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestValidate_ReportsProblems(t *testing.T) {
	defs := []catalog.Definition{
		{
			ID: "x.bad_effect", Name: "Bad Effect", Type: card.TypeActive,
			Render: func(b *render.Builder) {
				b.EffectBox(func(eb *render.Builder) { eb.Heat(1).Plants(1) })
			},
		},
		{
			ID: "x.no_description", Name: "No Description", Type: card.TypeActive,
			Render: func(b *render.Builder) {
				b.EffectBox(func(eb *render.Builder) { eb.Heat(1).StartEffect().Plants(1) })
			},
		},
		{
			ID: "x.empty_effect", Name: "Empty Effect", Type: card.TypeActive,
			Render: func(b *render.Builder) {
				b.EffectBox(func(eb *render.Builder) { eb.Heat(1).StartAction() })
			},
		},
		{
			ID: "x.trailing", Name: "Trailing", Type: card.TypeAutomated,
			Render: func(b *render.Builder) {
				b.Heat(1).Br().Slash().Plants(1).Br()
			},
		},
		{
			ID: "x.empty_box", Name: "", Type: card.TypeAutomated,
			Render: func(b *render.Builder) {
				b.ProductionBox(func(*render.Builder) {})
			},
		},
	}

	c, err := catalog.New("test", defs, nil)
	require.NoError(t, err)

	results, err := NewValidator(c, zap.NewNop()).Validate()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"x.bad_effect row 0 node 0: cause: effect must have 3 rows: cause, delimiter and effect (got 1)",
		"x.empty_box: name is required",
		"x.empty_effect row 0 node 0: effect row is empty",
	}, results.Errors)
	assert.Equal(t, []string{
		"x.empty_box row 0 node 0: empty production box",
		"x.no_description row 0 node 0: effect row does not end with a description",
		`x.trailing row 1: row starts with separator "/"`,
		"x.trailing row 2: empty row",
	}, results.Warnings)
}

func TestValidate_NoCatalog(t *testing.T) {
	_, err := NewValidator(nil, nil).Validate()
	assert.EqualError(t, err, "no catalog to validate")
}
