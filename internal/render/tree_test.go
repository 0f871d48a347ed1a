package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffect_StartEffectWithEmptyCause(t *testing.T) {
	tree, err := BuildEffect(func(b *Builder) {
		b.StartEffect().Oceans(1)
	})
	require.NoError(t, err)

	assert.Equal(t, []Row{{}, {NewSymbol(SymbolColon)}, {NewItem(ItemOceans, 1)}}, tree.Rows())

	cause, err := tree.Cause()
	require.NoError(t, err)
	assert.Empty(t, cause)

	delim, err := tree.Delimiter()
	require.NoError(t, err)
	assert.Nil(t, delim)

	effect, err := tree.Effect()
	require.NoError(t, err)
	assert.Equal(t, Row{NewItem(ItemOceans, 1)}, effect)
}

func TestEffect_ValidAccessors(t *testing.T) {
	tree, err := BuildEffect(func(b *Builder) {
		b.Cards(1).Any().StartAction().ProductionBox(func(pb *Builder) {
			pb.Energy(1)
		}).Description("Action: spend a card to raise energy production.")
	})
	require.NoError(t, err)

	cause, err := tree.Cause()
	require.NoError(t, err)
	assert.Equal(t, Row{Item{Kind: ItemCards, Amount: 1, AnyPlayer: true}}, cause)

	delim, err := tree.Delimiter()
	require.NoError(t, err)
	assert.Equal(t, NewSymbol(SymbolArrow), delim)

	effect, err := tree.Effect()
	require.NoError(t, err)
	require.Len(t, effect, 2)
	assert.Equal(t, NodeProduction, effect[0].NodeKind())

	desc, err := tree.Description()
	require.NoError(t, err)
	assert.Equal(t, "Action: spend a card to raise energy production.", desc)
}

func TestEffect_DescriptionCoercesLastNode(t *testing.T) {
	tree, err := BuildEffect(func(b *Builder) {
		b.Heat(1).StartEffect().Plants(2)
	})
	require.NoError(t, err)

	desc, err := tree.Description()
	require.NoError(t, err)
	assert.Equal(t, "plants(2)", desc)

	empty, err := BuildEffect(func(b *Builder) { b.Heat(1).StartEffect() })
	require.NoError(t, err)
	desc, err = empty.Description()
	require.NoError(t, err)
	assert.Equal(t, "", desc)
}

func TestEffect_InvalidShapes(t *testing.T) {
	tests := []struct {
		name   string
		tree   *Tree
		reason *Error
	}{
		{
			name:   "one row",
			tree:   &Tree{kind: KindEffect, rows: []Row{{NewItem(ItemHeat, 1)}}},
			reason: ErrEffectRowCount,
		},
		{
			name:   "four rows",
			tree:   &Tree{kind: KindEffect, rows: []Row{{}, {NewSymbol(SymbolColon)}, {}, {}}},
			reason: ErrEffectRowCount,
		},
		{
			name:   "empty delimiter",
			tree:   &Tree{kind: KindEffect, rows: []Row{{}, {}, {}}},
			reason: ErrDelimiterLength,
		},
		{
			name:   "two delimiters",
			tree:   &Tree{kind: KindEffect, rows: []Row{{}, {NewSymbol(SymbolColon), NewSymbol(SymbolArrow)}, {}}},
			reason: ErrDelimiterLength,
		},
		{
			name:   "item delimiter",
			tree:   &Tree{kind: KindEffect, rows: []Row{{}, {NewItem(ItemHeat, 1)}, {}}},
			reason: ErrDelimiterNotSymbol,
		},
		{
			name:   "production tree",
			tree:   &Tree{kind: KindProduction, rows: []Row{{}, {NewSymbol(SymbolColon)}, {}}},
			reason: ErrNotEffect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.tree.Cause()
			assertShape(t, err, tt.reason)
			_, err = tt.tree.Delimiter()
			assertShape(t, err, tt.reason)
			_, err = tt.tree.Effect()
			assertShape(t, err, tt.reason)
			_, err = tt.tree.Description()
			assertShape(t, err, tt.reason)
		})
	}
}

func assertShape(t *testing.T, err error, reason *Error) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTreeShapeInvalid))
	assert.True(t, errors.Is(err, reason), "want %v, got %v", reason, err)
}

func TestEffect_ValidationIsRepeatable(t *testing.T) {
	tree, err := BuildEffect(func(b *Builder) { b.Heat(1).StartEffect().Plants(1) })
	require.NoError(t, err)

	before := tree.Rows()
	for i := 0; i < 3; i++ {
		require.NoError(t, tree.Validate())
		_, err := tree.Cause()
		require.NoError(t, err)
	}
	assert.Equal(t, before, tree.Rows())
}

func TestEffect_BuildDoesNotValidate(t *testing.T) {
	tree, err := BuildEffect(func(b *Builder) { b.Heat(1) })
	require.NoError(t, err)
	assert.True(t, errors.Is(tree.Validate(), ErrEffectRowCount))
}

func TestError_Message(t *testing.T) {
	err := newError(CodeMissingNode, "played", "", "called \"played\" without an item")
	assert.Equal(t, `played: missing_node (called "played" without an item)`, err.Error())
	assert.False(t, errors.Is(err, ErrTypeMismatch))
	assert.False(t, errors.Is(ErrDelimiterLength, ErrDelimiterNotSymbol))
}

func TestTree_String(t *testing.T) {
	tree := MustBuild(func(b *Builder) {
		b.Oxygen(1).Plus().Event().Br().Description("x")
	})
	assert.Equal(t, "card{[oxygen(1) + event] [x]}", tree.String())
}
