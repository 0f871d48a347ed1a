package catalog

import (
	"github.com/arcanaland/cardrender/internal/card"
	"github.com/arcanaland/cardrender/internal/render"
)

// Definitions returns the bundled card definitions
func Definitions() []Definition {
	return []Definition{
		{
			ID: "base.arctic_algae", Name: "Arctic Algae", Type: card.TypeActive, Cost: 12,
			Tags: []string{"plant"},
			Render: func(b *render.Builder) {
				b.EffectBox(func(eb *render.Builder) {
					eb.Oceans(1).Any().StartEffect().Plants(2)
					eb.Description("Effect: When anyone places an ocean tile, gain 2 plants.")
				}).Br()
				b.Plants(1).Br()
				b.Description("It must be -12 C or colder to play. Gain 1 plant.")
			},
		},
		{
			ID: "base.birds", Name: "Birds", Type: card.TypeActive, Cost: 10,
			Tags: []string{"animal"},
			Render: func(b *render.Builder) {
				b.EffectBox(func(eb *render.Builder) {
					eb.Empty().StartAction().Animals(1)
					eb.Description("Action: Add an animal to this card.")
				}).Br()
				b.ProductionBox(func(pb *render.Builder) {
					pb.Minus().Plants(-2).Any()
				}).Br()
				b.Description("Requires 13% oxygen. Decrease any plant production 2 steps. 1 VP per animal on this card.")
			},
		},
		{
			ID: "base.power_plant", Name: "Power Plant", Type: card.TypeAutomated, Cost: 4,
			Tags: []string{"power", "building"},
			Render: func(b *render.Builder) {
				b.ProductionBox(func(pb *render.Builder) {
					pb.Energy(1)
				}).Br()
				b.Description("Increase your energy production 1 step.")
			},
		},
		{
			ID: "base.io_mining_industries", Name: "Io Mining Industries", Type: card.TypeAutomated, Cost: 41,
			Tags: []string{"jovian", "space"},
			Render: func(b *render.Builder) {
				b.ProductionBox(func(pb *render.Builder) {
					pb.Titanium(2).Megacredits(2)
				}).Br()
				b.Description("Increase your titanium production 2 steps and your MC production 2 steps.")
			},
		},
		{
			ID: "base.asteroid", Name: "Asteroid", Type: card.TypeEvent, Cost: 14,
			Tags: []string{"space", "event"},
			Render: func(b *render.Builder) {
				b.Temperature(1).Br()
				b.Titanium(2).Minus().Plants(3).Any().Br()
				b.Description("Raise temperature 1 step and gain 2 titanium. Remove up to 3 plants from any player.")
			},
		},
		{
			ID: "base.optimal_aerobraking", Name: "Optimal Aerobraking", Type: card.TypeActive, Cost: 7,
			Tags: []string{"space"},
			Render: func(b *render.Builder) {
				b.EffectBox(func(eb *render.Builder) {
					eb.Space().Event().Played().StartEffect().Megacredits(3).Heat(3)
					eb.Description("Effect: When you play a space event, you gain 3 MC and 3 heat.")
				})
			},
		},
		{
			ID: "base.trees", Name: "Trees", Type: card.TypeAutomated, Cost: 13,
			Tags: []string{"plant"},
			Render: func(b *render.Builder) {
				b.ProductionBox(func(pb *render.Builder) {
					pb.Plants(3)
				}).Plants(1).Br()
				b.Description("Requires -4 C or warmer. Increase your plant production 3 steps. Gain 1 plant.")
			},
		},
		{
			ID: "venus.sulphur_exports", Name: "Sulphur Exports", Type: card.TypeAutomated, Cost: 21,
			Tags: []string{"venus", "space"},
			Render: func(b *render.Builder) {
				b.Venus(1).Br()
				b.ProductionBox(func(pb *render.Builder) {
					pb.Megacredits(1).Slash().Venus(1).Played().Digit()
				}).Br()
				b.Description("Raise Venus 1 step. Increase your MC production 1 step for each Venus tag you have.")
			},
		},
		{
			ID: "venus.dirigibles", Name: "Dirigibles", Type: card.TypeActive, Cost: 11,
			Tags: []string{"venus"},
			Render: func(b *render.Builder) {
				b.EffectBox(func(eb *render.Builder) {
					eb.Empty().StartAction().Floaters(1).Asterix()
					eb.Description("Action: Add 1 floater to ANY card.")
				}).Br()
				b.EffectBox(func(eb *render.Builder) {
					eb.Venus(1).Played().StartEffect().Floaters(1).Brackets().Megacredits(-3)
					eb.Description("Effect: When playing a Venus tag, floaters here may be used as 3 MC each.")
				})
			},
		},
		{
			ID: "colonies.cryo_sleep", Name: "Cryo-Sleep", Type: card.TypeActive, Cost: 10,
			Tags: []string{"science"},
			Render: func(b *render.Builder) {
				b.EffectBox(func(eb *render.Builder) {
					eb.Trade().StartEffect().TradeDiscount(1)
					eb.Description("Effect: When you trade, you pay 1 less resource for it.")
				})
			},
		},
		{
			ID: "turmoil.event_analysts", Name: "Event Analysts", Type: card.TypeActive, Cost: 5,
			Tags: []string{"science"},
			Render: func(b *render.Builder) {
				b.EffectBox(func(eb *render.Builder) {
					eb.StartEffect().Influence(1)
					eb.Description("Effect: You have +1 influence.")
				})
			},
		},
		{
			ID: "base.decomposers", Name: "Decomposers", Type: card.TypeActive, Cost: 5,
			Tags: []string{"microbe"},
			Render: func(b *render.Builder) {
				b.EffectBox(func(eb *render.Builder) {
					eb.Animals(1).Played().Slash().Plants(1).Played().Or().Microbes(1).Played()
					eb.StartEffect().Microbes(1)
					eb.Description("Effect: When you play an animal, plant or microbe tag, add a microbe to this card.")
				}).Br()
				b.Oxygen(3).Digit().Br()
				b.Description("Requires 3% oxygen. 1 VP per 3 microbes on this card.")
			},
		},
		{
			ID: "base.satellites", Name: "Satellites", Type: card.TypeAutomated, Cost: 10,
			Tags: []string{"space"},
			Render: func(b *render.Builder) {
				b.ProductionBox(func(pb *render.Builder) {
					pb.Megacredits(1).Slash().Space().Played()
				}).Br()
				b.Steel(2).Plus().Cards(1).Br()
				b.Description("Increase your MC production 1 step for each space tag you have, including this one. Gain 2 steel and draw a card.")
			},
		},
	}
}
