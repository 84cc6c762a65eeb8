// Package catalog holds ready-made loot tables assembled with pkg/loot. They are
// what cmd/seed publishes.
package catalog

import (
	"fmt"
	"maps"
	"slices"

	"github.com/jwebster45206/loottable/pkg/loot"
	"github.com/jwebster45206/loottable/pkg/resource"
)

type builder func(b *build) loot.Document

var tables = map[string]builder{
	"minecraft:chests/simple_dungeon": simpleDungeon,
	"minecraft:blocks/diamond_ore":    diamondOre,
	"minecraft:blocks/wheat":          wheat,
	"minecraft:blocks/shulker_box":    shulkerBox,
	"minecraft:entities/zombie":       zombie,
	"minecraft:gameplay/fishing":      fishing,
	"loottable:chests/night_cache":    nightCache,
	"loottable:rewards/first_diamond": firstDiamond,
}

// IDs returns the catalogue's table IDs in sorted order.
func IDs() []resource.Location {
	ids := make([]resource.Location, 0, len(tables))
	for _, name := range slices.Sorted(maps.Keys(tables)) {
		ids = append(ids, resource.MustParse(name))
	}
	return ids
}

// Build assembles one catalogue table.
func Build(id resource.Location) (loot.Document, error) {
	fn, ok := tables[id.String()]
	if !ok {
		return loot.Document{}, fmt.Errorf("no catalogue table %s", id)
	}
	b := &build{}
	doc := fn(b)
	if b.err != nil {
		return loot.Document{}, fmt.Errorf("failed to build %s: %w", id, b.err)
	}
	return doc, nil
}

// All assembles every catalogue table.
func All() (map[resource.Location]loot.Document, error) {
	out := make(map[resource.Location]loot.Document, len(tables))
	for _, id := range IDs() {
		doc, err := Build(id)
		if err != nil {
			return nil, err
		}
		out[id] = doc
	}
	return out, nil
}

// build threads the first translator error through a table definition so the
// definitions read top to bottom. After a failure every call is a no-op.
type build struct {
	err error
}

func (b *build) keep(doc loot.Document, err error) loot.Document {
	if b.err != nil {
		return loot.Document{}
	}
	if err != nil {
		b.err = err
		return loot.Document{}
	}
	return doc
}

func (b *build) condition(spec loot.ConditionSpec) loot.Document {
	return b.keep(loot.BuildCondition(spec))
}

func (b *build) function(spec loot.FunctionSpec) loot.Document {
	return b.keep(loot.BuildFunction(spec))
}

func (b *build) entry(spec loot.EntrySpec) loot.Document {
	return b.keep(loot.BuildEntry(spec))
}

func (b *build) pool(p loot.Pool) loot.Document {
	return b.keep(p.Build())
}

func (b *build) table(t loot.Table) loot.Document {
	return b.keep(t.Build())
}

func docs(d ...loot.Document) []loot.Document { return d }

func weight(w int) loot.Weighting { return loot.Weighting{Weight: loot.Ptr(w)} }
