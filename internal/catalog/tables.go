package catalog

import "github.com/jwebster45206/loottable/pkg/loot"

func simpleDungeon(b *build) loot.Document {
	book := b.entry(loot.ItemEntry{
		Name:      "minecraft:book",
		Functions: docs(b.function(loot.EnchantRandomly{})),
		Weighting: weight(10),
	})
	iron := b.entry(loot.ItemEntry{
		Name:      "minecraft:iron_ingot",
		Functions: docs(b.function(loot.SetCount{Count: loot.Range{Min: 1, Max: 4}})),
		Weighting: weight(10),
	})
	discs := b.entry(loot.TagEntry{
		Name:      "minecraft:creeper_drop_music_discs",
		Expand:    loot.Ptr(true),
		Weighting: weight(15),
	})
	treasure := b.pool(loot.Pool{
		Rolls: loot.Range{Min: 1, Max: 3},
		Name:  "treasure",
		Entries: docs(
			b.entry(loot.ItemEntry{Name: "minecraft:saddle", Weighting: weight(20)}),
			b.entry(loot.ItemEntry{Name: "minecraft:golden_apple", Weighting: weight(15)}),
			discs,
			b.entry(loot.ItemEntry{Name: "minecraft:name_tag", Weighting: weight(20)}),
			book,
			iron,
			b.entry(loot.EmptyEntry{Weighting: weight(5)}),
		),
	})

	bones := b.entry(loot.ItemEntry{
		Name:      "minecraft:bone",
		Functions: docs(b.function(loot.SetCount{Count: loot.Range{Min: 1, Max: 8}})),
		Weighting: weight(10),
	})
	gunpowder := b.entry(loot.ItemEntry{
		Name:      "minecraft:gunpowder",
		Functions: docs(b.function(loot.SetCount{Count: loot.Range{Min: 1, Max: 8}})),
		Weighting: weight(10),
	})
	junk := b.pool(loot.Pool{
		Rolls:   3,
		Name:    "junk",
		Entries: docs(bones, gunpowder),
	})

	return b.table(loot.Table{Kind: loot.TableChest, Pools: docs(treasure, junk)})
}

func diamondOre(b *build) loot.Document {
	silkTouch := b.condition(loot.MatchTool{Predicate: loot.NewPredicate(loot.Args{
		"enchantments": []loot.Args{{"enchantment": "minecraft:silk_touch", "levels": loot.Args{"min": 1}}},
	})})
	fortune := b.function(loot.ApplyBonus{
		Enchantment:     "minecraft:fortune",
		Formula:         loot.FormulaUniformBonusCount,
		BonusMultiplier: loot.Ptr(1.0),
	})

	ore := b.entry(loot.ItemEntry{Name: "minecraft:diamond_ore", Conditions: docs(silkTouch)})
	gem := b.entry(loot.ItemEntry{
		Name:      "minecraft:diamond",
		Functions: docs(fortune, b.function(loot.ExplosionDecay{})),
	})
	pool := b.pool(loot.Pool{
		Rolls:   1,
		Name:    "diamond_ore",
		Entries: docs(b.entry(loot.AlternativesEntry{Children: docs(ore, gem)})),
	})

	return b.table(loot.Table{Kind: loot.TableBlock, Pools: docs(pool)})
}

func wheat(b *build) loot.Document {
	mature := b.condition(loot.BlockStateProperty{
		Block:    "minecraft:wheat",
		Property: "age",
		Value:    "7",
	})

	grain := b.entry(loot.ItemEntry{Name: "minecraft:wheat", Conditions: docs(mature)})
	seeds := b.entry(loot.ItemEntry{Name: "minecraft:wheat_seeds"})
	crop := b.pool(loot.Pool{
		Rolls:   1,
		Name:    "crop",
		Entries: docs(b.entry(loot.AlternativesEntry{Children: docs(grain, seeds)})),
	})

	bonus := b.function(loot.ApplyBonus{
		Enchantment: "minecraft:fortune",
		Formula:     loot.FormulaBinomialWithBonusCount,
		Extra:       loot.Ptr(3),
		Probability: loot.Ptr(0.5714286),
	})
	extraSeeds := b.pool(loot.Pool{
		Rolls:      1,
		Name:       "seeds",
		Entries:    docs(b.entry(loot.ItemEntry{Name: "minecraft:wheat_seeds", Functions: docs(bonus)})),
		Conditions: docs(mature),
	})

	return b.table(loot.Table{
		Kind:      loot.TableBlock,
		Pools:     docs(crop, extraSeeds),
		Functions: docs(b.function(loot.ExplosionDecay{})),
	})
}

func shulkerBox(b *build) loot.Document {
	copyNBT := b.function(loot.CopyNBT{
		Source: "block_entity",
		Ops: []loot.NBTOperation{
			{Source: "Lock", Target: "BlockEntityTag.Lock", Op: "replace"},
			{Source: "LootTable", Target: "BlockEntityTag.LootTable", Op: "replace"},
			{Source: "LootTableSeed", Target: "BlockEntityTag.LootTableSeed", Op: "replace"},
		},
	})
	contents := b.function(loot.SetContents{
		Entries: docs(b.entry(loot.DynamicEntry{Name: "contents"})),
	})
	facing := b.function(loot.CopyState{
		Block:      "minecraft:shulker_box",
		Properties: []string{"facing"},
	})

	box := b.entry(loot.ItemEntry{
		Name:      "minecraft:shulker_box",
		Functions: docs(b.function(loot.CopyName{}), copyNBT, contents, facing),
	})
	pool := b.pool(loot.Pool{
		Rolls:      1,
		Name:       "shulker_box",
		Entries:    docs(box),
		Conditions: docs(b.condition(loot.SurvivesExplosion{})),
	})

	return b.table(loot.Table{Kind: loot.TableBlock, Pools: docs(pool)})
}

func zombie(b *build) loot.Document {
	flesh := b.entry(loot.ItemEntry{
		Name: "minecraft:rotten_flesh",
		Functions: docs(
			b.function(loot.SetCount{Count: loot.Range{Min: 0, Max: 2}}),
			b.function(loot.LootingEnchant{Count: loot.Range{Min: 0, Max: 1}}),
			b.function(loot.LimitCount{Limit: loot.Args{"max": 4}}),
		),
	})
	common := b.pool(loot.Pool{Rolls: 1, Name: "flesh", Entries: docs(flesh)})

	onFire := b.condition(loot.EntityProperties{
		Entity:    "this",
		Predicate: loot.NewPredicate(loot.Args{"flags": loot.Args{"is_on_fire": true}}),
	})
	potato := b.entry(loot.ItemEntry{
		Name:      "minecraft:potato",
		Functions: docs(b.function(loot.FurnaceSmelt{Conditions: docs(onFire)})),
	})
	rare := b.pool(loot.Pool{
		Rolls: 1,
		Name:  "rare",
		Entries: docs(
			b.entry(loot.ItemEntry{Name: "minecraft:iron_ingot"}),
			b.entry(loot.ItemEntry{Name: "minecraft:carrot"}),
			potato,
		),
		Conditions: docs(
			b.condition(loot.KilledByPlayer{}),
			b.condition(loot.RandomChance{Chance: 0.025}),
		),
	})

	return b.table(loot.Table{Kind: loot.TableEntity, Pools: docs(common, rare)})
}

func fishing(b *build) loot.Document {
	openWater := b.condition(loot.EntityProperties{
		Entity:    "this",
		Predicate: loot.NewPredicate(loot.Args{"type_specific": loot.Args{"type": "fishing_hook", "in_open_water": true}}),
	})

	junk := b.entry(loot.LootTableEntry{
		Name:      "minecraft:gameplay/fishing/junk",
		Weighting: loot.Weighting{Weight: loot.Ptr(10), Quality: loot.Ptr(-2)},
	})
	treasure := b.entry(loot.LootTableEntry{
		Name:      "minecraft:gameplay/fishing/treasure",
		Weighting: loot.Weighting{Weight: loot.Ptr(5), Quality: loot.Ptr(2)},
	})
	fish := b.entry(loot.LootTableEntry{
		Name:      "minecraft:gameplay/fishing/fish",
		Weighting: loot.Weighting{Weight: loot.Ptr(85), Quality: loot.Ptr(-1)},
	})

	catch := b.pool(loot.Pool{
		Rolls:   1,
		Name:    "catch",
		Entries: docs(junk, fish),
	})
	// Treasure only rolls for hooks cast into open water.
	bonus := b.pool(loot.Pool{
		Rolls:      1,
		Name:       "open_water",
		Entries:    docs(treasure),
		Conditions: docs(openWater, b.condition(loot.RandomChance{Chance: 0.05})),
	})

	return b.table(loot.Table{Kind: loot.TableFishing, Pools: docs(catch, bonus)})
}

func nightCache(b *build) loot.Document {
	night := b.condition(loot.TimeCheck{Value: loot.Range{Min: 13000, Max: 23000}, Period: loot.Ptr(24000)})
	dry := b.condition(loot.Inverted{Term: b.condition(loot.WeatherCheck{Raining: loot.Ptr(true)})})

	sword := b.entry(loot.ItemEntry{
		Name: "minecraft:iron_sword",
		Functions: docs(
			b.function(loot.SetName{Name: loot.Args{"text": "Moonlit Edge", "italic": false}}),
			b.function(loot.SetLore{Lore: []any{"Found only after dusk"}, Replace: loot.Ptr(true)}),
			b.function(loot.SetDamage{Damage: loot.Range{Min: 0.4, Max: 0.8}}),
			b.function(loot.EnchantWithLevels{Levels: 30, Treasure: loot.Ptr(true)}),
		),
	})
	bread := b.entry(loot.ItemEntry{
		Name:      "minecraft:bread",
		Functions: docs(b.function(loot.SetCount{Count: 2})),
	})
	pool := b.pool(loot.Pool{
		Rolls:   1,
		Name:    "cache",
		Entries: docs(b.entry(loot.GroupEntry{Children: docs(sword, bread)})),
	})

	return b.table(loot.Table{
		Kind:       loot.TableChest,
		Pools:      docs(pool),
		Conditions: docs(night, dry),
	})
}

func firstDiamond(b *build) loot.Document {
	survival := b.condition(loot.Reference{Name: "loottable:is_survival"})
	inVillage := b.condition(loot.LocationCheck{
		Predicate: loot.NewPredicate(loot.Args{"structure": "minecraft:village_plains"}),
		OffsetY:   loot.Ptr(-1),
	})
	token := b.entry(loot.ItemEntry{
		Name: "minecraft:emerald",
		Functions: docs(
			b.function(loot.SetNBT{Tag: "{display:{Name:'\"Prospector Token\"'}}"}),
			b.function(loot.SetAttributes{Modifiers: docs(loot.NewPredicate(loot.Args{
				"attribute": "minecraft:generic.luck",
				"name":      "prospector",
				"amount":    1,
				"operation": "addition",
				"slot":      "offhand",
			}))}),
		),
		Conditions: docs(inVillage),
	})
	pool := b.pool(loot.Pool{
		Rolls:      1,
		Name:       "reward",
		Entries:    docs(token),
		Conditions: docs(survival),
	})

	return b.table(loot.Table{Kind: loot.TableAdvancementReward, Pools: docs(pool)})
}
