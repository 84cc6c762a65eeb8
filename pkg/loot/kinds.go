package loot

import "slices"

// TableKind is the "type" of a loot table, which decides the loot context the game
// supplies when the table is rolled.
type TableKind string

const (
	TableAdvancementReward TableKind = "minecraft:advancement_reward"
	TableBlock             TableKind = "minecraft:block"
	TableChest             TableKind = "minecraft:chest"
	TableEntity            TableKind = "minecraft:entity"
	TableFishing           TableKind = "minecraft:fishing"
	TableGeneric           TableKind = "minecraft:generic"
)

// TableKinds lists every known TableKind.
var TableKinds = []TableKind{
	TableAdvancementReward, TableBlock, TableChest, TableEntity, TableFishing, TableGeneric,
}

// Valid reports whether k is a known table type.
func (k TableKind) Valid() bool { return slices.Contains(TableKinds, k) }

// ConditionKind names a loot condition (predicate) variant.
type ConditionKind string

const (
	ConditionAlternative            ConditionKind = "minecraft:alternative"
	ConditionBlockStateProperty     ConditionKind = "minecraft:block_state_property"
	ConditionDamageSourceProperties ConditionKind = "minecraft:damage_source_properties"
	ConditionEntityProperties       ConditionKind = "minecraft:entity_properties"
	ConditionInverted               ConditionKind = "minecraft:inverted"
	ConditionKilledByPlayer         ConditionKind = "minecraft:killed_by_player"
	ConditionLocationCheck          ConditionKind = "minecraft:location_check"
	ConditionMatchTool              ConditionKind = "minecraft:match_tool"
	ConditionRandomChance           ConditionKind = "minecraft:random_chance"
	ConditionReference              ConditionKind = "minecraft:reference"
	ConditionSurvivesExplosion      ConditionKind = "minecraft:survives_explosion"
	ConditionTimeCheck              ConditionKind = "minecraft:time_check"
	ConditionToolEnchantment        ConditionKind = "minecraft:tool_enchantment"
	ConditionWeatherCheck           ConditionKind = "minecraft:weather_check"
)

// ConditionKinds lists every known ConditionKind.
var ConditionKinds = []ConditionKind{
	ConditionAlternative, ConditionBlockStateProperty, ConditionDamageSourceProperties,
	ConditionEntityProperties, ConditionInverted, ConditionKilledByPlayer,
	ConditionLocationCheck, ConditionMatchTool, ConditionRandomChance, ConditionReference,
	ConditionSurvivesExplosion, ConditionTimeCheck, ConditionToolEnchantment,
	ConditionWeatherCheck,
}

// Valid reports whether k is a known condition.
func (k ConditionKind) Valid() bool { return slices.Contains(ConditionKinds, k) }

// FunctionKind names an item modifier variant.
type FunctionKind string

const (
	FunctionApplyBonus        FunctionKind = "minecraft:apply_bonus"
	FunctionCopyName          FunctionKind = "minecraft:copy_name"
	FunctionCopyNBT           FunctionKind = "minecraft:copy_nbt"
	FunctionCopyState         FunctionKind = "minecraft:copy_state"
	FunctionEnchantRandomly   FunctionKind = "minecraft:enchant_randomly"
	FunctionEnchantWithLevels FunctionKind = "minecraft:enchant_with_levels"
	FunctionExplosionDecay    FunctionKind = "minecraft:explosion_decay"
	FunctionFurnaceSmelt      FunctionKind = "minecraft:furnace_smelt"
	FunctionLimitCount        FunctionKind = "minecraft:limit_count"
	FunctionLootingEnchant    FunctionKind = "minecraft:looting_enchant"
	FunctionSetAttributes     FunctionKind = "minecraft:set_attributes"
	FunctionSetContents       FunctionKind = "minecraft:set_contents"
	FunctionSetCount          FunctionKind = "minecraft:set_count"
	FunctionSetDamage         FunctionKind = "minecraft:set_damage"
	FunctionSetLore           FunctionKind = "minecraft:set_lore"
	FunctionSetName           FunctionKind = "minecraft:set_name"
	FunctionSetNBT            FunctionKind = "minecraft:set_nbt"
)

// FunctionKinds lists every known FunctionKind.
var FunctionKinds = []FunctionKind{
	FunctionApplyBonus, FunctionCopyName, FunctionCopyNBT, FunctionCopyState,
	FunctionEnchantRandomly, FunctionEnchantWithLevels, FunctionExplosionDecay,
	FunctionFurnaceSmelt, FunctionLimitCount, FunctionLootingEnchant,
	FunctionSetAttributes, FunctionSetContents, FunctionSetCount, FunctionSetDamage,
	FunctionSetLore, FunctionSetName, FunctionSetNBT,
}

// Valid reports whether k is a known function.
func (k FunctionKind) Valid() bool { return slices.Contains(FunctionKinds, k) }

// EntryKind names a pool entry variant.
type EntryKind string

const (
	EntryAlternatives EntryKind = "minecraft:alternatives"
	EntryDynamic      EntryKind = "minecraft:dynamic"
	EntryEmpty        EntryKind = "minecraft:empty"
	EntryGroup        EntryKind = "minecraft:group"
	EntryItem         EntryKind = "minecraft:item"
	EntryLootTable    EntryKind = "minecraft:loot_table"
	EntrySequence     EntryKind = "minecraft:sequence"
	EntryTag          EntryKind = "minecraft:tag"
)

// EntryKinds lists every known EntryKind.
var EntryKinds = []EntryKind{
	EntryAlternatives, EntryDynamic, EntryEmpty, EntryGroup,
	EntryItem, EntryLootTable, EntrySequence, EntryTag,
}

// Valid reports whether k is a known entry type.
func (k EntryKind) Valid() bool { return slices.Contains(EntryKinds, k) }
