package loot

// Formulas understood by apply_bonus.
const (
	FormulaUniformBonusCount      = "uniform_bonus_count"
	FormulaBinomialWithBonusCount = "binomial_with_bonus_count"
)

// Function translates named arguments into an item modifier Document of one kind.
type Function struct {
	Kind FunctionKind
}

// NewFunction returns the translator for kind.
func NewFunction(kind FunctionKind) Function {
	return Function{Kind: kind}
}

// Build renders the function. Every kind accepts an optional "conditions" list,
// written after the kind specific fields.
func (f Function) Build(args Args) (Document, error) {
	n := newNode("function", string(f.Kind), args)

	switch f.Kind {
	case FunctionApplyBonus:
		n.optional("enchantment")
		formula, ok := n.lookup("formula")
		if !ok {
			break
		}
		n.set("formula", formula)
		var fields []string
		if name, _ := formula.(string); name == FormulaUniformBonusCount {
			fields = []string{"bonusMultiplier"}
		} else {
			fields = []string{"extra", "probability"}
		}
		var params Document
		for _, field := range fields {
			if v, ok := n.lookup(field); ok {
				params = params.with(field, v)
			}
		}
		n.set("parameters", params)
	case FunctionCopyName:
		n.set("source", "block_entity")
	case FunctionCopyNBT:
		n.require("source", "ops")
	case FunctionCopyState:
		n.require("block", "properties")
	case FunctionEnchantRandomly:
		n.optional("enchantments")
	case FunctionEnchantWithLevels:
		n.require("levels")
		n.optional("treasure")
	case FunctionExplosionDecay, FunctionFurnaceSmelt:
	case FunctionLimitCount:
		n.require("limit")
	case FunctionLootingEnchant:
		n.require("count")
		if limit, ok := args["limit"]; ok {
			n.set("limit", limit)
		} else {
			n.set("limit", 0)
		}
	case FunctionSetAttributes:
		n.require("modifiers")
	case FunctionSetContents:
		n.require("entries")
	case FunctionSetCount:
		n.require("count")
	case FunctionSetDamage:
		n.require("damage")
	case FunctionSetLore:
		n.require("lore")
		n.optional("entity", "replace")
	case FunctionSetName:
		n.require("name")
		n.optional("entity")
	case FunctionSetNBT:
		n.require("tag")
	default:
		return Document{}, &UnknownKindError{Family: "function", Kind: string(f.Kind)}
	}

	n.optional("conditions")
	return n.result()
}

// FunctionSpec is a typed function variant.
type FunctionSpec interface {
	Kind() FunctionKind
	Args() Args
}

// BuildFunction renders a typed function through NewFunction(spec.Kind()).Build.
func BuildFunction(spec FunctionSpec) (Document, error) {
	return NewFunction(spec.Kind()).Build(spec.Args())
}

func withConditions(a Args, conditions []Document) Args {
	putSlice(a, "conditions", conditions)
	return a
}

// ApplyBonus scales the count by an enchantment level. BonusMultiplier is used
// with FormulaUniformBonusCount, Extra and Probability with any other formula.
type ApplyBonus struct {
	Enchantment     string
	Formula         string
	BonusMultiplier *float64
	Extra           *int
	Probability     *float64
	Conditions      []Document
}

func (ApplyBonus) Kind() FunctionKind { return FunctionApplyBonus }
func (f ApplyBonus) Args() Args {
	a := Args{}
	putString(a, "enchantment", f.Enchantment)
	putString(a, "formula", f.Formula)
	putPtr(a, "bonusMultiplier", f.BonusMultiplier)
	putPtr(a, "extra", f.Extra)
	putPtr(a, "probability", f.Probability)
	return withConditions(a, f.Conditions)
}

// CopyName copies the block entity's custom name onto the item.
type CopyName struct {
	Conditions []Document
}

func (CopyName) Kind() FunctionKind { return FunctionCopyName }
func (f CopyName) Args() Args { return withConditions(Args{}, f.Conditions) }

// NBTOperation is one copy_nbt operation; Op is "replace", "append" or "merge".
type NBTOperation struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
	Op     string `json:"op" yaml:"op"`
}

// CopyNBT copies NBT paths from Source onto the item.
type CopyNBT struct {
	Source     string
	Ops        []NBTOperation
	Conditions []Document
}

func (CopyNBT) Kind() FunctionKind { return FunctionCopyNBT }
func (f CopyNBT) Args() Args {
	a := Args{}
	putString(a, "source", f.Source)
	putSlice(a, "ops", f.Ops)
	return withConditions(a, f.Conditions)
}

// CopyState copies block state properties into the item's BlockStateTag.
type CopyState struct {
	Block      string
	Properties []string
	Conditions []Document
}

func (CopyState) Kind() FunctionKind { return FunctionCopyState }
func (f CopyState) Args() Args {
	a := Args{}
	putString(a, "block", f.Block)
	putSlice(a, "properties", f.Properties)
	return withConditions(a, f.Conditions)
}

// EnchantRandomly applies one random enchantment, drawn from Enchantments when set.
type EnchantRandomly struct {
	Enchantments []string
	Conditions   []Document
}

func (EnchantRandomly) Kind() FunctionKind { return FunctionEnchantRandomly }
func (f EnchantRandomly) Args() Args {
	a := Args{}
	putSlice(a, "enchantments", f.Enchantments)
	return withConditions(a, f.Conditions)
}

// EnchantWithLevels enchants as an enchanting table would at Levels.
type EnchantWithLevels struct {
	Levels     any
	Treasure   *bool
	Conditions []Document
}

func (EnchantWithLevels) Kind() FunctionKind { return FunctionEnchantWithLevels }
func (f EnchantWithLevels) Args() Args {
	a := Args{}
	putAny(a, "levels", f.Levels)
	putPtr(a, "treasure", f.Treasure)
	return withConditions(a, f.Conditions)
}

// ExplosionDecay removes items from the stack when an explosion destroyed the source.
type ExplosionDecay struct {
	Conditions []Document
}

func (ExplosionDecay) Kind() FunctionKind { return FunctionExplosionDecay }
func (f ExplosionDecay) Args() Args { return withConditions(Args{}, f.Conditions) }

// FurnaceSmelt replaces the item with its smelted form.
type FurnaceSmelt struct {
	Conditions []Document
}

func (FurnaceSmelt) Kind() FunctionKind { return FunctionFurnaceSmelt }
func (f FurnaceSmelt) Args() Args { return withConditions(Args{}, f.Conditions) }

// LimitCount clamps the stack size.
type LimitCount struct {
	Limit      any
	Conditions []Document
}

func (LimitCount) Kind() FunctionKind { return FunctionLimitCount }
func (f LimitCount) Args() Args {
	a := Args{}
	putAny(a, "limit", f.Limit)
	return withConditions(a, f.Conditions)
}

// LootingEnchant adds Count items per looting level. A nil Limit renders as 0,
// meaning no cap.
type LootingEnchant struct {
	Count      any
	Limit      *int
	Conditions []Document
}

func (LootingEnchant) Kind() FunctionKind { return FunctionLootingEnchant }
func (f LootingEnchant) Args() Args {
	a := Args{}
	putAny(a, "count", f.Count)
	putPtr(a, "limit", f.Limit)
	return withConditions(a, f.Conditions)
}

// SetAttributes adds attribute modifiers.
type SetAttributes struct {
	Modifiers  []Document
	Conditions []Document
}

func (SetAttributes) Kind() FunctionKind { return FunctionSetAttributes }
func (f SetAttributes) Args() Args {
	a := Args{}
	putSlice(a, "modifiers", f.Modifiers)
	return withConditions(a, f.Conditions)
}

// SetContents fills a container item with Entries.
type SetContents struct {
	Entries    []Document
	Conditions []Document
}

func (SetContents) Kind() FunctionKind { return FunctionSetContents }
func (f SetContents) Args() Args {
	a := Args{}
	putSlice(a, "entries", f.Entries)
	return withConditions(a, f.Conditions)
}

// SetCount sets the stack size. Count is a number or Range.
type SetCount struct {
	Count      any
	Conditions []Document
}

func (SetCount) Kind() FunctionKind { return FunctionSetCount }
func (f SetCount) Args() Args {
	a := Args{}
	putAny(a, "count", f.Count)
	return withConditions(a, f.Conditions)
}

// SetDamage sets durability as a fraction of the maximum.
type SetDamage struct {
	Damage     any
	Conditions []Document
}

func (SetDamage) Kind() FunctionKind { return FunctionSetDamage }
func (f SetDamage) Args() Args {
	a := Args{}
	putAny(a, "damage", f.Damage)
	return withConditions(a, f.Conditions)
}

// SetLore replaces or appends lore lines (JSON text components).
type SetLore struct {
	Lore       []any
	Entity     string
	Replace    *bool
	Conditions []Document
}

func (SetLore) Kind() FunctionKind { return FunctionSetLore }
func (f SetLore) Args() Args {
	a := Args{}
	putSlice(a, "lore", f.Lore)
	putString(a, "entity", f.Entity)
	putPtr(a, "replace", f.Replace)
	return withConditions(a, f.Conditions)
}

// SetName sets the custom name; Name is a plain string or a JSON text component.
type SetName struct {
	Name       any
	Entity     string
	Conditions []Document
}

func (SetName) Kind() FunctionKind { return FunctionSetName }
func (f SetName) Args() Args {
	a := Args{}
	putAny(a, "name", f.Name)
	putString(a, "entity", f.Entity)
	return withConditions(a, f.Conditions)
}

// SetNBT merges the SNBT Tag into the item.
type SetNBT struct {
	Tag        string
	Conditions []Document
}

func (SetNBT) Kind() FunctionKind { return FunctionSetNBT }
func (f SetNBT) Args() Args {
	a := Args{}
	putString(a, "tag", f.Tag)
	return withConditions(a, f.Conditions)
}
