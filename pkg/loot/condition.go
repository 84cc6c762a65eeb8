package loot

import "fmt"

// Condition translates named arguments into a condition Document of one kind.
type Condition struct {
	Kind ConditionKind
}

// NewCondition returns the translator for kind.
func NewCondition(kind ConditionKind) Condition {
	return Condition{Kind: kind}
}

// Build renders the condition. Optional fields appear only when supplied; a
// missing required field fails with *MissingArgumentError.
func (c Condition) Build(args Args) (Document, error) {
	n := newNode("condition", string(c.Kind), args)

	switch c.Kind {
	case ConditionAlternative:
		n.require("terms")
	case ConditionBlockStateProperty:
		n.require("block")
		property, hasProperty := n.lookup("property")
		value, hasValue := n.lookup("value")
		if hasProperty && hasValue {
			name, ok := property.(string)
			if !ok {
				n.fail(&InvalidArgumentError{
					Kind:   n.kind,
					Field:  "property",
					Reason: fmt.Sprintf("property name must be a string, got %T", property),
				})
				break
			}
			n.set("property", Document{}.with(name, value))
		}
	case ConditionDamageSourceProperties, ConditionMatchTool:
		n.require("predicate")
	case ConditionEntityProperties:
		n.require("entity", "predicate")
	case ConditionInverted:
		n.require("term")
	case ConditionKilledByPlayer:
		n.optional("inverse")
	case ConditionLocationCheck:
		n.require("predicate")
		n.optional("offsetX", "offsetY", "offsetZ")
	case ConditionRandomChance:
		n.require("chance")
	case ConditionReference:
		n.require("name")
	case ConditionSurvivesExplosion:
	case ConditionTimeCheck:
		n.optional("value", "period")
	case ConditionToolEnchantment:
		n.require("enchantments")
	case ConditionWeatherCheck:
		n.optional("raining", "thundering")
	default:
		return Document{}, &UnknownKindError{Family: "condition", Kind: string(c.Kind)}
	}

	return n.result()
}

// ConditionSpec is a typed condition variant.
type ConditionSpec interface {
	Kind() ConditionKind
	Args() Args
}

// BuildCondition renders a typed condition through the same translator as
// NewCondition(spec.Kind()).Build.
func BuildCondition(spec ConditionSpec) (Document, error) {
	return NewCondition(spec.Kind()).Build(spec.Args())
}

// Alternative passes when any of its terms pass.
type Alternative struct {
	Terms []Document
}

func (Alternative) Kind() ConditionKind { return ConditionAlternative }
func (c Alternative) Args() Args {
	a := Args{}
	putSlice(a, "terms", c.Terms)
	return a
}

// BlockStateProperty checks one state property of the broken block.
type BlockStateProperty struct {
	Block    string
	Property string
	Value    any
}

func (BlockStateProperty) Kind() ConditionKind { return ConditionBlockStateProperty }
func (c BlockStateProperty) Args() Args {
	a := Args{}
	putString(a, "block", c.Block)
	putString(a, "property", c.Property)
	putAny(a, "value", c.Value)
	return a
}

// DamageSourceProperties checks the damage source against a predicate.
type DamageSourceProperties struct {
	Predicate any
}

func (DamageSourceProperties) Kind() ConditionKind { return ConditionDamageSourceProperties }
func (c DamageSourceProperties) Args() Args {
	a := Args{}
	putAny(a, "predicate", c.Predicate)
	return a
}

// EntityProperties tests Predicate against the entity named by Entity
// ("this", "killer", "killer_player" or "direct_killer").
type EntityProperties struct {
	Entity    string
	Predicate any
}

func (EntityProperties) Kind() ConditionKind { return ConditionEntityProperties }
func (c EntityProperties) Args() Args {
	a := Args{}
	putString(a, "entity", c.Entity)
	putAny(a, "predicate", c.Predicate)
	return a
}

// Inverted negates a single condition.
type Inverted struct {
	Term Document
}

func (Inverted) Kind() ConditionKind { return ConditionInverted }
func (c Inverted) Args() Args {
	a := Args{}
	putDocument(a, "term", c.Term)
	return a
}

// KilledByPlayer passes when a player dealt the killing blow. Inverse flips it.
type KilledByPlayer struct {
	Inverse *bool
}

func (KilledByPlayer) Kind() ConditionKind { return ConditionKilledByPlayer }
func (c KilledByPlayer) Args() Args {
	a := Args{}
	putPtr(a, "inverse", c.Inverse)
	return a
}

// LocationCheck tests the position, optionally offset, against a location predicate.
type LocationCheck struct {
	Predicate any
	OffsetX   *int
	OffsetY   *int
	OffsetZ   *int
}

func (LocationCheck) Kind() ConditionKind { return ConditionLocationCheck }
func (c LocationCheck) Args() Args {
	a := Args{}
	putAny(a, "predicate", c.Predicate)
	putPtr(a, "offsetX", c.OffsetX)
	putPtr(a, "offsetY", c.OffsetY)
	putPtr(a, "offsetZ", c.OffsetZ)
	return a
}

// MatchTool checks the tool used against an item predicate.
type MatchTool struct {
	Predicate any
}

func (MatchTool) Kind() ConditionKind { return ConditionMatchTool }
func (c MatchTool) Args() Args {
	a := Args{}
	putAny(a, "predicate", c.Predicate)
	return a
}

// RandomChance passes with probability Chance (0.0 to 1.0).
type RandomChance struct {
	Chance float64
}

func (RandomChance) Kind() ConditionKind { return ConditionRandomChance }
func (c RandomChance) Args() Args { return Args{"chance": c.Chance} }

// Reference defers to a named predicate file.
type Reference struct {
	Name string
}

func (Reference) Kind() ConditionKind { return ConditionReference }
func (c Reference) Args() Args {
	a := Args{}
	putString(a, "name", c.Name)
	return a
}

// SurvivesExplosion passes with probability 1/explosion radius.
type SurvivesExplosion struct{}

func (SurvivesExplosion) Kind() ConditionKind { return ConditionSurvivesExplosion }
func (SurvivesExplosion) Args() Args { return Args{} }

// TimeCheck compares the day time, taken modulo Period when set, against Value
// (an exact tick or a Range).
type TimeCheck struct {
	Value  any
	Period *int
}

func (TimeCheck) Kind() ConditionKind { return ConditionTimeCheck }
func (c TimeCheck) Args() Args {
	a := Args{}
	putAny(a, "value", c.Value)
	putPtr(a, "period", c.Period)
	return a
}

// ToolEnchantment passes based on the tool's enchantment levels.
type ToolEnchantment struct {
	Enchantments []Document
}

func (ToolEnchantment) Kind() ConditionKind { return ConditionToolEnchantment }
func (c ToolEnchantment) Args() Args {
	a := Args{}
	putSlice(a, "enchantments", c.Enchantments)
	return a
}

// WeatherCheck matches the current weather.
type WeatherCheck struct {
	Raining    *bool
	Thundering *bool
}

func (WeatherCheck) Kind() ConditionKind { return ConditionWeatherCheck }
func (c WeatherCheck) Args() Args {
	a := Args{}
	putPtr(a, "raining", c.Raining)
	putPtr(a, "thundering", c.Thundering)
	return a
}
