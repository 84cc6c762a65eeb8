package loot

// Entry translates named arguments into a pool entry Document of one kind.
type Entry struct {
	Kind EntryKind
}

// NewEntry returns the translator for kind.
func NewEntry(kind EntryKind) Entry {
	return Entry{Kind: kind}
}

// Build renders the entry. Singleton entries (everything except alternatives,
// group and sequence) also accept optional "weight" and "quality".
func (e Entry) Build(args Args) (Document, error) {
	n := newNode("type", string(e.Kind), args)

	switch e.Kind {
	case EntryAlternatives, EntryGroup, EntrySequence:
		n.require("children")
	case EntryDynamic, EntryLootTable:
		n.require("name")
		n.optional("weight", "quality")
	case EntryEmpty:
		n.optional("weight", "quality")
	case EntryItem:
		n.require("name")
		n.optional("weight", "quality", "functions", "conditions")
	case EntryTag:
		n.require("name")
		n.optional("expand", "weight", "quality")
	default:
		return Document{}, &UnknownKindError{Family: "entry", Kind: string(e.Kind)}
	}

	return n.result()
}

// EntrySpec is a typed entry variant.
type EntrySpec interface {
	Kind() EntryKind
	Args() Args
}

// BuildEntry renders a typed entry through NewEntry(spec.Kind()).Build.
func BuildEntry(spec EntrySpec) (Document, error) {
	return NewEntry(spec.Kind()).Build(spec.Args())
}

// Weighting is shared by the singleton entries.
type Weighting struct {
	Weight  *int
	Quality *int
}

func (w Weighting) put(a Args) Args {
	putPtr(a, "weight", w.Weight)
	putPtr(a, "quality", w.Quality)
	return a
}

// AlternativesEntry yields the first child whose conditions pass.
type AlternativesEntry struct {
	Children []Document
}

func (AlternativesEntry) Kind() EntryKind { return EntryAlternatives }
func (e AlternativesEntry) Args() Args {
	a := Args{}
	putSlice(a, "children", e.Children)
	return a
}

// DynamicEntry drops block-entity specific content; Name is "contents" or "self".
type DynamicEntry struct {
	Name string
	Weighting
}

func (DynamicEntry) Kind() EntryKind { return EntryDynamic }
func (e DynamicEntry) Args() Args {
	a := Args{}
	putString(a, "name", e.Name)
	return e.put(a)
}

// EmptyEntry yields nothing when chosen.
type EmptyEntry struct {
	Weighting
}

func (EmptyEntry) Kind() EntryKind { return EntryEmpty }
func (e EmptyEntry) Args() Args { return e.put(Args{}) }

// GroupEntry yields all children.
type GroupEntry struct {
	Children []Document
}

func (GroupEntry) Kind() EntryKind { return EntryGroup }
func (e GroupEntry) Args() Args {
	a := Args{}
	putSlice(a, "children", e.Children)
	return a
}

// ItemEntry yields one item, modified by Functions.
type ItemEntry struct {
	Name       string
	Functions  []Document
	Conditions []Document
	Weighting
}

func (ItemEntry) Kind() EntryKind { return EntryItem }
func (e ItemEntry) Args() Args {
	a := Args{}
	putString(a, "name", e.Name)
	putSlice(a, "functions", e.Functions)
	putSlice(a, "conditions", e.Conditions)
	return e.put(a)
}

// LootTableEntry rolls another table, named by its resource location.
type LootTableEntry struct {
	Name string
	Weighting
}

func (LootTableEntry) Kind() EntryKind { return EntryLootTable }
func (e LootTableEntry) Args() Args {
	a := Args{}
	putString(a, "name", e.Name)
	return e.put(a)
}

// SequenceEntry yields children in order until one fails its conditions.
type SequenceEntry struct {
	Children []Document
}

func (SequenceEntry) Kind() EntryKind { return EntrySequence }
func (e SequenceEntry) Args() Args {
	a := Args{}
	putSlice(a, "children", e.Children)
	return a
}

// TagEntry yields the items of a tag, or one of them when Expand is set.
type TagEntry struct {
	Name   string
	Expand *bool
	Weighting
}

func (TagEntry) Kind() EntryKind { return EntryTag }
func (e TagEntry) Args() Args {
	a := Args{}
	putString(a, "name", e.Name)
	putPtr(a, "expand", e.Expand)
	return e.put(a)
}
