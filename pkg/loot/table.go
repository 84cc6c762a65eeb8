package loot

// Table is a complete loot table. Pools is required; Functions and Conditions
// are written only when non-nil.
type Table struct {
	Kind       TableKind
	Pools      []Document
	Functions  []Document
	Conditions []Document
}

// Build renders the table. Pools is required; an empty, non-nil slice is allowed.
func (t Table) Build() (Document, error) {
	if !t.Kind.Valid() {
		return Document{}, &UnknownKindError{Family: "table", Kind: string(t.Kind)}
	}
	if t.Pools == nil {
		return Document{}, &MissingArgumentError{Kind: string(t.Kind), Field: "pools"}
	}

	doc := Document{}.
		with("type", string(t.Kind)).
		with("pools", t.Pools)
	if t.Functions != nil {
		doc = doc.with("functions", t.Functions)
	}
	if t.Conditions != nil {
		doc = doc.with("conditions", t.Conditions)
	}
	return doc, nil
}

// Pool is a group of entries rolled together Rolls times. Rolls is an exact
// number, a Range or any other number provider mapping and is not inspected.
type Pool struct {
	Rolls      any
	Name       string
	Entries    []Document
	Functions  []Document
	Conditions []Document
}

// Build renders the pool. Rolls, Name and Entries are required.
func (p Pool) Build() (Document, error) {
	const kind = "pool"
	if p.Rolls == nil {
		return Document{}, &MissingArgumentError{Kind: kind, Field: "rolls"}
	}
	if p.Name == "" {
		return Document{}, &MissingArgumentError{Kind: kind, Field: "name"}
	}
	if p.Entries == nil {
		return Document{}, &MissingArgumentError{Kind: kind, Field: "entries"}
	}

	doc := Document{}.
		with("rolls", p.Rolls).
		with("name", p.Name).
		with("entries", p.Entries)
	if p.Functions != nil {
		doc = doc.with("functions", p.Functions)
	}
	if p.Conditions != nil {
		doc = doc.with("conditions", p.Conditions)
	}
	return doc, nil
}
