package loot

// Args carries the named arguments of one translator call. A key that is present
// counts as supplied, even when its value is nil.
type Args map[string]any

// Range is the {min, max} number provider the schema accepts wherever a count,
// level, limit, damage or roll amount may be either exact or ranged.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// node accumulates one Document in schema order and remembers the first
// missing or invalid argument.
type node struct {
	kind string
	args Args
	doc  Document
	err  error
}

func newNode(discriminator, kind string, args Args) *node {
	return &node{kind: kind, args: args, doc: Document{}.with(discriminator, kind)}
}

// lookup fetches a required argument without writing it.
func (n *node) lookup(field string) (any, bool) {
	v, ok := n.args[field]
	if !ok {
		n.fail(&MissingArgumentError{Kind: n.kind, Field: field})
	}
	return v, ok
}

func (n *node) require(fields ...string) {
	for _, f := range fields {
		if v, ok := n.lookup(f); ok {
			n.set(f, v)
		}
	}
}

func (n *node) optional(fields ...string) {
	for _, f := range fields {
		if v, ok := n.args[f]; ok {
			n.set(f, v)
		}
	}
}

func (n *node) set(key string, value any) {
	n.doc = n.doc.with(key, value)
}

func (n *node) fail(err error) {
	if n.err == nil {
		n.err = err
	}
}

func (n *node) result() (Document, error) {
	if n.err != nil {
		return Document{}, n.err
	}
	return n.doc, nil
}

// Ptr returns a pointer to v, for the optional fields of typed variants.
func Ptr[T any](v T) *T { return &v }

func putString(a Args, key, v string) {
	if v != "" {
		a[key] = v
	}
}

func putAny(a Args, key string, v any) {
	if v != nil {
		a[key] = v
	}
}

func putPtr[T any](a Args, key string, v *T) {
	if v != nil {
		a[key] = *v
	}
}

func putSlice[T any](a Args, key string, v []T) {
	if v != nil {
		a[key] = v
	}
}

func putDocument(a Args, key string, d Document) {
	if d.Len() > 0 {
		a[key] = d
	}
}
