package loot

import (
	"maps"
	"slices"
)

// NewPredicate wraps an arbitrary argument bag as a Document without any
// validation. It covers the item, entity, location and damage predicates the
// game defines but this package does not model. Keys are written in sorted
// order so equal bags always serialize identically.
func NewPredicate(args Args) Document {
	var doc Document
	for _, key := range slices.Sorted(maps.Keys(args)) {
		doc = doc.with(key, args[key])
	}
	return doc
}
