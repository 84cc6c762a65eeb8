package loot

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_RequiredFieldsOnly(t *testing.T) {
	child, err := NewEntry(EntryEmpty).Build(nil)
	require.NoError(t, err)
	children := []Document{child}

	tests := []struct {
		kind     EntryKind
		args     Args
		expected []string
	}{
		{EntryAlternatives, Args{"children": children}, []string{"type", "children"}},
		{EntryDynamic, Args{"name": "contents"}, []string{"type", "name"}},
		{EntryEmpty, nil, []string{"type"}},
		{EntryGroup, Args{"children": children}, []string{"type", "children"}},
		{EntryItem, Args{"name": "minecraft:diamond"}, []string{"type", "name"}},
		{EntryLootTable, Args{"name": "minecraft:chests/simple_dungeon"}, []string{"type", "name"}},
		{EntrySequence, Args{"children": children}, []string{"type", "children"}},
		{EntryTag, Args{"name": "minecraft:music_discs"}, []string{"type", "name"}},
	}

	require.Len(t, tests, len(EntryKinds))

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			doc, err := NewEntry(tt.kind).Build(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, doc.Keys())
		})
	}
}

func TestEntry_OptionalFields(t *testing.T) {
	fn, err := BuildFunction(FurnaceSmelt{})
	require.NoError(t, err)
	cond, err := BuildCondition(SurvivesExplosion{})
	require.NoError(t, err)

	tests := []struct {
		name string
		kind EntryKind
		args Args
		opt  Args
	}{
		{"item functions", EntryItem, Args{"name": "minecraft:beef"}, Args{"functions": []Document{fn}}},
		{"item conditions", EntryItem, Args{"name": "minecraft:beef"}, Args{"conditions": []Document{cond}}},
		{"item weight", EntryItem, Args{"name": "minecraft:beef"}, Args{"weight": 10, "quality": -1}},
		{"tag expand", EntryTag, Args{"name": "minecraft:music_discs"}, Args{"expand": true}},
		{"empty weight", EntryEmpty, nil, Args{"weight": 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := Args{}
			for k, v := range tt.args {
				args[k] = v
			}
			for k, v := range tt.opt {
				args[k] = v
			}

			doc, err := NewEntry(tt.kind).Build(args)
			require.NoError(t, err)
			for k, v := range tt.opt {
				got, ok := doc.Get(k)
				if assert.True(t, ok, "optional field %q should be present", k) {
					assert.Equal(t, v, got)
				}
			}
		})
	}
}

func TestEntry_ItemWithSetCount(t *testing.T) {
	setCount, err := NewFunction(FunctionSetCount).Build(Args{"count": 3})
	require.NoError(t, err)

	doc, err := NewEntry(EntryItem).Build(Args{
		"name":      "minecraft:diamond",
		"functions": []Document{setCount},
	})
	require.NoError(t, err)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t,
		`{"type":"minecraft:item","name":"minecraft:diamond","functions":[{"function":"minecraft:set_count","count":3}]}`,
		string(data))
}

func TestEntry_CompositesIgnoreWeight(t *testing.T) {
	doc, err := NewEntry(EntryGroup).Build(Args{"children": []Document{}, "weight": 3})
	require.NoError(t, err)
	assert.False(t, doc.Has("weight"))
}

func TestEntry_MissingArgument(t *testing.T) {
	for _, kind := range []EntryKind{EntryAlternatives, EntryDynamic, EntryGroup, EntryItem, EntryLootTable, EntrySequence, EntryTag} {
		t.Run(string(kind), func(t *testing.T) {
			_, err := NewEntry(kind).Build(nil)
			assert.True(t, errors.Is(err, ErrMissingArgument), "got %v", err)
		})
	}
}

func TestEntry_UnknownKind(t *testing.T) {
	_, err := NewEntry("minecraft:slots").Build(nil)
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestEntry_TypedVariantsMatchArgs(t *testing.T) {
	child, err := BuildEntry(EmptyEntry{})
	require.NoError(t, err)
	children := []Document{child}
	fn, err := BuildFunction(SetCount{Count: 2})
	require.NoError(t, err)

	tests := []struct {
		spec EntrySpec
		args Args
	}{
		{AlternativesEntry{Children: children}, Args{"children": children}},
		{DynamicEntry{Name: "contents"}, Args{"name": "contents"}},
		{EmptyEntry{Weighting: Weighting{Weight: Ptr(4)}}, Args{"weight": 4}},
		{GroupEntry{Children: children}, Args{"children": children}},
		{ItemEntry{Name: "minecraft:bone", Functions: []Document{fn}, Weighting: Weighting{Weight: Ptr(2), Quality: Ptr(1)}},
			Args{"name": "minecraft:bone", "functions": []Document{fn}, "weight": 2, "quality": 1}},
		{LootTableEntry{Name: "minecraft:gameplay/fishing/fish"}, Args{"name": "minecraft:gameplay/fishing/fish"}},
		{SequenceEntry{Children: children}, Args{"children": children}},
		{TagEntry{Name: "minecraft:music_discs", Expand: Ptr(true)}, Args{"name": "minecraft:music_discs", "expand": true}},
	}

	require.Len(t, tests, len(EntryKinds))

	for _, tt := range tests {
		t.Run(string(tt.spec.Kind()), func(t *testing.T) {
			typed, err := BuildEntry(tt.spec)
			require.NoError(t, err)
			untyped, err := NewEntry(tt.spec.Kind()).Build(tt.args)
			require.NoError(t, err)
			assert.Equal(t, untyped, typed)
		})
	}
}
