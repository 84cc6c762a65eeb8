package loot

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_WithLeavesOriginalUntouched(t *testing.T) {
	base := Document{}.with("a", 1)
	extended := base.with("b", 2)
	replaced := extended.with("a", 3)

	assert.Equal(t, []string{"a"}, base.Keys())
	assert.Equal(t, []string{"a", "b"}, extended.Keys())
	assert.Equal(t, []string{"a", "b"}, replaced.Keys(), "replacing a key keeps its position")

	v, _ := extended.Get("a")
	assert.Equal(t, 1, v)
	v, _ = replaced.Get("a")
	assert.Equal(t, 3, v)
}

func TestDocument_MarshalKeepsOrder(t *testing.T) {
	doc := Document{}.with("zeta", 1).with("alpha", "x").with("mid", []int{1, 2})

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":"x","mid":[1,2]}`, string(data))

	empty, err := json.Marshal(Document{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(empty))
}

func TestDocument_UnmarshalJSON(t *testing.T) {
	input := `{"type":"minecraft:item","name":"minecraft:cod","functions":[{"function":"minecraft:set_count","count":{"min":1,"max":2}}],"weight":1.5}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(input), &doc))
	assert.Equal(t, []string{"type", "name", "functions", "weight"}, doc.Keys())

	weight, _ := doc.Get("weight")
	assert.Equal(t, json.Number("1.5"), weight)

	functions, _ := doc.Get("functions")
	require.IsType(t, []any{}, functions)
	fn := functions.([]any)[0]
	require.IsType(t, Document{}, fn)
	count, _ := fn.(Document).Get("count")
	require.IsType(t, Document{}, count)
	assert.Equal(t, []string{"min", "max"}, count.(Document).Keys())

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

func TestDocument_UnmarshalRejectsNonObject(t *testing.T) {
	var doc Document
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &doc))
	assert.Error(t, json.Unmarshal([]byte(`"minecraft:item"`), &doc))

	require.NoError(t, json.Unmarshal([]byte(`null`), &doc))
	assert.Equal(t, 0, doc.Len())
}

func TestDocument_Map(t *testing.T) {
	inner := Document{}.with("function", "minecraft:furnace_smelt")
	doc := Document{}.
		with("functions", []Document{inner}).
		with("predicate", Args{"nested": Document{}.with("k", "v")}).
		with("list", []any{inner})

	assert.Equal(t, map[string]any{
		"functions": []any{map[string]any{"function": "minecraft:furnace_smelt"}},
		"predicate": map[string]any{"nested": map[string]any{"k": "v"}},
		"list":      []any{map[string]any{"function": "minecraft:furnace_smelt"}},
	}, doc.Map())
}

func TestDocument_AllStopsEarly(t *testing.T) {
	doc := Document{}.with("a", 1).with("b", 2).with("c", 3)

	var seen []string
	for k := range doc.All() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestDocument_MarshalYAML(t *testing.T) {
	table := buildDiamondTable(t)

	data, err := yaml.Marshal(table)
	require.NoError(t, err)
	out := string(data)

	typeAt := strings.Index(out, "type:")
	poolsAt := strings.Index(out, "pools:")
	require.GreaterOrEqual(t, typeAt, 0)
	require.Greater(t, poolsAt, typeAt, "type should be written before pools")
	assert.Less(t, strings.Index(out, "rolls:"), strings.Index(out, "entries:"))

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	assert.Equal(t, "minecraft:chest", parsed["type"])
}

func TestPredicate_IsVerbatim(t *testing.T) {
	args := Args{
		"items":        []string{"minecraft:shears"},
		"enchantments": []Args{{"enchantment": "minecraft:silk_touch"}},
		"count":        Args{"min": 1},
	}

	pred := NewPredicate(args)
	assert.Equal(t, []string{"count", "enchantments", "items"}, pred.Keys())
	for k, v := range args {
		got, ok := pred.Get(k)
		require.True(t, ok)
		assert.Equal(t, v, got)
	}

	assert.Equal(t, 0, NewPredicate(nil).Len())
}

func TestDocument_MarshalYAMLKeepsDecodedNumbers(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{"rolls":1,"chance":0.5,"levels":[20,39],"treasure":true}`), &doc))

	data, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"1"`)

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	assert.EqualValues(t, 1, parsed["rolls"])
	assert.IsType(t, float64(0), parsed["chance"])
	assert.InDelta(t, 0.5, parsed["chance"], 1e-9)
	assert.Equal(t, true, parsed["treasure"])

	levels, ok := parsed["levels"].([]any)
	require.True(t, ok)
	require.Len(t, levels, 2)
	assert.EqualValues(t, 39, levels[1])
}
