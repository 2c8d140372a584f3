package config

import (
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSelectorUnmarshalYAML(t *testing.T) {
	var selectors []Selector
	require.NoError(t, yaml.Unmarshal([]byte(`[2, X, "3"]`), &selectors))
	require.Len(t, selectors, 3)

	assert.True(t, selectors[0].IsIndex())
	assert.Equal(t, 2, selectors[0].Index())

	assert.False(t, selectors[1].IsIndex())
	assert.Equal(t, "X", selectors[1].Label())

	// A quoted number is a label, same as any other string
	assert.False(t, selectors[2].IsIndex())
	assert.Equal(t, "3", selectors[2].Label())
}

func TestSelectorUnmarshalYAMLRejectsNonScalar(t *testing.T) {
	var selectors []Selector
	err := yaml.Unmarshal([]byte(`[{a: 1}]`), &selectors)
	assert.Error(t, err)
}

func TestSelectorUnmarshalJSON(t *testing.T) {
	var selectors []Selector
	require.NoError(t, gojson.Unmarshal([]byte(`[2, "Y"]`), &selectors))
	require.Len(t, selectors, 2)

	assert.True(t, selectors[0].IsIndex())
	assert.Equal(t, 2, selectors[0].Index())
	assert.Equal(t, "Y", selectors[1].Label())
}

func TestSelectorRoundTrip(t *testing.T) {
	selectors := []Selector{Index(2), Label("Y")}

	yamlData, err := yaml.Marshal(selectors)
	require.NoError(t, err)
	var fromYAML []Selector
	require.NoError(t, yaml.Unmarshal(yamlData, &fromYAML))
	assert.Equal(t, selectors, fromYAML)

	jsonData, err := gojson.Marshal(selectors)
	require.NoError(t, err)
	assert.Equal(t, `[2,"Y"]`, string(jsonData))
	var fromJSON []Selector
	require.NoError(t, gojson.Unmarshal(jsonData, &fromJSON))
	assert.Equal(t, selectors, fromJSON)
}

func TestSelectorString(t *testing.T) {
	assert.Equal(t, "2", Index(2).String())
	assert.Equal(t, "Y", Label("Y").String())
}

func TestRowLimitUnmarshalYAML(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		bounded bool
		value   int
		wantErr bool
	}{
		{name: "integer", input: `10`, bounded: true, value: 10},
		{name: "all", input: `all`, bounded: false},
		{name: "unbounded uppercase", input: `UNBOUNDED`, bounded: false},
		{name: "zero", input: `0`, wantErr: true},
		{name: "negative", input: `-3`, wantErr: true},
		{name: "bad string", input: `nope`, wantErr: true},
		{name: "non-scalar", input: `[1, 2]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var limit RowLimit
			err := yaml.Unmarshal([]byte(tt.input), &limit)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.bounded, limit.Bounded())
			if tt.bounded {
				assert.Equal(t, tt.value, limit.Value())
			}
		})
	}
}

func TestRowLimitUnmarshalJSON(t *testing.T) {
	var limit RowLimit
	require.NoError(t, gojson.Unmarshal([]byte(`5`), &limit))
	assert.True(t, limit.Bounded())
	assert.Equal(t, 5, limit.Value())

	require.NoError(t, gojson.Unmarshal([]byte(`"all"`), &limit))
	assert.False(t, limit.Bounded())

	assert.Error(t, gojson.Unmarshal([]byte(`"sometimes"`), &limit))
	assert.Error(t, gojson.Unmarshal([]byte(`0`), &limit))
}

func TestRowLimitReached(t *testing.T) {
	assert.False(t, Unbounded().Reached(1<<30))
	assert.False(t, Limit(3).Reached(2))
	assert.True(t, Limit(3).Reached(3))
	assert.True(t, Limit(3).Reached(4))
}

func TestRowLimitString(t *testing.T) {
	assert.Equal(t, "all", Unbounded().String())
	assert.Equal(t, "7", Limit(7).String())
}
