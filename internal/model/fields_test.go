package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields_InsertionOrder(t *testing.T) {
	f := NewFields()
	f.Set("funding_total", "$5M")
	f.Set("valuation", "$50M")
	f.Set("founded_date", "2019")

	assert.Equal(t, []string{"funding_total", "valuation", "founded_date"}, f.Keys())
	assert.Equal(t, 3, f.Len())
}

func TestFields_DuplicateKeyKeepsPosition(t *testing.T) {
	f := NewFields()
	f.Set("a", "1")
	f.Set("b", "2")
	f.Set("a", "3")

	assert.Equal(t, []string{"a", "b"}, f.Keys())
	v, ok := f.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestFields_JSONRoundTrip(t *testing.T) {
	f := NewFields()
	f.Set("z_last", "value")
	f.Set("a_first", "other")

	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `{"z_last":"value","a_first":"other"}`, string(data))

	var back Fields
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []string{"z_last", "a_first"}, back.Keys())
}

func TestFields_ZeroValueUsable(t *testing.T) {
	var f Fields
	f.Set("k", "v")
	v, ok := f.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
