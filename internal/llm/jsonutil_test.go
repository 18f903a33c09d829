package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n[1,2]\n```", `[1,2]`},
		{"surrounding space", "  \n```json{\"a\":1}```  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.input))
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type doc struct {
		Name string `json:"name"`
	}

	t.Run("direct", func(t *testing.T) {
		var d doc
		require.NoError(t, DecodeJSON(`{"name":"x"}`, &d))
		assert.Equal(t, "x", d.Name)
	})

	t.Run("fenced", func(t *testing.T) {
		var d doc
		require.NoError(t, DecodeJSON("```json\n{\"name\":\"y\"}\n```", &d))
		assert.Equal(t, "y", d.Name)
	})

	t.Run("prose around object", func(t *testing.T) {
		var d doc
		require.NoError(t, DecodeJSON(`Here you go: {"name":"z"} Hope that helps!`, &d))
		assert.Equal(t, "z", d.Name)
	})

	t.Run("prose around array", func(t *testing.T) {
		var ds []doc
		require.NoError(t, DecodeJSON(`Sure. [{"name":"a"},{"name":"b"}] done`, &ds))
		require.Len(t, ds, 2)
		assert.Equal(t, "b", ds[1].Name)
	})

	t.Run("brackets inside strings", func(t *testing.T) {
		var d doc
		require.NoError(t, DecodeJSON(`note {"name":"a } \" ] b"} trailing }`, &d))
		assert.Equal(t, `a } " ] b`, d.Name)
	})

	t.Run("no json", func(t *testing.T) {
		var d doc
		assert.Error(t, DecodeJSON("I cannot help with that.", &d))
	})

	t.Run("unterminated", func(t *testing.T) {
		var d doc
		assert.Error(t, DecodeJSON(`{"name":"a"`, &d))
	})

	t.Run("wrong shape", func(t *testing.T) {
		var d doc
		assert.Error(t, DecodeJSON(`text [1,2] text`, &d))
	})
}
