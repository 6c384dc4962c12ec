package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShorthands(t *testing.T) {
	tests := []struct {
		input string
		want  []Property
	}{
		{"with=attrs", []Property{{"with", "attrs"}}},
		{".green", []Property{{"class", "green"}}},
		{"#section2", []Property{{"id", "section2"}}},
		{"attr=lorem .class #id", []Property{{"attr", "lorem"}, {"class", "class"}, {"id", "id"}}},
		{`attr="lorem ipsum"`, []Property{{"attr", "lorem ipsum"}}},
		{`key='single quoted'`, []Property{{"key", "single quoted"}}},
		{".c1 .c2", []Property{{"class", "c1 c2"}}},
		{"1", []Property{{"1", ""}}},
		{"key=", []Property{{"key", ""}}},
		{`class="" height="100" width=""`, []Property{{"class", ""}, {"height", "100"}, {"width", ""}}},
		{"  .a\t.b  ", []Property{{"class", "a b"}}},
		{".a.b#c", []Property{{"class", "a b"}, {"id", "c"}}},
	}
	for _, tt := range tests {
		props := Parse(tt.input)
		assert.Equal(t, tt.want, props.All(), "input: %q", tt.input)
	}
}

func TestParseLastIDWins(t *testing.T) {
	props := Parse("#first #second")
	assert.Equal(t, "second", props.ID())
	assert.Equal(t, 1, props.Len())
}

func TestParseClassesKeepDuplicates(t *testing.T) {
	props := Parse(".a .b .a")
	assert.Equal(t, []string{"a", "b", "a"}, props.Classes())
	v, ok := props.Get("class")
	require.True(t, ok)
	assert.Equal(t, "a b a", v)
}

func TestParseLaterKeysOverwrite(t *testing.T) {
	props := Parse("k=1 other=x k=2")
	assert.Equal(t, []string{"k", "other"}, props.Keys())
	v, _ := props.Get("k")
	assert.Equal(t, "2", v)
}

func TestParseSkipsEmptyNames(t *testing.T) {
	tests := []string{"", "   ", ".", "#", "=value", ". # =x"}
	for _, input := range tests {
		props := Parse(input)
		assert.Equal(t, 0, props.Len(), "input: %q", input)
	}
}

func TestParseUnterminatedQuoteRunsToEnd(t *testing.T) {
	props := Parse(`title="never closed .x`)
	assert.Equal(t, []Property{{"title", "never closed .x"}}, props.All())
}

func TestParseKeysAreCaseSensitive(t *testing.T) {
	props := Parse("Key=a key=b")
	assert.Equal(t, map[string]string{"Key": "a", "key": "b"}, props.Map())
}

func TestParseNoEscapesInsideQuotes(t *testing.T) {
	props := Parse(`path="C:\dir\file"`)
	v, _ := props.Get("path")
	assert.Equal(t, `C:\dir\file`, v)
}
