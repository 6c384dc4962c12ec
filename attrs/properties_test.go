package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertiesMergeOverwrites(t *testing.T) {
	base := NewProperties()
	base.Set("id", "old")
	base.Set("data-x", "1")

	base.Merge(Parse("#new .c"))

	assert.Equal(t, []Property{{"id", "new"}, {"data-x", "1"}, {"class", "c"}}, base.All())
}

func TestPropertiesIgnoresEmptyKey(t *testing.T) {
	p := NewProperties()
	p.Set("", "x")
	p.AddClass("")
	assert.Equal(t, 0, p.Len())
}

func TestPropertiesZeroValue(t *testing.T) {
	var p Properties
	p.Set("a", "b")
	v, ok := p.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	var nilProps *Properties
	assert.Equal(t, 0, nilProps.Len())
	assert.Nil(t, nilProps.All())
}

func TestPropertiesString(t *testing.T) {
	assert.Equal(t, `id="x" class="a b"`, Parse("#x .a .b").String())
}
