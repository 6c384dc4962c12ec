package attrs

import (
	"fmt"
	"strings"
)

// Well-known property keys.
const (
	KeyID    = "id"
	KeyClass = "class"
)

// Property is a single key/value pair from an annotation.
type Property struct {
	Key   string
	Value string
}

// Properties is an ordered set of properties. Keys are unique and keep the
// position of their first insertion; setting an existing key replaces its value.
type Properties struct {
	keys   []string
	values map[string]string
}

// NewProperties returns an empty property set.
func NewProperties() *Properties {
	return &Properties{values: make(map[string]string)}
}

// Set assigns value to key. Empty keys are ignored.
func (p *Properties) Set(key, value string) {
	if key == "" {
		return
	}
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// AddClass appends name to the class property.
func (p *Properties) AddClass(name string) {
	if name == "" {
		return
	}
	if existing, ok := p.Get(KeyClass); ok && existing != "" {
		p.Set(KeyClass, existing+" "+name)
		return
	}
	p.Set(KeyClass, name)
}

// Get looks up a property by key. Returns the value and true if found.
func (p *Properties) Get(key string) (string, bool) {
	if p == nil || p.values == nil {
		return "", false
	}
	v, ok := p.values[key]
	return v, ok
}

// ID returns the id property, or "" when unset.
func (p *Properties) ID() string {
	v, _ := p.Get(KeyID)
	return v
}

// Classes returns the accumulated class names in encounter order.
func (p *Properties) Classes() []string {
	v, _ := p.Get(KeyClass)
	return strings.Fields(v)
}

// Len returns the number of distinct keys.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the keys in insertion order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// All returns every property in insertion order.
func (p *Properties) All() []Property {
	if p == nil {
		return nil
	}
	out := make([]Property, 0, len(p.keys))
	for _, k := range p.keys {
		out = append(out, Property{Key: k, Value: p.values[k]})
	}
	return out
}

// Merge copies every property of other into p. Keys present in both take
// the value from other.
func (p *Properties) Merge(other *Properties) {
	for _, prop := range other.All() {
		p.Set(prop.Key, prop.Value)
	}
}

// Map returns the properties as a plain map.
func (p *Properties) Map() map[string]string {
	out := make(map[string]string, p.Len())
	for _, prop := range p.All() {
		out[prop.Key] = prop.Value
	}
	return out
}

// String renders the set as space separated key="value" pairs.
func (p *Properties) String() string {
	parts := make([]string, 0, p.Len())
	for _, prop := range p.All() {
		parts = append(parts, fmt.Sprintf("%s=%q", prop.Key, prop.Value))
	}
	return strings.Join(parts, " ")
}
