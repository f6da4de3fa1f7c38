// Package entity defines data models for the Paybox payment request service.
package entity

import "strings"

// Field is a single gateway parameter as transmitted over the wire.
type Field struct {
	Name  string `json:"name" bson:"name"`
	Value string `json:"value" bson:"value"`
}

// Parameters is an ordered mapping of gateway field names to values.
// Insertion order is the transmission order and the order the signature is
// computed over. Setting an existing key overwrites its value in place and
// keeps the original position.
type Parameters struct {
	keys   []string
	values map[string]string
}

func NewParameters() *Parameters {
	return &Parameters{
		values: make(map[string]string),
	}
}

func (p *Parameters) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Append concatenates suffix onto the current value of key, creating the
// key when it is not present yet.
func (p *Parameters) Append(key, suffix string) {
	p.Set(key, p.values[key]+suffix)
}

func (p *Parameters) Get(key string) string {
	return p.values[key]
}

func (p *Parameters) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

func (p *Parameters) Len() int {
	return len(p.keys)
}

func (p *Parameters) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Fields returns the mapping as an ordered slice, ready for persistence or
// form rendering.
func (p *Parameters) Fields() []Field {
	fields := make([]Field, 0, len(p.keys))
	for _, key := range p.keys {
		fields = append(fields, Field{Name: key, Value: p.values[key]})
	}
	return fields
}

// Signable returns the byte string the signature is computed over:
// key=value pairs joined by & in insertion order.
func (p *Parameters) Signable() string {
	pairs := make([]string, 0, len(p.keys))
	for _, key := range p.keys {
		pairs = append(pairs, key+"="+p.values[key])
	}
	return strings.Join(pairs, "&")
}

func (p *Parameters) Clone() *Parameters {
	clone := NewParameters()
	for _, key := range p.keys {
		clone.Set(key, p.values[key])
	}
	return clone
}
