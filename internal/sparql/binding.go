package sparql

import "strconv"

// Value is a single typed term in a result binding.
type Value struct {
	Type  string `json:"type"` // "uri", "literal", "typed-literal"
	Value string `json:"value"`
}

// Binding is one result row: variable name to term. A variable bound by an
// OPTIONAL pattern is simply absent from the map when unmatched.
type Binding map[string]Value

// Str returns the string value of a variable, or "" when unbound.
func (b Binding) Str(name string) string {
	return b[name].Value
}

// StrPtr returns the value of a variable as a pointer, nil when unbound.
func (b Binding) StrPtr(name string) *string {
	v, ok := b[name]
	if !ok || v.Value == "" {
		return nil
	}
	s := v.Value
	return &s
}

// IntPtr parses a variable as an integer, nil when unbound or malformed.
func (b Binding) IntPtr(name string) *int {
	v, ok := b[name]
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v.Value)
	if err != nil {
		return nil
	}
	return &n
}

// FloatPtr parses a variable as a float, nil when unbound or malformed.
func (b Binding) FloatPtr(name string) *float64 {
	v, ok := b[name]
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v.Value, 64)
	if err != nil {
		return nil
	}
	return &f
}

// resultSet is the application/sparql-results+json envelope.
type resultSet struct {
	Results struct {
		Bindings []Binding `json:"bindings"`
	} `json:"results"`
	Boolean *bool `json:"boolean,omitempty"` // ASK responses
}
