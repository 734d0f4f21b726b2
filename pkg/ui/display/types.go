// Package display holds the result types shared by the renderers
package display

// Value is a single computed string, such as an extension or a new path
type Value struct {
	Command string `json:"command" yaml:"command"`
	Input   string `json:"input" yaml:"input"`
	Value   string `json:"value" yaml:"value"`
}

// List is an ordered list of paths, such as prefixes or walk results
type List struct {
	Command string   `json:"command" yaml:"command"`
	Input   string   `json:"input" yaml:"input"`
	Items   []string `json:"items" yaml:"items"`
}

// Field is one named entry of a Record
type Field struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Record is an ordered set of named values describing one input
type Record struct {
	Command string  `json:"command" yaml:"command"`
	Input   string  `json:"input" yaml:"input"`
	Fields  []Field `json:"fields" yaml:"fields"`
}

// Add appends a field and returns r
func (r *Record) Add(name, value string) *Record {
	r.Fields = append(r.Fields, Field{Name: name, Value: value})
	return r
}

// Width returns the length of the longest field name
func (r *Record) Width() int {
	width := 0
	for _, f := range r.Fields {
		width = max(width, len(f.Name))
	}
	return width
}
