// Package catalog loads menu definitions: a YAML tree of labels validated
// against an embedded JSON schema. A definition can be declared onto a root
// menu with Build.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

// DefaultTitle labels the root trigger when a definition has no title.
const DefaultTitle = "Menu"

// ErrInvalid is wrapped by every definition that fails validation.
var ErrInvalid = errors.New("invalid menu definition")

// ValidationError lists every schema violation found in a definition.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalid, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

// Definition is a whole menu tree.
type Definition struct {
	Title string `yaml:"title,omitempty" json:"title,omitempty"`
	Items []Node `yaml:"items" json:"items"`
}

// Node is one entry. A node with children becomes a sub menu.
type Node struct {
	Label    string `yaml:"label" json:"label"`
	Disabled bool   `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Message  string `yaml:"message,omitempty" json:"message,omitempty"`
	Items    []Node `yaml:"items,omitempty" json:"items,omitempty"`
}

// IsSub reports whether the node opens a nested menu.
func (n Node) IsSub() bool {
	return len(n.Items) > 0
}

// TriggerLabel returns the title, or DefaultTitle when unset.
func (d Definition) TriggerLabel() string {
	if strings.TrimSpace(d.Title) == "" {
		return DefaultTitle
	}
	return d.Title
}

// Depth returns the number of nested levels, counting the root popover.
func (d Definition) Depth() int {
	return depth(d.Items)
}

func depth(items []Node) int {
	best := 0
	for _, n := range items {
		if d := depth(n.Items); d > best {
			best = d
		}
	}
	if len(items) == 0 {
		return best
	}
	return best + 1
}

// Parse decodes and validates a YAML definition.
func Parse(data []byte) (Definition, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Definition{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if doc == nil {
		return Definition{}, &ValidationError{Problems: []string{"document is empty"}}
	}
	if err := validate(doc); err != nil {
		return Definition{}, err
	}
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return def, nil
}

// Load reads and parses the definition at path.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("read menu file: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

func validate(doc interface{}) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return &ValidationError{Problems: problems}
}

// Default mirrors the classic demo: three items and a "Teste" sub menu,
// nested three levels deep.
func Default() Definition {
	level := func(children []Node) []Node {
		items := []Node{
			{Label: "Sub item 1"},
			{Label: "Sub item 2"},
			{Label: "Sub item 3"},
		}
		if children != nil {
			items = append(items, Node{Label: "Teste", Items: children})
		}
		return items
	}
	return Definition{
		Title: "My Menu",
		Items: level(level(level(nil))),
	}
}
