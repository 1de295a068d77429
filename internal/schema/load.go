package schema

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotStructured is returned when a schema document is not a mapping of
// field names to rule lists.
var ErrNotStructured = errors.New("schema: document must be a mapping of field names to rule lists")

// UnmarshalYAML accepts both the long form ({rule, message}) and a bare tag.
func (r *Rule) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		r.Tag = strings.TrimSpace(node.Value)
		return nil
	}
	type plain Rule
	var decoded plain
	if err := node.Decode(&decoded); err != nil {
		return err
	}
	*r = Rule(decoded)
	return nil
}

type fieldNode struct {
	Control string `yaml:"control"`
	Rules   []Rule `yaml:"rules"`
}

// Parse decodes a YAML rule-set, keeping fields in document order. A field
// maps either to its rule list or to a mapping naming the control as well:
//
//	email:
//	  - rule: required
//	    message: Email is required
//	  - email
//	terms:
//	  control: checkbox
//	  rules:
//	    - rule: required
//	      message: You must accept the terms
func Parse(raw []byte) (*Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("schema: decode: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrNotStructured
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotStructured
	}
	fields := make([]Field, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		name := strings.TrimSpace(key.Value)
		if name == "" {
			return nil, fmt.Errorf("schema: empty field name at line %d", key.Line)
		}
		var (
			rules   []Rule
			control string
		)
		switch value.Kind {
		case yaml.SequenceNode:
			if err := value.Decode(&rules); err != nil {
				return nil, fmt.Errorf("schema: field %q: %w", name, err)
			}
		case yaml.MappingNode:
			var fn fieldNode
			if err := value.Decode(&fn); err != nil {
				return nil, fmt.Errorf("schema: field %q: %w", name, err)
			}
			if !knownControl(fn.Control) {
				return nil, fmt.Errorf("schema: field %q: unknown control %q", name, fn.Control)
			}
			rules, control = fn.Rules, fn.Control
		case yaml.ScalarNode:
			if value.Tag != "!!null" {
				return nil, fmt.Errorf("schema: field %q: %w", name, ErrNotStructured)
			}
		default:
			return nil, fmt.Errorf("schema: field %q: %w", name, ErrNotStructured)
		}
		fields = append(fields, Field{Name: name, Control: control, Rules: rules})
	}
	s := New(fields...)
	zero := s.Zero()
	for _, f := range s.fields {
		for _, rule := range f.Rules {
			if strings.TrimSpace(rule.Tag) == "" {
				continue
			}
			if err := s.checkTag(rule.Tag, zero[f.Name]); err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
		}
	}
	return s, nil
}

func knownControl(control string) bool {
	switch control {
	case "", ControlText, ControlPassword, ControlCheckbox:
		return true
	}
	return false
}

// Load reads and parses a schema file.
func Load(path string) (*Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return Parse(raw)
}
