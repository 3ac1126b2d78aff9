package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/urlargs/pkg/urlargs"
	"github.com/randalmurphal/urlargs/pkg/urlargs/transform"
)

// Descriptor keys recognized inside a field mapping.
const (
	keyDefault     = "default"
	keyTransform   = "transform"
	keyDescription = "description"
)

// ErrInvalidDocument indicates the document is not a mapping of fields.
var ErrInvalidDocument = errors.New("schema document must be a mapping")

// Document is a loaded schema with its field descriptions.
type Document struct {
	Schema       *urlargs.Schema
	Descriptions map[string]string
}

type loader struct {
	registry *transform.Registry
}

// Option configures loading.
type Option func(*loader)

// WithRegistry sets the registry used to resolve transform names.
//
// Default: transform.Default()
func WithRegistry(r *transform.Registry) Option {
	return func(l *loader) {
		if r != nil {
			l.registry = r
		}
	}
}

func newLoader(opts []Option) *loader {
	l := &loader{registry: transform.Default()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FromFile loads a schema file, auto-detecting format by extension.
// Supported extensions: .yaml, .yml, .json
func FromFile(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data, opts...)
	case ".json":
		return FromJSON(data, opts...)
	default:
		return nil, fmt.Errorf("unsupported schema file extension: %s", ext)
	}
}

// FromYAML parses a YAML schema document.
func FromYAML(data []byte, opts ...Option) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return newLoader(opts).fromNode(&root)
}

// FromJSON parses a JSON schema document, keeping its field order.
func FromJSON(data []byte, opts ...Option) (*Document, error) {
	if !json.Valid(data) {
		return nil, errors.New("parse json: invalid JSON")
	}
	// JSON is valid YAML; the YAML node tree keeps key order.
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return newLoader(opts).fromNode(&root)
}

// FromMap builds a schema from a decoded map. Fields are sorted by name.
func FromMap(m map[string]any, opts ...Option) (*Document, error) {
	l := newLoader(opts)
	doc := newDocument()

	names := lo.Keys(m)
	sort.Strings(names)

	for _, name := range names {
		if err := l.addField(doc, name, m[name]); err != nil {
			return nil, err
		}
	}
	return doc, doc.validate()
}

func newDocument() *Document {
	return &Document{
		Schema:       urlargs.NewSchema(),
		Descriptions: make(map[string]string),
	}
}

func (d *Document) validate() error {
	if err := d.Schema.Validate(); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}

func (l *loader) fromNode(root *yaml.Node) (*Document, error) {
	doc := newDocument()

	node := root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return doc, nil
		}
		node = node.Content[0]
	}
	if node.Kind == 0 {
		return doc, nil
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return doc, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w, got %s", ErrInvalidDocument, kindName(node.Kind))
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var value any
		if err := valueNode.Decode(&value); err != nil {
			return nil, fmt.Errorf("field %q (line %d): %w", keyNode.Value, valueNode.Line, err)
		}
		if err := l.addField(doc, keyNode.Value, value); err != nil {
			return nil, fmt.Errorf("field %q (line %d): %w", keyNode.Value, valueNode.Line, err)
		}
	}
	return doc, doc.validate()
}

// addField adds one field. Plain values go through urlargs.Infer, recording
// unsupported ones on the schema; mappings are read as descriptors.
func (l *loader) addField(doc *Document, name string, value any) error {
	m, ok := value.(map[string]any)
	if !ok {
		doc.Schema.AddValue(name, value)
		return nil
	}
	if !isDescriptor(m) {
		doc.Schema.AddValue(name, value)
		return nil
	}

	if desc, ok := m[keyDescription]; ok {
		s, ok := desc.(string)
		if !ok {
			return fmt.Errorf("description must be a string, got %T", desc)
		}
		doc.Descriptions[name] = s
	}

	def, hasDefault := m[keyDefault]
	rawTransform, hasTransform := m[keyTransform]
	switch {
	case hasTransform:
		tname, ok := rawTransform.(string)
		if !ok {
			return fmt.Errorf("transform must be a name, got %T", rawTransform)
		}
		spec, err := l.registry.Spec(tname)
		if err != nil {
			return err
		}
		doc.Schema.Add(name, spec)
	case hasDefault:
		doc.Schema.AddValue(name, def)
	default:
		doc.Schema.Add(name, urlargs.Absent())
	}
	return nil
}

// isDescriptor reports whether m is a field descriptor: a non-empty mapping
// using only descriptor keys, not both default and transform.
func isDescriptor(m map[string]any) bool {
	if len(m) == 0 {
		return false
	}
	for k := range m {
		switch k {
		case keyDefault, keyTransform, keyDescription:
		default:
			return false
		}
	}
	_, hasDefault := m[keyDefault]
	_, hasTransform := m[keyTransform]
	return !(hasDefault && hasTransform)
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("kind %d", k)
	}
}
