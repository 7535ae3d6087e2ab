// Package composition reads and writes scene composition documents: the
// JSON files an external editor produces. Each node records its kind,
// catalog type, parent and transform; loading resolves types through the
// registry and builds a live scene tree.
package composition

import (
	"encoding/json"
	"fmt"
	"os"
)

// RootParent is the parent value marking root-level environments.
const RootParent = "root"

// Node kinds used in documents. These match registry kinds.
const (
	KindEntity      = "entity"
	KindEnvironment = "environment"
)

// Transform is the spatial placement of a node.
type Transform struct {
	Position [2]float64 `json:"position"`
}

// Node is one serialized scene node.
type Node struct {
	ID        string         `json:"id"`
	Kind      string         `json:"kind"`
	Type      string         `json:"type"`
	Parent    string         `json:"parent"`
	Transform Transform      `json:"transform"`
	State     map[string]any `json:"state,omitempty"`
}

// Document is a complete composition: a named, ordered list of nodes.
// Sibling order in the document is the scene's insertion order.
type Document struct {
	Name  string `json:"name,omitempty"`
	Nodes []Node `json:"nodes"`
}

// Decode parses a composition document from JSON.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("composition: cannot parse document: %w", err)
	}
	return doc, nil
}

// Encode renders a document as indented JSON.
func Encode(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("composition: cannot encode document: %w", err)
	}
	return append(data, '\n'), nil
}

// LoadFile reads and parses a composition document from disk.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("composition: cannot read %s: %w", path, err)
	}
	doc, err := Decode(data)
	if err != nil {
		return Document{}, fmt.Errorf("composition: %s: %w", path, err)
	}
	return doc, nil
}

// WriteFile encodes and writes a document to disk.
func WriteFile(path string, doc Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("composition: cannot write %s: %w", path, err)
	}
	return nil
}
