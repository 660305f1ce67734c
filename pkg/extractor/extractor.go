// Package extractor reduces a Figma file tree to a flat, serializable
// context suitable for embedding in a model prompt. Extraction copies
// values out of the file response; the returned context holds no references
// back into it, so the file tree can be discarded afterwards.
package extractor

import (
	"sort"
	"strings"

	"github.com/hellenic-development/figma-suggest/pkg/figma"
)

// DefaultMaxTextLength bounds how much text content a single layer
// contributes to the prompt.
const DefaultMaxTextLength = 200

// Node types the walk recognizes explicitly. Anything else falls through to
// the common-fields branch and is still recorded.
const (
	typeFrame        = "FRAME"
	typeGroup        = "GROUP"
	typeText         = "TEXT"
	typeComponent    = "COMPONENT"
	typeComponentSet = "COMPONENT_SET"
	typeInstance     = "INSTANCE"
)

// DesignContext is the flat design summary built by a single depth-first
// traversal of a Figma file. All slices and maps are initialized, never nil,
// so serializing and re-parsing the context is lossless.
type DesignContext struct {
	PageNames     []string              `json:"pages"`
	FrameNames    []string              `json:"frames"`
	Layers        []Layer               `json:"layers"`
	Components    map[string]Definition `json:"components"`
	ComponentSets map[string]Definition `json:"componentSets"`
	Styles        map[string]StyleInfo  `json:"styles"`
	References    map[string][]string   `json:"references"`
	Annotations   []string              `json:"annotations"`
}

// Layer describes one node flattened out of the design hierarchy.
type Layer struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
	Text string `json:"text,omitempty"`
}

// Definition is a component or component-set definition from the file's
// global tables.
type Definition struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// StyleInfo is a published style definition. Kind is one of fill, text,
// grid, or effect.
type StyleInfo struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// Options configures extraction.
type Options struct {
	// MaxTextLength truncates layer text content. Zero means DefaultMaxTextLength.
	MaxTextLength int
}

// NewDesignContext returns an empty context with every field initialized.
func NewDesignContext() *DesignContext {
	return &DesignContext{
		PageNames:     []string{},
		FrameNames:    []string{},
		Layers:        []Layer{},
		Components:    map[string]Definition{},
		ComponentSets: map[string]Definition{},
		Styles:        map[string]StyleInfo{},
		References:    map[string][]string{},
		Annotations:   []string{},
	}
}

// FrameNames collects the names of top-level frames from a Figma file: only
// direct FRAME children of each page count, in document order.
func FrameNames(file *figma.FileResponse) []string {
	frames := []string{}
	for _, page := range file.Document.Children {
		for _, node := range page.Children {
			if node.Type == typeFrame && node.Name != "" {
				frames = append(frames, node.Name)
			}
		}
	}
	return frames
}

// Extract walks every page and node of a Figma file once and builds the full
// DesignContext: page and frame names, the flattened layer list, component
// and style definitions from the global tables, and the layer-to-definition
// reference map. Malformed nodes are skipped, never fatal.
func Extract(file *figma.FileResponse, opts Options) *DesignContext {
	maxText := opts.MaxTextLength
	if maxText <= 0 {
		maxText = DefaultMaxTextLength
	}

	dc := NewDesignContext()

	for _, page := range file.Document.Children {
		if page.Name != "" {
			dc.PageNames = append(dc.PageNames, page.Name)
		}
		for i := range page.Children {
			child := &page.Children[i]
			if child.Type == typeFrame && child.Name != "" {
				dc.FrameNames = append(dc.FrameNames, child.Name)
			}
			flattenNode(child, maxText, dc)
		}
	}

	// Definitions come from the file's global tables, not from the walk, so
	// unreferenced components and styles still appear.
	for id, comp := range file.Components {
		dc.Components[id] = Definition{Name: comp.Name, Description: comp.Description}
	}
	for id, set := range file.ComponentSets {
		dc.ComponentSets[id] = Definition{Name: set.Name, Description: set.Description}
	}
	for id, style := range file.Styles {
		dc.Styles[id] = StyleInfo{Name: style.Name, Kind: styleKind(style.StyleType)}
	}

	return dc
}

// flattenNode appends one layer entry for the node and recurses into its
// children. Nodes with no usable identity are skipped but their subtrees are
// still visited.
func flattenNode(node *figma.Node, maxText int, dc *DesignContext) {
	if node.Type != "" || node.Name != "" {
		dc.Layers = append(dc.Layers, layerFromNode(node, maxText))
		if refs := nodeReferences(node); len(refs) > 0 && node.ID != "" {
			dc.References[node.ID] = refs
		}
	}

	for i := range node.Children {
		flattenNode(&node.Children[i], maxText, dc)
	}
}

// layerFromNode copies the per-kind fields of a node into a Layer. The
// default branch copies only the common fields so unrecognized node types
// degrade gracefully instead of failing the walk.
func layerFromNode(node *figma.Node, maxText int) Layer {
	layer := Layer{
		ID:   node.ID,
		Type: node.Type,
		Name: node.Name,
	}

	switch node.Type {
	case typeText:
		layer.Text = truncate(node.Characters, maxText)
	case typeFrame, typeGroup, typeComponent, typeComponentSet, typeInstance:
		// Structural kinds contribute their name and type only.
	default:
		// Unknown kind: common fields already copied.
	}

	return layer
}

// nodeReferences collects the component and style IDs a node points at.
// Style slots are sorted so the output is deterministic.
func nodeReferences(node *figma.Node) []string {
	var refs []string

	if node.ComponentID != "" {
		refs = append(refs, node.ComponentID)
	}

	if len(node.Styles) > 0 {
		slots := make([]string, 0, len(node.Styles))
		for slot := range node.Styles {
			slots = append(slots, slot)
		}
		sort.Strings(slots)
		for _, slot := range slots {
			if id := node.Styles[slot]; id != "" {
				refs = append(refs, id)
			}
		}
	}

	return refs
}

// CommentAnnotations flattens file comments into a list of annotation
// strings, preserving API order and dropping empty messages. Reply threading
// is intentionally not preserved.
func CommentAnnotations(comments []figma.Comment) []string {
	annotations := []string{}
	for _, c := range comments {
		msg := strings.TrimSpace(c.Message)
		if msg != "" {
			annotations = append(annotations, msg)
		}
	}
	return annotations
}

// styleKind maps Figma's style type constants (FILL, TEXT, GRID, EFFECT) to
// the lowercase kinds used in the context.
func styleKind(styleType string) string {
	return strings.ToLower(styleType)
}

// truncate bounds s to max runes. The result is always a prefix of s.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
