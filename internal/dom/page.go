/*
PURPOSE:
  An in-memory page: elements with a value, a text and event listeners.
  Lets the view binder run outside a browser (CLI demo, tests).

ARCHITECTURE INTEGRATION:
  - Implements: internal/view.Document, internal/view.Element
  - Used by: internal/cli (demo, sweep), view tests

ERROR HANDLING:
  - Dispatch on an unknown id returns false.

IMPLEMENTATION RULES:
  - Handlers run synchronously, in registration order.
  - Not safe for concurrent use, like a real DOM.

USAGE:
  page := dom.NewPage(view.PageIDs()...)
  page.Set("headway", "150")
  page.Dispatch("headway", "input")
*/

package dom

import (
	"sort"

	"github.com/daryltucker/headway-lab/internal/view"
)

// Node is one element of a Page.
type Node struct {
	value    string
	text     string
	handlers map[string][]func()
}

// Value returns the node's form value.
func (n *Node) Value() string { return n.value }

// SetValue replaces the form value without firing any event.
func (n *Node) SetValue(v string) { n.value = v }

// Text returns the node's text content.
func (n *Node) Text() string { return n.text }

// SetText replaces the text content.
func (n *Node) SetText(s string) { n.text = s }

// Listeners reports how many handlers are registered for ev.
func (n *Node) Listeners(ev string) int { return len(n.handlers[ev]) }

// On registers handler for event.
func (n *Node) On(event string, handler func()) {
	if n.handlers == nil {
		n.handlers = make(map[string][]func())
	}
	n.handlers[event] = append(n.handlers[event], handler)
}

// Page is a flat id -> node map.
type Page struct {
	nodes map[string]*Node
}

// NewPage creates a page holding an empty element for each id.
func NewPage(ids ...string) *Page {
	p := &Page{nodes: make(map[string]*Node, len(ids))}
	for _, id := range ids {
		p.Add(id)
	}
	return p
}

// Add creates (or returns the existing) element with the given id.
func (p *Page) Add(id string) *Node {
	if n, ok := p.nodes[id]; ok {
		return n
	}
	n := &Node{}
	p.nodes[id] = n
	return n
}

// Remove drops an element from the page.
func (p *Page) Remove(id string) {
	delete(p.nodes, id)
}

// Node returns the concrete element, or nil.
func (p *Page) Node(id string) *Node {
	return p.nodes[id]
}

// ElementByID implements view.Document.
func (p *Page) ElementByID(id string) (view.Element, bool) {
	n, ok := p.nodes[id]
	if !ok {
		return nil, false
	}
	return n, true
}

// IDs returns the element ids in sorted order.
func (p *Page) IDs() []string {
	ids := make([]string, 0, len(p.nodes))
	for id := range p.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Value returns an element's value, or "" when absent.
func (p *Page) Value(id string) string {
	if n, ok := p.nodes[id]; ok {
		return n.value
	}
	return ""
}

// Text returns an element's text, or "" when absent.
func (p *Page) Text(id string) string {
	if n, ok := p.nodes[id]; ok {
		return n.text
	}
	return ""
}

// Set writes an element's value without firing events.
func (p *Page) Set(id, value string) bool {
	n, ok := p.nodes[id]
	if !ok {
		return false
	}
	n.value = value
	return true
}

// Dispatch fires event on the element with the given id.
func (p *Page) Dispatch(id, event string) bool {
	n, ok := p.nodes[id]
	if !ok {
		return false
	}
	for _, h := range n.handlers[event] {
		h()
	}
	return true
}
