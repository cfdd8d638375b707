// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (box chrome, lists, tab strip, breadcrumb, footer, popup overlay compositor)
//
// Not allowed here:
// - key handling, navigation state, delegates or handlers
package widgets
