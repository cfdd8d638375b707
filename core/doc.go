// Package core contains the state primitives shared by every navigation kind.
//
// Allowed here:
// - the ordered item->screen map and the reorder utility built on it
// - the Store state owner and scoped views of it
//
// Not allowed here:
// - the stack/modal/tab reducers (core/stack, core/modal, core/tab)
// - anything that touches a container or a terminal
package core
