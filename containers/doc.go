// Package containers holds the bubbletea navigation containers driven by the
// handlers in navigation: a screen stack (Navigator), a tab strip (TabBar)
// and an overlay presenter (ModalHost).
//
// Allowed here:
// - container state, key handling and delegate notification
// - the bubbletea-backed Scheduler (Loop)
//
// Not allowed here:
//   - navigation state or reducers; containers only do what they are told and
//     report what the user did
package containers
