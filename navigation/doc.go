// Package navigation keeps stateful navigation containers in step with the
// stack, modal and tab state machines of core.
//
// A handler subscribes to a store, applies every snapshot to its container
// with the smallest change it can find, and registers itself as the
// container's delegate so user-driven navigation (going back, dismissing a
// sheet, picking a tab) is sent back to the store as an action. Actions are
// never sent from inside a delegate callback: they are deferred to the next
// turn of the UI loop through a Scheduler.
//
// Handlers are not safe for concurrent use. Every call, including the
// delegate callbacks and scheduled functions, must happen on the UI loop.
//
// The cache of screens is owned by a handler and is never shared. Containers
// only hold a weak reference to their handler; the handler lives as long as
// the code that created it keeps it.
//
// A forward sync that lands while a reverse-sync action is still waiting for
// delivery is applied as-is. Handlers log a warning when that happens because
// the container and the cache may disagree until the pending action arrives.
package navigation
