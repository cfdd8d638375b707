package containers

import (
	"github.com/jask/navsync/core/modal"
	"github.com/jask/navsync/core/stack"
	"github.com/jask/navsync/core/tab"
	"github.com/jask/navsync/navigation"
)

// The managed containers own the handler that keeps them in step with a
// store. The store and the container delegate only point at the handler
// weakly, so the handler lives exactly as long as its managed container.

// ManagedNavigator is a Navigator driven by its own StackHandler.
type ManagedNavigator[I comparable] struct {
	*Navigator
	handler *navigation.StackHandler[I, Screen]
}

func NewManagedNavigator[I comparable](
	store navigation.Store[stack.State[I], stack.Action[I]],
	factory navigation.ScreenFactory[I, Screen],
	scheduler navigation.Scheduler,
	keys KeyMap,
	opts ...navigation.Option,
) *ManagedNavigator[I] {
	n := &ManagedNavigator[I]{Navigator: NewNavigator(keys)}
	n.handler = navigation.NewStackHandler[I, Screen](store, factory, scheduler, opts...)
	n.handler.Setup(n.Navigator)
	return n
}

func (n *ManagedNavigator[I]) Handler() *navigation.StackHandler[I, Screen] { return n.handler }

// Close stops syncing. The screens stay as they are.
func (n *ManagedNavigator[I]) Close() { n.handler.Close() }

// ManagedTabBar is a TabBar driven by its own TabHandler.
type ManagedTabBar[I comparable] struct {
	*TabBar
	handler *navigation.TabHandler[I, Screen]
}

func NewManagedTabBar[I comparable](
	store navigation.Store[tab.State[I], tab.Action[I]],
	factory navigation.ScreenFactory[I, Screen],
	scheduler navigation.Scheduler,
	keys KeyMap,
	opts ...navigation.Option,
) *ManagedTabBar[I] {
	b := &ManagedTabBar[I]{TabBar: NewTabBar(keys)}
	b.handler = navigation.NewTabHandler[I, Screen](store, factory, scheduler, opts...)
	b.handler.Setup(b.TabBar)
	return b
}

func (b *ManagedTabBar[I]) Handler() *navigation.TabHandler[I, Screen] { return b.handler }

func (b *ManagedTabBar[I]) Close() { b.handler.Close() }

// ManagedModalHost is a ModalHost over base driven by its own ModalHandler.
type ManagedModalHost[I comparable] struct {
	*ModalHost
	handler *navigation.ModalHandler[I, Screen]
}

func NewManagedModalHost[I comparable](
	base Screen,
	store navigation.Store[modal.State[I], modal.Action[I]],
	factory navigation.ScreenFactory[I, Screen],
	scheduler navigation.Scheduler,
	keys KeyMap,
	opts ...navigation.Option,
) *ManagedModalHost[I] {
	h := &ManagedModalHost[I]{ModalHost: NewModalHost(base, keys)}
	h.handler = navigation.NewModalHandler[I, Screen](store, factory, scheduler, opts...)
	h.handler.Setup(h.ModalHost)
	return h
}

func (h *ManagedModalHost[I]) Handler() *navigation.ModalHandler[I, Screen] { return h.handler }

func (h *ManagedModalHost[I]) Close() { h.handler.Close() }
