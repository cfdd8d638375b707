package navigation

import "weak"

// The delegates below are what handlers hand to their containers. They only
// point back at the handler weakly, so a container never keeps a handler
// alive.

type stackDelegate[I, V comparable] struct {
	handler weak.Pointer[StackHandler[I, V]]
}

func (d *stackDelegate[I, V]) DidShow(t Transition[V]) {
	if h := d.handler.Value(); h != nil {
		h.didShow(t)
	}
}

type tabDelegate[I, V comparable] struct {
	handler weak.Pointer[TabHandler[I, V]]
}

func (d *tabDelegate[I, V]) DidSelect(screen V) {
	if h := d.handler.Value(); h != nil {
		h.didSelect(screen)
	}
}

type dismissDelegate[I, V comparable] struct {
	handler weak.Pointer[ModalHandler[I, V]]
}

func (d *dismissDelegate[I, V]) DidDismiss(screen V) {
	if h := d.handler.Value(); h != nil {
		h.didDismiss(screen)
	}
}
