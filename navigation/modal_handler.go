package navigation

import (
	"time"
	"weak"

	"github.com/rs/zerolog"

	"github.com/jask/navsync/core/modal"
)

// ModalHandler applies modal.State snapshots to a ModalPresenter and turns
// user dismissals into modal.DismissItem actions.
type ModalHandler[I, V comparable] struct {
	store     Store[modal.State[I], modal.Action[I]]
	factory   ScreenFactory[I, V]
	scheduler Scheduler
	opts      options
	log       zerolog.Logger

	presenter ModalPresenter[V]
	delegate  *dismissDelegate[I, V]
	tracked   *presentation[I, V]
	waiting   *waitingPresentation[I, V]
	pending   int
	cancel    func()
}

type presentation[I, V comparable] struct {
	item   modal.StyledItem[I]
	screen V
}

// waitingPresentation is a presentation parked until the presenter attaches.
type waitingPresentation[I, V comparable] struct {
	presentation[I, V]
	animated bool
	waited   time.Duration
}

func NewModalHandler[I, V comparable](
	store Store[modal.State[I], modal.Action[I]],
	factory ScreenFactory[I, V],
	scheduler Scheduler,
	opts ...Option,
) *ModalHandler[I, V] {
	o, log := buildOptions(KindModal, opts)
	h := &ModalHandler[I, V]{
		store:     store,
		factory:   factory,
		scheduler: scheduler,
		opts:      o,
		log:       log,
	}
	h.delegate = &dismissDelegate[I, V]{handler: weak.Make(h)}
	return h
}

// Setup binds the handler to presenter and starts observing the store.
func (h *ModalHandler[I, V]) Setup(presenter ModalPresenter[V]) {
	h.Close()
	h.presenter = presenter
	presenter.SetDismissDelegate(h.delegate)
	// The store must not keep the handler alive.
	wp := weak.Make(h)
	h.cancel = h.store.Subscribe(func(state modal.State[I]) {
		if h := wp.Value(); h != nil {
			h.checkDelegate()
			h.Sync(state, h.opts.env)
		}
	})
}

func (h *ModalHandler[I, V]) Close() {
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
}

// Tracked returns the item the handler has presented, if any.
func (h *ModalHandler[I, V]) Tracked() (modal.StyledItem[I], V, bool) {
	if h.tracked == nil {
		var zero V
		return modal.StyledItem[I]{}, zero, false
	}
	return h.tracked.item, h.tracked.screen, true
}

// Waiting reports whether a presentation is parked until the presenter
// attaches.
func (h *ModalHandler[I, V]) Waiting() bool {
	return h.waiting != nil
}

// Sync applies state to the presenter.
//
//	tracked  state     result
//	none     none      nothing
//	A        none      dismiss A
//	none     B         create and present B
//	A        A'        same item, new style: restyle A in place
//	A        B         dismiss A, create and present B
func (h *ModalHandler[I, V]) Sync(state modal.State[I], env Env) {
	if h.presenter == nil {
		return
	}
	next := state.StyledItem
	animated := env.AnimationsEnabled && state.AnimationsEnabled

	if w := h.waiting; w != nil {
		switch {
		case next != nil && *next == w.item:
			return
		case next != nil && next.Item == w.item.Item:
			w.item = *next
			w.animated = animated
			return
		default:
			h.waiting = nil
		}
	}

	var current *modal.StyledItem[I]
	if h.tracked != nil {
		current = &h.tracked.item
	}
	if modal.Equal(current, next) {
		return
	}
	if h.pending > 0 {
		h.log.Warn().Int("pending", h.pending).Msg("forward sync while a dismissal is still pending")
	}

	switch {
	case next == nil:
		h.dismiss(animated)
	case current == nil:
		h.present(h.create(next.Item), *next, animated)
	case current.Item == next.Item:
		h.restyle(*next, animated)
	default:
		h.dismiss(animated)
		h.present(h.create(next.Item), *next, animated)
	}
}

func (h *ModalHandler[I, V]) create(item I) V {
	h.opts.observer.ScreenCreated(KindModal)
	return h.factory.CreateScreen(item)
}

func (h *ModalHandler[I, V]) restyle(item modal.StyledItem[I], animated bool) {
	screen := h.tracked.screen
	if r, ok := h.presenter.(Restyler); ok && h.isPresented(screen) {
		r.SetStyle(item.Style)
		h.tracked.item = item
		h.opts.observer.Transition(KindModal, "restyle", false)
		return
	}
	h.dismiss(animated)
	h.present(screen, item, animated)
}

func (h *ModalHandler[I, V]) present(screen V, item modal.StyledItem[I], animated bool) {
	if h.presenter.Attached() {
		h.show(screen, item, animated)
		return
	}
	w := &waitingPresentation[I, V]{
		presentation: presentation[I, V]{item: item, screen: screen},
		animated:     animated,
	}
	h.waiting = w
	h.log.Debug().Interface("item", item.Item).Msg("presenter not attached, waiting")
	h.poll(w)
}

// poll checks for attachment every poll interval until the presenter
// attaches, the wait is superseded by a newer state, or the max wait is
// reached.
func (h *ModalHandler[I, V]) poll(w *waitingPresentation[I, V]) {
	h.scheduler.After(h.opts.pollInterval, func() {
		if h.waiting != w {
			return
		}
		w.waited += h.opts.pollInterval
		if h.presenter.Attached() {
			h.waiting = nil
			h.show(w.screen, w.item, w.animated)
			return
		}
		if w.waited >= h.opts.maxWait {
			h.waiting = nil
			err := &PresentationError{Op: "present", Item: w.item.Item, Err: ErrNotAttached}
			h.opts.observer.PresentationFailed(KindModal, err)
			h.log.Warn().
				Err(err).
				Dur("waited", h.opts.maxWait).
				Msg("presenter is not attached after waiting; presentation could not be completed")
			return
		}
		h.poll(w)
	})
}

func (h *ModalHandler[I, V]) show(screen V, item modal.StyledItem[I], animated bool) {
	h.tracked = &presentation[I, V]{item: item, screen: screen}
	h.presenter.Present(screen, item.Style, animated)
	h.opts.observer.Transition(KindModal, "present", animated)
}

// dismiss only dismisses the presenter's overlay when it is the tracked
// screen, so an unrelated overlay is left alone.
func (h *ModalHandler[I, V]) dismiss(animated bool) {
	if h.tracked != nil && h.isPresented(h.tracked.screen) {
		h.presenter.Dismiss(animated)
		h.opts.observer.Transition(KindModal, "dismiss", animated)
	}
	h.tracked = nil
}

func (h *ModalHandler[I, V]) isPresented(screen V) bool {
	presented, ok := h.presenter.Presented()
	return ok && presented == screen
}

func (h *ModalHandler[I, V]) didDismiss(screen V) {
	if h.tracked == nil || h.tracked.screen != screen {
		return
	}
	h.tracked = nil
	h.pending++
	h.opts.observer.ReverseSync(KindModal)
	h.log.Debug().Msg("user dismissed modal")
	h.scheduler.Defer(func() {
		h.pending--
		h.store.Send(modal.DismissItem[I]{Animated: true})
	})
}

func (h *ModalHandler[I, V]) checkDelegate() {
	if !h.opts.debug || h.presenter == nil {
		return
	}
	if d := h.presenter.DismissDelegate(); d != DismissDelegate[V](h.delegate) {
		h.log.Warn().
			Str("delegate", describe(d)).
			Msg("modal handler is not the dismiss delegate of its presenter")
	}
}
