package navigation

import (
	"slices"
	"weak"

	"github.com/rs/zerolog"

	"github.com/jask/navsync/core"
	"github.com/jask/navsync/core/stack"
)

// StackHandler applies stack.State snapshots to a StackContainer and turns
// user-initiated back navigation into stack.PopItems actions.
type StackHandler[I, V comparable] struct {
	store     Store[stack.State[I], stack.Action[I]]
	factory   ScreenFactory[I, V]
	scheduler Scheduler
	opts      options
	log       zerolog.Logger

	container StackContainer[V]
	delegate  *stackDelegate[I, V]
	cache     *core.OrderedMap[I, V]
	ignored   int
	pending   int
	cancel    func()
}

func NewStackHandler[I, V comparable](
	store Store[stack.State[I], stack.Action[I]],
	factory ScreenFactory[I, V],
	scheduler Scheduler,
	opts ...Option,
) *StackHandler[I, V] {
	o, log := buildOptions(KindStack, opts)
	h := &StackHandler[I, V]{
		store:     store,
		factory:   factory,
		scheduler: scheduler,
		opts:      o,
		log:       log,
		cache:     core.NewOrderedMap[I, V](),
	}
	h.delegate = &stackDelegate[I, V]{handler: weak.Make(h)}
	return h
}

// Setup binds the handler to container, becomes its delegate and starts
// observing the store. A handler is bound to one container for its lifetime.
func (h *StackHandler[I, V]) Setup(container StackContainer[V]) {
	h.Close()
	h.container = container
	container.SetDelegate(h.delegate)
	if h.opts.ignorePrevious {
		h.ignored = len(container.Screens())
	}
	// The store must not keep the handler alive.
	wp := weak.Make(h)
	h.cancel = h.store.Subscribe(func(state stack.State[I]) {
		if h := wp.Value(); h != nil {
			h.checkDelegate()
			h.Sync(state, h.opts.env)
		}
	})
}

// Close stops observing the store. The container keeps its screens.
func (h *StackHandler[I, V]) Close() {
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
}

// Items returns the items the handler currently holds screens for.
func (h *StackHandler[I, V]) Items() []I {
	return h.cache.Keys()
}

// Screens returns the managed screens, root first.
func (h *StackHandler[I, V]) Screens() []V {
	return h.cache.Values()
}

// Sync applies state to the container. It does nothing when the container
// already shows state.Items.
func (h *StackHandler[I, V]) Sync(state stack.State[I], env Env) {
	if h.container == nil || h.cache.KeysEqual(state.Items) {
		return
	}
	if h.pending > 0 {
		h.log.Warn().
			Int("pending", h.pending).
			Int("items", len(state.Items)).
			Msg("forward sync while a pop is still pending; stack may diverge until it is delivered")
	}

	h.cache = core.Reorder(state.Items, h.cache, h.create)
	if h.cache.Len() != len(state.Items) {
		h.log.Warn().
			Int("items", len(state.Items)).
			Int("screens", h.cache.Len()).
			Msg("stack state has duplicate items; each sync re-issues the screens")
	}

	current := h.container.Screens()
	prefix := current[:min(h.ignored, len(current))]
	animated := env.AnimationsEnabled && len(current) > 0 && state.AnimationsEnabled
	h.container.SetScreens(slices.Concat(prefix, h.cache.Values()), animated)
	h.opts.observer.Transition(KindStack, "set_screens", animated)
	h.log.Debug().Int("screens", h.cache.Len()).Bool("animated", animated).Msg("stack synced")
}

func (h *StackHandler[I, V]) create(item I) V {
	h.opts.observer.ScreenCreated(KindStack)
	return h.factory.CreateScreen(item)
}

// didShow handles a completed transition. Only user-initiated transitions
// going back down the managed stack are reported to the store. Popping past
// the first managed screen into an unmanaged prefix pops everything above it.
func (h *StackHandler[I, V]) didShow(t Transition[V]) {
	if !t.UserInitiated {
		return
	}
	screens := h.cache.Values()
	toIndex := slices.Index(screens, t.To)
	fromIndex := slices.Index(screens, t.From)
	if fromIndex < 0 || toIndex >= fromIndex {
		return
	}
	popCount := max(fromIndex-toIndex, 0)
	h.cache.RemoveLast(popCount)

	h.pending++
	h.opts.observer.ReverseSync(KindStack)
	h.log.Debug().Int("count", popCount).Msg("user popped screens")
	h.scheduler.Defer(func() {
		h.pending--
		h.store.Send(stack.PopItems[I]{Count: popCount, Animated: true})
	})
}

func (h *StackHandler[I, V]) checkDelegate() {
	if !h.opts.debug || h.container == nil {
		return
	}
	if d := h.container.Delegate(); d != StackDelegate[V](h.delegate) {
		h.log.Warn().
			Str("delegate", describe(d)).
			Msg("stack handler is not the delegate of its container; make sure the delegate is not replaced while the handler is active")
	}
}
