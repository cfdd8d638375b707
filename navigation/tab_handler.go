package navigation

import (
	"slices"
	"weak"

	"github.com/rs/zerolog"

	"github.com/jask/navsync/core"
	"github.com/jask/navsync/core/tab"
)

// TabHandler applies tab.State snapshots to a TabContainer and turns tab
// selection by the user into tab.SetActiveIndex actions.
type TabHandler[I, V comparable] struct {
	store     Store[tab.State[I], tab.Action[I]]
	factory   ScreenFactory[I, V]
	scheduler Scheduler
	opts      options
	log       zerolog.Logger

	container TabContainer[V]
	delegate  *tabDelegate[I, V]
	cache     *core.OrderedMap[I, V]
	pending   int
	cancel    func()
}

func NewTabHandler[I, V comparable](
	store Store[tab.State[I], tab.Action[I]],
	factory ScreenFactory[I, V],
	scheduler Scheduler,
	opts ...Option,
) *TabHandler[I, V] {
	o, log := buildOptions(KindTab, opts)
	h := &TabHandler[I, V]{
		store:     store,
		factory:   factory,
		scheduler: scheduler,
		opts:      o,
		log:       log,
		cache:     core.NewOrderedMap[I, V](),
	}
	h.delegate = &tabDelegate[I, V]{handler: weak.Make(h)}
	return h
}

func (h *TabHandler[I, V]) Setup(container TabContainer[V]) {
	h.Close()
	h.container = container
	container.SetDelegate(h.delegate)
	// The store must not keep the handler alive.
	wp := weak.Make(h)
	h.cancel = h.store.Subscribe(func(state tab.State[I]) {
		if h := wp.Value(); h != nil {
			h.checkDelegate()
			h.Sync(state, h.opts.env)
		}
	})
}

func (h *TabHandler[I, V]) Close() {
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
}

func (h *TabHandler[I, V]) Items() []I {
	return h.cache.Keys()
}

func (h *TabHandler[I, V]) Screens() []V {
	return h.cache.Values()
}

// Sync reconciles the tab screens with state.Items, then the selection with
// state.ActiveItem.
func (h *TabHandler[I, V]) Sync(state tab.State[I], env Env) {
	if h.container == nil {
		return
	}
	h.syncScreens(state, env)
	h.syncSelection(state)
}

func (h *TabHandler[I, V]) syncScreens(state tab.State[I], env Env) {
	if h.cache.KeysEqual(state.Items) {
		return
	}
	h.warnPending()
	h.cache = core.Reorder(state.Items, h.cache, h.create)
	if h.cache.Len() != len(state.Items) {
		h.log.Warn().
			Int("items", len(state.Items)).
			Int("screens", h.cache.Len()).
			Msg("tab state has duplicate items; each sync re-issues the screens")
	}
	animated := env.AnimationsEnabled && len(h.container.Screens()) > 0 && state.AnimationsEnabled
	h.container.SetScreens(h.cache.Values(), animated)
	h.opts.observer.Transition(KindTab, "set_screens", animated)
}

func (h *TabHandler[I, V]) syncSelection(state tab.State[I]) {
	index := slices.Index(state.Items, state.ActiveItem)
	if index < 0 || h.container.SelectedIndex() == index {
		return
	}
	h.warnPending()
	h.container.SetSelectedIndex(index)
	h.opts.observer.Transition(KindTab, "select", false)
}

func (h *TabHandler[I, V]) warnPending() {
	if h.pending > 0 {
		h.log.Warn().Int("pending", h.pending).Msg("forward sync while a tab selection is still pending")
	}
}

func (h *TabHandler[I, V]) create(item I) V {
	h.opts.observer.ScreenCreated(KindTab)
	return h.factory.CreateScreen(item)
}

func (h *TabHandler[I, V]) didSelect(screen V) {
	index := slices.Index(h.cache.Values(), screen)
	if index < 0 {
		return
	}
	h.pending++
	h.opts.observer.ReverseSync(KindTab)
	h.log.Debug().Int("index", index).Msg("user selected tab")
	h.scheduler.Defer(func() {
		h.pending--
		h.store.Send(tab.SetActiveIndex[I]{Index: index})
	})
}

func (h *TabHandler[I, V]) checkDelegate() {
	if !h.opts.debug || h.container == nil {
		return
	}
	if d := h.container.Delegate(); d != TabDelegate[V](h.delegate) {
		h.log.Warn().
			Str("delegate", describe(d)).
			Msg("tab handler is not the delegate of its container")
	}
}
