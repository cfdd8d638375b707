package navigation

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/navsync/core"
	"github.com/jask/navsync/core/modal"
)

type modalFixture struct {
	store     *core.Store[modal.State[int], modal.Action[int]]
	factory   *factory[int]
	scheduler *ManualScheduler
	observer  *observer
	handler   *ModalHandler[int, *screen]
}

func newModalFixture(p ModalPresenter[*screen], opts ...Option) *modalFixture {
	f := &modalFixture{
		store:     core.NewStore(modal.NewState[int](), modal.Reduce[int]),
		factory:   &factory[int]{},
		scheduler: &ManualScheduler{},
		observer:  newObserver(),
	}
	opts = append([]Option{WithObserver(f.observer)}, opts...)
	f.handler = NewModalHandler[int, *screen](f.store, f.factory, f.scheduler, opts...)
	f.handler.Setup(p)
	return f
}

func TestModalPresentSheet(t *testing.T) {
	p := &presenter{attached: true}
	f := newModalFixture(p)

	f.store.Send(modal.PresentSheet(1))

	item, s, ok := f.handler.Tracked()
	require.True(t, ok)
	require.Equal(t, modal.StyledItem[int]{Item: 1, Style: modal.Sheet}, item)
	require.Same(t, p.presented, s)
	require.Equal(t, modal.Sheet, p.style)
	require.Equal(t, []int{1}, f.factory.calls)
	require.True(t, p.ops[0].animated)
}

func TestModalPresentFullScreenWithoutAnimation(t *testing.T) {
	p := &presenter{attached: true}
	f := newModalFixture(p, WithAnimations(false))

	f.store.Send(modal.PresentFullScreen(1))

	require.Equal(t, modal.FullScreen, p.style)
	require.False(t, p.ops[0].animated)
}

func TestModalDismissAfterPresent(t *testing.T) {
	p := &presenter{attached: true}
	f := newModalFixture(p)

	f.store.Send(modal.PresentFullScreen(2))
	f.store.Send(modal.Dismiss[int]())

	_, _, ok := f.handler.Tracked()
	require.False(t, ok)
	require.Nil(t, p.presented)
	require.Equal(t, []string{"present:2", "dismiss:2"}, opNames(p.ops))
	require.Equal(t, []int{2}, f.factory.calls)
}

func TestModalDismissWithNothingPresented(t *testing.T) {
	p := &presenter{attached: true}
	f := newModalFixture(p)

	f.store.Send(modal.Dismiss[int]())

	require.Empty(t, p.ops)
}

func TestModalDifferentItemDismissesThenPresents(t *testing.T) {
	p := &presenter{attached: true}
	f := newModalFixture(p)

	f.store.Send(modal.PresentSheet(1))
	f.store.Send(modal.PresentFullScreen(2))

	require.Equal(t, []string{"present:1", "dismiss:1", "present:2"}, opNames(p.ops))
	require.Equal(t, []int{1, 2}, f.factory.calls)
	require.Equal(t, modal.FullScreen, p.style)
}

func TestModalSameItemRestylesInPlace(t *testing.T) {
	p := &restylingPresenter{presenter{attached: true}}
	f := newModalFixture(p)

	f.store.Send(modal.PresentFullScreen(1))
	_, before, _ := f.handler.Tracked()
	f.store.Send(modal.PresentSheet(1))

	item, after, _ := f.handler.Tracked()
	require.Same(t, before, after)
	require.Equal(t, modal.Sheet, item.Style)
	require.Equal(t, []string{"present:1", "restyle:1"}, opNames(p.ops))
	require.Equal(t, modal.Sheet, p.style)
	require.Equal(t, []int{1}, f.factory.calls)
}

func TestModalSameItemWithoutRestyleRepresentsSameScreen(t *testing.T) {
	p := &presenter{attached: true}
	f := newModalFixture(p)

	f.store.Send(modal.PresentFullScreen(1))
	_, before, _ := f.handler.Tracked()
	f.store.Send(modal.PresentSheet(1))

	_, after, _ := f.handler.Tracked()
	require.Same(t, before, after)
	require.Equal(t, []string{"present:1", "dismiss:1", "present:1"}, opNames(p.ops))
	require.Same(t, before, p.ops[2].screen)
	require.Equal(t, []int{1}, f.factory.calls)
}

func TestModalLeavesUnrelatedOverlayAlone(t *testing.T) {
	p := &presenter{attached: true}
	f := newModalFixture(p)

	f.store.Send(modal.PresentSheet(1))
	other := &screen{name: "other"}
	p.presented = other
	f.store.Send(modal.Dismiss[int]())

	require.Same(t, other, p.presented)
	require.Equal(t, []string{"present:1"}, opNames(p.ops))
	_, _, ok := f.handler.Tracked()
	require.False(t, ok)
}

func TestModalWaitsForPresenterToAttach(t *testing.T) {
	p := &presenter{}
	f := newModalFixture(p)

	f.store.Send(modal.PresentSheet(1))
	require.True(t, f.handler.Waiting())
	require.Empty(t, p.ops)

	f.scheduler.Advance(50 * time.Millisecond)
	require.True(t, f.handler.Waiting())

	p.attached = true
	f.scheduler.Advance(DefaultWindowPollInterval)

	require.False(t, f.handler.Waiting())
	require.Equal(t, []string{"present:1"}, opNames(p.ops))
	require.Equal(t, []int{1}, f.factory.calls)
}

func TestModalRepeatedStateWhileWaitingDoesNotRecreate(t *testing.T) {
	p := &presenter{}
	f := newModalFixture(p)

	f.store.Send(modal.PresentSheet(1))
	f.handler.Sync(f.store.State(), Env{AnimationsEnabled: true})
	f.store.Send(modal.PresentFullScreen(1))

	p.attached = true
	f.scheduler.Advance(DefaultWindowPollInterval)

	require.Equal(t, []int{1}, f.factory.calls)
	require.Equal(t, modal.FullScreen, p.style)
}

func TestModalWaitSupersededByDismiss(t *testing.T) {
	p := &presenter{}
	f := newModalFixture(p)

	f.store.Send(modal.PresentSheet(1))
	f.store.Send(modal.Dismiss[int]())
	require.False(t, f.handler.Waiting())

	p.attached = true
	f.scheduler.Advance(time.Second)

	require.Empty(t, p.ops)
}

func TestModalWaitTimesOut(t *testing.T) {
	p := &presenter{}
	f := newModalFixture(p, WithWindowWait(10*time.Millisecond, 100*time.Millisecond))

	f.store.Send(modal.PresentSheet(1))
	f.scheduler.Advance(100 * time.Millisecond)

	require.False(t, f.handler.Waiting())
	_, _, ok := f.handler.Tracked()
	require.False(t, ok, "an abandoned presentation is not tracked")
	require.Empty(t, p.ops)
	require.Len(t, f.observer.failures, 1)
	require.True(t, errors.Is(f.observer.failures[0], ErrNotAttached))
	var perr *PresentationError
	require.True(t, errors.As(f.observer.failures[0], &perr))
	require.Equal(t, 1, perr.Item)
	require.Zero(t, f.scheduler.Pending())

	// A later sync of the same state retries.
	p.attached = true
	f.handler.Sync(f.store.State(), Env{AnimationsEnabled: true})
	require.Equal(t, []string{"present:1"}, opNames(p.ops))
}

func TestModalUserDismissIsSentUpstreamOnNextTick(t *testing.T) {
	p := &presenter{attached: true}
	f := newModalFixture(p)
	f.store.Send(modal.PresentSheet(1))

	p.userDismiss()

	_, _, ok := f.handler.Tracked()
	require.False(t, ok)
	require.NotNil(t, f.store.State().StyledItem, "action is not sent from the callback")

	f.scheduler.Tick()

	require.Nil(t, f.store.State().StyledItem)
	require.Equal(t, []string{"present:1"}, opNames(p.ops), "nothing left to dismiss")
	require.Equal(t, 1, f.observer.reverse[KindModal])
}

func TestModalUserDismissOfUntrackedScreenIgnored(t *testing.T) {
	p := &presenter{attached: true}
	f := newModalFixture(p)
	f.store.Send(modal.PresentSheet(1))

	p.delegate.DidDismiss(&screen{name: "stranger"})

	require.Zero(t, f.scheduler.Pending())
	_, _, ok := f.handler.Tracked()
	require.True(t, ok)
}

func TestModalStoreDoesNotRetainHandler(t *testing.T) {
	store := core.NewStore(modal.NewState[int](), modal.Reduce[int])
	p := &presenter{attached: true}
	ref := setupModalWithoutClose(store, p)

	runtime.GC()
	runtime.GC()

	require.Nil(t, ref.handler.Value())
	store.Send(modal.PresentSheet(1))
	require.Empty(t, p.ops)
	runtime.KeepAlive(store)
}

func setupModalWithoutClose(store *core.Store[modal.State[int], modal.Action[int]], p *presenter) *dismissDelegate[int, *screen] {
	h := NewModalHandler[int, *screen](store, &factory[int]{}, &ManualScheduler{})
	h.Setup(p)
	return p.delegate.(*dismissDelegate[int, *screen])
}
