// Package modal is the state machine for modal presentation: at most one item
// is presented at a time, with a presentation style.
package modal

// Style is how a presented item is shown.
type Style int

const (
	// FullScreen covers the presenting content. The user can not dismiss it
	// with a gesture.
	FullScreen Style = iota
	// Sheet is shown above the presenting content and can be dismissed by the
	// user.
	Sheet
	// Alert is a small popup the user can not dismiss with a gesture; it is
	// closed by one of its own choices.
	Alert
)

func (s Style) String() string {
	switch s {
	case FullScreen:
		return "fullScreen"
	case Sheet:
		return "sheet"
	case Alert:
		return "alert"
	default:
		return "unknown"
	}
}

// Interactive reports whether the user may dismiss an item shown with s.
func (s Style) Interactive() bool {
	return s == Sheet
}

type StyledItem[I comparable] struct {
	Item  I
	Style Style
}

type State[I comparable] struct {
	StyledItem        *StyledItem[I]
	AnimationsEnabled bool
}

func NewState[I comparable]() State[I] {
	return State[I]{AnimationsEnabled: true}
}

// Presented returns the presented item, if any.
func (s State[I]) Presented() (StyledItem[I], bool) {
	if s.StyledItem == nil {
		return StyledItem[I]{}, false
	}
	return *s.StyledItem, true
}

// Action is one of SetItem, DismissItem, PresentFullScreenItem,
// PresentSheetItem or PresentAlertItem.
type Action[I comparable] interface {
	apply(s *State[I])
}

// SetItem replaces the presented item. A nil StyledItem dismisses.
type SetItem[I comparable] struct {
	StyledItem *StyledItem[I]
	Animated   bool
}

type DismissItem[I comparable] struct {
	Animated bool
}

type PresentFullScreenItem[I comparable] struct {
	Item     I
	Animated bool
}

type PresentSheetItem[I comparable] struct {
	Item     I
	Animated bool
}

type PresentAlertItem[I comparable] struct {
	Item     I
	Animated bool
}

func Set[I comparable](item *StyledItem[I]) SetItem[I] {
	return SetItem[I]{StyledItem: item, Animated: true}
}

func Dismiss[I comparable]() DismissItem[I] {
	return DismissItem[I]{Animated: true}
}

func PresentFullScreen[I comparable](item I) PresentFullScreenItem[I] {
	return PresentFullScreenItem[I]{Item: item, Animated: true}
}

func PresentSheet[I comparable](item I) PresentSheetItem[I] {
	return PresentSheetItem[I]{Item: item, Animated: true}
}

func PresentAlert[I comparable](item I) PresentAlertItem[I] {
	return PresentAlertItem[I]{Item: item, Animated: true}
}

// Reduce applies action to s. Dismissing with nothing presented still records
// the animation flag.
func Reduce[I comparable](s *State[I], action Action[I]) {
	if action == nil {
		return
	}
	action.apply(s)
}

func (a SetItem[I]) apply(s *State[I]) {
	var item *StyledItem[I]
	if a.StyledItem != nil {
		cp := *a.StyledItem
		item = &cp
	}
	setStyledItem(s, item, a.Animated)
}

func (a DismissItem[I]) apply(s *State[I]) {
	setStyledItem(s, nil, a.Animated)
}

func (a PresentFullScreenItem[I]) apply(s *State[I]) {
	setStyledItem(s, &StyledItem[I]{Item: a.Item, Style: FullScreen}, a.Animated)
}

func (a PresentSheetItem[I]) apply(s *State[I]) {
	setStyledItem(s, &StyledItem[I]{Item: a.Item, Style: Sheet}, a.Animated)
}

func (a PresentAlertItem[I]) apply(s *State[I]) {
	setStyledItem(s, &StyledItem[I]{Item: a.Item, Style: Alert}, a.Animated)
}

func setStyledItem[I comparable](s *State[I], item *StyledItem[I], animated bool) {
	s.StyledItem = item
	s.AnimationsEnabled = animated
}

// Equal reports whether a and b describe the same presentation.
func Equal[I comparable](a, b *StyledItem[I]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
