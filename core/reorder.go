package core

// Reorder builds the item->screen map for newItems. Screens already held in
// current are reused as-is; create is called once for every item that is not
// in current, in first-occurrence order. current is not modified.
//
// A repeated item keeps its first position, so the result may be shorter than
// newItems when it contains duplicates.
func Reorder[I comparable, V any](newItems []I, current *OrderedMap[I, V], create func(I) V) *OrderedMap[I, V] {
	next := NewOrderedMap[I, V]()
	for _, item := range newItems {
		if next.Has(item) {
			continue
		}
		if view, ok := current.Get(item); ok {
			next.Set(item, view)
			continue
		}
		next.Set(item, create(item))
	}
	return next
}
