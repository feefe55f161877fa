package screen

import (
	"context"
)

// List presents one resource collection as rows with expand/edit/delete
// actions. Items keep the server's order; at most one row is expanded.
type List[T Entity] struct {
	res      Resource
	list     func(ctx context.Context) ([]T, error)
	del      func(ctx context.Context, id int64) error
	notifier Notifier
	nav      Navigator

	items    []T
	expanded int64 // 0 means nothing expanded
	errMsg   string
}

func NewList[T Entity](
	res Resource,
	list func(ctx context.Context) ([]T, error),
	del func(ctx context.Context, id int64) error,
	notifier Notifier,
	nav Navigator,
) *List[T] {
	return &List[T]{
		res:      res,
		list:     list,
		del:      del,
		notifier: notifier,
		nav:      nav,
	}
}

// Load replaces the local collection with a fresh fetch. On failure the
// previously displayed items are left untouched and an inline error message
// sticks until the next successful fetch.
func (l *List[T]) Load(ctx context.Context) error {
	items, err := l.list(ctx)
	if err != nil {
		l.errMsg = l.res.FetchErrMsg
		l.notifier.Error(l.res.FetchErrMsg)
		return err
	}
	l.items = items
	l.errMsg = ""
	return nil
}

func (l *List[T]) Items() []T {
	return l.items
}

func (l *List[T]) ErrMessage() string {
	return l.errMsg
}

// Toggle expands the row with the given id, or collapses it when it is the
// one currently expanded. Single-select accordion.
func (l *List[T]) Toggle(id int64) {
	if l.expanded == id {
		l.expanded = 0
		return
	}
	l.expanded = id
}

// Expanded reports the expanded row, if any. The expanded id is only an id
// match: when a re-fetch no longer contains it, nothing renders expanded.
func (l *List[T]) Expanded() (T, bool) {
	var zero T
	if l.expanded == 0 {
		return zero, false
	}
	for _, it := range l.items {
		if it.EntityID() == l.expanded {
			return it, true
		}
	}
	return zero, false
}

func (l *List[T]) IsExpanded(id int64) bool {
	_, ok := l.Expanded()
	return ok && l.expanded == id
}

// Delete removes the record server-side and re-fetches the whole collection
// rather than dropping the row locally, so cascades stay visible. On failure
// local state is unchanged.
func (l *List[T]) Delete(ctx context.Context, id int64) error {
	if err := l.del(ctx, id); err != nil {
		l.notifier.Error(l.res.DeleteErrMsg)
		return err
	}
	l.notifier.Success(l.res.DeleteOKMsg)
	return l.Load(ctx)
}

func (l *List[T]) NavigateToCreate() {
	l.nav.NavigateTo(l.res.NewPath())
}

func (l *List[T]) NavigateToEdit(id int64) {
	l.nav.NavigateTo(l.res.EditPath(id))
}
