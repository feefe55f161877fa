package screen

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Counts struct {
	Authors    int
	Books      int
	Publishers int
	Categories int
	Borrowings int
}

// Dashboard shows only the cardinality of each collection.
type Dashboard struct {
	svc    DashboardService
	counts Counts
}

func NewDashboard(svc DashboardService) *Dashboard {
	return &Dashboard{svc: svc}
}

// Load issues the five collection fetches concurrently and waits for all of
// them. The wait is all-or-nothing: a single failure leaves every count at
// zero, as the original dashboard behaves.
func (d *Dashboard) Load(ctx context.Context) error {
	gg, ctx := errgroup.WithContext(ctx)
	var counts Counts
	gg.Go(func() error {
		authors, err := d.svc.ListAuthors(ctx)
		counts.Authors = len(authors)
		return err
	})
	gg.Go(func() error {
		books, err := d.svc.ListBooks(ctx)
		counts.Books = len(books)
		return err
	})
	gg.Go(func() error {
		publishers, err := d.svc.ListPublishers(ctx)
		counts.Publishers = len(publishers)
		return err
	})
	gg.Go(func() error {
		categories, err := d.svc.ListCategories(ctx)
		counts.Categories = len(categories)
		return err
	})
	gg.Go(func() error {
		borrowings, err := d.svc.ListBorrowings(ctx)
		counts.Borrowings = len(borrowings)
		return err
	})
	if err := gg.Wait(); err != nil {
		return err
	}
	d.counts = counts
	return nil
}

func (d *Dashboard) Counts() Counts {
	return d.counts
}
