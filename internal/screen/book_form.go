package screen

import (
	"context"
	"strconv"

	"library-admin/internal/model"

	"golang.org/x/sync/errgroup"
)

const msgDropdownFetchErr = "Error fetching dropdown data."

// BookFields holds the scalar inputs as entered plus the relation selections
// as bare identifiers, the shape the selection controls work with.
type BookFields struct {
	Name            string
	PublicationYear string
	Stock           string
	AuthorID        int64
	PublisherID     int64
	CategoryIDs     []int64
}

// HasCategory reports whether the category is in the selected set; the
// multi-select control uses it to mark options.
func (f BookFields) HasCategory(id int64) bool {
	for _, selected := range f.CategoryIDs {
		if selected == id {
			return true
		}
	}
	return false
}

type BookForm struct {
	form
	svc    BookFormService
	fields BookFields

	authors    []model.Author
	categories []model.Category
	publishers []model.Publisher
}

func NewBookForm(svc BookFormService, notifier Notifier, nav Navigator) *BookForm {
	return &BookForm{
		form: newForm(Books, notifier, nav),
		svc:  svc,
	}
}

// LoadOptions fetches the three referenced collections for the selection
// controls in parallel. A failure is reported but does not block editing;
// the dropdowns simply render without options.
func (f *BookForm) LoadOptions(ctx context.Context) error {
	gg, ctx := errgroup.WithContext(ctx)
	var (
		authors    []model.Author
		categories []model.Category
		publishers []model.Publisher
	)
	gg.Go(func() error {
		var err error
		authors, err = f.svc.ListAuthors(ctx)
		return err
	})
	gg.Go(func() error {
		var err error
		categories, err = f.svc.ListCategories(ctx)
		return err
	})
	gg.Go(func() error {
		var err error
		publishers, err = f.svc.ListPublishers(ctx)
		return err
	})
	if err := gg.Wait(); err != nil {
		f.notifier.Error(msgDropdownFetchErr)
		return err
	}
	f.authors = authors
	f.categories = categories
	f.publishers = publishers
	return nil
}

// Load pre-populates the fields in edit mode, mapping the nested relation
// objects of the response down to their bare identifiers.
func (f *BookForm) Load(ctx context.Context) error {
	if !f.editing {
		return nil
	}
	book, err := f.svc.GetBook(ctx, f.id)
	if err != nil {
		f.notifier.Error(f.res.FetchOneErrMsg)
		return err
	}
	fields := BookFields{
		Name:            book.Name,
		PublicationYear: strconv.Itoa(book.PublicationYear),
		Stock:           strconv.Itoa(book.Stock),
	}
	if book.Author != nil {
		fields.AuthorID = book.Author.ID
	}
	if book.Publisher != nil {
		fields.PublisherID = book.Publisher.ID
	}
	for _, c := range book.Categories {
		fields.CategoryIDs = append(fields.CategoryIDs, c.ID)
	}
	f.fields = fields
	return nil
}

func (f *BookForm) Fields() BookFields { return f.fields }

func (f *BookForm) Authors() []model.Author       { return f.authors }
func (f *BookForm) Categories() []model.Category  { return f.categories }
func (f *BookForm) Publishers() []model.Publisher { return f.publishers }

func (f *BookForm) SetField(name, value string) error {
	switch name {
	case "name":
		f.fields.Name = value
	case "publicationYear":
		f.fields.PublicationYear = value
	case "stock":
		f.fields.Stock = value
	case "authorId":
		id, err := parseID(name, value)
		if err != nil {
			return err
		}
		f.fields.AuthorID = id
	case "publisherId":
		id, err := parseID(name, value)
		if err != nil {
			return err
		}
		f.fields.PublisherID = id
	default:
		return unknownField(name)
	}
	return nil
}

// SetCategoryIDs replaces the full selected set, dropping duplicates while
// keeping selection order.
func (f *BookForm) SetCategoryIDs(ids []int64) {
	seen := make(map[int64]struct{}, len(ids))
	distinct := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}
	f.fields.CategoryIDs = distinct
}

func (f *BookForm) Submit(ctx context.Context) error {
	year, err := parseInt("publicationYear", f.fields.PublicationYear)
	if err != nil {
		return f.rejected(err)
	}
	stock, err := parseInt("stock", f.fields.Stock)
	if err != nil {
		return f.rejected(err)
	}
	payload := model.BookPayload{
		Name:            f.fields.Name,
		PublicationYear: year,
		Stock:           stock,
		Author:          model.Ref{ID: f.fields.AuthorID},
		Publisher:       model.Ref{ID: f.fields.PublisherID},
		Categories:      make([]model.Ref, 0, len(f.fields.CategoryIDs)),
	}
	for _, id := range f.fields.CategoryIDs {
		payload.Categories = append(payload.Categories, model.Ref{ID: id})
	}
	if err := vd.Struct(payload); err != nil {
		return f.rejected(err)
	}
	if f.editing {
		_, err = f.svc.UpdateBook(ctx, f.id, payload)
	} else {
		_, err = f.svc.CreateBook(ctx, payload)
	}
	if err != nil {
		f.saveFailed()
		return err
	}
	f.saved()
	return nil
}
