package screen

import (
	"context"
	"errors"
	"time"

	"library-admin/internal/model"
)

const (
	msgBooksFetchErr = "Error fetching books."
	msgStockEmpty    = "Stock is empty! Cannot borrow this book."
	msgDateOrder     = "Borrowing date cannot be later than the return date."
)

var (
	ErrStockEmpty = errors.New("selected book is out of stock")
	ErrDateOrder  = errors.New("borrowing date is after the return date")
)

// BorrowingFields: the borrower mail and the book selection exist only in
// create mode, the return date only in edit mode, matching the form.
type BorrowingFields struct {
	BorrowerName  string
	BorrowerMail  string
	BorrowingDate string
	ReturnDate    string
	BookID        int64
}

type BorrowingForm struct {
	form
	svc    BorrowingFormService
	fields BorrowingFields
	books  []model.Book
}

func NewBorrowingForm(svc BorrowingFormService, notifier Notifier, nav Navigator) *BorrowingForm {
	return &BorrowingForm{
		form: newForm(Borrowings, notifier, nav),
		svc:  svc,
	}
}

// Load fetches the book collection for the selection control in create mode,
// or the borrowing under edit. A book-list failure leaves the select empty
// without blocking the rest of the form.
func (f *BorrowingForm) Load(ctx context.Context) error {
	if !f.editing {
		books, err := f.svc.ListBooks(ctx)
		if err != nil {
			f.notifier.Error(msgBooksFetchErr)
			return err
		}
		f.books = books
		return nil
	}

	borrowing, err := f.svc.GetBorrowing(ctx, f.id)
	if err != nil {
		f.notifier.Error(f.res.FetchOneErrMsg)
		return err
	}
	fields := BorrowingFields{
		BorrowerName:  borrowing.BorrowerName,
		BorrowingDate: borrowing.BorrowingDate,
	}
	if borrowing.ReturnDate != nil {
		fields.ReturnDate = *borrowing.ReturnDate
	}
	if borrowing.Book != nil {
		fields.BookID = borrowing.Book.ID
	}
	f.fields = fields
	return nil
}

func (f *BorrowingForm) Fields() BorrowingFields { return f.fields }

func (f *BorrowingForm) Books() []model.Book { return f.books }

func (f *BorrowingForm) SetField(name, value string) error {
	switch name {
	case "borrowerName":
		f.fields.BorrowerName = value
	case "borrowerMail":
		f.fields.BorrowerMail = value
	case "borrowingDate":
		f.fields.BorrowingDate = value
	case "returnDate":
		f.fields.ReturnDate = value
	case "bookForBorrowingRequest":
		id, err := parseID(name, value)
		if err != nil {
			return err
		}
		f.fields.BookID = id
	default:
		return unknownField(name)
	}
	return nil
}

// Submit runs the two client-side guards before any request goes out. Both
// are advisory: the server stays authoritative, and the stock check reads the
// book list cached at mount, which may be stale under concurrent borrowers.
func (f *BorrowingForm) Submit(ctx context.Context) error {
	for _, b := range f.books {
		if b.ID == f.fields.BookID && b.Stock == 0 {
			f.notifier.Error(msgStockEmpty)
			return ErrStockEmpty
		}
	}
	if f.editing && f.fields.BorrowingDate != "" && f.fields.ReturnDate != "" {
		borrowed, errB := time.Parse(time.DateOnly, f.fields.BorrowingDate)
		returned, errR := time.Parse(time.DateOnly, f.fields.ReturnDate)
		if errB == nil && errR == nil && borrowed.After(returned) {
			f.notifier.Error(msgDateOrder)
			return ErrDateOrder
		}
	}

	var returnDate *string
	if f.fields.ReturnDate != "" {
		rd := f.fields.ReturnDate
		returnDate = &rd
	}

	var err error
	if f.editing {
		payload := model.UpdateBorrowingPayload{
			BorrowerName:  f.fields.BorrowerName,
			BorrowingDate: f.fields.BorrowingDate,
			ReturnDate:    returnDate,
		}
		if vErr := vd.Struct(payload); vErr != nil {
			return f.rejected(vErr)
		}
		_, err = f.svc.UpdateBorrowing(ctx, f.id, payload)
	} else {
		payload := model.CreateBorrowingPayload{
			BorrowerName:  f.fields.BorrowerName,
			BorrowerMail:  f.fields.BorrowerMail,
			BorrowingDate: f.fields.BorrowingDate,
			ReturnDate:    returnDate,
			Book:          model.Ref{ID: f.fields.BookID},
		}
		if vErr := vd.Struct(payload); vErr != nil {
			return f.rejected(vErr)
		}
		_, err = f.svc.CreateBorrowing(ctx, payload)
	}
	if err != nil {
		f.saveFailed()
		return err
	}
	f.saved()
	return nil
}
