package screen

import (
	"context"

	"library-admin/internal/model"
	"library-admin/internal/service/catalog"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var _ CatalogService = (*catalog.Service)(nil)

type AuthorService interface {
	ListAuthors(ctx context.Context) ([]model.Author, error)
	GetAuthor(ctx context.Context, id int64) (model.Author, error)
	CreateAuthor(ctx context.Context, payload model.AuthorPayload) (model.Author, error)
	UpdateAuthor(ctx context.Context, id int64, payload model.AuthorPayload) (model.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error
}

type PublisherService interface {
	ListPublishers(ctx context.Context) ([]model.Publisher, error)
	GetPublisher(ctx context.Context, id int64) (model.Publisher, error)
	CreatePublisher(ctx context.Context, payload model.PublisherPayload) (model.Publisher, error)
	UpdatePublisher(ctx context.Context, id int64, payload model.PublisherPayload) (model.Publisher, error)
	DeletePublisher(ctx context.Context, id int64) error
}

type CategoryService interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id int64) (model.Category, error)
	CreateCategory(ctx context.Context, payload model.CategoryPayload) (model.Category, error)
	UpdateCategory(ctx context.Context, id int64, payload model.CategoryPayload) (model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type BookService interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	CreateBook(ctx context.Context, payload model.BookPayload) (model.Book, error)
	UpdateBook(ctx context.Context, id int64, payload model.BookPayload) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
}

type BorrowingService interface {
	ListBorrowings(ctx context.Context) ([]model.Borrowing, error)
	GetBorrowing(ctx context.Context, id int64) (model.Borrowing, error)
	CreateBorrowing(ctx context.Context, payload model.CreateBorrowingPayload) (model.Borrowing, error)
	UpdateBorrowing(ctx context.Context, id int64, payload model.UpdateBorrowingPayload) (model.Borrowing, error)
	DeleteBorrowing(ctx context.Context, id int64) error
}

// BookFormService adds the collections the book form needs for its selection
// controls.
type BookFormService interface {
	BookService
	AuthorService
	CategoryService
	PublisherService
}

type BorrowingFormService interface {
	BorrowingService
	BookService
}

type DashboardService interface {
	ListAuthors(ctx context.Context) ([]model.Author, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	ListPublishers(ctx context.Context) ([]model.Publisher, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListBorrowings(ctx context.Context) ([]model.Borrowing, error)
}

// CatalogService is the full client surface, one interface per the single
// remote API the screens talk to.
type CatalogService interface {
	AuthorService
	PublisherService
	CategoryService
	BookService
	BorrowingService
}
