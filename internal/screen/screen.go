// Package screen holds the state machines behind every admin page: generic
// resource lists, per-resource forms and the dashboard. A screen owns a local
// copy of whatever it fetched and nothing else; navigation and user
// notifications are injected capabilities.
package screen

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Notifier emits transient success/error messages to the user. Fire and
// forget, no acknowledgement.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Navigator is the screen's view of the routing layer: the optional
// identifier segment of the current path and a way to move elsewhere.
type Navigator interface {
	CurrentID() (int64, bool)
	NavigateTo(path string)
}

type Entity interface {
	EntityID() int64
}

// Resource describes one resource kind: its paths and the user-facing
// message strings, kept per resource since the wording is not uniform.
type Resource struct {
	Name     string
	ListPath string

	FetchErrMsg  string
	DeleteOKMsg  string
	DeleteErrMsg string

	FetchOneErrMsg string
	SaveOKAddMsg   string
	SaveOKUpdMsg   string
	SaveErrMsg     string
}

func (r Resource) NewPath() string { return r.ListPath + "/new" }

func (r Resource) EditPath(id int64) string {
	return fmt.Sprintf("%s/edit/%d", r.ListPath, id)
}

var (
	Authors = Resource{
		Name:           "author",
		ListPath:       "/authors",
		FetchErrMsg:    "Error fetching authors",
		DeleteOKMsg:    "Author deleted successfully!",
		DeleteErrMsg:   "Error deleting author.",
		FetchOneErrMsg: "Error fetching author data.",
		SaveOKAddMsg:   "Author added successfully!",
		SaveOKUpdMsg:   "Author updated successfully!",
		SaveErrMsg:     "Error saving author data.",
	}
	Publishers = Resource{
		Name:           "publisher",
		ListPath:       "/publishers",
		FetchErrMsg:    "Error fetching publishers",
		DeleteOKMsg:    "Publisher deleted successfully!",
		DeleteErrMsg:   "Error deleting publisher",
		FetchOneErrMsg: "Error fetching publisher data.",
		SaveOKAddMsg:   "Publisher added successfully!",
		SaveOKUpdMsg:   "Publisher updated successfully!",
		SaveErrMsg:     "Error saving publisher data.",
	}
	Categories = Resource{
		Name:           "category",
		ListPath:       "/categories",
		FetchErrMsg:    "Error fetching categories",
		DeleteOKMsg:    "Category deleted successfully!",
		DeleteErrMsg:   "Error deleting category",
		FetchOneErrMsg: "Error fetching category data.",
		SaveOKAddMsg:   "Category added successfully!",
		SaveOKUpdMsg:   "Category updated successfully!",
		SaveErrMsg:     "Error saving category data.",
	}
	Books = Resource{
		Name:           "book",
		ListPath:       "/books",
		FetchErrMsg:    "Error fetching books",
		DeleteOKMsg:    "Book deleted successfully!",
		DeleteErrMsg:   "Error deleting book",
		FetchOneErrMsg: "Error fetching book data.",
		SaveOKAddMsg:   "Book added successfully!",
		SaveOKUpdMsg:   "Book updated successfully!",
		SaveErrMsg:     "Error saving book data.",
	}
	Borrowings = Resource{
		Name:           "borrowing",
		ListPath:       "/borrowings",
		FetchErrMsg:    "Error fetching borrowings",
		DeleteOKMsg:    "Borrowing record deleted successfully!",
		DeleteErrMsg:   "Error deleting borrowing record",
		FetchOneErrMsg: "Error fetching borrowing data.",
		SaveOKAddMsg:   "Borrowing added successfully!",
		SaveOKUpdMsg:   "Borrowing updated successfully!",
		SaveErrMsg:     "Error saving borrowing data.",
	}
)

var vd = validator.New()
