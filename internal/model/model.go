package model

// Entities mirror the JSON shapes of the remote catalog API. Identifiers are
// assigned server-side on creation and never change.

type Author struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	Country   string `json:"country"`
}

type Publisher struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	EstablishmentYear int    `json:"establishmentYear"`
	Address           string `json:"address"`
}

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Book struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	PublicationYear int        `json:"publicationYear"`
	Stock           int        `json:"stock"`
	Author          *Author    `json:"author,omitempty"`
	Publisher       *Publisher `json:"publisher,omitempty"`
	Categories      []Category `json:"categories,omitempty"`
}

type Borrowing struct {
	ID            int64   `json:"id"`
	BorrowerName  string  `json:"borrowerName"`
	BorrowerMail  string  `json:"borrowerMail,omitempty"`
	BorrowingDate string  `json:"borrowingDate"`
	ReturnDate    *string `json:"returnDate"`
	Book          *Book   `json:"book,omitempty"`
}

func (a Author) EntityID() int64    { return a.ID }
func (p Publisher) EntityID() int64 { return p.ID }
func (c Category) EntityID() int64  { return c.ID }
func (b Book) EntityID() int64      { return b.ID }
func (b Borrowing) EntityID() int64 { return b.ID }

// Ref is the relation shape the API expects on writes: a bare identifier
// wrapped in an object.
type Ref struct {
	ID int64 `json:"id" validate:"required"`
}

// Payloads are the outbound request bodies built by the form screens. The
// required tags match the mandatory fields of the admin forms.

type AuthorPayload struct {
	Name      string `json:"name" validate:"required"`
	BirthDate string `json:"birthDate" validate:"required"`
	Country   string `json:"country" validate:"required"`
}

type PublisherPayload struct {
	Name              string `json:"name" validate:"required"`
	EstablishmentYear int    `json:"establishmentYear" validate:"required"`
	Address           string `json:"address" validate:"required"`
}

type CategoryPayload struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type BookPayload struct {
	Name            string `json:"name" validate:"required"`
	PublicationYear int    `json:"publicationYear" validate:"required"`
	Stock           int    `json:"stock" validate:"min=0"`
	Author          Ref    `json:"author"`
	Publisher       Ref    `json:"publisher"`
	Categories      []Ref  `json:"categories" validate:"min=1,dive"`
}

// CreateBorrowingPayload carries the borrower mail and the borrowed book,
// both of which are set only at creation.
type CreateBorrowingPayload struct {
	BorrowerName  string  `json:"borrowerName" validate:"required"`
	BorrowerMail  string  `json:"borrowerMail" validate:"required"`
	BorrowingDate string  `json:"borrowingDate" validate:"required"`
	ReturnDate    *string `json:"returnDate"`
	Book          Ref     `json:"bookForBorrowingRequest"`
}

type UpdateBorrowingPayload struct {
	BorrowerName  string  `json:"borrowerName" validate:"required"`
	BorrowingDate string  `json:"borrowingDate" validate:"required"`
	ReturnDate    *string `json:"returnDate"`
}
