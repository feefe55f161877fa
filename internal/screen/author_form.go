package screen

import (
	"context"

	"library-admin/internal/model"
)

type AuthorForm struct {
	form
	svc    AuthorService
	fields model.AuthorPayload
}

func NewAuthorForm(svc AuthorService, notifier Notifier, nav Navigator) *AuthorForm {
	return &AuthorForm{
		form: newForm(Authors, notifier, nav),
		svc:  svc,
	}
}

// Load pre-populates the fields in edit mode. In create mode it is a no-op.
func (f *AuthorForm) Load(ctx context.Context) error {
	if !f.editing {
		return nil
	}
	author, err := f.svc.GetAuthor(ctx, f.id)
	if err != nil {
		f.notifier.Error(f.res.FetchOneErrMsg)
		return err
	}
	f.fields = model.AuthorPayload{
		Name:      author.Name,
		BirthDate: author.BirthDate,
		Country:   author.Country,
	}
	return nil
}

func (f *AuthorForm) Fields() model.AuthorPayload { return f.fields }

func (f *AuthorForm) SetField(name, value string) error {
	switch name {
	case "name":
		f.fields.Name = value
	case "birthDate":
		f.fields.BirthDate = value
	case "country":
		f.fields.Country = value
	default:
		return unknownField(name)
	}
	return nil
}

func (f *AuthorForm) Submit(ctx context.Context) error {
	if err := vd.Struct(f.fields); err != nil {
		return f.rejected(err)
	}
	var err error
	if f.editing {
		_, err = f.svc.UpdateAuthor(ctx, f.id, f.fields)
	} else {
		_, err = f.svc.CreateAuthor(ctx, f.fields)
	}
	if err != nil {
		f.saveFailed()
		return err
	}
	f.saved()
	return nil
}
