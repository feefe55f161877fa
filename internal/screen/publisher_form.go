package screen

import (
	"context"
	"strconv"

	"library-admin/internal/model"
)

// PublisherFields keeps the establishment year as entered; it is parsed only
// at submit time.
type PublisherFields struct {
	Name              string
	EstablishmentYear string
	Address           string
}

type PublisherForm struct {
	form
	svc    PublisherService
	fields PublisherFields
}

func NewPublisherForm(svc PublisherService, notifier Notifier, nav Navigator) *PublisherForm {
	return &PublisherForm{
		form: newForm(Publishers, notifier, nav),
		svc:  svc,
	}
}

func (f *PublisherForm) Load(ctx context.Context) error {
	if !f.editing {
		return nil
	}
	publisher, err := f.svc.GetPublisher(ctx, f.id)
	if err != nil {
		f.notifier.Error(f.res.FetchOneErrMsg)
		return err
	}
	f.fields = PublisherFields{
		Name:              publisher.Name,
		EstablishmentYear: strconv.Itoa(publisher.EstablishmentYear),
		Address:           publisher.Address,
	}
	return nil
}

func (f *PublisherForm) Fields() PublisherFields { return f.fields }

func (f *PublisherForm) SetField(name, value string) error {
	switch name {
	case "name":
		f.fields.Name = value
	case "establishmentYear":
		f.fields.EstablishmentYear = value
	case "address":
		f.fields.Address = value
	default:
		return unknownField(name)
	}
	return nil
}

func (f *PublisherForm) Submit(ctx context.Context) error {
	year, err := parseInt("establishmentYear", f.fields.EstablishmentYear)
	if err != nil {
		return f.rejected(err)
	}
	payload := model.PublisherPayload{
		Name:              f.fields.Name,
		EstablishmentYear: year,
		Address:           f.fields.Address,
	}
	if err := vd.Struct(payload); err != nil {
		return f.rejected(err)
	}
	if f.editing {
		_, err = f.svc.UpdatePublisher(ctx, f.id, payload)
	} else {
		_, err = f.svc.CreatePublisher(ctx, payload)
	}
	if err != nil {
		f.saveFailed()
		return err
	}
	f.saved()
	return nil
}
