package screen

import (
	"context"

	"library-admin/internal/model"
)

type CategoryForm struct {
	form
	svc    CategoryService
	fields model.CategoryPayload
}

func NewCategoryForm(svc CategoryService, notifier Notifier, nav Navigator) *CategoryForm {
	return &CategoryForm{
		form: newForm(Categories, notifier, nav),
		svc:  svc,
	}
}

func (f *CategoryForm) Load(ctx context.Context) error {
	if !f.editing {
		return nil
	}
	category, err := f.svc.GetCategory(ctx, f.id)
	if err != nil {
		f.notifier.Error(f.res.FetchOneErrMsg)
		return err
	}
	f.fields = model.CategoryPayload{
		Name:        category.Name,
		Description: category.Description,
	}
	return nil
}

func (f *CategoryForm) Fields() model.CategoryPayload { return f.fields }

func (f *CategoryForm) SetField(name, value string) error {
	switch name {
	case "name":
		f.fields.Name = value
	case "description":
		f.fields.Description = value
	default:
		return unknownField(name)
	}
	return nil
}

func (f *CategoryForm) Submit(ctx context.Context) error {
	if err := vd.Struct(f.fields); err != nil {
		return f.rejected(err)
	}
	var err error
	if f.editing {
		_, err = f.svc.UpdateCategory(ctx, f.id, f.fields)
	} else {
		_, err = f.svc.CreateCategory(ctx, f.fields)
	}
	if err != nil {
		f.saveFailed()
		return err
	}
	f.saved()
	return nil
}
