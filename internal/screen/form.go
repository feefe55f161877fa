package screen

import (
	"fmt"
	"strconv"
	"strings"
)

// form is the plumbing shared by every form screen. Mode is fixed for the
// screen's lifetime: edit when the navigation context carries an identifier,
// create otherwise.
type form struct {
	res      Resource
	notifier Notifier
	nav      Navigator
	id       int64
	editing  bool
}

func newForm(res Resource, notifier Notifier, nav Navigator) form {
	id, ok := nav.CurrentID()
	return form{
		res:      res,
		notifier: notifier,
		nav:      nav,
		id:       id,
		editing:  ok,
	}
}

func (f *form) Editing() bool { return f.editing }

func (f *form) ID() int64 { return f.id }

func (f *form) saved() {
	if f.editing {
		f.notifier.Success(f.res.SaveOKUpdMsg)
	} else {
		f.notifier.Success(f.res.SaveOKAddMsg)
	}
	f.nav.NavigateTo(f.res.ListPath)
}

func (f *form) saveFailed() {
	f.notifier.Error(f.res.SaveErrMsg)
}

// rejected reports a local validation failure: a notification and no request.
func (f *form) rejected(err error) error {
	f.notifier.Error(f.res.SaveErrMsg)
	return err
}

func unknownField(name string) error {
	return fmt.Errorf("unknown form field %q", name)
}

func parseInt(name, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s is invalid", name)
	}
	return n, nil
}

func parseID(name, value string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s is invalid", name)
	}
	return n, nil
}
