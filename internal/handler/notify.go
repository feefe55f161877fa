package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Flash carries the transient notifications shown once on the next rendered
// page, the server-side stand-in for the toast side-channel.
type Flash struct {
	Success []string `json:"success,omitempty"`
	Error   []string `json:"error,omitempty"`
}

func (f Flash) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

// notifier collects screen notifications during one request.
type notifier struct {
	flash Flash
}

func (n *notifier) Success(msg string) {
	n.flash.Success = append(n.flash.Success, msg)
}

func (n *notifier) Error(msg string) {
	n.flash.Error = append(n.flash.Error, msg)
}

const flashCookie = "flash"

func setFlash(c echo.Context, f Flash) {
	if f.Empty() {
		return
	}
	b, err := json.Marshal(f)
	if err != nil {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:  flashCookie,
		Value: base64.RawURLEncoding.EncodeToString(b),
		Path:  "/",
	})
}

// popFlash reads and clears the flash cookie set by the previous action.
func popFlash(c echo.Context) Flash {
	var f Flash
	cookie, err := c.Cookie(flashCookie)
	if err != nil {
		return f
	}
	c.SetCookie(&http.Cookie{
		Name:   flashCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	b, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return f
	}
	_ = json.Unmarshal(b, &f) //nolint:errcheck
	return f
}

func merge(a, b Flash) Flash {
	return Flash{
		Success: append(a.Success, b.Success...),
		Error:   append(a.Error, b.Error...),
	}
}

// navigator adapts echo's routing to the screens' navigation context: the
// optional :id path parameter in, a redirect target out.
type navigator struct {
	c      echo.Context
	target string
}

func newNavigator(c echo.Context) *navigator {
	return &navigator{c: c}
}

func (n *navigator) CurrentID() (int64, bool) {
	param := n.c.Param("id")
	if param == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (n *navigator) NavigateTo(path string) {
	n.target = path
}

// redirect finishes a mutating request: notifications become the next page's
// flash and the browser follows the screen's navigation target, falling back
// to the given path when the screen did not navigate.
func (n *navigator) redirect(c echo.Context, nt *notifier, fallback string) error {
	setFlash(c, nt.flash)
	target := n.target
	if target == "" {
		target = fallback
	}
	return c.Redirect(http.StatusSeeOther, target)
}
