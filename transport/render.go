package transport

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"storefront/pkg/domain/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"money": func(d decimal.Decimal) string { return "$" + d.StringFixed(2) },
	"mul": func(d decimal.Decimal, quantity int) decimal.Decimal {
		return d.Mul(decimal.NewFromInt(int64(quantity)))
	},
}

type pageData struct {
	Title     string
	Session   *model.Session
	Profile   *model.Profile
	Loading   bool
	CartCount int
	Flash     string
	Error     string
	Data      any
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name, title string, data any) {
	h.renderWithError(w, r, name, title, data, "")
}

func (h *Handler) renderWithError(w http.ResponseWriter, r *http.Request, name, title string, data any, errMsg string) {
	session, profile, loading := h.sessions.Snapshot()

	count := 0
	for _, line := range h.carts.Lines() {
		count += line.Quantity
	}

	page := pageData{
		Title:     title,
		Session:   session,
		Profile:   profile,
		Loading:   loading,
		CartCount: count,
		Flash:     popFlash(w, r),
		Error:     errMsg,
		Data:      data,
	}

	tmpl, err := template.New("layout.html").
		Funcs(templateFuncs).
		ParseFS(templateFS, "templates/layout.html", "templates/"+name)
	if err != nil {
		log.WithError(err).Error("Could not parse template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout.html", page); err != nil {
		log.WithError(err).Error("Could not execute template")
	}
}

func (h *Handler) renderErrorPage(w http.ResponseWriter, r *http.Request, errMsg string) {
	h.renderWithError(w, r, "error.html", "Error", nil, errMsg)
}

// Flash messages are written as a short-lived cookie and consumed by the
// next render.
func setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:  "flash",
		Value: url.QueryEscape(message),
		Path:  "/",
	})
}

func popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie("flash")
	if err != nil || cookie.Value == "" {
		return ""
	}
	http.SetCookie(w, &http.Cookie{Name: "flash", Value: "", Path: "/", MaxAge: -1})
	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return message
}
