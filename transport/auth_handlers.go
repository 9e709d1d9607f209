package transport

import (
	"net/http"
)

type authView struct {
	Email string
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login.html", "Login", authView{})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	if err := h.sessions.SignIn(r.Context(), email, password); err != nil {
		h.renderWithError(w, r, "login.html", "Login", authView{Email: email}, err.Error())
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) signupPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "signup.html", "Sign Up", authView{})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")
	fullName := r.FormValue("full_name")

	if err := h.sessions.SignUp(r.Context(), email, password, fullName); err != nil {
		h.renderWithError(w, r, "signup.html", "Sign Up", authView{Email: email}, err.Error())
		return
	}

	session, _, _ := h.sessions.Snapshot()
	if session == nil {
		setFlash(w, "Check your email to confirm your account.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(r.Context()); err != nil {
		setFlash(w, err.Error())
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
