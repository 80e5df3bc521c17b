package handlers

import (
	"errors"
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/openautomate/website/internal/components"
	"github.com/openautomate/website/internal/contact"
)

// ContactPage shows the empty form. An email query parameter, sent by the
// newsletter teaser, pre-fills the email field.
func (h *Handler) ContactPage(w http.ResponseWriter, r *http.Request) {
	state := components.ContactState{
		Status: contact.StatusIdle,
		Fields: contact.Fields{Email: r.URL.Query().Get("email")},
	}
	h.renderContact(w, r, http.StatusOK, state)
}

// SubmitContact handles a form post and re-renders the page with the
// outcome.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64<<10)
	if err := r.ParseForm(); err != nil {
		h.renderContact(w, r, http.StatusBadRequest, components.ContactState{
			Status: contact.StatusError,
			Notice: "contact.form.invalid",
		})
		return
	}

	fields := contact.Fields{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}

	v := h.view(r, "/contact")
	form, err := h.contact.Submit(r.Context(), clientKey(r), v.Locale().String(), fields)

	state := components.ContactState{Status: form.Status(), Fields: form.Fields()}
	status := http.StatusOK

	var verr *contact.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &verr):
		state.FieldErrors = verr.Fields
		state.Notice = "contact.form.invalid"
		status = http.StatusUnprocessableEntity
	case errors.Is(err, contact.ErrRateLimited):
		state.Notice = "contact.form.rateLimited"
		status = http.StatusTooManyRequests
	default:
		h.log.Error("contact submission failed", zap.Error(err))
		state.Notice = "contact.form.error"
		status = http.StatusBadGateway
	}

	h.renderContact(w, r, status, state)
}

func (h *Handler) renderContact(w http.ResponseWriter, r *http.Request, status int, state components.ContactState) {
	v := h.view(r, "/contact")
	h.render(w, status, h.contentPage(v, "contact", components.ContactContent(v, state)))
}

// clientKey identifies the visitor for rate limiting by the connection's
// address. Forwarded headers only count when the router trusts proxies and
// has rewritten RemoteAddr from them.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
