package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"portfolio.dev/internal/contact"
	"portfolio.dev/internal/dom"
)

// ContactHandler handles the contact form stub
type ContactHandler struct{}

// NewContactHandler creates a new ContactHandler
func NewContactHandler() *ContactHandler {
	return &ContactHandler{}
}

// Submit handles POST /contact. The message is acknowledged, never delivered.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid form")
		return
	}

	msg := contact.Message{
		Name:  r.PostForm.Get("name"),
		Email: r.PostForm.Get("email"),
		Body:  r.PostForm.Get("message"),
	}.Normalize()

	if missing := msg.Missing(); len(missing) > 0 {
		respondHTML(w, http.StatusUnprocessableEntity, notice("contact-error",
			"Please fill in: "+strings.Join(missing, ", ")))
		return
	}

	slog.Info("contact message received", "name", msg.Name, "email", msg.Email, "length", len(msg.Body))
	respondHTML(w, http.StatusOK, notice("contact-success", contact.Acknowledge(msg)))
}

func notice(class, text string) func(io.Writer) error {
	return func(w io.Writer) error {
		return dom.Render(w, dom.El("p", dom.Class(class), dom.Text(text)))
	}
}
