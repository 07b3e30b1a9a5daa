package contact

import (
	"errors"
	"net/http"

	platformi18n "github.com/ezmnysniper7/portfolio/internal/platform/i18n"
	contactservice "github.com/ezmnysniper7/portfolio/internal/services/contact"
	module "github.com/ezmnysniper7/portfolio/internal/services/web/module"
	apperrors "github.com/ezmnysniper7/portfolio/internal/services/web/platform/errors"
	"github.com/ezmnysniper7/portfolio/internal/services/web/platform/httpx"
	webi18n "github.com/ezmnysniper7/portfolio/internal/services/web/platform/i18n"
	"github.com/ezmnysniper7/portfolio/internal/services/web/platform/weberror"
)

const successMessage = "Message sent successfully"

type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Locale  string `json:"locale"`
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type handlers struct {
	submitter module.ContactSubmitter
}

func newHandlers(submitter module.ContactSubmitter) handlers {
	return handlers{submitter: submitter}
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	locale := webi18n.PreferredLocale(r)
	r = r.WithContext(webi18n.WithLocale(r.Context(), locale))

	var payload submitRequest
	if err := httpx.DecodeJSON(w, r, &payload); err != nil {
		key := "errors.contact.required"
		if errors.Is(err, httpx.ErrBodyTooLarge) {
			key = "errors.contact.too_long"
		}
		weberror.WriteJSONError(w, r, apperrors.EK(apperrors.KindInvalidInput, key, "decode contact payload: "+err.Error()))
		return
	}
	if requested, ok := platformi18n.Resolve(payload.Locale); ok {
		locale = requested
		r = r.WithContext(webi18n.WithLocale(r.Context(), locale))
	}

	_, err := h.submitter.Submit(r.Context(), contactservice.Submission{
		Name:    payload.Name,
		Email:   payload.Email,
		Message: payload.Message,
		Locale:  locale.String(),
	})
	if err != nil {
		weberror.WriteJSONError(w, r, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, submitResponse{Success: true, Message: successMessage})
}
