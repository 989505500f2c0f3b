package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/julienschmidt/httprouter"

	"nexusplater/internal/inquiry/service"
	apperrors "nexusplater/pkg/errors"
	"nexusplater/pkg/httputil"
	"nexusplater/pkg/logger"
	"nexusplater/pkg/model"
)

// maxMultipartMemory bounds the in-memory part of multipart form parsing.
const maxMultipartMemory = 1 << 20

type InquiryHandler struct {
	service service.InquiryService
	log     *logger.Logger
}

func NewInquiryHandler(service service.InquiryService, log *logger.Logger) *InquiryHandler {
	return &InquiryHandler{
		service: service,
		log:     log,
	}
}

// Submit accepts the contact form. Browser form posts get redirects,
// AJAX and API clients get JSON.
func (h *InquiryHandler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	submission, err := parseSubmission(r)
	if err != nil {
		h.respondError(w, r, apperrors.InvalidInput("Invalid request body"))
		return
	}

	inquiry, err := h.service.Submit(r.Context(), submission)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if wantsJSON(r) {
		if writeErr := httputil.WriteJSON(w, http.StatusCreated, map[string]any{
			"success":  true,
			"id":       inquiry.ID,
			"redirect": "/success?id=" + url.QueryEscape(inquiry.ID),
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Submit", "error", writeErr)
		}
		return
	}

	http.Redirect(w, r, "/success?id="+url.QueryEscape(inquiry.ID), http.StatusSeeOther)
}

func (h *InquiryHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	inquiry, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, inquiry); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
	}
}

func (h *InquiryHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/submitInquiry", h.Submit)
	router.GET("/api/v1/inquiries/:id", h.GetByID)
}

func (h *InquiryHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperrors.AsAppError(err)

	if wantsJSON(r) {
		if writeErr := httputil.WriteError(w, appErr); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Submit", "error", writeErr)
		}
		return
	}

	target := fmt.Sprintf("/error?status=%d&message=%s",
		appErr.StatusCode(), url.QueryEscape(appErr.Message))
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// parseSubmission reads the contact form from a urlencoded form post,
// a multipart form post, or a JSON body.
func parseSubmission(r *http.Request) (*model.Submission, error) {
	contentType := r.Header.Get("Content-Type")

	switch {
	case strings.HasPrefix(contentType, "application/json"):
		var submission model.Submission
		if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
			return nil, err
		}
		return &submission, nil

	case strings.HasPrefix(contentType, "multipart/form-data"):
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, err
		}

	default:
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
	}

	return &model.Submission{
		Name:    r.FormValue("name"),
		Mobile:  r.FormValue("mobile"),
		Email:   r.FormValue("email"),
		Message: r.FormValue("message"),
	}, nil
}

// wantsJSON reports whether the client expects a JSON response rather
// than a browser redirect.
func wantsJSON(r *http.Request) bool {
	if r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}
