// Package handler serves the public marketing pages that sit in front of
// the inquiry form: home, success, and error, plus static assets.
package handler

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"nexusplater/internal/inquiry/service"
	"nexusplater/pkg/config"
	"nexusplater/pkg/logger"
	"nexusplater/pkg/messages"
)

//go:embed templates/*.html
var templateFS embed.FS

type PageHandler struct {
	tmpl    *template.Template
	service service.InquiryService
	catalog messages.Catalog
	cfg     *config.Config
	log     *logger.Logger
}

type pageData struct {
	Title        string
	Message      string
	Status       int
	InquiryID    string
	ContactEmail string
	ContactPhone string
}

func NewPageHandler(svc service.InquiryService, catalog messages.Catalog, cfg *config.Config) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &PageHandler{
		tmpl:    tmpl,
		service: svc,
		catalog: catalog,
		cfg:     cfg,
		log:     cfg.Log,
	}, nil
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.render(w, http.StatusOK, "home.html", pageData{
		Title:        "Contact Us",
		ContactEmail: h.cfg.ContactEmail,
		ContactPhone: h.cfg.ContactPhone,
	})
}

// Success confirms an accepted inquiry. The id query parameter is
// optional; when it resolves to a stored inquiry the page confirms the
// reference, otherwise it falls back to the generic thank-you text.
func (h *PageHandler) Success(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	data := pageData{
		Title:        "Thank You",
		Message:      h.catalog.Get(messages.ThankYou),
		ContactEmail: h.cfg.ContactEmail,
		ContactPhone: h.cfg.ContactPhone,
	}

	if id := r.URL.Query().Get("id"); id != "" {
		if inquiry, err := h.service.GetByID(r.Context(), id); err == nil {
			data.InquiryID = inquiry.ID
		}
	}

	h.render(w, http.StatusOK, "success.html", data)
}

func (h *PageHandler) ErrorPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	status, err := strconv.Atoi(r.URL.Query().Get("status"))
	if err != nil || status < 400 || status > 599 {
		status = http.StatusInternalServerError
	}

	message := r.URL.Query().Get("message")
	if message == "" {
		message = h.catalog.Get(messages.ServerError)
	}

	h.render(w, status, "error.html", pageData{
		Title:        "Something Went Wrong",
		Status:       status,
		Message:      message,
		ContactEmail: h.cfg.ContactEmail,
		ContactPhone: h.cfg.ContactPhone,
	})
}

// NotFound handles unmatched routes. Missing assets get a plain 404 so
// browsers don't render an HTML page into an <img> or stylesheet slot;
// missing pages redirect to the error page.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	if path.Ext(r.URL.Path) != "" {
		http.NotFound(w, r)
		return
	}

	target := "/error?status=404&message=" + url.QueryEscape(h.catalog.Get(messages.PageNotFound))
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *PageHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Home)
	router.GET("/home", h.Home)
	router.GET("/success", h.Success)
	router.GET("/error", h.ErrorPage)
	router.ServeFiles("/static/*filepath", http.Dir(h.cfg.PublicDir))
	router.NotFound = http.HandlerFunc(h.NotFound)
}

func (h *PageHandler) render(w http.ResponseWriter, status int, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.log.Error("Failed to render template", "template", name, "error", err)
	}
}
