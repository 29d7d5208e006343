package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/belphemur/choghadiya/internal/config"
	"github.com/belphemur/choghadiya/internal/constants"
	"github.com/belphemur/choghadiya/internal/logging"
	"github.com/belphemur/choghadiya/internal/watcher"
)

//go:embed templates/*.html
var templateFS embed.FS

// BaseHandler contains common handler functionality
type BaseHandler struct {
	tmpl    *template.Template
	Config  *config.Config
	Watcher *watcher.Watcher
	Clock   watcher.Clock
	logger  zerolog.Logger

	// CSSVersion is appended to stylesheet links for cache busting
	CSSVersion string
}

// NewBaseHandler creates a common base handler with shared components.
// A nil clock falls back to the system clock.
func NewBaseHandler(cfg *config.Config, w *watcher.Watcher, clock watcher.Clock) (*BaseHandler, error) {
	logger := logging.GetLogger("base-handler")
	logger.Debug().Msg("Parsing templates")

	if clock == nil {
		clock = watcher.SystemClock{}
	}

	funcMap := template.FuncMap{
		"join": strings.Join,
	}

	// Parse only layout.html initially
	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		logger.Error().Err(err).Msg("Failed to parse templates")
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	logger.Debug().Msg("Templates parsed successfully")

	return &BaseHandler{
		tmpl:    tmpl,
		Config:  cfg,
		Watcher: w,
		Clock:   clock,
		logger:  logger,
	}, nil
}

// RenderTemplate renders a page template inside the layout
func (h *BaseHandler) RenderTemplate(w http.ResponseWriter, name string, data interface{}) {
	h.logger.Debug().Str("template_name", name).Msg("Executing template")

	// Clone the base template (which contains layout.html)
	tmpl, err := h.tmpl.Clone()
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to clone template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	_, err = tmpl.ParseFS(templateFS, "templates/"+name)
	if err != nil {
		h.logger.Error().Err(err).Str("template", name).Msg("Failed to parse page template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		h.logger.Error().Err(err).Str("template", name).Msg("Failed to execute template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Now returns the current instant from the handler clock
func (h *BaseHandler) Now() time.Time {
	return h.Clock.Now()
}

// BasePageData contains common data for all pages
type BasePageData struct {
	AppName     string
	CurrentYear int
	CurrentPath string
	Lang        constants.Language
	OtherLang   constants.Language
	IsHindi     bool
	CSSVersion  string
}

// NewBasePageData creates a new BasePageData with common fields populated
func (h *BaseHandler) NewBasePageData(r *http.Request, lang constants.Language) BasePageData {
	return BasePageData{
		AppName:     constants.AppName,
		CurrentYear: h.Now().Year(),
		CurrentPath: r.URL.Path,
		Lang:        lang,
		OtherLang:   otherLanguage(lang),
		IsHindi:     lang == constants.LanguageHindi,
		CSSVersion:  h.CSSVersion,
	}
}
