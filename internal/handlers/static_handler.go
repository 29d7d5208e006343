package handlers

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/belphemur/choghadiya/internal/logging"
)

//go:embed assets/css/*.css
var assetsFS embed.FS

// StaticHandler manages static file serving with ETag support
type StaticHandler struct {
	logger     zerolog.Logger
	cssETag    string // Cached ETag for CSS file
	cssContent []byte // Cached CSS file content
}

// NewStaticHandler creates a new static file handler
func NewStaticHandler() (*StaticHandler, error) {
	logger := logging.GetLogger("static-handler")

	css, err := assetsFS.ReadFile("assets/css/app.css")
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read stylesheet for ETag calculation")
		return nil, fmt.Errorf("failed to read CSS file: %w", err)
	}

	// Quoted as per RFC 7232
	cssHash := sha256.Sum256(css)
	cssETag := fmt.Sprintf("\"%s\"", hex.EncodeToString(cssHash[:]))
	logger.Debug().Str("etag", cssETag).Int("content_size", len(css)).Msg("Cached CSS file with ETag")

	return &StaticHandler{
		logger:     logger,
		cssETag:    cssETag,
		cssContent: css,
	}, nil
}

// RegisterRoutes registers static asset routes
func (h *StaticHandler) RegisterRoutes(r chi.Router) {
	r.Get("/static/css/app.css", h.serveCSS)
}

func (h *StaticHandler) serveCSS(w http.ResponseWriter, r *http.Request) {
	h.serveAsset(w, r, h.cssContent, h.cssETag, "text/css; charset=utf-8")
}

// serveAsset is a helper to serve static assets with ETag support
func (h *StaticHandler) serveAsset(w http.ResponseWriter, r *http.Request, content []byte, etag string, contentType string) {
	// Set ETag header first
	w.Header().Set("ETag", etag)

	if ifNoneMatch := r.Header.Get("If-None-Match"); ifNoneMatch != "" {
		if matchesETag(ifNoneMatch, etag) {
			h.logger.Debug().Str("if_none_match", ifNoneMatch).Msg("ETag matches - returning 304 Not Modified")
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=43200, must-revalidate")

	if _, err := w.Write(content); err != nil {
		h.logger.Error().Err(err).Msg("Failed to write response")
	}
}

// matchesETag checks if the If-None-Match header matches the current ETag.
// Weak validators (W/"...") compare equal to their strong form.
func matchesETag(ifNoneMatch, currentETag string) bool {
	if strings.TrimSpace(ifNoneMatch) == "*" {
		return true
	}
	for _, etag := range parseETags(ifNoneMatch) {
		if strings.TrimPrefix(etag, "W/") == currentETag {
			return true
		}
	}
	return false
}

// parseETags parses comma-separated ETags from If-None-Match header
func parseETags(header string) []string {
	parts := strings.Split(header, ",")
	etags := make([]string, 0, len(parts))
	for _, part := range parts {
		etag := strings.TrimSpace(part)
		if etag != "" {
			etags = append(etags, etag)
		}
	}
	return etags
}

// CSSVersion returns the CSS ETag without quotes, for cache-busting links
func (h *StaticHandler) CSSVersion() string {
	return strings.Trim(h.cssETag, "\"")
}
