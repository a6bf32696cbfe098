package http

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bazaarly/storefront/internal/domain"
	"github.com/bazaarly/storefront/internal/usecase"
)

const (
	sessionCookie = "browse_sid"
	browsePath    = "/api/v1/browse"
	userHeader    = "X-User-ID"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog  domain.CatalogClient
	sessions usecase.SessionRegistry
}

// NewHandler creates a new HTTP handler
func NewHandler(catalog domain.CatalogClient, sessions usecase.SessionRegistry) *Handler {
	return &Handler{
		catalog:  catalog,
		sessions: sessions,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "storefront-browse",
		"version": "1.0.0",
	})
}

// BrowseResponse is the payload of GET /api/v1/browse.
type BrowseResponse struct {
	Products     []domain.Product   `json:"products"`
	Categories   []domain.Category  `json:"categories"`
	Filter       domain.FilterState `json:"filter"`
	CatalogState usecase.LoadStatus `json:"catalogState"`
}

// Browse derives the visible product list for the request's query string. The
// URL is authoritative for filters, so the session's store re-decodes it on
// every request. The catalog is fetched once per page-view session and again
// when the viewer identity changes; a degraded catalog still renders, with
// empty collections, never as an error page.
func (h *Handler) Browse(c *gin.Context) {
	user := viewerFrom(c)
	query := c.Request.URL.Query()

	session := h.sessionFor(c, query)
	session.Store().LocationChanged(query)

	if !session.Loaded() || !session.SameViewer(user) {
		if err := session.Refresh(c.Request.Context(), user); err != nil {
			// Superseded by a newer load for this session; the newer snapshot wins.
			log.Printf("[BROWSE] refresh skipped: %v", err)
		}
	}

	snap := session.Snapshot()
	if snap.Generation == 0 {
		// Nothing installed yet (the first load was superseded); render the
		// degraded shape rather than nil collections and a blank status.
		snap.Categories = []domain.Category{}
		snap.Status = usecase.LoadFailed
	}
	c.JSON(http.StatusOK, BrowseResponse{
		Products:     session.VisibleProducts(),
		Categories:   snap.Categories,
		Filter:       session.Store().State(),
		CatalogState: snap.Status,
	})
}

// ToggleCategory computes the next location for a single category toggle and
// answers with a redirect to it, so the address bar stays the single source
// of truth for filter state. Foreign query parameters ride along untouched.
func (h *Handler) ToggleCategory(c *gin.Context) {
	category := strings.TrimSpace(c.Param("category"))
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidRequest.Error()})
		return
	}

	query := c.Request.URL.Query()
	session := h.sessionFor(c, query)
	store := session.Store()
	store.LocationChanged(query)

	// The redirect below plays the Navigator role: the store's state updates
	// only when the client follows it back into Browse.
	next := store.ToggleCategory(category)

	target := url.URL{Path: browsePath, RawQuery: next.Encode()}
	c.Redirect(http.StatusSeeOther, target.String())
}

// sessionFor returns the live session for the request's cookie, creating one
// seeded from the current query (and setting the cookie) on first contact.
func (h *Handler) sessionFor(c *gin.Context, query url.Values) *usecase.BrowseSession {
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		if s, ok := h.sessions.Get(id); ok {
			return s
		}
	}

	id := uuid.NewString()
	s := usecase.NewBrowseSession(h.catalog, query, nil)
	h.sessions.Put(id, s)
	c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	return s
}

// viewerFrom reads the viewer identity the auth collaborator forwards.
// No header means an anonymous visitor.
func viewerFrom(c *gin.Context) *domain.User {
	id := strings.TrimSpace(c.GetHeader(userHeader))
	if id == "" {
		return nil
	}
	return &domain.User{ID: id}
}
