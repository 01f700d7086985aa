package api

import (
	"time"

	"github.com/labstack/echo/v4"

	"SignalDesk/internal/domain/models"
	domrepo "SignalDesk/internal/domain/repository"
	pkghttp "SignalDesk/pkg/http"
)

var errNotPrimed = pkghttp.NotFoundError("no derivation cycle has completed yet")

// SignalHandler serves the derived news/macro/ideas snapshot.
type SignalHandler struct {
	store domrepo.SnapshotStore
	start time.Time
}

// NewSignalHandler creates the API handler over the snapshot store.
func NewSignalHandler(store domrepo.SnapshotStore) *SignalHandler {
	return &SignalHandler{store: store, start: time.Now()}
}

// RegisterRoutes mounts the API endpoints.
func (h *SignalHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/health", h.Health)
	g.GET("/news", h.News)
	g.GET("/macro", h.Macro)
	g.GET("/ideas", h.Ideas)
	g.GET("/snapshot", h.Snapshot)
}

// Health reports liveness and whether a first cycle has completed.
func (h *SignalHandler) Health(c echo.Context) error {
	snap := h.store.Latest()
	status := map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(h.start).Round(time.Second).String(),
		"primed": snap != nil,
	}
	if snap != nil {
		status["updatedAt"] = snap.UpdatedAt
	}
	return pkghttp.SuccessResponse(c, status)
}

// News lists the latest news items with optional category filter and limit.
func (h *SignalHandler) News(c echo.Context) error {
	var req models.NewsRequest
	if verrs := pkghttp.ReadAndValidateRequest(c, &req); verrs != nil {
		return pkghttp.BadRequestResponse(c, verrs)
	}

	snap := h.store.Latest()
	if snap == nil {
		return pkghttp.ListResponse(c, []models.NewsItem{}, 0)
	}

	items := make([]models.NewsItem, 0, len(snap.News))
	for _, item := range snap.News {
		if req.Category != "" && item.Category != models.Category(req.Category) {
			continue
		}
		items = append(items, item)
		if len(items) >= req.Limit {
			break
		}
	}

	return pkghttp.ListResponse(c, items, int64(len(items)))
}

// Macro returns the current market regime snapshot.
func (h *SignalHandler) Macro(c echo.Context) error {
	snap := h.store.Latest()
	if snap == nil {
		return pkghttp.AppErrorResponse(c, errNotPrimed)
	}
	return pkghttp.SuccessResponse(c, snap.Macro)
}

// Ideas lists current trade ideas with optional conviction filter.
func (h *SignalHandler) Ideas(c echo.Context) error {
	var req models.IdeasRequest
	if verrs := pkghttp.ReadAndValidateRequest(c, &req); verrs != nil {
		return pkghttp.BadRequestResponse(c, verrs)
	}

	snap := h.store.Latest()
	if snap == nil {
		return pkghttp.ListResponse(c, []models.TradeIdea{}, 0)
	}

	ideas := make([]models.TradeIdea, 0, len(snap.Ideas))
	for _, idea := range snap.Ideas {
		if req.Conviction != "" && idea.Conviction != models.Conviction(req.Conviction) {
			continue
		}
		ideas = append(ideas, idea)
	}

	return pkghttp.ListResponse(c, ideas, int64(len(ideas)))
}

// Snapshot returns the full pipeline snapshot in one payload.
func (h *SignalHandler) Snapshot(c echo.Context) error {
	snap := h.store.Latest()
	if snap == nil {
		return pkghttp.AppErrorResponse(c, errNotPrimed)
	}
	return pkghttp.SuccessResponse(c, snap)
}
