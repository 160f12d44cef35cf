package dashhttp

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"suburbscope/internal/catalog"
	"suburbscope/internal/chart"
	"suburbscope/internal/fetch"
	"suburbscope/internal/pkg/jsonutil"
)

// canvasWidth is the pixel width the drawing instructions target; the
// browser canvas matches it.
const canvasWidth = 960

// Router exposes the report query endpoints.
type Router struct {
	client  *fetch.Client
	catalog *catalog.Registry
}

// NewRouter builds the API router.
func NewRouter(client *fetch.Client, cat *catalog.Registry) *Router {
	return &Router{client: client, catalog: cat}
}

// Register mounts the API routes under the given group.
func (r *Router) Register(group *gin.RouterGroup) {
	group.GET("/catalog", r.handleCatalog)
	group.GET("/report", r.handleReport)
	group.GET("/report/raw", r.handleReportRaw)
	group.GET("/report/chart", r.handleChartHTML)
	group.GET("/report/chart.png", r.handleChartPNG)
}

func (r *Router) handleCatalog(c *gin.Context) {
	if r.catalog == nil {
		c.JSON(http.StatusOK, catalog.Snapshot{})
		return
	}
	c.JSON(http.StatusOK, r.catalog.Snapshot())
}

// reportQuery resolves suburb slug and endpoint from the query string. The
// endpoint may name a catalog entry; unknown names pass through verbatim so
// custom endpoints keep working.
func (r *Router) reportQuery(c *gin.Context) (slug, endpoint string, ok bool) {
	slug = strings.TrimSpace(c.Query("suburb"))
	endpoint = strings.TrimSpace(c.Query("endpoint"))
	if slug == "" || endpoint == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "suburb and endpoint query parameters are required"})
		return "", "", false
	}
	if r.catalog != nil {
		if ep, found := r.catalog.Endpoint(endpoint); found {
			endpoint = ep.Path
		}
	}
	return slug, endpoint, true
}

func (r *Router) handleReport(c *gin.Context) {
	slug, endpoint, ok := r.reportQuery(c)
	if !ok {
		return
	}
	view, errVal := r.client.FetchView(c.Request.Context(), slug, endpoint)
	if errVal != nil {
		c.JSON(http.StatusBadGateway, errVal)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"summary": view.Summary,
		"table":   view.Table,
		"pairs":   view.Pairs,
		"chart":   chart.Layout(view.Pairs, canvasWidth),
	})
}

// handleReportRaw returns the upstream payload pretty-printed, for users
// who want to inspect the report shape directly.
func (r *Router) handleReportRaw(c *gin.Context) {
	slug, endpoint, ok := r.reportQuery(c)
	if !ok {
		return
	}
	value, errVal := r.client.Fetch(c.Request.Context(), slug, endpoint)
	if errVal != nil {
		c.JSON(http.StatusBadGateway, errVal)
		return
	}
	c.String(http.StatusOK, jsonutil.Pretty(jsonutil.Compact(value)))
}

func (r *Router) handleChartHTML(c *gin.Context) {
	slug, endpoint, ok := r.reportQuery(c)
	if !ok {
		return
	}
	view, errVal := r.client.FetchView(c.Request.Context(), slug, endpoint)
	if errVal != nil {
		c.JSON(http.StatusBadGateway, errVal)
		return
	}
	html, err := chart.BarPage(chartTitle(slug, endpoint), view.Pairs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}
	if len(html) == 0 {
		c.String(http.StatusOK, "no numeric fields to chart")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

func (r *Router) handleChartPNG(c *gin.Context) {
	slug, endpoint, ok := r.reportQuery(c)
	if !ok {
		return
	}
	view, errVal := r.client.FetchView(c.Request.Context(), slug, endpoint)
	if errVal != nil {
		c.JSON(http.StatusBadGateway, errVal)
		return
	}
	png, err := chart.RenderPNG(c.Request.Context(), chartTitle(slug, endpoint), view.Pairs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}
	if len(png) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func chartTitle(slug, endpoint string) string {
	return strings.ToUpper(slug) + " " + endpoint
}
