package handlers

import (
	"net/http"

	request "bp_analytics/internal/adapter/http/dto/request"
	response "bp_analytics/internal/adapter/http/dto/response"
	"bp_analytics/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the read-only reporting surface over a cached
// dataset. Every endpoint accepts the same filter query string.
type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// bindFilter reads the shared filter query string, responding on error.
func bindFilter(c *gin.Context) (usecase.Filter, bool) {
	var payload request.FilterRequest
	if err := c.ShouldBindQuery(&payload); err != nil {
		c.JSON(errInvalidFilterPayload.HTTPStatus, errInvalidFilterPayload.ToHTTPError())
		return usecase.Filter{}, false
	}
	f, err := payload.ToFilter()
	if err != nil {
		c.JSON(errInvalidFilterPayload.HTTPStatus, errInvalidFilterPayload.ToHTTPError())
		return usecase.Filter{}, false
	}
	return f, true
}

// Summary godoc
// @Summary      KPI block for the filtered dataset
// @Tags         reports
// @Produce      json
// @Security     Bearer
// @Param        id path string true "dataset id"
// @Success      200 {object} response.SummaryResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /datasets/{id}/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}
	summary, err := h.usecase.Summary(c.Request.Context(), c.Param("id"), f)
	if err != nil {
		appErr := mapDatasetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSummary(summary))
}

// Orders godoc
// @Summary      Filtered order listing
// @Tags         reports
// @Produce      json
// @Security     Bearer
// @Param        id path string true "dataset id"
// @Param        search query string false "case-insensitive substring across displayed columns"
// @Success      200 {object} response.OrderListResponse
// @Router       /datasets/{id}/orders [get]
func (h *ReportHandler) Orders(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}
	rows, err := h.usecase.Orders(c.Request.Context(), c.Param("id"), f)
	if err != nil {
		appErr := mapDatasetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEnrichedOrders(rows))
}

// Export godoc
// @Summary      CSV download of the filtered listing
// @Tags         reports
// @Produce      text/csv
// @Security     Bearer
// @Param        id path string true "dataset id"
// @Success      200 {string} string "csv content"
// @Router       /datasets/{id}/orders/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}
	export, err := h.usecase.Export(c.Request.Context(), c.Param("id"), f)
	if err != nil {
		appErr := mapDatasetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", export.Content)
}

// Breakdown godoc
// @Summary      Single-dimension group-by
// @Tags         reports
// @Produce      json
// @Security     Bearer
// @Param        id path string true "dataset id"
// @Param        dimension path string true "zone|provider|supervisor|status|specialty|month"
// @Success      200 {object} response.BreakdownResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /datasets/{id}/breakdowns/{dimension} [get]
func (h *ReportHandler) Breakdown(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}
	id := c.Param("id")
	dimension := c.Param("dimension")

	if dimension == "month" {
		months, err := h.usecase.MonthlyTrend(c.Request.Context(), id, f)
		if err != nil {
			appErr := mapDatasetError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromMonthlyTrend(months))
		return
	}

	rows, err := h.usecase.Breakdown(c.Request.Context(), id, f, dimension)
	if err != nil {
		appErr := mapDatasetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBreakdown(dimension, rows))
}

// Providers godoc
// @Summary      Provider comparison table
// @Tags         reports
// @Produce      json
// @Security     Bearer
// @Param        id path string true "dataset id"
// @Success      200 {array} response.ProviderStatsResponse
// @Router       /datasets/{id}/providers [get]
func (h *ReportHandler) Providers(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}
	rows, err := h.usecase.ProviderComparison(c.Request.Context(), c.Param("id"), f)
	if err != nil {
		appErr := mapDatasetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProviderStats(rows))
}

// Supervisors godoc
// @Summary      Supervisor comparison table
// @Tags         reports
// @Produce      json
// @Security     Bearer
// @Param        id path string true "dataset id"
// @Success      200 {array} response.SupervisorStatsResponse
// @Router       /datasets/{id}/supervisors [get]
func (h *ReportHandler) Supervisors(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}
	rows, err := h.usecase.SupervisorComparison(c.Request.Context(), c.Param("id"), f)
	if err != nil {
		appErr := mapDatasetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSupervisorStats(rows))
}

// ProviderDetail godoc
// @Summary      Drill-down for one provider
// @Tags         reports
// @Produce      json
// @Security     Bearer
// @Param        id path string true "dataset id"
// @Param        name path string true "provider name"
// @Success      200 {object} response.DetailResponse
// @Router       /datasets/{id}/providers/{name} [get]
func (h *ReportHandler) ProviderDetail(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}
	f.Provider = c.Param("name")
	h.detail(c, f, c.Param("name"), usecase.DimensionZone)
}

// SupervisorDetail godoc
// @Summary      Drill-down for one supervisor
// @Tags         reports
// @Produce      json
// @Security     Bearer
// @Param        id path string true "dataset id"
// @Param        name path string true "supervisor name"
// @Success      200 {object} response.DetailResponse
// @Router       /datasets/{id}/supervisors/{name} [get]
func (h *ReportHandler) SupervisorDetail(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}
	f.Supervisor = c.Param("name")
	h.detail(c, f, c.Param("name"), usecase.DimensionProvider)
}

// detail assembles the scoped KPI block plus the breakdowns the detail
// tabs display. secondary is the dimension that differs between the
// provider view (zones) and the supervisor view (providers).
func (h *ReportHandler) detail(c *gin.Context, f usecase.Filter, name, secondary string) {
	ctx := c.Request.Context()
	id := c.Param("id")

	summary, err := h.usecase.Summary(ctx, id, f)
	if err != nil {
		appErr := mapDatasetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	statuses, err := h.usecase.Breakdown(ctx, id, f, usecase.DimensionStatus)
	if err != nil {
		appErr := mapDatasetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	secondaryRows, err := h.usecase.Breakdown(ctx, id, f, secondary)
	if err != nil {
		appErr := mapDatasetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	specialties, err := h.usecase.Breakdown(ctx, id, f, usecase.DimensionSpecialty)
	if err != nil {
		appErr := mapDatasetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	monthly, err := h.usecase.MonthlyTrend(ctx, id, f)
	if err != nil {
		appErr := mapDatasetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	detail := response.DetailResponse{
		Name:      name,
		Summary:   response.FromSummary(summary),
		Statuses:  response.FromBreakdown(usecase.DimensionStatus, statuses),
		Specialty: response.FromBreakdown(usecase.DimensionSpecialty, specialties),
		Monthly:   response.FromMonthlyTrend(monthly),
	}
	if secondary == usecase.DimensionZone {
		detail.Zones = response.FromBreakdown(secondary, secondaryRows)
	} else {
		detail.Providers = response.FromBreakdown(secondary, secondaryRows)
	}
	c.JSON(http.StatusOK, detail)
}

// Heatmap godoc
// @Summary      Supervisor x zone order counts
// @Tags         reports
// @Produce      json
// @Security     Bearer
// @Param        id path string true "dataset id"
// @Success      200 {object} response.HeatmapResponse
// @Router       /datasets/{id}/heatmap [get]
func (h *ReportHandler) Heatmap(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}
	hm, err := h.usecase.Heatmap(c.Request.Context(), c.Param("id"), f)
	if err != nil {
		appErr := mapDatasetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHeatmap(hm))
}

// FilterOptions godoc
// @Summary      Distinct filter values for dropdown population
// @Tags         reports
// @Produce      json
// @Security     Bearer
// @Param        id path string true "dataset id"
// @Success      200 {object} response.FilterOptionsResponse
// @Router       /datasets/{id}/filters [get]
func (h *ReportHandler) FilterOptions(c *gin.Context) {
	opts, err := h.usecase.FilterOptions(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDatasetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFilterOptions(opts))
}
