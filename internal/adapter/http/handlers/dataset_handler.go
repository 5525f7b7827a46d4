package handlers

import (
	"io"
	"net/http"

	response "bp_analytics/internal/adapter/http/dto/response"
	"bp_analytics/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DatasetHandler ingests the daily BP workbook upload.
type DatasetHandler struct {
	usecase usecase.IDatasetUseCase
}

func NewDatasetHandler(uc usecase.IDatasetUseCase) *DatasetHandler {
	return &DatasetHandler{usecase: uc}
}

// Upload godoc
// @Summary      Upload the daily BP workbook
// @Description  Processes the two-sheet xlsx export and returns the dataset handle. Identical bytes resolve to the cached dataset.
// @Tags         datasets
// @Accept       multipart/form-data
// @Produce      json
// @Security     Bearer
// @Param        file formData file true "BP xlsx export"
// @Success      201 {object} response.DatasetResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /datasets [post]
func (h *DatasetHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(errMissingUploadFile.HTTPStatus, errMissingUploadFile.ToHTTPError())
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(errMissingUploadFile.HTTPStatus, errMissingUploadFile.ToHTTPError())
		return
	}
	defer func() { _ = f.Close() }()

	content, err := io.ReadAll(f)
	if err != nil {
		appErr := mapDatasetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	dataset, err := h.usecase.Ingest(c.Request.Context(), header.Filename, content)
	if err != nil {
		appErr := mapDatasetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDataset(dataset))
}
