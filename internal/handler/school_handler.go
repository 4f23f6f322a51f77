package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"schooldir/internal/errors"
	"schooldir/internal/model"
	"schooldir/internal/service"
)

// SchoolHandler handles school intake and directory endpoints.
type SchoolHandler struct {
	schoolService    service.SchoolService
	directoryService service.DirectoryService
}

// NewSchoolHandler creates a new school handler.
func NewSchoolHandler(schoolService service.SchoolService, directoryService service.DirectoryService) *SchoolHandler {
	return &SchoolHandler{
		schoolService:    schoolService,
		directoryService: directoryService,
	}
}

// AddSchoolResponse represents a successful school creation.
type AddSchoolResponse struct {
	Message  string `json:"message"`
	SchoolID uint   `json:"schoolId"`
}

// SchoolListResponse wraps the public listing.
type SchoolListResponse struct {
	Schools []model.SchoolSummary `json:"schools"`
}

// AddSchool godoc
// @Summary Create a school record with an uploaded image
// @Tags schools
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string true "School name"
// @Param address formData string true "Street address"
// @Param city formData string true "City"
// @Param state formData string true "State"
// @Param contact formData string true "Contact phone"
// @Param email_id formData string true "Contact email"
// @Param image formData file true "School image (jpeg/png/webp/gif, max 5MB)"
// @Success 200 {object} AddSchoolResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /add-school [post]
func (h *SchoolHandler) AddSchool(c echo.Context) error {
	in := service.SchoolInput{
		Name:    c.FormValue("name"),
		Address: c.FormValue("address"),
		City:    c.FormValue("city"),
		State:   c.FormValue("state"),
		Contact: c.FormValue("contact"),
		EmailID: c.FormValue("email_id"),
	}

	// A missing file part is not an error here; the intake pipeline names
	// the field in its own validation response.
	if fh, err := c.FormFile("image"); err == nil {
		in.Image = &service.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		}
	}

	schoolID, err := h.schoolService.AddSchool(c.Request().Context(), in)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, AddSchoolResponse{
		Message:  "School added successfully!",
		SchoolID: schoolID,
	})
}

// GetSchools godoc
// @Summary List schools with validated sorting
// @Tags schools
// @Produce json
// @Param sortBy query string false "Sort field: name, city, or created_at" default(name)
// @Param order query string false "Sort direction: ASC or DESC" default(ASC)
// @Success 200 {object} SchoolListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /get-schools [get]
func (h *SchoolHandler) GetSchools(c echo.Context) error {
	schools, err := h.directoryService.ListSchools(c.Request().Context(), c.QueryParam("sortBy"), c.QueryParam("order"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if schools == nil {
		schools = []model.SchoolSummary{}
	}
	return c.JSON(http.StatusOK, SchoolListResponse{Schools: schools})
}

// Stats godoc
// @Summary Aggregate directory stats for the dashboard
// @Tags schools
// @Produce json
// @Success 200 {object} service.Stats
// @Failure 500 {object} errors.ErrorResponse
// @Router /school-stats [get]
func (h *SchoolHandler) Stats(c echo.Context) error {
	stats, err := h.directoryService.Stats(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, stats)
}
