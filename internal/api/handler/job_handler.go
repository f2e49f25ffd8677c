package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/claranceatgalvanize/embridge/internal/core/ports"
)

// JobHandler serves the read-only job board endpoints.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List handles GET /api/jobs.
//
// @Summary      List job postings
// @Tags         jobs
// @Produce      json
// @Param        location  query     string  false  "Filter by location"
// @Success      200       {array}   domain.Job
// @Router       /api/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.service.ListJobs(c.Request().Context(), c.QueryParam("location"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// Get handles GET /api/jobs/:id.
//
// @Summary      Get a job posting by id
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job identifier"
// @Success      200  {object}  domain.Job
// @Failure      404  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.service.GetJob(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}
