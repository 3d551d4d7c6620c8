package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/pkg/models"
)

// createJobHandler handles POST /api/v1/jobs.
func (s *Server) createJobHandler(c *gin.Context) {
	var req models.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	job, err := s.jobs.CreateJob(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toJobView(job))
}

// listJobsHandler handles GET /api/v1/jobs. ?active=true filters to open
// postings.
func (s *Server) listJobsHandler(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	jobs, err := s.jobs.ListJobs(c.Request.Context(), activeOnly)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	views := make([]JobView, 0, len(jobs))
	for _, j := range jobs {
		views = append(views, toJobView(j))
	}
	c.JSON(http.StatusOK, gin.H{"jobs": views, "total_count": len(views)})
}

// getJobHandler handles GET /api/v1/jobs/:id.
func (s *Server) getJobHandler(c *gin.Context) {
	job, err := s.jobs.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toJobView(job))
}
