package api

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hireloop/hireloop/pkg/models"
)

// maxResumeBytes bounds the accepted résumé upload.
const maxResumeBytes = 2 << 20

// createCandidateHandler handles POST /api/v1/candidates. Accepts either a
// JSON body or a multipart form with a "resume" file part; the upload is
// stored as-is and its text (already extracted by the intake service for
// binary formats) lands in resume_text.
func (s *Server) createCandidateHandler(c *gin.Context) {
	var req models.CreateCandidateRequest

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := s.bindCandidateForm(c, &req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	cand, err := s.candidates.CreateCandidate(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCandidateView(cand))
}

func (s *Server) bindCandidateForm(c *gin.Context, req *models.CreateCandidateRequest) error {
	req.FullName = c.PostForm("full_name")
	req.Email = c.PostForm("email")
	req.Phone = c.PostForm("phone")
	req.ResumeText = c.PostForm("resume_text")

	header, err := c.FormFile("resume")
	if err != nil {
		// No file part; inline fields alone are fine.
		return nil
	}
	if header.Size > maxResumeBytes {
		return fmt.Errorf("resume exceeds %d bytes", maxResumeBytes)
	}

	f, err := header.Open()
	if err != nil {
		return fmt.Errorf("failed to read resume upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxResumeBytes+1))
	if err != nil {
		return fmt.Errorf("failed to read resume upload: %w", err)
	}

	if s.store != nil {
		key := path.Join("resumes", uuid.NewString()+path.Ext(header.Filename))
		if stored, err := s.store.Save(key, data); err == nil {
			req.ResumePath = stored
		}
	}
	if req.ResumeText == "" {
		req.ResumeText = string(data)
	}
	return nil
}

// getCandidateHandler handles GET /api/v1/candidates/:id.
func (s *Server) getCandidateHandler(c *gin.Context) {
	cand, err := s.candidates.GetCandidate(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCandidateView(cand))
}
