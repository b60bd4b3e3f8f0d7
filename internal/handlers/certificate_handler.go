package handlers

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Hazykiller/NGO-WEBSITE/internal/services"

	"github.com/gin-gonic/gin"
)

type CertificateHandler struct {
	*BaseHandler
	certificates *services.CertificateService
}

func NewCertificateHandler(base *BaseHandler, certificates *services.CertificateService) *CertificateHandler {
	return &CertificateHandler{
		BaseHandler:  base,
		certificates: certificates,
	}
}

func (h *CertificateHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/certificate/:filename", h.Download)
}

// Download streams a generated certificate as an attachment download.
func (h *CertificateHandler) Download(c *gin.Context) {
	filename := c.Param("filename")

	reader, size, err := h.certificates.Fetch(c.Request.Context(), filename)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", strconv.FormatInt(size, 10))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	// Stream file to client
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Headers already sent, nothing to respond with
		c.Error(err)
	}
}
