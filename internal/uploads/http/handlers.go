package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/ecap-org/ecap-directory/internal/api/http"
	"github.com/ecap-org/ecap-directory/internal/uploads/domain"
	"github.com/ecap-org/ecap-directory/internal/uploads/service"
)

// multipartSlack covers the multipart envelope around the file part.
const multipartSlack = 1 << 20

type Handler struct {
	uploads *service.UploadService
}

func New(uploads *service.UploadService) *Handler {
	return &Handler{uploads: uploads}
}

// Upload accepts a multipart "file" field and returns its public URL
func (h *Handler) Upload(c *gin.Context) {
	limit := h.uploads.MaxBytes() + multipartSlack
	if c.Request.ContentLength > limit {
		httpapi.Error(c, h.uploads.TooLargeError())
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			httpapi.Error(c, h.uploads.TooLargeError())
			return
		}
		httpapi.Error(c, domain.ErrNoFile)
		return
	}

	f, err := fh.Open()
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	defer f.Close()

	res, err := h.uploads.Upload(c.Request.Context(), domain.File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Register mounts POST /upload. rg must already require an admin.
func (h *Handler) Register(rg gin.IRoutes) {
	rg.POST("/upload", h.Upload)
}
