package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ecap-org/ecap-directory/internal/apperr"
	"github.com/ecap-org/ecap-directory/internal/logging"
)

// Error writes err as a {"error": ...} body with the status matching its kind.
// Unclassified errors are logged and reported as a generic 500.
func Error(c *gin.Context, err error) {
	e, ok := apperr.As(err)
	if !ok {
		logging.New(c.Request.Context()).Error(c.Request.Method+" "+c.FullPath(), err)
		c.JSON(apperr.HTTPStatus(apperr.KindInternal), gin.H{"error": "internal server error"})
		return
	}

	body := gin.H{"error": e.Message}
	if e.Blocking > 0 {
		body["blockingProjects"] = e.Blocking
	}
	c.JSON(apperr.HTTPStatus(e.Kind), body)
}
