package response

import (
	"net/http"

	"lycosidae/errs"

	"github.com/gin-gonic/gin"
)

// Error sends a standardized error response for a bare status and message.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": gin.H{"code": codeForStatus(status), "message": message}})
}

// FromError translates a services-layer error into the standardized error
// response, using the errs taxonomy to pick the status code.
func FromError(c *gin.Context, err error) {
	status := errs.HTTPStatus(err)
	if e, ok := err.(*errs.Error); ok {
		c.JSON(status, gin.H{"error": e})
		return
	}
	c.JSON(status, gin.H{"error": gin.H{"code": errs.CodeInternal, "message": err.Error()}})
}

func codeForStatus(status int) errs.Code {
	switch status {
	case http.StatusBadRequest:
		return errs.CodeInvalidField
	case http.StatusNotFound:
		return errs.CodeNotFound
	case http.StatusUnauthorized:
		return errs.CodeUnauthorized
	case http.StatusConflict:
		return errs.CodeDuplicateEntity
	default:
		return errs.CodeInternal
	}
}
