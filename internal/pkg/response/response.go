package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"gymadmin/internal/pkg/validator"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// SuccessWithMessage is used by mutating endpoints; the message takes the
// place of the old one-shot flash notification.
func SuccessWithMessage(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
		"message": message,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// BindError reports a request-body failure. Binding-tag violations become
// the usual field map; anything else (malformed JSON, wrong types) is a
// generic 400.
func BindError(c *gin.Context, err error) {
	if fields := validator.Fields(err); len(fields) > 0 {
		ValidationError(c, fields)
		return
	}
	Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
}

// Internal logs the cause and replies with a generic 500. The cause text is
// only echoed to the client in debug mode.
func Internal(c *gin.Context, err error) {
	log.Printf("internal_error method=%s path=%s error=%q",
		c.Request.Method, c.Request.URL.Path, err)

	body := gin.H{
		"code":    "INTERNAL_ERROR",
		"message": "An internal error occurred",
	}
	if gin.IsDebugging() && err != nil {
		body["details"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   body,
	})
}

// ValidationError reports per-field rule violations. All violated rules are
// reported at once; the client renders them inline next to each field.
func ValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_FAILED",
			"message": "Validation failed",
			"fields":  fields,
		},
	})
}
