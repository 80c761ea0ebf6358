package response

import (
	"log"
	"net/http"

	"anoa.com/diskusiforum/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// GetUserID retrieves the authenticated user ID from the context
func GetUserID(c *gin.Context) (string, error) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", apperror.ErrUnauthorized
	}

	id, ok := userID.(string)
	if !ok || id == "" {
		return "", apperror.ErrUnauthorized
	}

	return id, nil
}

// Success writes the standard success envelope with a data payload
func Success(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"status": "success", "data": data})
}

// SuccessStatus writes a success envelope without a data payload
func SuccessStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// Error maps the error to a status code and writes the fail envelope
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	c.JSON(code, gin.H{"status": "fail", "message": err.Error()})
}
