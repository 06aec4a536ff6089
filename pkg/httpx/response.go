package httpx

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ecommerce_record_service/pkg/apperr"
)

// ParseID reads a positive integer path parameter. On failure it writes a 400
// and returns false.
func ParseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param + ", must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

// BindJSON decodes the body into dst and validates it. On failure it writes a
// 400 and returns false.
func BindJSON(c *gin.Context, val *Validator, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.Printf("Error binding JSON: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return false
	}
	if err := val.Struct(dst); err != nil {
		RespondError(c, err)
		return false
	}
	return true
}

// RespondError maps err onto the response taxonomy.
func RespondError(c *gin.Context, err error) {
	var verr *apperr.ValidationError
	var serr *apperr.StorageError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": apperr.ErrValidation.Error(), "fields": verr.Fields})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": capitalize(err.Error())})
	case errors.Is(err, apperr.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &serr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": serr.Error()})
	default:
		log.Printf("Unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
