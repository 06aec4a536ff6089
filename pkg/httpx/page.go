package httpx

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageQuery is the optional ?page=&page_size= pair accepted by list routes.
// A zero page lists everything.
type PageQuery struct {
	Page     int `form:"page" json:"page" validate:"gte=0"`
	PageSize int `form:"page_size" json:"page_size" validate:"gte=0,lte=100"`
}

// BindPage reads the paging query. On failure it writes a 400 and returns false.
func BindPage(c *gin.Context, val *Validator) (PageQuery, bool) {
	var q PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		log.Printf("Error binding query: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return q, false
	}
	if err := val.Struct(&q); err != nil {
		RespondError(c, err)
		return q, false
	}
	return q, true
}
