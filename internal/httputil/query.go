package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseSearchQuery reads the text and limit query parameters of a search request.
// The limit defaults to defaultLimit and must lie within 1..maxLimit.
func ParseSearchQuery(c *gin.Context, defaultLimit, maxLimit int) (text string, limit int, err error) {
	text = c.Query("text")
	if text == "" {
		return "", 0, fmt.Errorf("missing text parameter")
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultLimit))
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > maxLimit {
		return "", 0, fmt.Errorf("invalid limit parameter: must be between 1 and %d", maxLimit)
	}

	return text, limit, nil
}
