package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// optionalSerie reads the serie query parameter. Absent means no filter.
func optionalSerie(c *gin.Context) (*int, error) {
	raw, ok := c.GetQuery("serie")
	if !ok || raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("invalid serie: must be a positive integer")
	}
	return &n, nil
}

// optionalLimit reads the limit query parameter. Absent or zero means unlimited.
func optionalLimit(c *gin.Context) (int, error) {
	raw, ok := c.GetQuery("limit")
	if !ok || raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid limit: must be a non-negative integer")
	}
	return n, nil
}

func positiveIntParam(c *gin.Context, name string) (int, error) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s: must be a positive integer", name)
	}
	return n, nil
}
