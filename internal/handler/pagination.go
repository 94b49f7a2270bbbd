package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// PageResponse wraps one zero-based page of results. HasMore is a hint: a full
// page suggests there may be another one.
type PageResponse[T any] struct {
	Data     []T  `json:"data"`
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
	HasMore  bool `json:"has_more"`
}

// NewPageResponse creates a new PageResponse.
func NewPageResponse[T any](data []T, page, size int) PageResponse[T] {
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data:     data,
		Page:     page,
		PageSize: size,
		HasMore:  size > 0 && len(data) == size,
	}
}

// pageParam reads the zero-based ?page= parameter. Missing or malformed values
// mean the first page.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		return 0
	}
	return page
}
