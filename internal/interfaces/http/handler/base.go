package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"dreamtale-api/internal/domain/repository"
)

// paginationFromQuery 从查询参数解析分页
func paginationFromQuery(c *gin.Context) repository.Pagination {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return repository.NewPagination(page, pageSize)
}
