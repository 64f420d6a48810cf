package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Shared filter+sort+paginate plumbing for the list endpoints. Every collection
// supports page / page_size (default 50) / sort ("field" asc, "-field" desc,
// whitelisted per entity) / search (substring match across declared columns).

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type listParams struct {
	Page     int
	PageSize int
	Sort     string
	Search   string
}

func parseListParams(c *gin.Context) listParams {
	p := listParams{
		Page:     getIntQ(c, "page", 1),
		PageSize: getIntQ(c, "page_size", defaultPageSize),
		Sort:     strings.TrimSpace(c.Query("sort")),
		Search:   strings.TrimSpace(c.Query("search")),
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	return p
}

func getIntQ(c *gin.Context, key string, def int) int {
	v, _ := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if v <= 0 {
		return def
	}
	return v
}

func getDatePtr(c *gin.Context, key string) *time.Time {
	if s := strings.TrimSpace(c.Query(key)); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			return &t
		}
	}
	return nil
}

func applyDateRange(q *gorm.DB, c *gin.Context, column string) *gorm.DB {
	if from := getDatePtr(c, "date_from"); from != nil {
		q = q.Where(column+" >= ?", *from)
	}
	if to := getDatePtr(c, "date_to"); to != nil {
		q = q.Where(column+" < ?", to.AddDate(0, 0, 1)) // inclusive end of day
	}
	return q
}

func applySearch(q *gorm.DB, search string, columns []string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return q
	}
	like := "%" + search + "%"
	clause := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, col := range columns {
		clause = append(clause, col+" ILIKE ?")
		args = append(args, like)
	}
	return q.Where(strings.Join(clause, " OR "), args...)
}

func applySort(q *gorm.DB, sortBy string, allowed map[string]string, defaultOrder string) *gorm.DB {
	dir := " ASC"
	key := sortBy
	if strings.HasPrefix(sortBy, "-") {
		dir = " DESC"
		key = sortBy[1:]
	}
	if col, ok := allowed[key]; ok {
		return q.Order(col + dir)
	}
	return q.Order(defaultOrder)
}

func paginate(q *gorm.DB, p listParams) *gorm.DB {
	return q.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
}

func listResponse(c *gin.Context, message string, data interface{}, total int64, p listParams) {
	c.JSON(200, gin.H{
		"message":   message,
		"data":      data,
		"total":     total,
		"page":      p.Page,
		"page_size": p.PageSize,
	})
}
