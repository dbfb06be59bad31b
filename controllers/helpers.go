package controllers

import (
	"strings"
	"time"

	"github.com/charmin16/hosp-mgt/authentication"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

// render draws a template with any pending flash notices attached.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["flashes"] = authentication.TakeFlashes(c)
	c.HTML(status, name, data)
}

// isUniqueViolation matches the constraint errors surfaced by the postgres
// driver in production and by sqlite in tests.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// parseDate parses a yyyy-mm-dd form field, falling back to today when the
// field was left empty.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(dateLayout, value)
}
