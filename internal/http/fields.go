package http

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finance-backend-go/internal/models"
)

const (
	errRequired = "this field is required"
	errBlank    = "this field may not be blank"
)

// fieldErrors maps a payload field to its validation message; rendered as
// the body of a 400 response.
type fieldErrors map[string]string

func (fe fieldErrors) require(in map[string]any, fields ...string) {
	for _, f := range fields {
		if _, ok := in[f]; !ok {
			fe[f] = errRequired
		}
	}
}

// decodeBody reads the request body as a field map. Payloads are applied
// field by field so read-only keys (id, user_id, created_at, ...) are
// silently ignored rather than rejected.
func decodeBody(c *gin.Context) (map[string]any, bool) {
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	var in map[string]any
	if err := dec.Decode(&in); err != nil {
		c.JSON(400, gin.H{"error": "invalid_json"})
		return nil, false
	}
	return in, true
}

// pathID parses the row id from the URL. A non-numeric id can never name
// an existing row, so it is reported the same way as a missing one.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(404, gin.H{"error": "not_found"})
		return 0, false
	}
	return uint(id), true
}

func decimalField(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case string:
		return decimal.NewFromString(t)
	case json.Number:
		return decimal.NewFromString(t.String())
	case float64:
		return decimal.NewFromFloat(t), nil
	}
	return decimal.Decimal{}, fmt.Errorf("not a number: %v", v)
}

func timeField(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("not a timestamp: %v", v)
	}
	return time.Parse(time.RFC3339, s)
}

func dateField(v any) (models.Date, error) {
	s, ok := v.(string)
	if !ok {
		return models.Date{}, fmt.Errorf("not a date: %v", v)
	}
	return models.ParseDate(s)
}
