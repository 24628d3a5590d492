package httputil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"reflect"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetURLFields reports which fields of a list filter are set in the query.
//
// filter is a struct whose fields carry a "form" tag with the query
// parameter name, e.g. PocketQueryFilter. The first return value holds the
// names of the set fields that can be passed to gorm's Where as struct
// field selection. Fields tagged filterField:"false" are left out, the
// controller filters on them itself (e.g. search or untilMonth).
//
// The second return value holds all set fields. Controllers use it to
// filter on zero values like archived=false.
func GetURLFields(url *url.URL, filter any) ([]any, []string) {
	var (
		queryFields []any
		setFields   []string
	)

	query := url.Query()
	t := reflect.Indirect(reflect.ValueOf(filter)).Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !query.Has(field.Tag.Get("form")) {
			continue
		}

		setFields = append(setFields, field.Name)
		if field.Tag.Get("filterField") != "false" {
			queryFields = append(queryFields, field.Name)
		}
	}

	return queryFields, setFields
}

// GetBodyFields returns the names of the fields of resource that are
// present in the JSON body. PATCH handlers pass them to gorm's Select so
// that only submitted fields are updated, including zero values.
//
// The body is restored after reading. It must be called before any
// of gin's Bind methods.
func GetBodyFields(c *gin.Context, resource any) ([]any, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return []any{}, ErrInvalidBody
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	var mapBody map[string]any
	if err := json.Unmarshal(body, &mapBody); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return []any{}, ErrInvalidBody
	}

	var bodyFields []any
	t := reflect.Indirect(reflect.ValueOf(resource)).Type()
	for i := 0; i < t.NumField(); i++ {
		if _, ok := mapBody[t.Field(i).Tag.Get("json")]; ok {
			bodyFields = append(bodyFields, t.Field(i).Name)
		}
	}

	return bodyFields, nil
}
