package coingecko_common

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// QueryParams maps a query parameter name to a primitive value.
// Supported values are strings, integer and float kinds, bools, pointers to
// those and fmt.Stringer. nil, nil pointers and "" mean "absent" and are
// never rendered, not even as "key=".
// Slices and arrays of those render as one repeated key per present element.
type QueryParams map[string]any

// Values returns the encodable subset of the parameters
func (p QueryParams) Values() url.Values {
	values := url.Values{}
	for key, value := range p {
		for _, str := range formatParamValues(value) {
			values.Add(key, str)
		}
	}
	return values
}

// Encode returns the canonical (key-sorted) percent-encoded query string
func (p QueryParams) Encode() string {
	return p.Values().Encode()
}

func formatParamValues(value any) []string {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if str, ok := formatParam(rv.Index(i).Interface()); ok {
				out = append(out, str)
			}
		}
		return out
	}

	if str, ok := formatParam(value); ok {
		return []string{str}
	}
	return nil
}

func formatParam(value any) (string, bool) {
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return "", false
		}
		return formatParam(rv.Elem().Interface())
	}

	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case fmt.Stringer:
		s := v.String()
		return s, s != ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.String:
		s := rv.String()
		return s, s != ""
	}

	s := fmt.Sprint(value)
	return s, s != ""
}

// joinURL combines a base URL with a path using exactly one slash
func joinURL(baseURL, path string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	trimmedPath := strings.TrimLeft(path, "/")

	return baseURL + "/" + trimmedPath
}

// BuildURL joins baseURL and endpoint and appends the encoded params.
// Absent and empty params are omitted.
func BuildURL(baseURL, endpoint string, params QueryParams) string {
	fullPath := joinURL(baseURL, endpoint)

	queryString := params.Encode()
	if queryString == "" {
		return fullPath
	}

	separator := "?"
	if strings.Contains(fullPath, "?") {
		separator = "&"
	}
	return fullPath + separator + queryString
}
