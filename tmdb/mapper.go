package tmdb

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// decode maps a raw JSON response onto the target value. Unknown fields never
// fail the decode: TMDb is versioned independently of this client and adds
// fields routinely, so anything the target struct does not know about is
// logged at warn level and dropped. Malformed JSON or a structural mismatch
// returns a MAPPING_FAILED error carrying the raw response text.
func (c *Client) decode(raw []byte, v interface{}) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return newError(KindMappingFailed, string(raw), err)
	}
	c.warnUnknownFields("", raw, reflect.TypeOf(v))
	return nil
}

// warnUnknownFields walks the payload alongside the target type and logs any
// JSON key the type has no field for.
func (c *Client) warnUnknownFields(path string, raw json.RawMessage, t reflect.Type) {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return
	}

	switch t.Kind() {
	case reflect.Struct:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return
		}
		fields := structFields(t)
		for key, value := range obj {
			fieldType, known := fields[strings.ToLower(key)]
			if !known {
				c.logger.Warn().
					Str("field", joinFieldPath(path, key)).
					RawJSON("value", value).
					Msg("Ignoring unknown field in response")
				continue
			}
			c.warnUnknownFields(joinFieldPath(path, key), value, fieldType)
		}
	case reflect.Slice, reflect.Array:
		var arr []json.RawMessage
		if err := json.Unmarshal(raw, &arr); err != nil {
			return
		}
		for i, element := range arr {
			c.warnUnknownFields(fmt.Sprintf("%s[%d]", path, i), element, t.Elem())
		}
	}
}

// structFields maps lower-cased JSON names to field types, following the
// same promotion rules encoding/json applies to embedded structs.
func structFields(t reflect.Type) map[string]reflect.Type {
	fields := make(map[string]reflect.Type)
	collectStructFields(t, fields)
	return fields
}

func collectStructFields(t reflect.Type, fields map[string]reflect.Type) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			continue
		}

		if field.Anonymous && name == "" {
			embedded := field.Type
			for embedded.Kind() == reflect.Ptr {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				collectStructFields(embedded, fields)
				continue
			}
		}

		if name == "" {
			name = field.Name
		}
		fields[strings.ToLower(name)] = field.Type
	}
}

func joinFieldPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
