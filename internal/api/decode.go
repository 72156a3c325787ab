package api

import (
	"fmt"
	"reflect"
	"sort"
	"time"

	"nathanbeddoewebdev/hirectl/internal/domain"

	"github.com/mitchellh/mapstructure"
)

// normalize strips the response envelopes the backend uses. A body of
// {"data": X} becomes X, and when the caller wants a slice, a page object
// {"items": [...]} or {"results": [...]} becomes the bare list.
func normalize(raw any, out any) any {
	if m, ok := raw.(map[string]any); ok {
		if inner, ok := m["data"]; ok && envelopeKeysOnly(m) {
			raw = inner
		}
	}

	if reflect.Indirect(reflect.ValueOf(out)).Kind() == reflect.Slice {
		if m, ok := raw.(map[string]any); ok {
			for _, key := range []string{"items", "results"} {
				if list, ok := m[key]; ok {
					return list
				}
			}
		}
	}
	return raw
}

// envelopeKeysOnly reports whether m looks like {"data", "success",
// "message", "meta"} rather than a resource that happens to have a data
// field.
func envelopeKeysOnly(m map[string]any) bool {
	for k := range m {
		switch k {
		case "data", "success", "status", "message", "meta":
		default:
			return false
		}
	}
	return true
}

// decodeInto copies a generic JSON value into a typed struct.
func decodeInto(raw any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			roleHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return fmt.Errorf("api: build decoder: %w", err)
	}
	if err := dec.Decode(normalize(raw, out)); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}

var roleType = reflect.TypeOf(domain.Role(""))

// roleHook maps role aliases ("recruiter", "candidate") onto domain.Role.
func roleHook(from, to reflect.Type, data any) (any, error) {
	if to != roleType || from.Kind() != reflect.String {
		return data, nil
	}
	if r := domain.ParseRole(data.(string)); r != "" {
		return r, nil
	}
	return data, nil
}

func sortedFields(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
