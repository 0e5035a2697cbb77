package specialist

import (
	"reflect"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

const descriptionTag = "jsonschema_description"

// describeArguments sets each field description from the
// jsonschema_description tag, which may contain commas, and marks every
// field without omitempty as required.
func describeArguments(name string, t reflect.Type, tag reflect.StructTag, s *openapi3.Schema) error {
	if desc, ok := tag.Lookup(descriptionTag); ok {
		s.Description = desc
	}
	if name != "_root" {
		return nil
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	s.Required = nil
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		jsonName, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
		if jsonName == "-" || strings.Contains(opts, "omitempty") {
			continue
		}
		if jsonName == "" {
			jsonName = f.Name
		}
		if _, ok := s.Properties[jsonName]; ok {
			s.Required = append(s.Required, jsonName)
		}
	}
	return nil
}
