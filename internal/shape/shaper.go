// Package shape implements client-controlled field projection of response
// payloads. DTOs opt in through the Shapable interface instead of being
// inspected with reflection.
package shape

import "strings"

type Shapable interface {
	// ShapeID returns the identity field, which is always included in the
	// shaped output so clients can key results.
	ShapeID() (string, any)
	// ShapeFields returns every projectable field except the identity.
	ShapeFields() map[string]any
}

// Shape projects entities down to the fields named in the comma-separated
// list. An empty list returns every field; unknown names are ignored.
func Shape[T Shapable](entities []T, fieldsCSV string) []map[string]any {
	wanted := parseFields(fieldsCSV)

	shaped := make([]map[string]any, 0, len(entities))
	for _, entity := range entities {
		shaped = append(shaped, shapeOne(entity, wanted))
	}
	return shaped
}

// One shapes a single entity with the same rules as Shape.
func One[T Shapable](entity T, fieldsCSV string) map[string]any {
	return shapeOne(entity, parseFields(fieldsCSV))
}

func shapeOne[T Shapable](entity T, wanted map[string]struct{}) map[string]any {
	idName, idValue := entity.ShapeID()
	fields := entity.ShapeFields()

	record := make(map[string]any, len(fields)+1)
	record[idName] = idValue
	for name, value := range fields {
		if wanted == nil {
			record[name] = value
			continue
		}
		if _, ok := wanted[strings.ToLower(name)]; ok {
			record[name] = value
		}
	}
	return record
}

// parseFields returns nil for a blank list, meaning "all fields".
func parseFields(fieldsCSV string) map[string]struct{} {
	if strings.TrimSpace(fieldsCSV) == "" {
		return nil
	}
	wanted := make(map[string]struct{})
	for _, name := range strings.Split(fieldsCSV, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		wanted[strings.ToLower(name)] = struct{}{}
	}
	return wanted
}
