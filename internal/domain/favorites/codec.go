package favorites

import (
	"encoding/json"
	"slices"
)

// decode interpreta el registro persistido: un array JSON de strings.
// Vacío o "null" equivalen a un set vacío.
func decode(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func encode(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func contains(ids []string, id string) bool {
	return slices.Contains(ids, id)
}

// without quita todas las ocurrencias de id, preservando el orden del resto.
func without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
