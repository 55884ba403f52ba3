package pets

import "strings"

// FilterAll es el valor centinela "sin restricción" para Type y Age.
const FilterAll = "all"

// Filter son los criterios que elige el usuario para acotar el listado.
//   - Type: tipo de animal o "all" (comparación case-insensitive)
//   - Age: categoría de edad o "all" (match exacto)
//   - Location: substring case-insensitive; vacío = sin restricción
//
// Un valor no reconocido (incluido "" en Type/Age) no matchea ninguna mascota.
type Filter struct {
	Type     string
	Age      string
	Location string
}

// DefaultFilter es el filtro "reset": todo el catálogo.
func DefaultFilter() Filter {
	return Filter{Type: FilterAll, Age: FilterAll, Location: ""}
}

// IsUnfiltered indica si el filtro no restringe nada.
func (f Filter) IsUnfiltered() bool {
	return f.Type == FilterAll && f.Age == FilterAll && f.Location == ""
}

// Matches aplica los tres predicados (AND) a una mascota.
func (f Filter) Matches(p Pet) bool {
	if f.Type != FilterAll && !strings.EqualFold(p.Type, f.Type) {
		return false
	}
	if f.Age != FilterAll && string(p.AgeCategory) != f.Age {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(f.Location)) {
		return false
	}
	return true
}

// ApplyFilters devuelve las mascotas que cumplen el filtro, en el orden original.
// Con lista vacía o filtro sin restricciones devuelve el mismo slice de entrada.
func ApplyFilters(items []Pet, f Filter) []Pet {
	if len(items) == 0 || f.IsUnfiltered() {
		return items
	}

	out := make([]Pet, 0, len(items))
	for _, p := range items {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}
