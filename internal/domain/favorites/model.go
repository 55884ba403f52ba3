package favorites

import "fmt"

// Op identifica la operación del store (logs, métricas, faults).
type Op string

const (
	OpList   Op = "list"
	OpAdd    Op = "add"
	OpRemove Op = "remove"
	OpToggle Op = "toggle"
	OpCheck  Op = "is_favorite"
)

// FaultKind distingue dónde falló la persistencia.
type FaultKind string

const (
	FaultRead   FaultKind = "read"
	FaultDecode FaultKind = "decode"
	FaultWrite  FaultKind = "write"
)

// Fault es el único tipo de error del store: falla de acceso al storage o
// registro corrupto. Nunca se devuelve al caller; va al logger y a OnFault.
type Fault struct {
	Op   Op
	Kind FaultKind
	Err  error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("favorites %s: %s fault: %v", f.Op, f.Kind, f.Err)
}

func (f *Fault) Unwrap() error { return f.Err }

// Change se publica a los suscriptores después de cada escritura exitosa.
type Change struct {
	Op       Op
	PetID    string
	Favorite bool     // membresía de PetID después del cambio
	IDs      []string // snapshot completo del set persistido
	Version  uint64   // creciente por Service; permite descartar eventos viejos
}
