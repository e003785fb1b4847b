package entity

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Item representa un artículo del inventario compartido.
// Name es único bajo comparación case-insensitive y no cambia después de creado;
// la clave canónica de unicidad es NameKey (case folding Unicode).
type Item struct {
	ID        string
	Name      string
	NameKey   string // cases.Fold(Name), clave única en DB
	Quantity  int    // nunca negativo
	Location  string // puede estar vacío
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FoldName devuelve la clave canónica (case folding) para comparar nombres de items.
// Se crea un Caser por llamada: cases.Caser mantiene estado interno y no es seguro
// para uso concurrente.
func FoldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
