package entity

import (
	"fmt"
	"strings"
)

// Tipos de solicitud de inventario.
const (
	RequestNewItem = "new_item"
	RequestRefill  = "refill"
)

// InventoryRequest es una solicitud efímera de reposición o de artículo nuevo.
// No se persiste: se consume una sola vez para armar el correo al operador.
type InventoryRequest struct {
	Type        string // new_item, refill
	ItemName    string
	Quantity    int // siempre positivo
	Notes       string
	RequestedBy string
}

// ValidType indica si el tipo de solicitud es uno de los conocidos.
func (r InventoryRequest) ValidType() bool {
	return r.Type == RequestNewItem || r.Type == RequestRefill
}

// TypeLabel devuelve la etiqueta legible del tipo para asunto y cuerpo del correo.
func (r InventoryRequest) TypeLabel() string {
	if r.Type == RequestNewItem {
		return "Request New Item"
	}
	return "Request Refill"
}

// Subject arma el asunto del correo.
func (r InventoryRequest) Subject() string {
	return "Inventory Request: " + r.TypeLabel()
}

// Body arma el cuerpo plano del correo. Notes vacío se reporta como "N/A".
func (r InventoryRequest) Body() string {
	notes := strings.TrimSpace(r.Notes)
	if notes == "" {
		notes = "N/A"
	}
	return fmt.Sprintf(`Hello, please consider the following request to refill/request new item(s)
Requested by: %s

Request Type:
%s

Item Name:
%s

Quantity:
%d

Additional Notes:
%s

Sincerely,
The Inventory Bot
`, r.RequestedBy, r.TypeLabel(), strings.TrimSpace(r.ItemName), r.Quantity, notes)
}
