package dto

import "time"

// CreateItemRequest entrada para crear un item (solo admin).
type CreateItemRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Quantity int    `json:"quantity" validate:"min=0"`
	Location string `json:"location" validate:"max=200"`
}

// UpdateItemRequest entrada para actualizar quantity y location. El nombre no cambia.
type UpdateItemRequest struct {
	Quantity int    `json:"quantity" validate:"min=0"`
	Location string `json:"location" validate:"max=200"`
}

// ItemResponse salida de un item (sin identificadores internos de la DB).
type ItemResponse struct {
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemListResponse listado completo del inventario (snapshot total, sin paginación).
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}
