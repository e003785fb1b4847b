package dto

// SendRequestRequest entrada para una solicitud de inventario por correo.
type SendRequestRequest struct {
	Type     string `json:"type" validate:"required,oneof=new_item refill"`
	ItemName string `json:"item_name" validate:"required,min=1,max=200"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
	Notes    string `json:"notes" validate:"omitempty,max=2000"`
}

// SendRequestResponse confirmación del envío.
type SendRequestResponse struct {
	Sent    bool   `json:"sent"`
	Subject string `json:"subject"`
}
