package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Mensajes de error expuestos al cliente.
const (
	MsgInvalidJSONBody  = "Invalid JSON body"
	MsgInvalidPrice     = "Invalid price value"
	MsgNegativeQuantity = "Quantity cannot be negative"
	MsgProductConflict  = "SKU must be unique or warehouse does not exist"
	MsgInternalError    = "Internal server error"
	MsgProductNotFound  = "Product not found"
	MsgInvalidProductID = "Invalid product id"
	MsgInvalidCompanyID = "Invalid company id"
	MsgNotFound         = "Not found"
	MsgTooManyRequests  = "Too many requests"
	MsgProductCreated   = "Product created successfully"
)
