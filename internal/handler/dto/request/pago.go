package request

type CreatePaymentRequest struct {
	Monto float64 `json:"monto" binding:"required,gt=0"`
}

// DeletePaymentRequest carries the master password that guards
// destructive accounting operations.
type DeletePaymentRequest struct {
	PasswordMaestra string `json:"password_maestra" binding:"required"`
}
