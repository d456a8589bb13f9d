package request

type CreateExpenseRequest struct {
	Descripcion string  `json:"descripcion" binding:"required"`
	Monto       float64 `json:"monto" binding:"required,gt=0"`
	Categoria   string  `json:"categoria" binding:"required"`
	Fecha       string  `json:"fecha" binding:"required"`
}
