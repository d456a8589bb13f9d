package request

type CreateDayRequest struct {
	Dia           string   `json:"dia" binding:"required"`
	Estado        string   `json:"estado"`
	ValorEstimado *float64 `json:"valor_estimado"`
}

type UpdateDayRequest struct {
	Estado        *string  `json:"estado"`
	ValorEstimado *float64 `json:"valor_estimado"`
}

// BulkPriceRequest sets the estimated price for every already-created
// day matching a weekday across the coming months. Days that do not
// exist yet are skipped, not created.
type BulkPriceRequest struct {
	DiaSemana     int     `json:"dia_semana" binding:"min=0,max=6"`
	Meses         int     `json:"meses" binding:"required,min=1,max=12"`
	ValorEstimado float64 `json:"valor_estimado" binding:"required,gt=0"`
}
