package request

type ChatQueryRequest struct {
	Message string `json:"message" binding:"required"`
}
