package response

import "salon-reservas/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	User        *queries.UserView `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
