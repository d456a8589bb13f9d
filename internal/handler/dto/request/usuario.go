package request

type UpdateUserRequest struct {
	Nombre   *string `json:"nombre"`
	Apellido *string `json:"apellido"`
	Telefono *string `json:"telefono"`
	Rol      *string `json:"rol"`
}
