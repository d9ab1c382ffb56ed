package userapi

// User модель пользователя из User API
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LineID    string `json:"lineId,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// ErrorResponse модель ошибки от User API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
