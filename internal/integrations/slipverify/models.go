package slipverify

import "time"

// Код успешной верификации в ответе сервиса проверки слипов
const CodeSuccess = "200000"

// VerificationResponse ответ сервиса проверки слипов
type VerificationResponse struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Data    VerificationData `json:"data"`
}

// VerificationData данные распознанного платежного слипа
type VerificationData struct {
	TransRef string    `json:"transRef"`
	Amount   float64   `json:"amount"`
	DateTime time.Time `json:"dateTime"`
	Sender   string    `json:"sender"`
	Receiver string    `json:"receiver"`
}

// IsSuccessful проверяет, что слип распознан успешно
func (r *VerificationResponse) IsSuccessful() bool {
	return r.Code == CodeSuccess
}
