package verify_slip

import (
	"time"

	"github.com/alurfia/ALK-BookingService/internal/domain"
	verifySlip "github.com/alurfia/ALK-BookingService/internal/usecase/verify_slip"
)

// VerifySlipResponse HTTP response model
type VerifySlipResponse struct {
	BookingID  string  `json:"bookingId"`
	RoomID     string  `json:"roomId"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"totalPrice"`
	TransRef   string  `json:"transRef"`
	PaidAmount float64 `json:"paidAmount"`
	PaidAt     string  `json:"paidAt"` // ISO 8601
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *verifySlip.Response) *VerifySlipResponse {
	return &VerifySlipResponse{
		BookingID:  resp.BookingID,
		RoomID:     resp.RoomID,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		EndTime:    resp.EndTime.String(),
		Status:     resp.Status,
		TotalPrice: resp.TotalPrice,
		TransRef:   resp.TransRef,
		PaidAmount: resp.PaidAmount,
		PaidAt:     resp.PaidAt.Format(time.RFC3339),
	}
}
