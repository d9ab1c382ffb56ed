package verify_slip

import (
	"context"

	verifySlip "github.com/alurfia/ALK-BookingService/internal/usecase/verify_slip"
)

type VerifySlipUseCase interface {
	Execute(ctx context.Context, req *verifySlip.Request) (*verifySlip.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
