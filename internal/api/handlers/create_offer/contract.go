package create_offer

import (
	"context"

	createOffer "github.com/m04kA/SMC-DispatchService/internal/usecase/create_offer"
)

type CreateOfferUseCase interface {
	Execute(ctx context.Context, req *createOffer.Request) (*createOffer.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
