package renew_contract

import (
	"context"

	renewContract "github.com/m04kA/SMC-DispatchService/internal/usecase/renew_contract"
)

type RenewContractUseCase interface {
	Execute(ctx context.Context, req *renewContract.Request) (*renewContract.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
