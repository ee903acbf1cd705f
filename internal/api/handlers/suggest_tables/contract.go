package suggest_tables

import (
	"context"

	suggestTables "github.com/restoh/ReservationService/internal/usecase/suggest_tables"
)

type SuggestTablesUseCase interface {
	Execute(ctx context.Context, req *suggestTables.Request) (*suggestTables.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
