package assign_tables

import (
	"context"

	"github.com/restoh/ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	AssignTables(ctx context.Context, id string, req *models.AssignTablesRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
