package create_reservation

import (
	"errors"
	"time"

	"github.com/restoh/ReservationService/internal/allocation"
	"github.com/restoh/ReservationService/internal/domain"
	"github.com/restoh/ReservationService/internal/validation"
)

// Сообщения о нарушении инварианта вместимости
const (
	msgUnknownTable      = "Unknown table selected"
	msgTooLittleCapacity = "Selected tables cannot seat all guests"
	msgTooMuchCapacity   = "Selected tables exceed party size plus one spare seat"
)

// validateRequest прогоняет запрос через валидатор бизнес-правил и
// дополняет результат проверкой инварианта вместимости назначенных
// столиков. Все сообщения собираются, проверки не прерываются на
// первой ошибке.
func validateRequest(req *Request, policy domain.BookingPolicy, catalog *domain.SlotCatalog, plan *domain.FloorPlan, now time.Time) error {
	result := validation.Validate(&validation.Request{
		Date:            req.Date,
		Slot:            req.Slot,
		Guests:          req.Guests,
		Phone:           req.Phone,
		Tables:          req.Tables,
		TablesProvided:  req.TablesProvided,
		SpecialRequests: req.SpecialRequests,
	}, policy, catalog, now)

	messages := result.Errors

	// Инвариант назначения: вместимость в окне [guests, guests+slack]
	if req.TablesProvided && len(req.Tables) > 0 {
		if err := allocation.ValidateAssignment(plan, req.Tables, req.Guests, policy.CapacitySlack); err != nil {
			messages = append(messages, assignmentMessage(err))
		}
	}

	if len(messages) > 0 {
		return &domain.ValidationError{Messages: messages}
	}
	return nil
}

func assignmentMessage(err error) string {
	switch {
	case errors.Is(err, allocation.ErrUnknownTable):
		return msgUnknownTable
	case errors.Is(err, allocation.ErrInsufficientCapacity):
		return msgTooLittleCapacity
	case errors.Is(err, allocation.ErrExcessiveCapacity):
		return msgTooMuchCapacity
	default:
		return err.Error()
	}
}
