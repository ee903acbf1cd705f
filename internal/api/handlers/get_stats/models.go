package get_stats

import (
	"github.com/restoh/ReservationService/internal/domain"
	"github.com/restoh/ReservationService/internal/service/reservations/models"
)

// SummaryResponse сводные счётчики.
// Карты по статусам всегда содержат все статусы, включая нулевые.
type SummaryResponse struct {
	Total         int            `json:"total"`
	ByStatus      map[string]int `json:"byStatus"`
	TodayTotal    int            `json:"todayTotal"`
	TodayByStatus map[string]int `json:"todayByStatus"`
	TotalGuests   int            `json:"totalGuests"`
	TodayGuests   int            `json:"todayGuests"`
}

// SlotCountResponse счётчик бронирований на слот
type SlotCountResponse struct {
	Slot  int    `json:"slot"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// UtilizationResponse загрузка зала
type UtilizationResponse struct {
	UsedSlots       int     `json:"usedSlots"`
	TotalSlots      int     `json:"totalSlots"`
	UtilizationRate float64 `json:"utilizationRate"`
}

// CancellationResponse счётчики и доли отмен
type CancellationResponse struct {
	Total            int     `json:"total"`
	Cancelled        int     `json:"cancelled"`
	NoShow           int     `json:"noShow"`
	Completed        int     `json:"completed"`
	CancellationRate float64 `json:"cancellationRate"`
	NoShowRate       float64 `json:"noShowRate"`
	CompletionRate   float64 `json:"completionRate"`
}

// StatsResponse HTTP response со сводной статистикой
type StatsResponse struct {
	Summary          SummaryResponse      `json:"summary"`
	PeakHours        []SlotCountResponse  `json:"peakHours"`
	Utilization      UtilizationResponse  `json:"utilization"`
	Cancellation     CancellationResponse `json:"cancellation"`
	AveragePartySize float64              `json:"averagePartySize"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.StatsResponse) *StatsResponse {
	peakHours := make([]SlotCountResponse, 0, len(resp.PeakHours))
	for _, sc := range resp.PeakHours {
		peakHours = append(peakHours, SlotCountResponse{
			Slot:  sc.Slot,
			Label: sc.Label,
			Count: sc.Count,
		})
	}

	return &StatsResponse{
		Summary: SummaryResponse{
			Total:         resp.Summary.Total,
			ByStatus:      statusCounts(resp.Summary.ByStatus),
			TodayTotal:    resp.Summary.TodayTotal,
			TodayByStatus: statusCounts(resp.Summary.TodayByStatus),
			TotalGuests:   resp.Summary.TotalGuests,
			TodayGuests:   resp.Summary.TodayGuests,
		},
		PeakHours: peakHours,
		Utilization: UtilizationResponse{
			UsedSlots:       resp.Utilization.UsedSlots,
			TotalSlots:      resp.Utilization.TotalSlots,
			UtilizationRate: resp.Utilization.UtilizationRate,
		},
		Cancellation: CancellationResponse{
			Total:            resp.Cancellation.Total,
			Cancelled:        resp.Cancellation.Cancelled,
			NoShow:           resp.Cancellation.NoShow,
			Completed:        resp.Cancellation.Completed,
			CancellationRate: resp.Cancellation.CancellationRate,
			NoShowRate:       resp.Cancellation.NoShowRate,
			CompletionRate:   resp.Cancellation.CompletionRate,
		},
		AveragePartySize: resp.AveragePartySize,
	}
}

func statusCounts(counts map[domain.ReservationStatus]int) map[string]int {
	result := make(map[string]int, len(counts))
	for status, count := range counts {
		result[string(status)] = count
	}
	return result
}
