package list_watercraft

import "github.com/m04kA/SMC-ExcursionBooking/internal/domain"

// WatercraftResponse HTTP response model
type WatercraftResponse struct {
	ID       int64  `json:"id"`
	Kind     string `json:"kind"`
	Capacity int    `json:"capacity"`
	Quantity int    `json:"quantity"`
}

// FromDomain конвертирует справочник в HTTP response
func FromDomain(list []*domain.Watercraft) []WatercraftResponse {
	out := make([]WatercraftResponse, 0, len(list))
	for _, wc := range list {
		out = append(out, WatercraftResponse{
			ID:       wc.ID,
			Kind:     string(wc.Kind),
			Capacity: wc.Seats(),
			Quantity: wc.Units(),
		})
	}
	return out
}
