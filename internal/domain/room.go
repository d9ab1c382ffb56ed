package domain

// Room represents a karaoke room as reported by the Booking API.
// Reference data: supplied per request, never mutated by this service.
type Room struct {
	ID           string
	Name         string
	Capacity     string // отображаемая вместимость, например "4-6 persons"
	HalfHourRate float64
	Color        string // косметический тег для фронтенда
}
