package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultMaxPrebookDays      = 30 // 0 = без ограничения
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 240 // 4 часа
	MaxCustomerNameLength  = 100
	MaxSpecialReqLength    = 500
)

// Pricing constants
// Базовая часовая ставка = удвоенная получасовая. Скидка растет с каждым
// полным часом (максимум 3 ступени), неполный час дает фиксированную доплату
const (
	HourlyDiscountStep = 10.0  // за каждый часовой разряд сверх первого
	HalfHourSurcharge  = 100.0 // доплата за неполный час
	PeakMultiplier     = 1.5
	MaxDiscountSteps   = 3
)

// Time format constants
const (
	TimeFormat    = "15:04"      // HH:MM
	DateFormat    = "2006-01-02" // YYYY-MM-DD
	MinutesPerDay = 24 * 60
)
