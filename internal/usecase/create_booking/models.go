package create_booking

import (
	"time"

	"github.com/alurfia/ALK-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	RoomID          string           // ID комнаты
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала (например, "14:00")
	EndTime         types.TimeString // Время конца; значение не позже начала - время после полуночи
	CustomerName    string           // Имя клиента
	CustomerEmail   string           // Email клиента (опционально)
	CustomerPhone   string           // Контактный телефон (опционально)
	SpecialRequests *string          // Пожелания клиента (опционально)
	IsPeak          bool             // Пиковый тариф
}

// PaymentDetails реквизиты оплаты созданного бронирования
type PaymentDetails struct {
	PromptPayNumber string
	Amount          float64
	Currency        string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string           // ID созданного бронирования
	RoomID          string           // ID комнаты
	RoomName        string           // Название комнаты
	Date            time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время конца
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования
	TotalPrice      float64          // Итоговая стоимость (считается на сервере)
	Payment         PaymentDetails   // Реквизиты оплаты
}
