package get_available_times

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// generateSlots разбивает рабочий день на кандидатные слоты с шагом,
// равным длительности процедуры. Слот, чей конец выходит за время
// закрытия, не включается. Слоты, начинающиеся раньше now, отбрасываются:
// забронировать их уже нельзя. Для дня целиком в прошлом список пуст
func generateSlots(workDay domain.WorkDay, day time.Time, duration time.Duration, now time.Time) []time.Time {
	opens := workDay.OpensAt(day)
	closes := workDay.ClosesAt(day)

	slots := make([]time.Time, 0)
	for cur := opens; !cur.Add(duration).After(closes); cur = cur.Add(duration) {
		if cur.Before(now) {
			continue
		}
		slots = append(slots, cur)
	}

	return slots
}

// filterAvailable убирает слоты, пересекающиеся хотя бы с одним
// существующим бронированием
//
// Интервалы полуоткрытые: бронирование, заканчивающееся ровно в начале
// слота, слот не занимает
func filterAvailable(slots []time.Time, duration time.Duration, bookings []*domain.Booking) []time.Time {
	available := make([]time.Time, 0, len(slots))

	for _, start := range slots {
		end := start.Add(duration)

		occupied := false
		for _, b := range bookings {
			if b.Overlaps(start, end) {
				occupied = true
				break
			}
		}

		if !occupied {
			available = append(available, start)
		}
	}

	return available
}
