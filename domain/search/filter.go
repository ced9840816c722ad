package search

import (
	"changeflow/domain"
	"strconv"
	"strings"
)

// StatusAll is the sentinel that disables the status predicate.
const StatusAll = "All"

// ChangeOrderQuery carries the filter criteria as entered. All criteria are
// optional and combined with logical AND; numeric and date bounds that do
// not parse are ignored.
type ChangeOrderQuery struct {
	ID            string `json:"id" form:"id"`
	Title         string `json:"title" form:"title"`
	Status        string `json:"status" form:"status"`
	DateRequested string `json:"dateRequested" form:"dateRequested"`

	CostMin string `json:"costMin" form:"costMin"`
	CostMax string `json:"costMax" form:"costMax"`

	ScheduleMin string `json:"scheduleMin" form:"scheduleMin"`
	ScheduleMax string `json:"scheduleMax" form:"scheduleMax"`
}

// FilterChangeOrders derives a filtered view without mutating the input;
// order is preserved.
func FilterChangeOrders(orders []domain.ChangeOrder, q ChangeOrderQuery) []domain.ChangeOrder {
	costMin, hasCostMin := parseFloat(q.CostMin)
	costMax, hasCostMax := parseFloat(q.CostMax)
	scheduleMin, hasScheduleMin := parseInt(q.ScheduleMin)
	scheduleMax, hasScheduleMax := parseInt(q.ScheduleMax)
	dateFrom, hasDateFrom := parseDate(q.DateRequested)

	result := []domain.ChangeOrder{}
	for _, order := range orders {
		if q.ID != "" && !strings.Contains(strconv.FormatInt(order.ID, 10), q.ID) {
			continue
		}
		if q.Title != "" && !strings.Contains(strings.ToLower(order.Title), strings.ToLower(q.Title)) {
			continue
		}
		if q.Status != "" && q.Status != StatusAll && order.Status != domain.OrderStatus(q.Status) {
			continue
		}
		if hasDateFrom && order.DateRequested.Before(dateFrom.Time) {
			continue
		}
		total := order.TotalCost()
		if hasCostMin && total < costMin {
			continue
		}
		if hasCostMax && total > costMax {
			continue
		}
		if hasScheduleMin && order.ScheduleImpactDays < scheduleMin {
			continue
		}
		if hasScheduleMax && order.ScheduleImpactDays > scheduleMax {
			continue
		}
		result = append(result, order)
	}
	return result
}

// SumTotalCost aggregates the derived total cost over exactly the given
// orders. Callers pass the filtered view, never a cached total.
func SumTotalCost(orders []domain.ChangeOrder) float64 {
	sum := 0.0
	for i := range orders {
		sum += orders[i].TotalCost()
	}
	return sum
}

func parseFloat(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseInt(value string) (int, bool) {
	if value == "" {
		return 0, false
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return i, true
}

func parseDate(value string) (domain.Date, bool) {
	if value == "" {
		return domain.Date{}, false
	}
	d, err := domain.ParseDate(value)
	if err != nil {
		return domain.Date{}, false
	}
	return d, true
}
