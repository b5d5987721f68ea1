package contract

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownPlan = errors.New("contract: unknown plan")

// Plan тарифный план контракта
type Plan string

const (
	PlanSixMonths    Plan = "6_months"
	PlanTwelveMonths Plan = "12_months"
)

// Months возвращает длительность плана в месяцах
func (p Plan) Months() (int, error) {
	switch p {
	case PlanSixMonths:
		return 6, nil
	case PlanTwelveMonths:
		return 12, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlan, p)
	}
}

// Term срок действия продленного контракта
type Term struct {
	StartDate        time.Time // День после окончания текущего контракта
	BillingStartDate time.Time // Первое число месяца, следующего за началом
	EndDate          time.Time // Последний день оплачиваемого периода
}

// Renew считает даты продления контракта от даты окончания текущего
//
// Новый срок начинается на следующий день после окончания текущего
// Оплата начинается с первого числа следующего месяца, остаток месяца
// до этой даты бесплатный. Срок заканчивается последним днем месяца,
// в котором истекает оплачиваемый период
func Renew(currentEnd time.Time, plan Plan) (Term, error) {
	months, err := plan.Months()
	if err != nil {
		return Term{}, err
	}
	if currentEnd.IsZero() {
		return Term{}, errors.New("contract: current end date is required")
	}

	start := currentEnd.AddDate(0, 0, 1)

	// time.Date нормализует переполнение месяца, в том числе через границу года
	billingStart := time.Date(start.Year(), start.Month()+1, 1, 0, 0, 0, 0, start.Location())

	// День 0 следующего месяца = последний день предыдущего
	end := time.Date(billingStart.Year(), billingStart.Month()+time.Month(months), 0, 0, 0, 0, 0, start.Location())

	return Term{
		StartDate:        start,
		BillingStartDate: billingStart,
		EndDate:          end,
	}, nil
}
