package list_reservations

import (
	"strconv"

	"github.com/m04kA/SMC-DispatchService/internal/service/reservations/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров
func ToServiceRequest(companyIDStr, statusStr, limitStr, offsetStr string) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{}

	if companyIDStr != "" {
		companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CompanyID = &companyID
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, err
		}
		req.Limit = limit
	}

	if offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return nil, err
		}
		req.Offset = offset
	}

	return req, nil
}
