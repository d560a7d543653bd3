package leaseapp

import (
	"github.com/hudsor01/tenantflow/business/domain/leasebus"
)

var orderByFields = map[string]string{
	"lease_id":   leasebus.OrderByID,
	"start_date": leasebus.OrderByStartDate,
	"end_date":   leasebus.OrderByEndDate,
	"status":     leasebus.OrderByStatus,
}
