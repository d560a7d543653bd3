package propertyapp

import (
	"github.com/hudsor01/tenantflow/business/domain/propertybus"
)

var orderByFields = map[string]string{
	"property_id": propertybus.OrderByID,
	"name":        propertybus.OrderByName,
	"city":        propertybus.OrderByCity,
}
