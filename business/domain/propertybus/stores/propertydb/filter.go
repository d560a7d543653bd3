package propertydb

import (
	"bytes"
	"strings"

	"github.com/hudsor01/tenantflow/business/domain/propertybus"
)

func applyFilter(filter propertybus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	var wc []string

	if filter.ID != nil {
		data["property_id"] = *filter.ID
		wc = append(wc, "property_id = :property_id")
	}

	if filter.OwnerID != nil {
		data["owner_id"] = *filter.OwnerID
		wc = append(wc, "owner_id = :owner_id")
	}

	if filter.Name != nil {
		data["name"] = "%" + filter.Name.String() + "%"
		wc = append(wc, "name LIKE :name")
	}

	if filter.City != nil {
		data["city"] = *filter.City
		wc = append(wc, "city = :city")
	}

	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}
