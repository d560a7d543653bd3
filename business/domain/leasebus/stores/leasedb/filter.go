package leasedb

import (
	"bytes"
	"strings"

	"github.com/hudsor01/tenantflow/business/domain/leasebus"
)

func applyFilter(filter leasebus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	var wc []string

	if filter.ID != nil {
		data["lease_id"] = *filter.ID
		wc = append(wc, "lease_id = :lease_id")
	}

	if filter.TenantID != nil {
		data["tenant_id"] = *filter.TenantID
		wc = append(wc, "tenant_id = :tenant_id")
	}

	if filter.PropertyID != nil {
		data["property_id"] = *filter.PropertyID
		wc = append(wc, "property_id = :property_id")
	}

	if filter.Status != nil {
		data["status"] = filter.Status.String()
		wc = append(wc, "status = :status")
	}

	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}
