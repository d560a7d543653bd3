package tenantdb

import (
	"bytes"
	"strings"

	"github.com/hudsor01/tenantflow/business/domain/tenantbus"
)

func applyFilter(filter tenantbus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	var wc []string

	if filter.ID != nil {
		data["tenant_id"] = *filter.ID
		wc = append(wc, "tenant_id = :tenant_id")
	}

	if filter.OwnerID != nil {
		data["owner_id"] = *filter.OwnerID
		wc = append(wc, "owner_id = :owner_id")
	}

	if filter.Email != nil {
		data["email"] = filter.Email.Address
		wc = append(wc, "email = :email")
	}

	if filter.Status != nil {
		data["status"] = filter.Status.String()
		wc = append(wc, "status = :status")
	}

	if filter.InvitationStatus != nil {
		data["invitation_status"] = filter.InvitationStatus.String()
		wc = append(wc, "invitation_status = :invitation_status")
	}

	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}
