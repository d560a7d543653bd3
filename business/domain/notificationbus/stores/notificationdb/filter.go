package notificationdb

import (
	"bytes"
	"strings"

	"github.com/hudsor01/tenantflow/business/domain/notificationbus"
)

func applyFilter(filter notificationbus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	var wc []string

	if filter.ID != nil {
		data["notification_id"] = *filter.ID
		wc = append(wc, "notification_id = :notification_id")
	}

	if filter.UserID != nil {
		data["user_id"] = *filter.UserID
		wc = append(wc, "user_id = :user_id")
	}

	if filter.Type != nil {
		data["ntype"] = filter.Type.String()
		wc = append(wc, "ntype = :ntype")
	}

	if filter.IsRead != nil {
		data["is_read"] = *filter.IsRead
		wc = append(wc, "is_read = :is_read")
	}

	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}
