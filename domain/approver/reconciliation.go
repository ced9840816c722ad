package approver

import (
	"changeflow/domain"
)

// ControlRow is the editable form of one internal approver role. A row is
// present for every role with a configured approver name, whether or not the
// change order currently carries a matching approval.
type ControlRow struct {
	Role         string                `json:"role"`
	ApproverName string                `json:"approverName"`
	Included     bool                  `json:"included"`
	Status       domain.ApprovalStatus `json:"status"`
	ApprovalDate *domain.Date          `json:"approvalDate,omitempty"`
}

// Expand splits a change order's flat approvals into internal control rows
// (one per configured role, in role-priority order) and third-party
// approvals (pass-through, order preserved). An approval belongs to a role
// when its name equals that role's configured approver name.
func Expand(order *domain.ChangeOrder, approverConfig map[string]string) ([]ControlRow, []domain.Approval) {
	claimed := map[string]bool{}
	rows := []ControlRow{}
	for _, role := range domain.InternalRoles {
		name := approverConfig[role]
		if name == "" {
			continue
		}
		row := ControlRow{Role: role, ApproverName: name, Included: false, Status: domain.ApprovalPending}
		for _, approval := range order.Approvals {
			if approval.Name == name {
				row.Included = true
				row.Status = approval.Status
				row.ApprovalDate = approval.ApprovalDate
				claimed[approval.Name] = true
				break
			}
		}
		rows = append(rows, row)
	}

	thirdParty := []domain.Approval{}
	for _, approval := range order.Approvals {
		if !claimed[approval.Name] && !isConfiguredName(approval.Name, approverConfig) {
			thirdParty = append(thirdParty, approval)
		}
	}
	return rows, thirdParty
}

func isConfiguredName(name string, approverConfig map[string]string) bool {
	for _, role := range domain.InternalRoles {
		if approverConfig[role] != "" && approverConfig[role] == name {
			return true
		}
	}
	return false
}

// EditDate applies the approval-date editing rule: setting a date while the
// row is Pending auto-promotes it to Approved.
func EditDate(status domain.ApprovalStatus, date *domain.Date) (domain.ApprovalStatus, *domain.Date) {
	if date != nil && !date.IsZero() && status == domain.ApprovalPending {
		return domain.ApprovalApproved, date
	}
	return status, date
}

// EditStatus applies the status editing rule: moving a row back to Pending
// clears its approval date.
func EditStatus(status domain.ApprovalStatus, date *domain.Date) (domain.ApprovalStatus, *domain.Date) {
	if status == domain.ApprovalPending {
		return status, nil
	}
	return status, date
}

// EditIncluded applies the inclusion checkbox rule: unchecking an internal
// row resets it to a pending, undated decision.
func EditIncluded(row ControlRow, included bool) ControlRow {
	row.Included = included
	if !included {
		row.Status = domain.ApprovalPending
		row.ApprovalDate = nil
	}
	return row
}

// Collapse rebuilds the flat approvals sequence to commit: included internal
// rows first, in role-priority order, then third-party rows with a non-empty
// name, in their current order. Rows failing the inclusion predicates are
// dropped silently. Every emitted approval is normalized so that a Pending
// decision never carries a date.
func Collapse(rows []ControlRow, thirdParty []domain.Approval, approverConfig map[string]string) []domain.Approval {
	approvals := []domain.Approval{}
	for _, role := range domain.InternalRoles {
		name := approverConfig[role]
		if name == "" {
			continue
		}
		for _, row := range rows {
			if row.Role != role || !row.Included {
				continue
			}
			status, date := normalize(row.Status, row.ApprovalDate)
			approvals = append(approvals, domain.Approval{Name: name, Status: status, ApprovalDate: date})
			break
		}
	}
	for _, approval := range thirdParty {
		if approval.Name == "" {
			continue
		}
		status, date := normalize(approval.Status, approval.ApprovalDate)
		approvals = append(approvals, domain.Approval{Name: approval.Name, Status: status, ApprovalDate: date})
	}
	return approvals
}

func normalize(status domain.ApprovalStatus, date *domain.Date) (domain.ApprovalStatus, *domain.Date) {
	if status == "" {
		status = domain.ApprovalPending
	}
	status, date = EditDate(status, date)
	return EditStatus(status, date)
}
