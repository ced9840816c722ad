package status

import (
	"changeflow/domain"
)

// Effective computes the status to commit from the current status and the
// order's approvals. It runs exactly once per save, never while individual
// approval rows are being edited.
//
// Any rejection wins. A fully approved, non-empty approval set yields
// Approved, and anything else yields Pending Approval, except that manual
// progression to In Progress or Completed is sticky and is not overridden
// by the automatic rules.
func Effective(current domain.OrderStatus, approvals []domain.Approval) domain.OrderStatus {
	anyRejected := false
	allApproved := len(approvals) > 0
	for _, approval := range approvals {
		if approval.Status == domain.ApprovalRejected {
			anyRejected = true
		}
		if approval.Status != domain.ApprovalApproved {
			allApproved = false
		}
	}

	if anyRejected {
		return domain.StatusRejected
	}
	if current == domain.StatusInProgress || current == domain.StatusCompleted {
		return current
	}
	if allApproved {
		return domain.StatusApproved
	}
	return domain.StatusPendingApproval
}
