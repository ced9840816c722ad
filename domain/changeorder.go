package domain

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

type OrderStatus string

const (
	StatusPendingApproval OrderStatus = "Pending Approval"
	StatusApproved        OrderStatus = "Approved"
	StatusRejected        OrderStatus = "Rejected"
	StatusInProgress      OrderStatus = "In Progress"
	StatusCompleted       OrderStatus = "Completed"
)

// Approval is one approver's decision on a change order.
// ApprovalDate must be absent while Status is Pending.
type Approval struct {
	Name         string         `json:"name"`
	Status       ApprovalStatus `json:"status"`
	ApprovalDate *Date          `json:"approvalDate,omitempty"`
}

// ChangeOrder ID 0 is the unsaved-draft sentinel and never appears in a
// persisted collection.
type ChangeOrder struct {
	ID int64 `json:"id"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Reason      string `json:"reason"`

	Status        OrderStatus `json:"status"`
	DateRequested Date        `json:"dateRequested"`

	CostImpactEquipment    float64 `json:"costImpactEquipment"`
	CostImpactInstallation float64 `json:"costImpactInstallation"`
	CostImpactOther        float64 `json:"costImpactOther"`
	OtherCostsExplanation  string  `json:"otherCostsExplanation"`

	ScheduleImpactDays int `json:"scheduleImpactDays"`

	Approvals []Approval `json:"approvals"`
}

// TotalCost is always derived, never stored.
func (o *ChangeOrder) TotalCost() float64 {
	return o.CostImpactEquipment + o.CostImpactInstallation + o.CostImpactOther
}
