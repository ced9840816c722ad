package order

import (
	"changeflow/bizerror"
	"changeflow/common"
	"changeflow/domain"
	"changeflow/domain/approver"
	"changeflow/domain/search"
	"changeflow/domain/status"
	"changeflow/event"
)

var (
	CreateChangeOrderFunc    = CreateChangeOrder
	UpdateChangeOrderFunc    = UpdateChangeOrder
	DeleteChangeOrdersFunc   = DeleteChangeOrders
	RenumberChangeOrdersFunc = RenumberChangeOrders
	QueryChangeOrdersFunc    = QueryChangeOrders
	DetailChangeOrderFunc    = DetailChangeOrder
)

// ChangeOrderSubmission is the editable form of a change order: plain
// fields plus the reconciliation rows the approval table is edited through.
type ChangeOrderSubmission struct {
	ID int64 `json:"id"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Reason      string `json:"reason"`

	Status        domain.OrderStatus `json:"status"`
	DateRequested domain.Date        `json:"dateRequested"`

	CostImpactEquipment    float64 `json:"costImpactEquipment" binding:"gte=0"`
	CostImpactInstallation float64 `json:"costImpactInstallation" binding:"gte=0"`
	CostImpactOther        float64 `json:"costImpactOther" binding:"gte=0"`
	OtherCostsExplanation  string  `json:"otherCostsExplanation"`

	ScheduleImpactDays int `json:"scheduleImpactDays" binding:"gte=0"`

	InternalApprovers   []approver.ControlRow `json:"internalApprovers"`
	ThirdPartyApprovers []domain.Approval     `json:"thirdPartyApprovers"`
}

type ChangeOrderList struct {
	Records   []domain.ChangeOrder `json:"records"`
	TotalCost float64              `json:"totalCost"`
}

// ChangeOrderDetail is a stored order expanded for editing against the
// current approver configuration.
type ChangeOrderDetail struct {
	domain.ChangeOrder

	InternalApprovers   []approver.ControlRow `json:"internalApprovers"`
	ThirdPartyApprovers []domain.Approval     `json:"thirdPartyApprovers"`
}

func CreateChangeOrder(submission *ChangeOrderSubmission) (*domain.ChangeOrder, error) {
	if submission.ID != 0 {
		return nil, bizerror.ErrInvalidState
	}
	o, err := commit(submission)
	if err != nil {
		return nil, err
	}
	created, err := ActiveStore.Create(*o)
	if err != nil {
		return nil, err
	}
	event.EmitFunc(event.NewEventRecord(event.EventCategoryCreated, "change_order", created.ID, created.Title))
	return &created, nil
}

func UpdateChangeOrder(submission *ChangeOrderSubmission) (*domain.ChangeOrder, error) {
	o, err := commit(submission)
	if err != nil {
		return nil, err
	}
	updated, err := ActiveStore.Update(*o)
	if err != nil {
		return nil, err
	}
	event.EmitFunc(event.NewEventRecord(event.EventCategoryUpdated, "change_order", updated.ID, updated.Title))
	return &updated, nil
}

// DeleteChangeOrders removes the selection as a batch; ids absent from the
// collection are ignored. An empty selection is rejected.
func DeleteChangeOrders(ids []int64) error {
	if len(ids) == 0 {
		return bizerror.ErrInvalidState
	}
	idSet := map[int64]bool{}
	for _, id := range ids {
		idSet[id] = true
	}
	removed := ActiveStore.Delete(idSet)
	if removed > 0 {
		event.EmitFunc(event.NewEventRecord(event.EventCategoryDeleted, "change_order", 0, ""))
	}
	return nil
}

func RenumberChangeOrders() []domain.ChangeOrder {
	renumbered := ActiveStore.Renumber()
	if renumbered != nil {
		event.EmitFunc(event.NewEventRecord(event.EventCategoryRenumbered, "change_order", 0, ""))
	}
	return renumbered
}

func QueryChangeOrders(q search.ChangeOrderQuery) ChangeOrderList {
	records := search.FilterChangeOrders(ActiveStore.Orders(), q)
	return ChangeOrderList{Records: records, TotalCost: search.SumTotalCost(records)}
}

func DetailChangeOrder(id int64) (*ChangeOrderDetail, error) {
	o, found := ActiveStore.Find(id)
	if !found {
		return nil, bizerror.ErrNotFound
	}
	rows, thirdParty := approver.Expand(&o, ActiveStore.Settings().ApproverConfig)
	return &ChangeOrderDetail{ChangeOrder: o, InternalApprovers: rows, ThirdPartyApprovers: thirdParty}, nil
}

// commit runs the save pipeline: validate, collapse the reconciliation rows
// into the flat approvals, then derive the effective status.
func commit(submission *ChangeOrderSubmission) (*domain.ChangeOrder, error) {
	if err := validateSubmission(submission); err != nil {
		return nil, err
	}
	if submission.CostImpactOther > 0 && submission.OtherCostsExplanation == "" {
		common.Log.Warnf("change order %q has other costs without an explanation", submission.Title)
	}

	approvals := approver.Collapse(submission.InternalApprovers, submission.ThirdPartyApprovers,
		ActiveStore.Settings().ApproverConfig)
	effective := status.Effective(submission.Status, approvals)

	return &domain.ChangeOrder{
		ID:            submission.ID,
		Title:         submission.Title,
		Description:   submission.Description,
		Reason:        submission.Reason,
		Status:        effective,
		DateRequested: submission.DateRequested,

		CostImpactEquipment:    submission.CostImpactEquipment,
		CostImpactInstallation: submission.CostImpactInstallation,
		CostImpactOther:        submission.CostImpactOther,
		OtherCostsExplanation:  submission.OtherCostsExplanation,

		ScheduleImpactDays: submission.ScheduleImpactDays,
		Approvals:          approvals,
	}, nil
}

func validateSubmission(submission *ChangeOrderSubmission) error {
	missing := []string{}
	if submission.Title == "" {
		missing = append(missing, "title")
	}
	if submission.Description == "" {
		missing = append(missing, "description")
	}
	if submission.Reason == "" {
		missing = append(missing, "reason")
	}
	if submission.DateRequested.IsZero() {
		missing = append(missing, "dateRequested")
	}
	if len(missing) > 0 {
		return &bizerror.ErrValidation{MissingFields: missing}
	}
	if submission.CostImpactEquipment < 0 || submission.CostImpactInstallation < 0 ||
		submission.CostImpactOther < 0 || submission.ScheduleImpactDays < 0 {
		return &bizerror.ErrBadParam{}
	}
	return nil
}
