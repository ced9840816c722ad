package report

import (
	"changeflow/domain"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	BuildChangeOrderReportFunc = BuildChangeOrderReport
)

const SheetChangeOrders = "Change Orders"

var columnHeaders = []string{"ID", "Title", "Status", "Date Requested",
	"Equipment Cost", "Installation Cost", "Other Cost", "Total Cost",
	"Schedule Impact (Days)", "Approvals"}

// BuildChangeOrderReport renders the full, unfiltered collection plus the
// three project-identity strings into a workbook. Layout is a presentation
// concern; callers only hand over the snapshot.
func BuildChangeOrderReport(orders []domain.ChangeOrder, settings domain.AppSettings) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetChangeOrders); err != nil {
		return nil, err
	}

	f.SetCellValue(SheetChangeOrders, "A1", "Project")
	f.SetCellValue(SheetChangeOrders, "B1", settings.ProjectName)
	f.SetCellValue(SheetChangeOrders, "A2", "Location")
	f.SetCellValue(SheetChangeOrders, "B2", settings.ProjectLocation)
	f.SetCellValue(SheetChangeOrders, "A3", "Project Manager")
	f.SetCellValue(SheetChangeOrders, "B3", settings.ProjectManager)

	headerRow := 5
	for i, header := range columnHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(SheetChangeOrders, cell, header)
	}

	for i := range orders {
		o := &orders[i]
		row := headerRow + 1 + i
		values := []interface{}{o.ID, o.Title, string(o.Status), o.DateRequested.String(),
			o.CostImpactEquipment, o.CostImpactInstallation, o.CostImpactOther, o.TotalCost(),
			o.ScheduleImpactDays, approvalsSummary(o.Approvals)}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(SheetChangeOrders, cell, value)
		}
	}

	f.SetColWidth(SheetChangeOrders, "B", "B", 40)
	f.SetColWidth(SheetChangeOrders, "J", "J", 60)
	return f, nil
}

func approvalsSummary(approvals []domain.Approval) string {
	parts := make([]string, 0, len(approvals))
	for _, approval := range approvals {
		part := fmt.Sprintf("%s: %s", approval.Name, approval.Status)
		if approval.ApprovalDate != nil && !approval.ApprovalDate.IsZero() {
			part += fmt.Sprintf(" (%s)", approval.ApprovalDate.String())
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "; ")
}
