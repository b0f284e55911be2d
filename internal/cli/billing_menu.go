package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/hms/hms/internal/domain/billing"
)

func (a *App) billingMenu(ctx context.Context) {
	items := []menuItem{
		{"1", "Create New Bill", a.createBill},
		{"2", "View All Bills", a.viewAllBills},
		{"3", "View Patient Bills", a.viewPatientBills},
		{"4", "View Unpaid Bills", a.viewUnpaidBills},
		{"5", "Mark Bill as Paid", a.markBillPaid},
		{"6", "Update Bill", a.updateBill},
		{"7", "Delete Bill", a.deleteBill},
		{"8", "Back to Main Menu", nil},
	}
	a.runMenu(ctx, items, "8")
}

func (a *App) createBill(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- Create New Bill ---")

	patientID, ok := a.promptID("Patient ID: ", "patient")
	if !ok {
		return
	}
	in := billing.CreateInput{
		PatientID:   patientID,
		Amount:      a.prompt("Amount: "),
		DueDate:     a.prompt("Due Date (YYYY-MM-DD, optional): "),
		Description: a.prompt("Description: "),
		Status:      a.prompt("Status (Paid/Unpaid, default: Unpaid): "),
	}

	b, err := a.bills.Create(ctx, in)
	if err != nil {
		fmt.Fprintf(a.out, "\nError: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "\nBill created successfully! Bill ID: %d\n", b.ID)
}

func (a *App) viewAllBills(ctx context.Context) {
	bills, err := a.bills.List(ctx)
	if err != nil {
		a.log.Error().Err(err).Msg("list bills")
		fmt.Fprintf(a.out, "\nError: %v\n", err)
		return
	}
	if len(bills) == 0 {
		fmt.Fprintln(a.out, "\nNo bills found.")
		return
	}
	rows := make([][]string, 0, len(bills))
	for _, b := range bills {
		rows = append(rows, []string{
			fmtID(b.ID),
			fmtID(b.PatientID),
			fmtAmount(b.Amount),
			fmtDate(b.DateIssued),
			fmtDatePtr(b.DueDate),
			string(b.Status),
		})
	}
	fmt.Fprintln(a.out)
	renderTable(a.out, []string{"ID", "Patient ID", "Amount", "Issued", "Due", "Status"}, rows)
}

func (a *App) viewPatientBills(ctx context.Context) {
	patientID, ok := a.promptID("\nEnter patient ID: ", "patient")
	if !ok {
		return
	}
	bills, err := a.bills.ListByPatient(ctx, patientID)
	if err != nil {
		a.log.Error().Err(err).Msg("list patient bills")
		fmt.Fprintf(a.out, "\nError: %v\n", err)
		return
	}
	if len(bills) == 0 {
		fmt.Fprintln(a.out, "\nNo bills found for this patient.")
		return
	}
	rows := make([][]string, 0, len(bills))
	for _, b := range bills {
		rows = append(rows, []string{
			fmtID(b.ID),
			fmtAmount(b.Amount),
			fmtDate(b.DateIssued),
			fmtDatePtr(b.DueDate),
			string(b.Status),
		})
	}
	fmt.Fprintf(a.out, "\nBills for Patient ID %d:\n", patientID)
	renderTable(a.out, []string{"ID", "Amount", "Issued", "Due", "Status"}, rows)
}

func (a *App) viewUnpaidBills(ctx context.Context) {
	bills, err := a.bills.ListUnpaid(ctx)
	if err != nil {
		a.log.Error().Err(err).Msg("list unpaid bills")
		fmt.Fprintf(a.out, "\nError: %v\n", err)
		return
	}
	if len(bills) == 0 {
		fmt.Fprintln(a.out, "\nNo unpaid bills found.")
		return
	}
	now := time.Now()
	rows := make([][]string, 0, len(bills))
	for _, b := range bills {
		overdue := ""
		if b.Overdue(now) {
			overdue = "yes"
		}
		rows = append(rows, []string{
			fmtID(b.ID),
			fmtID(b.PatientID),
			fmtAmount(b.Amount),
			fmtDate(b.DateIssued),
			fmtDatePtr(b.DueDate),
			overdue,
		})
	}
	fmt.Fprintln(a.out, "\nUnpaid Bills:")
	renderTable(a.out, []string{"ID", "Patient ID", "Amount", "Issued", "Due", "Overdue"}, rows)
}

func (a *App) markBillPaid(ctx context.Context) {
	id, ok := a.promptID("\nEnter bill ID to mark as paid: ", "bill")
	if !ok {
		return
	}
	b, err := a.bills.MarkPaid(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if b == nil {
		fmt.Fprintln(a.out, "Bill not found.")
		return
	}
	fmt.Fprintf(a.out, "Bill ID %d marked as paid successfully!\n", id)
}

func (a *App) updateBill(ctx context.Context) {
	id, ok := a.promptID("\nEnter bill ID to update: ", "bill")
	if !ok {
		return
	}
	b, err := a.bills.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if b == nil {
		fmt.Fprintln(a.out, "Bill not found.")
		return
	}

	fmt.Fprintf(a.out, "\nUpdating bill ID: %d\n", b.ID)
	fmt.Fprintln(a.out, "Leave field blank to keep current value.")

	patch := billing.Patch{
		Amount:      a.promptPatch("Amount", fmtAmount(b.Amount)),
		DueDate:     a.promptPatch("Due Date (YYYY-MM-DD)", fmtDatePtr(b.DueDate)),
		Description: a.promptPatch("Description", orEmpty(b.Description)),
		Status:      a.promptPatch("Status (Paid/Unpaid)", string(b.Status)),
	}
	if patch == (billing.Patch{}) {
		fmt.Fprintln(a.out, "No changes made.")
		return
	}

	if _, err := a.bills.Update(ctx, id, patch); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Bill updated successfully!")
}

func (a *App) deleteBill(ctx context.Context) {
	id, ok := a.promptID("\nEnter bill ID to delete: ", "bill")
	if !ok {
		return
	}
	b, err := a.bills.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if b == nil {
		fmt.Fprintln(a.out, "Bill not found.")
		return
	}

	if !a.confirm(fmt.Sprintf("Are you sure you want to delete bill ID %d? (y/n): ", id)) {
		fmt.Fprintln(a.out, "Deletion cancelled.")
		return
	}
	deleted, err := a.bills.Delete(ctx, id)
	if err != nil || !deleted {
		a.log.Error().Err(err).Int64("bill_id", id).Msg("delete bill")
		fmt.Fprintln(a.out, "Error deleting bill.")
		return
	}
	fmt.Fprintln(a.out, "Bill deleted successfully!")
}
