package cli

import (
	"context"
	"fmt"

	"github.com/hms/hms/internal/domain/medicalrecord"
)

func (a *App) medicalRecordMenu(ctx context.Context) {
	items := []menuItem{
		{"1", "Create New Medical Record", a.createMedicalRecord},
		{"2", "View All Medical Records", a.viewAllMedicalRecords},
		{"3", "View Patient Medical Records", a.viewPatientMedicalRecords},
		{"4", "Update Medical Record", a.updateMedicalRecord},
		{"5", "Delete Medical Record", a.deleteMedicalRecord},
		{"6", "Back to Main Menu", nil},
	}
	a.runMenu(ctx, items, "6")
}

func (a *App) createMedicalRecord(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- Create New Medical Record ---")

	patientID, ok := a.promptID("Patient ID: ", "patient")
	if !ok {
		return
	}
	staffID, ok := a.promptID("Staff ID: ", "staff")
	if !ok {
		return
	}
	in := medicalrecord.CreateInput{
		PatientID:     patientID,
		StaffID:       staffID,
		Diagnosis:     a.prompt("Diagnosis: "),
		Treatment:     a.prompt("Treatment: "),
		AdmissionDate: a.prompt("Admission Date (YYYY-MM-DD, optional): "),
		DischargeDate: a.prompt("Discharge Date (YYYY-MM-DD, optional): "),
		Medications:   a.prompt("Medications (optional): "),
		Notes:         a.prompt("Notes (optional): "),
	}

	rec, err := a.records.Create(ctx, in)
	if err != nil {
		fmt.Fprintf(a.out, "\nError: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "\nMedical record created successfully! Record ID: %d\n", rec.ID)
}

func (a *App) viewAllMedicalRecords(ctx context.Context) {
	records, err := a.records.List(ctx)
	if err != nil {
		a.log.Error().Err(err).Msg("list medical records")
		fmt.Fprintf(a.out, "\nError: %v\n", err)
		return
	}
	if len(records) == 0 {
		fmt.Fprintln(a.out, "\nNo medical records found.")
		return
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			fmtID(rec.ID),
			fmtID(rec.PatientID),
			fmtID(rec.StaffID),
			rec.Diagnosis,
			fmtDatePtr(rec.AdmissionDate),
			fmtDatePtr(rec.DischargeDate),
			fmtDays(rec.DurationOfStay),
		})
	}
	fmt.Fprintln(a.out)
	renderTable(a.out, []string{"ID", "Patient ID", "Staff ID", "Diagnosis", "Admission", "Discharge", "Days"}, rows)
}

func (a *App) viewPatientMedicalRecords(ctx context.Context) {
	patientID, ok := a.promptID("\nEnter patient ID: ", "patient")
	if !ok {
		return
	}
	records, err := a.records.ListByPatient(ctx, patientID)
	if err != nil {
		a.log.Error().Err(err).Msg("list patient medical records")
		fmt.Fprintf(a.out, "\nError: %v\n", err)
		return
	}
	if len(records) == 0 {
		fmt.Fprintln(a.out, "\nNo medical records found for this patient.")
		return
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			fmtID(rec.ID),
			fmtID(rec.StaffID),
			rec.Diagnosis,
			fmtDatePtr(rec.AdmissionDate),
			fmtDatePtr(rec.DischargeDate),
			fmtDays(rec.DurationOfStay),
		})
	}
	fmt.Fprintf(a.out, "\nMedical Records for Patient ID %d:\n", patientID)
	renderTable(a.out, []string{"ID", "Staff ID", "Diagnosis", "Admission", "Discharge", "Days"}, rows)
}

func (a *App) updateMedicalRecord(ctx context.Context) {
	id, ok := a.promptID("\nEnter medical record ID to update: ", "record")
	if !ok {
		return
	}
	rec, err := a.records.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if rec == nil {
		fmt.Fprintln(a.out, "Medical record not found.")
		return
	}

	fmt.Fprintf(a.out, "\nUpdating medical record ID: %d\n", rec.ID)
	fmt.Fprintln(a.out, "Leave field blank to keep current value.")

	patch := medicalrecord.Patch{
		Diagnosis:     a.promptPatch("Diagnosis", rec.Diagnosis),
		Treatment:     a.promptPatch("Treatment", orEmpty(rec.Treatment)),
		AdmissionDate: a.promptPatch("Admission Date (YYYY-MM-DD)", fmtDatePtr(rec.AdmissionDate)),
		DischargeDate: a.promptPatch("Discharge Date (YYYY-MM-DD)", fmtDatePtr(rec.DischargeDate)),
		Medications:   a.promptPatch("Medications", orEmpty(rec.Medications)),
		Notes:         a.promptPatch("Notes", orEmpty(rec.Notes)),
	}
	if patch == (medicalrecord.Patch{}) {
		fmt.Fprintln(a.out, "No changes made.")
		return
	}

	if _, err := a.records.Update(ctx, id, patch); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Medical record updated successfully!")
}

func (a *App) deleteMedicalRecord(ctx context.Context) {
	id, ok := a.promptID("\nEnter medical record ID to delete: ", "record")
	if !ok {
		return
	}
	rec, err := a.records.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if rec == nil {
		fmt.Fprintln(a.out, "Medical record not found.")
		return
	}

	if !a.confirm(fmt.Sprintf("Are you sure you want to delete medical record ID %d? (y/n): ", id)) {
		fmt.Fprintln(a.out, "Deletion cancelled.")
		return
	}
	deleted, err := a.records.Delete(ctx, id)
	if err != nil || !deleted {
		a.log.Error().Err(err).Int64("record_id", id).Msg("delete medical record")
		fmt.Fprintln(a.out, "Error deleting medical record.")
		return
	}
	fmt.Fprintln(a.out, "Medical record deleted successfully!")
}
