package cli

import (
	"context"
	"fmt"

	"github.com/hms/hms/internal/domain/patient"
)

func (a *App) patientMenu(ctx context.Context) {
	items := []menuItem{
		{"1", "Register New Patient", a.registerPatient},
		{"2", "View All Patients", a.viewAllPatients},
		{"3", "Search Patient", a.searchPatient},
		{"4", "Update Patient", a.updatePatient},
		{"5", "Delete Patient", a.deletePatient},
		{"6", "Back to Main Menu", nil},
	}
	a.runMenu(ctx, items, "6")
}

func (a *App) registerPatient(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- Register New Patient ---")

	in := patient.CreateInput{
		FirstName:     a.prompt("First Name: "),
		LastName:      a.prompt("Last Name: "),
		DateOfBirth:   a.prompt("Date of Birth (YYYY-MM-DD): "),
		Gender:        a.prompt("Gender (Male/Female/Other): "),
		ContactNumber: a.prompt("Contact Number: "),
		Email:         a.prompt("Email (optional): "),
		Address:       a.prompt("Address (optional): "),
	}

	p, err := a.patients.Create(ctx, in)
	if err != nil {
		fmt.Fprintf(a.out, "\nError: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "\nPatient registered successfully! Patient ID: %d\n", p.ID)
}

func (a *App) viewAllPatients(ctx context.Context) {
	patients, err := a.patients.List(ctx)
	if err != nil {
		a.log.Error().Err(err).Msg("list patients")
		fmt.Fprintf(a.out, "\nError: %v\n", err)
		return
	}
	a.renderPatients(patients)
}

func (a *App) searchPatient(ctx context.Context) {
	term := a.prompt("\nEnter patient name to search: ")
	patients, err := a.patients.Search(ctx, term)
	if err != nil {
		a.log.Error().Err(err).Msg("search patients")
		fmt.Fprintf(a.out, "\nError: %v\n", err)
		return
	}
	a.renderPatients(patients)
}

func (a *App) renderPatients(patients []*patient.Patient) {
	if len(patients) == 0 {
		fmt.Fprintln(a.out, "\nNo patients found.")
		return
	}
	rows := make([][]string, 0, len(patients))
	for _, p := range patients {
		rows = append(rows, []string{
			fmtID(p.ID),
			p.FullName(),
			fmtDate(p.DateOfBirth),
			string(p.Gender),
			p.ContactNumber,
			orEmpty(p.Email),
		})
	}
	fmt.Fprintln(a.out)
	renderTable(a.out, []string{"ID", "Name", "Date of Birth", "Gender", "Contact", "Email"}, rows)
}

func (a *App) updatePatient(ctx context.Context) {
	id, ok := a.promptID("\nEnter patient ID to update: ", "patient")
	if !ok {
		return
	}
	p, err := a.patients.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if p == nil {
		fmt.Fprintln(a.out, "Patient not found.")
		return
	}

	fmt.Fprintf(a.out, "\nUpdating patient: %s\n", p.FullName())
	fmt.Fprintln(a.out, "Leave field blank to keep current value.")

	patch := patient.Patch{
		FirstName:     a.promptPatch("First Name", p.FirstName),
		LastName:      a.promptPatch("Last Name", p.LastName),
		DateOfBirth:   a.promptPatch("Date of Birth (YYYY-MM-DD)", fmtDate(p.DateOfBirth)),
		Gender:        a.promptPatch("Gender (Male/Female/Other)", string(p.Gender)),
		ContactNumber: a.promptPatch("Contact Number", p.ContactNumber),
		Email:         a.promptPatch("Email", orEmpty(p.Email)),
		Address:       a.promptPatch("Address", orEmpty(p.Address)),
	}
	if patch == (patient.Patch{}) {
		fmt.Fprintln(a.out, "No changes made.")
		return
	}

	if _, err := a.patients.Update(ctx, id, patch); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Patient updated successfully!")
}

func (a *App) deletePatient(ctx context.Context) {
	id, ok := a.promptID("\nEnter patient ID to delete: ", "patient")
	if !ok {
		return
	}
	p, err := a.patients.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if p == nil {
		fmt.Fprintln(a.out, "Patient not found.")
		return
	}

	if !a.confirm(fmt.Sprintf("Are you sure you want to delete %s? (y/n): ", p.FullName())) {
		fmt.Fprintln(a.out, "Deletion cancelled.")
		return
	}
	deleted, err := a.patients.Delete(ctx, id)
	if err != nil || !deleted {
		a.log.Error().Err(err).Int64("patient_id", id).Msg("delete patient")
		fmt.Fprintln(a.out, "Error deleting patient.")
		return
	}
	fmt.Fprintln(a.out, "Patient deleted successfully!")
}
