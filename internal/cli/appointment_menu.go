package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hms/hms/internal/domain/appointment"
)

func (a *App) appointmentMenu(ctx context.Context) {
	items := []menuItem{
		{"1", "Schedule New Appointment", a.scheduleAppointment},
		{"2", "View All Appointments", a.viewAllAppointments},
		{"3", "View Patient Appointments", a.viewPatientAppointments},
		{"4", "View Staff Appointments", a.viewStaffAppointments},
		{"5", "Update Appointment", a.updateAppointment},
		{"6", "Delete Appointment", a.deleteAppointment},
		{"7", "Back to Main Menu", nil},
	}
	a.runMenu(ctx, items, "7")
}

func (a *App) scheduleAppointment(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- Schedule New Appointment ---")

	patientID, ok := a.promptID("Patient ID: ", "patient")
	if !ok {
		return
	}
	staffID, ok := a.promptID("Staff ID: ", "staff")
	if !ok {
		return
	}
	in := appointment.CreateInput{
		PatientID:       patientID,
		StaffID:         staffID,
		AppointmentDate: a.prompt("Appointment Date (YYYY-MM-DD HH:MM): "),
		Purpose:         a.prompt("Purpose: "),
		Status:          a.prompt("Status (Scheduled/Completed/Cancelled, default: Scheduled): "),
	}

	appt, err := a.appointments.Create(ctx, in)
	if err != nil {
		fmt.Fprintf(a.out, "\nError: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "\nAppointment scheduled successfully! Appointment ID: %d\n", appt.ID)
}

func (a *App) viewAllAppointments(ctx context.Context) {
	appts, err := a.appointments.List(ctx)
	if err != nil {
		a.log.Error().Err(err).Msg("list appointments")
		fmt.Fprintf(a.out, "\nError: %v\n", err)
		return
	}
	if len(appts) == 0 {
		fmt.Fprintln(a.out, "\nNo appointments found.")
		return
	}
	rows := make([][]string, 0, len(appts))
	for _, appt := range appts {
		rows = append(rows, []string{
			fmtID(appt.ID),
			fmtID(appt.PatientID),
			fmtID(appt.StaffID),
			fmtDateTime(appt.AppointmentDate),
			orEmpty(appt.Purpose),
			string(appt.Status),
		})
	}
	fmt.Fprintln(a.out)
	renderTable(a.out, []string{"ID", "Patient ID", "Staff ID", "Date", "Purpose", "Status"}, rows)
}

func (a *App) viewPatientAppointments(ctx context.Context) {
	patientID, ok := a.promptID("\nEnter patient ID: ", "patient")
	if !ok {
		return
	}
	appts, err := a.appointments.ListByPatient(ctx, patientID)
	if err != nil {
		a.log.Error().Err(err).Msg("list patient appointments")
		fmt.Fprintf(a.out, "\nError: %v\n", err)
		return
	}
	if len(appts) == 0 {
		fmt.Fprintln(a.out, "\nNo appointments found for this patient.")
		return
	}
	rows := make([][]string, 0, len(appts))
	for _, appt := range appts {
		rows = append(rows, []string{
			fmtID(appt.ID),
			fmtID(appt.StaffID),
			fmtDateTime(appt.AppointmentDate),
			orEmpty(appt.Purpose),
			string(appt.Status),
		})
	}
	fmt.Fprintf(a.out, "\nAppointments for Patient ID %d:\n", patientID)
	renderTable(a.out, []string{"ID", "Staff ID", "Date", "Purpose", "Status"}, rows)
}

func (a *App) viewStaffAppointments(ctx context.Context) {
	staffID, ok := a.promptID("\nEnter staff ID: ", "staff")
	if !ok {
		return
	}
	appts, err := a.appointments.ListByStaff(ctx, staffID)
	if err != nil {
		a.log.Error().Err(err).Msg("list staff appointments")
		fmt.Fprintf(a.out, "\nError: %v\n", err)
		return
	}
	if len(appts) == 0 {
		fmt.Fprintln(a.out, "\nNo appointments found for this staff member.")
		return
	}
	rows := make([][]string, 0, len(appts))
	for _, appt := range appts {
		rows = append(rows, []string{
			fmtID(appt.ID),
			fmtID(appt.PatientID),
			fmtDateTime(appt.AppointmentDate),
			orEmpty(appt.Purpose),
			string(appt.Status),
		})
	}
	fmt.Fprintf(a.out, "\nAppointments for Staff ID %d:\n", staffID)
	renderTable(a.out, []string{"ID", "Patient ID", "Date", "Purpose", "Status"}, rows)
}

func (a *App) updateAppointment(ctx context.Context) {
	id, ok := a.promptID("\nEnter appointment ID to update: ", "appointment")
	if !ok {
		return
	}
	appt, err := a.appointments.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if appt == nil {
		fmt.Fprintln(a.out, "Appointment not found.")
		return
	}

	fmt.Fprintf(a.out, "\nUpdating appointment ID: %d\n", appt.ID)
	fmt.Fprintln(a.out, "Leave field blank to keep current value.")

	patientID, ok := a.patchID("Patient ID", appt.PatientID)
	if !ok {
		return
	}
	staffID, ok := a.patchID("Staff ID", appt.StaffID)
	if !ok {
		return
	}
	patch := appointment.Patch{
		PatientID:       patientID,
		StaffID:         staffID,
		AppointmentDate: a.promptPatch("Appointment Date (YYYY-MM-DD HH:MM)", fmtDateTime(appt.AppointmentDate)),
		Purpose:         a.promptPatch("Purpose", orEmpty(appt.Purpose)),
		Status:          a.promptPatch("Status (Scheduled/Completed/Cancelled)", string(appt.Status)),
	}
	if patch == (appointment.Patch{}) {
		fmt.Fprintln(a.out, "No changes made.")
		return
	}

	if _, err := a.appointments.Update(ctx, id, patch); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Appointment updated successfully!")
}

// patchID is promptPatch for integer reference fields.
func (a *App) patchID(label string, current int64) (*int64, bool) {
	s := a.promptPatch(label, fmtID(current))
	if s == nil {
		return nil, true
	}
	id, err := strconv.ParseInt(*s, 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid %s. Please enter a number.\n", label)
		return nil, false
	}
	return &id, true
}

func (a *App) deleteAppointment(ctx context.Context) {
	id, ok := a.promptID("\nEnter appointment ID to delete: ", "appointment")
	if !ok {
		return
	}
	appt, err := a.appointments.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if appt == nil {
		fmt.Fprintln(a.out, "Appointment not found.")
		return
	}

	if !a.confirm(fmt.Sprintf("Are you sure you want to delete appointment ID %d? (y/n): ", id)) {
		fmt.Fprintln(a.out, "Deletion cancelled.")
		return
	}
	deleted, err := a.appointments.Delete(ctx, id)
	if err != nil || !deleted {
		a.log.Error().Err(err).Int64("appointment_id", id).Msg("delete appointment")
		fmt.Fprintln(a.out, "Error deleting appointment.")
		return
	}
	fmt.Fprintln(a.out, "Appointment deleted successfully!")
}
