package cli

import (
	"context"
	"fmt"

	"github.com/hms/hms/internal/domain/staff"
)

func (a *App) staffMenu(ctx context.Context) {
	items := []menuItem{
		{"1", "Register New Staff", a.registerStaff},
		{"2", "View All Staff", a.viewAllStaff},
		{"3", "Search Staff", a.searchStaff},
		{"4", "Update Staff", a.updateStaff},
		{"5", "Delete Staff", a.deleteStaff},
		{"6", "Back to Main Menu", nil},
	}
	a.runMenu(ctx, items, "6")
}

func (a *App) registerStaff(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- Register New Staff ---")

	in := staff.CreateInput{
		FirstName:     a.prompt("First Name: "),
		LastName:      a.prompt("Last Name: "),
		Role:          a.prompt("Role (Doctor/Nurse/Admin/etc.): "),
		Department:    a.prompt("Department (optional): "),
		ContactNumber: a.prompt("Contact Number: "),
		Email:         a.prompt("Email (optional): "),
		HireDate:      a.prompt("Hire Date (YYYY-MM-DD, optional): "),
	}

	s, err := a.staff.Create(ctx, in)
	if err != nil {
		fmt.Fprintf(a.out, "\nError: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "\nStaff registered successfully! Staff ID: %d\n", s.ID)
}

func (a *App) viewAllStaff(ctx context.Context) {
	members, err := a.staff.List(ctx)
	if err != nil {
		a.log.Error().Err(err).Msg("list staff")
		fmt.Fprintf(a.out, "\nError: %v\n", err)
		return
	}
	a.renderStaff(members)
}

func (a *App) searchStaff(ctx context.Context) {
	term := a.prompt("\nEnter staff name or role to search: ")
	members, err := a.staff.Search(ctx, term)
	if err != nil {
		a.log.Error().Err(err).Msg("search staff")
		fmt.Fprintf(a.out, "\nError: %v\n", err)
		return
	}
	a.renderStaff(members)
}

func (a *App) renderStaff(members []*staff.Staff) {
	if len(members) == 0 {
		fmt.Fprintln(a.out, "\nNo staff members found.")
		return
	}
	rows := make([][]string, 0, len(members))
	for _, s := range members {
		rows = append(rows, []string{
			fmtID(s.ID),
			s.FullName(),
			s.Role,
			orEmpty(s.Department),
			s.ContactNumber,
			orEmpty(s.Email),
		})
	}
	fmt.Fprintln(a.out)
	renderTable(a.out, []string{"ID", "Name", "Role", "Department", "Contact", "Email"}, rows)
}

func (a *App) updateStaff(ctx context.Context) {
	id, ok := a.promptID("\nEnter staff ID to update: ", "staff")
	if !ok {
		return
	}
	s, err := a.staff.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if s == nil {
		fmt.Fprintln(a.out, "Staff not found.")
		return
	}

	fmt.Fprintf(a.out, "\nUpdating staff: %s\n", s.FullName())
	fmt.Fprintln(a.out, "Leave field blank to keep current value.")

	patch := staff.Patch{
		FirstName:     a.promptPatch("First Name", s.FirstName),
		LastName:      a.promptPatch("Last Name", s.LastName),
		Role:          a.promptPatch("Role", s.Role),
		Department:    a.promptPatch("Department", orEmpty(s.Department)),
		ContactNumber: a.promptPatch("Contact Number", s.ContactNumber),
		Email:         a.promptPatch("Email", orEmpty(s.Email)),
		HireDate:      a.promptPatch("Hire Date (YYYY-MM-DD)", fmtDatePtr(s.HireDate)),
	}
	if patch == (staff.Patch{}) {
		fmt.Fprintln(a.out, "No changes made.")
		return
	}

	if _, err := a.staff.Update(ctx, id, patch); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Staff updated successfully!")
}

func (a *App) deleteStaff(ctx context.Context) {
	id, ok := a.promptID("\nEnter staff ID to delete: ", "staff")
	if !ok {
		return
	}
	s, err := a.staff.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if s == nil {
		fmt.Fprintln(a.out, "Staff not found.")
		return
	}

	if !a.confirm(fmt.Sprintf("Are you sure you want to delete %s? (y/n): ", s.FullName())) {
		fmt.Fprintln(a.out, "Deletion cancelled.")
		return
	}
	deleted, err := a.staff.Delete(ctx, id)
	if err != nil || !deleted {
		a.log.Error().Err(err).Int64("staff_id", id).Msg("delete staff")
		fmt.Fprintln(a.out, "Error deleting staff.")
		return
	}
	fmt.Fprintln(a.out, "Staff deleted successfully!")
}
