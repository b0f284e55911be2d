// Package cli implements the interactive text menus a single operator uses
// to manage patients, staff, appointments, medical records, and bills.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/domain/appointment"
	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/medicalrecord"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/domain/staff"
)

// App drives the menu loop. All reads come from in, all output goes to out,
// so the whole surface is scriptable in tests.
type App struct {
	in  *bufio.Scanner
	out io.Writer
	log zerolog.Logger

	patients     *patient.Service
	staff        *staff.Service
	appointments *appointment.Service
	records      *medicalrecord.Service
	bills        *billing.Service
}

func New(
	in io.Reader,
	out io.Writer,
	log zerolog.Logger,
	patients *patient.Service,
	staffSvc *staff.Service,
	appointments *appointment.Service,
	records *medicalrecord.Service,
	bills *billing.Service,
) *App {
	return &App{
		in:           bufio.NewScanner(in),
		out:          out,
		log:          log,
		patients:     patients,
		staff:        staffSvc,
		appointments: appointments,
		records:      records,
		bills:        bills,
	}
}

type menuItem struct {
	key  string
	name string
	run  func(ctx context.Context)
}

// Run shows the main menu until the operator exits or input runs out.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to Hospital Management System!")

	items := []menuItem{
		{"1", "Patient Management", a.patientMenu},
		{"2", "Staff Management", a.staffMenu},
		{"3", "Appointment Management", a.appointmentMenu},
		{"4", "Medical Records Management", a.medicalRecordMenu},
		{"5", "Billing Management", a.billingMenu},
		{"6", "Exit", nil},
	}
	a.runMenu(ctx, items, "6")

	fmt.Fprintln(a.out, "\nThank you for using Hospital Management System. Goodbye!")
	return nil
}

// runMenu loops one menu until the back key is chosen or input is exhausted.
func (a *App) runMenu(ctx context.Context, items []menuItem, backKey string) {
	for {
		a.displayMenu(items)
		choice, ok := a.choose(items)
		if !ok || choice == backKey {
			return
		}
		for _, it := range items {
			if it.key == choice {
				it.run(ctx)
				break
			}
		}
	}
}

func (a *App) displayMenu(items []menuItem) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(a.out, "\n"+rule)
	for _, it := range items {
		fmt.Fprintf(a.out, "%s. %s\n", it.key, it.name)
	}
	fmt.Fprintln(a.out, rule)
}

// choose reads until a valid menu key is entered. ok is false when input is
// exhausted.
func (a *App) choose(items []menuItem) (choice string, ok bool) {
	for {
		fmt.Fprint(a.out, "\nEnter your choice: ")
		s, ok := a.readLine()
		if !ok {
			return "", false
		}
		for _, it := range items {
			if it.key == s {
				return s, true
			}
		}
		fmt.Fprintln(a.out, "Invalid choice. Please try again.")
	}
}

func (a *App) readLine() (string, bool) {
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *App) prompt(label string) string {
	fmt.Fprint(a.out, label)
	s, _ := a.readLine()
	return s
}

// promptID reads an integer ID. On a non-numeric entry it prints the usual
// hint and reports ok=false; callers return to their menu.
func (a *App) promptID(label, noun string) (int64, bool) {
	s := a.prompt(label)
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid %s ID. Please enter a number.\n", noun)
		return 0, false
	}
	return id, true
}

// promptPatch shows the current value and returns nil when the operator
// leaves the field blank, keeping the stored value.
func (a *App) promptPatch(label, current string) *string {
	v := a.prompt(fmt.Sprintf("%s [%s]: ", label, current))
	if v == "" {
		return nil
	}
	return &v
}

func (a *App) confirm(question string) bool {
	return strings.ToLower(a.prompt(question)) == "y"
}
