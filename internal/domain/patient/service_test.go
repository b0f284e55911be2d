package patient

import (
	"context"
	"strings"
	"testing"
	"time"
)

// -- Mock Repository --

type mockRepo struct {
	patients map[int64]*Patient
	nextID   int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: make(map[int64]*Patient)}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	m.nextID++
	p.ID = m.nextID
	p.CreatedAt = time.Now()
	cp := *p
	m.patients[p.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *mockRepo) List(_ context.Context) ([]*Patient, error) {
	var result []*Patient
	for _, p := range m.patients {
		result = append(result, p)
	}
	return result, nil
}

func (m *mockRepo) Search(_ context.Context, term string) ([]*Patient, error) {
	t := strings.ToLower(term)
	var result []*Patient
	for _, p := range m.patients {
		if strings.Contains(strings.ToLower(p.FirstName), t) ||
			strings.Contains(strings.ToLower(p.LastName), t) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockRepo) Update(_ context.Context, p *Patient) error {
	cp := *p
	m.patients[p.ID] = &cp
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := m.patients[id]; !ok {
		return false, nil
	}
	delete(m.patients, id)
	return true, nil
}

// -- Tests --

func validInput() CreateInput {
	return CreateInput{
		FirstName:     "John",
		LastName:      "Smith",
		DateOfBirth:   "1990-05-20",
		Gender:        "Male",
		ContactNumber: "1234567890",
		Email:         "john@example.com",
		Address:       "12 Main Street",
	}
}

func TestCreate(t *testing.T) {
	svc := NewService(newMockRepo())
	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == 0 {
		t.Error("expected storage-assigned ID")
	}
	if p.Gender != GenderMale {
		t.Errorf("unexpected gender: %s", p.Gender)
	}
	if p.Email == nil || *p.Email != "john@example.com" {
		t.Error("expected email to be kept")
	}
}

func TestCreate_TrimsNames(t *testing.T) {
	svc := NewService(newMockRepo())
	in := validInput()
	in.FirstName = "  John "
	p, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.FirstName != "John" {
		t.Errorf("expected trimmed first name, got %q", p.FirstName)
	}
}

func TestCreate_OptionalFieldsBlank(t *testing.T) {
	svc := NewService(newMockRepo())
	in := validInput()
	in.Email = ""
	in.Address = ""
	p, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Email != nil || p.Address != nil {
		t.Error("blank optional fields should stay absent")
	}
}

func TestCreate_InvalidFields(t *testing.T) {
	svc := NewService(newMockRepo())
	tests := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"digit in name", func(in *CreateInput) { in.FirstName = "John3" }},
		{"empty first name", func(in *CreateInput) { in.FirstName = "" }},
		{"short phone", func(in *CreateInput) { in.ContactNumber = "12345" }},
		{"bad email", func(in *CreateInput) { in.Email = "a@b.c" }},
		{"lowercase gender", func(in *CreateInput) { in.Gender = "male" }},
		{"impossible dob", func(in *CreateInput) { in.DateOfBirth = "2024-02-30" }},
	}
	for _, tt := range tests {
		in := validInput()
		tt.mutate(&in)
		if _, err := svc.Create(context.Background(), in); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	p, err := svc.Get(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	svc := NewService(newMockRepo())
	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := svc.Search(context.Background(), "smith")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 1 || found[0].LastName != "Smith" {
		t.Errorf("expected John Smith to match %q", "smith")
	}

	none, err := svc.Search(context.Background(), "jones")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(none) != 0 {
		t.Error("expected no matches")
	}
}

func TestUpdate_Partial(t *testing.T) {
	svc := NewService(newMockRepo())
	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	phone := "+449876543210"
	updated, err := svc.Update(context.Background(), p.ID, Patch{ContactNumber: &phone})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ContactNumber != phone {
		t.Errorf("contact number not updated: %s", updated.ContactNumber)
	}
	if updated.FirstName != "John" || updated.LastName != "Smith" {
		t.Error("untouched fields must keep their value")
	}
}

func TestUpdate_ClearsOptionalField(t *testing.T) {
	svc := NewService(newMockRepo())
	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	empty := ""
	updated, err := svc.Update(context.Background(), p.ID, Patch{Email: &empty})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Email != nil {
		t.Error("empty email patch should clear the stored value")
	}
}

func TestUpdate_InvalidField(t *testing.T) {
	svc := NewService(newMockRepo())
	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := "not a phone"
	if _, err := svc.Update(context.Background(), p.ID, Patch{ContactNumber: &bad}); err == nil {
		t.Error("expected error for invalid phone")
	}
	// Stored row must be unchanged after the failed update.
	current, _ := svc.Get(context.Background(), p.ID)
	if current.ContactNumber != "1234567890" {
		t.Error("failed validation must not corrupt stored state")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	name := "Jane"
	p, err := svc.Update(context.Background(), 42, Patch{FirstName: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestDelete(t *testing.T) {
	svc := NewService(newMockRepo())
	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := svc.Delete(context.Background(), p.ID)
	if err != nil || !ok {
		t.Fatalf("expected successful delete, got ok=%v err=%v", ok, err)
	}
	ok, err = svc.Delete(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("second delete must report not found")
	}
}
