package staff

import (
	"context"
	"strings"
	"testing"
)

// -- Mock Repository --

type mockRepo struct {
	staff  map[int64]*Staff
	nextID int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{staff: make(map[int64]*Staff)}
}

func (m *mockRepo) Create(_ context.Context, s *Staff) error {
	m.nextID++
	s.ID = m.nextID
	cp := *s
	m.staff[s.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*Staff, error) {
	s, ok := m.staff[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *mockRepo) List(_ context.Context) ([]*Staff, error) {
	var result []*Staff
	for _, s := range m.staff {
		result = append(result, s)
	}
	return result, nil
}

func (m *mockRepo) Search(_ context.Context, term string) ([]*Staff, error) {
	t := strings.ToLower(term)
	var result []*Staff
	for _, s := range m.staff {
		if strings.Contains(strings.ToLower(s.FirstName), t) ||
			strings.Contains(strings.ToLower(s.LastName), t) ||
			strings.Contains(strings.ToLower(s.Role), t) {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *mockRepo) Update(_ context.Context, s *Staff) error {
	cp := *s
	m.staff[s.ID] = &cp
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := m.staff[id]; !ok {
		return false, nil
	}
	delete(m.staff, id)
	return true, nil
}

// -- Tests --

func validInput() CreateInput {
	return CreateInput{
		FirstName:     "Sarah",
		LastName:      "Connor",
		Role:          "Doctor",
		Department:    "Cardiology",
		ContactNumber: "1234567890",
		HireDate:      "2020-03-15",
	}
}

func TestCreate(t *testing.T) {
	svc := NewService(newMockRepo())
	st, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.ID == 0 {
		t.Error("expected storage-assigned ID")
	}
	if st.HireDate == nil {
		t.Error("expected hire date to be kept")
	}
	if st.Email != nil {
		t.Error("blank email should stay absent")
	}
}

func TestCreate_RoleRequired(t *testing.T) {
	svc := NewService(newMockRepo())
	in := validInput()
	in.Role = ""
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Error("expected error for missing role")
	}
}

func TestCreate_OptionalHireDate(t *testing.T) {
	svc := NewService(newMockRepo())
	in := validInput()
	in.HireDate = ""
	st, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.HireDate != nil {
		t.Error("blank hire date should stay absent")
	}
}

func TestCreate_BadHireDate(t *testing.T) {
	svc := NewService(newMockRepo())
	in := validInput()
	in.HireDate = "15/03/2020"
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Error("expected error for wrong date layout")
	}
}

func TestSearch_MatchesRole(t *testing.T) {
	svc := NewService(newMockRepo())
	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := svc.Search(context.Background(), "doctor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 1 {
		t.Errorf("expected role substring to match, got %d results", len(found))
	}
}

func TestUpdate_Partial(t *testing.T) {
	svc := NewService(newMockRepo())
	st, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dep := "Neurology"
	updated, err := svc.Update(context.Background(), st.ID, Patch{Department: &dep})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Department == nil || *updated.Department != "Neurology" {
		t.Error("department not updated")
	}
	if updated.Role != "Doctor" {
		t.Error("untouched fields must keep their value")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	role := "Nurse"
	st, err := svc.Update(context.Background(), 7, Patch{Role: &role})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	ok, err := svc.Delete(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected not-found delete to report false")
	}
}
