package medicalrecord

import (
	"context"
	"testing"
	"time"
)

// -- Mock Repository --

type mockRepo struct {
	records map[int64]*MedicalRecord
	nextID  int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[int64]*MedicalRecord)}
}

func (m *mockRepo) Create(_ context.Context, rec *MedicalRecord) error {
	m.nextID++
	rec.ID = m.nextID
	rec.CreatedAt = time.Now()
	cp := *rec
	m.records[rec.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*MedicalRecord, error) {
	rec, ok := m.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *mockRepo) List(_ context.Context) ([]*MedicalRecord, error) {
	var result []*MedicalRecord
	for _, rec := range m.records {
		result = append(result, rec)
	}
	return result, nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID int64) ([]*MedicalRecord, error) {
	var result []*MedicalRecord
	for _, rec := range m.records {
		if rec.PatientID == patientID {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (m *mockRepo) Update(_ context.Context, rec *MedicalRecord) error {
	cp := *rec
	m.records[rec.ID] = &cp
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := m.records[id]; !ok {
		return false, nil
	}
	delete(m.records, id)
	return true, nil
}

// -- Tests --

func validInput() CreateInput {
	return CreateInput{
		PatientID: 1,
		StaffID:   2,
		Diagnosis: "Pneumonia",
		Treatment: "Antibiotics",
	}
}

func TestCreate_DiagnosisRequired(t *testing.T) {
	svc := NewService(newMockRepo())
	in := validInput()
	in.Diagnosis = ""
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Error("expected error for missing diagnosis")
	}
}

func TestCreate_DerivesDuration(t *testing.T) {
	svc := NewService(newMockRepo())
	in := validInput()
	in.AdmissionDate = "2024-01-01"
	in.DischargeDate = "2024-01-11"
	rec, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.DurationOfStay == nil || *rec.DurationOfStay != 10 {
		t.Errorf("expected duration of stay 10, got %v", rec.DurationOfStay)
	}
}

func TestCreate_NoDatesNoDuration(t *testing.T) {
	svc := NewService(newMockRepo())
	rec, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.DurationOfStay != nil {
		t.Error("duration of stay must be absent when dates are missing")
	}
}

func TestCreate_AdmissionOnlyNoDuration(t *testing.T) {
	svc := NewService(newMockRepo())
	in := validInput()
	in.AdmissionDate = "2024-01-01"
	rec, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.DurationOfStay != nil {
		t.Error("duration of stay must be absent without a discharge date")
	}
}

// An update that touches no date field still re-derives duration from the
// stored dates; with both dates set it comes out the same, not absent.
func TestUpdate_NotesOnlyKeepsStay(t *testing.T) {
	svc := NewService(newMockRepo())
	in := validInput()
	in.AdmissionDate = "2024-01-01"
	in.DischargeDate = "2024-01-11"
	rec, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notes := "patient recovering well"
	updated, err := svc.Update(context.Background(), rec.ID, Patch{Notes: &notes})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.DurationOfStay == nil || *updated.DurationOfStay != 10 {
		t.Errorf("expected duration of stay to be re-derived as 10, got %v", updated.DurationOfStay)
	}
	if updated.Notes == nil || *updated.Notes != notes {
		t.Error("notes not updated")
	}
}

func TestUpdate_DischargeWithoutAdmission(t *testing.T) {
	svc := NewService(newMockRepo())
	rec, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	discharge := "2024-02-01"
	updated, err := svc.Update(context.Background(), rec.ID, Patch{DischargeDate: &discharge})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.DurationOfStay != nil {
		t.Error("duration of stay must stay absent while admission is unset")
	}
}

func TestUpdate_UnsettingDateWipesDuration(t *testing.T) {
	svc := NewService(newMockRepo())
	in := validInput()
	in.AdmissionDate = "2024-01-01"
	in.DischargeDate = "2024-01-11"
	rec, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	empty := ""
	updated, err := svc.Update(context.Background(), rec.ID, Patch{DischargeDate: &empty})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.DischargeDate != nil {
		t.Error("discharge date should be unset")
	}
	if updated.DurationOfStay != nil {
		t.Error("duration of stay must become absent when a date is unset")
	}
}

func TestUpdate_SettingBothDatesDerives(t *testing.T) {
	svc := NewService(newMockRepo())
	rec, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	adm, dis := "2024-03-01", "2024-03-08"
	updated, err := svc.Update(context.Background(), rec.ID, Patch{AdmissionDate: &adm, DischargeDate: &dis})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.DurationOfStay == nil || *updated.DurationOfStay != 7 {
		t.Errorf("expected duration of stay 7, got %v", updated.DurationOfStay)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	notes := "x"
	rec, err := svc.Update(context.Background(), 42, Patch{Notes: &notes})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestListByPatient(t *testing.T) {
	svc := NewService(newMockRepo())
	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other := validInput()
	other.PatientID = 9
	if _, err := svc.Create(context.Background(), other); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recs, err := svc.ListByPatient(context.Background(), 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 || recs[0].PatientID != 9 {
		t.Errorf("expected exactly the patient's record, got %d", len(recs))
	}
}
