package medicalrecord

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG returns a PostgreSQL-backed medical record repository.
func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const recordCols = `id, patient_id, staff_id, diagnosis, treatment, admission_date,
	discharge_date, duration_of_stay, medications, notes, created_at`

func scanRecord(row pgx.Row) (*MedicalRecord, error) {
	var rec MedicalRecord
	err := row.Scan(&rec.ID, &rec.PatientID, &rec.StaffID, &rec.Diagnosis, &rec.Treatment,
		&rec.AdmissionDate, &rec.DischargeDate, &rec.DurationOfStay, &rec.Medications,
		&rec.Notes, &rec.CreatedAt)
	return &rec, err
}

func (r *repoPG) Create(ctx context.Context, rec *MedicalRecord) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO medical_records (patient_id, staff_id, diagnosis, treatment,
			admission_date, discharge_date, duration_of_stay, medications, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, created_at`,
		rec.PatientID, rec.StaffID, rec.Diagnosis, rec.Treatment,
		rec.AdmissionDate, rec.DischargeDate, rec.DurationOfStay, rec.Medications, rec.Notes).
		Scan(&rec.ID, &rec.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*MedicalRecord, error) {
	rec, err := scanRecord(r.pool.QueryRow(ctx, `SELECT `+recordCols+` FROM medical_records WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *repoPG) List(ctx context.Context) ([]*MedicalRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+recordCols+` FROM medical_records ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID int64) ([]*MedicalRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+recordCols+` FROM medical_records WHERE patient_id = $1 ORDER BY id`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

func (r *repoPG) Update(ctx context.Context, rec *MedicalRecord) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE medical_records SET patient_id=$2, staff_id=$3, diagnosis=$4, treatment=$5,
			admission_date=$6, discharge_date=$7, duration_of_stay=$8, medications=$9, notes=$10
		WHERE id = $1`,
		rec.ID, rec.PatientID, rec.StaffID, rec.Diagnosis, rec.Treatment,
		rec.AdmissionDate, rec.DischargeDate, rec.DurationOfStay, rec.Medications, rec.Notes)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM medical_records WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func collectRecords(rows pgx.Rows) ([]*MedicalRecord, error) {
	var items []*MedicalRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}
