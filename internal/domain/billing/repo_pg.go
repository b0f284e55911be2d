package billing

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG returns a PostgreSQL-backed bill repository.
func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const billCols = `id, patient_id, amount, date_issued, due_date, status, description`

func scanBill(row pgx.Row) (*Bill, error) {
	var b Bill
	err := row.Scan(&b.ID, &b.PatientID, &b.Amount, &b.DateIssued, &b.DueDate, &b.Status, &b.Description)
	return &b, err
}

func (r *repoPG) Create(ctx context.Context, b *Bill) error {
	// date_issued falls back to the storage default (current date) when the
	// caller leaves it zero.
	var issued interface{}
	if !b.DateIssued.IsZero() {
		issued = b.DateIssued
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO bills (patient_id, amount, date_issued, due_date, status, description)
		VALUES ($1,$2,COALESCE($3::date, CURRENT_DATE),$4,$5,$6)
		RETURNING id, date_issued`,
		b.PatientID, b.Amount, issued, b.DueDate, b.Status, b.Description).
		Scan(&b.ID, &b.DateIssued)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Bill, error) {
	b, err := scanBill(r.pool.QueryRow(ctx, `SELECT `+billCols+` FROM bills WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repoPG) List(ctx context.Context) ([]*Bill, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+billCols+` FROM bills ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBills(rows)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID int64) ([]*Bill, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+billCols+` FROM bills WHERE patient_id = $1 ORDER BY id`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBills(rows)
}

func (r *repoPG) ListUnpaid(ctx context.Context) ([]*Bill, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+billCols+` FROM bills WHERE status = $1 ORDER BY id`, StatusUnpaid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBills(rows)
}

func (r *repoPG) Update(ctx context.Context, b *Bill) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE bills SET patient_id=$2, amount=$3, date_issued=$4, due_date=$5, status=$6, description=$7
		WHERE id = $1`,
		b.ID, b.PatientID, b.Amount, b.DateIssued, b.DueDate, b.Status, b.Description)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func collectBills(rows pgx.Rows) ([]*Bill, error) {
	var items []*Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}
