package staff

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG returns a PostgreSQL-backed staff repository.
func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const staffCols = `id, first_name, last_name, role, department, contact_number, email, hire_date`

func scanStaff(row pgx.Row) (*Staff, error) {
	var s Staff
	err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Role, &s.Department,
		&s.ContactNumber, &s.Email, &s.HireDate)
	return &s, err
}

func (r *repoPG) Create(ctx context.Context, s *Staff) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO staff (first_name, last_name, role, department, contact_number, email, hire_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id`,
		s.FirstName, s.LastName, s.Role, s.Department, s.ContactNumber, s.Email, s.HireDate).
		Scan(&s.ID)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Staff, error) {
	s, err := scanStaff(r.pool.QueryRow(ctx, `SELECT `+staffCols+` FROM staff WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *repoPG) List(ctx context.Context) ([]*Staff, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+staffCols+` FROM staff ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStaff(rows)
}

func (r *repoPG) Search(ctx context.Context, term string) ([]*Staff, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+staffCols+` FROM staff
		WHERE first_name ILIKE '%' || $1 || '%'
		   OR last_name ILIKE '%' || $1 || '%'
		   OR role ILIKE '%' || $1 || '%'
		ORDER BY id`, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStaff(rows)
}

func (r *repoPG) Update(ctx context.Context, s *Staff) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE staff SET first_name=$2, last_name=$3, role=$4, department=$5,
			contact_number=$6, email=$7, hire_date=$8
		WHERE id = $1`,
		s.ID, s.FirstName, s.LastName, s.Role, s.Department, s.ContactNumber, s.Email, s.HireDate)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func collectStaff(rows pgx.Rows) ([]*Staff, error) {
	var items []*Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}
