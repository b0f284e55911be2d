package medicalrecord

import (
	"context"
)

// Repository is the storage contract for medical records. GetByID reports a
// missing row as (nil, nil); Delete reports it as (false, nil).
type Repository interface {
	Create(ctx context.Context, rec *MedicalRecord) error
	GetByID(ctx context.Context, id int64) (*MedicalRecord, error)
	List(ctx context.Context) ([]*MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*MedicalRecord, error)
	Update(ctx context.Context, rec *MedicalRecord) error
	Delete(ctx context.Context, id int64) (bool, error)
}
