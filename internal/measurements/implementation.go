// internal/measurements/implementation.go
package measurements

import (
	"context"
	"database/sql"

	"apollotrainer/internal/storage"
)

const (
	insertMeasurementQuery = `
		INSERT INTO body_measurements (member_id, weight, height, bmi, body_fat_percentage)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING measurement_id`

	listMeasurementsQuery = `
		SELECT bm.measurement_id, bm.member_id, m.first_name || ' ' || m.last_name,
			bm.weight, bm.height, bm.bmi, bm.body_fat_percentage
		FROM body_measurements bm
		JOIN members m ON m.member_id = bm.member_id
		ORDER BY bm.measurement_id DESC`

	updateMeasurementQuery = `
		UPDATE body_measurements
		SET member_id = $1, weight = $2, height = $3, bmi = $4, body_fat_percentage = $5
		WHERE measurement_id = $6`
)

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Measurement) error {
	id, err := storage.InsertReturningID(ctx, r.db, "body_measurements.create", insertMeasurementQuery,
		m.MemberID, m.Weight, m.Height, m.BMI, m.BodyFatPercentage)
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}

func (r *repository) List(ctx context.Context) ([]Measurement, error) {
	return storage.Collect(ctx, r.db, "body_measurements.list", listMeasurementsQuery,
		func(s storage.Scanner) (Measurement, error) {
			var m Measurement
			err := s.Scan(&m.ID, &m.MemberID, &m.MemberName, &m.Weight, &m.Height, &m.BMI, &m.BodyFatPercentage)
			return m, err
		})
}

func (r *repository) Update(ctx context.Context, m *Measurement) error {
	return storage.Exec(ctx, r.db, "body_measurements.update", updateMeasurementQuery,
		m.MemberID, m.Weight, m.Height, m.BMI, m.BodyFatPercentage, m.ID)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return storage.Exec(ctx, r.db, "body_measurements.delete",
		`DELETE FROM body_measurements WHERE measurement_id = $1`, id)
}
