// internal/workouts/implementation.go
package workouts

import (
	"context"
	"database/sql"

	"apollotrainer/internal/storage"
)

const (
	listAssignmentsQuery = `
		SELECT mw.assignment_id, mw.member_id, m.first_name || ' ' || m.last_name,
			mw.plan_id, wp.plan_name, mw.assigned_date
		FROM member_workouts mw
		JOIN members m ON m.member_id = mw.member_id
		JOIN workout_plans wp ON wp.plan_id = mw.plan_id
		ORDER BY mw.assigned_date DESC, mw.assignment_id DESC`
)

type planRepository struct {
	db *sql.DB
}

func NewPlanRepository(db *sql.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(ctx context.Context, p *Plan) error {
	id, err := storage.InsertReturningID(ctx, r.db, "workout_plans.create",
		`INSERT INTO workout_plans (plan_name, description) VALUES ($1, $2) RETURNING plan_id`,
		p.Name, p.Description)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (r *planRepository) List(ctx context.Context) ([]Plan, error) {
	return storage.Collect(ctx, r.db, "workout_plans.list",
		`SELECT plan_id, plan_name, description FROM workout_plans ORDER BY plan_id DESC`,
		func(s storage.Scanner) (Plan, error) {
			var p Plan
			err := s.Scan(&p.ID, &p.Name, &p.Description)
			return p, err
		})
}

func (r *planRepository) Update(ctx context.Context, p *Plan) error {
	return storage.Exec(ctx, r.db, "workout_plans.update",
		`UPDATE workout_plans SET plan_name = $1, description = $2 WHERE plan_id = $3`,
		p.Name, p.Description, p.ID)
}

// Delete fails with KindConstraint while any assignment references the plan.
func (r *planRepository) Delete(ctx context.Context, id int64) error {
	return storage.Exec(ctx, r.db, "workout_plans.delete", `DELETE FROM workout_plans WHERE plan_id = $1`, id)
}

type assignmentRepository struct {
	db *sql.DB
}

func NewAssignmentRepository(db *sql.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(ctx context.Context, a *Assignment) error {
	id, err := storage.InsertReturningID(ctx, r.db, "member_workouts.create",
		`INSERT INTO member_workouts (member_id, plan_id, assigned_date) VALUES ($1, $2, $3) RETURNING assignment_id`,
		a.MemberID, a.PlanID, a.AssignedDate)
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

func (r *assignmentRepository) List(ctx context.Context) ([]Assignment, error) {
	return storage.Collect(ctx, r.db, "member_workouts.list", listAssignmentsQuery,
		func(s storage.Scanner) (Assignment, error) {
			var a Assignment
			err := s.Scan(&a.ID, &a.MemberID, &a.MemberName, &a.PlanID, &a.PlanName, &a.AssignedDate)
			return a, err
		})
}

func (r *assignmentRepository) Update(ctx context.Context, a *Assignment) error {
	return storage.Exec(ctx, r.db, "member_workouts.update",
		`UPDATE member_workouts SET member_id = $1, plan_id = $2, assigned_date = $3 WHERE assignment_id = $4`,
		a.MemberID, a.PlanID, a.AssignedDate, a.ID)
}

func (r *assignmentRepository) Delete(ctx context.Context, id int64) error {
	return storage.Exec(ctx, r.db, "member_workouts.delete", `DELETE FROM member_workouts WHERE assignment_id = $1`, id)
}
