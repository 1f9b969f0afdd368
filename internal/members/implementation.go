// internal/members/implementation.go
package members

import (
	"context"
	"database/sql"

	"apollotrainer/internal/storage"
	"apollotrainer/pkg/sequence"
)

const (
	memberColumns = `member_id, first_name, last_name, contact_number, email, date_of_birth, joining_date, address`

	insertMemberQuery = `
		INSERT INTO members (member_id, first_name, last_name, contact_number, email, date_of_birth, joining_date, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	updateMemberQuery = `
		UPDATE members
		SET first_name = $1, last_name = $2, contact_number = $3, email = $4,
			date_of_birth = $5, joining_date = $6, address = $7
		WHERE member_id = $8`
)

type repository struct {
	db  *sql.DB
	ids *sequence.Sequence
}

func NewRepository(db *sql.DB) Repository {
	return &repository{
		db:  db,
		ids: sequence.New("members", "member_id", "M", 4),
	}
}

func (r *repository) Create(ctx context.Context, m *Member) error {
	id, err := r.ids.Insert(ctx, r.db, func(ctx context.Context, tx *sql.Tx, id string) error {
		return storage.Exec(ctx, tx, "members.create", insertMemberQuery,
			id, m.FirstName, m.LastName, m.ContactNumber, m.Email, m.DateOfBirth, m.JoiningDate, m.Address)
	})
	if err != nil {
		return storage.Fail("members.create", err)
	}
	m.ID = id
	return nil
}

func (r *repository) List(ctx context.Context) ([]Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY LENGTH(member_id) DESC, member_id DESC`
	return storage.Collect(ctx, r.db, "members.list", query, scanMember)
}

func (r *repository) Get(ctx context.Context, id string) (*Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE member_id = $1`
	m, err := storage.Get(ctx, r.db, "members.get", query, scanMember, id)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) Update(ctx context.Context, m *Member) error {
	return storage.Exec(ctx, r.db, "members.update", updateMemberQuery,
		m.FirstName, m.LastName, m.ContactNumber, m.Email, m.DateOfBirth, m.JoiningDate, m.Address, m.ID)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return storage.Exec(ctx, r.db, "members.delete", `DELETE FROM members WHERE member_id = $1`, id)
}

func scanMember(s storage.Scanner) (Member, error) {
	var m Member
	err := s.Scan(&m.ID, &m.FirstName, &m.LastName, &m.ContactNumber, &m.Email,
		&m.DateOfBirth, &m.JoiningDate, &m.Address)
	return m, err
}
