package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"adboard.org/internal/ids"
)

var _ Store = (*PGStore)(nil)

// PGStore implements Store using PostgreSQL.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Users(ctx context.Context) UserStore        { return &userStore{db: s.db} }
func (s *PGStore) Companies(ctx context.Context) CompanyStore { return &companyStore{db: s.db} }

// User store ---------------------------------------------------------------
type userStore struct{ db *sql.DB }

const userColumns = `id, company_id, name, email, password_hash, role, position, created_at, updated_at`

func (s *userStore) Create(ctx context.Context, u *User) error {
	if u.ID == "" {
		u.ID = ids.New()
	}
	var companyID any
	if u.CompanyID != "" {
		companyID = u.CompanyID
	}
	_, err := s.db.ExecContext(ctx,
		`insert into users(id, company_id, name, email, password_hash, role, position) values($1,$2,$3,$4,$5,$6,$7)`,
		u.ID, companyID, u.Name, strings.ToLower(strings.TrimSpace(u.Email)), u.PasswordHash, u.Role, u.Position,
	)
	return err
}

func (s *userStore) Find(ctx context.Context, id string) (*User, error) {
	row := s.db.QueryRowContext(ctx,
		`select `+userColumns+` from users where id=$1`, id)
	return scanUser(row)
}

func (s *userStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := s.db.QueryRowContext(ctx,
		`select `+userColumns+` from users where email=$1`,
		strings.ToLower(strings.TrimSpace(email)))
	return scanUser(row)
}

func scanUser(row *sql.Row) (*User, error) {
	var (
		u         User
		companyID sql.NullString
	)
	err := row.Scan(&u.ID, &companyID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Position, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	u.CompanyID = companyID.String
	return &u, nil
}

// Company store ------------------------------------------------------------
type companyStore struct{ db *sql.DB }

func (s *companyStore) Create(ctx context.Context, c *Company) error {
	if c.ID == "" {
		c.ID = ids.New()
	}
	_, err := s.db.ExecContext(ctx,
		`insert into companies(id, name, industry, address, website, description) values($1,$2,$3,$4,$5,$6)`,
		c.ID, c.Name, c.Industry, c.Address, c.Website, c.Description,
	)
	return err
}

func (s *companyStore) Find(ctx context.Context, id string) (*Company, error) {
	row := s.db.QueryRowContext(ctx,
		`select id, name, industry, address, website, description, created_at, updated_at from companies where id=$1`, id)
	var c Company
	err := row.Scan(&c.ID, &c.Name, &c.Industry, &c.Address, &c.Website, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
