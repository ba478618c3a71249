package auth

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "company_id", "name", "email", "password_hash", "role", "position", "created_at", "updated_at",
	})
}

func TestPGUserFindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("select id, company_id, name, email, password_hash, role, position, created_at, updated_at from users where email=").
		WithArgs("admin@example.com").
		WillReturnRows(userRows().AddRow("u1", nil, "Admin", "admin@example.com", "$2a$12$hash", "admin", "Administrador", now, now))

	store := NewPGStore(db)
	user, err := store.Users(context.Background()).FindByEmail(context.Background(), "Admin@Example.com ")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if user.ID != "u1" || user.Role != "admin" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.CompanyID != "" {
		t.Fatalf("expected empty company id, got %q", user.CompanyID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGUserFindNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("select id, company_id, name, email, password_hash, role, position, created_at, updated_at from users where id=").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	store := NewPGStore(db)
	if _, err := store.Users(context.Background()).Find(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGUserCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("insert into users").
		WithArgs(sqlmock.AnyArg(), "c1", "João Silva", "joao.silva@empresa.com", "$2a$12$hash", "client", "Marketing Manager").
		WillReturnResult(sqlmock.NewResult(1, 1))

	store := NewPGStore(db)
	u := &User{
		CompanyID:    "c1",
		Name:         "João Silva",
		Email:        "Joao.Silva@empresa.com",
		PasswordHash: "$2a$12$hash",
		Role:         RoleClient,
		Position:     "Marketing Manager",
	}
	if err := store.Users(context.Background()).Create(context.Background(), u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == "" {
		t.Fatal("expected generated id")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGCompanyFind(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("select id, name, industry, address, website, description, created_at, updated_at from companies where id=").
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "industry", "address", "website", "description", "created_at", "updated_at"}).
			AddRow("c1", "Empresa XYZ Ltda.", "Tecnologia", "Av. Paulista, 1000", "www.empresaxyz.com.br", "", now, now))

	store := NewPGStore(db)
	company, err := store.Companies(context.Background()).Find(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if company.Name != "Empresa XYZ Ltda." {
		t.Fatalf("unexpected company: %+v", company)
	}
}
