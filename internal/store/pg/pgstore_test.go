package pg

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"adboard.org/internal/campaign"
)

func TestListForCompany(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "company_id", "name", "description", "platform", "budget", "spent",
		"impressions", "clicks", "conversions", "status", "start_date", "end_date",
		"created_at", "updated_at",
	}).
		AddRow("cmp1", "c1", "Campanha de Verão 2025", "", "Facebook", 2500.0, 1892.0, 450000, 25000, 1200, "active", now, now, now, now).
		AddRow("cmp2", "c1", "Promoção Especial - Junho", "", "Google", 1800.0, 1220.0, 380000, 18000, 950, "active", now, now, now, now)

	mock.ExpectQuery("select (.+) from campaigns where company_id=").
		WithArgs("c1").
		WillReturnRows(rows)

	store := NewStore(db)
	list, err := store.Campaigns(context.Background()).ListForCompany(context.Background(), "c1")
	if err != nil {
		t.Fatalf("ListForCompany: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 campaigns, got %d", len(list))
	}
	if list[1].Conversions != 950 || list[1].Spent != 1220 {
		t.Fatalf("unexpected campaign row: %+v", list[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListForCompanyEmptyIDSkipsQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	store := NewStore(db)
	list, err := store.Campaigns(context.Background()).ListForCompany(context.Background(), "")
	if err != nil {
		t.Fatalf("ListForCompany: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no campaigns, got %d", len(list))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expected no queries: %v", err)
	}
}

func TestCountUnread(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`select count\(\*\) from notifications where user_id=`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	store := NewStore(db)
	count, err := store.Notifications(context.Background()).CountUnread(context.Background(), "u1")
	if err != nil {
		t.Fatalf("CountUnread: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2, got %d", count)
	}
}

func TestMarkRead(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("update notifications set read=true where id=").
		WithArgs("n1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("update notifications set read=true where id=").
		WithArgs("n1", "u2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	store := NewStore(db)
	if err := store.Notifications(context.Background()).MarkRead(context.Background(), "n1", "u1"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	// Someone else's notification: zero rows affected maps to ErrNotFound.
	if err := store.Notifications(context.Background()).MarkRead(context.Background(), "n1", "u2"); err != campaign.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestResourcesListWithCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	resourceColumns := []string{"id", "title", "description", "type", "format", "url", "size", "category", "views", "created_at"}

	mock.ExpectQuery("select (.+) from resources where category=").
		WithArgs("Pesquisa").
		WillReturnRows(sqlmock.NewRows(resourceColumns).
			AddRow("r1", "Análise de Concorrência", "", "document", "DOCX", "/resources/competitor-analysis.docx", "8.2 MB", "Pesquisa", 186, now))

	store := NewStore(db)
	list, err := store.Resources(context.Background()).List(context.Background(), "Pesquisa")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].Category != "Pesquisa" {
		t.Fatalf("unexpected resources: %+v", list)
	}
}

func TestResourcesListTodosSelectsAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	resourceColumns := []string{"id", "title", "description", "type", "format", "url", "size", "category", "views", "created_at"}

	mock.ExpectQuery("select (.+) from resources order by created_at desc").
		WillReturnRows(sqlmock.NewRows(resourceColumns).
			AddRow("r1", "Guia de Marketing Digital 2025", "", "document", "PDF", "/resources/marketing-guide-2025.pdf", "12.4 MB", "Marketing Digital", 245, now).
			AddRow("r2", "Análise de Concorrência", "", "document", "DOCX", "/resources/competitor-analysis.docx", "8.2 MB", "Pesquisa", 186, now))

	store := NewStore(db)
	list, err := store.Resources(context.Background()).List(context.Background(), campaign.AllCategories)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected all resources, got %d", len(list))
	}
}
