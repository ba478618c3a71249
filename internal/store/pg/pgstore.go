package pg

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"adboard.org/internal/campaign"
	"adboard.org/internal/ids"
)

// Store implements campaign.Store using PostgreSQL.
type Store struct {
	db *sql.DB
}

var _ campaign.Store = (*Store)(nil)

// Open connects to PostgreSQL via the pgx stdlib driver.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	// Tuned pool defaults; adjust under load tests
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)
	return &Store{db: db}, nil
}

// NewStore wraps an existing connection (tests).
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Campaigns(ctx context.Context) campaign.CampaignStore { return &campaigns{db: s.db} }
func (s *Store) Reports(ctx context.Context) campaign.ReportStore     { return &reports{db: s.db} }
func (s *Store) Resources(ctx context.Context) campaign.ResourceStore { return &resources{db: s.db} }

func (s *Store) Notifications(ctx context.Context) campaign.NotificationStore {
	return &notifications{db: s.db}
}

// Campaigns -----------------------------------------------------------------

type campaigns struct{ db *sql.DB }

const campaignColumns = `id, company_id, name, description, platform, budget, spent, impressions, clicks, conversions, status, start_date, end_date, created_at, updated_at`

func (s *campaigns) Create(ctx context.Context, c *campaign.Campaign) error {
	if c.ID == "" {
		c.ID = ids.New()
	}
	_, err := s.db.ExecContext(ctx,
		`insert into campaigns(id, company_id, name, description, platform, budget, spent, impressions, clicks, conversions, status, start_date, end_date)
		 values($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		c.ID, c.CompanyID, c.Name, c.Description, c.Platform, c.Budget, c.Spent,
		c.Impressions, c.Clicks, c.Conversions, c.Status, c.StartDate, c.EndDate,
	)
	return err
}

func (s *campaigns) ListForCompany(ctx context.Context, companyID string) ([]campaign.Campaign, error) {
	if companyID == "" {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`select `+campaignColumns+` from campaigns where company_id=$1 order by created_at asc`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []campaign.Campaign
	for rows.Next() {
		var c campaign.Campaign
		if err := rows.Scan(
			&c.ID, &c.CompanyID, &c.Name, &c.Description, &c.Platform, &c.Budget, &c.Spent,
			&c.Impressions, &c.Clicks, &c.Conversions, &c.Status, &c.StartDate, &c.EndDate,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Notifications -------------------------------------------------------------

type notifications struct{ db *sql.DB }

func (s *notifications) Create(ctx context.Context, n *campaign.Notification) error {
	if n.ID == "" {
		n.ID = ids.New()
	}
	_, err := s.db.ExecContext(ctx,
		`insert into notifications(id, user_id, title, description, type, read) values($1,$2,$3,$4,$5,$6)`,
		n.ID, n.UserID, n.Title, n.Description, n.Type, n.Read,
	)
	return err
}

func (s *notifications) ListForUser(ctx context.Context, userID string) ([]campaign.Notification, error) {
	rows, err := s.db.QueryContext(ctx,
		`select id, user_id, title, description, type, read, created_at from notifications where user_id=$1 order by created_at desc`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []campaign.Notification
	for rows.Next() {
		var n campaign.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Description, &n.Type, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *notifications) CountUnread(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`select count(*) from notifications where user_id=$1 and read=false`, userID).Scan(&count)
	return count, err
}

func (s *notifications) MarkRead(ctx context.Context, id, userID string) error {
	res, err := s.db.ExecContext(ctx,
		`update notifications set read=true where id=$1 and user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return campaign.ErrNotFound
	}
	return nil
}

// Reports -------------------------------------------------------------------

type reports struct{ db *sql.DB }

func (s *reports) Create(ctx context.Context, r *campaign.Report) error {
	if r.ID == "" {
		r.ID = ids.New()
	}
	_, err := s.db.ExecContext(ctx,
		`insert into reports(id, user_id, title, description, type, format, url, size) values($1,$2,$3,$4,$5,$6,$7,$8)`,
		r.ID, r.UserID, r.Title, r.Description, r.Type, r.Format, r.URL, r.Size,
	)
	return err
}

func (s *reports) ListForUser(ctx context.Context, userID string) ([]campaign.Report, error) {
	rows, err := s.db.QueryContext(ctx,
		`select id, user_id, title, description, type, format, url, size, created_at from reports where user_id=$1 order by created_at desc`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []campaign.Report
	for rows.Next() {
		var r campaign.Report
		if err := rows.Scan(&r.ID, &r.UserID, &r.Title, &r.Description, &r.Type, &r.Format, &r.URL, &r.Size, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Resources -----------------------------------------------------------------

type resources struct{ db *sql.DB }

func (s *resources) Create(ctx context.Context, r *campaign.Resource) error {
	if r.ID == "" {
		r.ID = ids.New()
	}
	_, err := s.db.ExecContext(ctx,
		`insert into resources(id, title, description, type, format, url, size, category, views) values($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		r.ID, r.Title, r.Description, r.Type, r.Format, r.URL, r.Size, r.Category, r.Views,
	)
	return err
}

func (s *resources) List(ctx context.Context, category string) ([]campaign.Resource, error) {
	const columns = `id, title, description, type, format, url, size, category, views, created_at`

	var (
		rows *sql.Rows
		err  error
	)
	if category == "" || category == campaign.AllCategories {
		rows, err = s.db.QueryContext(ctx,
			`select `+columns+` from resources order by created_at desc`)
	} else {
		rows, err = s.db.QueryContext(ctx,
			`select `+columns+` from resources where category=$1 order by created_at desc`, category)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []campaign.Resource
	for rows.Next() {
		var r campaign.Resource
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.Type, &r.Format, &r.URL, &r.Size, &r.Category, &r.Views, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
