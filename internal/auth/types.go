package auth

import "time"

// Roles recognized by the service.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User represents an authenticated principal.
// CompanyID is a weak back-reference to the tenant the user works for; it is
// empty for accounts that are not attached to a company (e.g. admins).
type User struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"companyId,omitempty"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Position     string    `json:"position"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Company is the tenant a client user and its campaigns belong to.
type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry"`
	Address     string    `json:"address"`
	Website     string    `json:"website"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
