package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard.org/internal/auth"
	"adboard.org/internal/campaign"
)

func TestApply(t *testing.T) {
	ctx := context.Background()
	users := auth.NewMemoryStore()
	data := campaign.NewMemoryStore()

	require.NoError(t, Apply(ctx, users, data))

	admin, err := users.Users(ctx).FindByEmail(ctx, AdminEmail)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, admin.Role)
	assert.Empty(t, admin.CompanyID)
	assert.NoError(t, auth.VerifyPassword(admin.PasswordHash, DemoPassword))

	client, err := users.Users(ctx).FindByEmail(ctx, ClientEmail)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleClient, client.Role)
	require.NotEmpty(t, client.CompanyID)

	company, err := users.Companies(ctx).Find(ctx, client.CompanyID)
	require.NoError(t, err)
	assert.Equal(t, "Empresa XYZ Ltda.", company.Name)

	campaigns, err := data.Campaigns(ctx).ListForCompany(ctx, client.CompanyID)
	require.NoError(t, err)
	assert.Len(t, campaigns, 3)

	unread, err := data.Notifications(ctx).CountUnread(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, unread)

	reports, err := data.Reports(ctx).ListForUser(ctx, client.ID)
	require.NoError(t, err)
	assert.Len(t, reports, 2)

	resources, err := data.Resources(ctx).List(ctx, campaign.AllCategories)
	require.NoError(t, err)
	assert.Len(t, resources, 2)
}
