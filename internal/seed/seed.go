// Package seed installs the demo dataset used by local development and the
// end-to-end login flow: one company, an admin and a client user, and a set
// of campaigns, notifications, reports and resources.
package seed

import (
	"context"
	"fmt"
	"time"

	"adboard.org/internal/auth"
	"adboard.org/internal/campaign"
)

// Credentials of the demo accounts.
const (
	AdminEmail   = "admin@example.com"
	ClientEmail  = "joao.silva@empresa.com"
	DemoPassword = "password"
)

// Apply writes the demo dataset through the given stores. It is not
// idempotent; run it against an empty database only.
func Apply(ctx context.Context, users auth.Store, data campaign.Store) error {
	company := &auth.Company{
		Name:        "Empresa XYZ Ltda.",
		Industry:    "Tecnologia",
		Address:     "Av. Paulista, 1000, São Paulo, SP",
		Website:     "www.empresaxyz.com.br",
		Description: "Empresa líder no segmento de tecnologia, especializada em soluções inovadoras para o mercado corporativo.",
	}
	if err := users.Companies(ctx).Create(ctx, company); err != nil {
		return fmt.Errorf("create company: %w", err)
	}

	adminHash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return err
	}
	admin := &auth.User{
		Name:         "Admin",
		Email:        AdminEmail,
		PasswordHash: adminHash,
		Role:         auth.RoleAdmin,
		Position:     "Administrador",
	}
	if err := users.Users(ctx).Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	clientHash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return err
	}
	client := &auth.User{
		CompanyID:    company.ID,
		Name:         "João Silva",
		Email:        ClientEmail,
		PasswordHash: clientHash,
		Role:         auth.RoleClient,
		Position:     "Marketing Manager",
	}
	if err := users.Users(ctx).Create(ctx, client); err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	campaigns := []campaign.Campaign{
		{
			CompanyID:   company.ID,
			Name:        "Campanha de Verão 2025",
			Description: "Campanha promocional para produtos de verão",
			Platform:    "Facebook",
			Budget:      2500,
			Spent:       1892,
			Impressions: 450000,
			Clicks:      25000,
			Conversions: 1200,
			Status:      campaign.StatusActive,
			StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			CompanyID:   company.ID,
			Name:        "Promoção Especial - Junho",
			Description: "Campanha promocional para o mês de junho",
			Platform:    "Google",
			Budget:      1800,
			Spent:       1220,
			Impressions: 380000,
			Clicks:      18000,
			Conversions: 950,
			Status:      campaign.StatusActive,
			StartDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			CompanyID:   company.ID,
			Name:        "Lançamento Produto X",
			Description: "Campanha de lançamento do novo produto",
			Platform:    "Instagram",
			Budget:      2000,
			Spent:       980,
			Impressions: 320000,
			Clicks:      15000,
			Conversions: 720,
			Status:      campaign.StatusActive,
			StartDate:   time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC),
		},
	}
	for i := range campaigns {
		if err := data.Campaigns(ctx).Create(ctx, &campaigns[i]); err != nil {
			return fmt.Errorf("create campaign %q: %w", campaigns[i].Name, err)
		}
	}

	notifications := []campaign.Notification{
		{
			UserID:      client.ID,
			Title:       "Nova campanha aprovada",
			Description: `A campanha "Promoção de Verão 2025" foi aprovada e está pronta para ser lançada.`,
			Type:        "campaign",
		},
		{
			UserID:      client.ID,
			Title:       "Relatório mensal disponível",
			Description: "O relatório de desempenho de Fevereiro 2025 já está disponível para visualização.",
			Type:        "report",
		},
		{
			UserID:      client.ID,
			Title:       "Comentário em campanha",
			Description: `Carlos Mendes comentou na campanha "Lançamento Produto X".`,
			Type:        "comment",
			Read:        true,
		},
	}
	for i := range notifications {
		if err := data.Notifications(ctx).Create(ctx, &notifications[i]); err != nil {
			return fmt.Errorf("create notification %q: %w", notifications[i].Title, err)
		}
	}

	reports := []campaign.Report{
		{
			UserID:      client.ID,
			Title:       "Relatório de Desempenho - Q1 2025",
			Description: "Análise completa de métricas e KPIs do primeiro trimestre",
			Type:        "performance",
			Format:      "PDF",
			URL:         "/reports/q1-2025.pdf",
			Size:        "8.4 MB",
		},
		{
			UserID:      client.ID,
			Title:       "Análise de Campanhas - Facebook",
			Description: "Desempenho detalhado das campanhas no Facebook",
			Type:        "campaign",
			Format:      "XLSX",
			URL:         "/reports/facebook-campaigns.xlsx",
			Size:        "5.2 MB",
		},
	}
	for i := range reports {
		if err := data.Reports(ctx).Create(ctx, &reports[i]); err != nil {
			return fmt.Errorf("create report %q: %w", reports[i].Title, err)
		}
	}

	resources := []campaign.Resource{
		{
			Title:       "Guia de Marketing Digital 2025",
			Description: "Estratégias avançadas para o próximo ano",
			Type:        "document",
			Format:      "PDF",
			URL:         "/resources/marketing-guide-2025.pdf",
			Size:        "12.4 MB",
			Category:    "Marketing Digital",
			Views:       245,
		},
		{
			Title:       "Análise de Concorrência",
			Description: "Estudo detalhado dos principais competidores",
			Type:        "document",
			Format:      "DOCX",
			URL:         "/resources/competitor-analysis.docx",
			Size:        "8.2 MB",
			Category:    "Pesquisa",
			Views:       186,
		},
	}
	for i := range resources {
		if err := data.Resources(ctx).Create(ctx, &resources[i]); err != nil {
			return fmt.Errorf("create resource %q: %w", resources[i].Title, err)
		}
	}

	return nil
}
