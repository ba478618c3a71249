package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"adboard.org/internal/campaign"
)

type dashboardResponse struct {
	Success   bool                `json:"success"`
	Metrics   campaign.Summary    `json:"metrics"`
	Campaigns []campaign.Campaign `json:"campaigns"`
}

type notificationsResponse struct {
	Success       bool                    `json:"success"`
	Notifications []campaign.Notification `json:"notifications"`
}

type markReadRequest struct {
	ID string `json:"id"`
}

type reportsResponse struct {
	Success bool              `json:"success"`
	Reports []campaign.Report `json:"reports"`
}

type resourcesResponse struct {
	Success   bool                `json:"success"`
	Resources []campaign.Resource `json:"resources"`
}

func (a *API) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	user, ok := a.requireUser(w, r)
	if !ok {
		return
	}

	campaigns, err := a.data.Campaigns(r.Context()).ListForCompany(r.Context(), user.CompanyID)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	unread, err := a.data.Notifications(r.Context()).CountUnread(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if campaigns == nil {
		campaigns = []campaign.Campaign{}
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		Success:   true,
		Metrics:   campaign.Summarize(campaigns, unread),
		Campaigns: campaigns,
	})
}

func (a *API) handleNotifications(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.listNotifications(w, r)
	case http.MethodPost:
		a.markNotificationRead(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) listNotifications(w http.ResponseWriter, r *http.Request) {
	user, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	notifications, err := a.data.Notifications(r.Context()).ListForUser(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if notifications == nil {
		notifications = []campaign.Notification{}
	}
	writeJSON(w, http.StatusOK, notificationsResponse{Success: true, Notifications: notifications})
}

func (a *API) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	user, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	var req markReadRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.ID) == "" {
		writeError(w, r, http.StatusBadRequest, "id is required")
		return
	}
	if err := a.data.Notifications(r.Context()).MarkRead(r.Context(), req.ID, user.ID); err != nil {
		if errors.Is(err, campaign.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "notification not found")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (a *API) handleReports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	user, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	reports, err := a.data.Reports(r.Context()).ListForUser(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if reports == nil {
		reports = []campaign.Report{}
	}
	writeJSON(w, http.StatusOK, reportsResponse{Success: true, Reports: reports})
}

func (a *API) handleResources(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	if _, ok := a.requireUser(w, r); !ok {
		return
	}
	category := r.URL.Query().Get("category")
	resources, err := a.data.Resources(r.Context()).List(r.Context(), category)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if resources == nil {
		resources = []campaign.Resource{}
	}
	writeJSON(w, http.StatusOK, resourcesResponse{Success: true, Resources: resources})
}
