package handlers

import "net/http"

// GetDashboard retrieves dashboard summary statistics
// @Summary      Get dashboard
// @Description  Get unit status counts, occupancy rate, per-landlord unit counts, rent totals, and the latest lease.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  Response{data=store.DashboardSummary}
// @Router       /dashboard [get]
// @Security     ApiKeyAuth
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := Store.Dashboard()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}
