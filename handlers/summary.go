package handlers

import "net/http"

// GetSummary retrieves the demo relationship summary
// @Summary      Get relationship summary
// @Description  Get the first-created landlord, tenant, unit, and lease with the relationships between them.
// @Tags         summary
// @Produce      json
// @Success      200  {object}  Response{data=store.RelationshipSummary}
// @Router       /summary [get]
// @Security     ApiKeyAuth
func GetSummary(w http.ResponseWriter, r *http.Request) {
	s, err := Store.Relationships()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}
