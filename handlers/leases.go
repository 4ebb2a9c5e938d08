package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/satheeshds/property/models"
	"github.com/satheeshds/property/store"
)

// ListLeases lists all leases
// @Summary      List leases
// @Description  Get a list of all lease agreements with computed end dates.
// @Tags         leases
// @Produce      json
// @Param        unit_id            query     int     false  "Filter by unit"
// @Param        tenant_id          query     int     false  "Filter by tenant"
// @Param        landlord_id        query     int     false  "Filter by landlord"
// @Param        payment_frequency  query     string  false  "Filter by frequency (MONTHLY/QUARTERLY/SEMI_ANNUAL/ANNUAL)"
// @Param        search             query     string  false  "Search by unit number, tenant name, or landlord name"
// @Success      200                {object}  Response{data=[]models.Lease}
// @Router       /leases [get]
// @Security     ApiKeyAuth
func ListLeases(w http.ResponseWriter, r *http.Request) {
	unitID, _ := strconv.Atoi(r.URL.Query().Get("unit_id"))
	tenantID, _ := strconv.Atoi(r.URL.Query().Get("tenant_id"))
	landlordID, _ := strconv.Atoi(r.URL.Query().Get("landlord_id"))
	leases, err := Store.ListLeases(store.LeaseFilter{
		UnitID:           unitID,
		TenantID:         tenantID,
		LandlordID:       landlordID,
		PaymentFrequency: r.URL.Query().Get("payment_frequency"),
		Search:           r.URL.Query().Get("search"),
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leases)
}

// GetLease retrieves a single lease by ID
// @Summary      Get lease
// @Description  Get details of a specific lease, including its computed end date.
// @Tags         leases
// @Produce      json
// @Param        id   path      int  true  "Lease ID"
// @Success      200  {object}  Response{data=models.Lease}
// @Failure      404  {object}  Response{error=string}
// @Router       /leases/{id} [get]
// @Security     ApiKeyAuth
func GetLease(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	l, err := Store.GetLease(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// CreateLease creates a new lease
// @Summary      Create lease
// @Description  Create a lease binding a vacant unit, a tenant, and the landlord owning the unit. Marks the unit OCCUPIED.
// @Tags         leases
// @Accept       json
// @Produce      json
// @Param        lease  body      models.LeaseInput  true  "Lease contents"
// @Success      201    {object}  Response{data=models.Lease}
// @Failure      400    {object}  Response{error=string}
// @Failure      409    {object}  Response{error=string}
// @Router       /leases [post]
// @Security     ApiKeyAuth
func CreateLease(w http.ResponseWriter, r *http.Request) {
	var input models.LeaseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	l, err := Store.CreateLease(input)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, l)
}

// UpdateLease updates an existing lease
// @Summary      Update lease
// @Description  Update details of an existing lease. Role and ownership rules are re-checked.
// @Tags         leases
// @Accept       json
// @Produce      json
// @Param        id     path      int                true  "Lease ID"
// @Param        lease  body      models.LeaseInput  true  "Updated lease contents"
// @Success      200    {object}  Response{data=models.Lease}
// @Failure      400    {object}  Response{error=string}
// @Failure      404    {object}  Response{error=string}
// @Router       /leases/{id} [put]
// @Security     ApiKeyAuth
func UpdateLease(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	var input models.LeaseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	l, err := Store.UpdateLease(id, input)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// DeleteLease deletes a lease
// @Summary      Delete lease
// @Description  Remove a lease. The unit keeps its current status.
// @Tags         leases
// @Produce      json
// @Param        id   path      int  true  "Lease ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /leases/{id} [delete]
// @Security     ApiKeyAuth
func DeleteLease(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	if err := Store.DeleteLease(id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
