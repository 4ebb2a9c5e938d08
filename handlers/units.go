package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/satheeshds/property/models"
	"github.com/satheeshds/property/store"
)

// ListUnits lists all units
// @Summary      List units
// @Description  Get a list of all property units with owner details.
// @Tags         units
// @Produce      json
// @Param        status    query     string  false  "Filter by status (VACANT/OCCUPIED/MAINTENANCE)"
// @Param        type      query     string  false  "Filter by type (APARTMENT/HOUSE/CONDO/COMMERCIAL/OTHER)"
// @Param        owner_id  query     int     false  "Filter by owner contact"
// @Param        search    query     string  false  "Search by unit number or location"
// @Success      200       {object}  Response{data=[]models.Unit}
// @Router       /units [get]
// @Security     ApiKeyAuth
func ListUnits(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := strconv.Atoi(r.URL.Query().Get("owner_id"))
	units, err := Store.ListUnits(store.UnitFilter{
		Status:  r.URL.Query().Get("status"),
		Type:    r.URL.Query().Get("type"),
		OwnerID: ownerID,
		Search:  r.URL.Query().Get("search"),
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, units)
}

// ListVacantUnits lists all vacant units
// @Summary      List vacant units
// @Description  Get all units with status VACANT.
// @Tags         units
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Unit}
// @Router       /units/vacant [get]
// @Security     ApiKeyAuth
func ListVacantUnits(w http.ResponseWriter, r *http.Request) {
	units, err := Store.ListUnits(store.UnitFilter{Status: models.StatusVacant})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, units)
}

// ListOccupiedUnits lists all occupied units
// @Summary      List occupied units
// @Description  Get all units with status OCCUPIED.
// @Tags         units
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Unit}
// @Router       /units/occupied [get]
// @Security     ApiKeyAuth
func ListOccupiedUnits(w http.ResponseWriter, r *http.Request) {
	units, err := Store.ListUnits(store.UnitFilter{Status: models.StatusOccupied})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, units)
}

// GetUnit retrieves a single unit by ID
// @Summary      Get unit
// @Description  Get details of a specific unit, including its owner.
// @Tags         units
// @Produce      json
// @Param        id   path      int  true  "Unit ID"
// @Success      200  {object}  Response{data=models.Unit}
// @Failure      404  {object}  Response{error=string}
// @Router       /units/{id} [get]
// @Security     ApiKeyAuth
func GetUnit(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	u, err := Store.GetUnit(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// CreateUnit creates a new unit
// @Summary      Create unit
// @Description  Create a new property unit. The owner must be a contact of type LANDLORD.
// @Tags         units
// @Accept       json
// @Produce      json
// @Param        unit  body      models.UnitInput  true  "Unit contents"
// @Success      201   {object}  Response{data=models.Unit}
// @Failure      400   {object}  Response{error=string}
// @Router       /units [post]
// @Security     ApiKeyAuth
func CreateUnit(w http.ResponseWriter, r *http.Request) {
	var input models.UnitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	u, err := Store.CreateUnit(input)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

// UpdateUnit updates an existing unit
// @Summary      Update unit
// @Description  Update details of an existing unit. The owner must be a contact of type LANDLORD.
// @Tags         units
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Unit ID"
// @Param        unit  body      models.UnitInput  true  "Updated unit contents"
// @Success      200   {object}  Response{data=models.Unit}
// @Failure      400   {object}  Response{error=string}
// @Failure      404   {object}  Response{error=string}
// @Router       /units/{id} [put]
// @Security     ApiKeyAuth
func UpdateUnit(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	var input models.UnitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	u, err := Store.UpdateUnit(id, input)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// DeleteUnit deletes a unit
// @Summary      Delete unit
// @Description  Remove a unit along with its leases.
// @Tags         units
// @Produce      json
// @Param        id   path      int  true  "Unit ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /units/{id} [delete]
// @Security     ApiKeyAuth
func DeleteUnit(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	if err := Store.DeleteUnit(id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
