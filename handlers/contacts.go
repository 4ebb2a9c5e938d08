package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/satheeshds/property/models"
	"github.com/satheeshds/property/store"
)

// ListContacts lists all contacts
// @Summary      List contacts
// @Description  Get a list of all landlords and tenants.
// @Tags         contacts
// @Produce      json
// @Param        contact_type  query     string  false  "Filter by type (LANDLORD/TENANT)"
// @Param        search        query     string  false  "Search by name, email, or phone"
// @Success      200           {object}  Response{data=[]models.Contact}
// @Router       /contacts [get]
// @Security     ApiKeyAuth
func ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := Store.ListContacts(store.ContactFilter{
		ContactType: r.URL.Query().Get("contact_type"),
		Search:      r.URL.Query().Get("search"),
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

// ListLandlords lists all landlord contacts
// @Summary      List landlords
// @Description  Get all contacts of type LANDLORD.
// @Tags         contacts
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Contact}
// @Router       /contacts/landlords [get]
// @Security     ApiKeyAuth
func ListLandlords(w http.ResponseWriter, r *http.Request) {
	contacts, err := Store.ListContacts(store.ContactFilter{ContactType: models.ContactLandlord})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

// ListTenants lists all tenant contacts
// @Summary      List tenants
// @Description  Get all contacts of type TENANT.
// @Tags         contacts
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Contact}
// @Router       /contacts/tenants [get]
// @Security     ApiKeyAuth
func ListTenants(w http.ResponseWriter, r *http.Request) {
	contacts, err := Store.ListContacts(store.ContactFilter{ContactType: models.ContactTenant})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

// GetContact retrieves a single contact by ID
// @Summary      Get contact
// @Description  Get details of a specific contact.
// @Tags         contacts
// @Produce      json
// @Param        id   path      int  true  "Contact ID"
// @Success      200  {object}  Response{data=models.Contact}
// @Failure      404  {object}  Response{error=string}
// @Router       /contacts/{id} [get]
// @Security     ApiKeyAuth
func GetContact(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	c, err := Store.GetContact(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CreateContact creates a new contact
// @Summary      Create contact
// @Description  Create a new landlord or tenant.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        contact  body      models.ContactInput  true  "Contact contents"
// @Success      201      {object}  Response{data=models.Contact}
// @Failure      400      {object}  Response{error=string}
// @Router       /contacts [post]
// @Security     ApiKeyAuth
func CreateContact(w http.ResponseWriter, r *http.Request) {
	var input models.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	c, err := Store.CreateContact(input)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// UpdateContact updates an existing contact
// @Summary      Update contact
// @Description  Update details of an existing contact. The contact type cannot change while the contact is referenced by a unit or lease.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Contact ID"
// @Param        contact  body      models.ContactInput  true  "Updated contact contents"
// @Success      200      {object}  Response{data=models.Contact}
// @Failure      400      {object}  Response{error=string}
// @Failure      404      {object}  Response{error=string}
// @Router       /contacts/{id} [put]
// @Security     ApiKeyAuth
func UpdateContact(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	var input models.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	c, err := Store.UpdateContact(id, input)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteContact deletes a contact
// @Summary      Delete contact
// @Description  Remove a contact along with its owned units and related leases.
// @Tags         contacts
// @Produce      json
// @Param        id   path      int  true  "Contact ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /contacts/{id} [delete]
// @Security     ApiKeyAuth
func DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	if err := Store.DeleteContact(id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
