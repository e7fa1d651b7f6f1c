package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dochouse/models"
	"dochouse/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeCatalog records the last slot mutation it was asked for.
type fakeCatalog struct {
	lastAction string
	lastKey    string
	lastSlot   string
	lastDate   string
	err        error
}

func (f *fakeCatalog) ListServices() ([]models.Service, error) {
	return []models.Service{{Name: "Dental Care"}}, nil
}

func (f *fakeCatalog) AddBookedDate(id, slotLabel, date string) error {
	f.lastAction, f.lastKey, f.lastSlot, f.lastDate = "addDate", id, slotLabel, date
	return f.err
}

func (f *fakeCatalog) RemoveBookedDate(name, slotLabel, date string) error {
	f.lastAction, f.lastKey, f.lastSlot, f.lastDate = "deleteDate", name, slotLabel, date
	return f.err
}

func serviceTestRouter(cat *fakeCatalog) *gin.Engine {
	h := NewServiceHandler(cat)
	r := gin.New()
	r.GET("/services", h.ListServicesHandler)
	r.PATCH("/services/:action", h.UpdateSlotHandler)
	return r
}

func patchServices(r *gin.Engine, action, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/services/"+action, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateSlotAddDate(t *testing.T) {
	cat := &fakeCatalog{}
	r := serviceTestRouter(cat)

	w := patchServices(r, "addDate", `{"_id":"665f1f77bcf86cd799439011","bookedSlotTime":"10:00 AM - 11:00 AM","bookedDate":"2024-05-01"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "addDate", cat.lastAction)
	assert.Equal(t, "665f1f77bcf86cd799439011", cat.lastKey)
	assert.Equal(t, "10:00 AM - 11:00 AM", cat.lastSlot)
	assert.Equal(t, "2024-05-01", cat.lastDate)
}

func TestUpdateSlotDeleteDate(t *testing.T) {
	cat := &fakeCatalog{}
	r := serviceTestRouter(cat)

	w := patchServices(r, "deleteDate", `{"name":"Dental Care","bookedSlotTime":"10:00 AM - 11:00 AM","bookedDate":"2024-05-01"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "deleteDate", cat.lastAction)
	assert.Equal(t, "Dental Care", cat.lastKey)
}

func TestUpdateSlotUnknownAction(t *testing.T) {
	r := serviceTestRouter(&fakeCatalog{})

	w := patchServices(r, "renameDate", `{"bookedSlotTime":"10:00 AM - 11:00 AM","bookedDate":"2024-05-01"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSlotMissingFields(t *testing.T) {
	r := serviceTestRouter(&fakeCatalog{})

	w := patchServices(r, "addDate", `{"_id":"665f1f77bcf86cd799439011"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSlotNotFound(t *testing.T) {
	cat := &fakeCatalog{err: utils.NewError(utils.ErrNotFound, "slot label not found")}
	r := serviceTestRouter(cat)

	w := patchServices(r, "addDate", `{"_id":"665f1f77bcf86cd799439011","bookedSlotTime":"3:00 PM - 4:00 PM","bookedDate":"2024-05-01"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not_found")
}

func TestListServices(t *testing.T) {
	r := serviceTestRouter(&fakeCatalog{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/services", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dental Care")
}
