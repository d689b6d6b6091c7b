package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uynm/backend/internal/app/models"
	"github.com/uynm/backend/internal/app/models/dto"
	"github.com/uynm/backend/internal/app/services"
	"github.com/uynm/backend/internal/pkg/notify"
	"github.com/uynm/backend/internal/pkg/validation"
)

type fakeContactStore struct {
	contacts  []*models.ContactMessage
	createErr error
	updateErr error
}

func (f *fakeContactStore) Create(_ context.Context, contact *models.ContactMessage) error {
	if f.createErr != nil {
		return f.createErr
	}
	contact.ID = int64(len(f.contacts) + 1)
	contact.CreatedAt = time.Now()
	f.contacts = append(f.contacts, contact)
	return nil
}

func (f *fakeContactStore) GetAll(_ context.Context) ([]*models.ContactMessage, error) {
	return f.contacts, nil
}

func (f *fakeContactStore) UpdateStatus(_ context.Context, id int64, status string) error {
	return f.updateErr
}

type recordingNotifier struct {
	kinds []notify.Kind
	data  []interface{}
}

func (r *recordingNotifier) Notify(kind notify.Kind, data interface{}) {
	r.kinds = append(r.kinds, kind)
	r.data = append(r.data, data)
}

func newContactTestRouter(store *fakeContactStore, notifier notify.Notifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.RegisterBindingRules()
	controller := NewContactController(services.NewContactService(store, notifier))

	router := gin.New()
	router.POST("/api/contact", controller.CreateContact)
	router.GET("/api/contact", controller.ListContacts)
	router.PATCH("/api/contact/:id/status", controller.UpdateContactStatus)
	return router
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateContact(t *testing.T) {
	store := &fakeContactStore{}
	notifier := &recordingNotifier{}
	router := newContactTestRouter(store, notifier)

	w := performJSON(router, http.MethodPost, "/api/contact", gin.H{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"subject":   "Volunteering",
		"message":   "I would like to help with your programs.",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Thank you for your message! We will get back to you soon.", resp.Message)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "unread", data["status"])

	require.Len(t, store.contacts, 1)
	assert.Equal(t, models.ContactStatusUnread, store.contacts[0].Status)

	require.Len(t, notifier.kinds, 1)
	assert.Equal(t, notify.KindContact, notifier.kinds[0])
}

func TestCreateContactValidationReportsAllViolations(t *testing.T) {
	router := newContactTestRouter(&fakeContactStore{}, &recordingNotifier{})

	w := performJSON(router, http.MethodPost, "/api/contact", gin.H{
		"lastName": "Lovelace",
		"email":    "ada@example.com",
		"subject":  "Hi",
		"message":  "short",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.Len(t, resp.Errors, 2)

	fields := []string{resp.Errors[0].Field, resp.Errors[1].Field}
	assert.Contains(t, fields, "firstName")
	assert.Contains(t, fields, "message")
}

func TestCreateContactRejectsBlankAndPaddedFields(t *testing.T) {
	store := &fakeContactStore{}
	router := newContactTestRouter(store, &recordingNotifier{})

	// firstName is whitespace only and the message trims down to 5 runes.
	w := performJSON(router, http.MethodPost, "/api/contact", gin.H{
		"firstName": "   ",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"subject":   "Hi",
		"message":   "   short    ",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.contacts)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 2)

	fields := []string{resp.Errors[0].Field, resp.Errors[1].Field}
	assert.Contains(t, fields, "firstName")
	assert.Contains(t, fields, "message")
}

func TestCreateContactStoresTrimmedValues(t *testing.T) {
	store := &fakeContactStore{}
	router := newContactTestRouter(store, &recordingNotifier{})

	w := performJSON(router, http.MethodPost, "/api/contact", gin.H{
		"firstName": "  Ada  ",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"subject":   " Volunteering ",
		"message":   "  I would like to help with your programs.  ",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.contacts, 1)
	assert.Equal(t, "Ada", store.contacts[0].FirstName)
	assert.Equal(t, "Volunteering", store.contacts[0].Subject)
	assert.Equal(t, "I would like to help with your programs.", store.contacts[0].Message)
}

func TestCreateContactSucceedsWhenNotifierIsSlow(t *testing.T) {
	// A full queue drops the notification; the submission must still
	// succeed.
	store := &fakeContactStore{}
	router := newContactTestRouter(store, &recordingNotifier{})

	w := performJSON(router, http.MethodPost, "/api/contact", gin.H{
		"firstName": "Grace",
		"lastName":  "Hopper",
		"email":     "grace@example.com",
		"subject":   "Partnership",
		"message":   "Our organization would like to partner with you.",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.contacts, 1)
}

func TestListContacts(t *testing.T) {
	store := &fakeContactStore{contacts: []*models.ContactMessage{
		{ID: 1, FirstName: "Ada", Status: models.ContactStatusUnread},
		{ID: 2, FirstName: "Grace", Status: models.ContactStatusRead},
	}}
	router := newContactTestRouter(store, &recordingNotifier{})

	w := performJSON(router, http.MethodGet, "/api/contact", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data.([]interface{}), 2)
}

func TestUpdateContactStatus(t *testing.T) {
	router := newContactTestRouter(&fakeContactStore{}, &recordingNotifier{})

	w := performJSON(router, http.MethodPatch, "/api/contact/1/status", gin.H{"status": "read"})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestUpdateContactStatusInvalidID(t *testing.T) {
	router := newContactTestRouter(&fakeContactStore{}, &recordingNotifier{})

	w := performJSON(router, http.MethodPatch, "/api/contact/abc/status", gin.H{"status": "read"})

	require.Equal(t, http.StatusBadRequest, w.Code)
}
