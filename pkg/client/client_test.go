package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"friends-service/pkg/model"
)

// newStubServer starts an HTTP server that answers exactly one expected
// request with a canned response.
func newStubServer(t *testing.T, method string, path string, status int, responseBody string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, method, r.Method)
		assert.Equal(t, path, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(responseBody))
	}))
}

// TestList checks that the list of friends is fetched and decoded.
func TestList(t *testing.T) {
	server := newStubServer(t, "GET", "/friends", http.StatusOK, `[
		{"id": 2, "name": "Berta", "email": "berta@x.com"},
		{"id": 1, "name": "Aaron", "email": "aaron@x.com", "phone": "+420 111"}
	]`)
	defer server.Close()

	friends, err := New(server.URL).List()
	assert.NoError(t, err)
	assert.Equal(t, 2, len(friends))
	assert.Equal(t, int64(2), friends[0].Id)
	assert.Equal(t, "Berta", friends[0].Name)
	assert.Equal(t, "+420 111", *friends[1].Phone)
}

// TestGet checks that a single friend is fetched by id.
func TestGet(t *testing.T) {
	server := newStubServer(t, "GET", "/friends/29", http.StatusOK,
		`{"id": 29, "name": "Erika", "email": "erika@example.org"}`)
	defer server.Close()

	friend, err := New(server.URL).Get(29)
	assert.NoError(t, err)
	assert.Equal(t, int64(29), friend.Id)
	assert.Equal(t, "Erika", friend.Name)
}

// TestCreate checks that the payload is posted as JSON and the materialized
// record is returned.
func TestCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/friends", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var submitted model.Friend
		json.NewDecoder(r.Body).Decode(&submitted)
		assert.Equal(t, "Ana", submitted.Name)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 1, "name": "Ana", "email": "ana@x.com"}`))
	}))
	defer server.Close()

	created, err := New(server.URL).Create(model.Friend{Name: "Ana", Email: "ana@x.com"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), created.Id)
}

// TestUpdate checks that the payload is sent to the friend's URL with the
// PUT method.
func TestUpdate(t *testing.T) {
	server := newStubServer(t, "PUT", "/friends/17", http.StatusOK,
		`{"id": 17, "name": "Ana Maria", "email": "ana@x.com"}`)
	defer server.Close()

	updated, err := New(server.URL).Update(17, model.Friend{Name: "Ana Maria", Email: "ana@x.com"})
	assert.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)
}

// TestDelete checks that a NO CONTENT response is treated as success.
func TestDelete(t *testing.T) {
	server := newStubServer(t, "DELETE", "/friends/42", http.StatusNoContent, "")
	defer server.Close()

	assert.NoError(t, New(server.URL).Delete(42))
}

// TestHealth checks the health probe.
func TestHealth(t *testing.T) {
	server := newStubServer(t, "GET", "/health", http.StatusOK, `{"ok": true}`)
	defer server.Close()

	assert.NoError(t, New(server.URL).Health())
}

// TestFailureResponse checks that a failure status code is surfaced as an
// APIError carrying the message from the JSON body.
func TestFailureResponse(t *testing.T) {
	server := newStubServer(t, "GET", "/friends/9999", http.StatusNotFound,
		`{"message": "friend not found"}`)
	defer server.Close()

	_, err := New(server.URL).Get(9999)
	var apiError *APIError
	assert.ErrorAs(t, err, &apiError)
	assert.Equal(t, http.StatusNotFound, apiError.StatusCode)
	assert.Equal(t, "friend not found", apiError.Message)
	assert.Contains(t, apiError.Error(), "friend not found")
}

// TestValidationFailureResponse checks that a BAD REQUEST answer on create
// is surfaced as an APIError.
func TestValidationFailureResponse(t *testing.T) {
	server := newStubServer(t, "POST", "/friends", http.StatusBadRequest,
		`{"message": "name is required"}`)
	defer server.Close()

	_, err := New(server.URL).Create(model.Friend{Email: "ana@x.com"})
	var apiError *APIError
	assert.ErrorAs(t, err, &apiError)
	assert.Equal(t, http.StatusBadRequest, apiError.StatusCode)
	assert.Equal(t, "name is required", apiError.Message)
}
