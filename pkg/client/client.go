// Package client is a small SDK for the REST API of the friends service. It
// mirrors the five operations of the service and surfaces failure responses
// as errors.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"friends-service/pkg/model"
)

// APIError is returned when the service answers with a failure status code.
// The message is taken from the JSON body of the response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("friends service answered %d: %s", e.StatusCode, e.Message)
}

// Client issues HTTP calls against one friends service instance.
type Client struct {
	// BaseURL is the address of the service without a trailing slash, for
	// example "http://localhost:8080".
	BaseURL string

	// HTTPClient is used for all requests. If nil, http.DefaultClient is
	// used.
	HTTPClient *http.Client
}

// New creates a Client for the service at the specified base URL.
func New(baseURL string) *Client {
	return &Client{BaseURL: baseURL}
}

// List returns all friends, most recently created first.
func (c *Client) List() ([]model.Friend, error) {
	var friends []model.Friend
	err := c.call(http.MethodGet, "/friends", nil, &friends)
	return friends, err
}

// Get returns the friend with the given id.
func (c *Client) Get(id int64) (model.Friend, error) {
	var friend model.Friend
	err := c.call(http.MethodGet, fmt.Sprintf("/friends/%d", id), nil, &friend)
	return friend, err
}

// Create submits a new friend and returns the record materialized by the
// server, including the assigned id and timestamps.
func (c *Client) Create(friend model.Friend) (model.Friend, error) {
	var created model.Friend
	err := c.call(http.MethodPost, "/friends", &friend, &created)
	return created, err
}

// Update overwrites the fields of the friend with the given id and returns
// the updated record.
func (c *Client) Update(id int64, friend model.Friend) (model.Friend, error) {
	var updated model.Friend
	err := c.call(http.MethodPut, fmt.Sprintf("/friends/%d", id), &friend, &updated)
	return updated, err
}

// Delete removes the friend with the given id.
func (c *Client) Delete(id int64) error {
	return c.call(http.MethodDelete, fmt.Sprintf("/friends/%d", id), nil, nil)
}

// Health reports whether the service is up.
func (c *Client) Health() error {
	return c.call(http.MethodGet, "/health", nil, nil)
}

// call executes one HTTP request. A non-2xx response is converted into an
// APIError; otherwise the response body is decoded into out if out is not
// nil.
func (c *Client) call(method string, path string, body any, out any) error {
	var bodyReader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(encoded)
	}
	request, err := http.NewRequest(method, c.BaseURL+path, bodyReader)
	if err != nil {
		return err
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	response, err := httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		apiError := &APIError{StatusCode: response.StatusCode}
		var failure struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(responseBody, &failure); err == nil {
			apiError.Message = failure.Message
		}
		return apiError
	}
	if out != nil {
		return json.Unmarshal(responseBody, out)
	}
	return nil
}
