// Package service implements the REST API of the friends service on top of
// the store and the schema validation.
package service

import (
	_ "embed"
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"friends-service/internal/model"
	"friends-service/internal/store"
	"friends-service/internal/validate"
)

//go:embed ui.html
var uiPage []byte

// FriendService handles the HTTP requests of the REST API. It holds the
// store handle that is constructed at startup and injected here.
type FriendService struct {
	store *store.Store
}

// New creates a FriendService working on the specified store.
func New(st *store.Store) *FriendService {
	return &FriendService{store: st}
}

// SetupHttpRouter initializes the REST API router and registers all
// endpoints.
func (s *FriendService) SetupHttpRouter() *gin.Engine {
	var router *gin.Engine
	if strings.EqualFold(os.Getenv("GIN_LOGGING"), "off") {
		log.Println("Turning off HTTP request logging.")
		router = gin.New()
		router.Use(gin.Recovery())
	} else {
		router = gin.Default()
	}
	router.GET("/friends", s.findFriends)
	router.POST("/friends", s.createFriend)
	router.GET("/friends/:id", s.findFriendByID)
	router.PUT("/friends/:id", s.updateFriendByID)
	router.DELETE("/friends/:id", s.deleteFriendByID)
	router.GET("/health", health)
	router.GET("/", indexPage)
	return router
}

// findFriends responds with the list of all friends as JSON, most recently
// created first. An empty contact book results in an empty JSON array.
//
// Example REST API call:
//
//	> curl "http://localhost:8080/friends"
func (s *FriendService) findFriends(c *gin.Context) {
	friends, err := s.store.ListAll()
	if err != nil {
		log.Panicln(err)
	}
	c.IndentedJSON(http.StatusOK, friends)
}

// findFriendByID locates the friend whose ID value matches the id parameter
// of the request URL, then returns that friend as a response.
//
// Example REST API call:
//
//	> curl http://localhost:8080/friends/56
func (s *FriendService) findFriendByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	friend, err := s.store.GetByID(id)
	if errors.Is(err, store.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "friend not found"})
		return
	}
	if err != nil {
		log.Panicln(err)
	}
	c.IndentedJSON(http.StatusOK, friend)
}

// createFriend validates the friend specified in the request's JSON and
// inserts it into the database. It responds with the full friend data
// including the newly assigned id and timestamps.
//
// Example REST API call:
//
//	> curl http://localhost:8080/friends --request "POST" --include --header "Content-Type: application/json" --data '{"name": "Ana", "email": "ana@x.com", "phone": "+420 123 456 789"}'
func (s *FriendService) createFriend(c *gin.Context) {
	fields, ok := bindAndValidate(c)
	if !ok {
		return
	}
	friend, err := s.store.Create(fields)
	if err != nil {
		log.Panicln(err)
	}
	c.IndentedJSON(http.StatusCreated, friend)
}

// updateFriendByID validates the request's JSON, confirms that the friend
// whose ID value matches the id parameter of the request URL exists,
// overwrites its fields, and finally responds with the new version of the
// friend.
//
// The existence check and the update are not atomic. If a concurrent request
// deletes the row in between, the update affects zero rows and this request
// is answered with the NOT FOUND status code.
//
// Example REST API call:
//
//	> curl http://localhost:8080/friends/56 --request "PUT" --include --header "Content-Type: application/json" --data '{"name": "Ana Maria", "email": "ana@x.com"}'
func (s *FriendService) updateFriendByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	fields, ok := bindAndValidate(c)
	if !ok {
		return
	}
	if _, err := s.store.GetByID(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "friend not found"})
			return
		}
		log.Panicln(err)
	}
	friend, err := s.store.Update(id, fields)
	if errors.Is(err, store.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "friend not found"})
		return
	}
	if err != nil {
		log.Panicln(err)
	}
	c.IndentedJSON(http.StatusOK, friend)
}

// deleteFriendByID confirms that the friend whose ID value matches the id
// parameter of the request URL exists and deletes it from the database. On
// success it responds with the NO CONTENT status code and an empty body.
//
// Example REST API call:
//
//	> curl http://localhost:8080/friends/56 --request "DELETE"
func (s *FriendService) deleteFriendByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := s.store.GetByID(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "friend not found"})
			return
		}
		log.Panicln(err)
	}
	if _, err := s.store.Remove(id); err != nil {
		log.Panicln(err)
	}
	c.Status(http.StatusNoContent)
}

// health answers liveness probes.
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// indexPage serves the embedded browser UI.
func indexPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", uiPage)
}

// parseID inspects the id parameter of the request URL. A non-numeric id
// cannot belong to any friend, so the request is answered with the NOT FOUND
// status code without reaching out to the database.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "invalid id parameter"})
		return 0, false
	}
	return id, true
}

// bindAndValidate parses the request body into the strict input shape and
// runs the schema validation. On failure the request is answered with the
// BAD REQUEST status code and the validation message.
func bindAndValidate(c *gin.Context) (model.FriendFields, bool) {
	var input model.FriendInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return model.FriendFields{}, false
	}
	fields, err := validate.Friend(input)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return model.FriendFields{}, false
	}
	return fields, true
}
