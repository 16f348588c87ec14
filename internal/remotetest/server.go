// Package remotetest is an in-memory stand-in for the remote LynkCircles API,
// used by package tests. It enforces the store-side invariants the client
// relies on: at most one outstanding request per pair, symmetric connection
// promotion on accept, and request deletion on accept and reject.
package remotetest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lynkcircles/client/internal/api"
	"github.com/lynkcircles/client/internal/models"
)

// Server is a fake remote API backed by in-memory maps. All state access is
// serialized by a single mutex.
type Server struct {
	mu sync.Mutex

	users         map[string]*models.User
	connections   map[string]map[string]struct{}
	requests      map[string]*models.ConnectionRequest
	notifications map[string][]models.Notification
	workDetails   map[string]*models.WorkDetails
	portfolio     map[string]*models.JobPortfolio

	failNext int
	nextID   int

	httpSrv *httptest.Server
}

// NewServer starts a fake remote API on a local listener.
func NewServer() *Server {
	s := &Server{
		users:         make(map[string]*models.User),
		connections:   make(map[string]map[string]struct{}),
		requests:      make(map[string]*models.ConnectionRequest),
		notifications: make(map[string][]models.Notification),
		workDetails:   make(map[string]*models.WorkDetails),
		portfolio:     make(map[string]*models.JobPortfolio),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(s.failureMiddleware)

	e.POST("/connections/request/:userId", s.sendRequest, s.requireAuth)
	e.PUT("/connections/accept/:id", s.acceptRequest, s.requireAuth)
	e.PUT("/connections/reject/:id", s.rejectRequest, s.requireAuth)
	e.DELETE("/connections/:userId", s.removeConnection, s.requireAuth)
	e.GET("/connections", s.getConnections, s.requireAuth)
	e.GET("/connections/requests", s.getPendingRequests, s.requireAuth)

	e.GET("/notifications", s.getNotifications, s.requireAuth)
	e.PUT("/notifications/:id/read", s.markNotificationRead, s.requireAuth)
	e.PUT("/notifications/read-all", s.markAllNotificationsRead, s.requireAuth)

	e.GET("/auth/me", s.me, s.requireAuth)
	e.POST("/auth/logout", s.logout, s.requireAuth)

	e.GET("/users/profile/:username", s.getProfile)
	e.PUT("/users/profile", s.updateProfile, s.requireAuth)

	e.GET("/workdetails/:username", s.getWorkDetails)
	e.PUT("/workdetails/update", s.updateWorkDetails, s.requireAuth)
	e.POST("/workdetails/jobportfolio", s.addJobPortfolio, s.requireAuth)
	e.PUT("/workdetails/jobportfolio", s.updateJobPortfolio, s.requireAuth)
	e.DELETE("/workdetails/jobportfolio/:jobId", s.deleteJobPortfolio, s.requireAuth)

	s.httpSrv = httptest.NewServer(e)
	return s
}

// URL returns the base URL of the fake API.
func (s *Server) URL() string {
	return s.httpSrv.URL
}

// Close shuts the fake API down.
func (s *Server) Close() {
	s.httpSrv.Close()
}

// Client returns an API client authenticated as the given user. The fake's
// token scheme is simply the user id.
func (s *Server) Client(userID string) *api.Client {
	return api.New(s.httpSrv.URL, userID, api.WithTimeout(5*time.Second))
}

// FailNext makes the next n requests fail with a 500 before touching any
// state, for failure-path tests.
func (s *Server) FailNext(n int) {
	s.mu.Lock()
	s.failNext = n
	s.mu.Unlock()
}

// AddUser registers a member.
func (s *Server) AddUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	if s.connections[user.ID] == nil {
		s.connections[user.ID] = make(map[string]struct{})
	}
}

// Connect establishes a symmetric connection between two members, bypassing
// the request flow. Test setup only.
func (s *Server) Connect(a, b string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureConnectionSets(a, b)
	s.connections[a][b] = struct{}{}
	s.connections[b][a] = struct{}{}
}

// SeedRequest creates an outstanding request and returns its id. Test setup
// only.
func (s *Server) SeedRequest(fromID, toID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.newID("req")
	s.requests[id] = &models.ConnectionRequest{
		ID:         id,
		FromUserID: fromID,
		ToUserID:   toID,
		CreatedAt:  time.Now(),
	}
	return id
}

// SeedNotification appends a notification for the given recipient.
func (s *Server) SeedNotification(userID string, read bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications[userID] = append(s.notifications[userID], models.Notification{
		ID:        s.newID("notif"),
		Type:      "message",
		Read:      read,
		CreatedAt: time.Now(),
	})
}

// PendingRequestCountFor returns how many outstanding requests involve the
// user, for asserting that accept/reject removed the record on both sides.
func (s *Server) PendingRequestCountFor(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, req := range s.requests {
		if req.Involves(userID) {
			count++
		}
	}
	return count
}

func (s *Server) ensureConnectionSets(ids ...string) {
	for _, id := range ids {
		if s.connections[id] == nil {
			s.connections[id] = make(map[string]struct{})
		}
	}
}

func (s *Server) newID(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

func (s *Server) failureMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		fail := s.failNext > 0
		if fail {
			s.failNext--
		}
		s.mu.Unlock()
		if fail {
			return echo.NewHTTPError(http.StatusInternalServerError, "injected failure")
		}
		return next(c)
	}
}

// requireAuth reads the bearer token as the caller's user id.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if len(authHeader) < len("Bearer ")+1 || authHeader[:len("Bearer ")] != "Bearer " {
			return echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
		}
		c.Set("userID", authHeader[len("Bearer "):])
		return next(c)
	}
}

func currentUserID(c echo.Context) string {
	id, _ := c.Get("userID").(string)
	return id
}
