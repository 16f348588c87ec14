package remotetest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lynkcircles/client/internal/models"
)

func (s *Server) sendRequest(c echo.Context) error {
	viewerID := currentUserID(c)
	targetID := c.Param("userId")

	s.mu.Lock()
	defer s.mu.Unlock()

	if viewerID == targetID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot send a connection request to yourself")
	}
	if _, ok := s.users[targetID]; !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Target user not found")
	}
	if _, connected := s.connections[viewerID][targetID]; connected {
		return echo.NewHTTPError(http.StatusBadRequest, "Users are already connected")
	}
	for _, req := range s.requests {
		if req.IsBetween(viewerID, targetID) {
			return echo.NewHTTPError(http.StatusBadRequest, "A pending connection request already exists between these users")
		}
	}

	request := &models.ConnectionRequest{
		ID:         s.newID("req"),
		FromUserID: viewerID,
		ToUserID:   targetID,
		CreatedAt:  time.Now(),
	}
	s.requests[request.ID] = request

	return c.JSON(http.StatusCreated, request)
}

func (s *Server) acceptRequest(c echo.Context) error {
	viewerID := currentUserID(c)
	requestID := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[requestID]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Connection request not found")
	}
	if request.ToUserID != viewerID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to modify this connection request")
	}

	s.ensureConnectionSets(request.FromUserID, request.ToUserID)
	s.connections[request.FromUserID][request.ToUserID] = struct{}{}
	s.connections[request.ToUserID][request.FromUserID] = struct{}{}
	delete(s.requests, requestID)

	s.notifications[request.FromUserID] = append(s.notifications[request.FromUserID], models.Notification{
		ID:        s.newID("notif"),
		Type:      "connection_accepted",
		ActorID:   viewerID,
		CreatedAt: time.Now(),
	})

	return c.NoContent(http.StatusOK)
}

func (s *Server) rejectRequest(c echo.Context) error {
	viewerID := currentUserID(c)
	requestID := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[requestID]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Connection request not found")
	}
	if request.ToUserID != viewerID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to modify this connection request")
	}

	delete(s.requests, requestID)
	return c.NoContent(http.StatusOK)
}

func (s *Server) removeConnection(c echo.Context) error {
	viewerID := currentUserID(c)
	targetID := c.Param("userId")

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, connected := s.connections[viewerID][targetID]; !connected {
		return echo.NewHTTPError(http.StatusNotFound, "Connection not found")
	}

	delete(s.connections[viewerID], targetID)
	delete(s.connections[targetID], viewerID)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) getConnections(c echo.Context) error {
	viewerID := currentUserID(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.connections[viewerID]))
	for id := range s.connections[viewerID] {
		ids = append(ids, id)
	}
	return c.JSON(http.StatusOK, ids)
}

func (s *Server) getPendingRequests(c echo.Context) error {
	viewerID := currentUserID(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	requests := make([]models.ConnectionRequest, 0)
	for _, req := range s.requests {
		if req.Involves(viewerID) {
			requests = append(requests, *req)
		}
	}
	return c.JSON(http.StatusOK, requests)
}

func (s *Server) getNotifications(c echo.Context) error {
	viewerID := currentUserID(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	notifications := s.notifications[viewerID]
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return c.JSON(http.StatusOK, notifications)
}

func (s *Server) markNotificationRead(c echo.Context) error {
	viewerID := currentUserID(c)
	notifID := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications[viewerID] {
		if s.notifications[viewerID][i].ID == notifID {
			s.notifications[viewerID][i].Read = true
			return c.NoContent(http.StatusOK)
		}
	}
	return echo.NewHTTPError(http.StatusNotFound, "Notification not found")
}

func (s *Server) markAllNotificationsRead(c echo.Context) error {
	viewerID := currentUserID(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications[viewerID] {
		s.notifications[viewerID][i].Read = true
	}
	return c.NoContent(http.StatusOK)
}

func (s *Server) me(c echo.Context) error {
	viewerID := currentUserID(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[viewerID]
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unknown session")
	}
	return c.JSON(http.StatusOK, user)
}

func (s *Server) logout(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func (s *Server) getProfile(c echo.Context) error {
	username := c.Param("username")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			return c.JSON(http.StatusOK, user)
		}
	}
	return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
}

func (s *Server) updateProfile(c echo.Context) error {
	viewerID := currentUserID(c)

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[viewerID]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Headline != "" {
		user.Headline = req.Headline
	}
	if req.Location != "" {
		user.Location = req.Location
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.ProfilePicture != "" {
		user.ProfilePicture = req.ProfilePicture
	}
	if req.BannerImg != "" {
		user.BannerImg = req.BannerImg
	}
	return c.JSON(http.StatusOK, user)
}

func (s *Server) getWorkDetails(c echo.Context) error {
	username := c.Param("username")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			if details, ok := s.workDetails[user.ID]; ok {
				return c.JSON(http.StatusOK, details)
			}
		}
	}
	return echo.NewHTTPError(http.StatusNotFound, "Work details not found")
}

func (s *Server) updateWorkDetails(c echo.Context) error {
	viewerID := currentUserID(c)

	var details models.WorkDetails
	if err := c.Bind(&details); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	details.UserID = viewerID
	if details.ID == "" {
		details.ID = s.newID("work")
	}
	s.workDetails[viewerID] = &details
	return c.JSON(http.StatusOK, details)
}

func (s *Server) addJobPortfolio(c echo.Context) error {
	var job models.JobPortfolio
	if err := c.Bind(&job); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	job.ID = s.newID("job")
	s.portfolio[job.ID] = &job
	return c.JSON(http.StatusCreated, job)
}

func (s *Server) updateJobPortfolio(c echo.Context) error {
	var job models.JobPortfolio
	if err := c.Bind(&job); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.portfolio[job.ID]; !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Portfolio entry not found")
	}
	s.portfolio[job.ID] = &job
	return c.JSON(http.StatusOK, job)
}

func (s *Server) deleteJobPortfolio(c echo.Context) error {
	jobID := c.Param("jobId")

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.portfolio[jobID]; !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Portfolio entry not found")
	}
	delete(s.portfolio, jobID)
	return c.NoContent(http.StatusNoContent)
}
