package activity

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/mergington/activities/pkg/response"
)

// Handler handles HTTP requests for activity operations
type Handler struct {
	service *Service
}

// NewHandler creates a new activity handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for activity endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/{name}/signup", h.Signup)
	r.Delete("/{name}/signup", h.CancelSignup)

	return r
}

// List handles GET /activities
// @Summary      List all activities
// @Description  Get all activities with their schedules and current participants
// @Tags         activities
// @Produce      json
// @Success      200 {object} map[string]Activity
// @Router       /activities [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	roster, err := h.service.Roster(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to load activities")
		return
	}

	response.JSON(w, http.StatusOK, roster)
}

// Signup handles POST /activities/{name}/signup
// @Summary      Sign up for an activity
// @Description  Register a student email for the named activity
// @Tags         activities
// @Produce      json
// @Param        name path string true "Activity name"
// @Param        email query string true "Student email"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} response.DetailResponse
// @Failure      404 {object} response.DetailResponse
// @Router       /activities/{name}/signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email := r.URL.Query().Get("email")
	if email == "" {
		response.BadRequest(w, "Email is required")
		return
	}

	message, err := h.service.SignUp(r.Context(), name, email)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, MessageResponse{Message: message})
}

// CancelSignup handles DELETE /activities/{name}/signup
// @Summary      Cancel a signup
// @Description  Remove a student email from the named activity
// @Tags         activities
// @Produce      json
// @Param        name path string true "Activity name"
// @Param        email query string true "Student email"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} response.DetailResponse
// @Failure      404 {object} response.DetailResponse
// @Router       /activities/{name}/signup [delete]
func (h *Handler) CancelSignup(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email := r.URL.Query().Get("email")
	if email == "" {
		response.BadRequest(w, "Email is required")
		return
	}

	message, err := h.service.CancelSignup(r.Context(), name, email)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, MessageResponse{Message: message})
}

// activityName extracts the {name} path parameter. chi leaves the segment
// percent-encoded when the request URL carries a RawPath, so names with
// spaces need unescaping here.
func activityName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		response.NotFound(w, "Activity not found")
	case errors.Is(err, ErrAlreadySignedUp):
		response.BadRequest(w, "Student is already signed up for this activity")
	case errors.Is(err, ErrNotSignedUp):
		response.BadRequest(w, "Student is not signed up for this activity")
	case errors.Is(err, ErrActivityFull):
		response.BadRequest(w, "Activity is full")
	default:
		response.InternalError(w, "Internal server error")
	}
}
