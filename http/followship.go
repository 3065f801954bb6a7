package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"simpleTwitter/domain"
	"simpleTwitter/errs"
)

func (s *Server) registerFollowshipRoutes(r *mux.Router) {
	// Follow a user (the form carries the followed user's id).
	r.HandleFunc("/followships", s.requireAuth(s.handleCreateFollowship)).Methods("POST")

	// Unfollow a user.
	r.HandleFunc("/followships/{id:[0-9]+}", s.requireAuth(s.handleDeleteFollowship)).Methods("DELETE")
}

// handleCreateFollowship handles the route "POST /followships".
// It creates a follow edge from the viewer to the user named in the form.
// A self-follow attempt is rejected before any side effect; no row is ever
// created for it.
func (s *Server) handleCreateFollowship(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid form data."))
		return
	}
	followingID, err := strconv.Atoi(r.PostFormValue("id"))
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	viewer := s.getUserFromContext(r.Context())
	if viewer.ID == followingID {
		s.flash(w, r, flashError, "You cannot follow yourself.")
		redirectBack(w, r, "/tweets")
		return
	}

	followship := domain.Followship{
		FollowerID:  viewer.ID,
		FollowingID: followingID,
	}
	if err := s.fs.Create(&followship); err != nil {
		if errs.ErrorCode(err) == errs.EINVALID {
			s.flash(w, r, flashError, errs.ErrorMessage(err))
			redirectBack(w, r, "/tweets")
			return
		}
		errs.ReturnError(w, r, err)
		return
	}
	redirectBack(w, r, "/tweets")
}

// handleDeleteFollowship handles the route "DELETE /followships/:id".
// The id names the followed user; the edge deleted is the one from the
// viewer to that user.
func (s *Server) handleDeleteFollowship(w http.ResponseWriter, r *http.Request) {
	followingID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	viewer := s.getUserFromContext(r.Context())
	followship := domain.Followship{
		FollowerID:  viewer.ID,
		FollowingID: followingID,
	}
	if err := s.fs.Delete(&followship); err != nil {
		if code := errs.ErrorCode(err); code == errs.EINVALID || code == errs.ENOTFOUND {
			s.flash(w, r, flashError, errs.ErrorMessage(err))
			redirectBack(w, r, "/tweets")
			return
		}
		errs.ReturnError(w, r, err)
		return
	}
	redirectBack(w, r, "/tweets")
}
