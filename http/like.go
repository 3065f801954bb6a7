package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"simpleTwitter/domain"
	"simpleTwitter/errs"
)

// registerLikeRoutes is a helper for registering all Like routes.
func (s *Server) registerLikeRoutes(r *mux.Router) {
	// Like a tweet.
	r.HandleFunc("/tweets/{id:[0-9]+}/like", s.requireAuth(s.handleCreateLike)).Methods("POST")

	// Unlike a previously liked tweet.
	r.HandleFunc("/tweets/{id:[0-9]+}/unlike", s.requireAuth(s.handleDeleteLike)).Methods("POST")
}

// handleCreateLike handles the route "POST /tweets/:id/like".
// It reads the tweet ID from the url and creates a new Like record for the
// viewer. Liking a tweet twice is rejected without creating a second row.
func (s *Server) handleCreateLike(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	viewer := s.getUserFromContext(r.Context())
	like := domain.Like{
		UserID:  viewer.ID,
		TweetID: id,
	}
	if err := s.ls.Create(&like); err != nil {
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

// handleDeleteLike handles the route "POST /tweets/:id/unlike".
// It deletes the viewer's Like on the given tweet.
func (s *Server) handleDeleteLike(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	viewer := s.getUserFromContext(r.Context())
	like := domain.Like{
		UserID:  viewer.ID,
		TweetID: id,
	}
	if err := s.ls.Delete(&like); err != nil {
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
