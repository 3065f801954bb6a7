package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"simpleTwitter/domain"
	"simpleTwitter/errs"
	"simpleTwitter/view"
)

func (s *Server) registerAdminRoutes(r *mux.Router) {
	// The moderation list of all tweets, the admin landing page.
	r.HandleFunc("/admin/tweets", s.requireAdmin(s.handleAdminTweets)).Methods("GET")

	// Delete any user's tweet.
	r.HandleFunc("/admin/tweets/{id:[0-9]+}", s.requireAdmin(s.handleAdminDeleteTweet)).Methods("DELETE")

	// The list of all users.
	r.HandleFunc("/admin/users", s.requireAdmin(s.handleAdminUsers)).Methods("GET")
}

// handleAdminTweets handles the route "GET /admin/tweets".
func (s *Server) handleAdminTweets(w http.ResponseWriter, r *http.Request) {
	viewer := s.getUserFromContext(r.Context())

	tweets, err := s.ts.All()
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	s.render(w, r, view.NewAdminTweetsPage(tweets, viewer.ID))
}

// handleAdminDeleteTweet handles the route "DELETE /admin/tweets/:id".
// It deletes the tweet along with its replies and likes, regardless of who
// owns it.
func (s *Server) handleAdminDeleteTweet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	if err := s.ts.Delete(&domain.Tweet{ID: id}); err != nil {
		errs.ReturnError(w, r, err)
		return
	}
	redirectBack(w, r, "/admin/tweets")
}

// handleAdminUsers handles the route "GET /admin/users".
func (s *Server) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	viewer := s.getUserFromContext(r.Context())

	users, err := s.us.AllWithAssociations()
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}
	followingIDs, err := s.fs.FollowingIDs(viewer.ID)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	s.render(w, r, view.NewAdminUsersPage(users, followingIDs))
}
