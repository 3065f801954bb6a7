package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"

	"simpleTwitter/domain"
	"simpleTwitter/errs"
	"simpleTwitter/view"
)

func (s *Server) registerUserRoutes(r *mux.Router) {
	// A user's tweet wall.
	r.HandleFunc("/users/{id:[0-9]+}/tweets", s.requireAuth(s.handleUserTweets)).Methods("GET")

	// Whom a user follows.
	r.HandleFunc("/users/{id:[0-9]+}/followings", s.requireAuth(s.handleUserFollowings)).Methods("GET")

	// Who follows a user.
	r.HandleFunc("/users/{id:[0-9]+}/followers", s.requireAuth(s.handleUserFollowers)).Methods("GET")

	// The tweets a user has liked.
	r.HandleFunc("/users/{id:[0-9]+}/likes", s.requireAuth(s.handleUserLikes)).Methods("GET")

	// Edit one's own profile.
	r.HandleFunc("/users/{id:[0-9]+}/edit", s.requireAuth(s.handleEditPage)).Methods("GET")
	r.HandleFunc("/users/{id:[0-9]+}/edit", s.requireAuth(s.handleUpdateProfile)).Methods("POST")
}

// profileRequest resolves the pieces every profile sub-view needs: the
// requested profile with its record graph, the viewer, and the viewer's
// following IDs.
func (s *Server) profileRequest(w http.ResponseWriter, r *http.Request) (*domain.User, *domain.User, []int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return nil, nil, nil, false
	}
	profile, err := s.us.ProfileByID(id)
	if err != nil {
		errs.ReturnError(w, r, err)
		return nil, nil, nil, false
	}
	viewer := s.getUserFromContext(r.Context())
	followingIDs, err := s.fs.FollowingIDs(viewer.ID)
	if err != nil {
		errs.ReturnError(w, r, err)
		return nil, nil, nil, false
	}
	return profile, viewer, followingIDs, true
}

// handleUserTweets handles the route "GET /users/:id/tweets".
// It shows a user's tweet wall along with their profile card.
func (s *Server) handleUserTweets(w http.ResponseWriter, r *http.Request) {
	profile, viewer, followingIDs, ok := s.profileRequest(w, r)
	if !ok {
		return
	}
	s.render(w, r, view.NewProfilePage(*profile, viewer.ID, followingIDs))
}

// handleUserFollowings handles the route "GET /users/:id/followings".
func (s *Server) handleUserFollowings(w http.ResponseWriter, r *http.Request) {
	profile, viewer, followingIDs, ok := s.profileRequest(w, r)
	if !ok {
		return
	}
	s.render(w, r, view.NewFollowingsPage(*profile, viewer.ID, followingIDs))
}

// handleUserFollowers handles the route "GET /users/:id/followers".
func (s *Server) handleUserFollowers(w http.ResponseWriter, r *http.Request) {
	profile, viewer, followingIDs, ok := s.profileRequest(w, r)
	if !ok {
		return
	}
	s.render(w, r, view.NewFollowersPage(*profile, viewer.ID, followingIDs))
}

// handleUserLikes handles the route "GET /users/:id/likes".
func (s *Server) handleUserLikes(w http.ResponseWriter, r *http.Request) {
	profile, viewer, followingIDs, ok := s.profileRequest(w, r)
	if !ok {
		return
	}
	s.render(w, r, view.NewLikesPage(*profile, viewer.ID, followingIDs))
}

// handleEditPage handles the route "GET /users/:id/edit".
// Users may only edit their own profile; anyone else lands on the feed.
func (s *Server) handleEditPage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}
	viewer := s.getUserFromContext(r.Context())
	if viewer.ID != id {
		http.Redirect(w, r, "/tweets", http.StatusFound)
		return
	}
	s.render(w, r, map[string]interface{}{
		"user":       view.NewUserCard(*viewer, nil),
		"csrf_token": csrf.Token(r),
	})
}

// handleUpdateProfile handles the route "POST /users/:id/edit".
// It updates the viewer's name and introduction, and stores a new avatar if
// one was uploaded. Users may only update their own profile.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}
	viewer := s.getUserFromContext(r.Context())
	if viewer.ID != id {
		http.Redirect(w, r, "/tweets", http.StatusFound)
		return
	}

	// The edit form arrives urlencoded, or as multipart when an avatar file
	// rides along.
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(domain.MaxAvatarSize)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid form data."))
		return
	}

	viewer.Name = r.PostFormValue("name")
	viewer.Introduction = r.PostFormValue("introduction")

	if file, header, err := r.FormFile("avatar"); err == nil {
		defer file.Close()
		avatar := domain.Avatar{
			UserID:   viewer.ID,
			File:     file,
			Filename: header.Filename,
		}
		if err := s.as.Create(&avatar); err != nil {
			errs.ReturnError(w, r, err)
			return
		}
		viewer.Avatar = avatar.URL
	}

	if err := s.us.Update(viewer); err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	s.flash(w, r, flashSuccess, "Your profile has been updated.")
	http.Redirect(w, r, "/users/"+strconv.Itoa(id)+"/edit", http.StatusFound)
}
