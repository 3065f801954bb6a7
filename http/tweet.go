package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"simpleTwitter/domain"
	"simpleTwitter/errs"
	"simpleTwitter/view"
)

func (s *Server) registerTweetRoutes(r *mux.Router) {
	// The tweet feed, the app's authenticated landing page.
	r.HandleFunc("/tweets", s.requireAuth(s.handleTweets)).Methods("GET")

	// Post a new tweet.
	r.HandleFunc("/tweets", s.requireAuth(s.handleCreateTweet)).Methods("POST")

	// A tweet's detail view with its replies.
	r.HandleFunc("/tweets/{id:[0-9]+}/replies", s.requireAuth(s.handleTweetReplies)).Methods("GET")

	// Post a reply to a tweet.
	r.HandleFunc("/tweets/{id:[0-9]+}/replies", s.requireAuth(s.handleCreateReply)).Methods("POST")
}

// handleTweets handles the route "GET /tweets".
// It shows every tweet annotated for the viewer, plus the three users with
// the most followers.
func (s *Server) handleTweets(w http.ResponseWriter, r *http.Request) {
	viewer := s.getUserFromContext(r.Context())

	tweets, err := s.ts.All()
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}
	users, err := s.us.AllWithFollowers()
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}
	followingIDs, err := s.fs.FollowingIDs(viewer.ID)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	s.render(w, r, view.NewTweetsPage(tweets, users, viewer.ID, followingIDs))
}

// handleCreateTweet handles the route "POST /tweets".
// It creates a new tweet owned by the viewer. An invalid description (empty,
// or longer than 140 characters) redirects back to the feed without creating
// a row.
func (s *Server) handleCreateTweet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid form data."))
		return
	}
	viewer := s.getUserFromContext(r.Context())
	tweet := domain.Tweet{
		UserID:      viewer.ID,
		Description: r.PostFormValue("description"),
	}
	if err := s.ts.Create(&tweet); err != nil {
		if errs.ErrorCode(err) == errs.EINVALID {
			http.Redirect(w, r, "/tweets", http.StatusFound)
			return
		}
		errs.ReturnError(w, r, err)
		return
	}
	http.Redirect(w, r, "/tweets", http.StatusFound)
}

// handleTweetReplies handles the route "GET /tweets/:id/replies".
// It shows a single tweet with its replies and its author's profile card,
// so the reply page can display the tweet owner's introduction.
func (s *Server) handleTweetReplies(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	tweet, err := s.ts.ByID(id)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}
	author, err := s.us.ProfileByID(tweet.UserID)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	viewer := s.getUserFromContext(r.Context())
	followingIDs, err := s.fs.FollowingIDs(viewer.ID)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	s.render(w, r, view.NewRepliesPage(*tweet, *author, viewer.ID, followingIDs))
}

// handleCreateReply handles the route "POST /tweets/:id/replies".
// It creates a reply on the tweet and redirects back to the detail view.
func (s *Server) handleCreateReply(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}
	if err := r.ParseForm(); err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid form data."))
		return
	}

	viewer := s.getUserFromContext(r.Context())
	reply := domain.Reply{
		UserID:  viewer.ID,
		TweetID: id,
		Comment: r.PostFormValue("comment"),
	}
	if err := s.rs.Create(&reply); err != nil {
		if errs.ErrorCode(err) == errs.EINVALID {
			http.Redirect(w, r, "/tweets/"+strconv.Itoa(id)+"/replies", http.StatusFound)
			return
		}
		errs.ReturnError(w, r, err)
		return
	}
	http.Redirect(w, r, "/tweets/"+strconv.Itoa(id)+"/replies", http.StatusFound)
}
