package http

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"

	"simpleTwitter/domain"
	"simpleTwitter/errs"
)

const (
	// sessionName is the name of the session cookie.
	sessionName = "simple_twitter_session"
	// sessionUserKey is the session key holding the signed-in user's ID.
	sessionUserKey = "userID"

	flashSuccess = "success_messages"
	flashError   = "error_messages"
)

// userKey is the context key the resolved viewer is stored under. The type
// is private so no other package can collide with it.
type privateKey string

const userKey privateKey = "user"

func (s *Server) registerAuthRoutes(r *mux.Router) {
	r.HandleFunc("/signin", s.handleSigninPage).Methods("GET")
	r.HandleFunc("/signin", s.handleSignin).Methods("POST")
	r.HandleFunc("/signup", s.handleSignupPage).Methods("GET")
	r.HandleFunc("/signup", s.handleSignup).Methods("POST")
	r.HandleFunc("/logout", s.handleLogout).Methods("GET")
}

// handleSigninPage handles the route "GET /signin".
// It renders the sign-in entry point along with a fresh csrf token and any
// flash messages a previous redirect left behind.
func (s *Server) handleSigninPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, map[string]string{
		"page":       "signin",
		"csrf_token": csrf.Token(r),
	})
}

// handleSignin handles the route "POST /signin".
// It checks the submitted credentials. On success, the user's ID goes into
// the session and the user lands on the tweet feed. On failure, an error
// flash message is set and the user is sent back to the sign-in page.
func (s *Server) handleSignin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid form data."))
		return
	}
	user, err := s.us.Authenticate(r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		s.flash(w, r, flashError, errs.ErrorMessage(err))
		http.Redirect(w, r, "/signin", http.StatusFound)
		return
	}
	if err := s.signIn(w, r, user); err != nil {
		errs.ReturnError(w, r, err)
		return
	}
	http.Redirect(w, r, "/tweets", http.StatusFound)
}

// handleSignupPage handles the route "GET /signup".
func (s *Server) handleSignupPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, map[string]string{
		"page":       "signup",
		"csrf_token": csrf.Token(r),
	})
}

// handleSignup handles the route "POST /signup".
// It creates a new user account and sends the user to the sign-in page.
// Validation failures flash their message and redirect back to /signup.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid form data."))
		return
	}
	user := domain.User{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if err := s.us.Create(&user); err != nil {
		if errs.ErrorCode(err) == errs.EINVALID {
			s.flash(w, r, flashError, errs.ErrorMessage(err))
			http.Redirect(w, r, "/signup", http.StatusFound)
			return
		}
		errs.ReturnError(w, r, err)
		return
	}
	s.flash(w, r, flashSuccess, "Your account has been created.")
	http.Redirect(w, r, "/signin", http.StatusFound)
}

// handleLogout handles the route "GET /logout".
// It expires the session cookie and sends the user to the sign-in page.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	session, _ := s.sessions.Get(r, sessionName)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		log.Println("err expiring session on logout: ", err)
	}
	http.Redirect(w, r, "/signin", http.StatusFound)
}

// signIn stores the user's ID in the session, marking them as signed in.
func (s *Server) signIn(w http.ResponseWriter, r *http.Request, user *domain.User) error {
	session, _ := s.sessions.Get(r, sessionName)
	session.Values[sessionUserKey] = user.ID
	return session.Save(r, w)
}

// The checkUser middleware tries to resolve the current viewer from the
// session cookie on every request. If a valid session exists, the user is
// loaded and stored in the request context. Otherwise the request continues
// without an identity, and requireAuth later decides what that means.
func (s *Server) checkUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := s.sessions.Get(r, sessionName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		id, ok := session.Values[sessionUserKey].(int)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		user, err := s.us.ByID(id)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		r = r.WithContext(s.setUserInContext(r.Context(), user))
		next.ServeHTTP(w, r)
	})
}

// requireAuth gates a protected route. If no viewer was resolved, the
// handler body never runs and the user is redirected to the sign-in page.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := s.getUserFromContext(r.Context())
		if user == nil {
			http.Redirect(w, r, "/signin", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	}
}

// requireAdmin gates an admin route. A signed-in user without the admin role
// is sent to the tweet feed; nothing in the handler body runs.
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return s.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		user := s.getUserFromContext(r.Context())
		if !user.IsAdmin() {
			http.Redirect(w, r, "/tweets", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) setUserInContext(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func (s *Server) getUserFromContext(ctx context.Context) *domain.User {
	if temp := ctx.Value(userKey); temp != nil {
		if user, ok := temp.(*domain.User); ok {
			return user
		}
	}
	return nil
}
