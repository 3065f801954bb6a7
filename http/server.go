package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"

	"simpleTwitter/crud"
	"simpleTwitter/domain"
	"simpleTwitter/storage"
)

// Server provides most of the http functionality of this app, namely routing,
// request handling, and middleware. It also performs authentication and
// authorization before handing things over to one of the crud services.
type Server struct {
	router   *mux.Router
	sessions *sessions.CookieStore
	us       domain.UserService
	ts       domain.TweetService
	rs       domain.ReplyService
	ls       domain.LikeService
	fs       domain.FollowshipService
	as       domain.AvatarService
}

// NewServer returns a new instance of the server, registers all necessary
// routes and gives their handlers access to the app services passed in.
func NewServer(
	isProd bool,
	sessionKey string,
	csrfKey string,
	us *crud.UserService,
	ts *crud.TweetService,
	rs *crud.ReplyService,
	ls *crud.LikeService,
	fs *crud.FollowshipService,
	as *storage.AvatarService,
) *Server {

	// Construct a new Server with a gorilla router, a cookie session store,
	// and the services passed in.
	s := &Server{
		router:   mux.NewRouter(),
		sessions: sessions.NewCookieStore([]byte(sessionKey)),
		us:       us,
		ts:       ts,
		rs:       rs,
		ls:       ls,
		fs:       fs,
		as:       as,
	}

	// Register routes of the auth system.
	s.registerAuthRoutes(s.router)

	// Register routes of the crud system.
	s.registerTweetRoutes(s.router)
	s.registerUserRoutes(s.router)
	s.registerFollowshipRoutes(s.router)
	s.registerLikeRoutes(s.router)
	s.registerAdminRoutes(s.router)

	// Serve uploaded avatar files as static content.
	s.router.PathPrefix("/" + domain.UploadBaseDir + "/").Handler(
		http.StripPrefix("/"+domain.UploadBaseDir+"/", http.FileServer(http.Dir(domain.UploadBaseDir))),
	)

	// Set up middleware that needs to run on every request. A new CSRF token
	// is issued when the client requests /signin or /signup with a GET
	// request, and surfaced in those pages' render data.
	csrfMw := csrf.Protect([]byte(csrfKey), csrf.Secure(isProd), csrf.Path("/"))
	s.router.Use(csrfMw, setContentTypeJSON, s.checkUser)
	return s
}

// The setContentTypeJSON middleware sets the content type to
// "application/json". Static avatar files keep their own content type.
func setContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/"+domain.UploadBaseDir+"/") {
			w.Header().Set("Content-Type", "application/json")
		}
		next.ServeHTTP(w, r)
	})
}

// page wraps every rendered view in an envelope carrying any pending flash
// messages next to the page's data.
type page struct {
	SuccessMessages []string    `json:"success_messages,omitempty"`
	ErrorMessages   []string    `json:"error_messages,omitempty"`
	Data            interface{} `json:"data"`
}

// render writes the given view data as json, draining the session's flash
// messages into the response envelope.
func (s *Server) render(w http.ResponseWriter, r *http.Request, data interface{}) {
	session, _ := s.sessions.Get(r, sessionName)
	p := page{
		SuccessMessages: drainFlashes(session, flashSuccess),
		ErrorMessages:   drainFlashes(session, flashError),
		Data:            data,
	}
	if err := session.Save(r, w); err != nil {
		log.Println("err saving session while rendering: ", err)
	}
	if err := json.NewEncoder(w).Encode(&p); err != nil {
		log.Println("err rendering page as json: ", err)
	}
}

// drainFlashes pops all flash messages stored under the given key.
func drainFlashes(session *sessions.Session, key string) []string {
	var messages []string
	for _, f := range session.Flashes(key) {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}

// flash queues a message under the given key for the next rendered page.
func (s *Server) flash(w http.ResponseWriter, r *http.Request, key, message string) {
	session, _ := s.sessions.Get(r, sessionName)
	session.AddFlash(message, key)
	if err := session.Save(r, w); err != nil {
		log.Println("err saving session while flashing: ", err)
	}
}

// redirectBack redirects to the page the request came from, mirroring the
// create/destroy routes that send the user back where they clicked. Without
// a Referer header the fallback is used.
func redirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	if ref := r.Referer(); ref != "" {
		http.Redirect(w, r, ref, http.StatusFound)
		return
	}
	http.Redirect(w, r, fallback, http.StatusFound)
}

// Run starts to listen and serve on the specified port.
func (s *Server) Run(port int) {
	log.Fatal(http.ListenAndServe(":"+strconv.Itoa(port), s.router))
}
