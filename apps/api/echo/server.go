package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/studyline/studyline/core"
	"github.com/studyline/studyline/core/group"
	"github.com/studyline/studyline/core/schedule"
	"github.com/studyline/studyline/core/schedulechange"
	"github.com/studyline/studyline/core/session"
	"github.com/studyline/studyline/core/subject"
	"github.com/studyline/studyline/core/teacher"
	"github.com/studyline/studyline/core/teacherlink"
)

type (
	ServerDeps struct {
		Conf       *core.Config
		Logger     core.Logger
		Sessions   session.Store
		TeacherSvc *teacher.Service
		GroupSvc   *group.Service
		SubjectSvc *subject.Service
		SchedSvc   *schedule.Service
		ChangeSvc  *schedulechange.Service
		LinkSvc    *teacherlink.Service
		Notifier   core.Notifier
		Validate   *validator.Validate
		Translator ut.Translator
	}

	Server interface {
		http.Handler
		Start()
		Shutdown(context.Context) error
		Close() error
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
	}

	server struct {
		deps     ServerDeps
		app      *echo.Echo
		errors   chan error
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(deps ServerDeps) Server {
	s := &server{
		deps:     deps,
		app:      echo.New(),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.Recover())
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	auth := sessionAuthMiddleware(s.deps.Sessions)
	adminOnly := requireRole(s.deps.TeacherSvc, teacher.RolePolicy{})

	registerAuthAPI(v1, s.deps.Sessions, s.deps.TeacherSvc, s.deps.Validate)
	registerTeacherAPI(v1, auth, adminOnly, s.deps.TeacherSvc, s.deps.Validate)
	registerGroupAPI(v1, auth, adminOnly, s.deps.GroupSvc, s.deps.Validate)
	registerSubjectAPI(v1, auth, adminOnly, s.deps.SubjectSvc, s.deps.Validate)
	registerScheduleAPI(v1, auth, adminOnly, s.deps.SchedSvc, s.deps.Validate)
	registerScheduleChangeAPI(v1, auth, adminOnly, s.deps.ChangeSvc, s.deps.Validate)
	registerTeacherLinkAPI(v1, auth, adminOnly, s.deps.LinkSvc, s.deps.Validate)
	registerNotificationAPI(v1, auth, adminOnly, s.deps.Notifier, s.deps.Logger, s.deps.Validate)
}

func (s *server) Start() {
	s.errors <- s.app.Start(s.deps.Conf.Server.Address())
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) Errors() <-chan error {
	return s.errors
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to StudyLine API!")
}
