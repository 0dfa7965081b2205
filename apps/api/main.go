package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	echoapi "github.com/studyline/studyline/apps/api/echo"
	"github.com/studyline/studyline/core"
	"github.com/studyline/studyline/core/group"
	"github.com/studyline/studyline/core/schedule"
	"github.com/studyline/studyline/core/schedulechange"
	"github.com/studyline/studyline/core/subject"
	"github.com/studyline/studyline/core/teacher"
	"github.com/studyline/studyline/core/teacherlink"
	logsvc "github.com/studyline/studyline/services/logger"
	notifsvc "github.com/studyline/studyline/services/notification"
	"github.com/studyline/studyline/storage/database"
	"github.com/studyline/studyline/storage/database/sqlxrepos"
	"github.com/studyline/studyline/storage/redisstore"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	db, err := setUpDB(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	defer func() {
		if err = db.Close(); err != nil {
			logger.Error("failed to close DB", err)
		}
	}()

	redisClient, err := redisstore.Open(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up redis: %v", err), err)
	}
	defer func() {
		if err = redisClient.Close(); err != nil {
			logger.Error("failed to close redis client", err)
		}
	}()
	sessions := redisstore.NewSessionStore(redisClient, conf.SessionTTL)

	var notifier core.Notifier
	if conf.Debug {
		notifier = notifsvc.NewConsoleService(logger)
	} else {
		notifier, err = notifsvc.NewFCMService(context.Background(), conf)
		if err != nil {
			logger.Fatal(fmt.Sprintf("setting up FCM: %v", err), err)
		}
	}

	teacherSvc := teacher.NewService(sqlxrepos.NewTeacherRepository(db))
	groupSvc := group.NewService(sqlxrepos.NewGroupRepository(db))
	subjectSvc := subject.NewService(sqlxrepos.NewSubjectRepository(db))
	schedSvc := schedule.NewService(sqlxrepos.NewScheduleRepository(db))
	changeSvc := schedulechange.NewService(sqlxrepos.NewScheduleChangeRepository(db), core.SystemClock)
	linkSvc := teacherlink.NewService(sqlxrepos.NewTeacherLinkRepository(db))

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err = http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			Sessions:   sessions,
			TeacherSvc: teacherSvc,
			GroupSvc:   groupSvc,
			SubjectSvc: subjectSvc,
			SchedSvc:   schedSvc,
			ChangeSvc:  changeSvc,
			LinkSvc:    linkSvc,
			Notifier:   notifier,
			Validate:   validate,
			Translator: translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpDB(conf *core.Config) (*sqlx.DB, error) {
	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}

	if err = database.Ping(db); err != nil {
		return nil, err
	}

	if err = database.Migrate(db.DB); err != nil {
		return nil, err
	}
	return db, nil
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
