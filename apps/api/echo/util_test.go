package echoapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	echoapi "github.com/studyline/studyline/apps/api/echo"
	"github.com/studyline/studyline/core"
	"github.com/studyline/studyline/core/group"
	"github.com/studyline/studyline/core/schedule"
	"github.com/studyline/studyline/core/schedulechange"
	"github.com/studyline/studyline/core/session"
	"github.com/studyline/studyline/core/subject"
	"github.com/studyline/studyline/core/teacher"
	"github.com/studyline/studyline/core/teacherlink"
	"github.com/studyline/studyline/storage/database/inmemdb"
)

type testLogger struct{}

func (testLogger) Enable(bool)                  {}
func (testLogger) Debug(string, ...interface{}) {}
func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}
func (testLogger) Fatal(string, ...interface{}) {}

// fakeNotifier records sends and fails on demand.
type fakeNotifier struct {
	err    error
	topics []string
}

func (n *fakeNotifier) SendToGroup(_ context.Context, groupID int64) error {
	if n.err != nil {
		return n.err
	}
	n.topics = append(n.topics, "group")
	return nil
}

func (n *fakeNotifier) SendToTeacher(_ context.Context, teacherID int64) error {
	if n.err != nil {
		return n.err
	}
	n.topics = append(n.topics, "teacher")
	return nil
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) clock() time.Time { return c.now }

type testEnv struct {
	server      echoapi.Server
	db          *inmemdb.DB
	sessions    *session.InMemStore
	teacherRepo teacher.Repository
	teacherSvc  *teacher.Service
	notifier    *fakeNotifier
	clock       *fakeClock
}

func setup(t *testing.T) *testEnv {
	t.Helper()

	db := inmemdb.NewDB()
	clk := &fakeClock{now: time.Date(2021, 9, 1, 15, 0, 0, 0, time.UTC)}
	sessions := session.NewInMemStore(0, clk.clock)
	notifier := &fakeNotifier{}

	teacherRepo := inmemdb.NewTeacherRepository(db)
	teacherSvc := teacher.NewService(teacherRepo)

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	server := echoapi.NewServer(echoapi.ServerDeps{
		Conf:       &core.Config{TestMode: true, Env: "TEST"},
		Logger:     testLogger{},
		Sessions:   sessions,
		TeacherSvc: teacherSvc,
		GroupSvc:   group.NewService(inmemdb.NewGroupRepository(db)),
		SubjectSvc: subject.NewService(inmemdb.NewSubjectRepository(db)),
		SchedSvc:   schedule.NewService(inmemdb.NewScheduleRepository(db)),
		ChangeSvc:  schedulechange.NewService(inmemdb.NewScheduleChangeRepository(db), clk.clock),
		LinkSvc:    teacherlink.NewService(inmemdb.NewTeacherLinkRepository(db)),
		Notifier:   notifier,
		Validate:   validate,
		Translator: translator,
	})

	return &testEnv{
		server:      server,
		db:          db,
		sessions:    sessions,
		teacherRepo: teacherRepo,
		teacherSvc:  teacherSvc,
		notifier:    notifier,
		clock:       clk,
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

func (env *testEnv) createTeacher(t *testing.T, login, pwd, role string) teacher.Teacher {
	t.Helper()
	tt := teacher.Teacher{Login: login, FullName: "Test " + login, Role: role}
	if err := tt.SetPassword(pwd); err != nil {
		t.Fatalf("SetPassword() failed: %v", err)
	}
	created, err := env.teacherRepo.CreateTeacher(context.Background(), tt)
	if err != nil {
		t.Fatalf("CreateTeacher() failed: %v", err)
	}
	return created
}

func (env *testEnv) getToken(t *testing.T, tt teacher.Teacher) string {
	t.Helper()
	token, err := env.sessions.Create(context.Background(), tt.ID)
	if err != nil {
		t.Fatalf("sessions.Create() failed: %v", err)
	}
	return token
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	t.Helper()
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
