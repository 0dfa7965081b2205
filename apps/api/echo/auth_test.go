package echoapi_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	echoapi "github.com/studyline/studyline/apps/api/echo"
	"github.com/studyline/studyline/core/teacher"
)

var (
	errUnauthenticated = httpErr{Error: "unauthenticated"}
	errForbidden       = httpErr{Error: "permission denied"}
	errAuthFailed      = httpErr{Error: "authentication failed"}
)

func Test_login(t *testing.T) {
	env := setup(t)
	tchr := env.createTeacher(t, "jdoe", "s3cret", teacher.RoleDefault)

	tests := []httpTest{
		{
			name: "empty body", body: []byte(`{}`), wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown login", body: marshallObj(t, echoapi.LoginRequest{Login: "nobody", Password: "s3cret"}),
			wantCode: http.StatusBadRequest, wantData: marshallObj(t, errAuthFailed),
		},
		{
			name: "wrong password", body: marshallObj(t, echoapi.LoginRequest{Login: "jdoe", Password: "nope"}),
			wantCode: http.StatusBadRequest, wantData: marshallObj(t, errAuthFailed),
		},
		{
			name: "ok", body: marshallObj(t, echoapi.LoginRequest{Login: "jdoe", Password: "s3cret"}),
			wantCode: http.StatusOK,
		},
		{
			name: "login is case-insensitive", body: marshallObj(t, echoapi.LoginRequest{Login: " JDoe ", Password: "s3cret"}),
			wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/login", tt.body)
			env.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)

			if tt.wantCode == http.StatusOK {
				var resp echoapi.LoginResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Token)
				assert.Equal(t, tchr.ID, resp.ID)
				assert.Equal(t, teacher.RoleDefault, resp.Role)
			}
		})
	}
}

func Test_logout(t *testing.T) {
	env := setup(t)
	admin := env.createTeacher(t, "admin", "s3cret", teacher.RoleAdmin)
	token := env.getToken(t, admin)

	// token works before logout
	req, rec := newAuthRequest(http.MethodGet, "/v1/teachers/1", token)
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req, rec = newRequest(http.MethodPost, "/v1/logout", marshallObj(t, echoapi.LogoutRequest{Token: token}))
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// and is dead after
	req, rec = newAuthRequest(http.MethodGet, "/v1/teachers/1", token)
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// logging out twice is fine
	req, rec = newRequest(http.MethodPost, "/v1/logout", marshallObj(t, echoapi.LogoutRequest{Token: token}))
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func Test_sessionAuth(t *testing.T) {
	env := setup(t)
	admin := env.createTeacher(t, "admin", "s3cret", teacher.RoleAdmin)
	plain := env.createTeacher(t, "plain", "s3cret", teacher.RoleDefault)

	tests := []httpTest{
		{
			name: "missing token", wantCode: http.StatusUnauthorized,
			wantData: marshallObj(t, errUnauthenticated),
		},
		{
			name: "malformed header", token: "", wantCode: http.StatusUnauthorized,
			wantData: marshallObj(t, errUnauthenticated),
		},
		{
			name: "unknown token", token: "bogus", wantCode: http.StatusUnauthorized,
			wantData: marshallObj(t, errUnauthenticated),
		},
		{
			name: "non-admin denied", token: env.getToken(t, plain), wantCode: http.StatusForbidden,
			wantData: marshallObj(t, errForbidden),
		},
		{
			name: "admin allowed", token: env.getToken(t, admin), wantCode: http.StatusCreated,
		},
	}
	body := marshallObj(t, teacher.NewTeacher{Login: "newbie", Password: "pwd12345", FullName: "New Teacher"})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/v1/teachers", tt.token, body)
			if tt.name == "malformed header" {
				req.Header.Set("Authorization", "Basic abc")
			}
			env.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_sessionAuth_expiredToken(t *testing.T) {
	env := setup(t)
	admin := env.createTeacher(t, "admin", "s3cret", teacher.RoleAdmin)
	token := env.getToken(t, admin)

	env.clock.now = env.clock.now.Add(25 * time.Hour)

	req, rec := newAuthRequest(http.MethodGet, "/v1/teachers/1", token)
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_publicEndpointsNeedNoToken(t *testing.T) {
	env := setup(t)

	paths := []string{
		"/v1/groups",
		"/v1/teachers",
		"/v1/subjects/group/1",
		"/v1/schedule/1",
		"/v1/schedule-changes/1",
		"/v1/teacher-links/1",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, path)
			env.server.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
