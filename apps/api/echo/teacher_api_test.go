package echoapi_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studyline/studyline/core/teacher"
)

func Test_teacherApi_crud(t *testing.T) {
	env := setup(t)
	admin := env.createTeacher(t, "admin", "s3cret", teacher.RoleAdmin)
	token := env.getToken(t, admin)

	// create
	body := marshallObj(t, teacher.NewTeacher{Login: "JDoe", Password: "s3cret", FullName: "John Doe"})
	req, rec := newAuthRequest(http.MethodPost, "/v1/teachers", token, body)
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created teacher.Teacher
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "jdoe", created.Login, "login is cleaned and lowered")
	assert.Equal(t, teacher.RoleDefault, created.Role)
	assert.NotContains(t, rec.Body.String(), "password_hash")

	// duplicate login is a field error
	req, rec = newAuthRequest(http.MethodPost, "/v1/teachers", token, body)
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "login")

	// public listing shows no logins
	req, rec = newRequest(http.MethodGet, "/v1/teachers")
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	var listed []teacher.Public
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)
	assert.NotContains(t, rec.Body.String(), "jdoe")

	// retrieve
	req, rec = newAuthRequest(http.MethodGet, fmt.Sprintf("/v1/teachers/%d", created.ID), token)
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req, rec = newAuthRequest(http.MethodGet, "/v1/teachers/999", token)
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// patch login, name, password
	req, rec = newAuthRequest(http.MethodPatch, fmt.Sprintf("/v1/teachers/%d/login", created.ID), token,
		marshallObj(t, teacher.EditLogin{Login: "jdoe2"}))
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req, rec = newAuthRequest(http.MethodPatch, fmt.Sprintf("/v1/teachers/%d/name", created.ID), token,
		marshallObj(t, teacher.EditFullName{FullName: "Jane Doe"}))
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req, rec = newAuthRequest(http.MethodPatch, fmt.Sprintf("/v1/teachers/%d/password", created.ID), token,
		marshallObj(t, teacher.EditPassword{Password: "changed"}))
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// the new credentials work
	req, rec = newRequest(http.MethodPost, "/v1/login", marshallObj(t, map[string]string{"login": "jdoe2", "password": "changed"}))
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// taking an existing login is rejected
	req, rec = newAuthRequest(http.MethodPatch, fmt.Sprintf("/v1/teachers/%d/login", created.ID), token,
		marshallObj(t, teacher.EditLogin{Login: "admin"}))
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// delete
	req, rec = newAuthRequest(http.MethodDelete, fmt.Sprintf("/v1/teachers/%d", created.ID), token)
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req, rec = newAuthRequest(http.MethodDelete, fmt.Sprintf("/v1/teachers/%d", created.ID), token)
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
