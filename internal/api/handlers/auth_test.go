package handlers_test

import (
	"net/http"
	"testing"

	"github.com/avoronov/notes-api/internal/testutil"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/assert"
)

func TestAuthHandler_Signup(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		body           string
		setup          func()
		expectedStatus int
		verify         []apitest.Assert
	}{
		{
			name:           "successful signup",
			body:           `{"user_name": "Ann", "user_email": "ann@x.com", "password": "pw123"}`,
			expectedStatus: http.StatusOK,
			verify: []apitest.Assert{
				jsonpath.Equal(`$.user_name`, "Ann"),
				jsonpath.Equal(`$.user_email`, "ann@x.com"),
				jsonpath.Present(`$.user_id`),
			},
		},
		{
			name: "duplicate email",
			body: `{"user_name": "Someone", "user_email": "taken@x.com", "password": "pw123"}`,
			setup: func() {
				testutil.NewUserBuilder().WithEmail("taken@x.com").Build(t, ts.DB.DB)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "missing email",
			body:           `{"user_name": "Ann", "password": "pw123"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing password",
			body:           `{"user_name": "Ann", "user_email": "ann@x.com"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid body",
			body:           `{not json`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			result := apitest.Handler(ts.Router).
				Post("/auth/signup").
				Header("Content-Type", "application/json").
				Body(tt.body).
				Expect(t).
				Status(tt.expectedStatus)

			for _, a := range tt.verify {
				result.Assert(a)
			}
			result.End()
		})
	}
}

func TestAuthHandler_SignupNeverReturnsHash(t *testing.T) {
	ts := testutil.NewTestServer(t)

	apitest.Handler(ts.Router).
		Post("/auth/signup").
		Header("Content-Type", "application/json").
		Body(`{"user_name": "Ann", "user_email": "hash@x.com", "password": "pw123"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.NotPresent(`$.password_hash`)).
		Assert(jsonpath.NotPresent(`$.password`)).
		End()
}

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("login@x.com").
		WithPassword("correctpassword").
		Build(t, ts.DB.DB)

	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
		verify         []apitest.Assert
	}{
		{
			name:           "successful login",
			username:       user.UserEmail,
			password:       rawPassword,
			expectedStatus: http.StatusOK,
			verify: []apitest.Assert{
				jsonpath.Present(`$.access_token`),
				jsonpath.Equal(`$.token_type`, "bearer"),
			},
		},
		{
			name:           "wrong password",
			username:       user.UserEmail,
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown email",
			username:       "nobody@x.com",
			password:       "anypassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing password",
			username:       user.UserEmail,
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := apitest.Handler(ts.Router).
				Post("/auth/login").
				FormData("username", tt.username).
				FormData("password", tt.password).
				Expect(t).
				Status(tt.expectedStatus)

			for _, a := range tt.verify {
				result.Assert(a)
			}
			result.End()
		})
	}
}

func TestAuthHandler_LoginResponsesAreIndistinguishable(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, _ := testutil.NewUserBuilder().
		WithEmail("registered@x.com").
		WithPassword("correctpassword").
		Build(t, ts.DB.DB)

	login := func(username, password string) *http.Response {
		t.Helper()
		result := apitest.Handler(ts.Router).
			Post("/auth/login").
			FormData("username", username).
			FormData("password", password).
			Expect(t).
			Status(http.StatusUnauthorized).
			End()
		return result.Response
	}

	unknownResp := login("unregistered@x.com", "whatever")
	wrongPwResp := login(user.UserEmail, "wrongpassword")

	// Same status, same body: no oracle for whether an email is registered
	assert.Equal(t, unknownResp.StatusCode, wrongPwResp.StatusCode)
	assert.Equal(t, testutil.ReadBody(t, unknownResp), testutil.ReadBody(t, wrongPwResp))
}

func TestAuthHandler_Me(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().
		WithName("Ann").
		WithEmail("me@x.com").
		BuildAndAuthenticate(t, ts)

	apitest.Handler(ts.Router).
		Get("/auth/me").
		Header("Authorization", "Bearer "+token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.user_id`, user.UserID)).
		Assert(jsonpath.Equal(`$.user_name`, "Ann")).
		Assert(jsonpath.Equal(`$.user_email`, "me@x.com")).
		End()

	apitest.Handler(ts.Router).
		Get("/auth/me").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}
