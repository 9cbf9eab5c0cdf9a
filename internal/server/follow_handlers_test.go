package server

import (
	"net/http"
	"testing"

	"plume/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowLifecycle(t *testing.T) {
	s, app, _ := newTestServer(t)
	reader := createUser(t, s, "reader")
	createUser(t, s, "leo")

	follow := func() *http.Response {
		req := newGet("/profile/leo/follow")
		req.Header.Set("Authorization", authHeader(t, s, reader))
		return doRequest(t, app, req)
	}
	unfollow := func() *http.Response {
		req := newGet("/profile/leo/unfollow")
		req.Header.Set("Authorization", authHeader(t, s, reader))
		return doRequest(t, app, req)
	}

	// Following twice leaves exactly one edge.
	resp := follow()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/profile/leo", resp.Header.Get("Location"))
	assert.Equal(t, int64(1), countRows(t, s, &models.Follow{}))

	resp = follow()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, int64(1), countRows(t, s, &models.Follow{}))

	// Unfollowing removes it; a second unfollow has no edge to remove.
	resp = unfollow()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, int64(0), countRows(t, s, &models.Follow{}))

	resp = unfollow()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int64(0), countRows(t, s, &models.Follow{}))
}

func TestSelfFollowIsNoop(t *testing.T) {
	s, app, _ := newTestServer(t)
	leo := createUser(t, s, "leo")

	req := newGet("/profile/leo/follow")
	req.Header.Set("Authorization", authHeader(t, s, leo))
	resp := doRequest(t, app, req)

	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/profile/leo", resp.Header.Get("Location"))
	assert.Equal(t, int64(0), countRows(t, s, &models.Follow{}))
}

func TestFollowUnknownAuthor(t *testing.T) {
	s, app, _ := newTestServer(t)
	reader := createUser(t, s, "reader")

	req := newGet("/profile/ghost/follow")
	req.Header.Set("Authorization", authHeader(t, s, reader))
	resp := doRequest(t, app, req)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFollowRequiresAuth(t *testing.T) {
	s, app, _ := newTestServer(t)
	createUser(t, s, "leo")

	resp := doRequest(t, app, newGet("/profile/leo/follow"))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/auth/login?next=%2Fprofile%2Fleo%2Ffollow", resp.Header.Get("Location"))
	assert.Equal(t, int64(0), countRows(t, s, &models.Follow{}))
}

func TestProfileShowsFollowingFlag(t *testing.T) {
	s, app, _ := newTestServer(t)
	reader := createUser(t, s, "reader")
	createUser(t, s, "leo")

	req := newGet("/profile/leo/follow")
	req.Header.Set("Authorization", authHeader(t, s, reader))
	doRequest(t, app, req)

	req = newGet("/profile/leo")
	req.Header.Set("Authorization", authHeader(t, s, reader))
	resp := doRequest(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile struct {
		Following bool  `json:"following"`
		Followers int64 `json:"followers"`
	}
	decodeBody(t, resp, &profile)
	assert.True(t, profile.Following)
	assert.Equal(t, int64(1), profile.Followers)

	// Anonymous viewers never see the flag set.
	resp = doRequest(t, app, newGet("/profile/leo"))
	var anon struct {
		Following bool `json:"following"`
	}
	decodeBody(t, resp, &anon)
	assert.False(t, anon.Following)
}
