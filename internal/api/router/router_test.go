package router

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertoielpo/mailgate/internal/api/dto"
	"github.com/albertoielpo/mailgate/internal/api/handlers/mail"
	"github.com/albertoielpo/mailgate/internal/api/respond"
	mocks "github.com/albertoielpo/mailgate/internal/mocks/api/handlers/mail"
)

func setupServer(t *testing.T) (*httptest.Server, *mocks.MockmailService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockmailService(ctrl)
	handler := mail.NewHandler(mockService, validator.New())

	srv := httptest.NewServer(New(handler))
	t.Cleanup(srv.Close)

	return srv, mockService
}

func TestRouter_HealthGet(t *testing.T) {
	srv, _ := setupServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var res respond.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, respond.StatusOK, res.Status)
	assert.Equal(t, "Rust mail up", res.Message)
}

func TestRouter_HealthHead(t *testing.T) {
	srv, _ := setupServer(t)

	resp, err := http.Head(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestRouter_Send(t *testing.T) {
	srv, mockService := setupServer(t)

	payload := dto.SendMailPayload{
		From:     "a@x.com",
		To:       []string{"b@y.com", "c@z.com"},
		Subject:  "Hi",
		Text:     "aGVsbG8=",
		Encoding: "base64",
	}
	body, _ := json.Marshal(dto.SendMailRequest{Mail: &payload})

	mockService.EXPECT().
		Send(gomock.Any(), payload).
		Return("Mail sent to b@y.com, c@z.com", nil)

	resp, err := http.Post(srv.URL+"/send", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var res respond.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, respond.StatusOK, res.Status)
	assert.Equal(t, "Mail sent to b@y.com, c@z.com", res.Message)
}

func TestRouter_SendTrailingSlashNormalized(t *testing.T) {
	srv, mockService := setupServer(t)

	payload := dto.SendMailPayload{
		From:     "a@x.com",
		To:       []string{"b@y.com"},
		Subject:  "Hi",
		Text:     "hello",
		Encoding: "plain",
	}
	body, _ := json.Marshal(dto.SendMailRequest{Mail: &payload})

	mockService.EXPECT().
		Send(gomock.Any(), payload).
		Return("Mail sent to b@y.com", nil)

	resp, err := http.Post(srv.URL+"/send/", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_RequestIDHeader(t *testing.T) {
	srv, _ := setupServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
