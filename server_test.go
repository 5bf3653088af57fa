package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"student-directory/config"
)

func TestNewServer(t *testing.T) {
	cfg := &config.Config{
		ServerPort:   "3902",
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 4 * time.Second,
	}
	h := http.NewServeMux()

	srv := newServer(cfg, h)

	assert.Equal(t, ":3902", srv.Addr)
	assert.Equal(t, 3*time.Second, srv.ReadTimeout)
	assert.Equal(t, 4*time.Second, srv.WriteTimeout)
	assert.Same(t, h, srv.Handler)
}

func TestRunReturnsListenError(t *testing.T) {
	srv := newServer(&config.Config{ServerPort: "not-a-port"}, http.NewServeMux())

	err := run(srv, time.Second)
	assert.Error(t, err)
}
