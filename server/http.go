package server

import (
	"fmt"
	"net"
	"net/http"
	"time"
)

// StartHTTPServer blocks serving HTTP on host:port.
func StartHTTPServer(host string, port int, handler http.Handler) error {
	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
