// Command healthcheck exits 0 when the portfolio server's health endpoint
// answers 200 and 1 otherwise. It is meant for container HEALTHCHECK use.
package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"
)

const (
	fallbackAddr = "127.0.0.1:5000"
	healthPath   = "/api/health"
	requestTimeout = 2 * time.Second
)

func main() {
	addr := normalizeAddr(os.Getenv("PORTFOLIO_LISTEN_ADDR"))
	if err := ping(context.Background(), healthURL(addr)); err != nil {
		fmt.Fprintln(os.Stderr, "healthcheck:", err)
		os.Exit(1)
	}
}

// check returns the exit code for the server listening on addr.
func check(addr string) int {
	if err := ping(context.Background(), healthURL(addr)); err != nil {
		return 1
	}
	return 0
}

func healthURL(addr string) string {
	u := url.URL{Scheme: "http", Host: addr, Path: healthPath}
	return u.String()
}

// ping issues one GET against target and fails on anything but 200.
func ping(ctx context.Context, target string) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned %s", target, resp.Status)
	}
	return nil
}

// normalizeAddr turns a listen address into one the health check can dial from
// inside the server's own container. Wildcard hosts become loopback and
// anything unparseable falls back to the default port.
func normalizeAddr(listen string) string {
	host, port, err := net.SplitHostPort(listen)
	if err != nil {
		return fallbackAddr
	}

	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, port)
}
