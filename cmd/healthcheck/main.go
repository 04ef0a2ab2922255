// Command healthcheck probes the formfill health endpoint and exits non-zero
// when the service is not answering "ok". It is used as a container HEALTHCHECK.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"
)

const defaultAddr = "127.0.0.1:8080"

func main() {
	os.Exit(check(os.Getenv("FORMFILL_LISTEN_ADDR")))
}

func check(listenAddr string) int {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	target := fmt.Sprintf("http://%s/api/v1/health", probeAddr(listenAddr))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 1
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 1
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 1
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Status != "ok" {
		return 1
	}
	return 0
}

// probeAddr maps the service's listen address to one the probe can dial from
// inside the same container. Wildcard hosts become loopback.
func probeAddr(listenAddr string) string {
	if listenAddr == "" {
		return defaultAddr
	}

	host, port, err := net.SplitHostPort(listenAddr)
	if err != nil {
		return defaultAddr
	}

	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, port)
}
