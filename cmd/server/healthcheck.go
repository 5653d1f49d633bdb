package main

import (
	"fmt"
	"net"
	"net/http"
	"strconv"

	"devops-info/service/internal/config"
	"devops-info/service/internal/constants"
)

// healthURL targets the loopback interface; HOST is usually a wildcard bind.
func healthURL(cfg config.Config) string {
	return "http://" + net.JoinHostPort("127.0.0.1", strconv.Itoa(int(cfg.Port))) + constants.HealthPath
}

// probe succeeds when url answers 200.
func probe(url string, client *http.Client) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("healthcheck request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("healthcheck returned status %d", resp.StatusCode)
	}
	return nil
}
