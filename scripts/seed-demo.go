package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/quotedesk/quotedesk/internal/handler/dto"
)

type output struct {
	BaseURL string   `json:"base_url"`
	Agents  []string `json:"agents"`
	Pool    []string `json:"pool"`
}

func main() {
	var (
		baseURL     = flag.String("base-url", envOr("QUOTEDESK_URL", "http://localhost:8080"), "Quotedesk server URL")
		agentsInput = flag.String("agents", "agent1,agent2,agent3", "Comma-separated agent usernames to create")
		credential  = flag.String("credential", "demo-secret", "Credential given to every created agent")
		format      = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	agents := parseAgents(*agentsInput)
	if len(agents) == 0 {
		fmt.Fprintln(os.Stderr, "at least one agent username is required")
		os.Exit(1)
	}

	client := &http.Client{Timeout: 10 * time.Second}

	for _, agent := range agents {
		if err := createUser(client, *baseURL, agent, *credential); err != nil {
			fmt.Fprintln(os.Stderr, "create user:", err)
			os.Exit(1)
		}
	}

	if err := setActivePool(client, *baseURL, agents); err != nil {
		fmt.Fprintln(os.Stderr, "set active pool:", err)
		os.Exit(1)
	}

	out := output{BaseURL: *baseURL, Agents: agents, Pool: agents}
	if *format == "json" {
		_ = json.NewEncoder(os.Stdout).Encode(out)
		return
	}

	fmt.Println("Seeded demo directory:")
	for _, agent := range agents {
		fmt.Printf("  %s (credential %q)\n", agent, *credential)
	}
	fmt.Printf("Active pool: %s\n", strings.Join(agents, ", "))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseAgents(input string) []string {
	parts := strings.Split(input, ",")
	agents := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			agents = append(agents, trimmed)
		}
	}
	return agents
}

func createUser(client *http.Client, baseURL, username, credential string) error {
	resp, err := postJSON(client, baseURL+"/api/v1/users", dto.CreateUserRequest{
		Username:   username,
		Credential: credential,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// A rerun against an already-seeded server hits the conflict path;
	// treat the existing user as seeded.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusConflict {
		return fmt.Errorf("%s: unexpected status %d", username, resp.StatusCode)
	}
	return nil
}

func setActivePool(client *http.Client, baseURL string, agents []string) error {
	body, err := json.Marshal(dto.SetActiveAgentsRequest{Agents: agents})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPut, baseURL+"/api/v1/agents/active", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func postJSON(client *http.Client, url string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return client.Post(url, "application/json", bytes.NewReader(body))
}
