// Quotedesk Agent Poller Example
//
// This is a minimal example of an agent-side worker: it polls the pending
// queue for one agent and prices every record it finds with a flat amount.
//
// Usage:
//   export QUOTEDESK_URL="http://localhost:8080"
//   export QUOTEDESK_AGENT="agent1"
//   go run main.go
//
// The agent must already exist in the directory and be part of the active
// pool, otherwise nothing is ever assigned to it.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"
)

// PendingQuote mirrors the records returned by GET /api/v1/quotes/pending.
type PendingQuote struct {
	ID            string `json:"id"`
	Plate         string `json:"plate"`
	AssignedAgent string `json:"assignedAgent"`
	CreatedAt     string `json:"createdAt"`
}

func main() {
	base := os.Getenv("QUOTEDESK_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	agent := os.Getenv("QUOTEDESK_AGENT")
	if agent == "" {
		log.Fatal("QUOTEDESK_AGENT environment variable is required")
	}

	client := &http.Client{Timeout: 10 * time.Second}

	log.Printf("Polling %s as agent %q", base, agent)
	for {
		pending, err := fetchPending(client, base, agent)
		if err != nil {
			log.Printf("fetch pending: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		for _, q := range pending {
			log.Printf("✓ Assigned %s (record %s)", q.Plate, q.ID)
			if err := respond(client, base, q.Plate); err != nil {
				log.Printf("respond %s: %v", q.Plate, err)
			}
		}

		time.Sleep(3 * time.Second)
	}
}

func fetchPending(client *http.Client, base, agent string) ([]PendingQuote, error) {
	endpoint := fmt.Sprintf("%s/api/v1/quotes/pending?user=%s", base, url.QueryEscape(agent))

	resp, err := client.Get(endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var pending []PendingQuote
	if err := json.NewDecoder(resp.Body).Decode(&pending); err != nil {
		return nil, err
	}
	return pending, nil
}

func respond(client *http.Client, base, plate string) error {
	body, err := json.Marshal(map[string]any{
		"plate":   plate,
		"amount":  1000,
		"summary": "<p>Flat demo valuation from the example poller.</p>",
	})
	if err != nil {
		return err
	}

	resp, err := client.Post(base+"/api/v1/quotes/respond", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	log.Printf("  Priced %s", plate)
	return nil
}
