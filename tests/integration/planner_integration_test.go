// README: Live end-to-end test against a running roam API.
package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

// Requires a running server with at least one provider key set, e.g.
// ROAM_API_BASE_URL=http://localhost:8000. Skipped otherwise.
func TestPlannerConversationFlow(t *testing.T) {
	baseURL := strings.TrimRight(os.Getenv("ROAM_API_BASE_URL"), "/")
	if baseURL == "" {
		t.Skip("ROAM_API_BASE_URL not set; skipping live planner test")
	}
	client := &http.Client{Timeout: 180 * time.Second}
	waitForAPIReady(t, client, baseURL)

	status, body := call(t, client, http.MethodPost, baseURL+"/api/v1/planner/generate", map[string]any{
		"description": "A relaxed 3 day trip to Lisbon with good food and a day trip to Sintra.",
	})
	if status != http.StatusOK {
		t.Fatalf("generate: expected 200, got %d, body=%s", status, body)
	}

	var generated struct {
		SessionID string `json:"session_id"`
		Itinerary string `json:"itinerary"`
		FollowUps []struct {
			Question string `json:"question"`
			Order    int    `json:"order"`
		} `json:"follow_up_questions"`
	}
	if err := json.Unmarshal(body, &generated); err != nil {
		t.Fatalf("generate: unmarshal response: %v, raw=%s", err, body)
	}
	if generated.SessionID == "" || strings.TrimSpace(generated.Itinerary) == "" {
		t.Fatalf("generate: incomplete response: %s", body)
	}
	if !strings.Contains(generated.Itinerary, "# Day") {
		t.Errorf("generate: itinerary has no day headings")
	}
	t.Logf("generated itinerary with %d follow-up questions", len(generated.FollowUps))

	status, body = call(t, client, http.MethodPost, baseURL+"/api/v1/planner/refine", map[string]any{
		"session_id": generated.SessionID,
		"feedback":   "Make day two fully about Sintra and keep evenings low-key.",
	})
	if status != http.StatusOK {
		t.Fatalf("refine: expected 200, got %d, body=%s", status, body)
	}

	status, body = call(t, client, http.MethodGet, baseURL+"/api/v1/planner/sessions/"+generated.SessionID, nil)
	if status != http.StatusOK {
		t.Fatalf("get session: expected 200, got %d, body=%s", status, body)
	}

	status, body = call(t, client, http.MethodDelete, baseURL+"/api/v1/planner/sessions/"+generated.SessionID, nil)
	if status != http.StatusOK {
		t.Fatalf("delete session: expected 200, got %d, body=%s", status, body)
	}

	status, _ = call(t, client, http.MethodGet, baseURL+"/api/v1/planner/sessions/"+generated.SessionID, nil)
	if status != http.StatusNotFound {
		t.Fatalf("get deleted session: expected 404, got %d", status)
	}
}

func call(t *testing.T, client *http.Client, method, url string, payload any) (int, []byte) {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reqBody = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("call %s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, body
}

func waitForAPIReady(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	deadline := time.Now().Add(20 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := client.Get(baseURL + "/health")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("api not ready: GET %s/health did not return 200 in time", baseURL)
}
