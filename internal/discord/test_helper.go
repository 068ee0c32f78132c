package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  = "user-1"
	testGuildID = "guild-1"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// DiscordCall is one captured request to the Discord REST API
type DiscordCall struct {
	Method string
	Path   string
	Body   []byte
}

// EditPayload is the subset of an interaction edit the tests inspect
type EditPayload struct {
	Content    string                    `json:"content"`
	Embeds     []*discordgo.MessageEmbed `json:"embeds"`
	Components []struct {
		Components []struct {
			CustomID string `json:"custom_id"`
			Label    string `json:"label"`
		} `json:"components"`
	} `json:"components"`
}

// CustomIDs flattens the component custom IDs of the edit
func (e EditPayload) CustomIDs() []string {
	var ids []string
	for _, row := range e.Components {
		for _, c := range row.Components {
			ids = append(ids, c.CustomID)
		}
	}
	return ids
}

// TestContext wires a bot to a fake economy API and a capturing Discord transport
type TestContext struct {
	Server       *httptest.Server
	Mux          *http.ServeMux
	APIClient    *APIClient
	Session      *discordgo.Session
	Bot          *Bot
	DiscordMocks *MockRoundTripper

	mu    sync.Mutex
	calls []DiscordCall
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewAPIClient(server.URL, "test-api-key")
	client.retryDelay = time.Millisecond

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	tc := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: client,
		Session:   session,
	}

	tc.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			var body []byte
			if req.Body != nil {
				body, _ = io.ReadAll(req.Body)
			}
			tc.mu.Lock()
			tc.calls = append(tc.calls, DiscordCall{Method: req.Method, Path: req.URL.Path, Body: body})
			tc.mu.Unlock()

			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}
	session.Client = &http.Client{Transport: tc.DiscordMocks}

	registry := NewCommandRegistry()
	registry.Register(EconomyCommand())
	registry.Register(AddItemCommand())

	tc.Bot = &Bot{
		Session:       session,
		Client:        client,
		AppID:         "app-1",
		GuildID:       testGuildID,
		Registry:      registry,
		dailyNotified: expirable.NewLRU[string, struct{}](DailyNotifyCacheSize, nil, DailyNotifyWindow),
	}

	return tc
}

// Calls returns the captured Discord requests, optionally filtered by method
func (tc *TestContext) Calls(method string) []DiscordCall {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	var out []DiscordCall
	for _, c := range tc.calls {
		if method == "" || c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// LastEdit decodes the most recent interaction response edit
func (tc *TestContext) LastEdit(t *testing.T) EditPayload {
	t.Helper()

	edits := tc.Calls(http.MethodPatch)
	require.NotEmpty(t, edits, "expected an interaction response edit")

	var payload EditPayload
	require.NoError(t, json.Unmarshal(edits[len(edits)-1].Body, &payload))
	return payload
}

// HasCall reports whether a request with the method and a path containing fragment was made
func (tc *TestContext) HasCall(method, fragment string) bool {
	for _, c := range tc.Calls(method) {
		if strings.Contains(c.Path, fragment) {
			return true
		}
	}
	return false
}

// WriteJSON writes data as a JSON response
func WriteJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError writes an API error body with status
func WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func componentInteraction(customID string, values ...string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:      "interaction-1",
			AppID:   "app-1",
			Token:   "token-1",
			GuildID: testGuildID,
			Type:    discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{
				CustomID: customID,
				Values:   values,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: testUserID, Username: "Tester"},
			},
		},
	}
}

func commandInteraction(name string, permissions int64, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:      "interaction-1",
			AppID:   "app-1",
			Token:   "token-1",
			GuildID: testGuildID,
			Type:    discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
			Member: &discordgo.Member{
				User:        &discordgo.User{ID: testUserID, Username: "Tester"},
				Permissions: permissions,
			},
		},
	}
}
