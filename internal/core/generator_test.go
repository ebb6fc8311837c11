package core

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriGen/internal/config"
)

func TestHTTPGeneratorGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/generate" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hello", body["prompt"])

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"result":"hi there"}`)
	}))
	defer server.Close()

	gen := NewHTTPGenerator(server.URL, time.Second)
	text, err := gen.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi there", text)
}

func TestHTTPGeneratorEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":""}`)
	}))
	defer server.Close()

	text, err := NewHTTPGenerator(server.URL, time.Second).Generate(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestHTTPGeneratorFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"result":"ignored"}`},
		{name: "not json", status: http.StatusOK, body: `<html>oops</html>`},
		{name: "missing result", status: http.StatusOK, body: `{"answer":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			_, err := NewHTTPGenerator(server.URL, time.Second).Generate(context.Background(), "x")
			assert.Error(t, err)
		})
	}
}

func TestHTTPGeneratorUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewHTTPGenerator(url, time.Second).Generate(context.Background(), "x")
	assert.Error(t, err)
}

func TestOpenAIGeneratorGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"c1","object":"chat.completion","created":1,"model":"gpt","choices":[{"index":0,"message":{"role":"assistant","content":"hi there"},"finish_reason":"stop"}]}`)
	}))
	defer server.Close()

	gen := NewOpenAIGenerator("sk-test", server.URL+"/v1", "gpt")
	text, err := gen.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi there", text)
}

func TestOpenAIGeneratorNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"c1","object":"chat.completion","created":1,"model":"gpt","choices":[]}`)
	}))
	defer server.Close()

	_, err := NewOpenAIGenerator("sk-test", server.URL+"/v1", "gpt").Generate(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestNewGeneratorSelectsProvider(t *testing.T) {
	t.Setenv("RORIGEN_HOME", t.TempDir())
	t.Setenv("RORIGEN_BACKEND_URL", "")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.IsType(t, &HTTPGenerator{}, NewGenerator(cfg))

	cfg.Profiles["gpt"] = config.Profile{Provider: config.ProviderOpenAI, APIKey: "sk-test"}
	require.NoError(t, cfg.UseProfile("gpt"))
	assert.IsType(t, &OpenAIGenerator{}, NewGenerator(cfg))

	cfg.Profiles["nokey"] = config.Profile{Provider: config.ProviderOpenAI}
	require.NoError(t, cfg.UseProfile("nokey"))
	assert.Nil(t, NewGenerator(cfg))
}
