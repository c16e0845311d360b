package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"owusu1946/portfolio-chat/types"
)

func newChatServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req types.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		last := req.Messages[len(req.Messages)-1].Content
		resp := types.ChatResponse{Content: "you said " + last}
		if strings.Contains(last, "skills") {
			resp = types.ChatResponse{Content: "here", ToolUsed: true, ToolName: "getSkills", ToolResult: "You can see all my skills above."}
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSingleMessage(t *testing.T) {
	srv := newChatServer(t)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--endpoint", srv.URL, "your", "skills"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "### Skills\n\nYou can see all my skills above.\n\nhere\n", out.String())
}

func TestRepl(t *testing.T) {
	srv := newChatServer(t)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("hello\n\n/reload\n/quit\nignored\n"))
	cmd.SetArgs([]string{"--endpoint", srv.URL})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, 2, strings.Count(out.String(), "you said hello"))
	assert.NotContains(t, out.String(), "ignored")
}

func TestStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/turn_activities", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"tool_name":"getContact"},{"tool_name":"getContact"},{}]`))
	}))
	defer srv.Close()
	t.Setenv("SUPABASE_URL", srv.URL)
	t.Setenv("SUPABASE_KEY", "anon-key")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"stats", "--since", "1h"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "3 turns in the last 1h0m0s\ngetContact       2\nnone             1\n", out.String())
}
