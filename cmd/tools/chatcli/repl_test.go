package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	modelchat "github.com/dvhelper/backend/internal/model/chat"
	"github.com/dvhelper/backend/internal/model/resource"
	"github.com/dvhelper/backend/internal/service/chat"
)

type replyCompleter struct {
	reply string
	err   error
}

func (c replyCompleter) Complete(context.Context, modelchat.CompletionRequest) (string, error) {
	return c.reply, c.err
}

func runScript(t *testing.T, completer replyCompleter, script string) string {
	t.Helper()
	var out bytes.Buffer
	conv := chat.NewConversation("cli", completer)
	r := newREPL(strings.NewReader(script), &out, resource.NewMemoryStore(resource.Seed()))
	assert.NoError(t, r.run(context.Background(), conv))
	return out.String()
}

func TestREPLPrintsReplyAndProfile(t *testing.T) {
	out := runScript(t, replyCompleter{reply: "Stay safe, Priya."},
		"I am Priya from Mumbai\n/profile\n/quit\n")

	assert.Contains(t, out, "Emergency helplines:")
	assert.Contains(t, out, "1091")
	assert.Contains(t, out, "Helper: Stay safe, Priya.")
	assert.Contains(t, out, "Name:      Priya")
	assert.Contains(t, out, "Location:  Mumbai")
	assert.Contains(t, out, "Priya, share what's on your mind")
	assert.Contains(t, out, "You are not alone.")
}

func TestREPLPrintsFallbackNotice(t *testing.T) {
	out := runScript(t, replyCompleter{err: errors.New("boom")}, "help me\n")

	assert.Contains(t, out, chat.FallbackNotice)
	assert.NotContains(t, out, "Helper:")
}

func TestREPLEmptyProfile(t *testing.T) {
	out := runScript(t, replyCompleter{}, "/profile\n")
	assert.Contains(t, out, "Nothing shared yet.")
}
