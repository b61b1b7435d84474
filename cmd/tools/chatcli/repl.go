package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	modelchat "github.com/dvhelper/backend/internal/model/chat"
	"github.com/dvhelper/backend/internal/model/resource"
	"github.com/dvhelper/backend/internal/service/chat"
)

type repl struct {
	in        *bufio.Scanner
	out       io.Writer
	resources resource.Store
}

func newREPL(in io.Reader, out io.Writer, resources resource.Store) *repl {
	return &repl{
		in:        bufio.NewScanner(in),
		out:       out,
		resources: resources,
	}
}

func (r *repl) run(ctx context.Context, conv *chat.Conversation) error {
	r.printWelcome()

	for {
		snapshot := conv.Snapshot()
		fmt.Fprintf(r.out, "\n[%s]\n> ", snapshot.Placeholder)

		if !r.in.Scan() {
			fmt.Fprintln(r.out)
			return r.in.Err()
		}
		line := strings.TrimSpace(r.in.Text())

		switch line {
		case "":
			continue
		case "/quit", "/exit":
			fmt.Fprintln(r.out, r.resources.Bundle().Footer)
			return nil
		case "/profile":
			r.printProfile(snapshot)
			continue
		}

		before := snapshot.Messages
		if !conv.Submit(ctx, line) {
			continue
		}
		conv.Wait()
		r.printOutcome(conv.Snapshot(), len(before)+1)

		if ctx.Err() != nil {
			return nil
		}
	}
}

func (r *repl) printWelcome() {
	bundle := r.resources.Bundle()
	fmt.Fprintln(r.out, bundle.Welcome)
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Emergency helplines:")
	for _, h := range bundle.Helplines {
		if h.Note != "" {
			fmt.Fprintf(r.out, "  %-32s %s (%s)\n", h.Name, h.Number, h.Note)
			continue
		}
		fmt.Fprintf(r.out, "  %-32s %s\n", h.Name, h.Number)
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, bundle.Disclaimer)
}

// printOutcome prints messages appended after the user's own, or the notice.
func (r *repl) printOutcome(snapshot modelchat.Snapshot, from int) {
	if snapshot.Error != "" {
		fmt.Fprintf(r.out, "\n! %s\n", snapshot.Error)
		return
	}
	for _, m := range snapshot.Messages[min(from, len(snapshot.Messages)):] {
		if m.Role == modelchat.RoleAssistant {
			fmt.Fprintf(r.out, "\nHelper: %s\n", m.Content)
		}
	}
}

func (r *repl) printProfile(snapshot modelchat.Snapshot) {
	p := snapshot.Profile
	if p.Empty() {
		fmt.Fprintln(r.out, "Nothing shared yet.")
		return
	}
	fields := []struct{ label, value string }{
		{"Name", p.Name},
		{"Location", p.Location},
		{"Gender", string(p.Gender)},
		{"Situation", string(p.Situation)},
	}
	for _, f := range fields {
		if f.value != "" {
			fmt.Fprintf(r.out, "%-10s %s\n", f.label+":", f.value)
		}
	}
}
