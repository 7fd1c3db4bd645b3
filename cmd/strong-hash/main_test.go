package main

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/cmosher01/Strong-Password-Hash/hashing"
)

type fakeTerminal struct {
	interactive bool
	password    string
	err         error
	prompt      string
}

func (f *fakeTerminal) IsTerminal() bool { return f.interactive }

func (f *fakeTerminal) ReadPassword(prompt string) ([]byte, error) {
	f.prompt = prompt
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.password), nil
}

func newTestHasher(t *testing.T) *hashing.PasswordHasher {
	t.Helper()
	h, err := hashing.NewPasswordHasher(hashing.Options{Iterations: 1000, SaltLen: 16, KeyLen: 64}, nil)
	if err != nil {
		t.Fatalf("NewPasswordHasher: %v", err)
	}
	return h
}

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestRun_PrintsVerifiableHash(t *testing.T) {
	h := newTestHasher(t)
	tty := &fakeTerminal{interactive: true, password: "correct horse"}
	var out, logs bytes.Buffer

	if code := run(nil, tty, h, &out, newTestLogger(&logs)); code != exitOK {
		t.Fatalf("exit = %d, logs: %s", code, logs.String())
	}
	if tty.prompt != "pass-phrase: " {
		t.Errorf("prompt = %q", tty.prompt)
	}

	stored := strings.TrimSuffix(out.String(), "\n")
	ok, err := h.Verify("correct horse", stored)
	if err != nil || !ok {
		t.Fatalf("printed hash %q does not verify: ok=%v err=%v", stored, ok, err)
	}
}

func TestRun_RejectsArguments(t *testing.T) {
	tty := &fakeTerminal{interactive: true, password: "pw"}
	var out, logs bytes.Buffer

	if code := run([]string{"-x"}, tty, newTestHasher(t), &out, newTestLogger(&logs)); code != exitUsage {
		t.Errorf("exit = %d, want %d", code, exitUsage)
	}
	if tty.prompt != "" {
		t.Error("prompted despite invalid arguments")
	}
}

func TestRun_RequiresTerminal(t *testing.T) {
	tty := &fakeTerminal{interactive: false, password: "pw"}
	var out, logs bytes.Buffer

	if code := run(nil, tty, newTestHasher(t), &out, newTestLogger(&logs)); code != exitError {
		t.Errorf("exit = %d, want %d", code, exitError)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
	if !strings.Contains(logs.String(), errNotTerminal.Error()) {
		t.Errorf("log missing diagnostic: %s", logs.String())
	}
}

func TestRun_EmptyPassword(t *testing.T) {
	tty := &fakeTerminal{interactive: true, password: ""}
	var out, logs bytes.Buffer

	if code := run(nil, tty, newTestHasher(t), &out, newTestLogger(&logs)); code != exitError {
		t.Errorf("exit = %d, want %d", code, exitError)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
	if !strings.Contains(logs.String(), hashing.ErrEmptyPassword.Error()) {
		t.Errorf("log missing diagnostic: %s", logs.String())
	}
}

func TestRun_ReadError(t *testing.T) {
	tty := &fakeTerminal{interactive: true, err: errors.New("tty closed")}
	var out, logs bytes.Buffer

	if code := run(nil, tty, newTestHasher(t), &out, newTestLogger(&logs)); code != exitError {
		t.Errorf("exit = %d, want %d", code, exitError)
	}
	if !strings.Contains(logs.String(), "tty closed") {
		t.Errorf("log missing diagnostic: %s", logs.String())
	}
}
