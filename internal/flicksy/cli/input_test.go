package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrompt_TrimsLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  ana  \n"))

	got, err := Prompt(r, "Username", &out)
	require.NoError(t, err)
	require.Equal(t, "ana", got)
	require.Contains(t, out.String(), "Username")
}

func TestPrompt_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("ana"))

	got, err := Prompt(r, "Username", &out)
	require.NoError(t, err)
	require.Equal(t, "ana", got)
}

func TestPrompt_EmptyEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	_, err := Prompt(r, "Username", &out)
	require.Error(t, err)
}

func TestPromptPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte("secret1"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	got, err := PromptPassword(&out, "Password")
	require.NoError(t, err)
	require.Equal(t, "secret1", got)
	require.Contains(t, out.String(), "Password")
}

func TestPromptPassword_Error(t *testing.T) {
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return nil, errors.New("no tty") }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	_, err := PromptPassword(&out, "Password")
	require.Error(t, err)
}
