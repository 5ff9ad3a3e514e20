package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_TrimsLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  a@b.com  \n"))

	got, err := GetSimpleText(r, "Email", &out)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", got)
	assert.Contains(t, out.String(), "Email")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("a@b.com"))

	got, err := GetSimpleText(r, "Email", &out)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", got)
}

func TestGetSimpleText_EmptyEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(r, "Email", &out)
	require.Error(t, err)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(fd int) ([]byte, error) {
		return []byte("secret"), nil
	}

	var out bytes.Buffer
	pw, err := GetPassword(&out, "Password")
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), pw)
	assert.Contains(t, out.String(), "Password: ")
}
