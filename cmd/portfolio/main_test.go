package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordFrom(t *testing.T) {
	p, err := passwordFrom([]string{"from-arg"}, strings.NewReader("ignored\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-arg", p)

	p, err = passwordFrom(nil, strings.NewReader("from-stdin\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-stdin", p)

	p, err = passwordFrom(nil, strings.NewReader("no-newline"))
	require.NoError(t, err)
	assert.Equal(t, "no-newline", p)

	_, err = passwordFrom(nil, strings.NewReader("\n"))
	assert.Error(t, err)
}

func TestHashPasswordCmd(t *testing.T) {
	cmd := newHashPasswordCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("hunter22\n"))
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())

	hash := strings.TrimSpace(out.String())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter22")))
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()
	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "export", "import", "hash-password"})
}
