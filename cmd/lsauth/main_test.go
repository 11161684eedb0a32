package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/quorumtest/assert"
	"github.com/iov-one/quorum/x/multisig"
)

func TestPrintAddresses(t *testing.T) {
	var out bytes.Buffer
	assert.Nil(t, printAddresses(&out, "iov", false, 2, 3))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, 2, len(lines))

	want := multisig.AuthorityCondition(seq(3)).Address()
	fields := strings.Fields(lines[0])
	assert.Equal(t, "3", fields[0])
	assert.Equal(t, want.String(), fields[1])

	got, err := quorum.ParseAddress("bech32:" + fields[2])
	assert.Nil(t, err)
	assert.Equal(t, want, got)

	got, err = quorum.ParseAddress("base58:" + fields[3])
	assert.Nil(t, err)
	assert.Equal(t, want, got)
}
