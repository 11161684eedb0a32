package commands

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/quorumtest/assert"
)

func TestTestGenCmd(t *testing.T) {
	dir, err := ioutil.TempDir("", "testgen")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	meta := &quorum.Metadata{Schema: 1}
	examples := []Example{{Filename: "metadata", Obj: meta}}
	assert.Nil(t, TestGenCmd(examples, []string{dir}))

	pb, err := ioutil.ReadFile(filepath.Join(dir, "metadata.bin"))
	assert.Nil(t, err)
	var got quorum.Metadata
	assert.Nil(t, got.Unmarshal(pb))
	assert.Equal(t, meta, &got)

	js, err := ioutil.ReadFile(filepath.Join(dir, "metadata.json"))
	assert.Nil(t, err)
	assert.Equal(t, true, len(js) > 0)
}
