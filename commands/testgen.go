// Package commands holds the subcommands of quorumd that are not part of
// running a node.
package commands

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Example is one object dumped by TestGenCmd as <Filename>.json and
// <Filename>.bin. Client libraries check their codecs against them.
type Example struct {
	Filename string
	Obj      quorum.Marshaller
}

// TestGenCmd writes every example into the directory given as the first
// argument, "testdata" by default.
func TestGenCmd(examples []Example, args []string) error {
	dir := "testdata"
	if len(args) > 0 {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "output directory")
	}
	for _, ex := range examples {
		if err := writeExample(dir, ex); err != nil {
			return errors.Wrap(err, ex.Filename)
		}
	}
	return nil
}

func writeExample(dir string, ex Example) error {
	js, err := json.MarshalIndent(ex.Obj, "", "  ")
	if err != nil {
		return err
	}
	bin, err := ex.Obj.Marshal()
	if err != nil {
		return err
	}
	base := filepath.Join(dir, ex.Filename)
	if err := ioutil.WriteFile(base+".json", js, 0644); err != nil {
		return err
	}
	return ioutil.WriteFile(base+".bin", bin, 0644)
}
