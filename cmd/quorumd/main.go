package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/cmd/quorumd/app"
	"github.com/iov-one/quorum/commands"
	"github.com/iov-one/quorum/commands/server"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	flagHome     = "home"
	flagLogLevel = "log_level"
	flagLogDir   = "log_dir"
	flagLogRolls = "log_rolls"

	varHome     *string
	varLogLevel *string
	varLogDir   *string
	varLogRolls *int
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".quorum")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")
	varLogLevel = flag.String(flagLogLevel, "info", "lowest level that is logged: debug, info, error or none")
	varLogDir = flag.String(flagLogDir, "", "directory to write rotated log files to")
	varLogRolls = flag.Int(flagLogRolls, 3, "number of rotated log files to keep")

	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Println("quorum")
	fmt.Println("        Multi-owner transaction authorization node")
	fmt.Println("")
	fmt.Println("help     Print this message")
	fmt.Println("init     Initialize app options in genesis file")
	fmt.Println("start    Run the abci server")
	fmt.Println("testgen  Write example encodings to a directory")
	fmt.Println("validate Check the app_state of genesis files")
	fmt.Println("version  Print the app version")
	fmt.Println(`
  -home string
        directory to store files under (default "$HOME/.quorum")
  -log_level string
        lowest level that is logged: debug, info, error or none (default "info")
  -log_dir string
        directory to write rotated log files to (default only stdout)
  -log_rolls int
        number of rotated log files to keep (default 3)`)
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	level, err := log.AllowLevel(*varLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	out, closeLog, err := newLogOutput(*varLogDir, *varLogRolls)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
	logger := log.NewFilter(log.NewTMLogger(log.NewSyncWriter(out)), level).
		With("module", "quorum")

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(app.GenInitOptions, logger, *varHome, rest)
	case "start":
		err = server.StartCmd(app.GenerateApp, logger, *varHome, rest)
	case "testgen":
		err = commands.TestGenCmd(app.Examples(), rest)
	case "validate":
		err = server.ValidateGenesis(app.Initializers(), rest)
	case "version":
		fmt.Println(quorum.Version())
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	closeLog()
	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}
