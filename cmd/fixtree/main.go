// Command fixtree encodes files with the fixed prefix-code tree, decodes the
// stored bitstrings into images and compares them with the original.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ulikunitz/fixtree/internal/xlog"
)

const version = "v0.1.0"

const usage = `fixtree <command> [OPTION]... [FILE]

fixtree encodes files using a fixed prefix-code tree and decodes the
stored bitstrings into grayscale images.

  fixtree encode  -- encode FILE (default input_image.jpg) into a bitstring
  fixtree decode  -- decode a bitstring FILE (default compressed_image.txt)
                     into an image
  fixtree run     -- encode, store, reload, decode and compare FILE
  fixtree codes   -- print the code table
  fixtree help    -- prints this message
  fixtree version -- prints version information

Use fixtree <command> -h for the options of a command.

Report bugs using <https://github.com/ulikunitz/fixtree/issues>.
`

func main() {
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)
	xlog.SetOutput(os.Stderr, cmdName+": ")

	if len(os.Args) < 2 {
		log.Fatalf("to show help, use %s help", cmdName)
	}

	var err error
	args := os.Args[2:]
	switch os.Args[1] {
	case "help", "-h", "--help":
		fmt.Print(usage)
		os.Exit(0)
	case "version":
		fmt.Printf("fixtree %s\n", version)
		os.Exit(0)
	case "encode":
		err = encodeCmd(os.Stdout, args)
	case "decode":
		err = decodeCmd(os.Stdout, args)
	case "run":
		err = runCmd(os.Stdout, args)
	case "codes":
		err = codesCmd(os.Stdout, args)
	default:
		log.Fatalf("command %q not supported", os.Args[1])
	}
	if err == errHelp {
		os.Exit(0)
	}
	if err != nil {
		xlog.Warn(userError(err))
		os.Exit(1)
	}
}
