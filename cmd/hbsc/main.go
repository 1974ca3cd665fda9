package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

func usage() {
	fmt.Println(`hbsc - template precompiler
Usage: hbsc [-v N] <command> [args]

Commands:
  compile <path>   Compile every *.hbs.json syntax tree under path
  help             Show help`)
}

func main() {
	verbosity := flag.Int("v", 0, "log verbosity")
	flag.Usage = usage
	flag.Parse()
	commonlog.Configure(*verbosity, nil)

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}
	switch args[0] {
	case "help":
		usage()
	case "compile":
		path := "."
		if len(args) >= 2 {
			path = args[1]
		}
		if err := compile(path); err != nil {
			fmt.Fprintf(os.Stderr, "compile error: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(1)
	}
}
