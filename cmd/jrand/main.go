// Command jrand prints java.util.Random reference vectors and descrambles
// page images whose tiles were shuffled with a java.util.Random seed.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"github.com/Nebu1eto/javarandom/internal/config"
	"github.com/Nebu1eto/javarandom/internal/logging"
)

const usage = `Usage: jrand <command> [options]

Commands:
  vectors                 : print reference vectors for a seed
  descramble <json_file>  : download and descramble the pages listed in a JSON file

Run "jrand <command> -h" for the options of a command.
`

// common flags shared by every command
type common struct {
	configPath string
	logLevel   string
	dumpConfig bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "path to a TOML config file")
	fs.StringVar(&c.logLevel, "l", "", "log level [debug,info,warn,error,silent]")
	fs.BoolVar(&c.dumpConfig, "dump-config", false, "print the effective config and exit")
}

// load reads the config file, if any, then applies flag overrides for the
// flags that were set on the command line.
func (c *common) load(fs *flag.FlagSet, apply func(conf *config.Config, set map[string]bool)) (config.Config, zerolog.Logger, error) {
	conf := config.Default()
	if c.configPath != "" {
		var err error
		if conf, err = config.Load(c.configPath); err != nil {
			return conf, zerolog.Nop(), err
		}
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["l"] {
		conf.LogLevel = c.logLevel
	}
	apply(&conf, set)
	if err := conf.Validate(); err != nil {
		return conf, zerolog.Nop(), err
	}

	log, err := logging.New(conf.LogLevel, os.Stderr)
	if err != nil {
		return conf, log, err
	}
	if c.dumpConfig {
		spew.Fdump(os.Stdout, conf)
		os.Exit(0)
	}
	log.Debug().Str("config", spew.Sdump(conf)).Msg("effective config")
	return conf, log, nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "vectors":
		err = runVectors(os.Args[2:])
	case "descramble":
		err = runDescramble(os.Args[2:])
	case "-h", "--help", "help":
		fmt.Fprint(os.Stdout, usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
