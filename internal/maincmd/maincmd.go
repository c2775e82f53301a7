// Package maincmd wires glox's command-line surface: parsing flags, picking
// the right subcommand, and mapping the result onto process exit codes.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/tinylox/glox"
	"github.com/tinylox/glox/internal/config"
)

const binName = "glox"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] [<command>] [<path>]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] [<command>] [<path>]
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the Lox language.

The <command> can be one of:
       run <path>                Execute the script at <path>.
       repl                      Start an interactive prompt. Also the
                                 default when no command is given.
       tokenize <path>           Run the scanner phase and print tokens.
       parse <path>              Run the scanner and parser phases and
                                 print the resulting syntax tree.
       resolve <path>            Run the scanner, parser, and resolver
                                 phases, print the syntax tree, then
                                 execute the script and print the names
                                 bound in the global scope.

If <path> is omitted with no other recognized command word, %[1]s starts
the REPL; if exactly one non-flag argument is given and it does not name
a command above, it is treated as "%[1]s run <path>".

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
`, binName)

	commandNames = map[string]bool{
		"run": true, "repl": true, "tokenize": true, "parse": true, "resolve": true,
	}
)

// Cmd is the glox command-line tool. It is driven through Main, which
// mainer.CurrentStdio() feeds the process's real stdio into.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args []string
}

func (c *Cmd) SetArgs(args []string) {
	c.args = args
}

func (c *Cmd) SetFlags(flags map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	if len(c.args) > 2 {
		return errors.New("too many arguments")
	}

	cmdName, path := c.parseCommand()
	if (cmdName == "tokenize" || cmdName == "parse" || cmdName == "resolve" || cmdName == "run") && path == "" {
		return fmt.Errorf("%s: a script path is required", cmdName)
	}

	return nil
}

// parseCommand interprets c.args as either "<command> [<path>]" or, when
// the first argument isn't a recognized command word, an implicit "run
// <path>" so that "glox script.lox" keeps working the way it always has.
func (c *Cmd) parseCommand() (cmd string, path string) {
	if len(c.args) == 0 {
		return "repl", ""
	}

	if commandNames[c.args[0]] {
		if len(c.args) > 1 {
			return c.args[0], c.args[1]
		}
		return c.args[0], ""
	}

	return "run", c.args[0]
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: "GLOX_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	cmdName, path := c.parseCommand()

	switch cmdName {
	case "run":
		return c.runFile(stdio, path)
	case "repl":
		return c.repl(stdio)
	case "tokenize":
		if err := Tokenize(ctx, stdio, path); err != nil {
			return mainer.Failure
		}
		return mainer.Success
	case "parse":
		if err := Parse(ctx, stdio, path); err != nil {
			return mainer.Failure
		}
		return mainer.Success
	case "resolve":
		if err := Resolve(ctx, stdio, path); err != nil {
			return mainer.Failure
		}
		return mainer.Success
	}

	fmt.Fprintf(stdio.Stderr, "unknown command: %s\n%s", cmdName, shortUsage)
	return mainer.InvalidArgs
}

// runFile and repl go straight to the glox.Runtime driver rather than
// through the Success/Failure mapping of the other commands. runFile
// returns the exact 0/64/70 exit code a Lox script expects, not a
// flattened success/failure bit. repl returns Success once the prompt loop
// ends; an error on a REPL line does not change its exit code.
func (c *Cmd) runFile(stdio mainer.Stdio, path string) mainer.ExitCode {
	runtime := glox.NewRuntimeWithStdio(stdio.Stdout, stdio.Stderr)
	return mainer.ExitCode(runtime.RunFileExitCode(path))
}

func (c *Cmd) repl(stdio mainer.Stdio) mainer.ExitCode {
	runtime := glox.NewRuntimeWithStdio(stdio.Stdout, stdio.Stderr)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid configuration: %s\n", err)
		return mainer.InvalidArgs
	}

	runtime.SetPrompt(cfg.Prompt)

	if cfg.HistoryFile != "" {
		f, err := os.OpenFile(cfg.HistoryFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(stdio.Stderr, "could not open history file: %s\n", err)
			return mainer.Failure
		}
		defer f.Close()
		runtime.SetHistoryWriter(f)
	}

	runtime.RunPromptIO(stdio.Stdin)
	return mainer.Success
}
