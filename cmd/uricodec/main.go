// Command uricodec decodes and encodes URI references and their components.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/pflag"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/log"
)

const usage = `Usage: %s [flags] INPUT...

Decode every INPUT as the selected component and print its parts and canonical form.
With --encode every INPUT is raw text that is escaped as the selected component.

Components: uri, scheme, userinfo, host, port, authority, rpart, path, query, fragment.

Flags:
`

type Command struct {
	OutStream io.Writer
	ErrStream io.Writer

	Component string
	Encode    bool
	JSON      bool
	Dev       bool
	Verbose   bool
	Quiet     bool
	ShowHelp  bool

	Inputs []string

	log *slog.Logger
}

var defaultCommand = &Command{
	OutStream: os.Stdout,
	ErrStream: os.Stderr,
}

func (cmd *Command) ParseArgs(args []string) (exitCode int) {
	flags := pflag.NewFlagSet(args[0], pflag.ContinueOnError)
	flags.SetOutput(cmd.ErrStream)
	flags.Usage = func() {
		fmt.Fprintf(cmd.ErrStream, usage, args[0])
		flags.PrintDefaults()
	}

	flags.StringVarP(&cmd.Component, "component", "c", "uri", "Component to decode or encode")
	flags.BoolVarP(&cmd.Encode, "encode", "e", false, "Escape raw inputs instead of decoding them")
	flags.BoolVarP(&cmd.JSON, "json", "j", false, "Print one JSON object per input")
	flags.BoolVar(&cmd.Dev, "dev", false, "Use the developer log format")
	flags.BoolVarP(&cmd.Verbose, "verbose", "v", false, "Log every result")
	flags.BoolVarP(&cmd.Quiet, "quiet", "q", false, "Disable logging")
	flags.BoolVarP(&cmd.ShowHelp, "help", "h", false, "Show help message")

	if err := flags.Parse(args[1:]); err != nil {
		fmt.Fprintln(cmd.ErrStream, err)
		fmt.Fprintf(cmd.ErrStream, "\nPlease see `%s -h` for more information.\n", args[0])
		return 2
	}
	if cmd.ShowHelp {
		flags.Usage()
		return 0
	}

	cmd.Component = strings.ToLower(cmd.Component)
	if _, ok := decoders[cmd.Component]; !ok {
		fmt.Fprintf(cmd.ErrStream, "invalid argument: unknown component %q\n", cmd.Component)
		return 2
	}
	if _, ok := encoders[cmd.Component]; cmd.Encode && !ok {
		fmt.Fprintf(cmd.ErrStream, "invalid argument: component %q can not be encoded from raw text\n", cmd.Component)
		return 2
	}

	cmd.Inputs = flags.Args()
	if len(cmd.Inputs) == 0 {
		flags.Usage()
		return 2
	}
	return 0
}

func (cmd *Command) Run(args []string) (exitCode int) {
	if code := cmd.ParseArgs(args); code != 0 || cmd.ShowHelp {
		return code
	}

	level := slog.LevelWarn
	if cmd.Verbose {
		level = slog.LevelDebug
	}
	if cmd.Quiet {
		cmd.log = log.Noop
	} else {
		cmd.log = log.New(cmd.ErrStream, cmd.Dev, level)
	}

	enc := json.NewEncoder(cmd.OutStream)
	enc.SetEscapeHTML(false)
	for _, in := range cmd.Inputs {
		res := cmd.process(in)
		if res.Error != "" {
			exitCode = 1
		}

		if cmd.JSON {
			if err := enc.Encode(res); err != nil {
				cmd.log.Error("failed to write result", slog.Any("error", err))
				return 1
			}
			continue
		}
		res.WriteText(cmd.OutStream)
	}
	return exitCode
}

func (cmd *Command) process(in string) Result {
	res := Result{Input: in, Component: cmd.Component}

	if cmd.Encode {
		out, err := encoders[cmd.Component](in)
		if err != nil {
			cmd.logFailure("encode failed", in, err)
			res.Error = err.Error()
			return res
		}
		res.Encoded = out
		cmd.log.Debug("encoded", slog.String("component", cmd.Component), slog.String("output", out))
		return res
	}

	c, err := decoders[cmd.Component](in)
	if err != nil {
		cmd.logFailure("decode failed", in, err)
		res.Error = err.Error()
		return res
	}
	res.Parts = describe(c)
	if res.Encoded, err = c.Encode(); err != nil {
		cmd.log.Error("encode failed", slog.String("component", cmd.Component), slog.Any("error", err))
		res.Error = err.Error()
		return res
	}
	cmd.log.Debug("decoded", slog.String("component", cmd.Component), slog.Any("value", c))
	return res
}

// logFailure logs malformed input at warn level and any other failure at error level.
func (cmd *Command) logFailure(msg, in string, err error) {
	level := slog.LevelError
	if errorutil.IsGrammarErr(err) {
		level = slog.LevelWarn
	}
	cmd.log.Log(context.Background(), level, msg,
		slog.String("component", cmd.Component),
		slog.Any("input", log.StringValue(in)),
		slog.Any("error", err),
	)
}

func main() {
	os.Exit(defaultCommand.Run(os.Args))
}
