/*
File    : monkey/cmd/monkey/main.go

The monkey binary: an interactive REPL by default, plus run/eval/server
modes that all funnel through the same lexer -> parser -> eval pipeline.
*/
package main

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/asha-lang/monkey/eval"
	"github.com/asha-lang/monkey/lexer"
	"github.com/asha-lang/monkey/object"
	"github.com/asha-lang/monkey/parser"
	"github.com/asha-lang/monkey/repl"
)

func main() {
	app := &cli.Command{
		Name:  "monkey",
		Usage: "a tree-walking interpreter for the Monkey language",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable ANSI coloring of REPL and diagnostic output",
			},
		},
		Commands: []*cli.Command{
			runCommand,
			evalCommand,
			replCommand,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			color.NoColor = color.NoColor || cmd.Bool("no-color")
			r := repl.New()
			r.NoColor = cmd.Bool("no-color")
			return r.Start(os.Stdin, os.Stdout)
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "monkey: %v\n", err)
		os.Exit(1)
	}
}

var runCommand = &cli.Command{
	Name:      "run",
	Usage:     "evaluate a .monkey source file as one program",
	ArgsUsage: "<file>",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		path := cmd.Args().First()
		if path == "" {
			return fmt.Errorf("run requires a file argument")
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return runSource(string(src))
	},
}

var evalCommand = &cli.Command{
	Name:  "eval",
	Usage: "evaluate a one-off source string",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "e",
			Usage:    "the source text to evaluate",
			Required: true,
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		return runSource(cmd.String("e"))
	},
}

var replCommand = &cli.Command{
	Name:  "repl",
	Usage: "interactive REPL, or a TCP-served REPL with `serve`",
	Commands: []*cli.Command{
		{
			Name:  "serve",
			Usage: "listen on a TCP port and serve one REPL session per connection",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:     "port",
					Usage:    "TCP port to listen on",
					Required: true,
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return serveRepl(cmd.Int("port"))
			},
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		return repl.New().Start(os.Stdin, os.Stdout)
	},
}

// runSource evaluates src as a single program and prints the final
// statement's value, unless it is Null.
func runSource(src string) error {
	p := parser.New(lexer.New(src))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[%d:%d] %s\n", e.Line, e.Column, e.Message)
		}
		return fmt.Errorf("%d parse errors", len(errs))
	}

	result, evalErr := eval.Eval(program, object.NewEnvironment())
	if evalErr != nil {
		return evalErr
	}

	if display := repl.Display(result); display != "null" {
		fmt.Println(display)
	}
	return nil
}

// serveRepl listens on port and runs one independent REPL session, each
// with its own fresh environment, per accepted connection.
func serveRepl(port int64) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return err
	}
	defer ln.Close()

	fmt.Printf("monkey repl server listening on :%d\n", port)

	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		go handleConn(conn)
	}
}

func handleConn(conn net.Conn) {
	defer conn.Close()
	r := repl.New()
	_ = r.Start(conn, conn)
}
