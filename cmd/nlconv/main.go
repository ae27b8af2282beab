// Command nlconv converts the line endings of text files.
//
// Each named file is rewritten in place. With no files, nlconv copies
// standard input to standard output.
//
//	nlconv --to crlf notes.txt todo.txt
//	nlconv --from lf --to crlf < unix.txt > dos.txt
//
// Input read with --from crlf, the default, also accepts bare '\n'
// and bare '\r' terminators, so any mix of line endings is normalized.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"gopkg.in/urfave/cli.v1"
	"lesiw.io/defers"
	"lesiw.io/fs"
	"lesiw.io/textio"
	"lesiw.io/textio/sys"
)

func main() {
	defer defers.Run()
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		defers.Exit(1)
	}
}

func run(args []string) error {
	app := newApp(context.Background(), sys.FS(), os.Stdin, os.Stdout)
	return app.Run(args)
}

func flags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "from",
			Usage: "Newline convention of the input (lf|crlf)",
			Value: "crlf",
		},
		cli.StringFlag{
			Name:  "to",
			Usage: "Newline convention of the output (lf|crlf)",
			Value: "lf",
		},
		cli.StringFlag{
			Name:  "encoding",
			Usage: "Character encoding of input and output",
			Value: "utf-8",
		},
		cli.IntFlag{
			Name:  "jobs",
			Usage: "Number of files converted at once",
			Value: runtime.GOMAXPROCS(0),
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Trace file opens, flushes, and closes to stderr",
		},
	}
}

func newApp(
	ctx context.Context, fsys fs.FS, stdin io.Reader, stdout io.Writer,
) *cli.App {
	app := cli.NewApp()
	app.Name = "nlconv"
	app.Usage = "convert the line endings of text files"
	app.ArgsUsage = "[file...]"
	app.HideVersion = true
	app.Flags = flags()
	app.Action = func(c *cli.Context) error {
		cfg, err := parseConfig(c)
		if err != nil {
			return err
		}
		if c.Bool("verbose") {
			textio.Trace = os.Stderr
			defer func() { textio.Trace = io.Discard }()
		}
		if c.NArg() == 0 {
			return pipe(stdin, stdout, cfg)
		}
		return convertAll(ctx, fsys, c.Args(), cfg)
	}
	return app
}

type config struct {
	from, to textio.Newline
	enc      encoding.Encoding
	jobs     int
}

func parseConfig(c *cli.Context) (*config, error) {
	from, err := textio.ParseNewline(c.String("from"))
	if err != nil {
		return nil, err
	}
	to, err := textio.ParseNewline(c.String("to"))
	if err != nil {
		return nil, err
	}
	enc, err := htmlindex.Get(c.String("encoding"))
	if err != nil {
		return nil, fmt.Errorf("bad encoding %q: %w",
			c.String("encoding"), err)
	}
	return &config{
		from: from,
		to:   to,
		enc:  enc,
		jobs: max(c.Int("jobs"), 1),
	}, nil
}

// pipe converts standard input to standard output.
// Output is flushed but the streams are left open.
func pipe(stdin io.Reader, stdout io.Writer, cfg *config) error {
	src := textio.NewHandle(
		textio.NewDevice(stdin, nil, textio.WithEncoding(cfg.enc)),
		textio.WithName("<stdin>"),
		textio.WithMode(textio.ReadMode),
		textio.WithNewline(cfg.from),
	)
	dst := textio.NewHandle(
		textio.NewDevice(nil, stdout, textio.WithEncoding(cfg.enc)),
		textio.WithName("<stdout>"),
		textio.WithMode(textio.WriteMode),
		textio.WithNewline(cfg.to),
	)
	defers.Add(func() { _ = dst.Flush() })
	if _, err := textio.Copy(dst, src); err != nil {
		return err
	}
	return dst.Flush()
}

func convertAll(
	ctx context.Context, fsys fs.FS, names []string, cfg *config,
) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.jobs)
	for _, name := range names {
		g.Go(func() error { return convert(ctx, fsys, name, cfg) })
	}
	return g.Wait()
}

func convert(
	ctx context.Context, fsys fs.FS, name string, cfg *config,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	text, err := textio.ReadFile(ctx, fsys, name,
		textio.WithEncoding(cfg.enc), textio.WithNewline(cfg.from))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	err = textio.WriteFile(ctx, fsys, name, text,
		textio.WithEncoding(cfg.enc), textio.WithNewline(cfg.to))
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
