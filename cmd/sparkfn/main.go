// Command sparkfn evaluates Spark SQL string and digest functions from the
// command line, over files of expressions, or inside SQLite queries.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	sferrors "github.com/FocuswithJustin/sparkfn/core/errors"
	"github.com/FocuswithJustin/sparkfn/core/sparksql"
	"github.com/FocuswithJustin/sparkfn/core/sqlite"
	"github.com/FocuswithJustin/sparkfn/internal/expr"
	"github.com/FocuswithJustin/sparkfn/internal/input"
	"github.com/FocuswithJustin/sparkfn/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for sparkfn.
type CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" default:"warn" env:"SPARKFN_LOG_LEVEL" enum:"debug,info,warn,error" help:"Log level (${enum})"`
	LogFormat string `name:"log-format" default:"text" env:"SPARKFN_LOG_FORMAT" enum:"json,text" help:"Log format (${enum})"`

	Eval      EvalCmd      `cmd:"" help:"Evaluate one or more expressions"`
	Batch     BatchCmd     `cmd:"" help:"Evaluate a file of expressions, one per line"`
	Functions FunctionsCmd `cmd:"" help:"List available functions"`
	Query     QueryCmd     `cmd:"" help:"Run SQL with the functions registered in SQLite"`
	Version   VersionCmd   `cmd:"" help:"Print version information"`
}

// runtime carries what every command needs. It is bound into kong so Run
// methods receive it as a parameter.
type runtime struct {
	ctx      context.Context
	stdout   io.Writer
	stdin    io.Reader
	registry *sparksql.Registry
}

// EvalCmd evaluates expressions given as arguments.
type EvalCmd struct {
	Exprs []string `arg:"" name:"expr" help:"Expression such as \"substr('Spark', 2)\""`
}

func (c *EvalCmd) Run(rt *runtime) error {
	for _, src := range c.Exprs {
		v, err := evaluate(rt, src)
		if err != nil {
			return err
		}
		fmt.Fprintln(rt.stdout, sparksql.Format(v))
	}
	return nil
}

// BatchCmd evaluates a file of expressions.
type BatchCmd struct {
	File     string `arg:"" help:"Expression file (.gz and .xz accepted); - reads stdin"`
	FailFast bool   `name:"fail-fast" help:"Stop at the first failing expression"`
}

func (c *BatchCmd) Run(rt *runtime) error {
	var r *input.Reader
	if c.File == "-" {
		r = input.NewReader(rt.stdin, "stdin")
	} else {
		var err error
		if r, err = input.Open(c.File); err != nil {
			return err
		}
	}
	defer r.Close()

	ctx := logging.WithRunID(rt.ctx, uuid.NewString())
	brt := *rt
	brt.ctx = ctx

	start := time.Now()
	evaluated, failed := 0, 0
	err := r.Iterate(func(lineNo int, line string) (bool, error) {
		evaluated++
		v, err := evaluate(&brt, line, "line", lineNo)
		if err != nil {
			failed++
			fmt.Fprintf(rt.stdout, "ERROR line %d: %v\n", lineNo, err)
			return c.FailFast, nil
		}
		fmt.Fprintln(rt.stdout, sparksql.Format(v))
		return false, nil
	})
	if err != nil {
		return err
	}

	logging.BatchSummary(ctx, r.Name(), evaluated, failed, time.Since(start))
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, evaluated)
	}
	return nil
}

// FunctionsCmd lists the registry.
type FunctionsCmd struct{}

func (c *FunctionsCmd) Run(rt *runtime) error {
	for _, fn := range rt.registry.GetAllFunctions() {
		fmt.Fprintf(rt.stdout, "%-16s %s\n", fn.Name(), arity(fn))
	}
	return nil
}

// arity renders the accepted argument count, e.g. "2" or "2-3".
func arity(fn sparksql.Function) string {
	if r, ok := fn.(interface{ ArgRange() (int, int) }); ok {
		if lo, hi := r.ArgRange(); lo != hi {
			return fmt.Sprintf("%d-%d", lo, hi)
		}
	}
	return fmt.Sprintf("%d", fn.NumArgs())
}

// QueryCmd runs SQL against SQLite with every function installed.
type QueryCmd struct {
	SQL      string `arg:"" name:"sql" help:"SQL statement to run"`
	Database string `name:"db" help:"SQLite database file (default: in-memory)" type:"path"`
	Header   bool   `name:"header" help:"Print column names first"`
}

func (c *QueryCmd) Run(rt *runtime) error {
	var db *sql.DB
	var err error
	if c.Database == "" {
		db, err = sqlite.OpenMemory()
	} else {
		db, err = sqlite.Open(c.Database)
	}
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := db.QueryContext(rt.ctx, c.SQL)
	if err != nil {
		return sferrors.Wrap(err, "query")
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return sferrors.Wrap(err, "columns")
	}
	if c.Header {
		fmt.Fprintln(rt.stdout, strings.Join(cols, "\t"))
	}

	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	cells := make([]string, len(cols))
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return sferrors.Wrap(err, "scan")
		}
		for i, v := range vals {
			cells[i] = formatCell(v)
		}
		fmt.Fprintln(rt.stdout, strings.Join(cells, "\t"))
	}
	return rows.Err()
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		// Some drivers hand TEXT columns back as bytes.
		if utf8.Valid(x) {
			return string(x)
		}
		return sparksql.Format(sparksql.NewBinaryValue(x))
	default:
		return fmt.Sprint(x)
	}
}

type VersionCmd struct{}

func (c *VersionCmd) Run(rt *runtime) error {
	info := sqlite.GetInfo()
	fmt.Fprintf(rt.stdout, "sparkfn version %s (sqlite driver %s, %s)\n", version, info.DriverType, info.Package)
	return nil
}

// Helper functions

// evaluate parses and evaluates src, logging the call.
func evaluate(rt *runtime, src string, logArgs ...any) (sparksql.Value, error) {
	e, err := expr.Parse(src)
	if err != nil {
		logging.FunctionError(rt.ctx, "parse", err, logArgs...)
		return nil, err
	}
	start := time.Now()
	v, err := e.Eval(rt.registry)
	if err != nil {
		logging.FunctionError(rt.ctx, e.FunctionName(), err, logArgs...)
		return nil, err
	}
	logging.FunctionCall(rt.ctx, e.FunctionName(), time.Since(start), logArgs...)
	return v, nil
}

// run parses args and executes the selected command.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("sparkfn"),
		kong.Description("Spark SQL string and digest functions"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cli.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(cli.LogFormat)
	if err != nil {
		return err
	}
	logging.SetOutput(stderr, level, format)

	rt := &runtime{
		ctx:      context.Background(),
		stdout:   stdout,
		stdin:    stdin,
		registry: sparksql.DefaultRegistry(),
	}
	return kctx.Run(rt)
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "sparkfn: %v\n", err)
		os.Exit(1)
	}
}
