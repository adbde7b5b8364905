package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/peterh/liner"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"js2ts/internal/ast"
	"js2ts/internal/binder"
	"js2ts/internal/config"
	"js2ts/internal/diag"
	"js2ts/internal/emitter"
	"js2ts/internal/infer"
	"js2ts/internal/lexer"
	"js2ts/internal/parser"
)

const (
	appName     = "js2ts"
	historyFile = ".js2ts_history"
	prompt      = ">> "

	usage = `usage:
  js2ts convert [flags] file.js [file2.js ...]   annotate files as TypeScript
  js2ts repl    [flags]                          interactive inference loop

flags:
  -min-confidence N   suppress annotations below this confidence (default 0.5)
  -out DIR            write generated .ts files into DIR
  -debug              dump the parsed syntax tree
`
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "convert":
		err = runConvert(os.Args[2:])
	case "repl":
		err = runREPL(os.Args[2:])
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n\n%s", appName, os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func runConvert(args []string) error {
	settings, files, err := config.Load(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("convert needs at least one input file")
	}
	if settings.OutDir != "" {
		if err := os.MkdirAll(settings.OutDir, 0o755); err != nil {
			return err
		}
	}

	for _, path := range files {
		if err := convertFile(path, settings); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// convertFile runs the whole pipeline for one translation unit: its own
// context, so inference state never leaks between files.
func convertFile(path string, settings *config.Settings) error {
	src, err := readSource(path)
	if err != nil {
		return err
	}

	p := parser.New(lexer.New(src))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, diag.Render(src, e))
		}
		return fmt.Errorf("%d parse error(s)", len(errs))
	}
	if settings.Debug {
		spew.Fdump(os.Stderr, program)
	}

	ctx := infer.NewTypeContext()
	binder.Bind(program, ctx)
	out := emitter.New(ctx, settings.MinConfidence).Emit(program)

	dest := outputPath(path, settings.OutDir)
	return os.WriteFile(dest, []byte(out), 0o644)
}

// readSource reads a file and decodes it tolerating UTF-8, UTF-16LE and
// UTF-16BE byte order marks.
func readSource(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

func outputPath(input, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".ts"
	if outDir == "" {
		return filepath.Join(filepath.Dir(input), base)
	}
	return filepath.Join(outDir, base)
}

func runREPL(args []string) error {
	settings, _, err := config.Load(args)
	if err != nil {
		return err
	}

	fmt.Println("js2ts repl - type JavaScript, get inferred types. Ctrl+D to exit.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	// One context for the whole session: bindings accumulate line to line.
	ctx := infer.NewTypeContext()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			// Ctrl+C aborts the current input.
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		replLine(line, ctx, settings)
		ln.AppendHistory(line)
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return nil
}

func replLine(src string, ctx *infer.TypeContext, settings *config.Settings) {
	p := parser.New(lexer.New(src))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Println(diag.Render(src, e))
		}
		return
	}
	if settings.Debug {
		spew.Dump(program)
	}

	binder.Bind(program, ctx)
	for _, stmt := range program.Statements {
		if report := describeStatement(stmt, ctx); report != "" {
			fmt.Println(report)
		}
	}
}

// describeStatement prints what inference concluded about one REPL input.
func describeStatement(stmt ast.Statement, ctx *infer.TypeContext) string {
	switch s := stmt.(type) {
	case *ast.VarStatement:
		t, _ := ctx.Lookup(s.Name.Value)
		return fmt.Sprintf("%s: %s", s.Name.Value, t)
	case *ast.FunctionDeclaration:
		t, _ := ctx.Lookup(s.Name.Value)
		return fmt.Sprintf("%s: %s", s.Name.Value, t)
	case *ast.ImportStatement:
		return "import recorded"
	case *ast.ExpressionStatement:
		return infer.InferExpressionType(s.Expression, ctx).String()
	default:
		return ""
	}
}
