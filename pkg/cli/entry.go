package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/funsh/internal/commands"
	"github.com/funvibe/funsh/internal/config"
	"github.com/funvibe/funsh/internal/diagnostics"
	"github.com/funvibe/funsh/internal/history"
	"github.com/funvibe/funsh/internal/lexer"
	"github.com/funvibe/funsh/internal/parser"
	"github.com/funvibe/funsh/internal/pipeline"
	"github.com/funvibe/funsh/internal/shell"
)

// Session wires the shell state, registry, runner and history store
// for one process lifetime.
type Session struct {
	RC     *config.RC
	Shell  *shell.State
	Runner *commands.Runner
	Hist   *history.Store

	Stdout io.Writer
	Stderr io.Writer
}

// NewSession builds a session from the user's rc file and home
// directory. History is best-effort: when the database cannot be
// opened the shell still runs, with the history builtin reporting the
// condition at call time.
func NewSession(stdout, stderr io.Writer) (*Session, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	rc, err := config.LoadRC(filepath.Join(home, config.RCFileName))
	if err != nil {
		return nil, err
	}

	sh, err := shell.NewFromProcess()
	if err != nil {
		return nil, err
	}

	histPath := rc.HistoryFile
	if !filepath.IsAbs(histPath) {
		histPath = filepath.Join(home, histPath)
	}
	hist, histErr := history.Open(histPath)
	if histErr != nil {
		fmt.Fprintf(stderr, "warning: history disabled: %v\n", histErr)
		hist = nil
	}

	registry := commands.Default(hist)
	return &Session{
		RC:     rc,
		Shell:  sh,
		Runner: commands.NewRunner(registry, sh, rc.Aliases),
		Hist:   hist,
		Stdout: stdout,
		Stderr: stderr,
	}, nil
}

func (s *Session) Close() {
	if s.Hist != nil {
		s.Hist.Close()
	}
}

// RunLine lexes, parses and executes one input line. Diagnostics are
// rendered against the line; the return value is the process exit
// code contribution (0 ok, 1 any error).
func (s *Session) RunLine(line, filePath string) int {
	ctx := &pipeline.PipelineContext{SourceCode: line, FilePath: filePath}
	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&runProcessor{session: s},
	)
	ctx = p.Run(ctx)

	for _, out := range ctx.Output {
		fmt.Fprintln(s.Stdout, out)
	}
	for _, err := range ctx.Errors {
		fmt.Fprint(s.Stderr, diagnostics.Render(err, ctx.SourceCode))
	}
	if len(ctx.Errors) > 0 {
		return 1
	}
	return 0
}

// runProcessor is the execution stage: it only runs on a context the
// earlier stages left clean.
type runProcessor struct {
	session *Session
}

func (rp *runProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if len(ctx.Errors) > 0 || ctx.AstRoot == nil {
		return ctx
	}
	values, err := rp.session.Runner.RunPipeline(ctx.AstRoot)
	if err != nil {
		if err.File == "" {
			err.File = ctx.FilePath
		}
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	for _, v := range values {
		ctx.Output = append(ctx.Output, v.Str)
	}
	return ctx
}

// Entry is the process entry point behind cmd/funsh. Modes:
//
//	funsh script.fsh   run a script file, stopping at the first error
//	funsh -c "mv a b"  run one line
//	funsh              interactive when stdin is a terminal,
//	                   otherwise read lines from stdin
func Entry(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	session, err := NewSession(stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "funsh: %v\n", err)
		return 1
	}
	defer session.Close()

	switch {
	case len(args) >= 2 && args[0] == "-c":
		return session.RunLine(args[1], "")
	case len(args) >= 1:
		return runScript(session, args[0])
	default:
		return runStdin(session, stdin)
	}
}

func runScript(session *Session, path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(session.Stderr, "funsh: %v\n", err)
		return 1
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		if code := session.RunLine(line, path); code != 0 {
			return code
		}
	}
	return 0
}

func runStdin(session *Session, stdin io.Reader) int {
	interactive := false
	if f, ok := stdin.(*os.File); ok {
		interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	scanner := bufio.NewScanner(stdin)
	code := 0
	for {
		if interactive {
			fmt.Fprint(session.Stdout, session.RC.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if interactive && session.Hist != nil {
			if err := session.Hist.Append(line); err != nil {
				fmt.Fprintf(session.Stderr, "warning: %v\n", err)
			}
		}
		code = session.RunLine(line, "")
	}
	return code
}
