// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

// apidoc renders CommonMark API reference pages from an API model.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/apidoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/apidoc"
	_buildTime string
)

// cliOptions describes apidoc CLI flags and subcommands.
type cliOptions struct {
	Global globalFlags `group:"Global Options"`

	Version        versionCommand        `command:"version" description:"Print version information"`
	Template       templateCommand       `command:"template" description:"Print built-in markdown template"`
	EnumToMarkdown enumToMarkdownCommand `command:"enum2md" description:"Render enum reference page as markdown"`
	Order          orderCommand          `command:"order" description:"Print ordered members of an item"`
	Tree           treeCommand           `command:"tree" description:"Print member tree of an item"`
}

// globalFlags groups flags shared by all subcommands.
type globalFlags struct {
	ConfigPath string `short:"c" long:"config" description:"Path to YAML or TOML config file"`
	Verbose    bool   `short:"v" long:"verbose" description:"Print debug diagnostics to stderr"`
}

// modelArgs groups model selection positional arguments.
type modelArgs struct {
	Model     string `positional-arg-name:"model" description:"API model file path (.json, .yaml or .yml)" required:"yes"`
	Reference string `positional-arg-name:"reference" description:"Canonical reference of the item" required:"yes"`
}

// orderFlags groups custom member order flags.
type orderFlags struct {
	Order []string `short:"o" long:"order" description:"Member display name rendered first; repeat to set custom order"`
}

// markdownRenderFlags groups markdown rendering flags.
type markdownRenderFlags struct {
	Order         []string `short:"o" long:"order" description:"Member display name rendered first; repeat to set custom order"`
	TemplateName  string   `short:"t" long:"template" description:"Built-in template style" choice:"list" choice:"table"`
	TemplatePath  string   `short:"f" long:"template-file" description:"Path to custom markdown template (.gotmpl)"`
	SourceBaseURL string   `short:"s" long:"source-url" description:"Base URL prepended to item source file paths"`
	MembersTitle  string   `long:"members-title" description:"Label of members section"`
	ListMarker    string   `short:"l" long:"list-marker" description:"Unordered list marker for normalized descriptions" choice:"-" choice:"*"`
	HeadingLevel  int      `short:"H" long:"heading-level" description:"Markdown level of the page heading (1-6)"`
	WrapWidth     int      `short:"w" long:"wrap" description:"Wrap width for plain text descriptions"`
	Since         bool     `long:"since" description:"Append since tags to headings"`
}

// enumToMarkdownCommand renders one enum page.
type enumToMarkdownCommand struct {
	runner *cliRunner
	Args   struct {
		Model     string `positional-arg-name:"model" description:"API model file path (.json, .yaml or .yml)" required:"yes"`
		Reference string `positional-arg-name:"reference" description:"Canonical reference of the item" required:"yes"`
		Output    string `positional-arg-name:"output" description:"Output markdown file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	RenderFlags markdownRenderFlags `group:"Markdown Render"`
}

// Execute runs enum2md subcommand.
func (command *enumToMarkdownCommand) Execute(_ []string) error {
	args := modelArgs{Model: command.Args.Model, Reference: command.Args.Reference}
	return command.runner.runEnumToMarkdown(args, command.RenderFlags, command.Args.Output)
}

// orderCommand prints ordered members.
type orderCommand struct {
	runner *cliRunner
	Args   modelArgs `positional-args:"yes"`

	OrderFlags orderFlags `group:"Member Order"`
	Format     string     `short:"F" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
}

// Execute runs order subcommand.
func (command *orderCommand) Execute(_ []string) error {
	return command.runner.runOrder(command.Args, command.OrderFlags.Order, command.Format)
}

// treeCommand prints member tree.
type treeCommand struct {
	runner *cliRunner
	Args   modelArgs `positional-args:"yes"`

	OrderFlags orderFlags `group:"Member Order"`
}

// Execute runs tree subcommand.
func (command *treeCommand) Execute(_ []string) error {
	return command.runner.runTree(command.Args, command.OrderFlags.Order)
}

// templateCommand exports built-in markdown template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateName string `short:"t" long:"template" description:"Built-in template style" choice:"list" choice:"table" default:"list"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateName, command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	command.runner.printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdout      io.Writer
	stderr      io.Writer
	global      *globalFlags
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "apidoc"
	}

	runner := cliRunner{
		programName: filepath.Base(programName),
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// logger builds stderr logger honoring verbose flag.
func (runner *cliRunner) logger() *slog.Logger {
	level := slog.LevelWarn
	if runner.global != nil && runner.global.Verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(runner.stderr, &slog.HandlerOptions{Level: level}))
}

// config loads optional config file from global flags.
func (runner *cliRunner) config() (fileConfig, error) {
	if runner.global == nil {
		return fileConfig{}, nil
	}

	return loadFileConfig(runner.global.ConfigPath)
}

// loadModel reads API model file into a registry.
func (runner *cliRunner) loadModel(path string, logger *slog.Logger) (*apidoc.Registry, error) {
	registry, err := apidoc.LoadModelFile(path)
	if err != nil {
		return nil, fmt.Errorf("load model %q: %w", path, err)
	}

	logger.Debug("model loaded", slog.String("path", path), slog.Int("items", registry.Len()))
	return registry, nil
}

// runEnumToMarkdown renders enum page and writes result to stdout or file.
func (runner *cliRunner) runEnumToMarkdown(args modelArgs, renderFlags markdownRenderFlags, outputPath string) error {
	logger := runner.logger()
	cfg, err := runner.config()
	if err != nil {
		return err
	}

	registry, err := runner.loadModel(args.Model, logger)
	if err != nil {
		return err
	}

	renderOptions := cfg.renderOptions(renderFlags, args.Reference)
	renderOptions.Logger = logger

	if renderFlags.TemplatePath != "" {
		customTemplate, err := os.ReadFile(renderFlags.TemplatePath)
		if err != nil {
			return fmt.Errorf("read template file %q: %w", renderFlags.TemplatePath, err)
		}

		renderOptions.TemplateText = string(customTemplate)
	}

	rendered, err := apidoc.RenderEnum(registry.Lookup(), args.Reference, renderOptions)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	return runner.writeOutput(outputPath, []byte(rendered), "markdown")
}

// runOrder prints ordered members in selected format.
func (runner *cliRunner) runOrder(args modelArgs, flagOrder []string, format string) error {
	logger := runner.logger()
	cfg, err := runner.config()
	if err != nil {
		return err
	}

	registry, err := runner.loadModel(args.Model, logger)
	if err != nil {
		return err
	}

	item, ok := registry.Get(args.Reference)
	if !ok {
		return fmt.Errorf("%w %q", apidoc.ErrItemNotFound, args.Reference)
	}

	members := apidoc.SortedMembers(registry.Lookup(), item, cfg.customOrder(args.Reference, flagOrder), logger)
	data, err := apidoc.EncodeOrder(members, apidoc.OutputFormat(format))
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}

	return runner.writeOutput("", data, "order")
}

// runTree prints member tree of selected item.
func (runner *cliRunner) runTree(args modelArgs, flagOrder []string) error {
	logger := runner.logger()
	cfg, err := runner.config()
	if err != nil {
		return err
	}

	registry, err := runner.loadModel(args.Model, logger)
	if err != nil {
		return err
	}

	tree, err := apidoc.RenderTree(registry.Lookup(), args.Reference, cfg.customOrder(args.Reference, flagOrder), logger)
	if err != nil {
		return fmt.Errorf("render tree: %w", err)
	}

	return runner.writeOutput("", []byte(tree), "tree")
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := apidoc.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	return runner.writeOutput(outputPath, []byte(tpl), "template")
}

// writeOutput writes data to file or stdout when path is empty.
func (runner *cliRunner) writeOutput(path string, data []byte, what string) error {
	if strings.TrimSpace(path) == "" {
		if _, err := runner.stdout.Write(data); err != nil {
			return fmt.Errorf("write %s to stdout: %w", what, err)
		}

		return nil
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", what, path, err)
	}

	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	runner.global = &options.Global
	options.Version.runner = runner
	options.Template.runner = runner
	options.EnumToMarkdown.runner = runner
	options.Order.runner = runner
	options.Tree.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	return err
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"enum2md": strings.TrimSpace(fmt.Sprintf(`
Render enum reference page: heading, doc block and ordered members.
Members named with --order come first in that order, the rest are sorted by name.

Examples:
> $ %s enum2md api.json 'pkg!Color:enum' > color.md
> $ %s enum2md -t table -o Red -o Green api.yaml 'pkg!Color:enum' docs/color.md
`, programName, programName)),
		"order": strings.TrimSpace(fmt.Sprintf(`
Print members of an item in display order.

Examples:
> $ %s order api.json 'pkg!Color:enum'
> $ %s order -F yaml -o Green api.json 'pkg!Color:enum'
`, programName, programName)),
		"tree": strings.TrimSpace(fmt.Sprintf(`
Print item and its members as a text tree.

Examples:
> $ %s tree api.json 'pkg!Color:enum'
`, programName)),
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in markdown template text (`+"`list` or `table`"+`).
Use it as a starting point for a custom template file.

Examples:
> $ %s template > list.gotmpl
> $ %s template -t table templates/table.gotmpl
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

// printVersionInfo writes build metadata to stdout.
func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
