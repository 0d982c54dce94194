package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

const prefix = "cmd "

// ErrUnknownCommand is returned (wrapped) by Execute for names nobody registered.
var ErrUnknownCommand = errors.New("unknown command")

// Setup declares a command's flags on fs and returns the function to run once fs has
// parsed. run receives the positional arguments left after the flags.
type Setup func(fs *flag.FlagSet) (run func(args []string) error)

// Command is a console subcommand. A fresh FlagSet is built for every execution so flag
// values never leak from one invocation into the next.
type Command struct {
	Name  string
	Usage string
	setup Setup
}

// Registry holds console subcommands by name.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds or replaces the subcommand name (the first token after "cmd").
func (r *Registry) Register(name, usage string, setup Setup) {
	r.cmds[name] = &Command{Name: name, Usage: usage, setup: setup}
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Help returns one "name: usage" line per command, sorted by name.
func (r *Registry) Help() []string {
	out := make([]string, 0, len(r.cmds))
	for _, n := range r.Names() {
		out = append(out, n+": "+r.cmds[n].Usage)
	}
	return out
}

// Parse interprets a console line. Lines starting with "cmd " (case-sensitive) are split
// on whitespace and returned with ok true; anything else returns nil, false.
func Parse(line string) (args []string, ok bool) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	return strings.Fields(line[len(prefix):]), true
}

// Execute runs the subcommand args[0] with args[1:] as its flags and positional arguments.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand (try: cmd help)")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	run := cmd.setup(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return run(fs.Args())
}
