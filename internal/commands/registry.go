package commands

import (
	"fmt"

	"github.com/funvibe/funsh/internal/history"
)

// Registry is the closed set of builtin commands, keyed by name.
// Adding a builtin means adding one type with a Signature and
// registering it here; names a registry does not know classify as
// external commands.
type Registry struct {
	commands map[string]PerItemCommand
}

func NewRegistry() *Registry {
	return &Registry{commands: map[string]PerItemCommand{}}
}

// Register panics on duplicate or inconsistent registration; both are
// programmer errors caught at startup.
func (r *Registry) Register(cmd PerItemCommand) {
	name := cmd.Name()
	if name == "" || cmd.Signature() == nil {
		panic(fmt.Sprintf("commands: builtin %q is missing a name or signature", name))
	}
	if cmd.Signature().Name != name {
		panic(fmt.Sprintf("commands: builtin %q declares signature for %q", name, cmd.Signature().Name))
	}
	if _, exists := r.commands[name]; exists {
		panic(fmt.Sprintf("commands: builtin %q registered twice", name))
	}
	r.commands[name] = cmd
}

// Lookup returns the builtin for name, or nil.
func (r *Registry) Lookup(name string) PerItemCommand {
	return r.commands[name]
}

// Default builds the standard registry. The history store may be nil
// when no database is available; the history builtin then reports
// R003 at run time.
func Default(hist *history.Store) *Registry {
	r := NewRegistry()
	r.Register(&Move{})
	r.Register(&Cd{})
	r.Register(&Echo{})
	r.Register(&History{Store: hist})
	return r
}
