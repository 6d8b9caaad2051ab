package domain

import "strings"

// Command is an external program invocation.
type Command struct {
	Name string
	Args []string
	// Env is appended to the inherited environment. Later entries win.
	Env []string
	Dir string
}

// NewCommand creates a Command for name with the given arguments.
func NewCommand(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// Environ overlays c.Env on top of base. Later entries win.
func (c Command) Environ(base []string) []string {
	if len(c.Env) == 0 {
		return base
	}

	overridden := make(map[string]struct{}, len(c.Env))
	for _, entry := range c.Env {
		if k, _, ok := strings.Cut(entry, "="); ok {
			overridden[k] = struct{}{}
		}
	}

	result := make([]string, 0, len(base)+len(c.Env))
	for _, entry := range base {
		k, _, _ := strings.Cut(entry, "=")
		if _, skip := overridden[k]; skip {
			continue
		}
		result = append(result, entry)
	}
	return append(result, c.Env...)
}
