package commands

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-feast/internal/game"
)

// Builtin is a command handled by the interpreter itself rather than by a
// thing's declared behavior.
type Builtin string

const (
	BuiltinNone      Builtin = ""
	BuiltinHelp      Builtin = "help"
	BuiltinTime      Builtin = "time"
	BuiltinLook      Builtin = "look"
	BuiltinExamine   Builtin = "examine"
	BuiltinGo        Builtin = "go"
	BuiltinTake      Builtin = "take"
	BuiltinDrop      Builtin = "drop"
	BuiltinBuy       Builtin = "buy"
	BuiltinWait      Builtin = "wait"
	BuiltinInventory Builtin = "inventory"
	BuiltinState     Builtin = "state"
	BuiltinKill      Builtin = "kill"
)

var builtins = map[string]Builtin{
	"help":      BuiltinHelp,
	"time":      BuiltinTime,
	"look":      BuiltinLook,
	"examine":   BuiltinExamine,
	"go":        BuiltinGo,
	"take":      BuiltinTake,
	"drop":      BuiltinDrop,
	"buy":       BuiltinBuy,
	"wait":      BuiltinWait,
	"inventory": BuiltinInventory,
	"state":     BuiltinState,
	"kill":      BuiltinKill,
}

// Command is one parsed line of player input: either a builtin with its
// arguments, or a usage command with a verb, subject, and optional object.
type Command struct {
	Builtin Builtin
	Args    []string

	Verb    string
	Subject string
	Object  string
}

// separators split a usage command's remainder into subject and object, in
// priority order.
var separators = []string{"in", "from", "on"}

// Parse turns a raw input line into a Command. Builtins match on an exact
// first token. Usage commands match a known verb as a case-insensitive
// prefix, then split the rest on the first separator token found.
func Parse(line string) (*Command, error) {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, NewUserError("I don't know how to do that.")
	}

	if b, ok := builtins[fields[0]]; ok {
		return &Command{Builtin: b, Args: fields[1:]}, nil
	}

	verb := matchVerb(line)
	if verb == "" {
		return nil, NewUserError("I don't know how to do that.")
	}

	rest := strings.Fields(line[len(verb):])
	subject, object := splitOnSeparator(rest)
	if subject == "" {
		return nil, NewUserError(fmt.Sprintf("What do you want to %s?", verb))
	}

	return &Command{Verb: verb, Subject: subject, Object: object}, nil
}

// matchVerb finds the usage verb the line starts with, case-insensitively.
// The verb must be followed by a word boundary so "cutlery" never parses as
// "cut lery".
func matchVerb(line string) string {
	lower := strings.ToLower(line)
	for _, v := range game.Verbs {
		if !strings.HasPrefix(lower, v) {
			continue
		}
		if len(line) == len(v) || line[len(v)] == ' ' {
			return v
		}
	}
	return ""
}

// splitOnSeparator divides the post-verb tokens into subject and object at
// the first separator. Separators are tried in priority order over the whole
// token list, so "put tofu in bowl on table" splits at "in".
func splitOnSeparator(tokens []string) (subject, object string) {
	for _, sep := range separators {
		for i, tok := range tokens {
			if tok == sep {
				return strings.Join(tokens[:i], " "), strings.Join(tokens[i+1:], " ")
			}
		}
	}
	return strings.Join(tokens, " "), ""
}
