package command

import (
	"errors"
	"fmt"
	"strings"
)

type Name string

const (
	NameCreate Name = "CREATE"
	NameMove   Name = "MOVE"
	NameDelete Name = "DELETE"
	NameList   Name = "LIST"
)

const (
	ArgumentPath       = "path"
	ArgumentSourcePath = "sourcePath"
	ArgumentTargetPath = "targetPath"
)

var (
	ErrInvalidCommand = errors.New("invalid command")
)

var argumentNames = map[Name][]string{
	NameCreate: {ArgumentPath},
	NameMove:   {ArgumentSourcePath, ArgumentTargetPath},
	NameDelete: {ArgumentPath},
	NameList:   {},
}

type Command struct {
	Name Name
	Args map[string]string
}

// Parse parses a command line like "MOVE a/b c".
// Arguments are separated by a single space, so consecutive spaces make an empty argument.
func Parse(line string) (Command, error) {
	fields := strings.Split(line, " ")
	name := Name(fields[0])
	args := fields[1:]

	names, ok := argumentNames[name]
	if !ok {
		return Command{}, fmt.Errorf("%w: unknown command %q", ErrInvalidCommand, name)
	}
	if len(args) != len(names) {
		return Command{}, fmt.Errorf("%w: %s takes %d arguments but got %d", ErrInvalidCommand, name, len(names), len(args))
	}

	command := Command{
		Name: name,
		Args: make(map[string]string, len(args)),
	}
	for i, arg := range args {
		if arg == "" {
			return Command{}, fmt.Errorf("%w: %s of %s is empty", ErrInvalidCommand, names[i], name)
		}
		command.Args[names[i]] = arg
	}
	return command, nil
}
