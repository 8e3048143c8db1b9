package command

import (
	"context"
	"fmt"
)

type DirectoryService interface {
	Create(ctx context.Context, path string) error
	Move(ctx context.Context, sourcePath, targetPath string) error
	Delete(ctx context.Context, path string) error
	RenderTree(ctx context.Context) (string, error)
}

type Dispatcher struct {
	service DirectoryService
}

func NewDispatcher(service DirectoryService) *Dispatcher {
	return &Dispatcher{
		service: service,
	}
}

// Execute runs a command and returns its output. Only LIST has an output.
func (dispatcher Dispatcher) Execute(ctx context.Context, command Command) (string, error) {
	switch command.Name {
	case NameCreate:
		if err := dispatcher.service.Create(ctx, command.Args[ArgumentPath]); err != nil {
			return "", fmt.Errorf("service.Create: %w", err)
		}
		return "", nil
	case NameMove:
		err := dispatcher.service.Move(ctx,
			command.Args[ArgumentSourcePath],
			command.Args[ArgumentTargetPath],
		)
		if err != nil {
			return "", fmt.Errorf("service.Move: %w", err)
		}
		return "", nil
	case NameDelete:
		if err := dispatcher.service.Delete(ctx, command.Args[ArgumentPath]); err != nil {
			return "", fmt.Errorf("service.Delete: %w", err)
		}
		return "", nil
	case NameList:
		tree, err := dispatcher.service.RenderTree(ctx)
		if err != nil {
			return "", fmt.Errorf("service.RenderTree: %w", err)
		}
		return tree, nil
	}
	return "", fmt.Errorf("%w: unknown command %q", ErrInvalidCommand, command.Name)
}
