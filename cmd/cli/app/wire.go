//go:build wireinject
// +build wireinject

package app

import (
	"mylib/internal/adapters/filesystem"
	"mylib/internal/adapters/terminal"
	"mylib/internal/cli/output"
	"mylib/internal/core"
	"mylib/internal/core/handler"
	"mylib/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	terminal.ProvideTerminalInput,
	wire.Bind(new(ports.TerminalInput), new(*terminal.TerminalInput)),
	output.ProvideStdout,
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvidePrompter,
	core.ProvideFileOperations,
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectPathCommandHandler() (handler.PathCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvidePathCommandHandler,
	)
	return handler.PathCommandHandler{}, nil
}

func InjectFileCommandHandler() (handler.FileCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideFileCommandHandler,
	)
	return handler.FileCommandHandler{}, nil
}

func InjectAskCommandHandler() (handler.AskCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideAskCommandHandler,
	)
	return handler.AskCommandHandler{}, nil
}
