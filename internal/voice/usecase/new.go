package usecase

import (
	"voice-task-tracker/internal/voice"
	"voice-task-tracker/internal/voice/parser"
	pkgLog "voice-task-tracker/pkg/log"
)

// implUseCase is the private implementation of voice.UseCase.
type implUseCase struct {
	l      pkgLog.Logger
	parser *parser.Parser
}

var _ voice.UseCase = (*implUseCase)(nil)

// New creates a new voice UseCase implementation.
func New(l pkgLog.Logger, p *parser.Parser) *implUseCase {
	return &implUseCase{
		l:      l,
		parser: p,
	}
}
