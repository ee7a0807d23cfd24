package testutil

import (
	"mylib/internal/ports"

	"github.com/stretchr/testify/mock"
)

// Compile-time interface compliance check
var _ ports.TerminalInput = (*MockTerminalInput)(nil)

// MockTerminalInput provides a testify mock for ports.TerminalInput
type MockTerminalInput struct {
	mock.Mock
}

func (m *MockTerminalInput) ReadLine(prompt string) (string, error) {
	args := m.Called(prompt)
	return args.String(0), args.Error(1)
}

func (m *MockTerminalInput) ReadPassword(prompt string) (string, error) {
	args := m.Called(prompt)
	return args.String(0), args.Error(1)
}

func (m *MockTerminalInput) Println(message string) {
	m.Called(message)
}

func (m *MockTerminalInput) IsTerminal() bool {
	args := m.Called()
	return args.Bool(0)
}

// Answers queues one ReadLine result per answer, in order, for any prompt.
func (m *MockTerminalInput) Answers(answers ...string) *MockTerminalInput {
	for _, answer := range answers {
		m.On("ReadLine", mock.Anything).Return(answer, nil).Once()
	}
	return m
}
