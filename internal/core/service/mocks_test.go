package service

import (
	"context"
	"memberbot/internal/core/domain"
	"memberbot/internal/core/port"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendText(ctx context.Context, channelID string, text string) error {
	args := m.Called(ctx, channelID, text)
	return args.Error(0)
}

func (m *MockSender) SendEmbed(ctx context.Context, channelID string, embed *domain.Embed) error {
	args := m.Called(ctx, channelID, embed)
	return args.Error(0)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, app *domain.Application) (int64, error) {
	args := m.Called(ctx, app)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) Get(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	app, _ := args.Get(0).(*domain.Application)
	return app, args.Error(1)
}

func (m *MockStore) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus, reviewer string,
	reviewedAt time.Time) error {
	args := m.Called(ctx, id, status, reviewer, reviewedAt)
	return args.Error(0)
}

func (m *MockStore) List(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error) {
	args := m.Called(ctx, status)
	apps, _ := args.Get(0).([]domain.Application)
	return apps, args.Error(1)
}

type MockSubmitter struct {
	mock.Mock
}

func (m *MockSubmitter) Submit(ctx context.Context, message *domain.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

type MockExecutor struct {
	mock.Mock
}

func (m *MockExecutor) Execute(ctx context.Context, cc *domain.CommandContext, argPos int) domain.Result {
	args := m.Called(ctx, cc, argPos)
	return args.Get(0).(domain.Result)
}

type MockRegistry struct {
	mock.Mock
	cmd port.Command
}

func (m *MockRegistry) Get(cmd string) (port.Command, error) {
	args := m.Called(cmd)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	return m.cmd, nil
}

func (m *MockRegistry) Register(handler port.Command) {
	m.cmd = handler
	m.Called(handler)
}

func (m *MockRegistry) ListCommands() []string {
	m.Called()
	return []string{"foo", "bar"}
}

type MockCommand struct {
	mock.Mock
	name string
}

func (m *MockCommand) Respond(ctx context.Context, cc *domain.CommandContext, args string) error {
	a := m.Called(ctx, cc, args)
	return a.Error(0)
}

func (m *MockCommand) GetCommand() string {
	return m.name
}

func (m *MockCommand) GetDescription() string {
	return "mocked command"
}
