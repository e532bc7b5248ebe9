package handlers

import (
	"context"

	"github.com/bz888/govhelper/internal/api/server/client"
	"github.com/stretchr/testify/mock"
)

type MockGeminiClient struct {
	mock.Mock
}

func (m *MockGeminiClient) IsAvailable() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockGeminiClient) Generate(ctx context.Context, prompt string) client.Result {
	args := m.Called(ctx, prompt)
	return args.Get(0).(client.Result)
}

func (m *MockGeminiClient) Status() client.Status {
	args := m.Called()
	return args.Get(0).(client.Status)
}

var (
	readyStatus = client.Status{Available: true, Model: "gemini-1.5-flash", Type: "gemini_1_5_flash", APIKeySet: true}
	downStatus  = client.Status{Available: false, Model: "gemini-1.5-flash", Type: "gemini_1_5_flash", APIKeySet: false}
)
