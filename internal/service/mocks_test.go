package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/utkarshp579/career-orbit/internal/model"
	"github.com/utkarshp579/career-orbit/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, industry string, experience int, bio string, skills model.StringList) error {
	args := m.Called(ctx, id, industry, experience, bio, skills)
	return args.Error(0)
}

// MockInsightRepository is a mock implementation of repository.InsightRepository.
type MockInsightRepository struct {
	mock.Mock
}

func (m *MockInsightRepository) FindByIndustry(ctx context.Context, industry string) (*model.IndustryInsight, error) {
	args := m.Called(ctx, industry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.IndustryInsight), args.Error(1)
}

func (m *MockInsightRepository) Create(ctx context.Context, insight *model.IndustryInsight) error {
	args := m.Called(ctx, insight)
	return args.Error(0)
}

func (m *MockInsightRepository) CreatePlaceholder(ctx context.Context, industry string) (*model.IndustryInsight, error) {
	args := m.Called(ctx, industry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.IndustryInsight), args.Error(1)
}

func (m *MockInsightRepository) Update(ctx context.Context, insight *model.IndustryInsight) error {
	args := m.Called(ctx, insight)
	return args.Error(0)
}

// MockGenerator is a mock implementation of InsightGenerator.
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, industry string) *model.InsightPayload {
	args := m.Called(ctx, industry)
	return args.Get(0).(*model.InsightPayload)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID, userID, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (string, string, error) {
	args := m.Called(ctx, tokenID)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// stubTransactor runs the transaction body against the given repositories,
// or short-circuits with err to simulate a failed, rolled-back transaction.
type stubTransactor struct {
	users    repository.UserRepository
	insights repository.InsightRepository
	err      error
}

func (t *stubTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, users repository.UserRepository, insights repository.InsightRepository) error) error {
	if t.err != nil {
		return t.err
	}
	return fn(ctx, t.users, t.insights)
}
