package usecase

import (
	"context"
	"testing"

	"github.com/shripad-gm/inceptrix/internal/entity"
	"github.com/shripad-gm/inceptrix/internal/repo/persistent"
	"github.com/shripad-gm/inceptrix/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAdminContentRepository is a mock implementation of persistent.AdminContentRepository
type MockAdminContentRepository struct {
	mock.Mock
}

func (m *MockAdminContentRepository) ExistsForPost(ctx context.Context, postID string) (bool, error) {
	args := m.Called(postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminContentRepository) Create(ctx context.Context, curatorID, postID string) (*entity.AdminContent, error) {
	args := m.Called(curatorID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdminContent), args.Error(1)
}

func (m *MockAdminContentRepository) GetAll(ctx context.Context) ([]*entity.AdminContent, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.AdminContent), args.Error(1)
}

var _ persistent.AdminContentRepository = (*MockAdminContentRepository)(nil)

func newAdminUseCaseForTest(minLikes int) (AdminUseCase, *MockPostRepository, *MockUserRepository, *MockAdminContentRepository) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	adminRepo := new(MockAdminContentRepository)
	uc := NewAdminUseCase(postRepo, userRepo, adminRepo, minLikes, logger.New())
	return uc, postRepo, userRepo, adminRepo
}

func TestCurateContent_SweepsPopularAndSOS(t *testing.T) {
	uc, postRepo, _, adminRepo := newAdminUseCaseForTest(1)

	popular := []*entity.Post{{ID: "post-1", AuthorID: "user-1", LikerIDs: []string{"user-9"}}}
	sos := []*entity.Post{{ID: "post-2", AuthorID: "user-2", SOS: true}}
	postRepo.On("FindPopular", 1).Return(popular, nil)
	postRepo.On("FindSOS").Return(sos, nil)

	adminRepo.On("ExistsForPost", "post-1").Return(false, nil)
	adminRepo.On("ExistsForPost", "post-2").Return(false, nil)
	adminRepo.On("Create", "user-1", "post-1").
		Return(&entity.AdminContent{ID: "ac-1", CuratorID: "user-1", OriginalPostID: "post-1"}, nil)
	adminRepo.On("Create", "user-2", "post-2").
		Return(&entity.AdminContent{ID: "ac-2", CuratorID: "user-2", OriginalPostID: "post-2"}, nil)

	created, err := uc.CurateContent(context.Background())

	assert.NoError(t, err)
	assert.Len(t, created, 2)
	adminRepo.AssertExpectations(t)
}

func TestCurateContent_DeduplicatesPopularSOSPost(t *testing.T) {
	uc, postRepo, _, adminRepo := newAdminUseCaseForTest(1)

	// The same post qualifies on both counts but is curated once.
	liked := &entity.Post{ID: "post-1", AuthorID: "user-1", SOS: true, LikerIDs: []string{"user-9"}}
	postRepo.On("FindPopular", 1).Return([]*entity.Post{liked}, nil)
	postRepo.On("FindSOS").Return([]*entity.Post{liked}, nil)

	adminRepo.On("ExistsForPost", "post-1").Return(false, nil).Once()
	adminRepo.On("Create", "user-1", "post-1").
		Return(&entity.AdminContent{ID: "ac-1", CuratorID: "user-1", OriginalPostID: "post-1"}, nil).Once()

	created, err := uc.CurateContent(context.Background())

	assert.NoError(t, err)
	assert.Len(t, created, 1)
	adminRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestCurateContent_SecondRunCreatesNothing(t *testing.T) {
	uc, postRepo, _, adminRepo := newAdminUseCaseForTest(1)

	popular := []*entity.Post{{ID: "post-1", AuthorID: "user-1", LikerIDs: []string{"user-9"}}}
	postRepo.On("FindPopular", 1).Return(popular, nil)
	postRepo.On("FindSOS").Return([]*entity.Post{}, nil)

	adminRepo.On("ExistsForPost", "post-1").Return(true, nil)

	created, err := uc.CurateContent(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, created)
	assert.NotNil(t, created)
	adminRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCurateContent_SkipsConcurrentDuplicate(t *testing.T) {
	uc, postRepo, _, adminRepo := newAdminUseCaseForTest(1)

	posts := []*entity.Post{
		{ID: "post-1", AuthorID: "user-1", LikerIDs: []string{"user-9"}},
		{ID: "post-2", AuthorID: "user-2", LikerIDs: []string{"user-9"}},
	}
	postRepo.On("FindPopular", 1).Return(posts, nil)
	postRepo.On("FindSOS").Return([]*entity.Post{}, nil)

	// post-1 loses the insert race against another sweep.
	adminRepo.On("ExistsForPost", "post-1").Return(false, nil)
	adminRepo.On("ExistsForPost", "post-2").Return(false, nil)
	adminRepo.On("Create", "user-1", "post-1").Return(nil, entity.ErrAlreadyCurated)
	adminRepo.On("Create", "user-2", "post-2").
		Return(&entity.AdminContent{ID: "ac-2", CuratorID: "user-2", OriginalPostID: "post-2"}, nil)

	created, err := uc.CurateContent(context.Background())

	assert.NoError(t, err)
	assert.Len(t, created, 1)
	assert.Equal(t, "post-2", created[0].OriginalPostID)
}

func TestCurateContent_ThresholdClampedToOne(t *testing.T) {
	uc, postRepo, _, _ := newAdminUseCaseForTest(0)

	postRepo.On("FindPopular", 1).Return([]*entity.Post{}, nil)
	postRepo.On("FindSOS").Return([]*entity.Post{}, nil)

	created, err := uc.CurateContent(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, created)
	postRepo.AssertCalled(t, "FindPopular", 1)
}

func TestListCuratedContent_HydratesEntries(t *testing.T) {
	uc, postRepo, userRepo, adminRepo := newAdminUseCaseForTest(1)

	entries := []*entity.AdminContent{
		{ID: "ac-1", CuratorID: "user-1", OriginalPostID: "post-1"},
		{ID: "ac-2", CuratorID: "user-2", OriginalPostID: "post-2"},
	}
	adminRepo.On("GetAll").Return(entries, nil)
	userRepo.On("GetByIDs", []string{"user-1", "user-2"}).Return(map[string]*entity.User{
		"user-1": {ID: "user-1", Username: "alice"},
		"user-2": {ID: "user-2", Username: "bob"},
	}, nil)
	postRepo.On("GetByIDs", []string{"post-1", "post-2"}).Return([]*entity.Post{
		{ID: "post-1", AuthorID: "user-1"},
		{ID: "post-2", AuthorID: "user-2"},
	}, nil)

	result, err := uc.ListCuratedContent(context.Background())

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "alice", result[0].Curator.Username)
	assert.Equal(t, "post-2", result[1].OriginalPost.ID)
}

func TestListCuratedContent_DanglingPostStaysNil(t *testing.T) {
	uc, postRepo, userRepo, adminRepo := newAdminUseCaseForTest(1)

	entries := []*entity.AdminContent{
		{ID: "ac-1", CuratorID: "user-1", OriginalPostID: "post-gone"},
	}
	adminRepo.On("GetAll").Return(entries, nil)
	userRepo.On("GetByIDs", []string{"user-1"}).Return(map[string]*entity.User{
		"user-1": {ID: "user-1", Username: "alice"},
	}, nil)
	postRepo.On("GetByIDs", []string{"post-gone"}).Return([]*entity.Post{}, nil)

	result, err := uc.ListCuratedContent(context.Background())

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Nil(t, result[0].OriginalPost)
	assert.NotNil(t, result[0].Curator)
}

func TestListCuratedContent_Empty(t *testing.T) {
	uc, postRepo, userRepo, adminRepo := newAdminUseCaseForTest(1)

	adminRepo.On("GetAll").Return([]*entity.AdminContent{}, nil)

	result, err := uc.ListCuratedContent(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, result)
	userRepo.AssertNotCalled(t, "GetByIDs", mock.Anything)
	postRepo.AssertNotCalled(t, "GetByIDs", mock.Anything)
}
