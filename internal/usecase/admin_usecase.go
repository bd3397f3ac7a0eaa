package usecase

import (
	"context"
	"errors"

	"github.com/shripad-gm/inceptrix/internal/entity"
	"github.com/shripad-gm/inceptrix/internal/repo/persistent"
	"github.com/shripad-gm/inceptrix/pkg/logger"
)

type AdminUseCase interface {
	CurateContent(ctx context.Context) ([]*entity.AdminContent, error)
	ListCuratedContent(ctx context.Context) ([]*entity.AdminContent, error)
}

type adminUseCase struct {
	postRepo  persistent.PostRepository
	userRepo  persistent.UserRepository
	adminRepo persistent.AdminContentRepository
	minLikes  int
	logger    *logger.Logger
}

func NewAdminUseCase(
	postRepo persistent.PostRepository,
	userRepo persistent.UserRepository,
	adminRepo persistent.AdminContentRepository,
	minLikes int,
	logger *logger.Logger,
) AdminUseCase {
	if minLikes < 1 {
		minLikes = 1
	}
	return &adminUseCase{
		postRepo:  postRepo,
		userRepo:  userRepo,
		adminRepo: adminRepo,
		minLikes:  minLikes,
		logger:    logger,
	}
}

// CurateContent sweeps posts with at least minLikes likers plus all
// SOS posts into the moderation queue, one entry per post. Re-running
// with no new qualifying posts creates nothing. The per-post
// check-then-insert is not transactional; a concurrent sweep losing
// the insert race hits the unique index and the entry is counted as
// already curated.
func (uc *adminUseCase) CurateContent(ctx context.Context) ([]*entity.AdminContent, error) {
	popular, err := uc.postRepo.FindPopular(ctx, uc.minLikes)
	if err != nil {
		return nil, err
	}

	sos, err := uc.postRepo.FindSOS(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var qualifying []*entity.Post
	for _, post := range append(popular, sos...) {
		if seen[post.ID] {
			continue
		}
		seen[post.ID] = true
		qualifying = append(qualifying, post)
	}

	created := []*entity.AdminContent{}
	for _, post := range qualifying {
		exists, err := uc.adminRepo.ExistsForPost(ctx, post.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		entry, err := uc.adminRepo.Create(ctx, post.AuthorID, post.ID)
		if errors.Is(err, entity.ErrAlreadyCurated) {
			uc.logger.Info("Post %s was curated by a concurrent sweep, skipping", post.ID)
			continue
		}
		if err != nil {
			return nil, err
		}
		created = append(created, entry)
	}

	uc.logger.Info("Curation sweep finished: %d qualifying posts, %d new entries", len(qualifying), len(created))
	return created, nil
}

// ListCuratedContent returns every curation entry with its curator
// identity and the full original post attached. Entries whose post or
// curator has since been deleted keep a nil reference; the queue is an
// append-only log and dangling references are expected.
func (uc *adminUseCase) ListCuratedContent(ctx context.Context) ([]*entity.AdminContent, error) {
	entries, err := uc.adminRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return entries, nil
	}

	curatorIDs := make([]string, 0, len(entries))
	postIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		curatorIDs = append(curatorIDs, entry.CuratorID)
		postIDs = append(postIDs, entry.OriginalPostID)
	}

	curators, err := uc.userRepo.GetByIDs(ctx, curatorIDs)
	if err != nil {
		return nil, err
	}

	posts, err := uc.postRepo.GetByIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	postsByID := make(map[string]*entity.Post, len(posts))
	for _, post := range posts {
		postsByID[post.ID] = post
	}

	for _, entry := range entries {
		entry.Curator = curators[entry.CuratorID]
		entry.OriginalPost = postsByID[entry.OriginalPostID]
	}
	return entries, nil
}
