package usecase

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/shripad-gm/inceptrix/internal/entity"
	"github.com/shripad-gm/inceptrix/internal/repo/persistent"
	"github.com/shripad-gm/inceptrix/pkg/logger"

	"github.com/google/uuid"
)

// ObjectStore is the slice of the S3 client the post flow needs.
type ObjectStore interface {
	UploadFile(key string, file multipart.File, contentType string) (string, error)
	DeleteFile(key string) error
}

type PostUseCase interface {
	CreatePost(ctx context.Context, authorID, text, location string, sos bool, image *multipart.FileHeader) (*entity.Post, error)
	DeletePost(ctx context.Context, postID, requesterID string) error
	CommentOnPost(ctx context.Context, postID, authorID, text string) (*entity.Post, error)
	LikeUnlikePost(ctx context.Context, postID, userID string) ([]string, bool, error)
	GetAllPosts(ctx context.Context) ([]*entity.Post, error)
	GetLikedPosts(ctx context.Context, userID string) ([]*entity.Post, error)
	GetFollowingPosts(ctx context.Context, userID string) ([]*entity.Post, error)
	GetUserPosts(ctx context.Context, username string) ([]*entity.Post, error)
}

type postUseCase struct {
	postRepo  persistent.PostRepository
	userRepo  persistent.UserRepository
	notifRepo persistent.NotificationRepository
	store     ObjectStore
	logger    *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	userRepo persistent.UserRepository,
	notifRepo persistent.NotificationRepository,
	store ObjectStore,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:  postRepo,
		userRepo:  userRepo,
		notifRepo: notifRepo,
		store:     store,
		logger:    logger,
	}
}

func (uc *postUseCase) CreatePost(ctx context.Context, authorID, text, location string, sos bool, image *multipart.FileHeader) (*entity.Post, error) {
	if _, err := uc.userRepo.GetByID(ctx, authorID); err != nil {
		return nil, err
	}

	if text == "" && image == nil {
		return nil, entity.ErrEmptyPost
	}

	var imageURL, imageKey string
	if image != nil {
		src, err := image.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open image: %w", err)
		}
		defer src.Close()

		imageKey = fmt.Sprintf("posts/%s/%s%s", authorID, uuid.New().String(), fileExtension(image.Filename))
		contentType := image.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "image/jpeg"
		}

		imageURL, err = uc.store.UploadFile(imageKey, src, contentType)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
	}

	post := &entity.Post{
		AuthorID: authorID,
		Text:     text,
		ImageURL: imageURL,
		ImageKey: imageKey,
		SOS:      sos,
		Location: location,
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (uc *postUseCase) DeletePost(ctx context.Context, postID, requesterID string) error {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != requesterID {
		return entity.ErrNotPostOwner
	}

	// Stored image removal is best effort; the post document is the
	// record of the deletion.
	if post.ImageKey != "" {
		if err := uc.store.DeleteFile(post.ImageKey); err != nil {
			uc.logger.Warn("Failed to delete image %s for post %s: %v", post.ImageKey, postID, err)
		}
	}

	return uc.postRepo.Delete(ctx, postID)
}

func (uc *postUseCase) CommentOnPost(ctx context.Context, postID, authorID, text string) (*entity.Post, error) {
	if text == "" {
		return nil, entity.ErrEmptyComment
	}

	post, err := uc.postRepo.AddComment(ctx, postID, authorID, text)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// LikeUnlikePost toggles userID's membership in the post's liker set
// and keeps the user's likedPosts list in step. A like inserts exactly
// one notification to the post author; an unlike inserts none. The two
// writes are independent, so a crash between them can leave the sets
// briefly out of step.
func (uc *postUseCase) LikeUnlikePost(ctx context.Context, postID, userID string) ([]string, bool, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, false, err
	}

	if post.LikedBy(userID) {
		if err := uc.postRepo.RemoveLike(ctx, postID, userID); err != nil {
			return nil, false, err
		}
		if err := uc.userRepo.RemoveLikedPost(ctx, userID, postID); err != nil {
			return nil, false, err
		}

		likers := make([]string, 0, len(post.LikerIDs))
		for _, id := range post.LikerIDs {
			if id != userID {
				likers = append(likers, id)
			}
		}
		return likers, false, nil
	}

	if err := uc.postRepo.AddLike(ctx, postID, userID); err != nil {
		return nil, false, err
	}
	if err := uc.userRepo.AddLikedPost(ctx, userID, postID); err != nil {
		return nil, false, err
	}

	if _, err := uc.notifRepo.Create(ctx, userID, post.AuthorID, entity.NotificationTypeLike); err != nil {
		return nil, false, fmt.Errorf("failed to create like notification: %w", err)
	}

	return append(post.LikerIDs, userID), true, nil
}

func (uc *postUseCase) GetAllPosts(ctx context.Context) ([]*entity.Post, error) {
	posts, err := uc.postRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.hydrateAuthors(ctx, posts)
}

// GetLikedPosts resolves through a snapshot of the user's likedPosts
// list; the two reads are not transactional, so the result is only as
// fresh as that snapshot.
func (uc *postUseCase) GetLikedPosts(ctx context.Context, userID string) ([]*entity.Post, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	posts, err := uc.postRepo.GetByIDs(ctx, user.LikedPostIDs)
	if err != nil {
		return nil, err
	}
	return uc.hydrateAuthors(ctx, posts)
}

func (uc *postUseCase) GetFollowingPosts(ctx context.Context, userID string) ([]*entity.Post, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	posts, err := uc.postRepo.GetByAuthors(ctx, user.Following)
	if err != nil {
		return nil, err
	}
	return uc.hydrateAuthors(ctx, posts)
}

func (uc *postUseCase) GetUserPosts(ctx context.Context, username string) ([]*entity.Post, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	posts, err := uc.postRepo.GetByAuthor(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return uc.hydrateAuthors(ctx, posts)
}

// hydrateAuthors attaches author identities to posts and their
// comments in one batched user lookup.
func (uc *postUseCase) hydrateAuthors(ctx context.Context, posts []*entity.Post) ([]*entity.Post, error) {
	ids := make([]string, 0, len(posts))
	seen := make(map[string]bool)
	collect := func(id string) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	for _, post := range posts {
		collect(post.AuthorID)
		for _, comment := range post.Comments {
			collect(comment.AuthorID)
		}
	}

	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		post.Author = users[post.AuthorID]
		for i := range post.Comments {
			post.Comments[i].Author = users[post.Comments[i].AuthorID]
		}
	}
	return posts, nil
}

func fileExtension(filename string) string {
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '.' {
			return filename[i:]
		}
	}
	return ""
}
