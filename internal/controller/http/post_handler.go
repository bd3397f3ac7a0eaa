package http

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/shripad-gm/inceptrix/internal/entity"
	"github.com/shripad-gm/inceptrix/internal/usecase"
	"github.com/shripad-gm/inceptrix/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

type CreatePostRequest struct {
	Text     string `form:"text"`
	SOS      bool   `form:"sos"`
	Location string `form:"location"`
}

type CommentRequest struct {
	Text string `json:"text"`
}

// CreatePost godoc
// @Summary      Create a new post
// @Description  Create a post with text and/or an image. An image is uploaded to object storage before the post is persisted.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        text formData string false "Post text"
// @Param        sos formData boolean false "Mark as SOS/emergency post"
// @Param        location formData string false "Location label"
// @Param        image formData file false "Image file (jpg/jpeg/png)"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var image *multipart.FileHeader
	if file, err := c.FormFile("image"); err == nil {
		image = file
	}

	post, err := h.postUseCase.CreatePost(c.Request.Context(), userID, req.Text, req.Location, req.SOS, image)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrEmptyPost):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Post must have text or image"})
		case errors.Is(err, entity.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			h.logger.Error("Failed to create post: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, post)
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Delete a post. Only the author can delete their own post; a stored image is removed from object storage best effort.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.postUseCase.DeletePost(c.Request.Context(), postID, userID); err != nil {
		switch {
		case errors.Is(err, entity.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		case errors.Is(err, entity.ErrNotPostOwner):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized to delete this post"})
		default:
			h.logger.Error("Failed to delete post: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// CommentOnPost godoc
// @Summary      Comment on a post
// @Description  Append a comment to a post. Comments keep append order.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body CommentRequest true "Comment text"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id}/comment [post]
func (h *PostHandler) CommentOnPost(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.CommentOnPost(c.Request.Context(), postID, userID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrEmptyComment):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Text field is required"})
		case errors.Is(err, entity.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		default:
			h.logger.Error("Failed to comment on post: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, post)
}

// LikeUnlikePost godoc
// @Summary      Like or unlike a post
// @Description  Toggle the requester's like on a post and return the resulting liker-id list. A like creates one notification to the author; an unlike creates none.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {array}  string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id}/like [post]
func (h *PostHandler) LikeUnlikePost(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	likers, _, err := h.postUseCase.LikeUnlikePost(c.Request.Context(), postID, userID)
	if err != nil {
		if errors.Is(err, entity.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to like/unlike post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, likers)
}

// GetAllPosts godoc
// @Summary      List all posts
// @Description  All posts, newest first, with author and comment-author identities attached.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Post
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) GetAllPosts(c *gin.Context) {
	posts, err := h.postUseCase.GetAllPosts(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to fetch posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetLikedPosts godoc
// @Summary      List posts liked by a user
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {array}  entity.Post
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/liked/{id} [get]
func (h *PostHandler) GetLikedPosts(c *gin.Context) {
	userID := c.Param("id")

	posts, err := h.postUseCase.GetLikedPosts(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.logger.Error("Failed to fetch liked posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetFollowingPosts godoc
// @Summary      List posts from followed users
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Post
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/following [get]
func (h *PostHandler) GetFollowingPosts(c *gin.Context) {
	userID := c.GetString("user_id")

	posts, err := h.postUseCase.GetFollowingPosts(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.logger.Error("Failed to fetch following posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetUserPosts godoc
// @Summary      List a user's posts by username
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Username"
// @Success      200  {array}  entity.Post
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/user/{username} [get]
func (h *PostHandler) GetUserPosts(c *gin.Context) {
	username := c.Param("username")

	posts, err := h.postUseCase.GetUserPosts(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.logger.Error("Failed to fetch user posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, posts)
}
