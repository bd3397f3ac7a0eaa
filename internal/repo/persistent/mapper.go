package persistent

import (
	"github.com/shripad-gm/inceptrix/internal/entity"
	"github.com/shripad-gm/inceptrix/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:        m.ID.Hex(),
		AuthorID:  m.User.Hex(),
		Text:      m.Text,
		ImageURL:  m.Img,
		ImageKey:  m.ImgKey,
		SOS:       m.SOS,
		Location:  m.Location,
		LikerIDs:  oidsToHex(m.Likes),
		Comments:  make([]entity.Comment, 0, len(m.Comments)),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	for _, c := range m.Comments {
		post.Comments = append(post.Comments, entity.Comment{
			AuthorID: c.User.Hex(),
			Text:     c.Text,
		})
	}

	return post
}

// ToUserEntity drops the password field; entities never carry
// credentials.
func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID.Hex(),
		Username:     m.Username,
		Email:        m.Email,
		Role:         m.Role,
		Following:    oidsToHex(m.Following),
		LikedPostIDs: oidsToHex(m.LikedPosts),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToNotificationEntity(m *model.NotificationModel) *entity.Notification {
	if m == nil {
		return nil
	}

	return &entity.Notification{
		ID:        m.ID.Hex(),
		FromID:    m.From.Hex(),
		ToID:      m.To.Hex(),
		Type:      m.Type,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}

func ToAdminContentEntity(m *model.AdminContentModel) *entity.AdminContent {
	if m == nil {
		return nil
	}

	return &entity.AdminContent{
		ID:             m.ID.Hex(),
		CuratorID:      m.User.Hex(),
		OriginalPostID: m.OriginalPost.Hex(),
		CreatedAt:      m.CreatedAt,
	}
}

func oidsToHex(ids []primitive.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}

func hexToOIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		out = append(out, oid)
	}
	return out
}
