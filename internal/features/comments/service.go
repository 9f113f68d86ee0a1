package comments

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/inkwell-app/inkwell/internal/features/auth"
)

// Service combines the comment store with author population.
type Service struct {
	repo  *Repository
	users *auth.Repository
}

func NewService(repo *Repository, users *auth.Repository) *Service {
	return &Service{repo: repo, users: users}
}

// ListForPost returns a post's comments with usernames and emails filled in
// for the comments that have a registered author.
func (s *Service) ListForPost(ctx context.Context, postID primitive.ObjectID) ([]CommentView, error) {
	list, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	var userIDs []primitive.ObjectID
	for _, c := range list {
		if c.UserID != nil {
			userIDs = append(userIDs, *c.UserID)
		}
	}

	refs, err := s.users.FindRefsByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	views := make([]CommentView, 0, len(list))
	for _, c := range list {
		view := CommentView{
			ID:        c.ID,
			PostID:    c.PostID,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		}
		if c.UserID != nil {
			if ref, ok := refs[*c.UserID]; ok {
				view.Username = ref.Username
				view.Email = ref.Email
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// DeleteForPost removes every comment of a post.
func (s *Service) DeleteForPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	return s.repo.DeleteByPost(ctx, postID)
}
