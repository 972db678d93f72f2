package service

import (
	"blogapi/cmd/internal/contract"
	"blogapi/cmd/internal/domain/entity"
	"blogapi/cmd/internal/domain/policy"
	"blogapi/cmd/internal/representation"
	"blogapi/cmd/internal/utils"
	"blogapi/cmd/internal/utils/apierror"
	"blogapi/cmd/internal/utils/pagination"
	"blogapi/cmd/internal/utils/uid"

	"github.com/labstack/gommon/log"
	"github.com/samber/lo"
)

type PostRepository interface {
	FindPage(offset, limit int) ([]*entity.Post, int64, error)
	FindByID(id int64) (*entity.Post, error)
	Create(post *entity.Post) error
	Update(post *entity.Post) error
	Delete(post *entity.Post) error
}

type PostService struct {
	PostRepo  PostRepository
	Mapper    *representation.Mapper
	Evaluator *policy.Evaluator
}

func NewPostService(postRepo PostRepository, mapper *representation.Mapper, evaluator *policy.Evaluator) *PostService {
	return &PostService{
		PostRepo:  postRepo,
		Mapper:    mapper,
		Evaluator: evaluator,
	}
}

func (s *PostService) check(actor *entity.User, action policy.Action, target *entity.Post) apierror.ErrorResponse {
	c := policy.Check{Actor: actor, Action: action, Resource: policy.ResourcePost}
	if target != nil {
		c.Target = target
	}
	return s.Evaluator.Evaluate(c)
}

func (s *PostService) GetPosts(actor *entity.User, params pagination.Params) ([]*contract.PostResponse, int64, apierror.ErrorResponse) {
	if perr := s.check(actor, policy.ActionReadMany, nil); perr != nil {
		return nil, 0, perr
	}

	posts, count, err := s.PostRepo.FindPage(params.Offset(), params.Limit())
	if err != nil {
		log.Errorf("failed to fetch posts page %d: %v", params.Page, err)
		return nil, 0, apierror.InternalServerError
	}

	resp := lo.Map(posts, func(p *entity.Post, _ int) *contract.PostResponse {
		return representation.ToPostResponse(p)
	})
	return resp, count, nil
}

func (s *PostService) GetPost(actor *entity.User, rawID string) (*contract.PostResponse, apierror.ErrorResponse) {
	if perr := s.check(actor, policy.ActionReadOne, nil); perr != nil {
		return nil, perr
	}

	post, apierr := s.fetchPost(rawID)
	if apierr != nil {
		return nil, apierr
	}
	return representation.ToPostResponse(post), nil
}

// CreatePost stores a post owned by 'actor', whatever owner the payload claims.
func (s *PostService) CreatePost(actor *entity.User, body []byte) (*contract.PostResponse, apierror.ErrorResponse) {
	if perr := s.check(actor, policy.ActionCreate, nil); perr != nil {
		return nil, perr
	}

	post, apierr := s.Mapper.DecodePost(body, representation.ModeCreate, nil)
	if apierr != nil {
		return nil, apierr
	}

	now := utils.NowUTC()
	post.ID = uid.Generate()
	post.OwnerID = actor.ID
	post.CreatedAt = now
	post.UpdatedAt = now

	if err := s.PostRepo.Create(post); err != nil {
		log.Errorf("actor %d failed to create post: %v", actor.ID, err)
		return nil, apierror.InternalServerError
	}
	return representation.ToPostResponse(post), nil
}

func (s *PostService) UpdatePost(actor *entity.User, rawID string, body []byte, mode representation.Mode) (*contract.PostResponse, apierror.ErrorResponse) {
	action := updateAction(mode)
	if perr := s.check(actor, action, nil); perr != nil {
		return nil, perr
	}

	existing, apierr := s.fetchPost(rawID)
	if apierr != nil {
		return nil, apierr
	}

	if perr := s.check(actor, action, existing); perr != nil {
		return nil, perr
	}

	post, apierr := s.Mapper.DecodePost(body, mode, existing)
	if apierr != nil {
		return nil, apierr
	}

	// Server-owned fields always come from the stored post.
	post.ID = existing.ID
	post.OwnerID = existing.OwnerID
	post.CreatedAt = existing.CreatedAt
	post.UpdatedAt = nextUpdatedAt(existing.CreatedAt, existing.UpdatedAt)

	if err := s.PostRepo.Update(post); err != nil {
		log.Errorf("actor %d failed to update post %d: %v", actor.ID, existing.ID, err)
		return nil, apierror.InternalServerError
	}
	return representation.ToPostResponse(post), nil
}

func (s *PostService) DeletePost(actor *entity.User, rawID string) apierror.ErrorResponse {
	if perr := s.check(actor, policy.ActionDelete, nil); perr != nil {
		return perr
	}

	post, apierr := s.fetchPost(rawID)
	if apierr != nil {
		return apierr
	}

	if perr := s.check(actor, policy.ActionDelete, post); perr != nil {
		return perr
	}

	if err := s.PostRepo.Delete(post); err != nil {
		log.Errorf("actor %d failed to delete post %d: %v", actor.ID, post.ID, err)
		return apierror.InternalServerError
	}
	return nil
}

// RejectWithoutTarget answers mutations sent to the collection path.
func (s *PostService) RejectWithoutTarget(actor *entity.User, action policy.Action) apierror.ErrorResponse {
	if perr := s.check(actor, action, nil); perr != nil {
		return perr
	}
	return apierror.MethodNotAllowedError
}

func (s *PostService) fetchPost(rawID string) (*entity.Post, apierror.ErrorResponse) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, apierror.NotFoundError
	}

	post, err := s.PostRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch post %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if post == nil {
		return nil, apierror.NotFoundError
	}
	return post, nil
}
