package representation

import (
	"blogapi/cmd/internal/contract"
	"blogapi/cmd/internal/domain/entity"
	"blogapi/cmd/internal/utils"
	"blogapi/cmd/internal/utils/apierror"

	"github.com/samber/lo"
)

// DecodePost validates 'body' and returns a post carrying the client-writable
// fields (title, content, categories). Id, owner and timestamps are copied
// from 'existing' (nil for ModeCreate) and are the caller's to derive.
func (m *Mapper) DecodePost(body []byte, mode Mode, existing *entity.Post) (*entity.Post, apierror.ErrorResponse) {
	var post entity.Post
	if existing != nil {
		post = *existing
	}

	var tags []string
	if mode == ModePartial {
		var req contract.PatchPostRequest
		if apierr := m.decode(body, &req); apierr != nil {
			return nil, apierr
		}

		if req.Title != nil {
			post.Title = *req.Title
		}
		if req.Content != nil {
			post.Content = *req.Content
		}
		if req.Categories == nil {
			return &post, nil
		}
		tags = req.Categories
	} else {
		var req contract.PostRequest
		if apierr := m.decode(body, &req); apierr != nil {
			return nil, apierr
		}

		post.Title = req.Title
		post.Content = req.Content
		tags = req.Categories
	}

	// categories is a set; repeated tags collapse into one
	categories, apierr := m.resolveCategories(lo.Uniq(tags))
	if apierr != nil {
		return nil, apierr
	}
	post.Categories = categories
	return &post, nil
}

func ToPostResponse(post *entity.Post) *contract.PostResponse {
	return &contract.PostResponse{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		Categories: sortedTags(post.Categories),
		CreatedAt:  utils.FormatEpoch(post.CreatedAt),
		UpdatedAt:  utils.FormatEpoch(post.UpdatedAt),
		Owner:      post.OwnerID,
	}
}

func ToUserPostResponse(post *entity.Post) *contract.UserPostResponse {
	return &contract.UserPostResponse{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		Categories: sortedTags(post.Categories),
		CreatedAt:  utils.FormatEpoch(post.CreatedAt),
		UpdatedAt:  utils.FormatEpoch(post.UpdatedAt),
	}
}
