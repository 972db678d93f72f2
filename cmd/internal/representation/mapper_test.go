package representation_test

import (
	"errors"
	"testing"

	"blogapi/cmd/internal/domain/entity"
	"blogapi/cmd/internal/representation"
	"blogapi/cmd/internal/utils/apierror"
	"blogapi/cmd/internal/utils/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategories struct {
	stored map[string]*entity.Category
	err    error
}

func (f *fakeCategories) FindAllInTags(tags []string) ([]*entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}

	out := make([]*entity.Category, 0, len(tags))
	for _, tag := range tags {
		if c, ok := f.stored[tag]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func newMapper() *representation.Mapper {
	return representation.NewMapper(validators.New(), &fakeCategories{
		stored: map[string]*entity.Category{
			"a": {Tag: "a", Name: "A"},
			"b": {Tag: "b", Name: "B"},
		},
	})
}

func storedPost() *entity.Post {
	return &entity.Post{
		ID:        7,
		Title:     "old",
		Content:   "old content",
		OwnerID:   3,
		CreatedAt: 1000,
		UpdatedAt: 2000,
		Categories: []*entity.Category{
			{Tag: "b", Name: "B"},
			{Tag: "a", Name: "A"},
		},
	}
}

func fieldErrors(t *testing.T, apierr apierror.ErrorResponse) map[string][]string {
	t.Helper()

	structured, ok := apierr.(*apierror.StructuredError)
	require.True(t, ok, "expected a structured error, got %T", apierr)
	return structured.Errors
}

func TestDecodePost_Create(t *testing.T) {
	t.Parallel()

	m := newMapper()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		post, apierr := m.DecodePost([]byte(`{"title":" t "}`), representation.ModeCreate, nil)
		require.Nil(t, apierr)
		assert.Equal(t, "t", post.Title)
		assert.Equal(t, "", post.Content)
		assert.Empty(t, post.Categories)
	})

	t.Run("owner in body is ignored", func(t *testing.T) {
		t.Parallel()

		post, apierr := m.DecodePost([]byte(`{"title":"t","owner":99,"id":5,"categories":["a"]}`), representation.ModeCreate, nil)
		require.Nil(t, apierr)
		assert.Zero(t, post.OwnerID)
		assert.Zero(t, post.ID)
		require.Len(t, post.Categories, 1)
	})

	t.Run("title required", func(t *testing.T) {
		t.Parallel()

		_, apierr := m.DecodePost(nil, representation.ModeCreate, nil)
		assert.Equal(t, apierror.KindValidation, apierror.KindOf(apierr))
		assert.Contains(t, fieldErrors(t, apierr), "title")
	})

	t.Run("wrong type", func(t *testing.T) {
		t.Parallel()

		_, apierr := m.DecodePost([]byte(`{"title":5}`), representation.ModeCreate, nil)
		assert.Contains(t, fieldErrors(t, apierr), "title")
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()

		_, apierr := m.DecodePost([]byte(`{"title":`), representation.ModeCreate, nil)
		assert.Equal(t, apierror.MalformedJSONError, apierr)
	})

	t.Run("unknown tags", func(t *testing.T) {
		t.Parallel()

		_, apierr := m.DecodePost([]byte(`{"title":"t","categories":["a","zz","c"]}`), representation.ModeCreate, nil)
		problems := fieldErrors(t, apierr)
		require.Len(t, problems["categories"], 1)
		assert.Contains(t, problems["categories"][0], "c, zz")
	})

	t.Run("repeated tags collapse", func(t *testing.T) {
		t.Parallel()

		post, apierr := m.DecodePost([]byte(`{"title":"t","categories":["a","b","a"," a "]}`), representation.ModeCreate, nil)
		require.Nil(t, apierr)
		require.Len(t, post.Categories, 2)
		assert.Equal(t, []string{"a", "b"}, representation.ToPostResponse(post).Categories)
	})
}

func TestDecodePost_Full(t *testing.T) {
	t.Parallel()

	m := newMapper()
	existing := storedPost()

	post, apierr := m.DecodePost([]byte(`{"title":"new","owner":42}`), representation.ModeFull, existing)
	require.Nil(t, apierr)
	assert.Equal(t, "new", post.Title)
	assert.Equal(t, "", post.Content)
	assert.Empty(t, post.Categories)
	assert.Equal(t, int64(3), post.OwnerID)
	assert.Equal(t, int64(7), post.ID)

	// the stored value is left alone
	assert.Equal(t, "old", existing.Title)
	assert.Len(t, existing.Categories, 2)

	_, apierr = m.DecodePost([]byte(`{}`), representation.ModeFull, existing)
	assert.Contains(t, fieldErrors(t, apierr), "title")
}

func TestDecodePost_Partial(t *testing.T) {
	t.Parallel()

	m := newMapper()

	t.Run("absent categories are kept", func(t *testing.T) {
		t.Parallel()

		post, apierr := m.DecodePost([]byte(`{"title":"new"}`), representation.ModePartial, storedPost())
		require.Nil(t, apierr)
		assert.Equal(t, "new", post.Title)
		assert.Equal(t, "old content", post.Content)
		assert.Len(t, post.Categories, 2)
	})

	t.Run("empty categories clear", func(t *testing.T) {
		t.Parallel()

		post, apierr := m.DecodePost([]byte(`{"categories":[]}`), representation.ModePartial, storedPost())
		require.Nil(t, apierr)
		assert.Equal(t, "old", post.Title)
		assert.NotNil(t, post.Categories)
		assert.Empty(t, post.Categories)
	})

	t.Run("null counts as absent", func(t *testing.T) {
		t.Parallel()

		post, apierr := m.DecodePost([]byte(`{"title":null,"categories":null}`), representation.ModePartial, storedPost())
		require.Nil(t, apierr)
		assert.Equal(t, "old", post.Title)
		assert.Len(t, post.Categories, 2)
	})

	t.Run("blank title rejected", func(t *testing.T) {
		t.Parallel()

		_, apierr := m.DecodePost([]byte(`{"title":"   "}`), representation.ModePartial, storedPost())
		assert.Equal(t, apierror.KindValidation, apierror.KindOf(apierr))
	})
}

func TestDecodePost_ResolverFailure(t *testing.T) {
	t.Parallel()

	m := representation.NewMapper(validators.New(), &fakeCategories{err: errors.New("db down")})

	_, apierr := m.DecodePost([]byte(`{"title":"t","categories":["a"]}`), representation.ModeCreate, nil)
	assert.Equal(t, apierror.InternalServerError, apierr)
}

func TestDecodeCategory(t *testing.T) {
	t.Parallel()

	m := newMapper()
	existing := &entity.Category{Tag: "go", Name: "Golang"}

	tests := []struct {
		name     string
		body     string
		mode     representation.Mode
		expected *entity.Category
		field    string
	}{
		{"create", `{"tag":"rust","name":"Rust"}`, representation.ModeCreate, &entity.Category{Tag: "rust", Name: "Rust"}, ""},
		{"create tag too long", `{"tag":"abcdefghijk","name":"x"}`, representation.ModeCreate, nil, "tag"},
		{"create tag with spaces", `{"tag":"a b","name":"x"}`, representation.ModeCreate, nil, "tag"},
		{"create without name", `{"tag":"x"}`, representation.ModeCreate, nil, "name"},
		{"full rename", `{"name":"Go"}`, representation.ModeFull, &entity.Category{Tag: "go", Name: "Go"}, ""},
		{"full same tag", `{"tag":"go","name":"Go"}`, representation.ModeFull, &entity.Category{Tag: "go", Name: "Go"}, ""},
		{"full other tag", `{"tag":"upd","name":"Go"}`, representation.ModeFull, nil, "tag"},
		{"full without name", `{}`, representation.ModeFull, nil, "name"},
		{"partial empty", `{}`, representation.ModePartial, &entity.Category{Tag: "go", Name: "Golang"}, ""},
		{"partial rename", `{"name":"Go"}`, representation.ModePartial, &entity.Category{Tag: "go", Name: "Go"}, ""},
		{"partial other tag", `{"tag":"x"}`, representation.ModePartial, nil, "tag"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			category, apierr := m.DecodeCategory([]byte(tt.body), tt.mode, existing)
			if tt.field != "" {
				assert.Contains(t, fieldErrors(t, apierr), tt.field)
				return
			}

			require.Nil(t, apierr)
			assert.Equal(t, tt.expected, category)
		})
	}

	assert.Equal(t, "Golang", existing.Name)
}

func TestDecodeProfile(t *testing.T) {
	t.Parallel()

	m := newMapper()
	existing := &entity.Profile{ID: 1, OwnerID: 2, Bio: "bio", Preferences: "prefs"}

	profile, apierr := m.DecodeProfile([]byte(`{"bio":"new","owner":9}`), representation.ModePartial, existing)
	require.Nil(t, apierr)
	assert.Equal(t, &entity.Profile{ID: 1, OwnerID: 2, Bio: "new", Preferences: "prefs"}, profile)

	profile, apierr = m.DecodeProfile([]byte(`{"bio":"new"}`), representation.ModeFull, existing)
	require.Nil(t, apierr)
	assert.Equal(t, &entity.Profile{ID: 1, OwnerID: 2, Bio: "new", Preferences: ""}, profile)

	profile, apierr = m.DecodeProfile(nil, representation.ModeCreate, nil)
	require.Nil(t, apierr)
	assert.Equal(t, &entity.Profile{}, profile)

	_, apierr = m.DecodeProfile([]byte(`{"bio":[]}`), representation.ModeCreate, nil)
	assert.Contains(t, fieldErrors(t, apierr), "bio")
}

func TestToPostResponse(t *testing.T) {
	t.Parallel()

	resp := representation.ToPostResponse(storedPost())
	assert.Equal(t, []string{"a", "b"}, resp.Categories)
	assert.Equal(t, int64(3), resp.Owner)
	assert.Equal(t, "1970-01-01T00:00:01.000Z", resp.CreatedAt)
	assert.Equal(t, "1970-01-01T00:00:02.000Z", resp.UpdatedAt)

	empty := representation.ToPostResponse(&entity.Post{})
	assert.NotNil(t, empty.Categories)
}

func TestToUserResponse(t *testing.T) {
	t.Parallel()

	user := &entity.User{
		ID:         3,
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@test.com",
		DateJoined: 0,
		Posts:      []*entity.Post{storedPost()},
	}

	resp := representation.ToUserResponse(user)
	assert.Nil(t, resp.Profile)
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, int64(7), resp.Posts[0].ID)
	assert.Equal(t, "1970-01-01T00:00:00.000Z", resp.DateJoined)

	user.Profile = &entity.Profile{Bio: "b", Preferences: "p"}
	resp = representation.ToUserResponse(user)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, "b", resp.Profile.Bio)
}
