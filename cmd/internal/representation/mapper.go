package representation

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"

	"blogapi/cmd/internal/domain/entity"
	"blogapi/cmd/internal/utils"
	"blogapi/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"github.com/samber/lo"
)

// Mode selects the field rules applied when decoding a payload.
type Mode int

const (
	// ModeCreate requires the required fields; server fields are derived.
	ModeCreate Mode = iota
	// ModeFull replaces every client-writable field; absent optional fields reset to defaults.
	ModeFull
	// ModePartial changes only the fields present in the payload.
	ModePartial
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeFull:
		return "full"
	case ModePartial:
		return "partial"
	default:
		return "unknown"
	}
}

type CategoryResolver interface {
	FindAllInTags(tags []string) ([]*entity.Category, error)
}

// Mapper converts payloads into entities and entities into responses.
// Decoding never touches storage except to resolve category tags.
type Mapper struct {
	validate   *validator.Validate
	categories CategoryResolver
}

func NewMapper(validate *validator.Validate, categories CategoryResolver) *Mapper {
	return &Mapper{validate: validate, categories: categories}
}

// decode unmarshals 'body' into 'dst', trims it and runs the struct validation.
// An empty body decodes as an empty object.
func (m *Mapper) decode(body []byte, dst any) apierror.ErrorResponse {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	if err := json.Unmarshal(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apierror.NewInvalidTypeError(typeErr.Field, typeErr.Type.String())
		}
		return apierror.MalformedJSONError
	}

	utils.Sanitize(dst)
	if err := m.validate.Struct(dst); err != nil {
		if verr := apierror.FromValidationError(err); verr != nil {
			return verr
		}
		log.Errorf("unexpected validation failure on %T: %v", dst, err)
		return apierror.InternalServerError
	}
	return nil
}

// resolveCategories turns tags into stored categories. Any unknown tag is a validation error.
func (m *Mapper) resolveCategories(tags []string) ([]*entity.Category, apierror.ErrorResponse) {
	found, err := m.categories.FindAllInTags(tags)
	if err != nil {
		log.Errorf("failed to resolve categories %v: %v", tags, err)
		return nil, apierror.InternalServerError
	}

	if len(found) != len(tags) {
		known := lo.Map(found, func(c *entity.Category, _ int) string {
			return c.Tag
		})
		missing, _ := lo.Difference(tags, known)
		slices.Sort(missing)
		return nil, apierror.NewUnknownCategoriesError(missing)
	}
	return found, nil
}

func sortedTags(categories []*entity.Category) []string {
	tags := lo.Map(categories, func(c *entity.Category, _ int) string {
		return c.Tag
	})
	slices.Sort(tags)
	return tags
}
