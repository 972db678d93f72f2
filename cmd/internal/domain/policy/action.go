package policy

// Action is the verb of an authorization question.
type Action int

const (
	ActionReadOne Action = iota
	ActionReadMany
	ActionCreate
	ActionUpdateFull
	ActionUpdatePartial
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionReadOne:
		return "read_one"
	case ActionReadMany:
		return "read_many"
	case ActionCreate:
		return "create"
	case ActionUpdateFull:
		return "update_full"
	case ActionUpdatePartial:
		return "update_partial"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// IsSafe reports whether the action only reads.
func (a Action) IsSafe() bool {
	return a == ActionReadOne || a == ActionReadMany
}

// Resource is the class of the object an action targets.
type Resource int

const (
	ResourceCategory Resource = iota
	ResourcePost
	ResourceProfile
	ResourceUser
)

func (r Resource) String() string {
	switch r {
	case ResourceCategory:
		return "category"
	case ResourcePost:
		return "post"
	case ResourceProfile:
		return "profile"
	case ResourceUser:
		return "user"
	default:
		return "unknown"
	}
}

// Owned is implemented by resources that belong to a single user.
type Owned interface {
	OwnedBy() int64
}
