package refresh

// State is the lifecycle position of a header or footer control.
type State int

const (
	StateIdle State = iota
	StatePulling
	StateRefreshing
	StateWillRefresh
	StateNoMoreData
)

// String returns a short lowercase label for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePulling:
		return "pulling"
	case StateRefreshing:
		return "refreshing"
	case StateWillRefresh:
		return "will-refresh"
	case StateNoMoreData:
		return "no-more-data"
	default:
		return "unknown"
	}
}

// Role tags which edge of the surface a control manages.
type Role int

const (
	RoleHeader Role = iota
	RoleFooter
)

func (r Role) String() string {
	if r == RoleFooter {
		return "footer"
	}
	return "header"
}

// GesturePhase mirrors the phase of the host's drag gesture recognizer.
type GesturePhase int

const (
	GesturePossible GesturePhase = iota
	GestureBegan
	GestureChanged
	GestureEnded
	GestureCancelled
)

func (p GesturePhase) String() string {
	switch p {
	case GestureBegan:
		return "began"
	case GestureChanged:
		return "changed"
	case GestureEnded:
		return "ended"
	case GestureCancelled:
		return "cancelled"
	default:
		return "possible"
	}
}

var defaultTitles = map[Role]map[State]string{
	RoleHeader: {
		StateIdle:        "Pull down to refresh",
		StatePulling:     "Release to refresh",
		StateRefreshing:  "Refreshing...",
		StateWillRefresh: "Refreshing...",
	},
	RoleFooter: {
		StateIdle:       "Tap or pull up to load more",
		StateRefreshing: "Loading more...",
		StateNoMoreData: "No more data",
	},
}
