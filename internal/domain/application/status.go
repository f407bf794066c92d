package application

type ActionKind string

const (
	ActionDetail ActionKind = "detail"
	ActionRating ActionKind = "rating"
)

// DisplayStatus is the render-ready projection of the two underlying status
// fields. Every screen that lists applications consumes this one derivation.
type DisplayStatus struct {
	Text       string
	StyleClass string
	ColorToken string
	Action     ActionKind
}

const (
	TextPending  = "Chờ xử lý"
	TextRejected = "Đã từ chối"
	TextActive   = "Hoạt động"
	TextDone     = "Đã xong"
	TextUnknown  = "Không xác định"
)

var (
	displayPending  = DisplayStatus{Text: TextPending, StyleClass: "status-pending", ColorToken: "warning", Action: ActionDetail}
	displayRejected = DisplayStatus{Text: TextRejected, StyleClass: "status-rejected", ColorToken: "error", Action: ActionDetail}
	displayActive   = DisplayStatus{Text: TextActive, StyleClass: "status-active", ColorToken: "success", Action: ActionDetail}
	displayDone     = DisplayStatus{Text: TextDone, StyleClass: "status-done", ColorToken: "success", Action: ActionRating}
	displayUnknown  = DisplayStatus{Text: TextUnknown, StyleClass: "status-unknown", ColorToken: "neutral", Action: ActionDetail}
)

// ResolveDisplay maps an (application status, posting status) pair to its
// display state. Rules are evaluated in order, first match wins. Pairs outside
// the documented matrix resolve to an explicit unknown badge so bad backend
// data stays visible instead of masquerading as pending.
func ResolveDisplay(s Status, ps PostingStatus) DisplayStatus {
	switch {
	case s == StatusPending:
		return displayPending
	case s == StatusRejected:
		return displayRejected
	case s == StatusAccepted && ps == PostingApproved:
		return displayActive
	case s == StatusAccepted && (ps == PostingCompleted || ps == PostingClosed):
		return displayDone
	default:
		return displayUnknown
	}
}
