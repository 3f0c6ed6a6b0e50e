package session

import "log"

// Variant tells the presentation how to style a notice.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notice is a user-facing message emitted on a session transition.
type Notice struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

// Notifier receives session notices.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) {
	f(n)
}

// LogNotifier writes notices to the standard logger.
type LogNotifier struct{}

func (LogNotifier) Notify(n Notice) {
	log.Printf("[Session] %s: %s", n.Title, n.Description)
}

var (
	noticeAdminWelcome = Notice{
		Title:       "Welcome back, Admin!",
		Description: "You have been logged in successfully.",
		Variant:     VariantDefault,
	}
	noticeCustomerWelcome = Notice{
		Title:       "Welcome to CleanDrop!",
		Description: "You have been logged in successfully.",
		Variant:     VariantDefault,
	}
	noticeLoginFailed = Notice{
		Title:       "Login Failed",
		Description: "Invalid credentials. Please try again.",
		Variant:     VariantDestructive,
	}
	noticeAccountCreated = Notice{
		Title:       "Account Created!",
		Description: "Welcome to the CleanDrop family.",
		Variant:     VariantDefault,
	}
	noticeLoggedOut = Notice{
		Title:       "Logged Out",
		Description: "See you soon!",
		Variant:     VariantDefault,
	}
	noticeProfileUpdated = Notice{
		Title:       "Profile Updated",
		Description: "Your changes have been saved.",
		Variant:     VariantDefault,
	}
)
