// Package domain holds the record shapes exchanged with the outreach
// backend. Every record is owned by the backend; this app only keeps
// transient in-memory copies plus the per-session state in Session.
package domain

// User is the minimal display identity persisted with a session.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AccountProfile is the account record fetched from /get_user once the
// account id is known. Field names follow the backend payload.
type AccountProfile struct {
	AccountID        string `json:"account_id"`
	AccountName      string `json:"account_name"`
	AccountEmail     string `json:"account_email"`
	CompanyName      string `json:"company_name"`
	ContactPersonNum int    `json:"contact_person_num"`
	Plan             string `json:"plan"`
	CreatedAt        string `json:"created_at"`
}

// Session is the in-memory snapshot rehydrated from durable storage.
// UserData may lag User or be nil; display layers must tolerate that.
type Session struct {
	Authenticated bool            `json:"authenticated"`
	User          *User           `json:"user,omitempty"`
	AccountID     string          `json:"account_id,omitempty"`
	UserData      *AccountProfile `json:"user_data,omitempty"`
}

type Contact struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Title     string `json:"title"`
	Phone     string `json:"phone"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type Template struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Category  string `json:"category"`
	UpdatedAt string `json:"updated_at"`
}

// Sequence statuses mirror the backend: draft, active, paused.
type Sequence struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Status          string         `json:"status"`
	MaxEmailsPerDay int            `json:"max_emails_per_day"`
	SendInterval    int            `json:"send_interval"`
	Steps           []SequenceStep `json:"steps,omitempty"`
}

type SequenceStep struct {
	StepNumber int    `json:"step_number"`
	TemplateID string `json:"template_id"`
	DelayDays  int    `json:"delay_days"`
	SentCount  int    `json:"sent_count"`
}

// ScheduledEmail is a send planned by the backend; the calendar view
// windows and orders these client-side. ScheduledDate is "2006-01-02",
// ScheduledTime "15:04".
type ScheduledEmail struct {
	ID            string `json:"id"`
	ContactName   string `json:"contact_name"`
	ContactEmail  string `json:"contact_email"`
	Subject       string `json:"subject"`
	SequenceID    string `json:"sequence_id"`
	Status        string `json:"status"`
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
}

type Thread struct {
	ID           string    `json:"id"`
	ContactEmail string    `json:"contact_email"`
	Subject      string    `json:"subject"`
	LastActivity string    `json:"last_activity"`
	Messages     []Message `json:"messages,omitempty"`
}

type Message struct {
	ID        string `json:"id"`
	ThreadID  string `json:"thread_id"`
	Direction string `json:"direction"`
	From      string `json:"from"`
	To        string `json:"to"`
	Body      string `json:"body"`
	SentAt    string `json:"sent_at"`
}

type Meeting struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ContactEmail string `json:"contact_email"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	DurationMin  int    `json:"duration_min"`
	Location     string `json:"location"`
	Notes        string `json:"notes"`
}

// Report is the aggregate stat block rendered on the dashboard home.
type Report struct {
	EmailsSent    int     `json:"emails_sent"`
	EmailsOpened  int     `json:"emails_opened"`
	Replies       int     `json:"replies"`
	MeetingsSet   int     `json:"meetings_set"`
	OpenRate      float64 `json:"open_rate"`
	ReplyRate     float64 `json:"reply_rate"`
	ActiveContact int     `json:"active_contacts"`
}

// ImportSummary is the outcome of a bulk contact import. Errors holds one
// entry per failed row, capped by the import service; Truncated reports how
// many further failures were not itemized.
type ImportSummary struct {
	Total     int      `json:"total"`
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors"`
	Truncated int      `json:"truncated,omitempty"`
}
