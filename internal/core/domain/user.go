package domain

import "time"

// Role defines the possible roles an account can hold in the directory.
// Exactly one role per account; a nil role only exists transiently between
// provisioning and the first admin assignment.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleStaff  Role = "staff"
	RoleViewer Role = "viewer"
)

// IsValid reports whether r is one of the three known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleViewer:
		return true
	}
	return false
}

// Action is a protected operation checked against the role table.
type Action string

const (
	ActionViewDashboard Action = "view_dashboard"
	ActionManageCatalog Action = "manage_catalog"
	ActionRecordSale    Action = "record_sale"
	ActionInitializeDay Action = "initialize_day"
	ActionEditDraftCell Action = "edit_draft_cell"
	ActionPublishDay    Action = "publish_day"
	ActionViewReports   Action = "view_reports"
	ActionManageUsers   Action = "manage_users"
)

// minimumRole is the statically defined per-action minimum-role table.
// Admin satisfies every action; staff satisfies staff+viewer actions.
var minimumRole = map[Action]Role{
	ActionViewDashboard: RoleViewer,
	ActionManageCatalog: RoleStaff,
	ActionRecordSale:    RoleStaff,
	ActionInitializeDay: RoleStaff,
	ActionEditDraftCell: RoleStaff,
	ActionPublishDay:    RoleAdmin,
	ActionViewReports:   RoleAdmin,
	ActionManageUsers:   RoleAdmin,
}

// roleRank orders roles by privilege. Unknown roles rank below viewer so a
// corrupted role value can never satisfy any action.
var roleRank = map[Role]int{
	RoleViewer: 1,
	RoleStaff:  2,
	RoleAdmin:  3,
}

// Authorizes reports whether a holder of role r may perform action a.
// Unknown actions are denied.
func (r Role) Authorizes(a Action) bool {
	required, ok := minimumRole[a]
	if !ok {
		return false
	}
	return roleRank[r] >= roleRank[required]
}

// AuthProvider identifies how an account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User is a directory entry mapping an authenticated identity to a role.
type User struct {
	UserID         string       `json:"userID"`
	Email          string       `json:"email"`
	Name           string       `json:"name"`
	Role           *Role        `json:"role"` // nil until assigned
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"providerUserID,omitempty"`
	PasswordHash   string       `json:"-"`
	AuditFields
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	DeletedAt              *time.Time `json:"deletedAt,omitempty"`
}

// AllowedEmail is a pre-authentication allowlist entry. Whether an address may
// even attempt to log in is independent of whether an account exists yet.
type AllowedEmail struct {
	Email     string    `json:"email"`
	AddedBy   string    `json:"addedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginEvent records one successful authentication.
type LoginEvent struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userID"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	LoginAt   time.Time `json:"loginAt"`
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
}
