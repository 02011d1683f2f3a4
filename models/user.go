package models

// User is an account as returned by GET /user/:id. Private fields (Email,
// Mfa, DeviceLimit, GmcID, AlertEmails) are only filled for the caller's own
// account.
type User struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email,omitempty"`
	Admin       bool     `json:"admin"`
	Mfa         bool     `json:"mfa,omitempty"`
	DeviceLimit int      `json:"deviceLimit,omitempty"`
	GmcID       int64    `json:"gmcId,omitempty"`
	AlertEmails bool     `json:"alertEmails,omitempty"`
	Self        bool     `json:"self,omitempty"`
	Devices     []Device `json:"devices,omitempty"`
}

// UserUpdateParams is a sparse patch for PUT /user/me: only set fields are
// serialised.
type UserUpdateParams struct {
	Username        *string `json:"username,omitempty"`
	Email           *string `json:"email,omitempty"`
	CurrentPassword *string `json:"currentPassword,omitempty"`
	NewPassword     *string `json:"newPassword,omitempty"`
	AlertEmails     *bool   `json:"alertEmails,omitempty"`
}

// IsEmpty reports whether the patch sets no field at all.
func (p UserUpdateParams) IsEmpty() bool {
	return p.Username == nil && p.Email == nil && p.CurrentPassword == nil &&
		p.NewPassword == nil && p.AlertEmails == nil
}

// DeleteMeRequest is the body of DELETE /user/me.
type DeleteMeRequest struct {
	Password string `json:"password"`
}

// String is a helper for building sparse patches.
func String(v string) *string {
	return &v
}

// Bool is a helper for building sparse patches.
func Bool(v bool) *bool {
	return &v
}
