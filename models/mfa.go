package models

// MfaCode carries a numeric one-time password for the /auth/mfa endpoints.
type MfaCode struct {
	Pass int `json:"pass"`
}

// MfaStartSetupResponse is returned when MFA enrollment begins. MfaURI is an
// otpauth:// URI suitable for QR code rendering.
type MfaStartSetupResponse struct {
	MfaURI string `json:"mfaUri"`
}
