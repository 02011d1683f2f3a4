// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is the persisted proof of login held by the client.
//
// It is written on successful login, registration or MFA submission and
// cleared on logoff. MfaPending is true while the server still expects an MFA
// code for this session.
type Session struct {
	UserID     string
	Token      string
	MfaPending bool
}

// LoginResult is the success body of POST /auth/login, POST /auth/register
// and POST /auth/mfa.
type LoginResult struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Mfa   bool   `json:"mfa"`
}

// Session converts a login result into the session that gets persisted.
func (l LoginResult) Session() Session {
	return Session{UserID: l.ID, Token: l.Token, MfaPending: l.Mfa}
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register.
//
// CaptchaAnswer and CaptchaID are only sent when the instance has captcha
// enabled (see [InstanceInfo.Captcha]).
type RegisterRequest struct {
	Username      string `json:"username" validate:"required,min=4,max=32"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required"`
	CaptchaAnswer string `json:"captchaAnswer,omitempty"`
	CaptchaID     string `json:"captchaId,omitempty"`
}
