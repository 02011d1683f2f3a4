package models

// InstanceInfo describes the server instance. Captcha reports whether
// registration requires a captcha answer.
type InstanceInfo struct {
	Host    string `json:"host,omitempty"`
	Name    string `json:"name,omitempty"`
	About   string `json:"about,omitempty"`
	Captcha bool   `json:"captcha"`
}

// Captcha is the body of GET /captcha.
type Captcha struct {
	ID string `json:"id"`
}
