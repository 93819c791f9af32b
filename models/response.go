package models

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type AuthResponse struct {
	Authenticated bool      `json:"authenticated"`
	User          *Identity `json:"user,omitempty"`
	Token         string    `json:"token,omitempty"`
}

type AssistantReply struct {
	Reply string `json:"reply"`
}
