package dto

// StartSessionRequest represents the request to select a role
type StartSessionRequest struct {
	Role string `json:"role" binding:"required"`
}

// ApplicationForm represents the multipart application form
type ApplicationForm struct {
	Name        string `form:"name" binding:"required"`
	Email       string `form:"email" binding:"required"`
	CoverLetter string `form:"cover_letter" binding:"required"`
}
