package dtos

// SendOtpRequest is the payload for requesting a one-time code.
// Password and Role are only consulted for the login purpose.
type SendOtpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Purpose  string `json:"purpose" validate:"required,oneof=login reset-password delete-account"`
	Password string `json:"password" validate:"required_if=Purpose login"`
	Role     string `json:"role" validate:"required_if=Purpose login,omitempty,oneof=jobseeker recruiter"`
}

// VerifyOtpRequest is the payload for redeeming a one-time code.
// Password and Role are re-checked at verification time for the login
// purpose; NewPassword is only consulted for reset-password.
type VerifyOtpRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Otp         string `json:"otp" validate:"required,len=6,numeric"`
	Purpose     string `json:"purpose" validate:"required,oneof=login reset-password delete-account"`
	Password    string `json:"password" validate:"required_if=Purpose login"`
	Role        string `json:"role" validate:"required_if=Purpose login,omitempty,oneof=jobseeker recruiter"`
	NewPassword string `json:"newPassword" validate:"omitempty,min=6"`
}

type RegisterRequest struct {
	FullName    string `json:"fullname" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,len=10,numeric"`
	Password    string `json:"password" validate:"required,min=6"`
	Role        string `json:"role" validate:"required,oneof=jobseeker recruiter"`
}

type AccountResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"fullname"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}
