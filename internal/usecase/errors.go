package usecase

import "errors"

var (
	ErrForbidden               = errors.New("not authorized to perform this action")
	ErrUnauthorized            = errors.New("not authorized")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrAccountSuspended        = errors.New("your account has been suspended or deleted, please contact support")
	ErrEmailExists             = errors.New("user already exists")
	ErrAlreadyAgent            = errors.New("you are already an agent or admin")
	ErrSelfDelete              = errors.New("you cannot delete your own admin account")
	ErrCurrentPasswordMissing  = errors.New("please provide your current password to set a new one")
	ErrCurrentPasswordMismatch = errors.New("invalid current password")
	ErrInquirerEmailMissing    = errors.New("inquirer email not found")
	ErrEmailDeliveryFailed     = errors.New("email could not be sent")
	ErrAllFieldsRequired       = errors.New("all fields are required")
)
