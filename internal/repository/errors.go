package repository

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrPropertyNotFound     = errors.New("property not found")
	ErrDuplicateSlug        = errors.New("slug already exists")
	ErrInquiryNotFound      = errors.New("inquiry not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrContactNotFound      = errors.New("contact inquiry not found")
)
