package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserInactive = errors.New("user is inactive, talk with an admin")
var ErrForbidden = errors.New("access forbidden")
var ErrMissingToken = errors.New("token needed")
var ErrTokenInvalid = errors.New("token not valid")
