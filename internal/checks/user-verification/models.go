package userverification

import "braindump-probe/internal/common/validation"

type Output struct {
	Registered      bool
	RegistrationURL string

	Result *validation.Result
}
