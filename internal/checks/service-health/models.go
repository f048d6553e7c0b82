package servicehealth

import "braindump-probe/internal/common/validation"

type Output struct {
	Status string

	Result *validation.Result
}
