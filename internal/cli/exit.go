package cli

import "github.com/alexanderramin/rutero/internal/domain"

// Exit codes let scripts tell caller mistakes from broken collaborators.
const (
	exitFailure    = 1
	exitValidation = 2
	exitNotFound   = 3
	exitConflict   = 4
)

func exitCode(err error) int {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return exitValidation
	case domain.KindNotFound:
		return exitNotFound
	case domain.KindConflict:
		return exitConflict
	default:
		return exitFailure
	}
}
