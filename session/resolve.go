package session

import (
	"context"
	"errors"
	"strings"

	"worklog/store"
)

var ErrEmployeeNotFound = errors.New("employee not found")

// Resolve signs in by first name: the trimmed name is matched
// case-insensitively and the first matching employee wins, with no attempt
// to disambiguate. Backend errors are returned as is so the caller can log
// them; a miss is ErrEmployeeNotFound.
func Resolve(ctx context.Context, repo store.Repository, firstName string) (*Identity, error) {
	name := strings.TrimSpace(firstName)
	if name == "" {
		return nil, ErrEmployeeNotFound
	}

	e, err := repo.FindEmployeeByName(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}

	id := FromEmployee(e)
	return &id, nil
}
