package viewstate

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"shopeasy/internal/domain"
	"shopeasy/internal/repository"
)

type UsersState struct {
	Loading bool
	Users   []domain.User
	Error   string
}

// UsersIntent is implemented by LoadUsers and RefreshUsers.
type UsersIntent interface {
	usersIntent()
}

type (
	LoadUsers    struct{}
	RefreshUsers struct{}
)

func (LoadUsers) usersIntent()    {}
func (RefreshUsers) usersIntent() {}

// Users backs the user list screen.
type Users struct {
	*session
	catalog repository.CatalogRepository

	mu    sync.Mutex
	state UsersState
}

func NewUsers(ctx context.Context, catalog repository.CatalogRepository, logger *slog.Logger) *Users {
	return &Users{
		session: newSession(ctx, logger.With("component", "users")),
		catalog: catalog,
	}
}

func (u *Users) State() UsersState {
	u.mu.Lock()
	defer u.mu.Unlock()
	st := u.state
	st.Users = slices.Clone(u.state.Users)
	return st
}

func (u *Users) Dispatch(intent UsersIntent) {
	switch intent.(type) {
	case LoadUsers, RefreshUsers:
		u.spawn(u.load)
	}
}

func (u *Users) Refresh() {
	u.Dispatch(RefreshUsers{})
}

func (u *Users) load(ctx context.Context) {
	u.update(func(st *UsersState) {
		st.Loading = true
		st.Error = ""
	})

	users, err := u.catalog.GetUsers(ctx)
	if err != nil {
		u.logger.Warn("failed to load users", "error", err)
		u.update(func(st *UsersState) {
			st.Loading = false
			st.Error = errorMessage(err)
		})
		return
	}

	u.update(func(st *UsersState) {
		st.Loading = false
		st.Users = users
	})
}

func (u *Users) update(fn func(st *UsersState)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fn(&u.state)
}
