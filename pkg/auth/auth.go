package auth

import (
	"context"
	"os"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"

	RoleUser      = "user"
	RoleLibrarian = "librarian"
)

var JWTKey = []byte(os.Getenv("JWT_KEY"))

// Claims is the token payload issued by the identity provider.
type Claims struct {
	Profile struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"profile"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type actorKeyType int

const actorKey actorKeyType = 1

// Actor identifies who performs a lifecycle command. Every service call takes
// it from the request context; the core never reads ambient session state.
type Actor struct {
	Name string
	Role string
}

func (a Actor) IsLibrarian() bool {
	return a.Role == RoleLibrarian
}

func SetAuthContext(ctx context.Context, username, role string) context.Context {
	return context.WithValue(ctx, actorKey, Actor{Name: username, Role: role})
}

func ActorFromContext(ctx context.Context) (Actor, error) {
	actor, ok := ctx.Value(actorKey).(Actor)
	if !ok || actor.Name == "" {
		return Actor{}, errors.New("no actor in context")
	}
	return actor, nil
}
