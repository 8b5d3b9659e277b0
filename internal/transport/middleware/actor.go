package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/heartmarshall/snaptrail/pkg/ctxutil"
)

// ActorHeader is the default header naming who performs a change.
const ActorHeader = "X-Actor"

// ErrUnauthenticated rejects a request whose actor cannot be established.
var ErrUnauthenticated = errors.New("unauthenticated")

// ActorResolver names the actor of a request. An empty actor with a nil
// error means anonymous; entries are then recorded without an actor.
type ActorResolver interface {
	ResolveActor(r *http.Request) (string, error)
}

// ActorResolverFunc adapts a function to ActorResolver.
type ActorResolverFunc func(r *http.Request) (string, error)

func (f ActorResolverFunc) ResolveActor(r *http.Request) (string, error) { return f(r) }

// HeaderActor resolves the actor from a request header.
func HeaderActor(header string) ActorResolver {
	return ActorResolverFunc(func(r *http.Request) (string, error) {
		return strings.TrimSpace(r.Header.Get(header)), nil
	})
}

// Actor stores the resolved actor in the context. Resolver errors answer
// 401 when they wrap ErrUnauthenticated and 500 otherwise.
func Actor(resolver ActorResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := resolver.ResolveActor(r)
			switch {
			case errors.Is(err, ErrUnauthenticated):
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			case err != nil:
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			case actor == "":
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithActor(r.Context(), actor)))
		})
	}
}
