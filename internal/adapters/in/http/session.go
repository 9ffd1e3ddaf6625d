package http

import (
	"net/http"

	"fueldelivery/internal/core/domain/model/identity"
	"fueldelivery/internal/core/domain/model/kernel"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	sessionName   = "fueldelivery-session"
	principalKey  = "principal"
	flashSuccess  = "success"
	flashError    = "error"
	sessionMaxAge = 7 * 24 * 60 * 60
)

// NewSessionStore returns the cookie store backing the identity gate.
func NewSessionStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options.Path = "/"
	store.Options.MaxAge = sessionMaxAge
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	return store
}

// Flashes are one-shot messages left by a redirecting request.
type Flashes struct {
	Success []string `json:"success"`
	Error   []string `json:"error"`
}

func (s *Server) session(c echo.Context) (*sessions.Session, error) {
	return s.sessions.Get(c.Request(), sessionName)
}

func (s *Server) signIn(c echo.Context, principal identity.Principal) error {
	sess, err := s.session(c)
	if err != nil {
		// A cookie signed with an old secret; start over.
		sess, err = s.sessions.New(c.Request(), sessionName)
		if sess == nil {
			return err
		}
	}
	sess.Values["role"] = principal.Role().String()
	sess.Values["id"] = principal.ID().String()
	sess.Values["name"] = principal.Name()
	return sess.Save(c.Request(), c.Response())
}

func (s *Server) signOut(c echo.Context) error {
	sess, err := s.session(c)
	if err != nil {
		return nil
	}
	sess.Options.MaxAge = -1
	sess.Values = map[any]any{}
	return sess.Save(c.Request(), c.Response())
}

// principalFrom rebuilds the principal stored by signIn.
func principalFrom(sess *sessions.Session) (identity.Principal, bool) {
	roleText, _ := sess.Values["role"].(string)
	idText, _ := sess.Values["id"].(string)
	name, _ := sess.Values["name"].(string)

	role, err := identity.ParseRole(roleText)
	if err != nil {
		return identity.Principal{}, false
	}
	id, err := kernel.UUIDFromString(idText)
	if err != nil {
		return identity.Principal{}, false
	}

	var principal identity.Principal
	if role == identity.RoleManager {
		principal, err = identity.NewManager(id, name)
	} else {
		principal, err = identity.NewUser(id, name)
	}
	return principal, err == nil
}

// requireRole is the identity gate: it resolves the principal once per request
// and refuses sessions of the other role.
func (s *Server) requireRole(role identity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := s.session(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, problem{Kind: kindUnauthorized, Message: "please sign in"})
			}
			principal, ok := principalFrom(sess)
			if !ok {
				return c.JSON(http.StatusUnauthorized, problem{Kind: kindUnauthorized, Message: "please sign in"})
			}
			if principal.Role() != role {
				return c.JSON(http.StatusForbidden, problem{
					Kind:    kindForbidden,
					Message: "signed in as " + principal.Role().String(),
				})
			}
			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

func currentPrincipal(c echo.Context) identity.Principal {
	principal, _ := c.Get(principalKey).(identity.Principal)
	return principal
}

func (s *Server) addFlash(c echo.Context, kind, message string) {
	sess, err := s.session(c)
	if err != nil {
		return
	}
	sess.AddFlash(message, kind)
	if err = sess.Save(c.Request(), c.Response()); err != nil {
		s.logger.WarnContext(c.Request().Context(), "failed to save flash", "error", err)
	}
}

// popFlashes reads and clears the pending flash messages.
func (s *Server) popFlashes(c echo.Context) Flashes {
	flashes := Flashes{Success: []string{}, Error: []string{}}

	sess, err := s.session(c)
	if err != nil {
		return flashes
	}
	success := sess.Flashes(flashSuccess)
	failure := sess.Flashes(flashError)
	if len(success) == 0 && len(failure) == 0 {
		return flashes
	}

	for _, f := range success {
		if msg, ok := f.(string); ok {
			flashes.Success = append(flashes.Success, msg)
		}
	}
	for _, f := range failure {
		if msg, ok := f.(string); ok {
			flashes.Error = append(flashes.Error, msg)
		}
	}
	if err = sess.Save(c.Request(), c.Response()); err != nil {
		s.logger.WarnContext(c.Request().Context(), "failed to clear flashes", "error", err)
	}
	return flashes
}
