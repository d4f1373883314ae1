package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUser = "LOGIN_USER"

// Principal is the security context of an authenticated user, carried in the
// cookie session for the lifetime of the client session.
type Principal struct {
	Username string
	Roles    []string
}

func init() {
	gob.Register(Principal{})
}

func SetLoginUser(c *gin.Context, p *Principal) error {
	s := sessions.Default(c)
	s.Set(loginUser, *p)
	return s.Save()
}

func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	return s.Save()
}

func GetLoginUser(c *gin.Context) *Principal {
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if p, ok := obj.(Principal); ok {
			return &p
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
