package httpapi

import (
	"net/http"
	"time"

	"adboard.org/internal/auth"
)

// cookieJar adapts a request/response pair to the auth.Jar interface. The
// session credential travels in an HTTP-only, same-site cookie scoped to the
// whole application path.
type cookieJar struct {
	w      http.ResponseWriter
	r      *http.Request
	secure bool
}

var _ auth.Jar = (*cookieJar)(nil)

func (a *API) jar(w http.ResponseWriter, r *http.Request) *cookieJar {
	return &cookieJar{w: w, r: r, secure: a.secureCookies}
}

func (j *cookieJar) Token() (string, bool) {
	c, err := j.r.Cookie(auth.CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

func (j *cookieJar) SetToken(token string, expires time.Time) {
	http.SetCookie(j.w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(auth.SessionTTL / time.Second),
		Expires:  expires,
	})
}

func (j *cookieJar) ClearToken() {
	http.SetCookie(j.w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// hasSessionCookie reports cookie presence only. The route gate uses this
// cheap check; handlers always resolve the credential through the auth
// service before touching data.
func hasSessionCookie(r *http.Request) bool {
	c, err := r.Cookie(auth.CookieName)
	return err == nil && c.Value != ""
}
