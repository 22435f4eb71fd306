// internal/httpserver/session.go
//
// Browser session identity.
// A session cookie carries an HS256 JWT whose "sid" claim names an entry in
// the session store. Missing, invalid or expired tokens (and sessions the
// store has swept) get a fresh session with a new controller.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/sylver/apps/go-viz/internal/store"
)

const sessionCookieName = "sylver_session"

type ctxSessionKey struct{}

// withSession resolves (or creates) the caller's session and puts it in the
// request context.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.sessionFromCookie(r)
		if err != nil {
			sess, err = s.newSession(r.Context(), w)
			if err != nil {
				log.Error().Err(err).Msg("create session")
				http.Error(w, `{"error":"session_failed"}`, http.StatusInternalServerError)
				return
			}
		}
		ctx := context.WithValue(r.Context(), ctxSessionKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFrom(r *http.Request) *store.Session {
	sess, _ := r.Context().Value(ctxSessionKey{}).(*store.Session)
	return sess
}

func (s *Server) sessionFromCookie(r *http.Request) (*store.Session, error) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return nil, errors.New("no session cookie")
	}
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(c.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.opts.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return nil, errors.New("invalid session token")
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return nil, errors.New("session token without sid")
	}
	return s.store.Get(r.Context(), sid)
}

func (s *Server) newSession(ctx context.Context, w http.ResponseWriter) (*store.Session, error) {
	sess := store.NewSession(uuid.NewString(), s.newController())
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	tok, exp, err := s.signSession(sess.ID)
	if err != nil {
		return nil, err
	}
	sameSite := http.SameSiteLaxMode
	if s.opts.SecureCookies {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.SecureCookies,
		SameSite: sameSite,
		Expires:  exp,
	})
	log.Info().Str("session", sess.ID).Msg("session created")
	return sess, nil
}

// signSession creates the HS256 token for sid, expiring with the session TTL.
func (s *Server) signSession(sid string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.opts.SessionTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sid,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	})
	ss, err := t.SignedString([]byte(s.opts.JWTSecret))
	return ss, exp, err
}
