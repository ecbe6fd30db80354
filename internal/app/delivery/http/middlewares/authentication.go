package middlewares

import (
	"context"
	"net/http"
	"strings"

	"prosedur-service/internal/pkg/constvars"
	"prosedur-service/internal/pkg/exceptions"
	"prosedur-service/internal/pkg/utils"
)

const bearerPrefix = "Bearer "

// Authenticate resolves the bearer token into the clinical session stored in
// redis and puts the raw session data on the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get(constvars.HeaderAuthorization)
		if authorization == "" || !strings.HasPrefix(authorization, bearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authorization, bearerPrefix)
		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		sessionData, err := m.SessionService.GetSessionData(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if sessionData == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidSession(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, sessionData)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
