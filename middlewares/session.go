package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fudr-web/services"
	"github.com/yeremiapane/fudr-web/utils"
)

const workspaceKey = "workspace"

// SessionManager ties a browser to its workspace through a signed cookie.
// The cookie carries the workspace id and the backend credential, so a
// signed-in browser stays signed in across restarts even though its cart
// does not.
type SessionManager struct {
	store      *services.WorkspaceStore
	signer     *utils.Signer
	cookieName string
	secure     bool
}

func NewSessionManager(store *services.WorkspaceStore, signer *utils.Signer, cookieName string, secure bool) *SessionManager {
	return &SessionManager{
		store:      store,
		signer:     signer,
		cookieName: cookieName,
		secure:     secure,
	}
}

// Middleware loads (or starts) the workspace of the calling browser.
func (m *SessionManager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(workspaceKey, m.load(c))
		c.Next()
	}
}

func (m *SessionManager) load(c *gin.Context) *services.Workspace {
	if raw, err := c.Cookie(m.cookieName); err == nil && raw != "" {
		claims, err := m.signer.ParseSessionToken(raw)
		if err == nil {
			ws, restored := m.store.Restore(claims.WorkspaceID, claims.AccessToken)
			if restored {
				utils.InfoLogger.Printf("Restored workspace %s from session cookie", ws.ID())
			}
			return ws
		}
		utils.InfoLogger.Printf("Ignoring invalid session cookie from %s: %v", c.ClientIP(), err)
	}

	ws := m.store.New()
	if err := m.writeCookie(c, ws.ID(), ""); err != nil {
		utils.ErrorLogger.Printf("Error issuing session cookie: %v", err)
	}
	return ws
}

// SignIn stores token as the workspace credential and persists it in the cookie.
func (m *SessionManager) SignIn(c *gin.Context, ws *services.Workspace, token string) error {
	ws.Lock()
	ws.SetToken(token)
	ws.Unlock()
	return m.writeCookie(c, ws.ID(), token)
}

func (m *SessionManager) writeCookie(c *gin.Context, workspaceID, token string) error {
	value, err := m.signer.GenerateSessionToken(workspaceID, token)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, value, int(m.signer.TTL().Seconds()), "/", "", m.secure, true)
	return nil
}

// CurrentWorkspace returns the workspace loaded by SessionManager.Middleware.
func CurrentWorkspace(c *gin.Context) *services.Workspace {
	v, _ := c.Get(workspaceKey)
	ws, _ := v.(*services.Workspace)
	return ws
}
