package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	commonauth "outreach_web/server/common/auth"
	"outreach_web/server/common/infra/outreach"
	"outreach_web/server/common/infra/storage"
	commonlog "outreach_web/server/common/log"
	webapi "outreach_web/server/web/api"
	websvc "outreach_web/server/web/service"
)

type Server struct {
	HTTPServer *http.Server
}

func NewServer(cfg Config) (*Server, error) {
	store := newStore(cfg)
	apiClient := outreach.NewClient(cfg.OutreachBaseURL)

	users := websvc.NewUsersClient(apiClient)
	contacts := websvc.NewContactsClient(apiClient)
	templates := websvc.NewTemplatesClient(apiClient)
	sequences := websvc.NewSequencesClient(apiClient)
	inbox := websvc.NewInboxClient(apiClient)
	meetings := websvc.NewMeetingsClient(apiClient)
	system := websvc.NewSystemClient(apiClient)

	tokenSvc := commonauth.NewService(cfg.JWTSecret, cfg.JWTTTLMinutes)
	sessions := websvc.NewSessionService(store, users, tokenSvc, websvc.SessionConfig{
		DevFallback:      cfg.DevAuthFallback,
		DevAllowedEmails: cfg.DevAllowedEmails,
		SignupDelay:      cfg.SignupSimulatedDelay,
	})
	importer := websvc.NewImportService(contacts)

	h := webapi.NewHandler(sessions, users, contacts, templates, sequences, inbox, meetings, system, importer, tokenSvc)

	r := gin.Default()
	r.SetHTMLTemplate(webapi.MarketingTemplates())
	h.RegisterRoutes(r)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  20 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{HTTPServer: httpServer}, nil
}

// newStore picks the session backend. Redis is the default; startup does
// not fail when it is unreachable, the first session operation will.
func newStore(cfg Config) storage.Store {
	if cfg.SessionStore == "memory" {
		commonlog.Warnf("using in-memory session store, sessions will not survive a restart")
		return storage.NewMemoryStore()
	}
	redisStore := storage.NewRedisStore(cfg.RedisAddr, cfg.SessionTTL)
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := redisStore.Ping(pingCtx); err != nil {
		commonlog.Warnf("redis not reachable at %s: %v", cfg.RedisAddr, err)
	}
	return redisStore
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.HTTPServer.Shutdown(ctx)
}
