package deps

import (
	"context"
	"time"

	"github.com/ekpss/quizapp/internal/bookmark"
	"github.com/ekpss/quizapp/internal/index"
	"github.com/ekpss/quizapp/internal/logger"
	"github.com/ekpss/quizapp/internal/version"
)

// Pinger reports whether the backing store answers
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Build         version.Info
	TimeNow       func() time.Time  // for testing, defaults to time.Now
	AllowedHosts  []string          // Host headers allowed to access the ops endpoints
	AllowedCIDRS  []string          // IPs allowed to access the ops endpoints
	TrustProxy    bool              // true if running behind a trusted reverse proxy (e.g., cloudflared)
	RateBurst     int               // bookmark mutations allowed in a burst per user
	RatePerMin    int               // bookmark mutations refilled per user per minute
	StoreKind     string            // "redis" | "memory"
	ContentFile   string            // Path to the content file
	Store         Pinger            // Bookmark store health
	Bookmarks     *bookmark.Service // Bookmark rules
	Catalog       *index.Catalog    // In-memory content catalog
	ReloadTrigger chan struct{}     // Channel to trigger manual content reload
}
