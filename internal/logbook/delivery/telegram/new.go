package telegram

import (
	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"

	"halsologg/internal/logbook"
	pkgLog "halsologg/pkg/log"
	pkgTelegram "halsologg/pkg/telegram"
)

// lastLineCacheSize bounds the per-chat repeat memory.
const lastLineCacheSize = 256

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l   pkgLog.Logger
	uc  logbook.UseCase
	bot *pkgTelegram.Bot

	// lastLines remembers the last loggable line per chat, powering the
	// "igen" repeat command.
	lastLines *lru.Cache[int64, string]
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc logbook.UseCase, bot *pkgTelegram.Bot) Handler {
	cache, _ := lru.New[int64, string](lastLineCacheSize)
	return &handler{
		l:         l,
		uc:        uc,
		bot:       bot,
		lastLines: cache,
	}
}
