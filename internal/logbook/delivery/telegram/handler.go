package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"halsologg/internal/logbook"
	"halsologg/internal/model"
	pkgResponse "halsologg/pkg/response"
	pkgTelegram "halsologg/pkg/telegram"
)

// HandleWebhook is the gin handler for incoming Telegram webhook updates. It
// acknowledges immediately and processes the message in a background
// goroutine; Telegram expects a response within a few seconds.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message

	go func() {
		// The request context is cancelled once the 200 goes out.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processing failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, "Något gick fel. Försök igen.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	switch msg.Text {
	case "/start":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID,
			"Hej! Skriv en rad så loggar jag den:\n"+
				"• `5km löpning 30min`\n"+
				"• `200g kyckling lunch`\n"+
				"• `vikt 82.5`\n"+
				"• `7h sömn`\n\n"+
				"Skriv `igen` för att upprepa din senaste loggning.",
			"Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID,
			"*Exempel:*\n"+
				"`igår 10km löpning @5:30` - pass med datum och tempo\n"+
				"`bänkpress 5x5x80` - styrka med volym\n"+
				"`3 kaffe`, `12000 steg`, `midja 84` - vitals och mått\n"+
				"`igen` - upprepa senaste loggningen",
			"Markdown")
	}

	text := msg.Text
	if isRepeatCommand(text) {
		previous, ok := h.lastLines.Get(msg.Chat.ID)
		if !ok {
			return h.bot.SendMessage(ctx, msg.Chat.ID, "Inget att upprepa ännu.")
		}
		text = previous
	}

	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}

	out, err := h.uc.Process(ctx, sc, logbook.ProcessInput{Text: text, ChatID: msg.Chat.ID})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Process failed: %v", err)
		return h.bot.SendMessage(ctx, msg.Chat.ID, "Kunde inte logga raden. Försök igen.")
	}

	if out.Stored {
		h.lastLines.Add(msg.Chat.ID, text)
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, out.Reply)
}

func isRepeatCommand(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	return t == "igen" || t == "samma" || t == "samma igen"
}
