package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"halsologg/internal/logbook"
	"halsologg/internal/model"
	"halsologg/pkg/response"
)

// defaultUserID identifies requests without an explicit user header. The
// service is single-user by default.
const defaultUserID = "local"

func scopeFrom(c *gin.Context) model.Scope {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		userID = defaultUserID
	}
	return model.Scope{UserID: userID}
}

// Process interprets one omnibox line and stores the resulting entry.
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Process(ctx, scopeFrom(c), logbook.ProcessInput{Text: req.Text})
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newProcessResp(out))
}

// List returns stored entries of one kind with optional ?from=&to=&limit=.
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	kind := model.EntryKind(c.Param("kind"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	out, err := h.uc.List(ctx, scopeFrom(c), logbook.ListInput{
		Kind:  kind,
		From:  c.Query("from"),
		To:    c.Query("to"),
		Limit: limit,
	})
	if err == logbook.ErrUnknownKind || err == logbook.ErrInvalidRange {
		response.Error(c, err, nil)
		return
	}
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, listResp{Kind: string(kind), Count: out.Count, Entries: listEntries(kind, out)})
}

// Suggest returns previously logged meal names for ?q= prefix completion.
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	limit, _ := strconv.Atoi(c.Query("limit"))
	out, err := h.uc.Suggest(ctx, scopeFrom(c), logbook.SuggestInput{
		Prefix: c.Query("q"),
		Limit:  limit,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggest: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, suggestResp{Names: out.Names})
}

func listEntries(kind model.EntryKind, out logbook.ListOutput) any {
	switch kind {
	case model.EntryExercise:
		return out.Exercise
	case model.EntryMeal:
		return out.Meals
	case model.EntryWeight:
		return out.Weights
	case model.EntryVitals:
		return out.Vitals
	case model.EntryMeasurement:
		return out.Measurements
	}
	return nil
}
