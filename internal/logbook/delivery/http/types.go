package http

import (
	"halsologg/internal/interpreter"
	"halsologg/internal/logbook"
)

type processReq struct {
	Text string `json:"text" binding:"required"`
}

type processResp struct {
	Kind    string             `json:"kind"`
	Date    string             `json:"date,omitempty"`
	Intent  interpreter.Intent `json:"intent"`
	EntryID string             `json:"entry_id,omitempty"`
	Stored  bool               `json:"stored"`
	Reply   string             `json:"reply"`
}

func newProcessResp(out logbook.ProcessOutput) processResp {
	return processResp{
		Kind:    string(out.Intent.Kind),
		Date:    out.Intent.Date,
		Intent:  out.Intent,
		EntryID: out.EntryID,
		Stored:  out.Stored,
		Reply:   out.Reply,
	}
}

type listResp struct {
	Kind    string `json:"kind"`
	Count   int    `json:"count"`
	Entries any    `json:"entries"`
}

type suggestResp struct {
	Names []string `json:"names"`
}
