// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package session

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/AleutianAI/LatticeQEC/services/lattice"
)

// WSRequest is one command from the interactive frontend.
type WSRequest struct {
	Action string  `json:"action"` // rebuild | toggle | sample | decode | params | snapshot
	Size   int     `json:"size,omitempty"`
	Code   string  `json:"code,omitempty"`
	Qubit  int     `json:"qubit,omitempty"`
	Type   string  `json:"type,omitempty"`
	Params *Params `json:"params,omitempty"`
}

// WSResponse answers every command with the resulting view, so the
// frontend can redraw after each interaction.
type WSResponse struct {
	Action      string    `json:"action"`
	Snapshot    *Snapshot `json:"snapshot,omitempty"`
	CorrectionX []bool    `json:"correction_x,omitempty"`
	CorrectionZ []bool    `json:"correction_z,omitempty"`
	Error       string    `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func sendJSON(ws *websocket.Conn, v any) error {
	err := ws.WriteJSON(v)
	if err != nil {
		slog.Warn("failed to write websocket JSON", "error", err)
	}
	return err
}

// HandleWebSocket drives a session over one websocket connection.
//
// The frontend is expected to disable its triggers while a command is
// outstanding; commands sent anyway while a remote request of the same
// kind is in flight come back with an error and no state change.
func HandleWebSocket(s *Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			slog.Error("failed to upgrade the websocket", "error", err)
			return
		}
		defer ws.Close()
		slog.Info("websocket client connected", "session", s.ID())

		if err := sendJSON(ws, map[string]any{
			"action":     "session_created",
			"session_id": s.ID(),
			"state":      s.State().String(),
		}); err != nil {
			return
		}

		for {
			var req WSRequest
			if err := ws.ReadJSON(&req); err != nil {
				slog.Info("websocket client disconnected", "error", err.Error())
				return
			}
			resp := WSResponse{Action: req.Action}

			switch req.Action {
			case "rebuild":
				err = s.Rebuild(c.Request.Context(), req.Size, req.Code)
			case "toggle":
				var typ lattice.ErrorType
				typ, err = lattice.ParseErrorType(req.Type)
				if err == nil {
					err = s.Toggle(req.Qubit, typ)
				}
			case "sample":
				err = s.SampleAndApply(c.Request.Context())
			case "decode":
				corr, derr := s.Decode(c.Request.Context())
				err = derr
				if derr == nil {
					resp.CorrectionX = corr.X
					resp.CorrectionZ = corr.Z
				}
			case "params":
				if req.Params != nil {
					s.SetParams(*req.Params)
				}
				err = nil
			case "snapshot":
				err = nil
			default:
				if sendJSON(ws, WSResponse{Action: req.Action, Error: "unknown action"}) != nil {
					return
				}
				continue
			}

			if err != nil {
				resp.Error = err.Error()
			} else if snap, serr := s.Snapshot(); serr != nil {
				resp.Error = serr.Error()
			} else {
				resp.Snapshot = snap
			}
			if sendJSON(ws, resp) != nil {
				return
			}
		}
	}
}
