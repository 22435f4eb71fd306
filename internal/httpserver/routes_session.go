// internal/httpserver/routes_session.go
//
// Session endpoints. Each handler turns one request into one controller
// intent, dispatches it on the caller's session and answers with the
// resulting view model.
//   - GET  /session              → current view
//   - POST /session/input        → {"text": "9,11"}
//   - POST /session/length       → {"value": 120}
//   - POST /session/submit       → look up the current input
//   - POST /session/undo         → restore the previous generator set
//   - POST /session/click/{index} → play a cell

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/sylver/apps/go-viz/internal/controller"
)

type inputReq struct {
	Text string `json:"text"`
}

type lengthReq struct {
	Value int `json:"value"`
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	writeView(w, sessionFrom(r).Snapshot())
}

func (s *Server) handleInput(w http.ResponseWriter, r *http.Request) {
	var req inputReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	writeView(w, sessionFrom(r).Dispatch(controller.InputChanged{Text: req.Text}))
}

func (s *Server) handleLength(w http.ResponseWriter, r *http.Request) {
	var req lengthReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	writeView(w, sessionFrom(r).Dispatch(controller.LengthChanged{Value: req.Value}))
}

func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, `{"error":"bad_index"}`, http.StatusBadRequest)
		return
	}
	writeView(w, sessionFrom(r).Dispatch(controller.CellClicked{Index: i}))
}

// intent adapts a body-less intent into a handler.
func (s *Server) intent(build func(*http.Request) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeView(w, sessionFrom(r).Dispatch(build(r)))
	}
}
