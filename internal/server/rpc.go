package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// rpcRequest is a JSON-RPC 2.0 request with a single object parameter.
type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// handleJSONRPC routes JSON-RPC 2.0 requests to the sampling methods.
func (s *Server) handleJSONRPC(w http.ResponseWriter, r *http.Request) {
	var request rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.respondRPCError(w, nil, -32700, "Parse error")
		return
	}

	if request.JSONRPC != "2.0" {
		s.respondRPCError(w, request.ID, -32600, "Invalid Request")
		return
	}

	var (
		result any
		err    error
	)
	switch request.Method {
	case "space.sample":
		var req sampleRequest
		if err = json.Unmarshal(request.Params, &req); err != nil {
			s.respondRPCError(w, request.ID, -32602, "Invalid params")
			return
		}
		result, err = s.sample(req)
	case "space.normalize":
		var req normalizeRequest
		if err = json.Unmarshal(request.Params, &req); err != nil {
			s.respondRPCError(w, request.ID, -32602, "Invalid params")
			return
		}
		result, err = s.normalize(req)
	default:
		s.respondRPCError(w, request.ID, -32601, "Method not found")
		return
	}

	if err != nil {
		s.logger.Warn("rpc request rejected",
			zap.String("method", request.Method),
			zap.Error(err),
		)
		s.respondRPCError(w, request.ID, -32602, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"jsonrpc": "2.0",
		"id":      request.ID,
		"result":  result,
	})
}

// respondRPCError sends a JSON-RPC 2.0 error response.
func (s *Server) respondRPCError(w http.ResponseWriter, id any, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}
