package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// RouteStream serves repeated shortest path queries over one websocket
// connection: each text frame carries a shortestPathRequest, each reply the
// usual response envelope. one goroutine per connection.
func (api *routingAPI) RouteStream(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		api.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	go func() {
		defer conn.Close()

		for {
			msg, op, err := wsutil.ReadClientData(conn)
			if err != nil {
				if err != io.EOF {
					api.log.Debug("websocket read ended", zap.Error(err))
				}
				return
			}
			if op != ws.OpText {
				continue
			}

			var request shortestPathRequest
			if err := json.Unmarshal(msg, &request); err != nil {
				api.writeStreamError(conn, "BAD_REQUEST", err.Error())
				continue
			}

			result, err := api.routingService.ShortestPath(request.OriginLat, request.OriginLon,
				request.DestinationLat, request.DestinationLon, request.Criterion, request.ModelKey)
			if err != nil {
				api.writeStreamError(conn, "QUERY_FAILED", err.Error())
				continue
			}

			reply, err := json.Marshal(envelope{"data": NewShortestPathResponse(result)})
			if err != nil {
				api.writeStreamError(conn, "INTERNAL", "failed to encode response")
				continue
			}
			if err := wsutil.WriteServerText(conn, reply); err != nil {
				return
			}
		}
	}()
}

func (api *routingAPI) writeStreamError(conn io.Writer, code, message string) {
	resp := errorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message

	if payload, err := json.Marshal(resp); err == nil {
		wsutil.WriteServerText(conn, payload)
	}
}
