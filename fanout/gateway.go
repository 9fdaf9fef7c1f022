package fanout

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	socketio "github.com/zishang520/socket.io/v2/socket"
)

const namespaceDefault = "/"

var errInvalidAppID = errors.New("invalid application id")

// Gateway is the socket.io transport in front of the hub
type Gateway struct {
	hub    *Hub
	sio    *socketio.Server
	logger zerolog.Logger
}

type socketSubscriber struct {
	client *socketio.Socket
}

func (s socketSubscriber) ID() string {
	return string(s.client.Id())
}

func (s socketSubscriber) Emit(event string, payload any) error {
	return s.client.Emit(event, payload)
}

func NewGateway(hub *Hub, logger zerolog.Logger) *Gateway {
	g := &Gateway{
		hub:    hub,
		sio:    socketio.NewServer(nil, nil),
		logger: logger,
	}
	g.registerNamespace()
	return g
}

func (g *Gateway) registerNamespace() {
	nsp := g.sio.Of(namespaceDefault, nil)
	_ = nsp.On("connection", func(args ...any) {
		client, ok := args[0].(*socketio.Socket)
		if !ok {
			return
		}
		sub := socketSubscriber{client: client}
		g.logger.Debug().Str("conn_id", sub.ID()).Msg("viewer connected")

		_ = client.On(EventJoinApp, func(args ...any) {
			appID, err := parseAppID(args)
			if err != nil {
				_ = client.Emit(EventJoinAppError, JoinAppError{Error: err.Error()})
				return
			}
			g.hub.Join(sub, appID)
			_ = client.Emit(EventJoinedApp, JoinedApp{AppID: appID, RoomName: RoomName(appID)})
		})

		_ = client.On(EventLeaveApp, func(args ...any) {
			appID, err := parseAppID(args)
			if err != nil {
				return
			}
			g.hub.Leave(sub.ID(), appID)
		})

		_ = client.On(EventPing, func(...any) {
			_ = client.Emit(EventPong)
		})

		_ = client.On("disconnect", func(args ...any) {
			g.hub.Remove(sub.ID())
			g.logger.Debug().Str("conn_id", sub.ID()).Msg("viewer disconnected")
		})
	})
}

// Handler returns the socket.io HTTP handler mounted at /socket.io/
func (g *Gateway) Handler() http.Handler {
	return g.sio.ServeHandler(nil)
}

// Close disconnects every viewer
func (g *Gateway) Close() {
	g.sio.Close(nil)
}

// parseAppID accepts the application id as a JSON number or a numeric string
func parseAppID(args []any) (int64, error) {
	if len(args) == 0 {
		return 0, errInvalidAppID
	}

	var (
		id  int64
		err error
	)
	switch v := args[0].(type) {
	case float64:
		id = int64(v)
		if float64(id) != v {
			return 0, errInvalidAppID
		}
	case int:
		id = int64(v)
	case int64:
		id = v
	case json.Number:
		id, err = v.Int64()
	case string:
		id, err = strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	default:
		return 0, errInvalidAppID
	}
	if err != nil || id <= 0 {
		return 0, errInvalidAppID
	}
	return id, nil
}
