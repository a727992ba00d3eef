package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	hub      *Hub
	srv      *http.Server
	ln       net.Listener
}

func NewServer(addr string, upgrader websocket.Upgrader, hub *Hub) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		hub:      hub,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket 升级失败")
		return
	}
	c, ok := s.hub.register(conn)
	if !ok {
		conn.Close()
		return
	}
	log.WithField("remote", conn.RemoteAddr().String()).Info("客户端已连接")
	go s.hub.handleResponse(c)
	s.hub.handleRequest(c)
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

// Start 同步监听端口，然后在后台提供服务
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.ln = ln
	s.srv = &http.Server{Handler: s.Handler()}
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("实时推送服务异常退出")
		}
	}()
	log.WithField("addr", ln.Addr().String()).Info("实时推送已启动")
	return nil
}

func (s *Server) Addr() string {
	if s.ln == nil {
		return s.addr
	}
	return s.ln.Addr().String()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
