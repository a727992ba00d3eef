package server

import (
	"encoding/json"
	"strconv"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"fdtd/deque"
	"fdtd/model"
)

const sendBuffer = 64

// Hub 保存最近的快照帧并推送给所有已连接的客户端。
// Write 不会阻塞计算，客户端处理不过来时丢弃该帧。
type Hub struct {
	mu      sync.Mutex
	history *deque.ArrDeque
	clients map[*client]struct{}
	closed  bool
	dropped int
}

type client struct {
	conn *websocket.Conn
	send chan model.Msg
}

func NewHub(history int) *Hub {
	return &Hub{
		history: deque.NewArrDeque(history),
		clients: make(map[*client]struct{}),
	}
}

// Write 拷贝场数据并广播，错误只记录日志，不会中止计算
func (h *Hub) Write(step int, electric, magnetic []float64) error {
	frame := &model.Frame{
		Step:     step,
		Electric: append([]float64(nil), electric...),
		Magnetic: append([]float64(nil), magnetic...),
	}
	data, err := json.Marshal(frame)
	if err != nil {
		log.WithError(err).Warn("快照编码失败")
		return nil
	}
	msg := model.Msg{Type: model.MsgFrame, Content: string(data)}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.history.AddLast(frame)
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.dropped++
			log.WithFields(log.Fields{
				"step":   step,
				"remote": c.conn.RemoteAddr().String(),
			}).Warn("客户端发送队列已满，丢弃快照")
		}
	}
	return nil
}

// Clients 当前连接数
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) Dropped() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

func (h *Hub) register(conn *websocket.Conn) (*client, bool) {
	// 预留历史帧的空间
	c := &client{conn: conn, send: make(chan model.Msg, sendBuffer+h.history.Capacity()+1)}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, false
	}
	h.clients[c] = struct{}{}
	return c, true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// 复制历史帧，避免持锁发送
func (h *Hub) backlog() []model.Msg {
	h.mu.Lock()
	defer h.mu.Unlock()
	msgs := make([]model.Msg, 0, h.history.Size())
	h.history.Traverse(func(_ int, item *model.Frame) {
		data, err := json.Marshal(item)
		if err != nil {
			return
		}
		msgs = append(msgs, model.Msg{Type: model.MsgFrame, Content: string(data)})
	})
	return msgs
}

// Close 断开所有客户端，之后的 Write 直接忽略
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
		c.conn.Close()
	}
}

func (h *Hub) handleRequest(c *client) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()
	for {
		var msg model.Msg
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("读取客户端消息失败")
			}
			return
		}
		switch msg.Type {
		case model.MsgHistory:
			msgs := h.backlog()
			if !h.enqueue(c, msgs...) {
				return
			}
			if !h.enqueue(c, model.Msg{Type: model.MsgHistory, Content: strconv.Itoa(len(msgs))}) {
				return
			}
		default:
			log.WithField("type", msg.Type).Warn("未知的消息类型")
		}
	}
}

// 写入发送队列，客户端已注销时返回 false
func (h *Hub) enqueue(c *client, msgs ...model.Msg) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return false
	}
	for _, m := range msgs {
		select {
		case c.send <- m:
		default:
			h.dropped++
		}
	}
	return true
}

func (h *Hub) handleResponse(c *client) {
	for reply := range c.send {
		if err := c.conn.WriteJSON(&reply); err != nil {
			log.WithError(err).Warn("推送失败")
			c.conn.Close()
			return
		}
	}
}
