package telemetry

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/golangdaddy/highway/pkg/session"
)

// DefaultQueue is the number of frames buffered before new ones are dropped
const DefaultQueue = 64

const writeTimeout = time.Second

// Frame is the per-tick debug record sent to the telemetry server
type Frame struct {
	RunID     string `json:"run_id"`
	FPS       int    `json:"fps"`
	Throttle  int    `json:"throttle"` // 1 accelerating, -1 braking, 0 coasting
	Steer     int    `json:"steer"`
	Handbrake bool   `json:"handbrake"`
	Score     int    `json:"score"`
	Level     int    `json:"level"`
	Status    string `json:"status"`
}

// FrameFrom samples the session after a tick
func FrameFrom(s *session.Session, fps float64) Frame {
	return Frame{
		RunID:     s.RunID.String(),
		FPS:       int(fps),
		Throttle:  throttle(s.Controls),
		Steer:     s.Player.TargetLane - s.Player.CurrentLane,
		Handbrake: s.Controls.Brake,
		Score:     int(s.Score),
		Level:     s.Level,
		Status:    s.Status.String(),
	}
}

// throttle mirrors the session's input precedence: accelerate wins over brake
func throttle(c session.Controls) int {
	switch {
	case c.Accelerate:
		return 1
	case c.Brake:
		return -1
	}
	return 0
}

// conn is the part of *websocket.Conn the writer needs
type conn interface {
	SetWriteDeadline(t time.Time) error
	WriteJSON(v interface{}) error
	Close() error
}

// Client streams frames over a websocket from a background writer.
// Send never blocks the game loop; frames that do not fit the queue are counted and dropped.
type Client struct {
	conn    conn
	frames  chan Frame
	dropped atomic.Int64
	sent    atomic.Int64
	done    chan struct{}
	once    sync.Once
}

// Dial connects to the telemetry server at url
func Dial(url string) (*Client, error) {
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect telemetry to %s: %w", url, err)
	}
	log.Printf("Telemetry connected to %s", url)
	return newClient(c, DefaultQueue), nil
}

func newClient(c conn, queue int) *Client {
	cl := &Client{
		conn:   c,
		frames: make(chan Frame, queue),
		done:   make(chan struct{}),
	}
	go cl.writeLoop()
	return cl
}

// Send queues a frame, dropping it if the queue is full or the client is closed
func (c *Client) Send(f Frame) {
	select {
	case <-c.done:
		c.dropped.Add(1)
		return
	default:
	}

	select {
	case c.frames <- f:
	default:
		c.dropped.Add(1)
	}
}

// Dropped is the number of frames discarded so far
func (c *Client) Dropped() int64 {
	return c.dropped.Load()
}

// Sent is the number of frames written so far
func (c *Client) Sent() int64 {
	return c.sent.Load()
}

// Close stops the writer and closes the connection
func (c *Client) Close() error {
	var err error
	c.once.Do(func() {
		close(c.done)
		err = c.conn.Close()
	})
	return err
}

func (c *Client) writeLoop() {
	for {
		select {
		case <-c.done:
			return
		case f := <-c.frames:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
				log.Printf("Telemetry deadline failed, disabling: %v", err)
				c.Close()
				return
			}
			if err := c.conn.WriteJSON(f); err != nil {
				log.Printf("Telemetry write failed, disabling: %v", err)
				c.Close()
				return
			}
			c.sent.Add(1)
		}
	}
}
