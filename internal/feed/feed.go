// Package feed bridges the game engine to the progression loop. The engine
// side pushes newline-delimited JSON events over a local TCP connection;
// the listener decodes them onto the game loop's event channel and records
// each session's durable steamid as it appears in the stream.
package feed

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"go.uber.org/zap"

	"github.com/EinariTuukkanen/Hero-Wars/internal/event"
)

// wireEvent is one JSON line from the engine bridge.
type wireEvent struct {
	Name string            `json:"event"`
	Ints map[string]int    `json:"ints"`
	Strs map[string]string `json:"strs"`
}

// Listener accepts engine bridge connections and feeds decoded events to
// the game loop. It also serves as the session id → steamid resolver: any
// event carrying both a userid and a steamid field refreshes the mapping.
type Listener struct {
	listener net.Listener
	events   chan *event.Event
	log      *zap.Logger
	closeCh  chan struct{}

	mu  sync.Mutex
	ids map[int]string // userid -> steamid
}

func NewListener(bindAddr string, queueSize int, log *zap.Logger) (*Listener, error) {
	ln, err := net.Listen("tcp", bindAddr)
	if err != nil {
		return nil, err
	}
	return &Listener{
		listener: ln,
		events:   make(chan *event.Event, queueSize),
		log:      log,
		closeCh:  make(chan struct{}),
		ids:      make(map[int]string),
	}, nil
}

// AcceptLoop runs in its own goroutine, reading every bridge connection
// until the listener shuts down.
func (l *Listener) AcceptLoop() {
	for {
		conn, err := l.listener.Accept()
		if err != nil {
			select {
			case <-l.closeCh:
				return
			default:
			}
			l.log.Error("accept failed", zap.Error(err))
			continue
		}
		l.log.Info("engine bridge connected", zap.String("remote", conn.RemoteAddr().String()))
		go l.readLoop(conn)
	}
}

func (l *Listener) readLoop(conn net.Conn) {
	defer conn.Close()
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var we wireEvent
		if err := json.Unmarshal(line, &we); err != nil {
			l.log.Warn("bad event line", zap.Error(err))
			continue
		}
		l.deliver(&we)
	}
	if err := scanner.Err(); err != nil {
		l.log.Warn("engine bridge read error", zap.Error(err))
	}
	l.log.Info("engine bridge disconnected", zap.String("remote", conn.RemoteAddr().String()))
}

func (l *Listener) deliver(we *wireEvent) {
	if we.Name == "" {
		return
	}
	ev := event.New(we.Name)
	for k, v := range we.Ints {
		ev.SetInt(k, v)
	}
	for k, v := range we.Strs {
		ev.SetStr(k, v)
	}

	if userid := ev.Int("userid"); userid != 0 {
		if steamid := ev.Str("steamid"); steamid != "" {
			l.mu.Lock()
			l.ids[userid] = steamid
			l.mu.Unlock()
		}
	}

	select {
	case l.events <- ev:
	default:
		l.log.Warn("event queue full, dropping", zap.String("event", ev.Name))
	}
}

// Events returns the decoded event channel consumed by the game loop.
func (l *Listener) Events() <-chan *event.Event {
	return l.events
}

// SteamID resolves a session id to the durable identity last seen for it.
func (l *Listener) SteamID(sessionID int) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	id, ok := l.ids[sessionID]
	if !ok {
		return "", fmt.Errorf("no steamid known for session %d", sessionID)
	}
	return id, nil
}

// Shutdown stops accepting new bridge connections.
func (l *Listener) Shutdown() {
	close(l.closeCh)
	l.listener.Close()
}

// Addr returns the listener's address.
func (l *Listener) Addr() net.Addr {
	return l.listener.Addr()
}
